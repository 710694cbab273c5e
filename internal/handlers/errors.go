package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/biztime_api/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrReferentialIntegrity):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": ...} for err. Client errors carry the error text;
// server errors carry only fallbackMsg.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	status := statusForError(err)
	switch {
	case status == http.StatusServiceUnavailable:
		logger.Error("Storage unavailable", slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": "Service temporarily unavailable"})
	case status >= http.StatusInternalServerError:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallbackMsg})
	default:
		logger.Warn(fallbackMsg, slog.String("error", err.Error()), slog.Int("status", status))
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

// respondBindError reports a malformed or invalid request body.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind JSON", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
