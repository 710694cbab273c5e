package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/SscSPs/biztime_api/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories react to.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
	pgTooManyConnections  = "53300"
	pgAdminShutdown       = "57P01"
	pgCannotConnectNow    = "57P03"
)

// translateError wraps err with msg and, where it can be classified, with the
// matching apperrors sentinel. The underlying error stays in the chain.
func translateError(msg string, err error) error {
	if sentinel := classify(err); sentinel != nil {
		return fmt.Errorf("%s: %w: %w", msg, sentinel, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return apperrors.ErrDuplicate
		case pgErr.Code == pgForeignKeyViolation:
			return apperrors.ErrReferentialIntegrity
		case pgErr.Code == pgCheckViolation:
			return apperrors.ErrValidation
		case pgErr.Code == pgNumericOutOfRange:
			return apperrors.ErrInvalidAmount
		case strings.HasPrefix(pgErr.Code, "08"), // connection_exception class
			pgErr.Code == pgTooManyConnections,
			pgErr.Code == pgAdminShutdown,
			pgErr.Code == pgCannotConnectNow:
			return apperrors.ErrStorageUnavailable
		}
		return nil
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || pgconn.Timeout(err) {
		return apperrors.ErrStorageUnavailable
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return apperrors.ErrStorageUnavailable
	}
	return nil
}

// pgErrorCode returns the SQLSTATE of err, or "" if it is not a server error.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
