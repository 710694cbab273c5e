package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/biztime_api/internal/apperrors"
	portssvc "github.com/SscSPs/biztime_api/internal/core/ports/services"
	"github.com/SscSPs/biztime_api/internal/dto"
	"github.com/SscSPs/biztime_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// RegisterInvoiceRoutes registers routes related to invoices.
func RegisterInvoiceRoutes(rg gin.IRouter, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.POST("", h.createInvoice)
		invoices.GET("/:id", h.getInvoice)
		invoices.PUT("/:id", h.updateInvoice)
		invoices.DELETE("/:id", h.deleteInvoice)
	}
}

func parseInvoiceID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invoice id %q must be a positive integer", apperrors.ErrValidation, raw)
	}
	return id, nil
}

// listInvoices godoc
// @Summary List all invoices
// @Tags invoices
// @Produce  json
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list invoices")
		return
	}

	logger.Info("Invoices listed successfully", slog.Int("count", len(invoices)))
	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(invoices))
}

// getInvoice godoc
// @Summary Get an invoice by ID
// @Description Returns the invoice with its company nested
// @Tags invoices
// @Produce  json
// @Param   id path int true "Invoice ID"
// @Success 200 {object} dto.InvoiceDetailEnvelope
// @Failure 400 {object} map[string]string "Invalid invoice ID"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := parseInvoiceID(c)
	if err != nil {
		respondError(c, logger, err, "Invalid invoice ID")
		return
	}
	logger = logger.With(slog.Int64("invoice_id", id))

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve invoice")
		return
	}

	c.JSON(http.StatusOK, dto.InvoiceDetailEnvelope{Invoice: dto.ToInvoiceDetailResponse(invoice)})
}

// createInvoice godoc
// @Summary Create a new invoice
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceEnvelope
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Company does not exist"
// @Failure 500 {object} map[string]string "Failed to create invoice"
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create invoice")
		return
	}

	logger.Info("Invoice created successfully", slog.Int64("invoice_id", invoice.ID))
	c.JSON(http.StatusCreated, dto.InvoiceEnvelope{Invoice: dto.ToInvoiceResponse(invoice)})
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Sets the amount. When paid is supplied the payment status changes too: paying stamps
// @Description paid_date with today, unpaying clears it, and an already paid invoice keeps its date.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path int true "Invoice ID"
// @Param   invoice body dto.UpdateInvoiceRequest true "Amount and optional paid flag"
// @Success 200 {object} dto.InvoiceEnvelope
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to update invoice"
// @Router /invoices/{id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := parseInvoiceID(c)
	if err != nil {
		respondError(c, logger, err, "Invalid invoice ID")
		return
	}
	logger = logger.With(slog.Int64("invoice_id", id))

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update invoice")
		return
	}

	c.JSON(http.StatusOK, dto.InvoiceEnvelope{Invoice: dto.ToInvoiceResponse(invoice)})
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Tags invoices
// @Produce  json
// @Param   id path int true "Invoice ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} map[string]string "Invalid invoice ID"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to delete invoice"
// @Router /invoices/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := parseInvoiceID(c)
	if err != nil {
		respondError(c, logger, err, "Invalid invoice ID")
		return
	}
	logger = logger.With(slog.Int64("invoice_id", id))

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		respondError(c, logger, err, "Failed to delete invoice")
		return
	}

	logger.Info("Invoice deleted successfully")
	c.JSON(http.StatusOK, dto.StatusResponse{Status: dto.StatusDeleted})
}
