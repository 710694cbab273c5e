package dto

import (
	"time"

	"github.com/SscSPs/biztime_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for add_date and paid_date.
const DateLayout = "2006-01-02"

// CreateInvoiceRequest defines the data needed to create a new invoice.
type CreateInvoiceRequest struct {
	CompCode string           `json:"comp_code" binding:"required"`
	Amt      *decimal.Decimal `json:"amt" binding:"required"`
}

// UpdateInvoiceRequest defines the data allowed for updating an invoice.
// Paid is a pointer so that an omitted field can be told apart from false.
type UpdateInvoiceRequest struct {
	Amt  *decimal.Decimal `json:"amt" binding:"required"`
	Paid *bool            `json:"paid"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
}

// InvoiceDetailResponse is an invoice with its company nested.
type InvoiceDetailResponse struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
	Company  CompanyResponse `json:"company"`
}

// InvoiceSummaryResponse is the list view of an invoice.
type InvoiceSummaryResponse struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceEnvelope wraps a single invoice.
type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"invoice"`
}

// InvoiceDetailEnvelope wraps a single invoice with its company.
type InvoiceDetailEnvelope struct {
	Invoice InvoiceDetailResponse `json:"invoice"`
}

// ListInvoicesResponse wraps the invoice list.
type ListInvoicesResponse struct {
	Invoices []InvoiceSummaryResponse `json:"invoices"`
}

func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  formatDate(inv.AddDate),
		PaidDate: formatDatePtr(inv.PaidDate),
	}
}

// ToInvoiceDetailResponse converts a domain.InvoiceDetail to InvoiceDetailResponse DTO
func ToInvoiceDetailResponse(d *domain.InvoiceDetail) InvoiceDetailResponse {
	return InvoiceDetailResponse{
		ID:       d.ID,
		Amt:      d.Amt,
		Paid:     d.Paid,
		AddDate:  formatDate(d.AddDate),
		PaidDate: formatDatePtr(d.PaidDate),
		Company:  ToCompanyResponse(&d.Company),
	}
}

// ToListInvoicesResponse converts invoices to their summary list view.
func ToListInvoicesResponse(invoices []domain.Invoice) ListInvoicesResponse {
	res := make([]InvoiceSummaryResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = InvoiceSummaryResponse{ID: inv.ID, CompCode: inv.CompCode}
	}
	return ListInvoicesResponse{Invoices: res}
}
