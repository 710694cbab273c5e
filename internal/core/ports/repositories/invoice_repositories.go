package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/biztime_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceMutation computes the new state of an invoice from its current, locked state.
// Returning an error aborts the surrounding transaction.
type InvoiceMutation func(current domain.Invoice) (domain.Invoice, error)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice joined with its company.
	FindInvoiceByID(ctx context.Context, id int64) (*domain.InvoiceDetail, error)

	// ListInvoices retrieves all invoices ordered by id.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)

	// ListInvoicesByCompany retrieves the invoices of one company in insertion order.
	ListInvoicesByCompany(ctx context.Context, compCode string) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice inserts a new unpaid invoice dated addDate and returns the stored row.
	SaveInvoice(ctx context.Context, compCode string, amt decimal.Decimal, addDate time.Time) (*domain.Invoice, error)

	// UpdateInvoice locks the invoice row, applies mutate to it and persists the result,
	// all in one transaction.
	UpdateInvoice(ctx context.Context, id int64, mutate InvoiceMutation) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice.
	DeleteInvoice(ctx context.Context, id int64) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
