package services

import (
	"context"

	"github.com/SscSPs/biztime_api/internal/core/domain"
	"github.com/SscSPs/biztime_api/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoice retrieves an invoice with its company.
	GetInvoice(ctx context.Context, id int64) (*domain.InvoiceDetail, error)

	// ListInvoices retrieves all invoices.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	// CreateInvoice persists a new unpaid invoice.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// UpdateInvoice changes the amount and, optionally, the payment status of an invoice.
	UpdateInvoice(ctx context.Context, id int64, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice.
	DeleteInvoice(ctx context.Context, id int64) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
