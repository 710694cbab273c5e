package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/biztime_api/internal/apperrors"
	"github.com/SscSPs/biztime_api/internal/core/domain"
	portsrepo "github.com/SscSPs/biztime_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/biztime_api/internal/core/ports/services"
	"github.com/SscSPs/biztime_api/internal/dto"
	"github.com/shopspring/decimal"
)

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	now         func() time.Time
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithClock replaces the clock used to stamp add_date and paid_date.
func WithClock(now func() time.Time) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.now = now
	}
}

// NewInvoiceService creates a new invoice service with the provided options
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade, options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		invoiceRepo: repo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// Amounts are stored as NUMERIC(12,2).
const maxAmountScale = 2

var amountLimit = decimal.New(1, 10)

func validateAmount(amt *decimal.Decimal) error {
	if amt == nil {
		return fmt.Errorf("%w: amt is required", apperrors.ErrInvalidAmount)
	}
	if amt.IsNegative() {
		return fmt.Errorf("%w: %s is negative", apperrors.ErrInvalidAmount, amt)
	}
	if amt.Exponent() < -maxAmountScale && !amt.Equal(amt.Truncate(maxAmountScale)) {
		return fmt.Errorf("%w: %s has more than %d decimal places", apperrors.ErrInvalidAmount, amt, maxAmountScale)
	}
	if amt.GreaterThanOrEqual(amountLimit) {
		return fmt.Errorf("%w: %s must be less than %s", apperrors.ErrInvalidAmount, amt, amountLimit)
	}
	return nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if err := validateAmount(req.Amt); err != nil {
		return nil, err
	}
	compCode := strings.TrimSpace(req.CompCode)
	if compCode == "" {
		return nil, fmt.Errorf("%w: comp_code is required", apperrors.ErrValidation)
	}

	invoice, err := s.invoiceRepo.SaveInvoice(ctx, compCode, *req.Amt, domain.DateOf(s.now()))
	if err != nil {
		if !errors.Is(err, apperrors.ErrReferentialIntegrity) {
			s.LogError(ctx, err, "Failed to save invoice in repository", slog.String("company_code", compCode))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created successfully in service",
		slog.Int64("invoice_id", invoice.ID),
		slog.String("company_code", compCode))
	return invoice, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id int64) (*domain.InvoiceDetail, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice by ID in repository", slog.Int64("invoice_id", id))
		}
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices from repository")
		return nil, err
	}
	s.LogDebug(ctx, "Invoices listed successfully", slog.Int("count", len(invoices)))
	return invoices, nil
}

// UpdateInvoice applies the payment transition to the current stored state of the
// invoice. The read, transition and write happen under a single row lock.
func (s *invoiceService) UpdateInvoice(ctx context.Context, id int64, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	if err := validateAmount(req.Amt); err != nil {
		return nil, err
	}

	upd := domain.PaymentUpdate{Amt: *req.Amt, Paid: req.Paid}
	invoice, err := s.invoiceRepo.UpdateInvoice(ctx, id, func(current domain.Invoice) (domain.Invoice, error) {
		next := domain.ApplyPayment(current, upd, domain.DateOf(s.now()))
		if !next.HasConsistentPayment() {
			return domain.Invoice{}, fmt.Errorf("%w: invoice %d has inconsistent payment state", apperrors.ErrValidation, id)
		}
		return next, nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update invoice in repository", slog.Int64("invoice_id", id))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Invoice updated successfully",
		slog.Int64("invoice_id", id),
		slog.Bool("paid", invoice.Paid))
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id int64) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete invoice in repository", slog.Int64("invoice_id", id))
		}
		return err
	}
	s.LogInfo(ctx, "Invoice deleted successfully", slog.Int64("invoice_id", id))
	return nil
}
