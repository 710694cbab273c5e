package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/biztime_api/internal/apperrors"
	"github.com/SscSPs/biztime_api/internal/core/domain"
	portsrepo "github.com/SscSPs/biztime_api/internal/core/ports/repositories"
	"github.com/SscSPs/biztime_api/internal/models"
	"github.com/SscSPs/biztime_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(
		&inv.ID,
		&inv.CompCode,
		&inv.Amt,
		&inv.Paid,
		&inv.AddDate,
		&inv.PaidDate,
	)
	return inv, err
}

func collectInvoices(rows pgx.Rows) ([]domain.Invoice, error) {
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Invoice, error) {
		return scanInvoice(row)
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainInvoiceSlice(ms), nil
}

// SaveInvoice inserts a new invoice. paid and paid_date take their column defaults.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, compCode string, amt decimal.Decimal, addDate time.Time) (*domain.Invoice, error) {
	query := `
		INSERT INTO invoices (comp_code, amt, add_date)
		VALUES ($1, $2, $3)
		RETURNING ` + invoiceColumns + `;
	`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, compCode, amt, addDate))
	if err != nil {
		switch pgErrorCode(err) {
		case pgForeignKeyViolation:
			return nil, fmt.Errorf("%w: company %s does not exist", apperrors.ErrReferentialIntegrity, compCode)
		case pgCheckViolation, pgNumericOutOfRange:
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidAmount, amt)
		}
		return nil, translateError("failed to save invoice for company "+compCode, err)
	}

	d := mapping.ToDomainInvoice(m)
	return &d, nil
}

// FindInvoiceByID retrieves an invoice together with its company.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, id int64) (*domain.InvoiceDetail, error) {
	query := `
		SELECT i.id, i.comp_code, i.amt, i.paid, i.add_date, i.paid_date,
		       c.code, c.name, c.description
		FROM invoices i
		JOIN companies c ON c.code = i.comp_code
		WHERE i.id = $1;
	`
	var inv models.Invoice
	var comp models.Company
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&inv.ID,
		&inv.CompCode,
		&inv.Amt,
		&inv.Paid,
		&inv.AddDate,
		&inv.PaidDate,
		&comp.Code,
		&comp.Name,
		&comp.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError("failed to find invoice "+strconv.FormatInt(id, 10), err)
	}

	return &domain.InvoiceDetail{
		Invoice: mapping.ToDomainInvoice(inv),
		Company: mapping.ToDomainCompany(comp),
	}, nil
}

// ListInvoices retrieves all invoices.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY id;`)
	if err != nil {
		return nil, translateError("failed to query invoices", err)
	}
	defer rows.Close()

	invoices, err := collectInvoices(rows)
	if err != nil {
		return nil, translateError("failed to scan invoices", err)
	}
	return invoices, nil
}

// ListInvoicesByCompany retrieves a company's invoices in insertion order.
func (r *PgxInvoiceRepository) ListInvoicesByCompany(ctx context.Context, compCode string) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE comp_code = $1
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query, compCode)
	if err != nil {
		return nil, translateError("failed to query invoices for company "+compCode, err)
	}
	defer rows.Close()

	invoices, err := collectInvoices(rows)
	if err != nil {
		return nil, translateError("failed to scan invoices for company "+compCode, err)
	}
	return invoices, nil
}

// UpdateInvoice locks the invoice row with SELECT ... FOR UPDATE, lets mutate compute
// the new state and writes it back before committing. Concurrent updates of the same
// invoice are serialized on the row lock.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, id int64, mutate portsrepo.InvoiceMutation) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	idStr := strconv.FormatInt(id, 10)

	lockQuery := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE id = $1
		FOR UPDATE;
	`
	current, err := scanInvoice(tx.QueryRow(ctx, lockQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError("failed to lock invoice "+idStr, err)
	}

	next, err := mutate(mapping.ToDomainInvoice(current))
	if err != nil {
		return nil, err
	}
	m := mapping.ToModelInvoice(next)

	updateQuery := `
		UPDATE invoices
		SET amt = $2, paid = $3, paid_date = $4
		WHERE id = $1
		RETURNING ` + invoiceColumns + `;
	`
	updated, err := scanInvoice(tx.QueryRow(ctx, updateQuery, id, m.Amt, m.Paid, m.PaidDate))
	if err != nil {
		switch pgErrorCode(err) {
		case pgCheckViolation:
			return nil, fmt.Errorf("%w: invoice %s violates a check constraint: %w", apperrors.ErrValidation, idStr, err)
		case pgNumericOutOfRange:
			return nil, fmt.Errorf("%w: invoice %s: %w", apperrors.ErrInvalidAmount, idStr, err)
		}
		return nil, translateError("failed to update invoice "+idStr, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	d := mapping.ToDomainInvoice(updated)
	return &d, nil
}

// DeleteInvoice removes an invoice.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1;`, id)
	if err != nil {
		return translateError("failed to delete invoice "+strconv.FormatInt(id, 10), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
