package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/biztime_api/internal/apperrors"
	"github.com/SscSPs/biztime_api/internal/core/domain"
	portsrepo "github.com/SscSPs/biztime_api/internal/core/ports/repositories"
	"github.com/SscSPs/biztime_api/internal/models"
	"github.com/SscSPs/biztime_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

func scanCompany(row pgx.Row) (models.Company, error) {
	var c models.Company
	err := row.Scan(&c.Code, &c.Name, &c.Description)
	return c, err
}

// SaveCompany inserts a new company.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)

	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3);
	`
	if _, err := r.Pool.Exec(ctx, query, m.Code, m.Name, m.Description); err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: company with code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return translateError("failed to save company "+m.Code, err)
	}
	return nil
}

// FindCompanyByCode retrieves a company by its code.
func (r *PgxCompanyRepository) FindCompanyByCode(ctx context.Context, code string) (*domain.Company, error) {
	query := `
		SELECT code, name, description
		FROM companies
		WHERE code = $1;
	`
	m, err := scanCompany(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError("failed to find company by code "+code, err)
	}

	d := mapping.ToDomainCompany(m)
	return &d, nil
}

// ListCompanies retrieves all companies.
func (r *PgxCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	query := `
		SELECT code, name, description
		FROM companies
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, translateError("failed to query companies", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Company, error) {
		return scanCompany(row)
	})
	if err != nil {
		return nil, translateError("failed to scan companies", err)
	}

	return mapping.ToDomainCompanySlice(ms), nil
}

// UpdateCompany overwrites the name and description of an existing company.
func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	m := mapping.ToModelCompany(company)

	query := `
		UPDATE companies
		SET name = $2, description = $3
		WHERE code = $1
		RETURNING code, name, description;
	`
	updated, err := scanCompany(r.Pool.QueryRow(ctx, query, m.Code, m.Name, m.Description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError("failed to update company "+m.Code, err)
	}

	d := mapping.ToDomainCompany(updated)
	return &d, nil
}

// DeleteCompany removes a company. Invoices are not cascaded; industry links are.
func (r *PgxCompanyRepository) DeleteCompany(ctx context.Context, code string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM companies WHERE code = $1;`, code)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("%w: company %s still has invoices", apperrors.ErrReferentialIntegrity, code)
		}
		return translateError("failed to delete company "+code, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
