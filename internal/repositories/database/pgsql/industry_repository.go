package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/biztime_api/internal/apperrors"
	"github.com/SscSPs/biztime_api/internal/core/domain"
	portsrepo "github.com/SscSPs/biztime_api/internal/core/ports/repositories"
	"github.com/SscSPs/biztime_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxIndustryRepository struct {
	BaseRepository
}

// newPgxIndustryRepository creates a new repository for industries and their company links.
func newPgxIndustryRepository(pool *pgxpool.Pool) portsrepo.IndustryRepositoryFacade {
	return &PgxIndustryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.IndustryRepositoryFacade = (*PgxIndustryRepository)(nil)

// SaveIndustry inserts a new industry.
func (r *PgxIndustryRepository) SaveIndustry(ctx context.Context, industry domain.Industry) error {
	m := mapping.ToModelIndustry(industry)

	query := `
		INSERT INTO industries (code, industry)
		VALUES ($1, $2);
	`
	if _, err := r.Pool.Exec(ctx, query, m.Code, m.Industry); err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: industry with code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return translateError("failed to save industry "+m.Code, err)
	}
	return nil
}

// SaveCompanyIndustry links a company to an industry.
func (r *PgxIndustryRepository) SaveCompanyIndustry(ctx context.Context, assoc domain.CompanyIndustry) error {
	m := mapping.ToModelCompanyIndustry(assoc)

	query := `
		INSERT INTO company_industries (company_code, industry_code)
		VALUES ($1, $2);
	`
	if _, err := r.Pool.Exec(ctx, query, m.CompanyCode, m.IndustryCode); err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s is already in %s", apperrors.ErrDuplicateAssociation, m.CompanyCode, m.IndustryCode)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: company %s or industry %s does not exist", apperrors.ErrNotFound, m.CompanyCode, m.IndustryCode)
		}
		return translateError("failed to associate company "+m.CompanyCode+" with industry "+m.IndustryCode, err)
	}
	return nil
}

// ListIndustries retrieves all industries with the codes of the companies in them.
func (r *PgxIndustryRepository) ListIndustries(ctx context.Context) ([]domain.IndustryWithCompanies, error) {
	query := `
		SELECT i.code, i.industry,
		       COALESCE(ARRAY_AGG(ci.company_code ORDER BY ci.company_code)
		                FILTER (WHERE ci.company_code IS NOT NULL), '{}') AS companies
		FROM industries i
		LEFT JOIN company_industries ci ON ci.industry_code = i.code
		GROUP BY i.code, i.industry
		ORDER BY i.code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, translateError("failed to query industries", err)
	}
	defer rows.Close()

	industries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.IndustryWithCompanies, error) {
		var ind domain.IndustryWithCompanies
		err := row.Scan(&ind.Code, &ind.Industry.Industry, &ind.Companies)
		return ind, err
	})
	if err != nil {
		return nil, translateError("failed to scan industries", err)
	}
	return industries, nil
}

// ListIndustryNamesByCompany retrieves the display names of a company's industries.
func (r *PgxIndustryRepository) ListIndustryNamesByCompany(ctx context.Context, compCode string) ([]string, error) {
	query := `
		SELECT i.industry
		FROM industries i
		JOIN company_industries ci ON ci.industry_code = i.code
		WHERE ci.company_code = $1
		ORDER BY i.industry;
	`
	rows, err := r.Pool.Query(ctx, query, compCode)
	if err != nil {
		return nil, translateError("failed to query industries for company "+compCode, err)
	}
	defer rows.Close()

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, translateError("failed to scan industries for company "+compCode, err)
	}
	return names, nil
}
