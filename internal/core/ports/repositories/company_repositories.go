package repositories

import (
	"context"

	"github.com/SscSPs/biztime_api/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByCode retrieves a company by its code. Returns apperrors.ErrNotFound if absent.
	FindCompanyByCode(ctx context.Context, code string) (*domain.Company, error)

	// ListCompanies retrieves all companies ordered by code.
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// SaveCompany inserts a new company. Returns apperrors.ErrDuplicate if the code is taken.
	SaveCompany(ctx context.Context, company domain.Company) error

	// UpdateCompany overwrites name and description of an existing company.
	UpdateCompany(ctx context.Context, company domain.Company) (*domain.Company, error)

	// DeleteCompany removes a company. Returns apperrors.ErrReferentialIntegrity
	// while invoices still reference it.
	DeleteCompany(ctx context.Context, code string) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
