package repositories

import (
	"context"

	"github.com/SscSPs/biztime_api/internal/core/domain"
)

// IndustryReader defines read operations for industry data
type IndustryReader interface {
	// ListIndustries retrieves all industries with the codes of their companies.
	ListIndustries(ctx context.Context) ([]domain.IndustryWithCompanies, error)

	// ListIndustryNamesByCompany retrieves the display names of a company's industries.
	ListIndustryNamesByCompany(ctx context.Context, compCode string) ([]string, error)
}

// IndustryWriter defines write operations for industry data
type IndustryWriter interface {
	// SaveIndustry inserts a new industry.
	SaveIndustry(ctx context.Context, industry domain.Industry) error

	// SaveCompanyIndustry links a company to an industry. Returns apperrors.ErrNotFound
	// when either side is missing and apperrors.ErrDuplicateAssociation when already linked.
	SaveCompanyIndustry(ctx context.Context, assoc domain.CompanyIndustry) error
}

// IndustryRepositoryFacade combines all industry-related repository interfaces
type IndustryRepositoryFacade interface {
	IndustryReader
	IndustryWriter
}
