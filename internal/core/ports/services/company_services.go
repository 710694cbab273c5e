package services

import (
	"context"

	"github.com/SscSPs/biztime_api/internal/core/domain"
	"github.com/SscSPs/biztime_api/internal/dto"
)

// CompanyReaderSvc defines read operations for company data
type CompanyReaderSvc interface {
	// GetCompany loads a company with its invoices and industries.
	GetCompany(ctx context.Context, code string) (*domain.CompanyAggregate, error)

	// ListCompanies retrieves all companies.
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// CompanyWriterSvc defines write operations for company data
type CompanyWriterSvc interface {
	// CreateCompany persists a new company, deriving its code from the name when none is given.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error)

	// UpdateCompany changes the name and description of a company.
	UpdateCompany(ctx context.Context, code string, req dto.UpdateCompanyRequest) (*domain.Company, error)

	// DeleteCompany removes a company that has no invoices.
	DeleteCompany(ctx context.Context, code string) error
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
}
