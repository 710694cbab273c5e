package services

import (
	"context"

	"github.com/SscSPs/biztime_api/internal/core/domain"
	"github.com/SscSPs/biztime_api/internal/dto"
)

// IndustryReaderSvc defines read operations for industry data
type IndustryReaderSvc interface {
	ListIndustries(ctx context.Context) ([]domain.IndustryWithCompanies, error)
}

// IndustryWriterSvc defines write operations for industry data
type IndustryWriterSvc interface {
	// CreateIndustry persists a new industry with a code derived from its name.
	CreateIndustry(ctx context.Context, req dto.CreateIndustryRequest) (*domain.Industry, error)

	// AssociateIndustry links an existing company to an existing industry.
	AssociateIndustry(ctx context.Context, req dto.AssociateIndustryRequest) (*domain.CompanyIndustry, error)
}

// IndustrySvcFacade combines all industry-related service interfaces
type IndustrySvcFacade interface {
	IndustryReaderSvc
	IndustryWriterSvc
}
