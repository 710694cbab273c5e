package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/biztime_api/internal/apperrors"
	"github.com/SscSPs/biztime_api/internal/core/domain"
	portsrepo "github.com/SscSPs/biztime_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/biztime_api/internal/core/ports/services"
	"github.com/SscSPs/biztime_api/internal/dto"
	"github.com/SscSPs/biztime_api/internal/utils/slug"
)

// industryService implements the IndustrySvcFacade interface
type industryService struct {
	BaseService
	industryRepo portsrepo.IndustryRepositoryFacade
}

// NewIndustryService creates a new industry service
func NewIndustryService(repo portsrepo.IndustryRepositoryFacade) portssvc.IndustrySvcFacade {
	return &industryService{industryRepo: repo}
}

var _ portssvc.IndustrySvcFacade = (*industryService)(nil)

func (s *industryService) CreateIndustry(ctx context.Context, req dto.CreateIndustryRequest) (*domain.Industry, error) {
	name := strings.TrimSpace(req.Industry)
	code, err := slug.Normalize(name)
	if err != nil {
		return nil, err
	}

	industry := domain.Industry{Code: code, Industry: name}
	if err := s.industryRepo.SaveIndustry(ctx, industry); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save industry in repository", slog.String("industry_code", code))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Industry created successfully in service", slog.String("industry_code", code))
	return &industry, nil
}

func (s *industryService) AssociateIndustry(ctx context.Context, req dto.AssociateIndustryRequest) (*domain.CompanyIndustry, error) {
	assoc := domain.CompanyIndustry{
		CompanyCode:  strings.TrimSpace(req.CompanyCode),
		IndustryCode: strings.TrimSpace(req.IndustryCode),
	}
	if assoc.CompanyCode == "" || assoc.IndustryCode == "" {
		return nil, fmt.Errorf("%w: companyCode and industryCode are required", apperrors.ErrValidation)
	}

	if err := s.industryRepo.SaveCompanyIndustry(ctx, assoc); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to associate company with industry",
				slog.String("company_code", assoc.CompanyCode),
				slog.String("industry_code", assoc.IndustryCode))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Company associated with industry",
		slog.String("company_code", assoc.CompanyCode),
		slog.String("industry_code", assoc.IndustryCode))
	return &assoc, nil
}

func (s *industryService) ListIndustries(ctx context.Context) ([]domain.IndustryWithCompanies, error) {
	industries, err := s.industryRepo.ListIndustries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list industries from repository")
		return nil, err
	}
	return industries, nil
}
