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
	"golang.org/x/sync/errgroup"
)

// companyService implements the CompanySvcFacade interface
type companyService struct {
	BaseService
	companyRepo  portsrepo.CompanyRepositoryFacade
	invoiceRepo  portsrepo.InvoiceReader
	industryRepo portsrepo.IndustryReader
}

// NewCompanyService creates a company service. The invoice and industry readers
// are used to assemble the company detail view.
func NewCompanyService(
	companyRepo portsrepo.CompanyRepositoryFacade,
	invoiceRepo portsrepo.InvoiceReader,
	industryRepo portsrepo.IndustryReader,
) portssvc.CompanySvcFacade {
	return &companyService{
		companyRepo:  companyRepo,
		invoiceRepo:  invoiceRepo,
		industryRepo: industryRepo,
	}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.ErrInvalidName
	}

	code := req.Code
	if code == "" {
		var err error
		code, err = slug.Normalize(name)
		if err != nil {
			return nil, err
		}
	} else if !slug.Valid(code) {
		return nil, fmt.Errorf("%w: code %q is not a valid slug", apperrors.ErrValidation, code)
	}

	company := domain.Company{
		Code:        code,
		Name:        name,
		Description: req.Description,
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save company in repository", slog.String("company_code", code))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Company created successfully in service", slog.String("company_code", code))
	return &company, nil
}

func (s *companyService) GetCompany(ctx context.Context, code string) (*domain.CompanyAggregate, error) {
	company, err := s.companyRepo.FindCompanyByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find company by code in repository", slog.String("company_code", code))
		}
		return nil, err
	}

	var (
		invoices   []domain.Invoice
		industries []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoices, err = s.invoiceRepo.ListInvoicesByCompany(gctx, code)
		return err
	})
	g.Go(func() error {
		var err error
		industries, err = s.industryRepo.ListIndustryNamesByCompany(gctx, code)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load company details", slog.String("company_code", code))
		return nil, err
	}

	return domain.NewCompanyAggregate(*company, invoices, industries), nil
}

func (s *companyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies from repository")
		return nil, err
	}
	s.LogDebug(ctx, "Companies listed successfully", slog.Int("count", len(companies)))
	return companies, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, code string, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.ErrInvalidName
	}

	updated, err := s.companyRepo.UpdateCompany(ctx, domain.Company{
		Code:        code,
		Name:        name,
		Description: req.Description,
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update company in repository", slog.String("company_code", code))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Company updated successfully", slog.String("company_code", code))
	return updated, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, code string) error {
	if err := s.companyRepo.DeleteCompany(ctx, code); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrReferentialIntegrity) {
			s.LogError(ctx, err, "Failed to delete company in repository", slog.String("company_code", code))
		}
		return err
	}
	s.LogInfo(ctx, "Company deleted successfully", slog.String("company_code", code))
	return nil
}
