package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/biztime_api/internal/core/domain"
	portsrepo "github.com/SscSPs/biztime_api/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockCompanyRepository is a mock type for the CompanyRepositoryFacade interface
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindCompanyByCode(ctx context.Context, code string) (*domain.Company, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) DeleteCompany(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface.
// UpdateInvoice returns the configured current row and runs the mutation on it.
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, compCode string, amt decimal.Decimal, addDate time.Time) (*domain.Invoice, error) {
	args := m.Called(ctx, compCode, amt, addDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, id int64) (*domain.InvoiceDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceDetail), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByCompany(ctx context.Context, compCode string) ([]domain.Invoice, error) {
	args := m.Called(ctx, compCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, id int64, mutate portsrepo.InvoiceMutation) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	next, err := mutate(*args.Get(0).(*domain.Invoice))
	if err != nil {
		return nil, err
	}
	return &next, nil
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockIndustryRepository is a mock type for the IndustryRepositoryFacade interface
type MockIndustryRepository struct {
	mock.Mock
}

func (m *MockIndustryRepository) SaveIndustry(ctx context.Context, industry domain.Industry) error {
	args := m.Called(ctx, industry)
	return args.Error(0)
}

func (m *MockIndustryRepository) SaveCompanyIndustry(ctx context.Context, assoc domain.CompanyIndustry) error {
	args := m.Called(ctx, assoc)
	return args.Error(0)
}

func (m *MockIndustryRepository) ListIndustries(ctx context.Context) ([]domain.IndustryWithCompanies, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IndustryWithCompanies), args.Error(1)
}

func (m *MockIndustryRepository) ListIndustryNamesByCompany(ctx context.Context, compCode string) ([]string, error) {
	args := m.Called(ctx, compCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var (
	_ portsrepo.CompanyRepositoryFacade  = (*MockCompanyRepository)(nil)
	_ portsrepo.InvoiceRepositoryFacade  = (*MockInvoiceRepository)(nil)
	_ portsrepo.IndustryRepositoryFacade = (*MockIndustryRepository)(nil)
)
