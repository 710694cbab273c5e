package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/biztime_api/internal/apperrors"
	"github.com/SscSPs/biztime_api/internal/core/domain"
	portssvc "github.com/SscSPs/biztime_api/internal/core/ports/services"
	"github.com/SscSPs/biztime_api/internal/core/services"
	"github.com/SscSPs/biztime_api/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CompanyServiceTestSuite struct {
	suite.Suite
	companyRepo  *MockCompanyRepository
	invoiceRepo  *MockInvoiceRepository
	industryRepo *MockIndustryRepository
	service      portssvc.CompanySvcFacade
	ctx          context.Context
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.companyRepo = new(MockCompanyRepository)
	suite.invoiceRepo = new(MockInvoiceRepository)
	suite.industryRepo = new(MockIndustryRepository)
	suite.service = services.NewCompanyService(suite.companyRepo, suite.invoiceRepo, suite.industryRepo)
	suite.ctx = context.Background()
}

func (suite *CompanyServiceTestSuite) TearDownTest() {
	suite.companyRepo.AssertExpectations(suite.T())
	suite.invoiceRepo.AssertExpectations(suite.T())
	suite.industryRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_DerivesCodeFromName() {
	expected := domain.Company{Code: "acme-corp", Name: "Acme Corp", Description: "widgets"}
	suite.companyRepo.On("SaveCompany", suite.ctx, expected).Return(nil).Once()

	company, err := suite.service.CreateCompany(suite.ctx, dto.CreateCompanyRequest{Name: "Acme Corp", Description: "widgets"})

	suite.Require().NoError(err)
	suite.Equal(expected, *company)
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_UsesSuppliedCode() {
	expected := domain.Company{Code: "ibm", Name: "International Business Machines"}
	suite.companyRepo.On("SaveCompany", suite.ctx, expected).Return(nil).Once()

	company, err := suite.service.CreateCompany(suite.ctx, dto.CreateCompanyRequest{Code: "ibm", Name: "International Business Machines"})

	suite.Require().NoError(err)
	suite.Equal("ibm", company.Code)
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_RejectsInvalidSuppliedCode() {
	_, err := suite.service.CreateCompany(suite.ctx, dto.CreateCompanyRequest{Code: "Not A Slug", Name: "Acme"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.companyRepo.AssertNotCalled(suite.T(), "SaveCompany", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_InvalidName() {
	for _, name := range []string{"", "   ", "!!!"} {
		_, err := suite.service.CreateCompany(suite.ctx, dto.CreateCompanyRequest{Name: name})
		suite.ErrorIs(err, apperrors.ErrInvalidName, "name %q", name)
	}
	suite.companyRepo.AssertNotCalled(suite.T(), "SaveCompany", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_Duplicate() {
	suite.companyRepo.On("SaveCompany", suite.ctx, mock.AnythingOfType("domain.Company")).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateCompany(suite.ctx, dto.CreateCompanyRequest{Name: "Acme Corp"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CompanyServiceTestSuite) TestGetCompany_AssemblesAggregate() {
	company := &domain.Company{Code: "acme", Name: "Acme"}
	invoices := []domain.Invoice{{ID: 1, CompCode: "acme", Amt: decimal.NewFromInt(100)}}
	suite.companyRepo.On("FindCompanyByCode", suite.ctx, "acme").Return(company, nil).Once()
	suite.invoiceRepo.On("ListInvoicesByCompany", mock.Anything, "acme").Return(invoices, nil).Once()
	suite.industryRepo.On("ListIndustryNamesByCompany", mock.Anything, "acme").Return([]string{"Technology"}, nil).Once()

	agg, err := suite.service.GetCompany(suite.ctx, "acme")

	suite.Require().NoError(err)
	suite.Equal(*company, agg.Company)
	suite.Equal(invoices, agg.Invoices)
	suite.Equal([]string{"Technology"}, agg.Industries)
}

func (suite *CompanyServiceTestSuite) TestGetCompany_EmptyCollections() {
	suite.companyRepo.On("FindCompanyByCode", suite.ctx, "acme").Return(&domain.Company{Code: "acme"}, nil).Once()
	suite.invoiceRepo.On("ListInvoicesByCompany", mock.Anything, "acme").Return(nil, nil).Once()
	suite.industryRepo.On("ListIndustryNamesByCompany", mock.Anything, "acme").Return(nil, nil).Once()

	agg, err := suite.service.GetCompany(suite.ctx, "acme")

	suite.Require().NoError(err)
	suite.NotNil(agg.Invoices)
	suite.Empty(agg.Invoices)
	suite.NotNil(agg.Industries)
	suite.Empty(agg.Industries)
}

func (suite *CompanyServiceTestSuite) TestGetCompany_NotFound() {
	suite.companyRepo.On("FindCompanyByCode", suite.ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCompany(suite.ctx, "nope")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.invoiceRepo.AssertNotCalled(suite.T(), "ListInvoicesByCompany", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestGetCompany_PropagatesLoadFailure() {
	storageErr := errors.Join(apperrors.ErrStorageUnavailable, errors.New("connection reset"))
	suite.companyRepo.On("FindCompanyByCode", suite.ctx, "acme").Return(&domain.Company{Code: "acme"}, nil).Once()
	suite.invoiceRepo.On("ListInvoicesByCompany", mock.Anything, "acme").Return(nil, storageErr).Once()
	suite.industryRepo.On("ListIndustryNamesByCompany", mock.Anything, "acme").Return([]string{}, nil).Maybe()

	_, err := suite.service.GetCompany(suite.ctx, "acme")

	suite.ErrorIs(err, apperrors.ErrStorageUnavailable)
}

func (suite *CompanyServiceTestSuite) TestListCompanies() {
	companies := []domain.Company{{Code: "acme", Name: "Acme"}, {Code: "ibm", Name: "IBM"}}
	suite.companyRepo.On("ListCompanies", suite.ctx).Return(companies, nil).Once()

	got, err := suite.service.ListCompanies(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(companies, got)
}

func (suite *CompanyServiceTestSuite) TestUpdateCompany() {
	expected := domain.Company{Code: "acme", Name: "Acme Inc", Description: "gadgets"}
	suite.companyRepo.On("UpdateCompany", suite.ctx, expected).Return(&expected, nil).Once()

	got, err := suite.service.UpdateCompany(suite.ctx, "acme", dto.UpdateCompanyRequest{Name: " Acme Inc ", Description: "gadgets"})

	suite.Require().NoError(err)
	suite.Equal(expected, *got)
}

func (suite *CompanyServiceTestSuite) TestUpdateCompany_BlankName() {
	_, err := suite.service.UpdateCompany(suite.ctx, "acme", dto.UpdateCompanyRequest{Name: "  "})

	suite.ErrorIs(err, apperrors.ErrInvalidName)
}

func (suite *CompanyServiceTestSuite) TestDeleteCompany_WithInvoices() {
	suite.companyRepo.On("DeleteCompany", suite.ctx, "acme").Return(apperrors.ErrReferentialIntegrity).Once()

	err := suite.service.DeleteCompany(suite.ctx, "acme")

	suite.ErrorIs(err, apperrors.ErrReferentialIntegrity)
}

func (suite *CompanyServiceTestSuite) TestDeleteCompany_NotFound() {
	suite.companyRepo.On("DeleteCompany", suite.ctx, "nope").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCompany(suite.ctx, "nope")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
