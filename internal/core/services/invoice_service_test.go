package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/biztime_api/internal/apperrors"
	"github.com/SscSPs/biztime_api/internal/core/domain"
	portssvc "github.com/SscSPs/biztime_api/internal/core/ports/services"
	"github.com/SscSPs/biztime_api/internal/core/services"
	"github.com/SscSPs/biztime_api/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	invoiceRepo *MockInvoiceRepository
	service     portssvc.InvoiceSvcFacade
	ctx         context.Context
	now         time.Time
	today       time.Time
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.invoiceRepo = new(MockInvoiceRepository)
	suite.now = time.Date(2024, time.March, 14, 15, 9, 26, 0, time.UTC)
	suite.today = time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)
	suite.service = services.NewInvoiceService(suite.invoiceRepo, services.WithClock(func() time.Time { return suite.now }))
	suite.ctx = context.Background()
}

func (suite *InvoiceServiceTestSuite) TearDownTest() {
	suite.invoiceRepo.AssertExpectations(suite.T())
}

func amt(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func boolPtr(b bool) *bool { return &b }

func (suite *InvoiceServiceTestSuite) unpaid() *domain.Invoice {
	return &domain.Invoice{
		ID:       7,
		CompCode: "acme",
		Amt:      decimal.NewFromInt(100),
		AddDate:  time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *InvoiceServiceTestSuite) paid(on time.Time) *domain.Invoice {
	inv := suite.unpaid()
	inv.Paid = true
	inv.PaidDate = &on
	return inv
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	created := suite.unpaid()
	suite.invoiceRepo.On("SaveInvoice", suite.ctx, "acme", decimal.NewFromInt(100), suite.today).Return(created, nil).Once()

	got, err := suite.service.CreateInvoice(suite.ctx, dto.CreateInvoiceRequest{CompCode: "acme", Amt: amt(100)})

	suite.Require().NoError(err)
	suite.False(got.Paid)
	suite.Nil(got.PaidDate)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NegativeAmount() {
	_, err := suite.service.CreateInvoice(suite.ctx, dto.CreateInvoiceRequest{CompCode: "acme", Amt: amt(-5)})

	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.invoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ZeroAmountAllowed() {
	isZero := mock.MatchedBy(func(d decimal.Decimal) bool { return d.IsZero() })
	suite.invoiceRepo.On("SaveInvoice", suite.ctx, "acme", isZero, suite.today).Return(suite.unpaid(), nil).Once()

	_, err := suite.service.CreateInvoice(suite.ctx, dto.CreateInvoiceRequest{CompCode: "acme", Amt: amt(0)})

	suite.NoError(err)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_AmountOutsideColumnRange() {
	for _, v := range []string{"10.005", "0.001", "10000000000", "99999999999.99"} {
		d := decimal.RequireFromString(v)

		_, err := suite.service.CreateInvoice(suite.ctx, dto.CreateInvoiceRequest{CompCode: "acme", Amt: &d})

		suite.ErrorIs(err, apperrors.ErrInvalidAmount, v)
	}
	suite.invoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_AmountAtColumnBounds() {
	for _, v := range []string{"9999999999.99", "10.50", "10.500"} {
		d := decimal.RequireFromString(v)
		suite.invoiceRepo.On("SaveInvoice", suite.ctx, "acme", d, suite.today).Return(suite.unpaid(), nil).Once()

		_, err := suite.service.CreateInvoice(suite.ctx, dto.CreateInvoiceRequest{CompCode: "acme", Amt: &d})

		suite.NoError(err, v)
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnknownCompany() {
	suite.invoiceRepo.On("SaveInvoice", suite.ctx, "ghost", decimal.NewFromInt(10), suite.today).
		Return(nil, apperrors.ErrReferentialIntegrity).Once()

	_, err := suite.service.CreateInvoice(suite.ctx, dto.CreateInvoiceRequest{CompCode: "ghost", Amt: amt(10)})

	suite.ErrorIs(err, apperrors.ErrReferentialIntegrity)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_MarksPaidToday() {
	suite.invoiceRepo.On("UpdateInvoice", suite.ctx, int64(7)).Return(suite.unpaid(), nil).Once()

	got, err := suite.service.UpdateInvoice(suite.ctx, 7, dto.UpdateInvoiceRequest{Amt: amt(100), Paid: boolPtr(true)})

	suite.Require().NoError(err)
	suite.True(got.Paid)
	suite.Require().NotNil(got.PaidDate)
	suite.Equal(suite.today, *got.PaidDate)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_AlreadyPaidKeepsDate() {
	earlier := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	suite.invoiceRepo.On("UpdateInvoice", suite.ctx, int64(7)).Return(suite.paid(earlier), nil).Once()

	got, err := suite.service.UpdateInvoice(suite.ctx, 7, dto.UpdateInvoiceRequest{Amt: amt(250), Paid: boolPtr(true)})

	suite.Require().NoError(err)
	suite.True(got.Amt.Equal(decimal.NewFromInt(250)))
	suite.Equal(earlier, *got.PaidDate)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_UnpayClearsDate() {
	earlier := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	suite.invoiceRepo.On("UpdateInvoice", suite.ctx, int64(7)).Return(suite.paid(earlier), nil).Once()

	got, err := suite.service.UpdateInvoice(suite.ctx, 7, dto.UpdateInvoiceRequest{Amt: amt(100), Paid: boolPtr(false)})

	suite.Require().NoError(err)
	suite.False(got.Paid)
	suite.Nil(got.PaidDate)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_AmountOnlyLeavesPayment() {
	earlier := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	suite.invoiceRepo.On("UpdateInvoice", suite.ctx, int64(7)).Return(suite.paid(earlier), nil).Once()

	got, err := suite.service.UpdateInvoice(suite.ctx, 7, dto.UpdateInvoiceRequest{Amt: amt(42)})

	suite.Require().NoError(err)
	suite.True(got.Paid)
	suite.Equal(earlier, *got.PaidDate)
	suite.True(got.Amt.Equal(decimal.NewFromInt(42)))
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_NegativeAmountNeverReachesStorage() {
	_, err := suite.service.UpdateInvoice(suite.ctx, 7, dto.UpdateInvoiceRequest{Amt: amt(-1), Paid: boolPtr(true)})

	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.invoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_RejectsUnrepresentableAmount() {
	for _, v := range []string{"1.234", "12345678901"} {
		d := decimal.RequireFromString(v)

		_, err := suite.service.UpdateInvoice(suite.ctx, 7, dto.UpdateInvoiceRequest{Amt: &d, Paid: boolPtr(true)})

		suite.ErrorIs(err, apperrors.ErrInvalidAmount, v)
	}
	suite.invoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_MissingAmount() {
	_, err := suite.service.UpdateInvoice(suite.ctx, 7, dto.UpdateInvoiceRequest{Paid: boolPtr(true)})

	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_NotFound() {
	suite.invoiceRepo.On("UpdateInvoice", suite.ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateInvoice(suite.ctx, 99, dto.UpdateInvoiceRequest{Amt: amt(1)})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoice() {
	detail := &domain.InvoiceDetail{Invoice: *suite.unpaid(), Company: domain.Company{Code: "acme", Name: "Acme"}}
	suite.invoiceRepo.On("FindInvoiceByID", suite.ctx, int64(7)).Return(detail, nil).Once()

	got, err := suite.service.GetInvoice(suite.ctx, 7)

	suite.Require().NoError(err)
	suite.Equal("Acme", got.Company.Name)
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_NotFound() {
	suite.invoiceRepo.On("DeleteInvoice", suite.ctx, int64(7)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteInvoice(suite.ctx, 7)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices() {
	invoices := []domain.Invoice{*suite.unpaid()}
	suite.invoiceRepo.On("ListInvoices", suite.ctx).Return(invoices, nil).Once()

	got, err := suite.service.ListInvoices(suite.ctx)

	suite.Require().NoError(err)
	suite.Len(got, 1)
}

// TestPaymentLifecycle walks an invoice from unpaid to paid and back, feeding each
// result in as the next stored state.
func (suite *InvoiceServiceTestSuite) TestPaymentLifecycle() {
	state := suite.unpaid()

	suite.invoiceRepo.On("UpdateInvoice", suite.ctx, int64(7)).Return(state, nil).Once()
	paid, err := suite.service.UpdateInvoice(suite.ctx, 7, dto.UpdateInvoiceRequest{Amt: amt(100), Paid: boolPtr(true)})
	suite.Require().NoError(err)
	suite.Equal(suite.today, *paid.PaidDate)

	suite.invoiceRepo.On("UpdateInvoice", suite.ctx, int64(7)).Return(paid, nil).Once()
	unpaid, err := suite.service.UpdateInvoice(suite.ctx, 7, dto.UpdateInvoiceRequest{Amt: amt(100), Paid: boolPtr(false)})
	suite.Require().NoError(err)
	suite.False(unpaid.Paid)
	suite.Nil(unpaid.PaidDate)
	suite.Equal(state.AddDate, unpaid.AddDate)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
