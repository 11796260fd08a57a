package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/crossborder/landed_cost_app/internal/apperrors"
	"github.com/crossborder/landed_cost_app/internal/core/domain"
	portssvc "github.com/crossborder/landed_cost_app/internal/core/ports/services"
	"github.com/crossborder/landed_cost_app/internal/dto"
	"github.com/crossborder/landed_cost_app/internal/handlers"
	"github.com/crossborder/landed_cost_app/internal/platform/config"
	"github.com/crossborder/landed_cost_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LandedCostService ---
type MockLandedCostService struct {
	mock.Mock
}

func (m *MockLandedCostService) CreateLandedCost(ctx context.Context, req domain.ShipmentRequest) (*domain.LandedCostResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LandedCostResult), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LandedCostSvc = (*MockLandedCostService)(nil)

// --- Test Suite ---
type LandedCostHandlerTestSuite struct {
	suite.Suite
	mockService *MockLandedCostService
	router      *gin.Engine
}

func (suite *LandedCostHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterCustomValidations())

	suite.mockService = new(MockLandedCostService)
	container := &portssvc.ServiceContainer{LandedCost: suite.mockService}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{}, container)
}

func (suite *LandedCostHandlerTestSuite) postLandedCost(body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/landed-costs", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleResult() *domain.LandedCostResult {
	d := decimal.RequireFromString
	return &domain.LandedCostResult{
		ID:            utils.NewLandedCostID(),
		GuaranteeCode: utils.NewGuaranteeCode(),
		CurrencyCode:  "USD",
		Items: []domain.CalculatedItem{
			{ID: utils.NewLineItemID(1), SKU: "TSHIRT-001", Amount: d("25.00"), Quantity: 1, HSCode: "6109.10"},
		},
		Duties: []domain.CalculatedDuty{
			{Amount: d("4.125"), Rate: d("0.165"), HSCode: "6109.10"},
		},
		Taxes: []domain.CalculatedTax{
			{Amount: d("1.95625"), Formula: "5% GST applied to items + duties + shipping (39.13 USD)", Description: "GST", Type: "GST"},
		},
		AmountSubtotals: domain.AmountSubtotals{
			Items:    d("25.00"),
			Duties:   d("4.125"),
			Taxes:    d("1.95625"),
			Shipping: d("10.00"),
			Total:    d("41.08125"),
		},
	}
}

func (suite *LandedCostHandlerTestSuite) TestCreateLandedCost_Success() {
	expected := sampleResult()
	suite.mockService.On("CreateLandedCost", mock.Anything, mock.MatchedBy(func(req domain.ShipmentRequest) bool {
		return req.DestinationCountry == "CA" && req.CurrencyCode == "USD" &&
			len(req.Items) == 1 && req.EndUse == domain.NotForResale
	})).Return(expected, nil).Once()

	w := suite.postLandedCost(`{
		"currencyCode": "USD",
		"destinationCountry": "CA",
		"items": [{"sku": "TSHIRT-001", "amount": 25.00, "quantity": 1, "hsCode": "6109.10"}],
		"shippingCost": 10.00
	}`)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.LandedCostResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.ID, resp.ID)
	suite.Equal(expected.GuaranteeCode, resp.LandedCostGuaranteeCode)
	suite.Require().Len(resp.Duties, 1)
	suite.True(resp.Duties[0].Rate.Equal(decimal.RequireFromString("0.165")))
	suite.True(resp.AmountSubtotals.Total.Equal(decimal.RequireFromString("41.08125")))

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *LandedCostHandlerTestSuite) TestCreateLandedCost_BindError() {
	w := suite.postLandedCost(`{"destinationCountry": "CA", "items": [{"sku": "A", "amount": 1}]}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateLandedCost")
}

func (suite *LandedCostHandlerTestSuite) TestCreateLandedCost_EmptyItems() {
	w := suite.postLandedCost(`{"currencyCode": "USD", "destinationCountry": "CA", "items": []}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateLandedCost")
}

func (suite *LandedCostHandlerTestSuite) TestCreateLandedCost_InvalidEndUse() {
	w := suite.postLandedCost(`{
		"currencyCode": "USD",
		"destinationCountry": "CA",
		"items": [{"sku": "A", "amount": 1}],
		"endUse": "PERSONAL"
	}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateLandedCost")
}

func (suite *LandedCostHandlerTestSuite) TestCreateLandedCost_UnknownCountry() {
	suite.mockService.On("CreateLandedCost", mock.Anything, mock.AnythingOfType("domain.ShipmentRequest")).
		Return(nil, fmt.Errorf("destination country %q: %w", "ZZ", apperrors.ErrUnknownCountry)).Once()

	w := suite.postLandedCost(`{"currencyCode": "USD", "destinationCountry": "ZZ", "items": [{"sku": "A", "amount": 1}]}`)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *LandedCostHandlerTestSuite) TestCreateLandedCost_ValidationError() {
	suite.mockService.On("CreateLandedCost", mock.Anything, mock.AnythingOfType("domain.ShipmentRequest")).
		Return(nil, fmt.Errorf("item amount must not be negative: %w", apperrors.ErrValidation)).Once()

	w := suite.postLandedCost(`{"currencyCode": "USD", "destinationCountry": "CA", "items": [{"sku": "A", "amount": 1}]}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *LandedCostHandlerTestSuite) TestCreateLandedCost_InternalError() {
	suite.mockService.On("CreateLandedCost", mock.Anything, mock.AnythingOfType("domain.ShipmentRequest")).
		Return(nil, fmt.Errorf("boom")).Once()

	w := suite.postLandedCost(`{"currencyCode": "USD", "destinationCountry": "CA", "items": [{"sku": "A", "amount": 1}]}`)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestLandedCostHandler(t *testing.T) {
	suite.Run(t, new(LandedCostHandlerTestSuite))
}
