package static_test

import (
	"context"
	"testing"

	"github.com/crossborder/landed_cost_app/internal/apperrors"
	"github.com/crossborder/landed_cost_app/internal/core/domain"
	"github.com/crossborder/landed_cost_app/internal/repositories/static"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ReferenceStoreTestSuite struct {
	suite.Suite
	store *static.ReferenceStore
}

func (suite *ReferenceStoreTestSuite) SetupTest() {
	store, err := static.NewDefaultReferenceStore()
	suite.Require().NoError(err)
	suite.store = store
}

func (suite *ReferenceStoreTestSuite) TestFindCountry_CaseInsensitive() {
	ctx := context.Background()

	country, err := suite.store.FindCountry(ctx, "ca")
	suite.Require().NoError(err)
	suite.Equal("CA", country.Code)
	suite.Equal("Canada", country.Name)
	suite.True(country.TaxRate.Equal(decimal.RequireFromString("0.05")))

	country, err = suite.store.FindCountry(ctx, "  Ca ")
	suite.Require().NoError(err)
	suite.Equal("CA", country.Code)
}

func (suite *ReferenceStoreTestSuite) TestFindCountry_NotFound() {
	country, err := suite.store.FindCountry(context.Background(), "ZZ")
	suite.Require().Error(err)
	suite.Nil(country)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReferenceStoreTestSuite) TestFindCurrency() {
	currency, err := suite.store.FindCurrency(context.Background(), "usd")
	suite.Require().NoError(err)
	suite.Equal("USD", currency.Code)
	suite.True(currency.IsBase())

	_, err = suite.store.FindCurrency(context.Background(), "XXX")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReferenceStoreTestSuite) TestFindProductCategory() {
	category, err := suite.store.FindProductCategory(context.Background(), "6109.10")
	suite.Require().NoError(err)
	suite.Equal("Apparel", category.Category)
	suite.True(category.DutyRateLow.Equal(decimal.RequireFromString("0.165")))
	suite.True(category.DutyRateHigh.Equal(decimal.RequireFromString("0.32")))

	_, err = suite.store.FindProductCategory(context.Background(), "999999")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReferenceStoreTestSuite) TestListPreservesSeedOrder() {
	ctx := context.Background()

	countries, err := suite.store.ListCountries(ctx)
	suite.Require().NoError(err)
	suite.Len(countries, 9)
	suite.Equal("US", countries[0].Code)
	suite.Equal("CA", countries[1].Code)

	currencies, err := suite.store.ListCurrencies(ctx)
	suite.Require().NoError(err)
	suite.Len(currencies, 8)
	suite.Equal("USD", currencies[0].Code)

	categories, err := suite.store.ListProductCategories(ctx)
	suite.Require().NoError(err)
	suite.Len(categories, 8)
	suite.Equal("6109.10", categories[0].HSCode)
}

func (suite *ReferenceStoreTestSuite) TestListReturnsCopies() {
	ctx := context.Background()

	first, err := suite.store.ListCountries(ctx)
	suite.Require().NoError(err)
	first[0].Name = "Mutated"

	second, err := suite.store.ListCountries(ctx)
	suite.Require().NoError(err)
	suite.Equal("United States", second[0].Name)
}

func TestReferenceStore(t *testing.T) {
	suite.Run(t, new(ReferenceStoreTestSuite))
}

func TestNewReferenceStore_Invariants(t *testing.T) {
	d := decimal.RequireFromString
	validCountry := domain.Country{Code: "CA", Name: "Canada", CurrencyCode: "CAD", TaxRate: d("0.05"), DeMinimisThreshold: d("20")}
	baseCurrency := domain.Currency{Code: "USD", Name: "US Dollar", ExchangeRateToBase: d("1.0")}
	validCategory := domain.ProductCategory{HSCode: "6109.10", Category: "Apparel", DutyRateLow: d("0.165"), DutyRateHigh: d("0.32")}

	tests := []struct {
		name       string
		countries  []domain.Country
		currencies []domain.Currency
		categories []domain.ProductCategory
		wantErr    string
	}{
		{
			name:       "duplicate country code",
			countries:  []domain.Country{validCountry, {Code: "ca", Name: "Canada Again", TaxRate: d("0.05")}},
			currencies: []domain.Currency{baseCurrency},
			wantErr:    "duplicate country code",
		},
		{
			name:       "tax rate above one",
			countries:  []domain.Country{{Code: "XX", Name: "Test", TaxRate: d("1.5")}},
			currencies: []domain.Currency{baseCurrency},
			wantErr:    "outside [0,1]",
		},
		{
			name:       "no base currency",
			countries:  []domain.Country{validCountry},
			currencies: []domain.Currency{{Code: "CAD", Name: "Canadian Dollar", ExchangeRateToBase: d("1.36")}},
			wantErr:    "exactly one base currency",
		},
		{
			name:       "two base currencies",
			countries:  []domain.Country{validCountry},
			currencies: []domain.Currency{baseCurrency, {Code: "XTS", Name: "Test", ExchangeRateToBase: d("1.0")}},
			wantErr:    "exactly one base currency",
		},
		{
			name:       "non-positive exchange rate",
			countries:  []domain.Country{validCountry},
			currencies: []domain.Currency{baseCurrency, {Code: "XTS", Name: "Test", ExchangeRateToBase: d("0")}},
			wantErr:    "not positive",
		},
		{
			name:       "inverted duty range",
			countries:  []domain.Country{validCountry},
			currencies: []domain.Currency{baseCurrency},
			categories: []domain.ProductCategory{{HSCode: "1234.56", DutyRateLow: d("0.4"), DutyRateHigh: d("0.2")}},
			wantErr:    "invalid",
		},
		{
			name:       "duplicate hs code",
			countries:  []domain.Country{validCountry},
			currencies: []domain.Currency{baseCurrency},
			categories: []domain.ProductCategory{validCategory, {HSCode: "6109.10", DutyRateLow: d("0.1"), DutyRateHigh: d("0.2")}},
			wantErr:    "duplicate HS code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := static.NewReferenceStore(tt.countries, tt.currencies, tt.categories)
			assert.Nil(t, store)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
