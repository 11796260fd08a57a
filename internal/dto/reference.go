package dto

import (
	"github.com/crossborder/landed_cost_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CountryResponse defines the data returned for a country.
type CountryResponse struct {
	Code                         string          `json:"code"`
	Name                         string          `json:"name"`
	CurrencyCode                 string          `json:"currencyCode"`
	TaxRate                      decimal.Decimal `json:"taxRate"`
	DeMinimisThreshold           decimal.Decimal `json:"deMinimisThreshold"`
	RequiresImporterRegistration bool            `json:"requiresImporterRegistration"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code               string          `json:"code"`
	Name               string          `json:"name"`
	ExchangeRateToBase decimal.Decimal `json:"exchangeRateToBase"`
}

// ProductCategoryResponse defines the data returned for a product category.
type ProductCategoryResponse struct {
	HSCode       string          `json:"hsCode"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	DutyRateLow  decimal.Decimal `json:"dutyRateLow"`
	DutyRateHigh decimal.Decimal `json:"dutyRateHigh"`
}

func ToCountryResponse(c *domain.Country) CountryResponse {
	return CountryResponse{
		Code:                         c.Code,
		Name:                         c.Name,
		CurrencyCode:                 c.CurrencyCode,
		TaxRate:                      c.TaxRate,
		DeMinimisThreshold:           c.DeMinimisThreshold,
		RequiresImporterRegistration: c.RequiresImporterRegistration,
	}
}

func ToListCountryResponse(countries []domain.Country) []CountryResponse {
	res := make([]CountryResponse, len(countries))
	for i, c := range countries {
		res[i] = ToCountryResponse(&c)
	}
	return res
}

func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:               c.Code,
		Name:               c.Name,
		ExchangeRateToBase: c.ExchangeRateToBase,
	}
}

func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = ToCurrencyResponse(&c)
	}
	return res
}

func ToProductCategoryResponse(c *domain.ProductCategory) ProductCategoryResponse {
	return ProductCategoryResponse{
		HSCode:       c.HSCode,
		Description:  c.Description,
		Category:     c.Category,
		DutyRateLow:  c.DutyRateLow,
		DutyRateHigh: c.DutyRateHigh,
	}
}

func ToListProductCategoryResponse(categories []domain.ProductCategory) []ProductCategoryResponse {
	res := make([]ProductCategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = ToProductCategoryResponse(&c)
	}
	return res
}
