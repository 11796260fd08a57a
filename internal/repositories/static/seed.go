package static

import (
	"github.com/crossborder/landed_cost_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultCountries returns the built-in destination country table.
// De-minimis thresholds are expressed in each country's own currency.
func DefaultCountries() []domain.Country {
	return []domain.Country{
		{Code: "US", Name: "United States", CurrencyCode: "USD", TaxRate: d("0"), DeMinimisThreshold: d("800"), RequiresImporterRegistration: false},
		{Code: "CA", Name: "Canada", CurrencyCode: "CAD", TaxRate: d("0.05"), DeMinimisThreshold: d("20"), RequiresImporterRegistration: false},
		{Code: "GB", Name: "United Kingdom", CurrencyCode: "GBP", TaxRate: d("0.20"), DeMinimisThreshold: d("135"), RequiresImporterRegistration: true},
		{Code: "AU", Name: "Australia", CurrencyCode: "AUD", TaxRate: d("0.10"), DeMinimisThreshold: d("1000"), RequiresImporterRegistration: true},
		{Code: "DE", Name: "Germany", CurrencyCode: "EUR", TaxRate: d("0.19"), DeMinimisThreshold: d("150"), RequiresImporterRegistration: true},
		{Code: "FR", Name: "France", CurrencyCode: "EUR", TaxRate: d("0.20"), DeMinimisThreshold: d("150"), RequiresImporterRegistration: true},
		{Code: "JP", Name: "Japan", CurrencyCode: "JPY", TaxRate: d("0.10"), DeMinimisThreshold: d("10000"), RequiresImporterRegistration: false},
		{Code: "CN", Name: "China", CurrencyCode: "CNY", TaxRate: d("0.13"), DeMinimisThreshold: d("50"), RequiresImporterRegistration: false},
		{Code: "MX", Name: "Mexico", CurrencyCode: "MXN", TaxRate: d("0.16"), DeMinimisThreshold: d("1000"), RequiresImporterRegistration: false},
	}
}

// DefaultCurrencies returns the built-in currency table. USD is the unit of
// account; all rates are relative to it.
func DefaultCurrencies() []domain.Currency {
	return []domain.Currency{
		{Code: "USD", Name: "US Dollar", ExchangeRateToBase: d("1.0")},
		{Code: "CAD", Name: "Canadian Dollar", ExchangeRateToBase: d("1.36")},
		{Code: "EUR", Name: "Euro", ExchangeRateToBase: d("0.92")},
		{Code: "GBP", Name: "British Pound", ExchangeRateToBase: d("0.79")},
		{Code: "AUD", Name: "Australian Dollar", ExchangeRateToBase: d("1.53")},
		{Code: "JPY", Name: "Japanese Yen", ExchangeRateToBase: d("149.50")},
		{Code: "CNY", Name: "Chinese Yuan", ExchangeRateToBase: d("7.24")},
		{Code: "MXN", Name: "Mexican Peso", ExchangeRateToBase: d("17.15")},
	}
}

// DefaultProductCategories returns the built-in HS code table. Duty rate
// ranges are indicative spans across destination tariff schedules.
func DefaultProductCategories() []domain.ProductCategory {
	return []domain.ProductCategory{
		{HSCode: "6109.10", Description: "T-shirts, singlets and vests, knitted, of cotton", Category: "Apparel", DutyRateLow: d("0.165"), DutyRateHigh: d("0.32")},
		{HSCode: "4202.92", Description: "Travel and sports bags with textile or plastic outer surface", Category: "Luggage", DutyRateLow: d("0.045"), DutyRateHigh: d("0.20")},
		{HSCode: "3304.99", Description: "Beauty and skin care preparations", Category: "Cosmetics", DutyRateLow: d("0"), DutyRateHigh: d("0.065")},
		{HSCode: "6403.99", Description: "Footwear with leather uppers", Category: "Footwear", DutyRateLow: d("0.085"), DutyRateHigh: d("0.375")},
		{HSCode: "8517.12", Description: "Telephones for cellular networks", Category: "Electronics", DutyRateLow: d("0"), DutyRateHigh: d("0.025")},
		{HSCode: "9503.00", Description: "Tricycles, scooters, dolls and other toys", Category: "Toys", DutyRateLow: d("0"), DutyRateHigh: d("0.043")},
		{HSCode: "7113.19", Description: "Jewellery and parts thereof, of precious metal", Category: "Jewelry", DutyRateLow: d("0.05"), DutyRateHigh: d("0.135")},
		{HSCode: "4203.10", Description: "Articles of apparel, of leather", Category: "Apparel", DutyRateLow: d("0.06"), DutyRateHigh: d("0.14")},
	}
}

// NewDefaultReferenceStore builds a store over the built-in seed tables.
func NewDefaultReferenceStore() (*ReferenceStore, error) {
	return NewReferenceStore(DefaultCountries(), DefaultCurrencies(), DefaultProductCategories())
}
