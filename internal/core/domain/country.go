package domain

import "github.com/shopspring/decimal"

// Country represents a supported destination country in the domain.
type Country struct {
	Code                         string          `json:"code"` // Primary Key, ISO 3166-1 alpha-2 (e.g., "CA")
	Name                         string          `json:"name"`
	CurrencyCode                 string          `json:"currencyCode"`       // ISO 4217 code of the country's currency
	TaxRate                      decimal.Decimal `json:"taxRate"`            // Fraction in [0,1], e.g. 0.05 for 5% GST
	DeMinimisThreshold           decimal.Decimal `json:"deMinimisThreshold"` // Expressed in the country's own currency
	RequiresImporterRegistration bool            `json:"requiresImporterRegistration"`
}
