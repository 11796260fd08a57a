package domain

import "github.com/shopspring/decimal"

// ProductCategory maps a Harmonized System code to a customs duty rate range.
type ProductCategory struct {
	HSCode       string          `json:"hsCode"` // Primary Key (e.g., "6109.10")
	Description  string          `json:"description"`
	Category     string          `json:"category"`     // Broad grouping, e.g. "Apparel"
	DutyRateLow  decimal.Decimal `json:"dutyRateLow"`  // Fraction in [0,1], low <= high
	DutyRateHigh decimal.Decimal `json:"dutyRateHigh"` // Fraction in [0,1]
}
