package domain

import "github.com/shopspring/decimal"

// Currency represents a supported currency in the domain.
type Currency struct {
	Code               string          `json:"code"` // Primary Key (e.g., "USD")
	Name               string          `json:"name"` // e.g., "US Dollar"
	ExchangeRateToBase decimal.Decimal `json:"exchangeRateToBase"`
}

// IsBase reports whether this is the engine's unit of account.
// Exactly one currency in the reference data carries a rate of 1.0.
func (c Currency) IsBase() bool {
	return c.ExchangeRateToBase.Equal(decimal.NewFromInt(1))
}
