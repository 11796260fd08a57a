package domain

import "github.com/shopspring/decimal"

// UnclassifiedHSCode labels duty lines for items that carried no usable HS code.
const UnclassifiedHSCode = "UNCLASSIFIED"

// CalculatedItem is an input line item resolved to its extended amount,
// carrying a generated per-line identifier.
type CalculatedItem struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Amount      decimal.Decimal `json:"amount"` // Extended amount (per-unit * quantity)
	Quantity    int             `json:"quantity"`
	HSCode      string          `json:"hsCode,omitempty"`
	Description string          `json:"description,omitempty"`
}

// CalculatedDuty is the duty assessed against a single line item.
type CalculatedDuty struct {
	Amount decimal.Decimal `json:"amount"`
	Rate   decimal.Decimal `json:"rate"`
	HSCode string          `json:"hsCode"` // UnclassifiedHSCode when the item had none
}

// CalculatedTax is a destination-country consumption tax applied to the
// taxable base. Formula describes the computation in human-readable form.
type CalculatedTax struct {
	Amount      decimal.Decimal `json:"amount"`
	Formula     string          `json:"formula"`
	Description string          `json:"description"` // Display label, e.g. "GST", "VAT", "Sales Tax"
	Type        string          `json:"type"`
}

// AmountSubtotals breaks the landed cost total into its components.
// Invariant: Total = Items + Duties + Taxes + Shipping exactly.
type AmountSubtotals struct {
	Items    decimal.Decimal `json:"items"`
	Duties   decimal.Decimal `json:"duties"`
	Taxes    decimal.Decimal `json:"taxes"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// LandedCostResult is the full outcome of a landed cost calculation.
// It is immutable after construction and never persisted by the engine.
type LandedCostResult struct {
	ID              string           `json:"id"`
	GuaranteeCode   string           `json:"landedCostGuaranteeCode"`
	CurrencyCode    string           `json:"currencyCode"`
	Items           []CalculatedItem `json:"items"`
	Duties          []CalculatedDuty `json:"duties"`
	Taxes           []CalculatedTax  `json:"taxes"`
	AmountSubtotals AmountSubtotals  `json:"amountSubtotals"`
}
