package utils

import "github.com/shopspring/decimal"

// FormatDisplayAmount renders an amount for display with two decimal places.
// Example: 39.125 returns "39.13"; 25 returns "25.00".
// Internal arithmetic keeps full precision; rounding happens only here.
func FormatDisplayAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatPercent renders a fraction as a percentage without trailing zeros.
// Example: 0.05 returns "5"; 0.165 returns "16.5".
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String()
}
