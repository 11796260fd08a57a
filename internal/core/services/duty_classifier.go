package services

import (
	"context"
	"strings"

	portsrepo "github.com/crossborder/landed_cost_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// DefaultFallbackDutyRate is used when an item carries no HS code or the code
// does not resolve against the reference data.
var DefaultFallbackDutyRate = decimal.RequireFromString("0.15")

// Classification is the outcome of resolving an HS code to a duty rate.
// Matched is false when the fallback rate was applied.
type Classification struct {
	Rate    decimal.Decimal
	Matched bool
}

// DutyClassifier resolves duty rates for HS codes. An unknown or missing code
// is a normal outcome, not an error: it yields the configured fallback rate.
type DutyClassifier struct {
	refRepo      portsrepo.ReferenceDataRepository
	fallbackRate decimal.Decimal
}

// NewDutyClassifier creates a classifier over the given reference data.
// A non-positive fallback rate is replaced by DefaultFallbackDutyRate.
func NewDutyClassifier(refRepo portsrepo.ReferenceDataRepository, fallbackRate decimal.Decimal) *DutyClassifier {
	if fallbackRate.IsZero() || fallbackRate.IsNegative() {
		fallbackRate = DefaultFallbackDutyRate
	}
	return &DutyClassifier{refRepo: refRepo, fallbackRate: fallbackRate}
}

// Classify resolves an HS code to a duty rate. A matched code yields the low
// bound of the category's duty rate range; the conservative estimate is
// intentional and relied upon by callers.
func (c *DutyClassifier) Classify(ctx context.Context, hsCode string) Classification {
	if strings.TrimSpace(hsCode) == "" {
		return Classification{Rate: c.fallbackRate, Matched: false}
	}

	category, err := c.refRepo.FindProductCategory(ctx, hsCode)
	if err != nil {
		return Classification{Rate: c.fallbackRate, Matched: false}
	}

	return Classification{Rate: category.DutyRateLow, Matched: true}
}

// FallbackRate exposes the configured fallback for reporting purposes.
func (c *DutyClassifier) FallbackRate() decimal.Decimal {
	return c.fallbackRate
}
