package services

import (
	"context"

	"github.com/crossborder/landed_cost_app/internal/core/domain"
)

// LandedCostSvc computes landed cost estimates for shipments.
type LandedCostSvc interface {
	// CreateLandedCost computes duties, taxes and the full cost breakdown for
	// a shipment. Fails with apperrors.ErrUnknownCountry or
	// apperrors.ErrUnknownCurrency when the request cannot be resolved
	// against the reference data.
	CreateLandedCost(ctx context.Context, req domain.ShipmentRequest) (*domain.LandedCostResult, error)
}
