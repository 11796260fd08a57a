package services

import (
	"context"

	"github.com/crossborder/landed_cost_app/internal/core/domain"
)

// ScenarioSvc serves the static documentation catalogs: worked landed cost
// examples, common error scenarios and the troubleshooting guide. Content is
// literal reference material, not computed.
type ScenarioSvc interface {
	ListErrorScenarios(ctx context.Context) []domain.ErrorScenario
	ListLandedCostScenarios(ctx context.Context) []domain.LandedCostScenario
	ListTroubleshootingEntries(ctx context.Context) []domain.TroubleshootingEntry
}
