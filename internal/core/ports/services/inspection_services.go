package services

import (
	"context"

	"github.com/crossborder/landed_cost_app/internal/core/domain"
)

// InspectionSvc validates raw requests against the known error/warning
// taxonomy without attempting to process them. Both methods are pure: findings
// come back as data, never as errors.
type InspectionSvc interface {
	// InspectStructuredRequest checks a raw JSON request body against the
	// required-field and format rules. An unparsable payload yields a single
	// error-severity issue on the pseudo-field "JSON".
	InspectStructuredRequest(ctx context.Context, rawJSON string) domain.ValidationReport

	// InspectMutationText runs case-insensitive keyword presence checks over
	// a raw mutation body. This is a best-effort heuristic, not a parse.
	InspectMutationText(ctx context.Context, mutation string) domain.ValidationReport
}
