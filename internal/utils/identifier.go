package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// Identifiers are opaque and collision-resistant within a process lifetime.
// They are never persisted or round-tripped, so the exact layout carries no
// compatibility weight.

// NewLandedCostID generates an identifier for a landed cost result.
func NewLandedCostID() string {
	return "lc_" + uuid.NewString()
}

// NewGuaranteeCode generates a landed cost guarantee code.
func NewGuaranteeCode() string {
	return "lcg_" + uuid.NewString()
}

// NewLineItemID generates a per-line identifier. Line numbering starts at 1
// in input order.
func NewLineItemID(line int) string {
	return fmt.Sprintf("item_%d_%s", line, uuid.NewString()[:8])
}
