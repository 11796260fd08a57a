package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/crossborder/landed_cost_app/internal/core/domain"
	portsrepo "github.com/crossborder/landed_cost_app/internal/core/ports/repositories"
)

// InspectionService checks raw requests against the known error/warning
// taxonomy. Findings always come back as data; malformed input is reported,
// not propagated.
type InspectionService struct {
	refRepo portsrepo.ReferenceDataRepository
}

func NewInspectionService(refRepo portsrepo.ReferenceDataRepository) *InspectionService {
	return &InspectionService{refRepo: refRepo}
}

// InspectStructuredRequest validates a raw JSON request body. Rules run in a
// fixed order, each contributing at most one finding: amount must be present,
// numeric and positive (errors); currency and destination_country must be
// present (errors) and are then checked against the reference allow-lists
// (warnings only); missing customer_email and shipping_address are
// informational warnings. Valid is true iff no error-severity issue was found.
func (s *InspectionService) InspectStructuredRequest(ctx context.Context, rawJSON string) domain.ValidationReport {
	issues := []domain.ValidationIssue{}
	warnings := []domain.ValidationIssue{}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(rawJSON), &parsed); err != nil {
		issues = append(issues, domain.ValidationIssue{
			Field:    "JSON",
			Issue:    "Invalid JSON format: " + err.Error(),
			Severity: domain.SeverityError,
		})
		return domain.ValidationReport{Valid: false, Issues: issues, Warnings: warnings}
	}

	if amount, present := parsed["amount"]; !present || amount == nil {
		issues = append(issues, errorIssue("amount", "Missing required field"))
	} else if num, ok := amount.(float64); !ok {
		issues = append(issues, errorIssue("amount", "Must be a number"))
	} else if num <= 0 {
		issues = append(issues, errorIssue("amount", "Must be greater than 0"))
	}

	if currency := stringField(parsed, "currency"); currency == "" {
		issues = append(issues, errorIssue("currency", "Missing required field"))
	} else if !s.isSupportedCurrency(ctx, currency) {
		warnings = append(warnings, warningIssue("currency", fmt.Sprintf("Currency '%s' not commonly supported", currency)))
	}

	if country := stringField(parsed, "destination_country"); country == "" {
		issues = append(issues, errorIssue("destination_country", "Missing required field"))
	} else if !s.isSupportedCountry(ctx, country) {
		warnings = append(warnings, warningIssue("destination_country", fmt.Sprintf("Country code '%s' may not be supported", country)))
	}

	if stringField(parsed, "customer_email") == "" {
		warnings = append(warnings, warningIssue("customer_email", "Recommended for transaction tracking"))
	}
	if _, present := parsed["shipping_address"]; !present {
		warnings = append(warnings, warningIssue("shipping_address", "Required for accurate duty calculation"))
	}

	return domain.ValidationReport{Valid: len(issues) == 0, Issues: issues, Warnings: warnings}
}

// mutationKeys drive the text inspection: presence of required keys is
// error-checked, recommended keys warning-checked. Matching is a
// case-insensitive substring test, documented as a best-effort heuristic
// rather than a structural parse.
var (
	requiredMutationKeys = []struct{ field, issue string }{
		{"currencyCode", "Missing required field in mutation"},
		{"destinationCountry", "Missing required field in mutation"},
		{"items", "Missing required field in mutation"},
	}
	recommendedMutationKeys = []struct{ field, issue string }{
		{"hsCode", "No HS codes provided - duty calculation will fall back to the default rate"},
		{"shippingCost", "Shipping cost not specified - defaults to 0"},
	}
)

// InspectMutationText runs keyword presence checks over a raw mutation body.
func (s *InspectionService) InspectMutationText(ctx context.Context, mutation string) domain.ValidationReport {
	issues := []domain.ValidationIssue{}
	warnings := []domain.ValidationIssue{}

	if strings.TrimSpace(mutation) == "" {
		issues = append(issues, errorIssue("mutation", "Mutation body is empty"))
		return domain.ValidationReport{Valid: false, Issues: issues, Warnings: warnings}
	}

	lowered := strings.ToLower(mutation)
	for _, key := range requiredMutationKeys {
		if !strings.Contains(lowered, strings.ToLower(key.field)) {
			issues = append(issues, errorIssue(key.field, key.issue))
		}
	}
	for _, key := range recommendedMutationKeys {
		if !strings.Contains(lowered, strings.ToLower(key.field)) {
			warnings = append(warnings, warningIssue(key.field, key.issue))
		}
	}

	return domain.ValidationReport{Valid: len(issues) == 0, Issues: issues, Warnings: warnings}
}

func (s *InspectionService) isSupportedCurrency(ctx context.Context, code string) bool {
	_, err := s.refRepo.FindCurrency(ctx, code)
	return err == nil
}

func (s *InspectionService) isSupportedCountry(ctx context.Context, code string) bool {
	_, err := s.refRepo.FindCountry(ctx, code)
	return err == nil
}

// stringField returns the trimmed string value for key, or "" when the key is
// absent, null, empty or not a string.
func stringField(parsed map[string]any, key string) string {
	val, present := parsed[key]
	if !present || val == nil {
		return ""
	}
	str, ok := val.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(str)
}

func errorIssue(field, issue string) domain.ValidationIssue {
	return domain.ValidationIssue{Field: field, Issue: issue, Severity: domain.SeverityError}
}

func warningIssue(field, issue string) domain.ValidationIssue {
	return domain.ValidationIssue{Field: field, Issue: issue, Severity: domain.SeverityWarning}
}
