package dto

import "github.com/crossborder/landed_cost_app/internal/core/domain"

// InspectRequest wraps a raw JSON request body to validate. The payload
// arrives as text so that unparsable input is itself an inspectable finding.
type InspectRequest struct {
	APIRequest string `json:"apiRequest" binding:"required"`
}

// InspectMutationRequest wraps a raw mutation body to inspect.
type InspectMutationRequest struct {
	Mutation string `json:"mutation" binding:"required"`
}

type ValidationIssueResponse struct {
	Field    string `json:"field"`
	Issue    string `json:"issue"`
	Severity string `json:"severity"`
}

// ValidationReportResponse defines the data returned by the inspectors.
type ValidationReportResponse struct {
	Valid    bool                      `json:"valid"`
	Issues   []ValidationIssueResponse `json:"issues"`
	Warnings []ValidationIssueResponse `json:"warnings"`
}

// ToValidationReportResponse converts a domain.ValidationReport to its DTO.
func ToValidationReportResponse(report domain.ValidationReport) ValidationReportResponse {
	return ValidationReportResponse{
		Valid:    report.Valid,
		Issues:   toIssueResponses(report.Issues),
		Warnings: toIssueResponses(report.Warnings),
	}
}

func toIssueResponses(issues []domain.ValidationIssue) []ValidationIssueResponse {
	out := make([]ValidationIssueResponse, len(issues))
	for i, issue := range issues {
		out[i] = ValidationIssueResponse{
			Field:    issue.Field,
			Issue:    issue.Issue,
			Severity: string(issue.Severity),
		}
	}
	return out
}
