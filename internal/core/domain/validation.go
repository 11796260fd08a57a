package domain

// Severity classifies a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationIssue is a single finding against one field of a request.
// Error-severity issues block processing; warnings are advisory only.
type ValidationIssue struct {
	Field    string   `json:"field"`
	Issue    string   `json:"issue"`
	Severity Severity `json:"severity"`
}

// ValidationReport is the outcome of inspecting a request.
// Valid is true iff there are zero error-severity issues; warnings never
// affect validity.
type ValidationReport struct {
	Valid    bool              `json:"valid"`
	Issues   []ValidationIssue `json:"issues"`
	Warnings []ValidationIssue `json:"warnings"`
}
