package domain

// ErrorScenario documents a known failure mode of the API together with an
// example request that triggers it and how to resolve it.
type ErrorScenario struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	ExampleRequest string `json:"exampleRequest"`
	ExpectedError  string `json:"expectedError"`
	Solution       string `json:"solution"`
	Category       string `json:"category"`
}

// LandedCostScenario is a worked example of a landed cost calculation.
type LandedCostScenario struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	ExampleMutation string   `json:"exampleMutation"`
	ExpectedResult  string   `json:"expectedResult"`
	CommonIssues    []string `json:"commonIssues"`
}

// TroubleshootingEntry is a quick-fix guide item for a commonly reported issue.
type TroubleshootingEntry struct {
	Category  string `json:"category"`
	Problem   string `json:"problem"`
	RootCause string `json:"rootCause"`
	QuickFix  string `json:"quickFix"`
	Example   string `json:"example"`
}
