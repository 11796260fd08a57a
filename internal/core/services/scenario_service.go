package services

import (
	"context"

	"github.com/crossborder/landed_cost_app/internal/core/domain"
)

// ScenarioService serves the static documentation catalogs. The content is
// literal reference material for API consumers; nothing here is computed.
type ScenarioService struct{}

func NewScenarioService() *ScenarioService {
	return &ScenarioService{}
}

func (s *ScenarioService) ListErrorScenarios(ctx context.Context) []domain.ErrorScenario {
	out := make([]domain.ErrorScenario, len(errorScenarios))
	copy(out, errorScenarios)
	return out
}

func (s *ScenarioService) ListLandedCostScenarios(ctx context.Context) []domain.LandedCostScenario {
	out := make([]domain.LandedCostScenario, len(landedCostScenarios))
	copy(out, landedCostScenarios)
	return out
}

func (s *ScenarioService) ListTroubleshootingEntries(ctx context.Context) []domain.TroubleshootingEntry {
	out := make([]domain.TroubleshootingEntry, len(troubleshootingEntries))
	copy(out, troubleshootingEntries)
	return out
}

var errorScenarios = []domain.ErrorScenario{
	{
		Name:           "Invalid Currency",
		Description:    "Currency code not supported",
		ExampleRequest: `{"amount": 100, "currency": "INVALID", "destination_country": "CA"}`,
		ExpectedError:  "Currency 'INVALID' not commonly supported",
		Solution:       "Use ISO 4217 currency codes (USD, EUR, GBP, etc.)",
		Category:       "Currency",
	},
	{
		Name:           "Missing Amount",
		Description:    "Payment amount not provided",
		ExampleRequest: `{"currency": "USD", "destination_country": "CA"}`,
		ExpectedError:  "Missing required field: amount",
		Solution:       "Include amount field as a positive number",
		Category:       "Validation",
	},
	{
		Name:           "Negative Amount",
		Description:    "Payment amount is negative",
		ExampleRequest: `{"amount": -50, "currency": "USD", "destination_country": "CA"}`,
		ExpectedError:  "Amount must be greater than 0",
		Solution:       "Ensure amount is a positive number",
		Category:       "Validation",
	},
	{
		Name:           "Invalid Country Code",
		Description:    "Destination country not supported",
		ExampleRequest: `{"amount": 100, "currency": "USD", "destination_country": "XX"}`,
		ExpectedError:  "Country code 'XX' may not be supported",
		Solution:       "Use ISO 3166-1 alpha-2 country codes",
		Category:       "Country",
	},
	{
		Name:           "Unknown Destination",
		Description:    "Landed cost requested for a country outside the reference data",
		ExampleRequest: `{"currencyCode": "USD", "destinationCountry": "ZZ", "items": [{"sku": "TEST-001", "amount": 50}]}`,
		ExpectedError:  "unknown destination country",
		Solution:       "Query the countries catalog for the supported destinations",
		Category:       "Country",
	},
	{
		Name:           "Empty Shipment",
		Description:    "Landed cost requested without any line items",
		ExampleRequest: `{"currencyCode": "USD", "destinationCountry": "CA", "items": []}`,
		ExpectedError:  "shipment must contain at least one item",
		Solution:       "Provide at least one item with sku and amount",
		Category:       "Validation",
	},
}

var landedCostScenarios = []domain.LandedCostScenario{
	{
		Name:        "Basic Single Item",
		Description: "One classified apparel item shipped to Canada",
		ExampleMutation: `{
  "currencyCode": "USD",
  "destinationCountry": "CA",
  "items": [
    {"sku": "TSHIRT-001", "amount": 25.00, "quantity": 1, "hsCode": "6109.10"}
  ],
  "shippingCost": 10.00
}`,
		ExpectedResult: "Duties at the 16.5% low bound of the apparel range, 5% GST on items + duties + shipping, total 41.08",
		CommonIssues: []string{
			"Omitting the HS code silently switches the item to the default duty rate",
			"Amount is per unit; the extended amount multiplies by quantity",
		},
	},
	{
		Name:        "Multi-Item to Germany",
		Description: "Mixed bag and cosmetics shipment priced in EUR",
		ExampleMutation: `{
  "currencyCode": "EUR",
  "destinationCountry": "DE",
  "items": [
    {"sku": "BAG-001", "amount": 120.00, "quantity": 1, "hsCode": "4202.92"},
    {"sku": "COSMETIC-001", "amount": 45.00, "quantity": 2, "hsCode": "3304.99"}
  ],
  "shippingCost": 25.00
}`,
		ExpectedResult: "Per-item duties in input order, 19% VAT on the compounded base, one tax line labeled VAT",
		CommonIssues: []string{
			"Duties and items come back in the same order as the input items",
		},
	},
	{
		Name:        "Unrecognized HS Code",
		Description: "An HS code outside the reference data falls back to the default duty rate",
		ExampleMutation: `{
  "currencyCode": "USD",
  "destinationCountry": "CA",
  "items": [
    {"sku": "TEST-001", "amount": 50.00, "quantity": 1, "hsCode": "999999"}
  ]
}`,
		ExpectedResult: "Duty at the default 15% rate; the duty line echoes the unrecognized code",
		CommonIssues: []string{
			"A fallback rate is an estimate, not a classification failure",
		},
	},
	{
		Name:        "Missing Optional Fields",
		Description: "Items without HS code or shipping cost still compute",
		ExampleMutation: `{
  "currencyCode": "USD",
  "destinationCountry": "CA",
  "items": [
    {"sku": "TEST-001", "amount": 50.00}
  ]
}`,
		ExpectedResult: "Duty line labeled UNCLASSIFIED at the default rate; shipping defaults to 0",
		CommonIssues: []string{
			"Run the mutation inspector to see which recommended fields are absent",
		},
	},
}

var troubleshootingEntries = []domain.TroubleshootingEntry{
	{
		Category:  "HS Code Classification",
		Problem:   "Automatic classification gives the wrong HS code",
		RootCause: "Upstream classifier misidentified the product",
		QuickFix:  "Override with the correct HS code in your API call",
		Example:   "items: [{ \"sku\": \"YOUR-SKU\", \"hsCode\": \"CORRECT-CODE\" }]",
	},
	{
		Category:  "Unexpected Fees",
		Problem:   "Charges appear on tariff-free items",
		RootCause: "Consumption tax applies even when duties are zero",
		QuickFix:  "Check the taxes entry in the breakdown; the tax base includes items, duties and shipping",
		Example:   "Items: $50\nDuties: $0\nTaxes: $2.50 (5% GST)\nTotal: $52.50",
	},
	{
		Category:  "Integration Sync",
		Problem:   "Package returned for not meeting customs requirements",
		RootCause: "Data mismatch between the estimate and the carrier paperwork",
		QuickFix:  "Check country codes (AU, not AUS), that the currency matches the destination and the address is complete",
		Example:   "destinationCountry: \"AU\"\ncurrencyCode: \"AUD\"",
	},
	{
		Category:  "Wrong Calculations",
		Problem:   "Landed cost does not match the actual charge",
		RootCause: "Missing data turns the calculation into an estimate, not a guarantee",
		QuickFix:  "Provide HS code, shipping cost and a complete address",
		Example:   "hsCode: \"6109.10\"\nshippingCost: 15.00",
	},
	{
		Category:  "De Minimis",
		Problem:   "Duties charged on a low-value shipment",
		RootCause: "The engine estimates duties regardless of the destination threshold",
		QuickFix:  "Compare the items subtotal against the country's deMinimisThreshold from the countries catalog",
		Example:   "GET /api/v1/countries/CA -> deMinimisThreshold: 20 (CAD)",
	},
	{
		Category:  "Importer Registration",
		Problem:   "Carrier requests an importer registration number",
		RootCause: "Some destinations require registration for consumption tax collection",
		QuickFix:  "Check requiresImporterRegistration on the destination country before shipping",
		Example:   "GET /api/v1/countries/GB -> requiresImporterRegistration: true",
	},
}
