package dto

import (
	"github.com/crossborder/landed_cost_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one product line of an incoming shipment.
// Amount is the per-unit price. Quantity defaults to 1 when omitted.
type LineItemRequest struct {
	SKU         string          `json:"sku" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    int             `json:"quantity" binding:"omitempty,min=1"`
	HSCode      string          `json:"hsCode"`
	Description string          `json:"description"`
}

// CreateLandedCostRequest defines the data needed to compute a landed cost.
type CreateLandedCostRequest struct {
	CurrencyCode       string            `json:"currencyCode" binding:"required,len=3"`
	DestinationCountry string            `json:"destinationCountry" binding:"required,len=2"`
	Items              []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingCost       decimal.Decimal   `json:"shippingCost"`
	EndUse             string            `json:"endUse" binding:"omitempty,enduse"`
}

// ToShipmentRequest converts the DTO into the domain request, applying the
// endUse default.
func (r CreateLandedCostRequest) ToShipmentRequest() domain.ShipmentRequest {
	endUse := domain.EndUse(r.EndUse)
	if endUse == "" {
		endUse = domain.NotForResale
	}

	items := make([]domain.LineItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = domain.LineItem{
			SKU:         item.SKU,
			Amount:      item.Amount,
			Quantity:    item.Quantity,
			HSCode:      item.HSCode,
			Description: item.Description,
		}
	}

	return domain.ShipmentRequest{
		CurrencyCode:       r.CurrencyCode,
		DestinationCountry: r.DestinationCountry,
		Items:              items,
		ShippingCost:       r.ShippingCost,
		EndUse:             endUse,
	}
}

// CalculatedItemResponse carries a resolved line item. Amount is the extended
// amount (per-unit price times quantity).
type CalculatedItemResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    int             `json:"quantity"`
	HSCode      string          `json:"hsCode,omitempty"`
	Description string          `json:"description,omitempty"`
}

type CalculatedDutyResponse struct {
	Amount decimal.Decimal `json:"amount"`
	Rate   decimal.Decimal `json:"rate"`
	HSCode string          `json:"hsCode"`
}

type CalculatedTaxResponse struct {
	Amount      decimal.Decimal `json:"amount"`
	Formula     string          `json:"formula"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
}

// AmountSubtotalsResponse carries the exact, unrounded breakdown so that
// total always equals the sum of its parts. Rounding to two decimals is a
// display concern left to consumers.
type AmountSubtotalsResponse struct {
	Items    decimal.Decimal `json:"items"`
	Duties   decimal.Decimal `json:"duties"`
	Taxes    decimal.Decimal `json:"taxes"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// LandedCostResponse defines the data returned for a computed landed cost.
type LandedCostResponse struct {
	ID                      string                   `json:"id"`
	LandedCostGuaranteeCode string                   `json:"landedCostGuaranteeCode"`
	CurrencyCode            string                   `json:"currencyCode"`
	Items                   []CalculatedItemResponse `json:"items"`
	Duties                  []CalculatedDutyResponse `json:"duties"`
	Taxes                   []CalculatedTaxResponse  `json:"taxes"`
	AmountSubtotals         AmountSubtotalsResponse  `json:"amountSubtotals"`
}

// ToLandedCostResponse converts a domain.LandedCostResult to its DTO.
func ToLandedCostResponse(result *domain.LandedCostResult) LandedCostResponse {
	items := make([]CalculatedItemResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = CalculatedItemResponse{
			ID:          item.ID,
			SKU:         item.SKU,
			Amount:      item.Amount,
			Quantity:    item.Quantity,
			HSCode:      item.HSCode,
			Description: item.Description,
		}
	}

	duties := make([]CalculatedDutyResponse, len(result.Duties))
	for i, duty := range result.Duties {
		duties[i] = CalculatedDutyResponse{Amount: duty.Amount, Rate: duty.Rate, HSCode: duty.HSCode}
	}

	taxes := make([]CalculatedTaxResponse, len(result.Taxes))
	for i, tax := range result.Taxes {
		taxes[i] = CalculatedTaxResponse{Amount: tax.Amount, Formula: tax.Formula, Description: tax.Description, Type: tax.Type}
	}

	return LandedCostResponse{
		ID:                      result.ID,
		LandedCostGuaranteeCode: result.GuaranteeCode,
		CurrencyCode:            result.CurrencyCode,
		Items:                   items,
		Duties:                  duties,
		Taxes:                   taxes,
		AmountSubtotals: AmountSubtotalsResponse{
			Items:    result.AmountSubtotals.Items,
			Duties:   result.AmountSubtotals.Duties,
			Taxes:    result.AmountSubtotals.Taxes,
			Shipping: result.AmountSubtotals.Shipping,
			Total:    result.AmountSubtotals.Total,
		},
	}
}
