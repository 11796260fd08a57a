package domain

import "github.com/shopspring/decimal"

// EndUse indicates the declared purpose of the imported goods.
type EndUse string

const (
	ForResale    EndUse = "FOR_RESALE"
	NotForResale EndUse = "NOT_FOR_RESALE"
)

// LineItem is a single product line within a shipment.
// Amount is the per-unit price; the extended amount is Amount * Quantity.
type LineItem struct {
	SKU         string          `json:"sku"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    int             `json:"quantity"`
	HSCode      string          `json:"hsCode,omitempty"`
	Description string          `json:"description,omitempty"`
}

// EffectiveQuantity returns the quantity, defaulting to 1 when unset.
func (li LineItem) EffectiveQuantity() int {
	if li.Quantity <= 0 {
		return 1
	}
	return li.Quantity
}

// ExtendedAmount returns the per-unit amount multiplied by the effective quantity.
func (li LineItem) ExtendedAmount() decimal.Decimal {
	return li.Amount.Mul(decimal.NewFromInt(int64(li.EffectiveQuantity())))
}

// ShipmentRequest is the input to a landed cost calculation.
type ShipmentRequest struct {
	CurrencyCode       string          `json:"currencyCode"`
	DestinationCountry string          `json:"destinationCountry"`
	Items              []LineItem      `json:"items"`
	ShippingCost       decimal.Decimal `json:"shippingCost"`
	EndUse             EndUse          `json:"endUse"`
}
