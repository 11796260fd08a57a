package domain_test

import (
	"testing"

	"github.com/crossborder/landed_cost_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineItem_EffectiveQuantity(t *testing.T) {
	tests := []struct {
		name string
		item domain.LineItem
		want int
	}{
		{
			name: "explicit quantity",
			item: domain.LineItem{Quantity: 3},
			want: 3,
		},
		{
			name: "unset quantity defaults to 1",
			item: domain.LineItem{},
			want: 1,
		},
		{
			name: "negative quantity defaults to 1",
			item: domain.LineItem{Quantity: -2},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.EffectiveQuantity())
		})
	}
}

func TestLineItem_ExtendedAmount(t *testing.T) {
	tests := []struct {
		name string
		item domain.LineItem
		want decimal.Decimal
	}{
		{
			name: "per-unit amount times quantity",
			item: domain.LineItem{Amount: decimal.RequireFromString("45.00"), Quantity: 2},
			want: decimal.RequireFromString("90.00"),
		},
		{
			name: "quantity defaulted",
			item: domain.LineItem{Amount: decimal.RequireFromString("25.00")},
			want: decimal.RequireFromString("25.00"),
		},
		{
			name: "zero amount",
			item: domain.LineItem{Amount: decimal.Zero, Quantity: 5},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.item.ExtendedAmount()),
				"expected %s, got %s", tt.want, tt.item.ExtendedAmount())
		})
	}
}

func TestCurrency_IsBase(t *testing.T) {
	base := domain.Currency{Code: "USD", ExchangeRateToBase: decimal.RequireFromString("1.0")}
	other := domain.Currency{Code: "CAD", ExchangeRateToBase: decimal.RequireFromString("1.36")}

	assert.True(t, base.IsBase())
	assert.False(t, other.IsBase())
}
