package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/crossborder/landed_cost_app/internal/apperrors"
	"github.com/crossborder/landed_cost_app/internal/core/domain"
	portsrepo "github.com/crossborder/landed_cost_app/internal/core/ports/repositories"
	"github.com/crossborder/landed_cost_app/internal/utils"
	"github.com/shopspring/decimal"
)

// taxLabels overrides the consumption tax display name per destination.
// Countries not listed here fall back to "Sales Tax".
var taxLabels = map[string]struct {
	label   string
	taxType string
}{
	"CA": {"GST", "GST"},
	"AU": {"GST", "GST"},
	"GB": {"VAT", "VAT"},
	"DE": {"VAT", "VAT"},
	"FR": {"VAT", "VAT"},
}

// LandedCostService computes landed cost estimates. It is stateless: each
// call is a pure function of the request and the reference data, apart from
// identifier generation.
type LandedCostService struct {
	refRepo    portsrepo.ReferenceDataRepository
	classifier *DutyClassifier
}

func NewLandedCostService(refRepo portsrepo.ReferenceDataRepository, classifier *DutyClassifier) *LandedCostService {
	return &LandedCostService{refRepo: refRepo, classifier: classifier}
}

// CreateLandedCost computes per-item duties, the aggregate tax and the cost
// breakdown for a shipment. The duties and items sequences preserve input
// order 1:1, and the subtotal identity total = items + duties + taxes +
// shipping holds exactly.
func (s *LandedCostService) CreateLandedCost(ctx context.Context, req domain.ShipmentRequest) (*domain.LandedCostResult, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("shipment must contain at least one item: %w", apperrors.ErrValidation)
	}
	if req.ShippingCost.IsNegative() {
		return nil, fmt.Errorf("shipping cost must not be negative: %w", apperrors.ErrValidation)
	}

	country, err := s.refRepo.FindCountry(ctx, req.DestinationCountry)
	if err != nil {
		return nil, fmt.Errorf("destination country %q: %w", req.DestinationCountry, apperrors.ErrUnknownCountry)
	}

	currency, err := s.refRepo.FindCurrency(ctx, req.CurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("currency %q: %w", req.CurrencyCode, apperrors.ErrUnknownCurrency)
	}

	itemsTotal := decimal.Zero
	dutiesTotal := decimal.Zero
	items := make([]domain.CalculatedItem, 0, len(req.Items))
	duties := make([]domain.CalculatedDuty, 0, len(req.Items))

	for i, item := range req.Items {
		if item.Amount.IsNegative() {
			return nil, fmt.Errorf("item %q amount must not be negative: %w", item.SKU, apperrors.ErrValidation)
		}

		extended := item.ExtendedAmount()
		itemsTotal = itemsTotal.Add(extended)

		classification := s.classifier.Classify(ctx, item.HSCode)
		dutyAmount := extended.Mul(classification.Rate)
		dutiesTotal = dutiesTotal.Add(dutyAmount)

		hsLabel := strings.TrimSpace(item.HSCode)
		if hsLabel == "" {
			hsLabel = domain.UnclassifiedHSCode
		}
		duties = append(duties, domain.CalculatedDuty{
			Amount: dutyAmount,
			Rate:   classification.Rate,
			HSCode: hsLabel,
		})

		items = append(items, domain.CalculatedItem{
			ID:          utils.NewLineItemID(i + 1),
			SKU:         item.SKU,
			Amount:      extended,
			Quantity:    item.EffectiveQuantity(),
			HSCode:      item.HSCode,
			Description: item.Description,
		})
	}

	// The tax base deliberately compounds duties and shipping into the
	// taxable value; destination consumption taxes apply to the landed
	// value, not the item value alone.
	taxBase := itemsTotal.Add(dutiesTotal).Add(req.ShippingCost)
	taxAmount := taxBase.Mul(country.TaxRate)
	tax := buildTax(country, currency, taxBase, taxAmount)

	total := itemsTotal.Add(dutiesTotal).Add(taxAmount).Add(req.ShippingCost)

	result := &domain.LandedCostResult{
		ID:            utils.NewLandedCostID(),
		GuaranteeCode: utils.NewGuaranteeCode(),
		CurrencyCode:  currency.Code,
		Items:         items,
		Duties:        duties,
		Taxes:         []domain.CalculatedTax{tax},
		AmountSubtotals: domain.AmountSubtotals{
			Items:    itemsTotal,
			Duties:   dutiesTotal,
			Taxes:    taxAmount,
			Shipping: req.ShippingCost,
			Total:    total,
		},
	}
	return result, nil
}

func buildTax(country *domain.Country, currency *domain.Currency, taxBase, taxAmount decimal.Decimal) domain.CalculatedTax {
	label := "Sales Tax"
	taxType := "SALES_TAX"
	if override, ok := taxLabels[country.Code]; ok {
		label = override.label
		taxType = override.taxType
	}

	formula := fmt.Sprintf("%s%% %s applied to items + duties + shipping (%s %s)",
		utils.FormatPercent(country.TaxRate), label, utils.FormatDisplayAmount(taxBase), currency.Code)

	return domain.CalculatedTax{
		Amount:      taxAmount,
		Formula:     formula,
		Description: label,
		Type:        taxType,
	}
}
