package static

import (
	"context"
	"fmt"
	"strings"

	"github.com/crossborder/landed_cost_app/internal/apperrors"
	"github.com/crossborder/landed_cost_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReferenceStore is an immutable, in-memory implementation of the reference
// data repository. It is constructed once from seed tables and is safe to
// share across concurrent requests; no method mutates state.
type ReferenceStore struct {
	countryByCode  map[string]domain.Country
	currencyByCode map[string]domain.Currency
	categoryByCode map[string]domain.ProductCategory

	// Insertion order preserved for the list endpoints.
	countries  []domain.Country
	currencies []domain.Currency
	categories []domain.ProductCategory
}

// NewReferenceStore builds a store from the given tables, enforcing the
// reference data invariants: unique keys, tax rates and duty ranges within
// [0,1], duty range low <= high, and exactly one base currency with an
// exchange rate of 1.0.
func NewReferenceStore(countries []domain.Country, currencies []domain.Currency, categories []domain.ProductCategory) (*ReferenceStore, error) {
	s := &ReferenceStore{
		countryByCode:  make(map[string]domain.Country, len(countries)),
		currencyByCode: make(map[string]domain.Currency, len(currencies)),
		categoryByCode: make(map[string]domain.ProductCategory, len(categories)),
		countries:      make([]domain.Country, 0, len(countries)),
		currencies:     make([]domain.Currency, 0, len(currencies)),
		categories:     make([]domain.ProductCategory, 0, len(categories)),
	}

	one := decimal.NewFromInt(1)

	for _, c := range countries {
		key := normalizeKey(c.Code)
		if key == "" {
			return nil, fmt.Errorf("country %q has an empty code", c.Name)
		}
		if _, exists := s.countryByCode[key]; exists {
			return nil, fmt.Errorf("duplicate country code %q", key)
		}
		if c.TaxRate.IsNegative() || c.TaxRate.GreaterThan(one) {
			return nil, fmt.Errorf("country %q tax rate %s outside [0,1]", key, c.TaxRate)
		}
		c.Code = key
		s.countryByCode[key] = c
		s.countries = append(s.countries, c)
	}

	baseCount := 0
	for _, cur := range currencies {
		key := normalizeKey(cur.Code)
		if key == "" {
			return nil, fmt.Errorf("currency %q has an empty code", cur.Name)
		}
		if _, exists := s.currencyByCode[key]; exists {
			return nil, fmt.Errorf("duplicate currency code %q", key)
		}
		if !cur.ExchangeRateToBase.IsPositive() {
			return nil, fmt.Errorf("currency %q exchange rate %s is not positive", key, cur.ExchangeRateToBase)
		}
		if cur.IsBase() {
			baseCount++
		}
		cur.Code = key
		s.currencyByCode[key] = cur
		s.currencies = append(s.currencies, cur)
	}
	if baseCount != 1 {
		return nil, fmt.Errorf("reference data must contain exactly one base currency, found %d", baseCount)
	}

	for _, cat := range categories {
		key := normalizeKey(cat.HSCode)
		if key == "" {
			return nil, fmt.Errorf("product category %q has an empty HS code", cat.Description)
		}
		if _, exists := s.categoryByCode[key]; exists {
			return nil, fmt.Errorf("duplicate HS code %q", key)
		}
		if cat.DutyRateLow.IsNegative() || cat.DutyRateHigh.GreaterThan(one) || cat.DutyRateLow.GreaterThan(cat.DutyRateHigh) {
			return nil, fmt.Errorf("product category %q duty range [%s, %s] invalid", key, cat.DutyRateLow, cat.DutyRateHigh)
		}
		cat.HSCode = key
		s.categoryByCode[key] = cat
		s.categories = append(s.categories, cat)
	}

	return s, nil
}

// normalizeKey uppercases and trims a lookup key so that lookups are
// case-insensitive exact matches.
func normalizeKey(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// FindCountry retrieves a country by its alpha-2 code.
func (s *ReferenceStore) FindCountry(ctx context.Context, code string) (*domain.Country, error) {
	c, ok := s.countryByCode[normalizeKey(code)]
	if !ok {
		return nil, fmt.Errorf("country %q: %w", code, apperrors.ErrNotFound)
	}
	return &c, nil
}

// FindCurrency retrieves a currency by its ISO 4217 code.
func (s *ReferenceStore) FindCurrency(ctx context.Context, code string) (*domain.Currency, error) {
	c, ok := s.currencyByCode[normalizeKey(code)]
	if !ok {
		return nil, fmt.Errorf("currency %q: %w", code, apperrors.ErrNotFound)
	}
	return &c, nil
}

// FindProductCategory retrieves a product category by HS code.
func (s *ReferenceStore) FindProductCategory(ctx context.Context, hsCode string) (*domain.ProductCategory, error) {
	c, ok := s.categoryByCode[normalizeKey(hsCode)]
	if !ok {
		return nil, fmt.Errorf("product category %q: %w", hsCode, apperrors.ErrNotFound)
	}
	return &c, nil
}

// ListCountries returns all countries in seed order.
func (s *ReferenceStore) ListCountries(ctx context.Context) ([]domain.Country, error) {
	out := make([]domain.Country, len(s.countries))
	copy(out, s.countries)
	return out, nil
}

// ListCurrencies returns all currencies in seed order.
func (s *ReferenceStore) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	out := make([]domain.Currency, len(s.currencies))
	copy(out, s.currencies)
	return out, nil
}

// ListProductCategories returns all product categories in seed order.
func (s *ReferenceStore) ListProductCategories(ctx context.Context) ([]domain.ProductCategory, error) {
	out := make([]domain.ProductCategory, len(s.categories))
	copy(out, s.categories)
	return out, nil
}
