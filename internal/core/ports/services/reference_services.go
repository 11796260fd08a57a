package services

import (
	"context"

	"github.com/crossborder/landed_cost_app/internal/core/domain"
)

// ReferenceReaderSvc exposes the read-only reference catalogs.
type ReferenceReaderSvc interface {
	// GetCountryByCode retrieves a specific country by its alpha-2 code.
	GetCountryByCode(ctx context.Context, code string) (*domain.Country, error)

	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCountries retrieves all supported countries.
	ListCountries(ctx context.Context) ([]domain.Country, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// ListProductCategories retrieves all known product categories.
	ListProductCategories(ctx context.Context) ([]domain.ProductCategory, error)
}
