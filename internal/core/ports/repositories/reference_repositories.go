package repositories

import (
	"context"

	"github.com/crossborder/landed_cost_app/internal/core/domain"
)

// ReferenceDataRepository defines read-only lookups over the static reference
// tables (countries, currencies, product categories). Lookups are exact-key
// after uppercase normalization. Implementations must be immutable after
// construction and safe for concurrent use.
type ReferenceDataRepository interface {
	// FindCountry retrieves a country by its ISO 3166-1 alpha-2 code.
	// Returns apperrors.ErrNotFound if the code is unknown.
	FindCountry(ctx context.Context, code string) (*domain.Country, error)

	// FindCurrency retrieves a currency by its ISO 4217 code.
	// Returns apperrors.ErrNotFound if the code is unknown.
	FindCurrency(ctx context.Context, code string) (*domain.Currency, error)

	// FindProductCategory retrieves a product category by HS code.
	// Returns apperrors.ErrNotFound if the code is unknown.
	FindProductCategory(ctx context.Context, hsCode string) (*domain.ProductCategory, error)

	// ListCountries retrieves all supported countries.
	ListCountries(ctx context.Context) ([]domain.Country, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// ListProductCategories retrieves all known product categories.
	ListProductCategories(ctx context.Context) ([]domain.ProductCategory, error)
}
