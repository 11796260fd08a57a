package services

import (
	"context"
	"fmt"

	"github.com/crossborder/landed_cost_app/internal/core/domain"
	portsrepo "github.com/crossborder/landed_cost_app/internal/core/ports/repositories"
)

// ReferenceService exposes the read-only reference catalogs to the transport
// layer.
type ReferenceService struct {
	refRepo portsrepo.ReferenceDataRepository
}

func NewReferenceService(refRepo portsrepo.ReferenceDataRepository) *ReferenceService {
	return &ReferenceService{refRepo: refRepo}
}

func (s *ReferenceService) GetCountryByCode(ctx context.Context, code string) (*domain.Country, error) {
	country, err := s.refRepo.FindCountry(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get country by code in service: %w", err)
	}
	return country, nil
}

func (s *ReferenceService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	currency, err := s.refRepo.FindCurrency(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *ReferenceService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	countries, err := s.refRepo.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries in service: %w", err)
	}
	if countries == nil {
		return []domain.Country{}, nil
	}
	return countries, nil
}

func (s *ReferenceService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.refRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *ReferenceService) ListProductCategories(ctx context.Context) ([]domain.ProductCategory, error) {
	categories, err := s.refRepo.ListProductCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list product categories in service: %w", err)
	}
	if categories == nil {
		return []domain.ProductCategory{}, nil
	}
	return categories, nil
}
