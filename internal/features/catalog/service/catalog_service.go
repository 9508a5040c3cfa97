package service

import (
	"context"
	"fmt"

	"storefront/internal/features/catalog/domain"
	"storefront/internal/features/catalog/ports"
)

// CatalogService serves filtered product listings.
type CatalogService struct {
	provider ports.ProductProvider
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(provider ports.ProductProvider) *CatalogService {
	return &CatalogService{provider: provider}
}

// ListProducts returns the products matching filter and the catalog facets.
func (s *CatalogService) ListProducts(ctx context.Context, filter domain.Filter) (*domain.Listing, error) {
	products, err := s.provider.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}
	return domain.NewListing(products, filter), nil
}

// GetProduct returns a single product.
func (s *CatalogService) GetProduct(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	if id == "" {
		return nil, domain.ErrProductNotFound
	}
	return s.provider.GetProduct(ctx, id)
}
