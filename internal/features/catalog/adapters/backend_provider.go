package adapters

import (
	"context"
	"fmt"
	"net/url"

	"storefront/internal/core/apiclient"
	"storefront/internal/features/catalog/domain"
)

// BackendProductProvider reads the catalog from the storefront REST backend.
type BackendProductProvider struct {
	api *apiclient.Client
}

// NewBackendProductProvider creates a provider backed by api.
func NewBackendProductProvider(api *apiclient.Client) *BackendProductProvider {
	return &BackendProductProvider{api: api}
}

// ListProducts calls GET /api/productos.
func (p *BackendProductProvider) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := p.api.Get(ctx, "/api/productos", &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct calls GET /api/productos/:id.
func (p *BackendProductProvider) GetProduct(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	var product domain.Product
	err := p.api.Get(ctx, "/api/productos/"+url.PathEscape(string(id)), &product)
	if apiclient.IsNotFound(err) {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return &product, nil
}
