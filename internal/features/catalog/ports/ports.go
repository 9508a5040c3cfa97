package ports

import (
	"context"

	"storefront/internal/features/catalog/domain"
)

// ProductProvider is the secondary port for catalog reads.
type ProductProvider interface {
	// ListProducts returns the full catalog.
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// GetProduct returns one product or an error wrapping domain.ErrProductNotFound.
	GetProduct(ctx context.Context, id domain.ProductID) (*domain.Product, error)
}

// CatalogService is the primary port used by handlers and other features.
type CatalogService interface {
	ListProducts(ctx context.Context, filter domain.Filter) (*domain.Listing, error)
	GetProduct(ctx context.Context, id domain.ProductID) (*domain.Product, error)
}
