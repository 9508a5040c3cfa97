package ports

import (
	"context"

	catalog "storefront/internal/features/catalog/domain"
	"storefront/internal/features/lists/domain"
)

// ListRepository persists the product lists of a session.
type ListRepository interface {
	// Load returns the stored IDs. Missing or corrupt entries yield an empty list.
	Load(ctx context.Context, kind domain.Kind, sessionID string) ([]catalog.ProductID, error)
	Save(ctx context.Context, kind domain.Kind, sessionID string, ids []catalog.ProductID) error
}

// ProductLookup resolves list entries for display.
type ProductLookup interface {
	GetProduct(ctx context.Context, id catalog.ProductID) (*catalog.Product, error)
}

// ListService is the primary port used by handlers.
type ListService interface {
	Get(ctx context.Context, kind domain.Kind, sessionID string) (domain.View, error)
	Toggle(ctx context.Context, kind domain.Kind, sessionID string, id catalog.ProductID) (domain.View, error)
	Clear(ctx context.Context, kind domain.Kind, sessionID string) (domain.View, error)
}
