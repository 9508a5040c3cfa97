package ports

import (
	"context"

	"storefront/internal/features/cart/domain"
	catalog "storefront/internal/features/catalog/domain"
)

// CartRepository persists the line list of a session.
type CartRepository interface {
	// Load returns the persisted lines. Missing or corrupt entries yield an empty list.
	Load(ctx context.Context, sessionID string) ([]domain.Line, error)
	// Save replaces the persisted lines.
	Save(ctx context.Context, sessionID string, lines []domain.Line) error
}

// ProductLookup resolves the price and stock snapshot used by AddLine.
type ProductLookup interface {
	GetProduct(ctx context.Context, id catalog.ProductID) (*catalog.Product, error)
}

// CartService is the primary port used by handlers and the checkout.
type CartService interface {
	Get(ctx context.Context, sessionID string) (domain.View, error)
	AddLine(ctx context.Context, sessionID string, productID catalog.ProductID, quantity int) (domain.View, error)
	RemoveLine(ctx context.Context, sessionID string, productID catalog.ProductID) (domain.View, error)
	SetQuantity(ctx context.Context, sessionID string, productID catalog.ProductID, quantity int) (domain.View, error)
	Clear(ctx context.Context, sessionID string) (domain.View, error)
	Snapshot(ctx context.Context, sessionID string) (domain.Snapshot, error)
}
