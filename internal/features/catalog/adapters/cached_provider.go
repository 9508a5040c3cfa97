package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"storefront/internal/core/cache"
	"storefront/internal/core/logger"
	"storefront/internal/features/catalog/domain"
	"storefront/internal/features/catalog/ports"

	"go.uber.org/zap"
)

const catalogCacheKey = "ferremaxCatalog"

// CachedProductProvider keeps the product listing in the cache for a short TTL.
// Single-product reads resolve from the cached listing when possible, since
// the cart needs fresh-enough stock without hammering the backend.
type CachedProductProvider struct {
	next  ports.ProductProvider
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedProductProvider wraps next with a cache.
func NewCachedProductProvider(next ports.ProductProvider, c cache.Cache, ttl time.Duration) *CachedProductProvider {
	return &CachedProductProvider{next: next, cache: c, ttl: ttl}
}

// ListProducts serves from cache, refreshing on a miss. Cache failures fall through to the backend.
func (p *CachedProductProvider) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if products, ok := p.cached(ctx); ok {
		return products, nil
	}

	products, err := p.next.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(products); err == nil {
		if err := p.cache.Set(ctx, catalogCacheKey, data, p.ttl); err != nil {
			logger.Get().Warn("Failed to cache catalog", zap.Error(err))
		}
	}
	return products, nil
}

// GetProduct looks in the cached listing first, then asks the backend.
func (p *CachedProductProvider) GetProduct(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	if products, ok := p.cached(ctx); ok {
		for i := range products {
			if products[i].ID == id {
				return &products[i], nil
			}
		}
	}
	return p.next.GetProduct(ctx, id)
}

// Invalidate drops the cached listing.
func (p *CachedProductProvider) Invalidate(ctx context.Context) error {
	return p.cache.Delete(ctx, catalogCacheKey)
}

func (p *CachedProductProvider) cached(ctx context.Context) ([]domain.Product, bool) {
	data, err := p.cache.Get(ctx, catalogCacheKey)
	if err != nil {
		if !errors.Is(err, cache.ErrKeyNotFound) {
			logger.Get().Warn("Catalog cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		logger.Get().Warn("Discarding corrupt catalog cache entry", zap.Error(err))
		return nil, false
	}
	return products, true
}
