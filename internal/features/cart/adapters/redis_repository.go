package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/cache"
	"storefront/internal/core/logger"
	"storefront/internal/features/cart/domain"

	"go.uber.org/zap"
)

const cartKeyPrefix = "ferremaxCart:"

// RedisCartRepository implements ports.CartRepository on the cache.
type RedisCartRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisCartRepository creates a new RedisCartRepository. Every save refreshes ttl.
func NewRedisCartRepository(c cache.Cache, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{cache: c, ttl: ttl}
}

// Load returns the persisted lines. A corrupt entry is logged and treated as empty.
func (r *RedisCartRepository) Load(ctx context.Context, sessionID string) ([]domain.Line, error) {
	data, err := r.cache.Get(ctx, cartKey(sessionID))
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var lines []domain.Line
	if err := json.Unmarshal(data, &lines); err != nil {
		logger.ForSession("cart", sessionID).Warn("Discarding corrupt cart entry", zap.Error(err))
		return nil, nil
	}
	return lines, nil
}

// Save stores lines. An empty cart removes the key.
func (r *RedisCartRepository) Save(ctx context.Context, sessionID string, lines []domain.Line) error {
	if len(lines) == 0 {
		if err := r.cache.Delete(ctx, cartKey(sessionID)); err != nil {
			return fmt.Errorf("failed to delete cart: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := r.cache.Set(ctx, cartKey(sessionID), data, r.ttl); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func cartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}
