package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/cache"
	"storefront/internal/core/logger"
	catalog "storefront/internal/features/catalog/domain"
	"storefront/internal/features/lists/domain"

	"go.uber.org/zap"
)

var keyPrefixes = map[domain.Kind]string{
	domain.Favorites: "ferremaxFavorites:",
	domain.Compare:   "ferremaxCompare:",
}

// RedisListRepository implements ports.ListRepository on the cache.
type RedisListRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisListRepository creates a new RedisListRepository.
func NewRedisListRepository(c cache.Cache, ttl time.Duration) *RedisListRepository {
	return &RedisListRepository{cache: c, ttl: ttl}
}

// Load returns the stored IDs. Entries may hold plain IDs or full product
// objects; anything else is discarded.
func (r *RedisListRepository) Load(ctx context.Context, kind domain.Kind, sessionID string) ([]catalog.ProductID, error) {
	key, err := listKey(kind, sessionID)
	if err != nil {
		return nil, err
	}

	data, err := r.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", kind, err)
	}

	var ids []catalog.ProductID
	if err := json.Unmarshal(data, &ids); err == nil {
		return ids, nil
	}

	var products []catalog.Product
	if err := json.Unmarshal(data, &products); err != nil {
		logger.ForSession("lists", sessionID).Warn("Discarding corrupt list entry", zap.String("kind", string(kind)), zap.Error(err))
		return nil, nil
	}
	ids = make([]catalog.ProductID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// Save stores the IDs. An empty list removes the key.
func (r *RedisListRepository) Save(ctx context.Context, kind domain.Kind, sessionID string, ids []catalog.ProductID) error {
	key, err := listKey(kind, sessionID)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		if err := r.cache.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", kind, err)
		}
		return nil
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", kind, err)
	}
	if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save %s: %w", kind, err)
	}
	return nil
}

func listKey(kind domain.Kind, sessionID string) (string, error) {
	prefix, ok := keyPrefixes[kind]
	if !ok {
		return "", fmt.Errorf("unknown list kind %q", kind)
	}
	return prefix + sessionID, nil
}
