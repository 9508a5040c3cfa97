package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisAdapter implements Cache on top of Redis. Every key is stored under
// an optional namespace so several storefront environments can share one
// Redis database.
type RedisAdapter struct {
	client *redis.Client
	prefix string
	addr   string
}

// RedisOption configures a RedisAdapter.
type RedisOption func(*RedisAdapter)

// WithKeyPrefix namespaces every key as "<prefix>:<key>". An empty prefix
// leaves keys untouched.
func WithKeyPrefix(prefix string) RedisOption {
	return func(r *RedisAdapter) {
		if prefix != "" {
			r.prefix = prefix + ":"
		}
	}
}

// NewRedisAdapter creates a new Redis cache adapter.
// The redisURL should be in the format: redis://[:password@]host[:port][/database]
func NewRedisAdapter(redisURL string, opts ...RedisOption) (*RedisAdapter, error) {
	redisOpts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	r := &RedisAdapter{client: redis.NewClient(redisOpts), addr: redisOpts.Addr}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Get returns the stored session or catalog payload.
func (r *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	case err != nil:
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return val, nil
}

// Set stores value under key. A non-positive TTL keeps the key until deleted.
func (r *RedisAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Missing keys are not an error.
func (r *RedisAdapter) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Ping is used by the /health endpoint.
func (r *RedisAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis %s unreachable: %w", r.addr, err)
	}
	return nil
}

// Close closes the Redis connection.
func (r *RedisAdapter) Close() error {
	return r.client.Close()
}

func (r *RedisAdapter) key(k string) string {
	return r.prefix + k
}
