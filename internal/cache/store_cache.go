package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "Loyalty/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyStores = "stores:list"

// StoreCache caches the parsed store directory in Redis.
type StoreCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStoreCache returns a new StoreCache.
func NewStoreCache(rdb *redis.Client, ttl time.Duration) *StoreCache {
	return &StoreCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached directory or nil if miss.
func (c *StoreCache) Get(ctx context.Context) ([]dom.Store, error) {
	b, err := c.rdb.Get(ctx, keyStores).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Store
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Set stores the directory in cache.
func (c *StoreCache) Set(ctx context.Context, list []dom.Store) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyStores, b, c.ttl).Err()
}
