package service

import (
	"context"

	"Loyalty/internal/cache"
	dom "Loyalty/internal/domain"

	"golang.org/x/sync/singleflight"
)

// StoreService serves the participating-store directory, read through the
// Redis cache. If c is nil, caching is disabled.
type StoreService struct {
	load  func(string) ([]dom.Store, error)
	path  string
	cache *cache.StoreCache
	sf    singleflight.Group
}

// NewStoreService returns a StoreService reading the feed at path via load.
func NewStoreService(load func(string) ([]dom.Store, error), path string, c *cache.StoreCache) *StoreService {
	return &StoreService{load: load, path: path, cache: c}
}

// List returns the store directory, re-reading the feed on cache miss.
// Concurrent misses collapse into a single feed read.
func (s *StoreService) List(ctx context.Context) ([]dom.Store, error) {
	if s.cache == nil {
		return s.load(s.path)
	}
	v, err, _ := s.sf.Do("stores", func() (interface{}, error) {
		if list, err := s.cache.Get(ctx); err == nil && list != nil {
			return list, nil
		}
		list, err := s.load(s.path)
		if err != nil {
			return nil, err
		}
		_ = s.cache.Set(ctx, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Store), nil
}
