package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

type CacheService interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
	DeletePattern(ctx context.Context, pattern string) error
}

type noopCache struct{}

// NewNoopCache returns a cache that stores nothing. Every Get misses.
func NewNoopCache() CacheService {
	return noopCache{}
}

func (noopCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}

func (noopCache) Get(context.Context, string, interface{}) error {
	return ErrCacheMiss
}

func (noopCache) Delete(context.Context, string) error {
	return nil
}

func (noopCache) DeletePattern(context.Context, string) error {
	return nil
}
