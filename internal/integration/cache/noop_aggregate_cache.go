package cache

import (
	"context"
	"errors"

	"github.com/color3/backend/internal/application/adapter"
	"github.com/color3/backend/internal/domain/aggregate"
)

// ErrCacheDisabled is reported by Ping when no cache backend is configured.
var ErrCacheDisabled = errors.New("aggregate cache disabled")

// noopAggregateCache always misses.
type noopAggregateCache struct{}

// NewNoopAggregateCache creates a cache that stores nothing.
func NewNoopAggregateCache() adapter.AggregateCache {
	return noopAggregateCache{}
}

func (noopAggregateCache) Get(context.Context) (*aggregate.Result, bool, error) {
	return nil, false, nil
}

func (noopAggregateCache) Generation(context.Context) (int64, error) {
	return 0, nil
}

func (noopAggregateCache) Set(context.Context, *aggregate.Result, int64) (bool, error) {
	return false, nil
}

func (noopAggregateCache) Invalidate(context.Context) error {
	return nil
}

func (noopAggregateCache) Ping(context.Context) error {
	return ErrCacheDisabled
}
