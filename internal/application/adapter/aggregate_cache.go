package adapter

import (
	"context"

	"github.com/color3/backend/internal/domain/aggregate"
)

// AggregateCache defines the interface for caching the population aggregate.
type AggregateCache interface {
	// Get returns the cached result. ok is false on a miss.
	Get(ctx context.Context) (result *aggregate.Result, ok bool, err error)

	// Generation returns a counter that every Invalidate advances.
	Generation(ctx context.Context) (int64, error)

	// Set stores the result until it expires or is invalidated, unless an
	// invalidation happened after generation was read. stored reports which.
	Set(ctx context.Context, result *aggregate.Result, generation int64) (stored bool, err error)

	// Invalidate drops the cached result and advances the generation.
	Invalidate(ctx context.Context) error

	// Ping reports whether the cache backend is reachable.
	Ping(ctx context.Context) error
}
