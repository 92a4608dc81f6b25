// Package cache implements the aggregate cache on top of Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/color3/backend/internal/application/adapter"
	"github.com/color3/backend/internal/domain/aggregate"
	"github.com/color3/backend/internal/integration/persistence/model"
)

const (
	// AggregateKey is the Redis key holding the serialized aggregate.
	AggregateKey = "color3:aggregate:v1"

	// GenerationKey counts invalidations so that a result computed before a
	// write is never stored after it.
	GenerationKey = "color3:aggregate:generation"
)

// redisAggregateCache implements the adapter.AggregateCache interface.
type redisAggregateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAggregateCache creates a new Redis-backed aggregate cache.
func NewRedisAggregateCache(client *redis.Client, ttl time.Duration) adapter.AggregateCache {
	return &redisAggregateCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached aggregate, if any.
func (c *redisAggregateCache) Get(ctx context.Context) (*aggregate.Result, bool, error) {
	data, err := c.client.Get(ctx, AggregateKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read aggregate cache: %w", err)
	}

	var payload model.AggregatePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, false, fmt.Errorf("failed to decode aggregate cache: %w", err)
	}

	return payload.ToResult(), true, nil
}

// Generation returns the current invalidation counter, 0 if never invalidated.
func (c *redisAggregateCache) Generation(ctx context.Context) (int64, error) {
	generation, err := c.client.Get(ctx, GenerationKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read aggregate generation: %w", err)
	}
	return generation, nil
}

// Set stores the aggregate with the configured TTL. The write runs in a
// WATCH transaction on the generation key and is dropped when the generation
// moved past the one the caller read before computing.
func (c *redisAggregateCache) Set(ctx context.Context, result *aggregate.Result, generation int64) (bool, error) {
	data, err := json.Marshal(model.AggregatePayloadFromResult(result))
	if err != nil {
		return false, fmt.Errorf("failed to encode aggregate: %w", err)
	}

	stored := false
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, GenerationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, AggregateKey, data, c.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		stored = true
		return nil
	}, GenerationKey)

	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to write aggregate cache: %w", err)
	}
	return stored, nil
}

// Invalidate removes the cached aggregate and advances the generation.
func (c *redisAggregateCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, GenerationKey)
		pipe.Del(ctx, AggregateKey)
		return nil
	})
	return err
}

// Ping checks the Redis connection.
func (c *redisAggregateCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
