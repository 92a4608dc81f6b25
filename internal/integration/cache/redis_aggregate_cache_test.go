package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"

	"github.com/color3/backend/internal/domain/aggregate"
	"github.com/color3/backend/internal/domain/entity"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func sampleResult() *aggregate.Result {
	sub := &entity.Submission{}
	sub.Months[4] = &entity.ColorValue{Hex: "#16A34A", Family: entity.ColorFamilyGreen}
	sub.DaysOfWeek[0] = &entity.ColorValue{Hex: "#FACC15", Family: entity.ColorFamilyYellow}
	return aggregate.Aggregate([]*entity.Submission{sub})
}

func TestRedisAggregateCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestCache(t)
	c := NewRedisAggregateCache(client, time.Minute)

	if _, ok, err := c.Get(ctx); ok || err != nil {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	want := sampleResult()
	if stored, err := c.Set(ctx, want, 0); err != nil || !stored {
		t.Fatalf("Set failed: stored=%v err=%v", stored, err)
	}
	if ttl := mr.TTL(AggregateKey); ttl != time.Minute {
		t.Errorf("TTL = %v, expected 1m", ttl)
	}

	got, ok, err := c.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}

	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate failed: %v", err)
	}
	if mr.Exists(AggregateKey) {
		t.Error("key should be deleted")
	}
	if generation, err := c.Generation(ctx); err != nil || generation != 1 {
		t.Errorf("Generation = %d, %v; expected 1", generation, err)
	}
}

func TestRedisAggregateCache_SetAfterInvalidateIsDiscarded(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestCache(t)
	c := NewRedisAggregateCache(client, time.Minute)

	generation, err := c.Generation(ctx)
	if err != nil {
		t.Fatalf("Generation failed: %v", err)
	}

	// A write lands while the aggregate is being computed.
	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate failed: %v", err)
	}

	stored, err := c.Set(ctx, sampleResult(), generation)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if stored {
		t.Error("result computed before the invalidation must not be stored")
	}
	if mr.Exists(AggregateKey) {
		t.Error("stale aggregate was written")
	}

	current, err := c.Generation(ctx)
	if err != nil {
		t.Fatalf("Generation failed: %v", err)
	}
	if stored, err := c.Set(ctx, sampleResult(), current); err != nil || !stored {
		t.Errorf("Set with current generation: stored=%v err=%v", stored, err)
	}
	if _, ok, err := c.Get(ctx); !ok || err != nil {
		t.Errorf("expected hit, got ok=%v err=%v", ok, err)
	}
}

func TestRedisAggregateCache_Expiry(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestCache(t)
	c := NewRedisAggregateCache(client, time.Minute)

	_, _ = c.Set(ctx, sampleResult(), 0)
	mr.FastForward(2 * time.Minute)

	if _, ok, _ := c.Get(ctx); ok {
		t.Error("expected entry to expire")
	}
}

func TestRedisAggregateCache_Errors(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestCache(t)
	c := NewRedisAggregateCache(client, time.Minute)

	if err := mr.Set(AggregateKey, "{not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, ok, err := c.Get(ctx); ok || err == nil {
		t.Errorf("expected decode error, got ok=%v err=%v", ok, err)
	}

	if err := c.Ping(ctx); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
	mr.Close()
	if err := c.Ping(ctx); err == nil {
		t.Error("expected ping error after server shutdown")
	}
}

func TestNoopAggregateCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoopAggregateCache()

	if stored, err := c.Set(ctx, sampleResult(), 0); stored || err != nil {
		t.Fatalf("noop Set: stored=%v err=%v", stored, err)
	}
	if _, ok, err := c.Get(ctx); ok || err != nil {
		t.Errorf("noop cache must always miss, got ok=%v err=%v", ok, err)
	}
	if err := c.Invalidate(ctx); err != nil {
		t.Errorf("Invalidate failed: %v", err)
	}
	if err := c.Ping(ctx); !errors.Is(err, ErrCacheDisabled) {
		t.Errorf("expected ErrCacheDisabled, got %v", err)
	}
}
