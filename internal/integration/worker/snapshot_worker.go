// Package worker runs periodic background jobs.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/color3/backend/internal/application/usecase/aggregation"
)

// SnapshotCreator records an aggregate snapshot.
type SnapshotCreator interface {
	Execute(ctx context.Context, input aggregation.CreateSnapshotInput) (*aggregation.CreateSnapshotOutput, error)
}

// SnapshotWorker periodically records aggregate snapshots.
type SnapshotWorker struct {
	creator  SnapshotCreator
	interval time.Duration
}

// SnapshotWorkerConfig holds configuration for the snapshot worker.
type SnapshotWorkerConfig struct {
	Interval time.Duration
}

// DefaultSnapshotWorkerConfig returns the default worker configuration.
func DefaultSnapshotWorkerConfig() SnapshotWorkerConfig {
	return SnapshotWorkerConfig{
		Interval: 15 * time.Minute,
	}
}

// NewSnapshotWorker creates a new snapshot worker.
func NewSnapshotWorker(creator SnapshotCreator, config SnapshotWorkerConfig) *SnapshotWorker {
	if config.Interval <= 0 {
		config.Interval = DefaultSnapshotWorkerConfig().Interval
	}
	return &SnapshotWorker{
		creator:  creator,
		interval: config.Interval,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *SnapshotWorker) Start(ctx context.Context) {
	slog.Info("Snapshot worker started", "interval", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Snapshot immediately on start, then on ticker
	w.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Snapshot worker shutting down")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *SnapshotWorker) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	out, err := w.creator.Execute(ctx, aggregation.CreateSnapshotInput{})
	if err != nil {
		slog.Error("Failed to create aggregate snapshot", "error", err)
		return
	}

	if !out.Created {
		slog.Debug("Aggregate snapshot unchanged", "snapshot_id", out.Snapshot.ID)
	}
}
