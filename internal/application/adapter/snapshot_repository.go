package adapter

import (
	"context"

	"github.com/color3/backend/internal/domain/aggregate"
)

// SnapshotRepository defines the interface for aggregate snapshot persistence.
type SnapshotRepository interface {
	// Create stores a new snapshot.
	Create(ctx context.Context, snapshot *aggregate.Snapshot) error

	// FindLatest returns the most recently computed snapshot.
	FindLatest(ctx context.Context) (*aggregate.Snapshot, error)
}
