package aggregation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/color3/backend/internal/application/adapter"
	"github.com/color3/backend/internal/domain/aggregate"
	domainerror "github.com/color3/backend/internal/domain/error"
)

// CreateSnapshotInput represents the input for recording a snapshot.
type CreateSnapshotInput struct {
	// Force records a snapshot even when inputs are unchanged.
	Force bool
}

// CreateSnapshotOutput represents the result of recording a snapshot.
// Created is false when the latest snapshot already reflects the current inputs.
type CreateSnapshotOutput struct {
	Snapshot *aggregate.Snapshot
	Created  bool
}

// CreateSnapshotUseCase handles persisting the current aggregate.
type CreateSnapshotUseCase struct {
	submissionRepo adapter.SubmissionRepository
	snapshotRepo   adapter.SnapshotRepository
	clock          adapter.Clock
	batchSize      int
}

// NewCreateSnapshotUseCase creates a new CreateSnapshotUseCase instance.
func NewCreateSnapshotUseCase(
	submissionRepo adapter.SubmissionRepository,
	snapshotRepo adapter.SnapshotRepository,
	clock adapter.Clock,
	batchSize int,
) *CreateSnapshotUseCase {
	return &CreateSnapshotUseCase{
		submissionRepo: submissionRepo,
		snapshotRepo:   snapshotRepo,
		clock:          clock,
		batchSize:      batchSize,
	}
}

// Execute computes the aggregate and stores it unless nothing changed since the last snapshot.
func (uc *CreateSnapshotUseCase) Execute(ctx context.Context, input CreateSnapshotInput) (*CreateSnapshotOutput, error) {
	result, inputsHash, err := collect(ctx, uc.submissionRepo, uc.batchSize)
	if err != nil {
		return nil, err
	}

	latest, err := uc.snapshotRepo.FindLatest(ctx)
	if err != nil && !errors.Is(err, domainerror.ErrSnapshotNotFound) {
		return nil, domainerror.NewAggregateError(
			domainerror.ErrCodeAggregateInternalError,
			"failed to read latest snapshot",
			err,
		)
	}

	if latest != nil && latest.InputsHash == inputsHash && !input.Force {
		slog.Debug("Aggregate unchanged, skipping snapshot", "snapshot_id", latest.ID)
		return &CreateSnapshotOutput{Snapshot: latest, Created: false}, nil
	}

	snapshot := aggregate.NewSnapshot(result, inputsHash, uc.clock.Now())
	if err := uc.snapshotRepo.Create(ctx, snapshot); err != nil {
		return nil, domainerror.NewAggregateError(
			domainerror.ErrCodeAggregateInternalError,
			"failed to store snapshot",
			err,
		)
	}

	slog.Info("Aggregate snapshot created",
		"snapshot_id", snapshot.ID,
		"total_submissions", snapshot.TotalSubmissions,
	)

	return &CreateSnapshotOutput{Snapshot: snapshot, Created: true}, nil
}
