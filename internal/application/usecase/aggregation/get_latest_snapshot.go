package aggregation

import (
	"context"
	"errors"

	"github.com/color3/backend/internal/application/adapter"
	"github.com/color3/backend/internal/domain/aggregate"
	domainerror "github.com/color3/backend/internal/domain/error"
)

// GetLatestSnapshotOutput represents the most recent snapshot.
type GetLatestSnapshotOutput struct {
	Snapshot *aggregate.Snapshot
}

// GetLatestSnapshotUseCase handles reading the newest snapshot.
type GetLatestSnapshotUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewGetLatestSnapshotUseCase creates a new GetLatestSnapshotUseCase instance.
func NewGetLatestSnapshotUseCase(snapshotRepo adapter.SnapshotRepository) *GetLatestSnapshotUseCase {
	return &GetLatestSnapshotUseCase{snapshotRepo: snapshotRepo}
}

// Execute returns the latest snapshot.
func (uc *GetLatestSnapshotUseCase) Execute(ctx context.Context) (*GetLatestSnapshotOutput, error) {
	snapshot, err := uc.snapshotRepo.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, domainerror.ErrSnapshotNotFound) {
			return nil, domainerror.NewAggregateError(
				domainerror.ErrCodeSnapshotNotFound,
				"no aggregate snapshot has been recorded",
				domainerror.ErrSnapshotNotFound,
			)
		}
		return nil, domainerror.NewAggregateError(
			domainerror.ErrCodeAggregateInternalError,
			"failed to read latest snapshot",
			err,
		)
	}
	return &GetLatestSnapshotOutput{Snapshot: snapshot}, nil
}
