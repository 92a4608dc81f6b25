package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/color3/backend/internal/application/adapter"
	"github.com/color3/backend/internal/domain/aggregate"
	domainerror "github.com/color3/backend/internal/domain/error"
	"github.com/color3/backend/internal/integration/persistence/model"
)

// snapshotRepository implements the adapter.SnapshotRepository interface.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository instance.
func NewSnapshotRepository(db *gorm.DB) adapter.SnapshotRepository {
	return &snapshotRepository{
		db: db,
	}
}

// Create stores a new snapshot.
func (r *snapshotRepository) Create(ctx context.Context, snapshot *aggregate.Snapshot) error {
	snapshotModel, err := model.AggregateSnapshotFromEntity(snapshot)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(snapshotModel).Error
}

// FindLatest returns the most recently computed snapshot.
func (r *snapshotRepository) FindLatest(ctx context.Context) (*aggregate.Snapshot, error) {
	var snapshotModel model.AggregateSnapshotModel
	result := r.db.WithContext(ctx).
		Order("computed_at DESC").
		First(&snapshotModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSnapshotNotFound
		}
		return nil, result.Error
	}
	return snapshotModel.ToEntity()
}
