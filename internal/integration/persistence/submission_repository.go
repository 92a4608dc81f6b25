// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/color3/backend/internal/application/adapter"
	"github.com/color3/backend/internal/domain/entity"
	domainerror "github.com/color3/backend/internal/domain/error"
	"github.com/color3/backend/internal/integration/persistence/model"
)

// submissionRepository implements the adapter.SubmissionRepository interface.
type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository instance.
func NewSubmissionRepository(db *gorm.DB) adapter.SubmissionRepository {
	return &submissionRepository{
		db: db,
	}
}

// Create creates a new submission in the database.
func (r *submissionRepository) Create(ctx context.Context, submission *entity.Submission) error {
	submissionModel := model.SubmissionFromEntity(submission)
	result := r.db.WithContext(ctx).Create(submissionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a submission by its ID.
func (r *submissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Submission, error) {
	var submissionModel model.SubmissionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&submissionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSubmissionNotFound
		}
		return nil, result.Error
	}
	return submissionModel.ToEntity(), nil
}

// Update overwrites the three arrays and the update time of an existing submission.
func (r *submissionRepository) Update(ctx context.Context, submission *entity.Submission) error {
	submissionModel := model.SubmissionFromEntity(submission)
	result := r.db.WithContext(ctx).
		Model(&model.SubmissionModel{}).
		Where("id = ?", submission.ID).
		Updates(map[string]interface{}{
			"months_json":        submissionModel.MonthsJSON,
			"days_of_month_json": submissionModel.DaysOfMonthJSON,
			"days_of_week_json":  submissionModel.DaysOfWeekJSON,
			"updated_at":         submissionModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSubmissionNotFound
	}
	return nil
}

// Count returns the number of stored submissions.
func (r *submissionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.SubmissionModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// ForEachBatch streams all submissions in primary key order, batchSize rows at a time.
func (r *submissionRepository) ForEachBatch(ctx context.Context, batchSize int, fn func(batch []*entity.Submission) error) error {
	var models []model.SubmissionModel
	result := r.db.WithContext(ctx).
		FindInBatches(&models, batchSize, func(tx *gorm.DB, _ int) error {
			batch := make([]*entity.Submission, len(models))
			for i := range models {
				batch[i] = models[i].ToEntity()
			}
			return fn(batch)
		})
	return result.Error
}
