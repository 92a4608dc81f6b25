// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/color3/backend/internal/domain/entity"
)

// SubmissionRepository defines the interface for submission persistence operations.
type SubmissionRepository interface {
	// Create creates a new submission in the database.
	Create(ctx context.Context, submission *entity.Submission) error

	// FindByID retrieves a submission by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Submission, error)

	// Update overwrites an existing submission's arrays and update time.
	Update(ctx context.Context, submission *entity.Submission) error

	// Count returns the number of stored submissions.
	Count(ctx context.Context) (int64, error)

	// ForEachBatch streams all submissions ordered by ID in batches of batchSize.
	// Iteration stops at the first error returned by fn.
	ForEachBatch(ctx context.Context, batchSize int, fn func(batch []*entity.Submission) error) error
}
