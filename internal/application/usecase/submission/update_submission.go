package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/color3/backend/internal/application/adapter"
	"github.com/color3/backend/internal/domain/entity"
)

// UpdateSubmissionInput represents the input for replacing a submission.
type UpdateSubmissionInput struct {
	SubmissionID uuid.UUID
	Mapping      MappingInput
}

// UpdateSubmissionOutput represents the output of replacing a submission.
type UpdateSubmissionOutput struct {
	Submission *entity.Submission
}

// UpdateSubmissionUseCase handles resubmission over an existing record.
type UpdateSubmissionUseCase struct {
	submissionRepo adapter.SubmissionRepository
	aggregateCache adapter.AggregateCache
	clock          adapter.Clock
}

// NewUpdateSubmissionUseCase creates a new UpdateSubmissionUseCase instance.
func NewUpdateSubmissionUseCase(
	submissionRepo adapter.SubmissionRepository,
	aggregateCache adapter.AggregateCache,
	clock adapter.Clock,
) *UpdateSubmissionUseCase {
	return &UpdateSubmissionUseCase{
		submissionRepo: submissionRepo,
		aggregateCache: aggregateCache,
		clock:          clock,
	}
}

// Execute validates the new arrays and replaces the stored ones in place.
func (uc *UpdateSubmissionUseCase) Execute(ctx context.Context, input UpdateSubmissionInput) (*UpdateSubmissionOutput, error) {
	arrays, err := buildColorArrays(input.Mapping)
	if err != nil {
		return nil, err
	}

	submission, err := uc.submissionRepo.FindByID(ctx, input.SubmissionID)
	if err != nil {
		return nil, notFoundOr(err, "find submission")
	}

	submission.Replace(arrays.months, arrays.daysOfMonth, arrays.daysOfWeek, uc.clock.Now())

	if err := uc.submissionRepo.Update(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to update submission: %w", err)
	}

	invalidateAggregate(ctx, uc.aggregateCache, submission.ID.String())
	slog.Info("Submission updated", "submission_id", submission.ID)

	return &UpdateSubmissionOutput{Submission: submission}, nil
}
