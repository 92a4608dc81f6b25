package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/color3/backend/internal/application/adapter"
	"github.com/color3/backend/internal/domain/entity"
)

// CreateSubmissionInput represents the input for submission creation.
type CreateSubmissionInput struct {
	Mapping MappingInput
}

// CreateSubmissionOutput represents the output of submission creation.
type CreateSubmissionOutput struct {
	Submission *entity.Submission
}

// CreateSubmissionUseCase handles storing a new submission.
type CreateSubmissionUseCase struct {
	submissionRepo adapter.SubmissionRepository
	aggregateCache adapter.AggregateCache
	clock          adapter.Clock
}

// NewCreateSubmissionUseCase creates a new CreateSubmissionUseCase instance.
func NewCreateSubmissionUseCase(
	submissionRepo adapter.SubmissionRepository,
	aggregateCache adapter.AggregateCache,
	clock adapter.Clock,
) *CreateSubmissionUseCase {
	return &CreateSubmissionUseCase{
		submissionRepo: submissionRepo,
		aggregateCache: aggregateCache,
		clock:          clock,
	}
}

// Execute validates and stores the submission.
func (uc *CreateSubmissionUseCase) Execute(ctx context.Context, input CreateSubmissionInput) (*CreateSubmissionOutput, error) {
	arrays, err := buildColorArrays(input.Mapping)
	if err != nil {
		return nil, err
	}

	submission := entity.NewSubmission(arrays.months, arrays.daysOfMonth, arrays.daysOfWeek, uc.clock.Now())

	if err := uc.submissionRepo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	invalidateAggregate(ctx, uc.aggregateCache, submission.ID.String())
	slog.Info("Submission created", "submission_id", submission.ID)

	return &CreateSubmissionOutput{Submission: submission}, nil
}
