package submission

import (
	"context"

	"github.com/google/uuid"

	"github.com/color3/backend/internal/application/adapter"
	"github.com/color3/backend/internal/domain/entity"
)

// GetSubmissionInput represents the input for getting a submission.
type GetSubmissionInput struct {
	SubmissionID uuid.UUID
}

// GetSubmissionOutput represents the output of getting a submission.
type GetSubmissionOutput struct {
	Submission *entity.Submission
}

// GetSubmissionUseCase handles getting a submission by ID.
type GetSubmissionUseCase struct {
	submissionRepo adapter.SubmissionRepository
}

// NewGetSubmissionUseCase creates a new GetSubmissionUseCase instance.
func NewGetSubmissionUseCase(submissionRepo adapter.SubmissionRepository) *GetSubmissionUseCase {
	return &GetSubmissionUseCase{submissionRepo: submissionRepo}
}

// Execute performs the submission retrieval.
func (uc *GetSubmissionUseCase) Execute(ctx context.Context, input GetSubmissionInput) (*GetSubmissionOutput, error) {
	submission, err := uc.submissionRepo.FindByID(ctx, input.SubmissionID)
	if err != nil {
		return nil, notFoundOr(err, "find submission")
	}
	return &GetSubmissionOutput{Submission: submission}, nil
}
