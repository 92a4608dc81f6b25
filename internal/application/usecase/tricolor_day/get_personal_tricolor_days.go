package tricolorday

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/color3/backend/internal/application/adapter"
	domainerror "github.com/color3/backend/internal/domain/error"
	"github.com/color3/backend/internal/domain/tricolor"
)

// GetPersonalTriColorDaysInput represents the input for a stored submission's search.
type GetPersonalTriColorDaysInput struct {
	SubmissionID  uuid.UUID
	HorizonMonths *int
}

// GetPersonalTriColorDaysOutput represents a submission's tri-color days.
type GetPersonalTriColorDaysOutput struct {
	SubmissionID uuid.UUID
	Window       tricolor.Window
	Matches      []tricolor.Match
}

// GetPersonalTriColorDaysUseCase handles tri-color searches over a stored submission.
type GetPersonalTriColorDaysUseCase struct {
	submissionRepo adapter.SubmissionRepository
	horizon        HorizonPolicy
	clock          adapter.Clock
}

// NewGetPersonalTriColorDaysUseCase creates a new GetPersonalTriColorDaysUseCase instance.
func NewGetPersonalTriColorDaysUseCase(
	submissionRepo adapter.SubmissionRepository,
	horizon HorizonPolicy,
	clock adapter.Clock,
) *GetPersonalTriColorDaysUseCase {
	return &GetPersonalTriColorDaysUseCase{
		submissionRepo: submissionRepo,
		horizon:        horizon,
		clock:          clock,
	}
}

// Execute loads the submission and searches its mapping.
func (uc *GetPersonalTriColorDaysUseCase) Execute(ctx context.Context, input GetPersonalTriColorDaysInput) (*GetPersonalTriColorDaysOutput, error) {
	months, err := uc.horizon.Resolve(input.HorizonMonths)
	if err != nil {
		return nil, err
	}

	submission, err := uc.submissionRepo.FindByID(ctx, input.SubmissionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSubmissionNotFound) {
			return nil, domainerror.NewSubmissionError(
				domainerror.ErrCodeSubmissionNotFound,
				"submission not found",
				domainerror.ErrSubmissionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find submission: %w", err)
	}

	mapping := submission.Mapping()
	now := uc.clock.Now()

	return &GetPersonalTriColorDaysOutput{
		SubmissionID: submission.ID,
		Window:       tricolor.NewWindow(now, months),
		Matches:      tricolor.FindMatchesAt(&mapping, months, now),
	}, nil
}
