package aggregation

import (
	"context"

	"github.com/color3/backend/internal/application/adapter"
	tricolorday "github.com/color3/backend/internal/application/usecase/tricolor_day"
	"github.com/color3/backend/internal/domain/aggregate"
	"github.com/color3/backend/internal/domain/entity"
	"github.com/color3/backend/internal/domain/tricolor"
)

// GetCommunityTriColorDaysInput represents the input for the community search.
type GetCommunityTriColorDaysInput struct {
	HorizonMonths *int
}

// GetCommunityTriColorDaysOutput represents the community best-guess mapping and its matches.
type GetCommunityTriColorDaysOutput struct {
	TotalSubmissions int
	Mapping          entity.UnitMapping
	Window           tricolor.Window
	Matches          []tricolor.Match
}

// GetCommunityTriColorDaysUseCase handles tri-color searches over the population's top picks.
type GetCommunityTriColorDaysUseCase struct {
	getAggregate *GetAggregateUseCase
	horizon      tricolorday.HorizonPolicy
	clock        adapter.Clock
}

// NewGetCommunityTriColorDaysUseCase creates a new GetCommunityTriColorDaysUseCase instance.
func NewGetCommunityTriColorDaysUseCase(
	getAggregate *GetAggregateUseCase,
	horizon tricolorday.HorizonPolicy,
	clock adapter.Clock,
) *GetCommunityTriColorDaysUseCase {
	return &GetCommunityTriColorDaysUseCase{
		getAggregate: getAggregate,
		horizon:      horizon,
		clock:        clock,
	}
}

// Execute derives the best-guess mapping and searches it.
func (uc *GetCommunityTriColorDaysUseCase) Execute(ctx context.Context, input GetCommunityTriColorDaysInput) (*GetCommunityTriColorDaysOutput, error) {
	months, err := uc.horizon.Resolve(input.HorizonMonths)
	if err != nil {
		return nil, err
	}

	agg, err := uc.getAggregate.Execute(ctx, GetAggregateInput{})
	if err != nil {
		return nil, err
	}

	mapping := aggregate.BestGuessMapping(agg.Result)
	now := uc.clock.Now()

	return &GetCommunityTriColorDaysOutput{
		TotalSubmissions: agg.Result.TotalSubmissions,
		Mapping:          mapping,
		Window:           tricolor.NewWindow(now, months),
		Matches:          tricolor.FindMatchesAt(&mapping, months, now),
	}, nil
}
