package tricolorday

import (
	"context"
	"fmt"

	"github.com/color3/backend/internal/application/adapter"
	"github.com/color3/backend/internal/domain/entity"
	domainerror "github.com/color3/backend/internal/domain/error"
	"github.com/color3/backend/internal/domain/tricolor"
)

// FindTriColorDaysInput represents an ad-hoc mapping keyed by slot index.
// Months are 0-11, days of month 1-31 and days of week 0-6 with 0 = Sunday.
type FindTriColorDaysInput struct {
	Months        map[int]string
	DaysOfMonth   map[int]string
	DaysOfWeek    map[int]string
	HorizonMonths *int
}

// FindTriColorDaysOutput represents the matches for a mapping.
type FindTriColorDaysOutput struct {
	Window  tricolor.Window
	Mapping entity.UnitMapping
	Matches []tricolor.Match
}

// FindTriColorDaysUseCase handles tri-color day searches for an ad-hoc mapping.
type FindTriColorDaysUseCase struct {
	horizon HorizonPolicy
	clock   adapter.Clock
}

// NewFindTriColorDaysUseCase creates a new FindTriColorDaysUseCase instance.
func NewFindTriColorDaysUseCase(horizon HorizonPolicy, clock adapter.Clock) *FindTriColorDaysUseCase {
	return &FindTriColorDaysUseCase{
		horizon: horizon,
		clock:   clock,
	}
}

// Execute builds the mapping and searches the window starting this month.
func (uc *FindTriColorDaysUseCase) Execute(_ context.Context, input FindTriColorDaysInput) (*FindTriColorDaysOutput, error) {
	months, err := uc.horizon.Resolve(input.HorizonMonths)
	if err != nil {
		return nil, err
	}

	var mapping entity.UnitMapping
	if err := assign(input.Months, "months", mapping.SetMonth); err != nil {
		return nil, err
	}
	if err := assign(input.DaysOfMonth, "days_of_month", mapping.SetDayOfMonth); err != nil {
		return nil, err
	}
	if err := assign(input.DaysOfWeek, "days_of_week", mapping.SetDayOfWeek); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	return &FindTriColorDaysOutput{
		Window:  tricolor.NewWindow(now, months),
		Mapping: mapping,
		Matches: tricolor.FindMatchesAt(&mapping, months, now),
	}, nil
}

func assign(slots map[int]string, field string, set func(int, entity.ColorFamily) error) error {
	for index, name := range slots {
		family, err := entity.ParseColorFamily(name)
		if err != nil {
			return domainerror.NewColorError(
				domainerror.ErrCodeUnknownColorFamily,
				fmt.Sprintf("%s[%d]: unknown color family %q", field, index, name),
				err,
			)
		}
		if err := set(index, family); err != nil {
			return domainerror.NewTriColorError(
				domainerror.ErrCodeSlotOutOfRange,
				fmt.Sprintf("%s: slot %d is out of range", field, index),
				err,
			)
		}
	}
	return nil
}
