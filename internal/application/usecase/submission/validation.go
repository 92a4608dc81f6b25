// Package submission contains submission-related use cases.
package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/color3/backend/internal/application/adapter"
	"github.com/color3/backend/internal/domain/entity"
	domainerror "github.com/color3/backend/internal/domain/error"
)

// ColorInput is one submitted color. Family is optional; when present it must
// agree with the classification of Hex.
type ColorInput struct {
	Hex    string
	Family *string
}

// MappingInput holds the three positional arrays of a submission.
// A nil entry means the slot was left empty.
type MappingInput struct {
	Months      []*ColorInput
	DaysOfMonth []*ColorInput
	DaysOfWeek  []*ColorInput
}

type colorArrays struct {
	months      [entity.MonthsPerYear]*entity.ColorValue
	daysOfMonth [entity.DaysPerMonth]*entity.ColorValue
	daysOfWeek  [entity.DaysPerWeek]*entity.ColorValue
}

// buildColorArrays validates input and converts it to normalized color values.
func buildColorArrays(input MappingInput) (*colorArrays, error) {
	if len(input.Months) != entity.MonthsPerYear ||
		len(input.DaysOfMonth) != entity.DaysPerMonth ||
		len(input.DaysOfWeek) != entity.DaysPerWeek {
		return nil, domainerror.NewSubmissionError(
			domainerror.ErrCodeInvalidArrayLengths,
			fmt.Sprintf("expected %d months, %d days of month and %d days of week, got %d, %d and %d",
				entity.MonthsPerYear, entity.DaysPerMonth, entity.DaysPerWeek,
				len(input.Months), len(input.DaysOfMonth), len(input.DaysOfWeek)),
			domainerror.ErrInvalidArrayLengths,
		)
	}

	var arrays colorArrays
	if err := fillColors(arrays.months[:], input.Months, "months"); err != nil {
		return nil, err
	}
	if err := fillColors(arrays.daysOfMonth[:], input.DaysOfMonth, "days_of_month"); err != nil {
		return nil, err
	}
	if err := fillColors(arrays.daysOfWeek[:], input.DaysOfWeek, "days_of_week"); err != nil {
		return nil, err
	}

	return &arrays, nil
}

func fillColors(dst []*entity.ColorValue, src []*ColorInput, field string) error {
	for i, in := range src {
		if in == nil {
			continue
		}
		value, err := toColorValue(in, fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			return err
		}
		dst[i] = value
	}
	return nil
}

func toColorValue(in *ColorInput, slot string) (*entity.ColorValue, error) {
	hex := strings.TrimSpace(in.Hex)
	if hex == "" {
		return nil, domainerror.NewColorError(
			domainerror.ErrCodeMissingHex,
			slot+": hex is required",
			domainerror.ErrMissingHex,
		)
	}

	value, err := entity.NewColorValue(hex)
	if err != nil {
		return nil, domainerror.NewColorError(
			domainerror.ErrCodeInvalidHexColor,
			slot+": invalid hex color",
			err,
		)
	}

	if in.Family != nil {
		family, err := entity.ParseColorFamily(*in.Family)
		if err != nil {
			return nil, domainerror.NewColorError(
				domainerror.ErrCodeUnknownColorFamily,
				fmt.Sprintf("%s: unknown color family %q", slot, *in.Family),
				err,
			)
		}
		if family != value.Family {
			return nil, domainerror.NewColorError(
				domainerror.ErrCodeFamilyMismatch,
				fmt.Sprintf("%s: family %q does not match %s (%s)", slot, family, value.Hex, value.Family),
				domainerror.ErrFamilyMismatch,
			)
		}
	}

	return value, nil
}

func notFoundOr(err error, action string) error {
	if errors.Is(err, domainerror.ErrSubmissionNotFound) {
		return domainerror.NewSubmissionError(
			domainerror.ErrCodeSubmissionNotFound,
			"submission not found",
			domainerror.ErrSubmissionNotFound,
		)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func invalidateAggregate(ctx context.Context, cache adapter.AggregateCache, submissionID string) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate aggregate cache", "error", err, "submission_id", submissionID)
	}
}
