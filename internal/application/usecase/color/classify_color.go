// Package color contains color classification use cases.
package color

import (
	"context"
	"errors"
	"strings"

	"github.com/color3/backend/internal/domain/entity"
	domainerror "github.com/color3/backend/internal/domain/error"
	"github.com/color3/backend/internal/domain/valueobject"
)

// ClassifyColorInput represents the input for color classification.
type ClassifyColorInput struct {
	Hex string
}

// ClassifyColorOutput represents the output of color classification.
type ClassifyColorOutput struct {
	Hex    string
	Family entity.ColorFamily
	HSL    valueobject.HSL
}

// ClassifyColorUseCase handles classifying a single hex color.
type ClassifyColorUseCase struct{}

// NewClassifyColorUseCase creates a new ClassifyColorUseCase instance.
func NewClassifyColorUseCase() *ClassifyColorUseCase {
	return &ClassifyColorUseCase{}
}

// Execute performs the classification.
func (uc *ClassifyColorUseCase) Execute(_ context.Context, input ClassifyColorInput) (*ClassifyColorOutput, error) {
	hex := strings.TrimSpace(input.Hex)
	if hex == "" {
		return nil, domainerror.NewColorError(
			domainerror.ErrCodeMissingHex,
			"hex is required",
			domainerror.ErrMissingHex,
		)
	}

	value, err := entity.NewColorValue(hex)
	if err != nil {
		return nil, toColorError(err)
	}

	hsl, err := entity.HexToHSL(value.Hex)
	if err != nil {
		return nil, toColorError(err)
	}

	return &ClassifyColorOutput{
		Hex:    value.Hex,
		Family: value.Family,
		HSL:    hsl,
	}, nil
}

func toColorError(err error) error {
	if errors.Is(err, domainerror.ErrInvalidHexColor) {
		return domainerror.NewColorError(
			domainerror.ErrCodeInvalidHexColor,
			"hex must be 6 hexadecimal digits, optionally prefixed with '#'",
			domainerror.ErrInvalidHexColor,
		)
	}
	return err
}
