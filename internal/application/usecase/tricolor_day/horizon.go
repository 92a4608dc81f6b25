// Package tricolorday contains tri-color day search use cases.
package tricolorday

import (
	"fmt"

	domainerror "github.com/color3/backend/internal/domain/error"
)

// HorizonPolicy bounds how many months ahead a search may look.
type HorizonPolicy struct {
	DefaultMonths int
	MaxMonths     int
}

// Resolve returns requested, or the default when nil, checked against 1..MaxMonths.
func (p HorizonPolicy) Resolve(requested *int) (int, error) {
	months := p.DefaultMonths
	if requested != nil {
		months = *requested
	}

	if months < 1 || months > p.MaxMonths {
		return 0, domainerror.NewTriColorError(
			domainerror.ErrCodeInvalidHorizon,
			fmt.Sprintf("months ahead must be between 1 and %d", p.MaxMonths),
			domainerror.ErrInvalidHorizon,
		)
	}

	return months, nil
}
