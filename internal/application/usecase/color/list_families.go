package color

import (
	"context"

	"github.com/color3/backend/internal/domain/entity"
)

// FamilyInfo describes one color family for display.
type FamilyInfo struct {
	Family         entity.ColorFamily
	Label          string
	Representative string
}

// ListFamiliesOutput represents the output of listing color families.
type ListFamiliesOutput struct {
	Families []FamilyInfo
}

// ListFamiliesUseCase handles listing the color family catalogue.
type ListFamiliesUseCase struct{}

// NewListFamiliesUseCase creates a new ListFamiliesUseCase instance.
func NewListFamiliesUseCase() *ListFamiliesUseCase {
	return &ListFamiliesUseCase{}
}

// Execute returns all families in enum order.
func (uc *ListFamiliesUseCase) Execute(_ context.Context) (*ListFamiliesOutput, error) {
	families := entity.AllColorFamilies()
	out := make([]FamilyInfo, 0, len(families))
	for _, f := range families {
		out = append(out, FamilyInfo{
			Family:         f,
			Label:          f.Label(),
			Representative: f.Representative(),
		})
	}
	return &ListFamiliesOutput{Families: out}, nil
}
