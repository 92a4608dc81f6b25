package dto

import (
	"github.com/color3/backend/internal/application/usecase/color"
)

// ColorFamilyResponse represents a single color family in API responses.
type ColorFamilyResponse struct {
	Family         string `json:"family"`
	Label          string `json:"label"`
	Representative string `json:"representative"`
}

// ColorFamilyListResponse represents the response for listing color families.
type ColorFamilyListResponse struct {
	Families []ColorFamilyResponse `json:"families"`
}

// HSLResponse represents a color in HSL space.
type HSLResponse struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// ClassifyColorResponse represents the classification of a hex color.
type ClassifyColorResponse struct {
	Hex    string      `json:"hex"`
	Family string      `json:"family"`
	Label  string      `json:"label"`
	HSL    HSLResponse `json:"hsl"`
}

// ToColorFamilyListResponse converts the family catalogue to a response DTO.
func ToColorFamilyListResponse(output *color.ListFamiliesOutput) ColorFamilyListResponse {
	families := make([]ColorFamilyResponse, len(output.Families))
	for i, f := range output.Families {
		families[i] = ColorFamilyResponse{
			Family:         string(f.Family),
			Label:          f.Label,
			Representative: f.Representative,
		}
	}
	return ColorFamilyListResponse{Families: families}
}

// ToClassifyColorResponse converts a classification result to a response DTO.
func ToClassifyColorResponse(output *color.ClassifyColorOutput) ClassifyColorResponse {
	return ClassifyColorResponse{
		Hex:    output.Hex,
		Family: string(output.Family),
		Label:  output.Family.Label(),
		HSL: HSLResponse{
			H: output.HSL.H,
			S: output.HSL.S,
			L: output.HSL.L,
		},
	}
}
