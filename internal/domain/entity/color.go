// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	domainerror "github.com/color3/backend/internal/domain/error"
)

// ColorFamily is one of the eleven named buckets every color is classified into.
type ColorFamily string

const (
	ColorFamilyRed    ColorFamily = "red"
	ColorFamilyOrange ColorFamily = "orange"
	ColorFamilyYellow ColorFamily = "yellow"
	ColorFamilyGreen  ColorFamily = "green"
	ColorFamilyCyan   ColorFamily = "cyan"
	ColorFamilyBlue   ColorFamily = "blue"
	ColorFamilyPurple ColorFamily = "purple"
	ColorFamilyPink   ColorFamily = "pink"
	ColorFamilyGray   ColorFamily = "gray"
	ColorFamilyBlack  ColorFamily = "black"
	ColorFamilyWhite  ColorFamily = "white"
)

// ColorFamilyCount is the number of color families.
const ColorFamilyCount = 11

var colorFamilies = [ColorFamilyCount]ColorFamily{
	ColorFamilyRed,
	ColorFamilyOrange,
	ColorFamilyYellow,
	ColorFamilyGreen,
	ColorFamilyCyan,
	ColorFamilyBlue,
	ColorFamilyPurple,
	ColorFamilyPink,
	ColorFamilyGray,
	ColorFamilyBlack,
	ColorFamilyWhite,
}

var representatives = map[ColorFamily]string{
	ColorFamilyRed:    "#DC2626",
	ColorFamilyOrange: "#EA580C",
	ColorFamilyYellow: "#FACC15",
	ColorFamilyGreen:  "#16A34A",
	ColorFamilyCyan:   "#06B6D4",
	ColorFamilyBlue:   "#2563EB",
	ColorFamilyPurple: "#9333EA",
	ColorFamilyPink:   "#EC4899",
	ColorFamilyGray:   "#6B7280",
	ColorFamilyBlack:  "#1F2937",
	ColorFamilyWhite:  "#F3F4F6",
}

var labelCaser = cases.Title(language.English)

// AllColorFamilies returns every color family in enum order.
func AllColorFamilies() []ColorFamily {
	families := make([]ColorFamily, len(colorFamilies))
	copy(families, colorFamilies[:])
	return families
}

// ParseColorFamily converts a family name into a ColorFamily.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseColorFamily(name string) (ColorFamily, error) {
	f := ColorFamily(strings.ToLower(strings.TrimSpace(name)))
	if !f.IsValid() {
		return "", domainerror.ErrUnknownColorFamily
	}
	return f, nil
}

// IsValid reports whether f is one of the eleven known families.
func (f ColorFamily) IsValid() bool {
	return f.Index() >= 0
}

// Index returns the position of f in enum order, or -1 when unknown.
func (f ColorFamily) Index() int {
	for i, family := range colorFamilies {
		if family == f {
			return i
		}
	}
	return -1
}

// Label returns the human-readable name of the family, e.g. "Red".
func (f ColorFamily) Label() string {
	if !f.IsValid() {
		return ""
	}
	return labelCaser.String(string(f))
}

// Representative returns the display hex for the family.
func (f ColorFamily) Representative() string {
	return representatives[f]
}

// String implements fmt.Stringer.
func (f ColorFamily) String() string {
	return string(f)
}

// ColorValue pairs a normalized hex color with its derived family.
// Family is always the classification of Hex.
type ColorValue struct {
	Hex    string
	Family ColorFamily
}

// NewColorValue validates and normalizes hex and classifies it.
// The stored hex is uppercase with a leading '#'.
func NewColorValue(hex string) (*ColorValue, error) {
	normalized, err := NormalizeHex(hex)
	if err != nil {
		return nil, err
	}

	family, err := ClassifyColorFamily(normalized)
	if err != nil {
		return nil, err
	}

	return &ColorValue{
		Hex:    normalized,
		Family: family,
	}, nil
}
