package entity

import (
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	domainerror "github.com/color3/backend/internal/domain/error"
	"github.com/color3/backend/internal/domain/valueobject"
)

var hexPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// IsValidHex reports whether hex is exactly six hex digits with an optional leading '#'.
func IsValidHex(hex string) bool {
	return hexPattern.MatchString(hex)
}

// NormalizeHex returns hex uppercased with a leading '#'.
func NormalizeHex(hex string) (string, error) {
	if !IsValidHex(hex) {
		return "", domainerror.ErrInvalidHexColor
	}
	return "#" + strings.ToUpper(strings.TrimPrefix(hex, "#")), nil
}

// HexToHSL converts hex to HSL with hue rounded to whole degrees
// and saturation and lightness rounded to whole percent.
func HexToHSL(hex string) (valueobject.HSL, error) {
	normalized, err := NormalizeHex(hex)
	if err != nil {
		return valueobject.HSL{}, err
	}

	c, err := colorful.Hex(normalized)
	if err != nil {
		return valueobject.HSL{}, domainerror.ErrInvalidHexColor
	}

	r8, g8, b8 := c.RGB255()
	h, s, l := rgbToHSL(float64(r8)/255, float64(g8)/255, float64(b8)/255)

	return valueobject.HSL{
		H: roundHalfUp(h * 360),
		S: roundHalfUp(s * 100),
		L: roundHalfUp(l * 100),
	}, nil
}

// rgbToHSL returns hue as a fraction of a turn, saturation and lightness in [0, 1].
// Hue is divided by six before scaling so that values on a .5 degree boundary
// round the same way as web clients computing it in that order.
func rgbToHSL(r, g, b float64) (h, s, l float64) {
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC
	l = (maxC + minC) / 2

	if delta == 0 {
		return 0, 0, l
	}

	if l > 0.5 {
		s = delta / (2 - maxC - minC)
	} else {
		s = delta / (maxC + minC)
	}

	switch maxC {
	case r:
		offset := 0.0
		if g < b {
			offset = 6
		}
		h = ((g-b)/delta + offset) / 6
	case g:
		h = ((b-r)/delta + 2) / 6
	default:
		h = ((r-g)/delta + 4) / 6
	}

	return h, s, l
}

// ClassifyColorFamily maps a hex color to its family.
// Achromatic and extreme-lightness rules run before the hue bands.
func ClassifyColorFamily(hex string) (ColorFamily, error) {
	hsl, err := HexToHSL(hex)
	if err != nil {
		return "", err
	}
	return classifyHSL(hsl), nil
}

func classifyHSL(hsl valueobject.HSL) ColorFamily {
	h, s, l := hsl.H, hsl.S, hsl.L

	if s < 10 {
		switch {
		case l < 20:
			return ColorFamilyBlack
		case l > 85:
			return ColorFamilyWhite
		default:
			return ColorFamilyGray
		}
	}

	if l < 15 {
		return ColorFamilyBlack
	}
	if l > 90 && s < 20 {
		return ColorFamilyWhite
	}

	// Hue rounding can produce 360, which belongs with red.
	switch {
	case h >= 345 || h < 15:
		return ColorFamilyRed
	case h < 45:
		return ColorFamilyOrange
	case h < 70:
		return ColorFamilyYellow
	case h < 160:
		return ColorFamilyGreen
	case h < 200:
		return ColorFamilyCyan
	case h < 260:
		return ColorFamilyBlue
	case h < 300:
		return ColorFamilyPurple
	case h < 345:
		return ColorFamilyPink
	}

	return ColorFamilyGray
}

// roundHalfUp rounds ties toward positive infinity without the
// floor(v+0.5) error on values just below one half.
func roundHalfUp(v float64) int {
	f := math.Floor(v)
	if v-f >= 0.5 {
		f++
	}
	return int(f)
}
