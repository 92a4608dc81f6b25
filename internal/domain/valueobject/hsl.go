// Package valueobject contains domain value objects for the Color³ system.
package valueobject

// HSL is a color in hue/saturation/lightness space.
// H is in whole degrees [0, 360]; S and L are whole percents [0, 100].
type HSL struct {
	H int
	S int
	L int
}
