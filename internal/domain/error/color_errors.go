// Package error defines domain-specific errors for the Color³ application.
package error

import "errors"

// Color domain errors.
var (
	// ErrInvalidHexColor is returned when a color is not exactly 6 hex digits, optionally prefixed with '#'.
	ErrInvalidHexColor = errors.New("invalid hex color")

	// ErrFamilyMismatch is returned when a supplied family disagrees with the classified family of its hex.
	ErrFamilyMismatch = errors.New("color family does not match hex value")

	// ErrUnknownColorFamily is returned when a family name is not one of the eleven known families.
	ErrUnknownColorFamily = errors.New("unknown color family")

	// ErrMissingHex is returned when a color value is supplied without a hex string.
	ErrMissingHex = errors.New("hex is required")
)

// ColorErrorCode defines error codes for color errors.
// Format: CLR-XXYYYY where XX is category and YYYY is specific error.
type ColorErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidHexColor    ColorErrorCode = "CLR-010001"
	ErrCodeFamilyMismatch     ColorErrorCode = "CLR-010002"
	ErrCodeUnknownColorFamily ColorErrorCode = "CLR-010003"
	ErrCodeMissingHex         ColorErrorCode = "CLR-010004"
)

// ColorError represents a color error with code and message.
type ColorError struct {
	Code    ColorErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ColorError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ColorError) Unwrap() error {
	return e.Err
}

// NewColorError creates a new ColorError with the given code and message.
func NewColorError(code ColorErrorCode, message string, err error) *ColorError {
	return &ColorError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
