package error

import "errors"

// Tri-color day domain errors.
var (
	// ErrInvalidHorizon is returned when the search horizon is not a positive number of months within bounds.
	ErrInvalidHorizon = errors.New("invalid horizon")

	// ErrSlotOutOfRange is returned when a calendar slot index is outside its unit's range.
	ErrSlotOutOfRange = errors.New("calendar slot out of range")

	// ErrInvalidTriColorPayload is returned when a tri-color request body cannot be decoded.
	ErrInvalidTriColorPayload = errors.New("invalid tri-color request payload")
)

// TriColorErrorCode defines error codes for tri-color day errors.
// Format: TCD-XXYYYY where XX is category and YYYY is specific error.
type TriColorErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidHorizon TriColorErrorCode = "TCD-010001"
	ErrCodeSlotOutOfRange TriColorErrorCode = "TCD-010002"
	ErrCodeInvalidPayload TriColorErrorCode = "TCD-010003"
)

// TriColorError represents a tri-color day error with code and message.
type TriColorError struct {
	Code    TriColorErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TriColorError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TriColorError) Unwrap() error {
	return e.Err
}

// NewTriColorError creates a new TriColorError with the given code and message.
func NewTriColorError(code TriColorErrorCode, message string, err error) *TriColorError {
	return &TriColorError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
