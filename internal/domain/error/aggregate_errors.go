// Package error defines domain-specific errors for the Color³ application.
package error

import "errors"

// Aggregate domain errors.
var (
	// ErrSnapshotNotFound is returned when no aggregate snapshot has been recorded yet.
	ErrSnapshotNotFound = errors.New("aggregate snapshot not found")
)

// AggregateErrorCode defines error codes for aggregate errors.
// Format: AGG-XXYYYY where XX is category and YYYY is specific error.
type AggregateErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSnapshotNotFound AggregateErrorCode = "AGG-010001"

	// Internal errors (99XXXX)
	ErrCodeAggregateInternalError AggregateErrorCode = "AGG-990001"
)

// AggregateError represents an aggregate error with code and message.
type AggregateError struct {
	Code    AggregateErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AggregateError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AggregateError) Unwrap() error {
	return e.Err
}

// NewAggregateError creates a new AggregateError with the given code and message.
func NewAggregateError(code AggregateErrorCode, message string, err error) *AggregateError {
	return &AggregateError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
