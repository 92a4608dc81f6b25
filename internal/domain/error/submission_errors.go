package error

import "errors"

// Submission domain errors.
var (
	// ErrSubmissionNotFound is returned when a submission is not found in the system.
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrInvalidArrayLengths is returned when the months/days arrays are not 12/31/7 entries long.
	ErrInvalidArrayLengths = errors.New("invalid array lengths")

	// ErrInvalidColorValue is returned when an array entry is neither null nor a valid color value.
	ErrInvalidColorValue = errors.New("invalid color value")

	// ErrInvalidSubmissionID is returned when a submission ID cannot be parsed.
	ErrInvalidSubmissionID = errors.New("invalid submission id")

	// ErrInvalidSubmissionPayload is returned when the payload structure is malformed.
	ErrInvalidSubmissionPayload = errors.New("invalid payload structure")
)

// SubmissionErrorCode defines error codes for submission errors.
// Format: SUB-XXYYYY where XX is category and YYYY is specific error.
type SubmissionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSubmissionNotFound       SubmissionErrorCode = "SUB-010001"
	ErrCodeInvalidArrayLengths      SubmissionErrorCode = "SUB-010002"
	ErrCodeInvalidColorValue        SubmissionErrorCode = "SUB-010003"
	ErrCodeInvalidSubmissionID      SubmissionErrorCode = "SUB-010004"
	ErrCodeInvalidSubmissionPayload SubmissionErrorCode = "SUB-010005"

	// Internal errors (99XXXX)
	ErrCodeSubmissionInternalError SubmissionErrorCode = "SUB-990001"
)

// SubmissionError represents a submission error with code and message.
type SubmissionError struct {
	Code    SubmissionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// NewSubmissionError creates a new SubmissionError with the given code and message.
func NewSubmissionError(code SubmissionErrorCode, message string, err error) *SubmissionError {
	return &SubmissionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
