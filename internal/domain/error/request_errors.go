package error

import "errors"

// Request errors raised by HTTP middleware.
var (
	// ErrRateLimited is returned when a client exceeds the write rate limit.
	ErrRateLimited = errors.New("too many requests")
)

// RequestErrorCode defines error codes raised by HTTP middleware.
// Format: REQ-XXYYYY where XX is category and YYYY is specific error.
type RequestErrorCode string

const (
	ErrCodeRateLimited RequestErrorCode = "REQ-010001"
)

// RequestError represents a request-level error with code and message.
type RequestError struct {
	Code    RequestErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewRequestError creates a new RequestError with the given code and message.
func NewRequestError(code RequestErrorCode, message string, err error) *RequestError {
	return &RequestError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
