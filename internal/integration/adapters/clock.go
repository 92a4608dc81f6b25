// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/color3/backend/internal/application/adapter"
)

// systemClock implements adapter.Clock using the wall clock in UTC.
type systemClock struct{}

// NewSystemClock creates a clock that reports the current UTC time.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current time in UTC.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
