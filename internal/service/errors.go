package service

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrValidationFailed  = errors.New("validation failed")
)

var validate = validator.New()

// Clock returns the current time in the zone used for calendar dates.
type Clock func() time.Time

// ClockIn returns a Clock reporting wall time in loc.
func ClockIn(loc *time.Location) Clock {
	return func() time.Time { return time.Now().In(loc) }
}
