package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrCapacityFull is returned when an event registration would exceed
	// the event's capacity.
	ErrCapacityFull = errors.New("event capacity reached")

	// ErrConflict is returned when booking identifier allocation keeps
	// losing races against concurrent submissions.
	ErrConflict = errors.New("conflicting concurrent write")

	// ErrTerminalStatus is returned when a booking in a terminal state
	// receives a status change.
	ErrTerminalStatus = errors.New("booking status is terminal")

	// ErrInvalidTransition is returned for a status move the booking
	// state machine does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError marks client input problems so handlers can map them
// to 400 responses with the message intact.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
