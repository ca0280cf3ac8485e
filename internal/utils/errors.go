package utils

import (
	"errors"
	"net/http"

	"gameopolis-api/internal/models"
)

// RespondError maps a service error onto the failure envelope.
// notFoundMessage names the missing resource ("Event not found", ...).
// Unexpected errors come back as a generic 500; the caller logs the
// detail server-side.
func RespondError(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case models.IsValidation(err):
		WriteError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, models.ErrNotFound):
		WriteError(w, http.StatusNotFound, notFoundMessage, "")
	case errors.Is(err, models.ErrCapacityFull):
		WriteError(w, http.StatusBadRequest, "Event is fully booked", "")
	case errors.Is(err, models.ErrInvalidTransition), errors.Is(err, models.ErrTerminalStatus):
		WriteError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, models.ErrConflict):
		WriteError(w, http.StatusConflict, err.Error(), "")
	default:
		WriteError(w, http.StatusInternalServerError, "Server error", "")
	}
}

// IsUnexpected reports whether err falls outside the handled taxonomy and
// should be logged as a server fault.
func IsUnexpected(err error) bool {
	return !models.IsValidation(err) &&
		!errors.Is(err, models.ErrNotFound) &&
		!errors.Is(err, models.ErrCapacityFull) &&
		!errors.Is(err, models.ErrInvalidTransition) &&
		!errors.Is(err, models.ErrTerminalStatus) &&
		!errors.Is(err, models.ErrConflict)
}
