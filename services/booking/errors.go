package booking

import (
	"errors"
	"fmt"
)

// ErrSlotTaken means the requested (provider, date, time) collides with an
// existing non-cancelled booking. Terminal for the caller: pick another slot.
var ErrSlotTaken = errors.New("time slot already booked")

// ErrNotFound means the referenced booking or provider does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidTransition means the requested status change is not a legal edge
// in the booking lifecycle. The booking is left unchanged.
var ErrInvalidTransition = errors.New("invalid status transition")

// ValidationError reports malformed input rejected before any write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
