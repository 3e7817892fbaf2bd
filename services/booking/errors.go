package booking

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSessionNotFound is returned when a booking session has expired or never existed.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// InvalidTimeFormatError reports a time string that does not match the
// "H:MM AM/PM" shape or carries an out-of-range hour or minute.
type InvalidTimeFormatError struct {
	Input string
}

func (e *InvalidTimeFormatError) Error() string {
	return fmt.Sprintf("invalid time format %q: want \"H:MM AM\" or \"H:MM PM\"", e.Input)
}

// ValidationError reports a rejected booking request (missing fields,
// malformed date, past-date selection).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConflictError reports a proposed start time whose coverage collides with an
// existing appointment. Slots lists the colliding slot times for display.
type ConflictError struct {
	Slots []TimeOfDay
}

func (e *ConflictError) Error() string {
	labels := make([]string, len(e.Slots))
	for i, s := range e.Slots {
		labels[i] = s.String()
	}
	return fmt.Sprintf("time conflicts with an existing appointment; booked slots: %s", strings.Join(labels, ", "))
}

// PersistenceError reports a failed write to the appointment store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("appointment store %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// SourceUnavailableError reports a failed read from an external collaborator
// (appointment store or restriction table). Previously loaded state stays
// valid; the caller may retry.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }
