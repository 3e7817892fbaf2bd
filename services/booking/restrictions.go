package booking

import (
	"strings"
	"time"

	"civicbook/models"
)

// BusinessWindow is a weekday's booking window.
type BusinessWindow struct {
	Open  TimeOfDay
	Close TimeOfDay
}

// WeekdayName returns the lowercase English weekday name of the
// midnight-normalized date. Normalizing first keeps a stray time-of-day
// component (or timezone drift in the caller's value) from shifting the
// resolved weekday across a day boundary.
func WeekdayName(date time.Time) string {
	return strings.ToLower(Midnight(date).Weekday().String())
}

// ResolveWindow maps a date to its weekday's booking window. A nil window
// with a nil error means the weekday is unrestricted and the full catalog is
// open; that is a policy, not a lookup failure. A malformed stored time
// string surfaces as InvalidTimeFormatError.
func ResolveWindow(date time.Time, restrictions models.WeekRestrictions) (*BusinessWindow, error) {
	r, ok := restrictions[WeekdayName(date)]
	if !ok {
		return nil, nil
	}

	open, err := ParseTimeOfDay(r.Begin)
	if err != nil {
		return nil, err
	}
	close, err := ParseTimeOfDay(r.End)
	if err != nil {
		return nil, err
	}
	return &BusinessWindow{Open: open, Close: close}, nil
}
