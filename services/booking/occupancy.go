package booking

import (
	"sort"

	"civicbook/models"
)

// OccupiedSet is the set of fine-grained slots covered by a date's
// appointments.
type OccupiedSet map[TimeOfDay]struct{}

func (s OccupiedSet) Has(t TimeOfDay) bool {
	_, ok := s[t]
	return ok
}

func (s OccupiedSet) Add(t TimeOfDay) {
	s[t] = struct{}{}
}

// Slots returns the set's members in ascending time order.
func (s OccupiedSet) Slots() []TimeOfDay {
	out := make([]TimeOfDay, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SlotsCovered expands an appointment into the slots it occupies: one per
// granularity step from start inclusive up to, but not including,
// start+duration. A 45-minute appointment at 10:00 AM covers 10:00, 10:15
// and 10:30 but not 10:45. Coverage is capped at midnight, so no slot past
// 11:45 PM is ever produced.
func SlotsCovered(start TimeOfDay, durationMin, granularity int) []TimeOfDay {
	if granularity <= 0 {
		return nil
	}

	var covered []TimeOfDay
	for offset := 0; offset < durationMin; offset += granularity {
		m := start.Minutes() + offset
		if m >= minutesPerDay {
			break
		}
		covered = append(covered, FromMinutes(m))
	}
	return covered
}

// AggregateOccupied unions slot coverage across every scheduled appointment
// on the given date. Appointments without a stored duration occupy the
// default 45 minutes.
func AggregateOccupied(appointments []models.Appointment, date string, granularity int) (OccupiedSet, error) {
	occupied := make(OccupiedSet)
	for _, a := range appointments {
		if a.Date != date {
			continue
		}
		if a.Status != "" && a.Status != models.AppointmentStatusScheduled {
			continue
		}

		start, err := ParseTimeOfDay(a.Time)
		if err != nil {
			return nil, err
		}
		duration := a.Duration
		if duration <= 0 {
			duration = DefaultDuration
		}
		for _, slot := range SlotsCovered(start, duration, granularity) {
			occupied.Add(slot)
		}
	}
	return occupied, nil
}
