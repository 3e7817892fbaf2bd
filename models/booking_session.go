package models

import "time"

// BookingSession is the per-client booking flow state, cached in Redis
// between requests. Selecting a new date clears the selected time and the
// occupied-slot snapshot for the old date.
type BookingSession struct {
	ID            string    `json:"id"`
	SelectedDate  string    `json:"selectedDate,omitempty"` // "YYYY-MM-DD"
	SelectedTime  string    `json:"selectedTime,omitempty"` // e.g. "10:00 AM"
	OccupiedSlots []string  `json:"occupiedSlots,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
