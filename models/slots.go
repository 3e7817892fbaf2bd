package models

// CandidateSlot is one row of the availability listing for a selected date.
type CandidateSlot struct {
	Time     string `json:"time"` // e.g. "9:15 AM"
	IsBooked bool   `json:"isBooked"`
}

// AvailabilityResult is the availability listing returned after a date is
// selected within a booking session.
type AvailabilityResult struct {
	Date    string          `json:"date"`    // "YYYY-MM-DD"
	Weekday string          `json:"weekday"` // lowercase weekday name
	Window  *WindowDTO      `json:"window,omitempty"`
	Slots   []CandidateSlot `json:"slots"`
}

// WindowDTO is the business-hour window applied to the listing, absent when
// the weekday is unrestricted.
type WindowDTO struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}
