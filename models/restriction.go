package models

// Restriction is the per-weekday business-hour window as stored in the
// appointment-times table. Begin and End are 12-hour clock strings,
// e.g. "9:00 AM" and "5:00 PM".
type Restriction struct {
	Day   string `json:"day" firestore:"day"` // lowercase weekday name, e.g. "monday"
	Begin string `json:"begin" firestore:"begin"`
	End   string `json:"end" firestore:"end"`
}

// WeekRestrictions maps lowercase weekday names to their booking window.
// A weekday with no entry is unrestricted: the full slot catalog is open.
type WeekRestrictions map[string]Restriction
