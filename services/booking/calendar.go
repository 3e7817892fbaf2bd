package booking

import "time"

// DateLayout is the wire/storage form of a calendar date.
const DateLayout = "2006-01-02"

// WeekGrid is one calendar row of seven midnight-normalized dates, columns
// indexed 0=Sunday..6=Saturday.
type WeekGrid [7]time.Time

// Midnight normalizes t to midnight in its own location, dropping the
// time-of-day component.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports calendar-date equality: year, month and day match,
// regardless of the clock time carried by either value.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// BuildMonthGrid lays the given month out as full weeks. The first row is
// back-filled with trailing days of the prior month so it starts on Sunday;
// the last row is forward-filled with leading days of the next month. Every
// date is midnight-normalized in the local time zone. Month follows Go's
// 1-indexed time.Month convention.
func BuildMonthGrid(year int, month time.Month) []WeekGrid {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	lead := int(firstDay.Weekday())
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()

	weekCount := (lead + daysInMonth + 6) / 7
	grid := make([]WeekGrid, weekCount)

	d := firstDay.AddDate(0, 0, -lead)
	for w := 0; w < weekCount; w++ {
		for col := 0; col < 7; col++ {
			grid[w][col] = d
			d = d.AddDate(0, 0, 1)
		}
	}
	return grid
}

// IsPastDate reports whether d's calendar date is strictly before today's.
func IsPastDate(d time.Time) bool {
	return Midnight(d).Before(Midnight(time.Now()))
}

// IsToday reports whether d falls on the current calendar date.
func IsToday(d time.Time) bool {
	return SameDate(d, time.Now())
}
