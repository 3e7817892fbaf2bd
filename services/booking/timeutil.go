package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time expressed as minutes since midnight (0-1439).
type TimeOfDay int

var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2}) (AM|PM)$`)

// ParseTimeOfDay parses a 12-hour clock string of the exact shape "H:MM AM"
// or "H:MM PM". Hours run 1-12; "12:00 AM" is midnight and "12:00 PM" noon.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, &InvalidTimeFormatError{Input: s}
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, &InvalidTimeFormatError{Input: s}
	}

	if m[3] == "PM" && hour != 12 {
		hour += 12
	}
	if m[3] == "AM" && hour == 12 {
		hour = 0
	}
	return TimeOfDay(hour*60 + minute), nil
}

// FromMinutes converts minutes since midnight to a TimeOfDay.
// The caller must ensure 0 <= minutes < 1440; values outside that range are
// not wrapped and will not render as a valid wall-clock time.
func FromMinutes(minutes int) TimeOfDay {
	return TimeOfDay(minutes)
}

// Minutes returns the minutes-since-midnight value.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// String renders the time in 12-hour form, e.g. "9:05 AM" or "12:00 PM".
func (t TimeOfDay) String() string {
	hour24 := int(t) / 60
	minute := int(t) % 60

	hour12 := hour24
	switch {
	case hour24 == 0:
		hour12 = 12
	case hour24 > 12:
		hour12 = hour24 - 12
	}
	period := "AM"
	if hour24 >= 12 {
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour12, minute, period)
}
