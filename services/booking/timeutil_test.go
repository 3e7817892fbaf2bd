package booking

import (
	"errors"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"12:00 AM", 0},
		{"12:30 AM", 30},
		{"1:00 AM", 60},
		{"9:00 AM", 540},
		{"11:59 AM", 719},
		{"12:00 PM", 720},
		{"12:45 PM", 765},
		{"1:15 PM", 795},
		{"5:00 PM", 1020},
		{"11:59 PM", 1439},
	}
	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.in)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q) failed: %v", tc.in, err)
		}
		if got.Minutes() != tc.want {
			t.Fatalf("ParseTimeOfDay(%q) = %d, want %d", tc.in, got.Minutes(), tc.want)
		}
	}
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	for _, in := range []string{
		"", "10:00", "10:00AM", "10:00 am", "0:30 AM", "13:00 PM",
		"10:60 AM", "10:0 AM", "noon", "10:00 XM",
	} {
		_, err := ParseTimeOfDay(in)
		if err == nil {
			t.Fatalf("ParseTimeOfDay(%q) succeeded, want error", in)
		}
		var formatErr *InvalidTimeFormatError
		if !errors.As(err, &formatErr) {
			t.Fatalf("ParseTimeOfDay(%q) error = %T, want *InvalidTimeFormatError", in, err)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "12:00 AM"},
		{5, "12:05 AM"},
		{540, "9:00 AM"},
		{719, "11:59 AM"},
		{720, "12:00 PM"},
		{765, "12:45 PM"},
		{1020, "5:00 PM"},
		{1439, "11:59 PM"},
	}
	for _, tc := range cases {
		if got := FromMinutes(tc.minutes).String(); got != tc.want {
			t.Fatalf("FromMinutes(%d).String() = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestParseTimeOfDay_RoundTrip(t *testing.T) {
	for m := 0; m < minutesPerDay; m += 15 {
		rendered := FromMinutes(m).String()
		parsed, err := ParseTimeOfDay(rendered)
		if err != nil {
			t.Fatalf("re-parse of %q failed: %v", rendered, err)
		}
		if parsed.Minutes() != m {
			t.Fatalf("round trip of %d minutes gave %d", m, parsed.Minutes())
		}
	}
}
