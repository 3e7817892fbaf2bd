package booking

import (
	"testing"

	"civicbook/models"
)

func TestSlotsCovered(t *testing.T) {
	start, _ := ParseTimeOfDay("10:00 AM")
	covered := SlotsCovered(start, 45, 15)
	if len(covered) != 3 {
		t.Fatalf("45 min at 15 min granularity should cover 3 slots, got %d", len(covered))
	}
	for i, want := range []string{"10:00 AM", "10:15 AM", "10:30 AM"} {
		if covered[i].String() != want {
			t.Fatalf("slot %d = %s, want %s", i, covered[i], want)
		}
	}
}

func TestSlotsCovered_ExcludesEnd(t *testing.T) {
	start, _ := ParseTimeOfDay("10:00 AM")
	for _, slot := range SlotsCovered(start, 45, 15) {
		if slot.String() == "10:45 AM" {
			t.Fatal("10:45 AM is the end boundary and must not be covered")
		}
	}
}

func TestSlotsCovered_MidnightCap(t *testing.T) {
	start, _ := ParseTimeOfDay("11:45 PM")
	covered := SlotsCovered(start, 45, 15)
	if len(covered) != 1 {
		t.Fatalf("coverage must stop at midnight, got %d slots", len(covered))
	}
	if covered[0].String() != "11:45 PM" {
		t.Fatalf("expected 11:45 PM only, got %s", covered[0])
	}
}

func TestSlotsCovered_BadGranularity(t *testing.T) {
	if got := SlotsCovered(TimeOfDay(600), 45, 0); got != nil {
		t.Fatalf("zero granularity should yield nil, got %v", got)
	}
}

func TestAggregateOccupied(t *testing.T) {
	appointments := []models.Appointment{
		{Date: "2026-03-02", Time: "10:00 AM", Duration: 45, Status: models.AppointmentStatusScheduled},
		{Date: "2026-03-02", Time: "2:00 PM", Duration: 45, Status: models.AppointmentStatusScheduled},
		{Date: "2026-03-03", Time: "9:00 AM", Duration: 45, Status: models.AppointmentStatusScheduled},
		{Date: "2026-03-02", Time: "4:00 PM", Duration: 45, Status: models.AppointmentStatusCancelled},
	}

	occupied, err := AggregateOccupied(appointments, "2026-03-02", 15)
	if err != nil {
		t.Fatalf("AggregateOccupied failed: %v", err)
	}
	if len(occupied) != 6 {
		t.Fatalf("expected 6 occupied slots (two 45-min appointments), got %d", len(occupied))
	}

	for _, s := range []string{"10:00 AM", "10:15 AM", "10:30 AM", "2:00 PM", "2:15 PM", "2:30 PM"} {
		start, _ := ParseTimeOfDay(s)
		if !occupied.Has(start) {
			t.Fatalf("expected %s occupied", s)
		}
	}

	nineAM, _ := ParseTimeOfDay("9:00 AM")
	if occupied.Has(nineAM) {
		t.Fatal("other date's appointment leaked into the occupied set")
	}
	fourPM, _ := ParseTimeOfDay("4:00 PM")
	if occupied.Has(fourPM) {
		t.Fatal("cancelled appointment must not occupy slots")
	}
}

func TestAggregateOccupied_DefaultDuration(t *testing.T) {
	appointments := []models.Appointment{
		{Date: "2026-03-02", Time: "11:00 AM", Status: models.AppointmentStatusScheduled},
	}
	occupied, err := AggregateOccupied(appointments, "2026-03-02", 15)
	if err != nil {
		t.Fatalf("AggregateOccupied failed: %v", err)
	}
	if len(occupied) != 3 {
		t.Fatalf("missing duration should default to 45 min (3 slots), got %d", len(occupied))
	}
}

func TestAggregateOccupied_MalformedTime(t *testing.T) {
	appointments := []models.Appointment{
		{Date: "2026-03-02", Time: "25:00", Status: models.AppointmentStatusScheduled},
	}
	if _, err := AggregateOccupied(appointments, "2026-03-02", 15); err == nil {
		t.Fatal("expected error for malformed stored time")
	}
}

func TestOccupiedSetSlots_Sorted(t *testing.T) {
	set := make(OccupiedSet)
	for _, s := range []string{"2:00 PM", "9:15 AM", "11:30 AM"} {
		start, _ := ParseTimeOfDay(s)
		set.Add(start)
	}
	slots := set.Slots()
	for i := 1; i < len(slots); i++ {
		if slots[i-1] >= slots[i] {
			t.Fatalf("slots not sorted: %s before %s", slots[i-1], slots[i])
		}
	}
}
