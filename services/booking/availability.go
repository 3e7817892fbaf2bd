package booking

// CandidateSlot is one catalog start time with its booked flag.
type CandidateSlot struct {
	Start  TimeOfDay
	Booked bool
}

// ComputeAvailability filters the catalog to starts whose entire appointment
// fits inside the window, then marks each survivor booked when the slots it
// would cover intersect the occupied set. A nil window leaves the full
// catalog open. Catalog order (ascending time) is preserved.
func ComputeAvailability(catalog []TimeOfDay, window *BusinessWindow, occupied OccupiedSet, durationMin int) []CandidateSlot {
	out := make([]CandidateSlot, 0, len(catalog))
	for _, start := range catalog {
		if window != nil {
			if start.Minutes() < window.Open.Minutes() ||
				start.Minutes()+durationMin > window.Close.Minutes() {
				continue
			}
		}

		booked := false
		for _, slot := range SlotsCovered(start, durationMin, SlotGranularity) {
			if occupied.Has(slot) {
				booked = true
				break
			}
		}
		out = append(out, CandidateSlot{Start: start, Booked: booked})
	}
	return out
}

// ValidateSelection re-checks a proposed start time against the current
// occupied set. It is called again at submission time, not just at render
// time, to close the gap against bookings that landed in between. Returns a
// ConflictError listing the colliding slots, or nil when the slot is free.
func ValidateSelection(start TimeOfDay, occupied OccupiedSet, durationMin int) error {
	var conflicts []TimeOfDay
	for _, slot := range SlotsCovered(start, durationMin, SlotGranularity) {
		if occupied.Has(slot) {
			conflicts = append(conflicts, slot)
		}
	}
	if len(conflicts) > 0 {
		return &ConflictError{Slots: conflicts}
	}
	return nil
}
