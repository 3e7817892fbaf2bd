package booking

// Fixed office defaults: 15-minute slots from 9:00 AM through 5:00 PM and
// 45-minute appointments. The 9-5 catalog holds 33 start times.
const (
	SlotGranularity = 15
	DefaultDuration = 45
)

var (
	DefaultOpen  = TimeOfDay(9 * 60)  // 9:00 AM
	DefaultClose = TimeOfDay(17 * 60) // 5:00 PM
)

// GenerateCatalog enumerates candidate start times from open through close
// inclusive, stepping by granularity minutes. close itself is emitted as a
// start time but nothing beyond it. Returns nil when the bounds are inverted
// or the granularity is not positive.
func GenerateCatalog(open, close TimeOfDay, granularity int) []TimeOfDay {
	if granularity <= 0 || close < open {
		return nil
	}

	catalog := make([]TimeOfDay, 0, (close.Minutes()-open.Minutes())/granularity+1)
	for m := open.Minutes(); m <= close.Minutes(); m += granularity {
		catalog = append(catalog, FromMinutes(m))
	}
	return catalog
}
