package schema

// Time-of-day buckets for the purchase timestamp. Ranges are half-open on
// the hour: [0,6) Dawn, [6,12) Morning, [12,18) Afternoon, [18,24) Evening.
const (
	PeriodDawn      = "Dawn"
	PeriodMorning   = "Morning"
	PeriodAfternoon = "Afternoon"
	PeriodEvening   = "Evening"
)

// TimePeriodOrder is the fixed display sequence for time-period buckets.
// Rollups keyed by time period follow this order, never alphabetical order.
var TimePeriodOrder = []string{PeriodDawn, PeriodMorning, PeriodAfternoon, PeriodEvening}

// TimePeriodForHour buckets an hour of day (0-23) into its period.
func TimePeriodForHour(hour int) string {
	switch {
	case hour < 6:
		return PeriodDawn
	case hour < 12:
		return PeriodMorning
	case hour < 18:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}
