package segments

// Spending segment labels, in their fixed display order.
const (
	SpendingLow    = "Low"
	SpendingMedium = "Medium"
	SpendingHigh   = "High"
	SpendingVIP    = "VIP"
)

// Repeat-purchase segment labels, in their fixed display order.
const (
	RepeatOneTime    = "One-time"
	RepeatOccasional = "Occasional"
	RepeatRegular    = "Regular"
	RepeatFrequent   = "Frequent"
)

type boundary struct {
	upper float64 // exclusive
	label string
}

// Scale maps a continuous value onto a fixed set of labels. Every bucket
// is half-open [lower, upper) except the final one, which is unbounded
// above, so classification is total: every real number gets exactly one
// label.
type Scale struct {
	boundaries []boundary
	final      string
}

// SpendingScale buckets customer spending: under 100 Low, under 500
// Medium, under 2000 High, VIP above. A spend of exactly 100 is Medium,
// not Low.
func SpendingScale() Scale {
	return Scale{
		boundaries: []boundary{
			{upper: 100, label: SpendingLow},
			{upper: 500, label: SpendingMedium},
			{upper: 2000, label: SpendingHigh},
		},
		final: SpendingVIP,
	}
}

// RepeatScale buckets order counts: exactly 1 One-time, up to 3
// Occasional, up to 10 Regular, Frequent above.
func RepeatScale() Scale {
	return Scale{
		boundaries: []boundary{
			{upper: 2, label: RepeatOneTime},
			{upper: 4, label: RepeatOccasional},
			{upper: 11, label: RepeatRegular},
		},
		final: RepeatFrequent,
	}
}

// Classify returns the label of the bucket containing value.
func (s Scale) Classify(value float64) string {
	for _, b := range s.boundaries {
		if value < b.upper {
			return b.label
		}
	}
	return s.final
}

// Labels returns every label of the scale in its fixed declared order.
func (s Scale) Labels() []string {
	labels := make([]string, 0, len(s.boundaries)+1)
	for _, b := range s.boundaries {
		labels = append(labels, b.label)
	}
	return append(labels, s.final)
}
