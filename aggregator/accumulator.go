package aggregator

// Accumulator folds one numeric column of a group.
type Accumulator interface {
	Add(value float64)
	Result() float64
}

// SumAccumulator adds every value it sees.
type SumAccumulator struct {
	sum float64
}

func NewSum() *SumAccumulator {
	return &SumAccumulator{}
}

func (s *SumAccumulator) Add(value float64) {
	s.sum += value
}

func (s *SumAccumulator) Result() float64 {
	return s.sum
}

// ReviewMeanAccumulator averages review scores under the unrated-sentinel
// policy: a score of 0 means "no review" and contributes to neither the
// numerator nor the denominator. With no rated values the result is 0.
type ReviewMeanAccumulator struct {
	sum   float64
	rated int
}

func NewReviewMean() *ReviewMeanAccumulator {
	return &ReviewMeanAccumulator{}
}

func (m *ReviewMeanAccumulator) Add(score float64) {
	if score <= 0 {
		return
	}
	m.sum += score
	m.rated++
}

func (m *ReviewMeanAccumulator) Result() float64 {
	if m.rated == 0 {
		return 0
	}
	return m.sum / float64(m.rated)
}

// DistinctCounter counts distinct string keys.
type DistinctCounter struct {
	seen map[string]struct{}
}

func NewDistinct() *DistinctCounter {
	return &DistinctCounter{seen: make(map[string]struct{})}
}

func (d *DistinctCounter) AddKey(key string) {
	d.seen[key] = struct{}{}
}

func (d *DistinctCounter) Count() int {
	return len(d.seen)
}
