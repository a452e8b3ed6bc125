package aggregator

import (
	"fmt"
	"math"
)

// AggregationWarning reports an aggregation with no qualifying rows. It is
// never fatal: callers surface the message and render an empty result.
type AggregationWarning struct {
	Reason string
}

func (w *AggregationWarning) Error() string {
	return w.Reason
}

// TrendlineFitError reports a degenerate least-squares fit. The pipeline
// absorbs it by falling back to the unmodified series.
type TrendlineFitError struct {
	Reason string
}

func (e *TrendlineFitError) Error() string {
	return fmt.Sprintf("trendline fit failed: %s", e.Reason)
}

// CategoryPoint is one (avg review, total revenue) point of the
// correlation scatter.
type CategoryPoint struct {
	Category  string
	AvgReview float64
	Revenue   float64
}

// CorrelationResult carries the correlation scatter, the Pearson
// coefficient with its qualitative label, and the fitted trendline values
// aligned with Points.
type CorrelationResult struct {
	Points      []CategoryPoint
	Coefficient float64
	Strength    string
	Trendline   []float64
}

// ReviewRevenueCorrelation relates per-category average review to total
// revenue across categories with at least minOrders distinct orders. With
// no qualifying categories it returns an empty result alongside an
// AggregationWarning for the caller to surface.
func ReviewRevenueCorrelation(rollups []CategoryRollup, minOrders int) (*CorrelationResult, error) {
	var points []CategoryPoint
	for _, rollup := range rollups {
		if rollup.OrderCount < minOrders {
			continue
		}
		points = append(points, CategoryPoint{
			Category:  rollup.Category,
			AvgReview: rollup.AvgReview,
			Revenue:   rollup.TotalRevenue,
		})
	}

	if len(points) == 0 {
		return &CorrelationResult{}, &AggregationWarning{
			Reason: fmt.Sprintf("no category reaches %d orders, correlation analysis skipped", minOrders),
		}
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.AvgReview
		ys[i] = p.Revenue
	}

	result := &CorrelationResult{Points: points}
	result.Coefficient = pearson(xs, ys)
	result.Strength = strengthLabel(result.Coefficient)

	slope, intercept, err := fitLine(xs, ys)
	if err != nil {
		// keep the raw series as overlay
		log.Debugf("Falling back to unfitted series: %v", err)
		result.Trendline = append([]float64(nil), ys...)
		return result, nil
	}
	trendline := make([]float64, len(xs))
	for i, x := range xs {
		trendline[i] = slope*x + intercept
	}
	result.Trendline = trendline
	return result, nil
}

func strengthLabel(r float64) string {
	switch {
	case r > 0.7:
		return "strong positive"
	case r > 0.3:
		return "moderate positive"
	case r > 0:
		return "weak"
	default:
		return "negative"
	}
}

// pearson computes the sample correlation coefficient. Degenerate input
// (a constant series) yields 0.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if n == 0 {
		return 0
	}
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}

// fitLine fits y = slope*x + intercept by least squares.
func fitLine(xs, ys []float64) (slope, intercept float64, err error) {
	if len(xs) < 2 {
		return 0, 0, &TrendlineFitError{Reason: "fewer than two points"}
	}
	n := float64(len(xs))
	var sumX, sumY, sumXX, sumXY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXX += xs[i] * xs[i]
		sumXY += xs[i] * ys[i]
	}
	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return 0, 0, &TrendlineFitError{Reason: "zero variance in x"}
	}
	slope = (n*sumXY - sumX*sumY) / denominator
	intercept = (sumY - slope*sumX) / n
	return slope, intercept, nil
}
