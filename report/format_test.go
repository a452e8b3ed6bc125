package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wendi-lab/ecommerce-brazil-by-wendi/aggregator"
	"github.com/wendi-lab/ecommerce-brazil-by-wendi/report"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		value    float64
		expected string
	}{
		{0, "R$ 0,00"},
		{9.9, "R$ 9,90"},
		{1234.56, "R$ 1.234,56"},
		{1234567.891, "R$ 1.234.567,89"},
		{-42.5, "-R$ 42,50"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, report.FormatCurrency(c.value))
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.3%", report.FormatPercent(12.34))
	assert.Equal(t, "100.0%", report.FormatPercent(100))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "999", report.FormatCount(999))
	assert.Equal(t, "1.000", report.FormatCount(1000))
	assert.Equal(t, "1.234.567", report.FormatCount(1234567))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3.14, report.Round(3.14159, 2))
	assert.Equal(t, 3.0, report.Round(2.999, 0))
}

func TestCorrelationSeriesAlignsOverlay(t *testing.T) {
	correlation := &aggregator.CorrelationResult{
		Points: []aggregator.CategoryPoint{
			{Category: "a", AvgReview: 4, Revenue: 100.554},
			{Category: "b", AvgReview: 5, Revenue: 200},
		},
		Trendline: []float64{110.111, 190},
	}

	series := report.CorrelationSeries(correlation)
	assert.Equal(t, report.ChartScatterTrend, series.Kind)
	assert.Equal(t, []string{"a", "b"}, series.Labels)
	assert.Equal(t, []float64{100.55, 200}, series.Values)
	assert.Equal(t, []float64{110.11, 190}, series.Overlay)
	assert.Equal(t, "R$ 100,55", series.Text[0])
}

func TestCorrelationSeriesNilResult(t *testing.T) {
	series := report.CorrelationSeries(nil)
	assert.Empty(t, series.Labels)
}

func TestStateRevenueSeries(t *testing.T) {
	series := report.StateRevenueSeries([]aggregator.StateRollup{
		{State: "São Paulo", AvgReview: 4.2, TotalRevenue: 1500.499},
	})
	assert.Equal(t, report.ChartScatterGeo, series.Kind)
	assert.Equal(t, []float64{1500.5}, series.Values)
	assert.Equal(t, "R$ 1.500,50", series.Text[0])
}
