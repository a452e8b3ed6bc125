package report

import (
	"github.com/wendi-lab/ecommerce-brazil-by-wendi/aggregator"
	"github.com/wendi-lab/ecommerce-brazil-by-wendi/segments"
)

// ChartKind discriminates how the rendering collaborator should draw a
// series.
type ChartKind string

const (
	ChartHistogram    ChartKind = "histogram"
	ChartBar          ChartKind = "bar"
	ChartLine         ChartKind = "line"
	ChartPie          ChartKind = "pie"
	ChartScatterGeo   ChartKind = "scattergeo"
	ChartScatterTrend ChartKind = "scatter-trendline"
)

// Series is one renderer-ready chart feed: values are pre-rounded for
// display and Text carries pre-formatted labels aligned with Labels and
// Values. Overlay, when present, is a second value series (trendlines).
type Series struct {
	Kind    ChartKind
	Title   string
	Labels  []string
	Values  []float64
	Text    []string
	Overlay []float64
}

// StateRevenueSeries feeds the revenue-by-state map.
func StateRevenueSeries(states []aggregator.StateRollup) Series {
	s := Series{Kind: ChartScatterGeo, Title: "Revenue by State"}
	for _, state := range states {
		s.Labels = append(s.Labels, state.State)
		s.Values = append(s.Values, Round(state.TotalRevenue, 2))
		s.Text = append(s.Text, FormatCurrency(state.TotalRevenue))
	}
	return s
}

// StateReviewSeries feeds the average-review-by-state map.
func StateReviewSeries(states []aggregator.StateRollup) Series {
	s := Series{Kind: ChartScatterGeo, Title: "Average Review by State"}
	for _, state := range states {
		s.Labels = append(s.Labels, state.State)
		s.Values = append(s.Values, Round(state.AvgReview, 2))
		s.Text = append(s.Text, FormatPercent(state.AvgReview/5*100))
	}
	return s
}

// ReviewDistributionSeries feeds the review-score histogram.
func ReviewDistributionSeries(distribution []aggregator.ScoreCount) Series {
	s := Series{Kind: ChartHistogram, Title: "Review Score Distribution"}
	for _, score := range distribution {
		s.Labels = append(s.Labels, FormatCount(score.Score))
		s.Values = append(s.Values, float64(score.Count))
		s.Text = append(s.Text, FormatCount(score.Count))
	}
	return s
}

// CategoryRevenueSeries feeds the revenue-by-category bar chart.
func CategoryRevenueSeries(categories []aggregator.CategoryRollup) Series {
	s := Series{Kind: ChartBar, Title: "Revenue by Category"}
	for _, category := range categories {
		s.Labels = append(s.Labels, category.Category)
		s.Values = append(s.Values, Round(category.TotalRevenue, 2))
		s.Text = append(s.Text, FormatCurrency(category.TotalRevenue))
	}
	return s
}

// CustomerSpendSeries feeds the spending-per-customer histogram.
func CustomerSpendSeries(customers []aggregator.CustomerRollup) Series {
	s := Series{Kind: ChartHistogram, Title: "Spending per Customer"}
	for _, customer := range customers {
		s.Labels = append(s.Labels, customer.CustomerID)
		s.Values = append(s.Values, Round(customer.TotalSpending, 2))
		s.Text = append(s.Text, FormatCurrency(customer.TotalSpending))
	}
	return s
}

// CustomerOrdersSeries feeds the orders-per-customer histogram.
func CustomerOrdersSeries(customers []aggregator.CustomerRollup) Series {
	s := Series{Kind: ChartHistogram, Title: "Orders per Customer"}
	for _, customer := range customers {
		s.Labels = append(s.Labels, customer.CustomerID)
		s.Values = append(s.Values, float64(customer.OrderCount))
		s.Text = append(s.Text, FormatCount(customer.OrderCount))
	}
	return s
}

// TimePeriodRevenueSeries feeds the revenue-by-time-period pie chart.
func TimePeriodRevenueSeries(periods []aggregator.TimePeriodRollup) Series {
	s := Series{Kind: ChartPie, Title: "Revenue by Time of Day"}
	for _, period := range periods {
		s.Labels = append(s.Labels, period.Period)
		s.Values = append(s.Values, Round(period.TotalRevenue, 2))
		s.Text = append(s.Text, FormatCurrency(period.TotalRevenue))
	}
	return s
}

// CorrelationSeries feeds the review-vs-revenue scatter with its fitted
// trendline overlay.
func CorrelationSeries(correlation *aggregator.CorrelationResult) Series {
	s := Series{Kind: ChartScatterTrend, Title: "Review vs Revenue by Category"}
	if correlation == nil {
		return s
	}
	for i, point := range correlation.Points {
		s.Labels = append(s.Labels, point.Category)
		s.Values = append(s.Values, Round(point.Revenue, 2))
		s.Text = append(s.Text, FormatCurrency(point.Revenue))
		if i < len(correlation.Trendline) {
			s.Overlay = append(s.Overlay, Round(correlation.Trendline[i], 2))
		}
	}
	return s
}

// SegmentSeries feeds a segment-membership pie chart.
func SegmentSeries(title string, summaries []segments.Summary) Series {
	s := Series{Kind: ChartPie, Title: title}
	for _, summary := range summaries {
		s.Labels = append(s.Labels, summary.Label)
		s.Values = append(s.Values, float64(summary.Count))
		s.Text = append(s.Text, FormatPercent(summary.Percentage))
	}
	return s
}
