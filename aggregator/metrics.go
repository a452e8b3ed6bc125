package aggregator

import (
	"github.com/wendi-lab/ecommerce-brazil-by-wendi/filters"
	"github.com/wendi-lab/ecommerce-brazil-by-wendi/schema"
)

// Metrics are the headline numbers shown above every chart.
type Metrics struct {
	TotalRevenue    float64
	AvgReview       float64
	TotalOrders     int
	UniqueCustomers int
}

// ComputeMetrics summarizes the whole filtered view. AvgReview follows the
// unrated-sentinel policy; revenue and the distinct counts cover all rows.
func ComputeMetrics(view *filters.View) Metrics {
	revenue := NewSum()
	review := NewReviewMean()
	orders := NewDistinct()
	customers := NewDistinct()

	view.Each(func(r schema.Record) {
		revenue.Add(r.Price)
		review.Add(float64(r.ReviewScore))
		orders.AddKey(r.OrderID)
		customers.AddKey(r.CustomerID)
	})

	return Metrics{
		TotalRevenue:    revenue.Result(),
		AvgReview:       review.Result(),
		TotalOrders:     orders.Count(),
		UniqueCustomers: customers.Count(),
	}
}

// ScoreCount is one bar of the review-score distribution.
type ScoreCount struct {
	Score int
	Count int
}

// ReviewDistribution counts rows per review score 1 through 5. Unrated
// rows (score 0) are not part of the distribution. All five scores appear
// in the output, zero counts included.
func ReviewDistribution(view *filters.View) []ScoreCount {
	var counts [6]int
	view.Each(func(r schema.Record) {
		if r.Rated() {
			counts[r.ReviewScore]++
		}
	})

	distribution := make([]ScoreCount, 0, 5)
	for score := 1; score <= 5; score++ {
		distribution = append(distribution, ScoreCount{Score: score, Count: counts[score]})
	}
	return distribution
}
