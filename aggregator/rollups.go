package aggregator

import (
	"sort"

	"github.com/op/go-logging"

	"github.com/wendi-lab/ecommerce-brazil-by-wendi/filters"
	"github.com/wendi-lab/ecommerce-brazil-by-wendi/schema"
)

var log = logging.MustGetLogger("log")

// StateRollup is the per-state aggregate. AvgReview is computed only over
// rated rows (score > 0); TotalRevenue sums price over every row of the
// group. The two columns deliberately come from different row subsets.
type StateRollup struct {
	State        string
	AvgReview    float64
	TotalRevenue float64
}

// RollupByState groups the view by full state name. Rows whose state code
// did not resolve to a name are dropped entirely: they have no coordinate
// to plot. Output is sorted by state name for deterministic rendering.
func RollupByState(view *filters.View) []StateRollup {
	type group struct {
		review  *ReviewMeanAccumulator
		revenue *SumAccumulator
	}
	groups := make(map[string]*group)

	view.Each(func(r schema.Record) {
		if r.StateFullName == "" {
			return
		}
		g, ok := groups[r.StateFullName]
		if !ok {
			g = &group{review: NewReviewMean(), revenue: NewSum()}
			groups[r.StateFullName] = g
		}
		g.review.Add(float64(r.ReviewScore))
		g.revenue.Add(r.Price)
	})

	rollups := make([]StateRollup, 0, len(groups))
	for state, g := range groups {
		rollups = append(rollups, StateRollup{
			State:        state,
			AvgReview:    g.review.Result(),
			TotalRevenue: g.revenue.Result(),
		})
	}
	sort.Slice(rollups, func(i, j int) bool { return rollups[i].State < rollups[j].State })
	return rollups
}

// CategoryRollup is the per-category aggregate, with the same rated/unrated
// split as StateRollup plus a distinct order count.
type CategoryRollup struct {
	Category     string
	AvgReview    float64
	TotalRevenue float64
	OrderCount   int
}

// RollupByCategory groups the view by product category. Rows with no
// category are dropped. Output is sorted by category name.
func RollupByCategory(view *filters.View) []CategoryRollup {
	type group struct {
		review  *ReviewMeanAccumulator
		revenue *SumAccumulator
		orders  *DistinctCounter
	}
	groups := make(map[string]*group)

	view.Each(func(r schema.Record) {
		if r.Category == "" {
			return
		}
		g, ok := groups[r.Category]
		if !ok {
			g = &group{review: NewReviewMean(), revenue: NewSum(), orders: NewDistinct()}
			groups[r.Category] = g
		}
		g.review.Add(float64(r.ReviewScore))
		g.revenue.Add(r.Price)
		g.orders.AddKey(r.OrderID)
	})

	rollups := make([]CategoryRollup, 0, len(groups))
	for category, g := range groups {
		rollups = append(rollups, CategoryRollup{
			Category:     category,
			AvgReview:    g.review.Result(),
			TotalRevenue: g.revenue.Result(),
			OrderCount:   g.orders.Count(),
		})
	}
	sort.Slice(rollups, func(i, j int) bool { return rollups[i].Category < rollups[j].Category })
	return rollups
}

// CustomerRollup is the per-customer aggregate. State is the first state
// observed for the customer in view iteration order; the tie-break is
// arbitrary but deterministic because views iterate in ascending row order.
type CustomerRollup struct {
	CustomerID    string
	TotalSpending float64
	OrderCount    int
	State         string
}

// RollupByCustomer groups the view by customer unique id. Output is sorted
// by customer id.
func RollupByCustomer(view *filters.View) []CustomerRollup {
	type group struct {
		spending *SumAccumulator
		orders   *DistinctCounter
		state    string
	}
	groups := make(map[string]*group)

	view.Each(func(r schema.Record) {
		g, ok := groups[r.CustomerID]
		if !ok {
			g = &group{spending: NewSum(), orders: NewDistinct(), state: r.CustomerState}
			groups[r.CustomerID] = g
		}
		g.spending.Add(r.Price)
		g.orders.AddKey(r.OrderID)
	})

	rollups := make([]CustomerRollup, 0, len(groups))
	for customer, g := range groups {
		rollups = append(rollups, CustomerRollup{
			CustomerID:    customer,
			TotalSpending: g.spending.Result(),
			OrderCount:    g.orders.Count(),
			State:         g.state,
		})
	}
	sort.Slice(rollups, func(i, j int) bool { return rollups[i].CustomerID < rollups[j].CustomerID })
	return rollups
}

// TimePeriodRollup is the per-time-period aggregate.
type TimePeriodRollup struct {
	Period             string
	TotalRevenue       float64
	TransactionCount   int
	UniqueOrders       int
	UniqueCustomers    int
	AvgRevenuePerOrder float64
}

// RollupByTimePeriod groups the view by time-of-day bucket. Rows without a
// parseable timestamp have no period and are skipped. Output follows the
// fixed Dawn, Morning, Afternoon, Evening sequence; periods with no rows
// are omitted.
func RollupByTimePeriod(view *filters.View) []TimePeriodRollup {
	type group struct {
		revenue      *SumAccumulator
		transactions int
		orders       *DistinctCounter
		customers    *DistinctCounter
	}
	groups := make(map[string]*group)

	view.Each(func(r schema.Record) {
		if r.TimePeriod == "" {
			return
		}
		g, ok := groups[r.TimePeriod]
		if !ok {
			g = &group{revenue: NewSum(), orders: NewDistinct(), customers: NewDistinct()}
			groups[r.TimePeriod] = g
		}
		g.revenue.Add(r.Price)
		g.transactions++
		g.orders.AddKey(r.OrderID)
		g.customers.AddKey(r.CustomerID)
	})

	rollups := make([]TimePeriodRollup, 0, len(groups))
	for _, period := range schema.TimePeriodOrder {
		g, ok := groups[period]
		if !ok {
			continue
		}
		rollup := TimePeriodRollup{
			Period:           period,
			TotalRevenue:     g.revenue.Result(),
			TransactionCount: g.transactions,
			UniqueOrders:     g.orders.Count(),
			UniqueCustomers:  g.customers.Count(),
		}
		if rollup.UniqueOrders > 0 {
			rollup.AvgRevenuePerOrder = rollup.TotalRevenue / float64(rollup.UniqueOrders)
		}
		rollups = append(rollups, rollup)
	}
	return rollups
}
