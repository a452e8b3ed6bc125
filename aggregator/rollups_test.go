package aggregator_test

import (
	"math"
	"testing"

	"github.com/wendi-lab/ecommerce-brazil-by-wendi/aggregator"
	"github.com/wendi-lab/ecommerce-brazil-by-wendi/filters"
	"github.com/wendi-lab/ecommerce-brazil-by-wendi/schema"
)

func viewOf(records []schema.Record) *filters.View {
	return filters.Apply(schema.NewTable(records), filters.Spec{})
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStateRollupUnratedSentinel(t *testing.T) {
	// two unrated rows and one rated row in the same state: the average
	// covers only the rated row, the revenue covers all three
	view := viewOf([]schema.Record{
		{OrderID: "o1", CustomerID: "c1", StateFullName: "São Paulo", ReviewScore: 0, Price: 10},
		{OrderID: "o2", CustomerID: "c2", StateFullName: "São Paulo", ReviewScore: 0, Price: 20},
		{OrderID: "o3", CustomerID: "c3", StateFullName: "São Paulo", ReviewScore: 5, Price: 30},
	})

	rollups := aggregator.RollupByState(view)
	if len(rollups) != 1 {
		t.Fatalf("Expected 1 state, got %d", len(rollups))
	}
	if !almostEqual(rollups[0].AvgReview, 5.0) {
		t.Errorf("Expected avg review 5.0, got %v", rollups[0].AvgReview)
	}
	if !almostEqual(rollups[0].TotalRevenue, 60) {
		t.Errorf("Expected total revenue 60, got %v", rollups[0].TotalRevenue)
	}
}

func TestStateRollupDropsUnmappedStates(t *testing.T) {
	view := viewOf([]schema.Record{
		{OrderID: "o1", CustomerID: "c1", StateFullName: "Bahia", ReviewScore: 4, Price: 100},
		{OrderID: "o2", CustomerID: "c2", StateFullName: "", ReviewScore: 4, Price: 50},
	})

	rollups := aggregator.RollupByState(view)
	if len(rollups) != 1 {
		t.Fatalf("Expected unmapped state dropped, got %d rollups", len(rollups))
	}

	var mapped float64
	for _, r := range rollups {
		mapped += r.TotalRevenue
	}
	if !almostEqual(mapped, 100) {
		t.Errorf("Expected mapped revenue 100 (smaller than the 150 total), got %v", mapped)
	}
}

func TestStateRollupRevenueConservation(t *testing.T) {
	records := []schema.Record{
		{OrderID: "o1", CustomerID: "c1", StateFullName: "Bahia", ReviewScore: 1, Price: 11},
		{OrderID: "o2", CustomerID: "c2", StateFullName: "Ceará", ReviewScore: 2, Price: 22},
		{OrderID: "o3", CustomerID: "c3", StateFullName: "Bahia", ReviewScore: 3, Price: 33},
	}
	view := viewOf(records)

	var total float64
	for _, r := range records {
		total += r.Price
	}

	var rolledUp float64
	for _, rollup := range aggregator.RollupByState(view) {
		rolledUp += rollup.TotalRevenue
	}
	if !almostEqual(rolledUp, total) {
		t.Errorf("Expected state revenue to sum to %v with no unmapped rows, got %v", total, rolledUp)
	}
}

func TestCustomerRollupDistinctOrders(t *testing.T) {
	view := viewOf([]schema.Record{
		{OrderID: "o1", CustomerID: "alice", CustomerState: "SP", Price: 10},
		{OrderID: "o1", CustomerID: "alice", CustomerState: "SP", Price: 15},
		{OrderID: "o2", CustomerID: "alice", CustomerState: "RJ", Price: 20},
		{OrderID: "o3", CustomerID: "bob", CustomerState: "MG", Price: 5},
	})

	rollups := aggregator.RollupByCustomer(view)
	if len(rollups) != 2 {
		t.Fatalf("Expected 2 customers, got %d", len(rollups))
	}

	alice := rollups[0]
	if alice.CustomerID != "alice" {
		t.Fatalf("Expected alice first, got %s", alice.CustomerID)
	}
	if alice.OrderCount != 2 {
		t.Errorf("Expected 2 distinct orders for alice, got %d", alice.OrderCount)
	}
	if !almostEqual(alice.TotalSpending, 45) {
		t.Errorf("Expected spending 45, got %v", alice.TotalSpending)
	}
	if alice.State != "SP" {
		t.Errorf("Expected first observed state SP, got %s", alice.State)
	}

	// sum of per-customer order counts equals the distinct order count
	var orderSum int
	for _, r := range rollups {
		orderSum += r.OrderCount
	}
	if orderSum != 3 {
		t.Errorf("Expected per-customer counts to sum to 3 distinct orders, got %d", orderSum)
	}
}

func TestCategoryRollupCountsDistinctOrders(t *testing.T) {
	view := viewOf([]schema.Record{
		{OrderID: "o1", CustomerID: "c1", Category: "Books", ReviewScore: 5, Price: 10},
		{OrderID: "o1", CustomerID: "c1", Category: "Books", ReviewScore: 5, Price: 10},
		{OrderID: "o2", CustomerID: "c2", Category: "Books", ReviewScore: 0, Price: 30},
		{OrderID: "o3", CustomerID: "c3", Category: "", ReviewScore: 4, Price: 99},
	})

	rollups := aggregator.RollupByCategory(view)
	if len(rollups) != 1 {
		t.Fatalf("Expected uncategorized rows dropped, got %d rollups", len(rollups))
	}
	books := rollups[0]
	if books.OrderCount != 2 {
		t.Errorf("Expected 2 distinct orders, got %d", books.OrderCount)
	}
	if !almostEqual(books.AvgReview, 5.0) {
		t.Errorf("Expected avg review 5.0 over rated rows, got %v", books.AvgReview)
	}
	if !almostEqual(books.TotalRevenue, 50) {
		t.Errorf("Expected revenue 50, got %v", books.TotalRevenue)
	}
}

func TestTimePeriodRollupFixedOrder(t *testing.T) {
	view := viewOf([]schema.Record{
		{OrderID: "o1", CustomerID: "c1", TimePeriod: schema.PeriodEvening, Price: 40},
		{OrderID: "o2", CustomerID: "c2", TimePeriod: schema.PeriodDawn, Price: 10},
		{OrderID: "o3", CustomerID: "c2", TimePeriod: schema.PeriodDawn, Price: 20},
		{OrderID: "o4", CustomerID: "c3", TimePeriod: "", Price: 99},
	})

	rollups := aggregator.RollupByTimePeriod(view)
	if len(rollups) != 2 {
		t.Fatalf("Expected 2 periods, got %d", len(rollups))
	}
	if rollups[0].Period != schema.PeriodDawn || rollups[1].Period != schema.PeriodEvening {
		t.Errorf("Expected Dawn before Evening, got %s, %s", rollups[0].Period, rollups[1].Period)
	}

	dawn := rollups[0]
	if dawn.TransactionCount != 2 || dawn.UniqueOrders != 2 || dawn.UniqueCustomers != 1 {
		t.Errorf("Unexpected dawn counts: %+v", dawn)
	}
	if !almostEqual(dawn.AvgRevenuePerOrder, 15) {
		t.Errorf("Expected avg revenue per order 15, got %v", dawn.AvgRevenuePerOrder)
	}
}

func TestComputeMetrics(t *testing.T) {
	view := viewOf([]schema.Record{
		{OrderID: "o1", CustomerID: "c1", ReviewScore: 4, Price: 10},
		{OrderID: "o1", CustomerID: "c1", ReviewScore: 0, Price: 20},
		{OrderID: "o2", CustomerID: "c2", ReviewScore: 2, Price: 30},
	})

	metrics := aggregator.ComputeMetrics(view)
	if !almostEqual(metrics.TotalRevenue, 60) {
		t.Errorf("Expected revenue 60, got %v", metrics.TotalRevenue)
	}
	if !almostEqual(metrics.AvgReview, 3) {
		t.Errorf("Expected avg review 3 over rated rows, got %v", metrics.AvgReview)
	}
	if metrics.TotalOrders != 2 || metrics.UniqueCustomers != 2 {
		t.Errorf("Unexpected distinct counts: %+v", metrics)
	}
}

func TestReviewDistributionExcludesUnrated(t *testing.T) {
	view := viewOf([]schema.Record{
		{OrderID: "o1", CustomerID: "c1", ReviewScore: 5},
		{OrderID: "o2", CustomerID: "c2", ReviewScore: 5},
		{OrderID: "o3", CustomerID: "c3", ReviewScore: 0},
	})

	distribution := aggregator.ReviewDistribution(view)
	if len(distribution) != 5 {
		t.Fatalf("Expected all five scores present, got %d", len(distribution))
	}
	var total int
	for _, score := range distribution {
		total += score.Count
	}
	if total != 2 {
		t.Errorf("Expected 2 rated rows counted, got %d", total)
	}
	if distribution[4].Score != 5 || distribution[4].Count != 2 {
		t.Errorf("Expected score 5 count 2, got %+v", distribution[4])
	}
}
