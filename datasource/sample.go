package datasource

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/wendi-lab/ecommerce-brazil-by-wendi/schema"
)

const (
	sampleSize      = 1000
	sampleCustomers = 50
	sampleSeed      = 42
)

var (
	sampleStates     = []string{"SP", "RJ", "MG", "RS"}
	sampleCategories = []string{"Electronics", "Home", "Books"}
	sampleStatuses   = []string{"delivered", "shipped"}
)

// Sample builds the deterministic synthetic dataset used when the real
// data source is unavailable: 1000 order lines across 50 customers,
// hourly timestamps starting 2023-01-01, prices between 10 and 500.
func Sample() schema.RawTable {
	rng := rand.New(rand.NewSource(sampleSeed))
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	columns := []string{
		"order_id", "customer_id", "order_status", "order_purchase_timestamp",
		"customer_unique_id", "customer_state", "price", "freight_value",
		"product_category_name_english", "review_score", "payment_value",
	}

	rows := make([][]string, 0, sampleSize)
	for i := 0; i < sampleSize; i++ {
		timestamp := start.Add(time.Duration(i) * time.Hour)
		price := 10 + rng.Float64()*490
		freight := 5 + rng.Float64()*45
		rows = append(rows, []string{
			fmt.Sprintf("order_%d", i),
			fmt.Sprintf("customer_%d", i%100),
			sampleStatuses[rng.Intn(len(sampleStatuses))],
			timestamp.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("unique_%d", i%sampleCustomers),
			sampleStates[rng.Intn(len(sampleStates))],
			fmt.Sprintf("%.2f", price),
			fmt.Sprintf("%.2f", freight),
			sampleCategories[rng.Intn(len(sampleCategories))],
			fmt.Sprintf("%d", 1+rng.Intn(5)),
			fmt.Sprintf("%.2f", price+freight),
		})
	}

	return schema.RawTable{Columns: columns, Rows: rows}
}
