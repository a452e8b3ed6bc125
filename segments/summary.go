package segments

import (
	"github.com/wendi-lab/ecommerce-brazil-by-wendi/aggregator"
)

// Summary describes one segment's membership over the filtered customer
// set. TotalOrders and RevenueShare are only populated for repeat-purchase
// summaries.
type Summary struct {
	Label        string
	Count        int
	Percentage   float64
	Sum          float64
	Mean         float64
	TotalOrders  int
	RevenueShare float64
}

type bucket struct {
	count  int
	sum    float64
	orders int
}

// SummarizeSpending classifies every customer by total spending and
// summarizes membership per segment. The output always lists the four
// spending labels in their fixed order, empty segments included.
func SummarizeSpending(customers []aggregator.CustomerRollup) []Summary {
	scale := SpendingScale()
	buckets := make(map[string]*bucket)
	for _, c := range customers {
		label := scale.Classify(c.TotalSpending)
		b, ok := buckets[label]
		if !ok {
			b = &bucket{}
			buckets[label] = b
		}
		b.count++
		b.sum += c.TotalSpending
	}
	return summarize(scale, buckets, len(customers), 0)
}

// SummarizeRepeat classifies every customer by distinct order count. On
// top of the common summary columns it reports total orders per segment
// and each segment's share of the whole set's revenue.
func SummarizeRepeat(customers []aggregator.CustomerRollup) []Summary {
	scale := RepeatScale()
	buckets := make(map[string]*bucket)
	var totalRevenue float64
	for _, c := range customers {
		totalRevenue += c.TotalSpending
		label := scale.Classify(float64(c.OrderCount))
		b, ok := buckets[label]
		if !ok {
			b = &bucket{}
			buckets[label] = b
		}
		b.count++
		b.sum += c.TotalSpending
		b.orders += c.OrderCount
	}
	return summarize(scale, buckets, len(customers), totalRevenue)
}

func summarize(scale Scale, buckets map[string]*bucket, total int, totalRevenue float64) []Summary {
	summaries := make([]Summary, 0, len(scale.Labels()))
	for _, label := range scale.Labels() {
		summary := Summary{Label: label}
		if b, ok := buckets[label]; ok {
			summary.Count = b.count
			summary.Sum = b.sum
			summary.Mean = b.sum / float64(b.count)
			summary.TotalOrders = b.orders
			if total > 0 {
				summary.Percentage = float64(b.count) / float64(total) * 100
			}
			if totalRevenue > 0 {
				summary.RevenueShare = b.sum / totalRevenue * 100
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
