package main

import (
	"fmt"

	"github.com/wendi-lab/ecommerce-brazil-by-wendi/dashboard"
	"github.com/wendi-lab/ecommerce-brazil-by-wendi/report"
)

func printSnapshot(snapshot *dashboard.Snapshot) {
	fmt.Printf("Run %s over %s rows\n\n", snapshot.RunID, report.FormatCount(snapshot.RowCount))

	for _, notice := range snapshot.Notices {
		fmt.Printf("NOTICE: %s\n", notice)
	}

	fmt.Println("== Headline metrics ==")
	fmt.Printf("Total Revenue:    %s\n", report.FormatCurrency(snapshot.Metrics.TotalRevenue))
	fmt.Printf("Avg Review:       %.2f/5.0\n", snapshot.Metrics.AvgReview)
	fmt.Printf("Total Orders:     %s\n", report.FormatCount(snapshot.Metrics.TotalOrders))
	fmt.Printf("Unique Customers: %s\n", report.FormatCount(snapshot.Metrics.UniqueCustomers))

	printSeries(report.ReviewDistributionSeries(snapshot.ReviewDistribution))
	printSeries(report.StateRevenueSeries(snapshot.States))
	printSeries(report.StateReviewSeries(snapshot.States))
	printSeries(report.CategoryRevenueSeries(snapshot.Categories))
	printSeries(report.CustomerSpendSeries(snapshot.Customers))
	printSeries(report.CustomerOrdersSeries(snapshot.Customers))
	printSeries(report.TimePeriodRevenueSeries(snapshot.TimePeriods))
	printSeries(report.CorrelationSeries(snapshot.Correlation))
	printSeries(report.SegmentSeries("Spending Segments", snapshot.SpendingSegments))
	printSeries(report.SegmentSeries("Repeat-Purchase Segments", snapshot.RepeatSegments))

	if snapshot.Correlation != nil && len(snapshot.Correlation.Points) > 0 {
		fmt.Printf("\nReview/revenue correlation: %.3f (%s)\n",
			snapshot.Correlation.Coefficient, snapshot.Correlation.Strength)
	}

	fmt.Println("\n== Top categories by revenue ==")
	for i, category := range snapshot.TopCategories {
		fmt.Printf("%d. %s  %s\n", i+1, category.Category, report.FormatCurrency(category.TotalRevenue))
	}
	fmt.Println("== Bottom categories by revenue ==")
	for i, category := range snapshot.BottomCategories {
		fmt.Printf("%d. %s  %s\n", i+1, category.Category, report.FormatCurrency(category.TotalRevenue))
	}
}

func printSeries(series report.Series) {
	fmt.Printf("\n== %s (%s) ==\n", series.Title, series.Kind)
	for i, label := range series.Labels {
		fmt.Printf("%-25s %12.2f  %s\n", label, series.Values[i], series.Text[i])
	}
}
