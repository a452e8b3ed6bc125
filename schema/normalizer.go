package schema

import (
	"fmt"
	"strconv"
	"time"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

const timestampLayout = "2006-01-02 15:04:05"

// defaultReviewScore fills in when the dataset revision carries no
// review_score column at all. This is an imputation policy, not an error:
// a missing column means "nothing was surveyed", and a neutral 3 keeps the
// review aggregates defined.
const defaultReviewScore = 3

// SchemaError reports a structurally required column missing from the raw
// table. It is fatal for the session; there is no partial-row recovery.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required column %q missing from dataset", e.Column)
}

// column names expected in the raw table
const (
	colOrderID    = "order_id"
	colCustomerID = "customer_unique_id"
	colState      = "customer_state"
	colTimestamp  = "order_purchase_timestamp"
	colPrice      = "price"
	colFreight    = "freight_value"
	colCategory   = "product_category_name_english"
	colReview     = "review_score"
)

var requiredColumns = []string{colOrderID, colCustomerID, colState}

// Normalize validates and coerces a raw table into the canonical record
// shape: timestamps parsed leniently, year/month/hour/time-period derived,
// state codes resolved to full names, missing review/price values filled.
// It fails only when a structurally required column is absent.
func Normalize(raw RawTable) (*Table, error) {
	indexes := make(map[string]int, len(raw.Columns))
	for i, name := range raw.Columns {
		indexes[name] = i
	}

	for _, required := range requiredColumns {
		if _, ok := indexes[required]; !ok {
			return nil, &SchemaError{Column: required}
		}
	}

	for _, optional := range []string{colTimestamp, colPrice, colFreight, colCategory, colReview} {
		if _, ok := indexes[optional]; !ok {
			log.Warningf("Column %q missing, falling back to defaults", optional)
		}
	}

	records := make([]Record, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		if len(row) != len(raw.Columns) {
			log.Warningf("Row length %d does not match column names length %d, ignoring row", len(row), len(raw.Columns))
			continue
		}
		records = append(records, normalizeRow(row, indexes))
	}

	return NewTable(records), nil
}

func normalizeRow(row []string, indexes map[string]int) Record {
	record := Record{
		OrderID:       cell(row, indexes, colOrderID),
		CustomerID:    cell(row, indexes, colCustomerID),
		CustomerState: cell(row, indexes, colState),
		Category:      cell(row, indexes, colCategory),
		ReviewScore:   defaultReviewScore,
	}

	if name, ok := StateName(record.CustomerState); ok {
		record.StateFullName = name
	}

	if idx, ok := indexes[colTimestamp]; ok {
		if ts, err := time.Parse(timestampLayout, row[idx]); err == nil {
			record.Timestamp = ts
			record.HasTimestamp = true
			record.Year = ts.Year()
			record.Month = int(ts.Month())
			record.Hour = ts.Hour()
			record.TimePeriod = TimePeriodForHour(ts.Hour())
		}
	}

	if idx, ok := indexes[colPrice]; ok {
		record.Price = parseFloat(row[idx])
	}
	if idx, ok := indexes[colFreight]; ok {
		record.FreightValue = parseFloat(row[idx])
	}
	if idx, ok := indexes[colReview]; ok {
		record.ReviewScore = parseReview(row[idx])
	}

	return record
}

func cell(row []string, indexes map[string]int, column string) string {
	idx, ok := indexes[column]
	if !ok {
		return ""
	}
	return row[idx]
}

func parseFloat(value string) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// parseReview coerces a raw review cell into the 0-5 range. Anything
// unreadable or out of range collapses to the unrated sentinel 0.
func parseReview(value string) int {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	score := int(parsed)
	if score < 0 || score > 5 {
		return 0
	}
	return score
}
