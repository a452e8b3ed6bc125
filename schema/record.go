package schema

import "time"

// RawTable is a column-named table of string cells, as delivered by the
// data source before any typing or derivation has happened.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// Record is one normalized order line. Derived fields (Year, Month, Hour,
// TimePeriod) are only meaningful when HasTimestamp is true. A ReviewScore
// of 0 means the order was never reviewed; it is a sentinel, not a score.
type Record struct {
	OrderID       string
	CustomerID    string
	CustomerState string
	StateFullName string
	Timestamp     time.Time
	HasTimestamp  bool
	Year          int
	Month         int
	Hour          int
	TimePeriod    string
	Price         float64
	FreightValue  float64
	Category      string
	ReviewScore   int
}

// Rated reports whether the record carries a real review score.
func (r Record) Rated() bool {
	return r.ReviewScore > 0
}

// Table is the immutable normalized dataset. It is built once at load time;
// everything downstream reads it through index-based access and never
// mutates it.
type Table struct {
	records []Record
}

// NewTable copies the given records into a fresh table.
func NewTable(records []Record) *Table {
	owned := make([]Record, len(records))
	copy(owned, records)
	return &Table{records: owned}
}

func (t *Table) Len() int {
	return len(t.records)
}

// Row returns the record at index i by value.
func (t *Table) Row(i int) Record {
	return t.records[i]
}
