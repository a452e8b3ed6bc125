package filters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wendi-lab/ecommerce-brazil-by-wendi/filters"
	"github.com/wendi-lab/ecommerce-brazil-by-wendi/schema"
)

func fixtureTable() *schema.Table {
	return schema.NewTable([]schema.Record{
		{OrderID: "o1", CustomerID: "c1", StateFullName: "São Paulo", Category: "Electronics", HasTimestamp: true, Year: 2023, TimePeriod: schema.PeriodMorning},
		{OrderID: "o2", CustomerID: "c2", StateFullName: "Rio de Janeiro", Category: "Books", HasTimestamp: true, Year: 2023, TimePeriod: schema.PeriodEvening},
		{OrderID: "o3", CustomerID: "c3", StateFullName: "São Paulo", Category: "Books", HasTimestamp: true, Year: 2024, TimePeriod: schema.PeriodDawn},
		{OrderID: "o4", CustomerID: "c4", StateFullName: "Minas Gerais", Category: "Home", HasTimestamp: false},
	})
}

func selectedOrders(v *filters.View) []string {
	var ids []string
	v.Each(func(r schema.Record) { ids = append(ids, r.OrderID) })
	return ids
}

func TestApplyUnfilteredKeepsEverything(t *testing.T) {
	view := filters.Apply(fixtureTable(), filters.Spec{})
	assert.Equal(t, 4, view.Len())
}

func TestApplyExactYear(t *testing.T) {
	view := filters.Apply(fixtureTable(), filters.Spec{Year: filters.Year(2023)})
	assert.Equal(t, []string{"o1", "o2"}, selectedOrders(view))
}

func TestApplyYearExcludesNullTimestamps(t *testing.T) {
	view := filters.Apply(fixtureTable(), filters.Spec{Year: filters.Year(2024)})
	// o4 has no timestamp and can never match an exact year
	assert.Equal(t, []string{"o3"}, selectedOrders(view))
}

func TestApplyPredicatesAreAnded(t *testing.T) {
	view := filters.Apply(fixtureTable(), filters.Spec{
		Year:     filters.Year(2023),
		State:    filters.Exact("São Paulo"),
		Category: filters.Exact("Electronics"),
	})
	assert.Equal(t, []string{"o1"}, selectedOrders(view))
}

func TestApplyEmptyTimePeriodsMeansNoFilter(t *testing.T) {
	view := filters.Apply(fixtureTable(), filters.Spec{TimePeriods: nil})
	assert.Equal(t, 4, view.Len())
}

func TestApplyTimePeriodMembership(t *testing.T) {
	view := filters.Apply(fixtureTable(), filters.Spec{
		TimePeriods: []string{schema.PeriodMorning, schema.PeriodDawn},
	})
	assert.Equal(t, []string{"o1", "o3"}, selectedOrders(view))
}

func TestApplyIsIdempotent(t *testing.T) {
	spec := filters.Spec{
		Year:        filters.Year(2023),
		TimePeriods: []string{schema.PeriodMorning, schema.PeriodEvening},
	}
	once := filters.Apply(fixtureTable(), spec)
	twice := once.Refine(spec)
	assert.Equal(t, selectedOrders(once), selectedOrders(twice))
	assert.True(t, once.Rows().Equals(twice.Rows()))
}

func TestApplyIsCommutative(t *testing.T) {
	table := fixtureTable()
	yearFirst := filters.Apply(table, filters.Spec{Year: filters.Year(2023)}).
		Refine(filters.Spec{Category: filters.Exact("Books")})
	categoryFirst := filters.Apply(table, filters.Spec{Category: filters.Exact("Books")}).
		Refine(filters.Spec{Year: filters.Year(2023)})
	assert.Equal(t, selectedOrders(yearFirst), selectedOrders(categoryFirst))
}

func TestFingerprintIsOrderInsensitive(t *testing.T) {
	a := filters.Spec{TimePeriods: []string{schema.PeriodEvening, schema.PeriodDawn}}
	b := filters.Spec{TimePeriods: []string{schema.PeriodDawn, schema.PeriodEvening}}
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	c := filters.Spec{Year: filters.Year(2023)}
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}
