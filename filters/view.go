package filters

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/wendi-lab/ecommerce-brazil-by-wendi/schema"
)

// View is a filtered, read-only selection over an immutable table. The
// selection is a bitmap of row indexes, so a view never copies rows and
// never mutates the table it was built from.
type View struct {
	table *schema.Table
	rows  *roaring.Bitmap
}

// Apply evaluates the spec against every row of the table. Each predicate
// produces its own row-index bitmap and the result is their intersection,
// so predicate application order cannot affect the outcome.
func Apply(table *schema.Table, spec Spec) *View {
	all := roaring.New()
	all.AddRange(0, uint64(table.Len()))
	view := &View{table: table, rows: all}
	return view.Refine(spec)
}

// Refine applies the spec on top of the view's current selection and
// returns a new view. Refining twice with the same spec yields the same
// selection.
func (v *View) Refine(spec Spec) *View {
	selected := v.rows.Clone()
	selected.And(yearRows(v.table, spec.Year))
	selected.And(valueRows(v.table, spec.State, func(r schema.Record) string { return r.StateFullName }))
	selected.And(valueRows(v.table, spec.Category, func(r schema.Record) string { return r.Category }))
	selected.And(timePeriodRows(v.table, spec.TimePeriods))
	return &View{table: v.table, rows: selected}
}

// Len is the number of selected rows.
func (v *View) Len() int {
	return int(v.rows.GetCardinality())
}

// Each calls fn for every selected record in ascending row order. The
// iteration order is deterministic because the underlying table is
// immutable for the session.
func (v *View) Each(fn func(r schema.Record)) {
	it := v.rows.Iterator()
	for it.HasNext() {
		fn(v.table.Row(int(it.Next())))
	}
}

// Rows exposes a copy of the selected row-index bitmap.
func (v *View) Rows() *roaring.Bitmap {
	return v.rows.Clone()
}

func yearRows(table *schema.Table, opt YearOption) *roaring.Bitmap {
	return matchRows(table, opt.match)
}

func valueRows(table *schema.Table, opt ValueOption, field func(schema.Record) string) *roaring.Bitmap {
	return matchRows(table, func(r schema.Record) bool {
		if !opt.set {
			return true
		}
		return field(r) == opt.value
	})
}

func timePeriodRows(table *schema.Table, periods []string) *roaring.Bitmap {
	if len(periods) == 0 {
		return matchRows(table, func(schema.Record) bool { return true })
	}
	wanted := make(map[string]bool, len(periods))
	for _, p := range periods {
		wanted[p] = true
	}
	return matchRows(table, func(r schema.Record) bool {
		return wanted[r.TimePeriod]
	})
}

func matchRows(table *schema.Table, match func(schema.Record) bool) *roaring.Bitmap {
	rows := roaring.New()
	for i := 0; i < table.Len(); i++ {
		if match(table.Row(i)) {
			rows.Add(uint32(i))
		}
	}
	return rows
}
