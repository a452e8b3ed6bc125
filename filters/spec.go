package filters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wendi-lab/ecommerce-brazil-by-wendi/schema"
)

// YearOption is either "no year filter" or an exact year match. The zero
// value filters nothing.
type YearOption struct {
	year int
	set  bool
}

// AnyYear matches every row.
func AnyYear() YearOption {
	return YearOption{}
}

// Year matches rows whose derived year equals y. Rows without a parseable
// timestamp never match an exact year.
func Year(y int) YearOption {
	return YearOption{year: y, set: true}
}

func (o YearOption) match(r schema.Record) bool {
	if !o.set {
		return true
	}
	return r.HasTimestamp && r.Year == o.year
}

// ValueOption is either "no filter" or an exact string match. The zero
// value filters nothing.
type ValueOption struct {
	value string
	set   bool
}

// Any matches every row.
func Any() ValueOption {
	return ValueOption{}
}

// Exact matches rows whose field equals v.
func Exact(v string) ValueOption {
	return ValueOption{value: v, set: true}
}

// Spec is a declarative filter configuration. All predicates are ANDed.
// An empty TimePeriods set means "no time-period filter", mirroring the
// default-all-selected behavior of the filter surface; it never means
// "exclude everything".
type Spec struct {
	Year        YearOption
	State       ValueOption
	Category    ValueOption
	TimePeriods []string
}

// Fingerprint returns a deterministic key for the spec, usable for
// memoizing aggregation results per filter configuration.
func (s Spec) Fingerprint() string {
	year := "*"
	if s.Year.set {
		year = fmt.Sprintf("%d", s.Year.year)
	}
	state := "*"
	if s.State.set {
		state = s.State.value
	}
	category := "*"
	if s.Category.set {
		category = s.Category.value
	}
	periods := append([]string(nil), s.TimePeriods...)
	sort.Strings(periods)
	return strings.Join([]string{year, state, category, strings.Join(periods, ",")}, "|")
}
