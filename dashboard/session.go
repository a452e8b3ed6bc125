package dashboard

import (
	"github.com/google/uuid"
	"github.com/op/go-logging"

	"github.com/wendi-lab/ecommerce-brazil-by-wendi/aggregator"
	"github.com/wendi-lab/ecommerce-brazil-by-wendi/filters"
	"github.com/wendi-lab/ecommerce-brazil-by-wendi/schema"
	"github.com/wendi-lab/ecommerce-brazil-by-wendi/segments"
)

var log = logging.MustGetLogger("log")

// Options tune the derivation thresholds. The correlation floor and the
// ranking floor are deliberately independent settings: the product applies
// a minimum order count to correlation analysis but not to plain
// top/bottom ranking.
type Options struct {
	CorrelationMinOrders int
	RankingMinOrders     int
	RankSize             int
	MemoizeAggregations  bool
}

// DefaultOptions mirror the dashboard's shipped behavior.
func DefaultOptions() Options {
	return Options{
		CorrelationMinOrders: 10,
		RankingMinOrders:     0,
		RankSize:             aggregator.DefaultRankSize,
	}
}

// Snapshot is everything one interaction renders: headline metrics, every
// rollup, rankings, segment summaries and the correlation analysis.
// Notices carry user-visible messages for aggregations that produced no
// qualifying rows.
type Snapshot struct {
	RunID              uuid.UUID
	Filter             filters.Spec
	RowCount           int
	Metrics            aggregator.Metrics
	ReviewDistribution []aggregator.ScoreCount
	States             []aggregator.StateRollup
	Categories         []aggregator.CategoryRollup
	TopCategories      []aggregator.CategoryRollup
	BottomCategories   []aggregator.CategoryRollup
	Customers          []aggregator.CustomerRollup
	TimePeriods        []aggregator.TimePeriodRollup
	Correlation        *aggregator.CorrelationResult
	SpendingSegments   []segments.Summary
	RepeatSegments     []segments.Summary
	Notices            []string
}

// Session owns the immutable normalized table for the lifetime of one
// dashboard process and re-derives every view on each interaction. It is
// not safe for concurrent use: the interaction model is strictly
// request/response.
type Session struct {
	id    uuid.UUID
	table *schema.Table
	opts  Options
	memo  map[string]*Snapshot
}

// NewSession wraps a normalized table.
func NewSession(table *schema.Table, opts Options) *Session {
	if opts.RankSize <= 0 {
		opts.RankSize = aggregator.DefaultRankSize
	}
	session := &Session{
		id:    uuid.New(),
		table: table,
		opts:  opts,
	}
	if opts.MemoizeAggregations {
		session.memo = make(map[string]*Snapshot)
	}
	log.Infof("Session %s opened over %d records", session.id, table.Len())
	return session
}

// ID exposes the UUID backing the session.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Run executes the full filter -> aggregate -> segment pipeline for one
// interaction and returns the derived snapshot. With memoization enabled,
// a repeated filter configuration returns the previously derived snapshot;
// the table is immutable, so a cached snapshot can never go stale.
func (s *Session) Run(spec filters.Spec) *Snapshot {
	fingerprint := spec.Fingerprint()
	if s.memo != nil {
		if cached, ok := s.memo[fingerprint]; ok {
			log.Debugf("Session %s reusing snapshot for filter %q", s.id, fingerprint)
			return cached
		}
	}

	runID := uuid.New()
	log.Debugf("Session %s run %s with filter %q", s.id, runID, fingerprint)

	view := filters.Apply(s.table, spec)
	snapshot := &Snapshot{
		RunID:    runID,
		Filter:   spec,
		RowCount: view.Len(),
	}

	snapshot.Metrics = aggregator.ComputeMetrics(view)
	snapshot.ReviewDistribution = aggregator.ReviewDistribution(view)
	snapshot.States = aggregator.RollupByState(view)
	snapshot.Categories = aggregator.RollupByCategory(view)
	snapshot.Customers = aggregator.RollupByCustomer(view)
	snapshot.TimePeriods = aggregator.RollupByTimePeriod(view)

	ranked := snapshot.Categories
	if s.opts.RankingMinOrders > 0 {
		ranked = make([]aggregator.CategoryRollup, 0, len(snapshot.Categories))
		for _, category := range snapshot.Categories {
			if category.OrderCount >= s.opts.RankingMinOrders {
				ranked = append(ranked, category)
			}
		}
	}
	snapshot.TopCategories, snapshot.BottomCategories = aggregator.RankExtremes(
		ranked,
		func(c aggregator.CategoryRollup) float64 { return c.TotalRevenue },
		s.opts.RankSize,
	)

	correlation, err := aggregator.ReviewRevenueCorrelation(snapshot.Categories, s.opts.CorrelationMinOrders)
	if err != nil {
		log.Warningf("Session %s run %s: %v", s.id, runID, err)
		snapshot.Notices = append(snapshot.Notices, err.Error())
	}
	snapshot.Correlation = correlation

	snapshot.SpendingSegments = segments.SummarizeSpending(snapshot.Customers)
	snapshot.RepeatSegments = segments.SummarizeRepeat(snapshot.Customers)

	if s.memo != nil {
		s.memo[fingerprint] = snapshot
	}
	return snapshot
}
