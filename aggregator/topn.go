package aggregator

import (
	"cmp"
	"container/heap"
	"sort"
)

// DefaultRankSize is the ranking depth used by the dashboard views.
const DefaultRankSize = 5

type rankedRow[T any, V cmp.Ordered] struct {
	row   T
	value V
}

type rowHeap[T any, V cmp.Ordered] struct {
	items   []rankedRow[T, V]
	largest bool // true => keep the N largest
}

func (h rowHeap[T, V]) Len() int      { return len(h.items) }
func (h rowHeap[T, V]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h rowHeap[T, V]) Less(i, j int) bool {
	if h.largest {
		return h.items[i].value < h.items[j].value // min-heap for the top slice
	}
	return h.items[i].value > h.items[j].value // max-heap for the bottom slice
}
func (h *rowHeap[T, V]) Push(x interface{}) { h.items = append(h.items, x.(rankedRow[T, V])) }
func (h *rowHeap[T, V]) Pop() interface{} {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[:n-1]
	return x
}

type topN[T any, V cmp.Ordered] struct {
	h        *rowHeap[T, V]
	capacity int
}

func newTopN[T any, V cmp.Ordered](capacity int, largest bool) *topN[T, V] {
	if capacity <= 0 {
		capacity = 1
	}
	h := &rowHeap[T, V]{items: make([]rankedRow[T, V], 0, capacity), largest: largest}
	heap.Init(h)
	return &topN[T, V]{h: h, capacity: capacity}
}

func (t *topN[T, V]) insert(e rankedRow[T, V]) {
	if t.h.Len() < t.capacity {
		heap.Push(t.h, e)
		return
	}
	root := t.h.items[0]
	if t.h.largest {
		if e.value > root.value {
			t.h.items[0] = e
			heap.Fix(t.h, 0)
		}
	} else {
		if e.value < root.value {
			t.h.items[0] = e
			heap.Fix(t.h, 0)
		}
	}
}

func (t *topN[T, V]) values() []T {
	out := make([]rankedRow[T, V], len(t.h.items))
	copy(out, t.h.items)
	if t.h.largest {
		sort.Slice(out, func(i, j int) bool { return out[i].value > out[j].value })
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].value < out[j].value })
	}
	rows := make([]T, len(out))
	for i, e := range out {
		rows[i] = e.row
	}
	return rows
}

// RankExtremes returns the n rows with the largest values and the n rows
// with the smallest values of the extracted column, each ordered from most
// to least extreme. Which of several tied rows survives the cut is
// implementation-defined: heap selection carries no secondary key.
func RankExtremes[T any, V cmp.Ordered](rows []T, value func(T) V, n int) (top, bottom []T) {
	largest := newTopN[T, V](n, true)
	smallest := newTopN[T, V](n, false)
	for _, row := range rows {
		entry := rankedRow[T, V]{row: row, value: value(row)}
		largest.insert(entry)
		smallest.insert(entry)
	}
	return largest.values(), smallest.values()
}
