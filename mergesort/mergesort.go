package mergesort

import (
	"github.com/katalvlaran/sortlab/instrument"
	"github.com/katalvlaran/sortlab/record"
)

// Sort returns a new slice holding items in composite order.
//
// Counters are accumulated into st; a nil st means the caller does not
// care about them. Empty and single-element inputs are returned as-is
// without allocation.
func Sort(items []record.Record, st *instrument.Stats, opts ...Option) []record.Record {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if st == nil {
		st = &instrument.Stats{}
	}

	if o.Strategy == ExplicitStack {
		return sortStack(items, st, o)
	}

	return sortRecursive(items, 0, 0, st, o)
}

// SortWithStats is Sort with a fresh accumulator that is returned by value.
func SortWithStats(items []record.Record, opts ...Option) ([]record.Record, instrument.Stats) {
	var st instrument.Stats
	out := Sort(items, &st, opts...)

	return out, st
}

// sortRecursive sorts items, which start at offset lo of the original
// input, as a frame at the given depth.
func sortRecursive(items []record.Record, lo, depth int, st *instrument.Stats, o Options) []record.Record {
	st.ObserveDepth(depth)

	n := len(items)
	if n <= 1 {
		return items
	}
	st.ObserveMemory(n)

	mid := n / 2
	left := sortRecursive(items[:mid], lo, depth+1, st, o)
	right := sortRecursive(items[mid:], lo+mid, depth+1, st, o)

	result := make([]record.Record, n)
	mergeRuns(result, left, right, st)
	st.ObserveMemory(len(result))
	o.OnMerge(lo, lo+n, depth)

	return result
}

// mergeRuns merges the sorted runs left and right into dst, which must
// have length len(left)+len(right) and must not alias either run.
func mergeRuns(dst, left, right []record.Record, st *instrument.Stats) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		st.Comparisons++
		if record.LessOrEqual(left[i], right[j]) {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		st.Writes++
		k++
	}

	// drain whichever run is left over
	for i < len(left) {
		dst[k] = left[i]
		st.Writes++
		i++
		k++
	}
	for j < len(right) {
		dst[k] = right[j]
		st.Writes++
		j++
		k++
	}
}
