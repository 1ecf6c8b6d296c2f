package bubblesort

import (
	"github.com/katalvlaran/sortlab/instrument"
	"github.com/katalvlaran/sortlab/record"
)

// inPlaceMemory is the auxiliary footprint reported for bubble sort.
const inPlaceMemory = 1

// Option configures Sort via functional arguments.
type Option func(*Options)

// Options holds the hooks of a bubble sort run.
type Options struct {
	// OnPass is called after each outer pass with the zero-based pass
	// index and the number of swaps made during that pass.
	OnPass func(pass, swaps int)
}

// DefaultOptions returns Options with a no-op OnPass hook.
func DefaultOptions() Options {
	return Options{OnPass: func(int, int) {}}
}

// WithOnPass registers a per-pass hook. Nil is ignored.
func WithOnPass(fn func(pass, swaps int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// Sort orders items in place and returns the same slice.
// Counters go to st; a nil st discards them.
func Sort(items []record.Record, st *instrument.Stats, opts ...Option) []record.Record {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if st == nil {
		st = &instrument.Stats{}
	}

	st.MaxMemory = inPlaceMemory
	st.MaxDepth = 0

	n := len(items)
	for i := 0; i < n; i++ {
		st.Passes++
		swaps := 0
		for j := 0; j < n-i-1; j++ {
			st.Comparisons++
			if record.Greater(items[j], items[j+1]) {
				items[j], items[j+1] = items[j+1], items[j]
				st.Swaps++
				swaps++
			}
		}
		o.OnPass(i, swaps)
		if swaps == 0 {
			break
		}
	}

	return items
}

// SortWithStats is Sort with a fresh accumulator returned by value.
func SortWithStats(items []record.Record, opts ...Option) ([]record.Record, instrument.Stats) {
	var st instrument.Stats
	out := Sort(items, &st, opts...)

	return out, st
}
