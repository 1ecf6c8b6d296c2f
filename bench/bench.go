package bench

import (
	"fmt"

	"github.com/katalvlaran/sortlab/bubblesort"
	"github.com/katalvlaran/sortlab/instrument"
	"github.com/katalvlaran/sortlab/mergesort"
	"github.com/katalvlaran/sortlab/record"
)

// Run sorts the prefix of all for every entry of sizes with both
// algorithms and returns one Result per size, in the order of sizes.
// all is never modified.
func Run(all []record.Record, sizes []int, opts ...Option) ([]Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for i, s := range sizes {
		if s < 0 {
			return nil, fmt.Errorf("%w: sizes[%d]=%d", ErrNegativeSize, i, s)
		}
	}

	results := make([]Result, 0, len(sizes))
	for _, s := range sizes {
		r, err := runSize(all, s, o)
		if err != nil {
			return nil, err
		}
		o.Logger.Debug("size done",
			"size", r.Size,
			"input", r.Input,
			"merge", r.Merge.Elapsed,
			"bubble", r.Bubble.Elapsed,
			"merge_stats", r.Merge.Stats.String(),
			"bubble_stats", r.Bubble.Stats.String())

		if err := o.OnResult(r); err != nil {
			return nil, fmt.Errorf("bench: size %d: %w", s, err)
		}
		results = append(results, r)
	}

	return results, nil
}

// runSize measures both algorithms on the first s records of all.
func runSize(all []record.Record, s int, o Options) (Result, error) {
	prefix := all[:min(s, len(all))]
	res := Result{Size: s, Input: len(prefix)}

	// independent copies: bubble sort works in place
	mergeIn := record.Clone(prefix)
	bubbleIn := record.Clone(prefix)

	var mst instrument.Stats
	start := o.Clock()
	sorted := mergesort.Sort(mergeIn, &mst, mergesort.WithStrategy(o.MergeStrategy))
	res.Merge = Measurement{Stats: mst, Elapsed: o.Clock().Sub(start)}

	var bst instrument.Stats
	start = o.Clock()
	bubbled := bubblesort.Sort(bubbleIn, &bst)
	res.Bubble = Measurement{Stats: bst, Elapsed: o.Clock().Sub(start)}

	res.Sorted = sorted

	if o.Verify {
		if err := verify(prefix, sorted, bubbled); err != nil {
			return Result{}, fmt.Errorf("size %d: %w", s, err)
		}
	}

	return res, nil
}

// verify checks sortedness, permutation preservation and agreement.
func verify(input, merged, bubbled []record.Record) error {
	switch {
	case !record.IsSorted(merged):
		return fmt.Errorf("%w: merge sort output not ordered", ErrDisagreement)
	case !record.SameMultiset(input, merged):
		return fmt.Errorf("%w: merge sort output is not a permutation of its input", ErrDisagreement)
	case !record.Equal(merged, bubbled):
		return fmt.Errorf("%w: bubble sort output differs from merge sort", ErrDisagreement)
	}

	return nil
}

// Totals folds the counters of every result into one Stats per algorithm.
// Peaks (memory, depth) are the maximum over all sizes.
func Totals(results []Result) (merge, bubble instrument.Stats) {
	for _, r := range results {
		merge.Add(r.Merge.Stats)
		bubble.Add(r.Bubble.Stats)
	}

	return merge, bubble
}
