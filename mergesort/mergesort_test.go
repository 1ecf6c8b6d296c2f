package mergesort_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/sortlab/generate"
	"github.com/katalvlaran/sortlab/instrument"
	"github.com/katalvlaran/sortlab/mergesort"
	"github.com/katalvlaran/sortlab/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []mergesort.Strategy{mergesort.Recursive, mergesort.ExplicitStack}

// TestSort_TwoRecords checks every counter on the smallest non-trivial input.
func TestSort_TwoRecords(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			in := []record.Record{{Age: 30, FirstName: "B", LastName: "X"}, {Age: 20, FirstName: "A", LastName: "Y"}}
			out, st := mergesort.SortWithStats(in, mergesort.WithStrategy(s))

			assert.Equal(t, []record.Record{{Age: 20, FirstName: "A", LastName: "Y"}, {Age: 30, FirstName: "B", LastName: "X"}}, out)
			assert.Equal(t, instrument.Stats{Comparisons: 1, Writes: 2, MaxMemory: 2, MaxDepth: 1}, st)
		})
	}
}

// TestSort_Trivial verifies empty and singleton inputs come back untouched.
func TestSort_Trivial(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			out, st := mergesort.SortWithStats(nil, mergesort.WithStrategy(s))
			assert.Empty(t, out)
			assert.Equal(t, instrument.Stats{}, st)

			one := []record.Record{{Age: 7, FirstName: "Solo", LastName: "One"}}
			out, st = mergesort.SortWithStats(one, mergesort.WithStrategy(s))
			assert.Equal(t, one, out)
			assert.Equal(t, instrument.Stats{}, st)
		})
	}
}

// TestSort_DuplicateKeys keeps the order and never prefers the right run on ties.
func TestSort_DuplicateKeys(t *testing.T) {
	in := []record.Record{{Age: 25, FirstName: "A", LastName: "A"}, {Age: 25, FirstName: "A", LastName: "A"}}
	var rootMerged bool
	out, st := mergesort.SortWithStats(in, mergesort.WithOnMerge(func(lo, hi, depth int) {
		rootMerged = lo == 0 && hi == 2 && depth == 0
	}))

	assert.Equal(t, in, out)
	assert.True(t, rootMerged)
	assert.Equal(t, 1, st.Comparisons)
	assert.Equal(t, 2, st.Writes)
}

// TestSort_DepthBound matches ⌈log2 n⌉ for a range of sizes.
func TestSort_DepthBound(t *testing.T) {
	cases := map[int]int{2: 1, 3: 2, 4: 2, 5: 3, 8: 3, 9: 4, 1000: 10, 1024: 10, 1025: 11}
	for n, want := range cases {
		in, err := generate.Random(n, generate.WithSeed(int64(n)))
		require.NoError(t, err)
		for _, s := range strategies {
			_, st := mergesort.SortWithStats(in, mergesort.WithStrategy(s))
			assert.Equal(t, want, st.MaxDepth, "n=%d strategy=%s", n, s)
			assert.Equal(t, n, st.MaxMemory, "n=%d strategy=%s", n, s)
		}
	}
}

// TestSort_WritesPerLevel checks that a power-of-two input writes n per level.
func TestSort_WritesPerLevel(t *testing.T) {
	in, err := generate.Random(1024, generate.WithSeed(7))
	require.NoError(t, err)

	_, st := mergesort.SortWithStats(in)
	assert.Equal(t, 1024*10, st.Writes)
	assert.GreaterOrEqual(t, st.Comparisons, 512*10)
	assert.LessOrEqual(t, st.Comparisons, st.Writes)
}

// TestSort_InputUntouched verifies the caller's slice is never reordered.
func TestSort_InputUntouched(t *testing.T) {
	in, err := generate.Reversed(64)
	require.NoError(t, err)
	orig := record.Clone(in)

	for _, s := range strategies {
		out := mergesort.Sort(in, nil, mergesort.WithStrategy(s))
		assert.True(t, record.IsSorted(out))
		assert.Equal(t, orig, in, "strategy=%s mutated its input", s)
	}
}

// TestSort_StrategiesAgree compares output and counters of both strategies.
func TestSort_StrategiesAgree(t *testing.T) {
	for n := 0; n <= 130; n++ {
		in, err := generate.Random(n, generate.WithSeed(int64(100+n)), generate.WithAgeRange(18, 22))
		require.NoError(t, err)

		recOut, recStats := mergesort.SortWithStats(in, mergesort.WithStrategy(mergesort.Recursive))
		stkOut, stkStats := mergesort.SortWithStats(in, mergesort.WithStrategy(mergesort.ExplicitStack))

		if diff := cmp.Diff(recOut, stkOut); diff != "" {
			t.Fatalf("n=%d output mismatch (-recursive +stack):\n%s", n, diff)
		}
		if diff := cmp.Diff(recStats, stkStats); diff != "" {
			t.Fatalf("n=%d stats mismatch (-recursive +stack):\n%s", n, diff)
		}
		assert.True(t, record.IsSorted(recOut), "n=%d", n)
		assert.True(t, record.SameMultiset(in, recOut), "n=%d", n)
	}
}

// TestSort_OnMergeCount fires the hook once per internal node, n-1 times.
func TestSort_OnMergeCount(t *testing.T) {
	in, err := generate.Sequential(37)
	require.NoError(t, err)

	for _, s := range strategies {
		var merges int
		var rootSeen bool
		mergesort.Sort(in, nil, mergesort.WithStrategy(s), mergesort.WithOnMerge(func(lo, hi, depth int) {
			merges++
			if lo == 0 && hi == 37 {
				rootSeen = depth == 0
			}
		}))
		assert.Equal(t, 36, merges, "strategy=%s", s)
		assert.True(t, rootSeen, "strategy=%s: root merge at depth 0", s)
	}
}

// TestSort_Idempotent re-sorting sorted output yields the same sequence.
func TestSort_Idempotent(t *testing.T) {
	in, err := generate.Random(200, generate.WithSeed(3))
	require.NoError(t, err)

	once := mergesort.Sort(in, nil)
	twice := mergesort.Sort(once, nil)
	assert.Equal(t, once, twice)
}

// TestSort_AccumulatesIntoCallerStats adds to a pre-populated accumulator.
func TestSort_AccumulatesIntoCallerStats(t *testing.T) {
	st := instrument.Stats{Comparisons: 100, Writes: 100}
	mergesort.Sort([]record.Record{{Age: 2, FirstName: "B", LastName: "B"}, {Age: 1, FirstName: "A", LastName: "A"}}, &st)

	assert.Equal(t, 101, st.Comparisons)
	assert.Equal(t, 102, st.Writes)
}

// TestWithStrategy_PanicsOnUnknown follows the option-constructor contract.
func TestWithStrategy_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { mergesort.WithStrategy(mergesort.Strategy(9)) })
	assert.Equal(t, "Strategy(9)", mergesort.Strategy(9).String())
}
