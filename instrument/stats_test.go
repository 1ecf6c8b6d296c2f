package instrument_test

import (
	"testing"

	"github.com/katalvlaran/sortlab/instrument"
	"github.com/stretchr/testify/assert"
)

// TestStats_ObservePeaks keeps only the maxima.
func TestStats_ObservePeaks(t *testing.T) {
	var s instrument.Stats
	s.ObserveDepth(3)
	s.ObserveDepth(1)
	s.ObserveMemory(8)
	s.ObserveMemory(2)

	assert.Equal(t, 3, s.MaxDepth)
	assert.Equal(t, 8, s.MaxMemory)
}

// TestStats_AddAndMoves sums counters and maxes peaks.
func TestStats_AddAndMoves(t *testing.T) {
	s := instrument.Stats{Comparisons: 1, Writes: 2, MaxMemory: 4, MaxDepth: 2}
	s.Add(instrument.Stats{Comparisons: 3, Swaps: 5, Passes: 1, MaxMemory: 1, MaxDepth: 7})

	assert.Equal(t, instrument.Stats{Comparisons: 4, Writes: 2, Swaps: 5, Passes: 1, MaxMemory: 4, MaxDepth: 7}, s)
	assert.Equal(t, 7, s.Moves())
	assert.Equal(t, "cmp=4 writes=2 swaps=5 passes=1 mem=4 depth=7", s.String())
}
