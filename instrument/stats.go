// Package instrument holds the counters attached to a single sort run.
//
// A Stats value is owned by exactly one sort invocation: the algorithm
// mutates it while running, the caller reads it after the call returns.
// Recursive algorithms pass the same *Stats down every frame.
package instrument

import "fmt"

// Stats accumulates operation counts and resource peaks for one sort run.
//
// Fields:
//   - Comparisons — head-to-head or adjacent-pair comparator calls.
//   - Writes      — elements appended to a merge output (merge sort).
//   - Swaps       — adjacent exchanges (bubble sort).
//   - Passes      — outer passes started (bubble sort).
//   - MaxMemory   — largest single auxiliary buffer, in elements.
//   - MaxDepth    — deepest recursion level reached (root = 0).
type Stats struct {
	Comparisons int
	Writes      int
	Swaps       int
	Passes      int
	MaxMemory   int
	MaxDepth    int
}

// ObserveDepth raises MaxDepth to d if d is deeper.
func (s *Stats) ObserveDepth(d int) {
	if d > s.MaxDepth {
		s.MaxDepth = d
	}
}

// ObserveMemory raises MaxMemory to n if n is larger.
func (s *Stats) ObserveMemory(n int) {
	if n > s.MaxMemory {
		s.MaxMemory = n
	}
}

// Moves returns the element-movement counter of the run: writes for merge
// sort, swaps for bubble sort.
func (s Stats) Moves() int {
	return s.Writes + s.Swaps
}

// Add folds the counters of o into s. Peaks take the maximum.
func (s *Stats) Add(o Stats) {
	s.Comparisons += o.Comparisons
	s.Writes += o.Writes
	s.Swaps += o.Swaps
	s.Passes += o.Passes
	s.ObserveMemory(o.MaxMemory)
	s.ObserveDepth(o.MaxDepth)
}

// String is a compact single-line dump used in debug logs.
func (s Stats) String() string {
	return fmt.Sprintf("cmp=%d writes=%d swaps=%d passes=%d mem=%d depth=%d",
		s.Comparisons, s.Writes, s.Swaps, s.Passes, s.MaxMemory, s.MaxDepth)
}
