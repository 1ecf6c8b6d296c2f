package mergesort

import (
	"math/bits"

	"github.com/katalvlaran/sortlab/instrument"
	"github.com/katalvlaran/sortlab/record"
)

// frame is one pending unit of work on the explicit stack.
//   - merge=false: divide [lo,hi) and schedule its halves.
//   - merge=true:  both halves of [lo,hi) are sorted, merge them.
type frame struct {
	lo, hi int
	depth  int
	merge  bool
}

// sorter holds the mutable state of an explicit-stack run.
type sorter struct {
	work  []record.Record // backing store, sorted in place range by range
	buf   []record.Record // scratch for one merge, same length as work
	stack []frame
	st    *instrument.Stats
	opts  Options
}

// sortStack is the iterative twin of sortRecursive. Frames are visited in
// the same order as recursive calls (left before right), and every frame
// observes its depth on entry exactly like a recursive call would.
func sortStack(items []record.Record, st *instrument.Stats, o Options) []record.Record {
	n := len(items)
	if n <= 1 {
		st.ObserveDepth(0)
		return items
	}

	s := &sorter{
		work:  record.Clone(items),
		buf:   make([]record.Record, n),
		stack: make([]frame, 0, 2*bits.Len(uint(n))+2),
		st:    st,
		opts:  o,
	}
	s.push(frame{lo: 0, hi: n})
	s.loop()

	return s.work
}

// push appends f to the stack.
func (s *sorter) push(f frame) {
	s.stack = append(s.stack, f)
}

// loop drains the stack.
func (s *sorter) loop() {
	for len(s.stack) > 0 {
		f := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		if f.merge {
			s.mergeFrame(f)
			continue
		}
		s.divideFrame(f)
	}
}

// divideFrame schedules the merge of f and, above it, both halves.
// The left half is pushed last so it is processed first.
func (s *sorter) divideFrame(f frame) {
	s.st.ObserveDepth(f.depth)
	n := f.hi - f.lo
	if n <= 1 {
		return
	}
	s.st.ObserveMemory(n)

	mid := f.lo + n/2
	s.push(frame{lo: f.lo, hi: f.hi, depth: f.depth, merge: true})
	s.push(frame{lo: mid, hi: f.hi, depth: f.depth + 1})
	s.push(frame{lo: f.lo, hi: mid, depth: f.depth + 1})
}

// mergeFrame merges the two sorted halves of f through the scratch buffer.
func (s *sorter) mergeFrame(f frame) {
	mid := f.lo + (f.hi-f.lo)/2
	dst := s.buf[f.lo:f.hi]
	mergeRuns(dst, s.work[f.lo:mid], s.work[mid:f.hi], s.st)
	copy(s.work[f.lo:f.hi], dst)
	s.st.ObserveMemory(len(dst))
	s.opts.OnMerge(f.lo, f.hi, f.depth)
}
