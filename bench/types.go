package bench

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/sortlab/instrument"
	"github.com/katalvlaran/sortlab/mergesort"
	"github.com/katalvlaran/sortlab/record"
)

// Sentinel errors for harness execution.
var (
	// ErrNegativeSize is returned when a requested size is below zero.
	ErrNegativeSize = errors.New("bench: negative size")

	// ErrDisagreement is returned when verification finds that the two
	// algorithms produced different or unsorted sequences.
	ErrDisagreement = errors.New("bench: sort results disagree")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bench: invalid option supplied")
)

// DefaultSizes is the historical sweep used by the comparison reports.
var DefaultSizes = []int{5, 10, 25, 50, 100, 250, 500, 750, 1000, 1500, 2000, 3000, 4000, 5000}

// Measurement is the outcome of one algorithm on one input.
type Measurement struct {
	Stats   instrument.Stats
	Elapsed time.Duration
}

// Result aggregates both runs for one requested size.
//   - Size:   the size as requested, even when it exceeds the record count.
//   - Input:  the number of records actually sorted.
//   - Sorted: the merge sort output; bubble sort must match it.
type Result struct {
	Size   int
	Input  int
	Merge  Measurement
	Bubble Measurement
	Sorted []record.Record
}

// Speedup returns bubble time divided by merge time, or 1 when the merge
// time is zero.
func (r Result) Speedup() float64 {
	if r.Merge.Elapsed <= 0 {
		return 1
	}

	return r.Bubble.Elapsed.Seconds() / r.Merge.Elapsed.Seconds()
}

// Option configures Run via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks of a sweep.
type Options struct {
	// Verify cross-checks every size: both outputs sorted, identical, and a
	// permutation of the input.
	Verify bool

	// MergeStrategy selects the merge sort divide strategy.
	MergeStrategy mergesort.Strategy

	// OnResult is called after each size. Returning an error aborts Run.
	OnResult func(Result) error

	// Logger receives per-size debug lines.
	Logger *slog.Logger

	// Clock returns the current time; elapsed times are Clock() deltas.
	Clock func() time.Time

	err error
}

// DefaultOptions returns Options with verification on, the recursive merge
// strategy, a no-op OnResult, a discarding logger and time.Now.
func DefaultOptions() Options {
	return Options{
		Verify:        true,
		MergeStrategy: mergesort.Recursive,
		OnResult:      func(Result) error { return nil },
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:         time.Now,
	}
}

// WithVerify toggles the cross-algorithm check.
func WithVerify(on bool) Option {
	return func(o *Options) {
		o.Verify = on
	}
}

// WithMergeStrategy selects the merge sort strategy.
// Unknown strategies → ErrOptionViolation.
func WithMergeStrategy(s mergesort.Strategy) Option {
	return func(o *Options) {
		if s != mergesort.Recursive && s != mergesort.ExplicitStack {
			o.err = fmt.Errorf("%w: unknown merge strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.MergeStrategy = s
	}
}

// WithOnResult registers the per-size callback. Nil is ignored.
func WithOnResult(fn func(Result) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnResult = fn
		}
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithClock overrides the time source. Nil → ErrOptionViolation.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now == nil {
			o.err = fmt.Errorf("%w: nil clock", ErrOptionViolation)
			return
		}
		o.Clock = now
	}
}
