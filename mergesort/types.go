package mergesort

import "fmt"

// Strategy selects how the divide step is driven.
type Strategy int

const (
	// Recursive drives the divide step with ordinary recursion.
	Recursive Strategy = iota

	// ExplicitStack drives the divide step with a heap-allocated frame stack.
	ExplicitStack
)

// String returns the strategy name used in logs and reports.
func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case ExplicitStack:
		return "explicit-stack"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Option configures Sort via functional arguments.
type Option func(*Options)

// Options holds the knobs of a merge sort run.
type Options struct {
	// Strategy picks recursion or the explicit work stack.
	Strategy Strategy

	// OnMerge is called after every merge step with the half-open index
	// range [lo, hi) of the merged run (relative to the input) and the
	// depth of the frame that merged it.
	OnMerge func(lo, hi, depth int)
}

// DefaultOptions returns Options with the Recursive strategy and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Strategy: Recursive,
		OnMerge:  func(int, int, int) {},
	}
}

// WithStrategy selects the divide strategy.
// Panics on an unknown Strategy value.
func WithStrategy(s Strategy) Option {
	if s != Recursive && s != ExplicitStack {
		panic(fmt.Sprintf("mergesort: WithStrategy(%d): unknown strategy", int(s)))
	}
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithOnMerge registers a hook run after each merge. Nil is ignored.
func WithOnMerge(fn func(lo, hi, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}
