package generate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sortlab/record"
	"github.com/samber/lo"
)

// Dataset names used as error context.
const (
	methodSequential   = "Sequential"
	methodRandom       = "Random"
	methodAscending    = "Ascending"
	methodReversed     = "Reversed"
	methodNearlySorted = "NearlySorted"
)

// Sequential returns the fixed benchmark pattern of length n.
//
// Complexity: O(n).
func Sequential(n int) ([]record.Record, error) {
	if n < 0 {
		return nil, generateErrorf(methodSequential, ErrBadSize, "n=%d", n)
	}

	return lo.Times(n, func(i int) record.Record {
		return record.Record{
			Age:       i%seqAgeSpan + seqAgeBase,
			FirstName: fmt.Sprintf("%s%d", seqFirstStem, i%seqFirstMod),
			LastName:  fmt.Sprintf("%s%d", seqLastStem, i%seqLastMod),
		}
	}), nil
}

// Random draws n records: age uniform in the configured range, names
// uniform from the pools. Draw order is age, first, last per record.
//
// Complexity: O(n).
func Random(n int, opts ...Option) ([]record.Record, error) {
	if n < 0 {
		return nil, generateErrorf(methodRandom, ErrBadSize, "n=%d", n)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, generateErrorf(methodRandom, ErrNeedRandSource, "use WithSeed or WithRand")
	}
	if err := validatePools(methodRandom, cfg); err != nil {
		return nil, err
	}

	span := cfg.maxAge - cfg.minAge + 1
	out := make([]record.Record, n)
	for i := range out {
		out[i] = record.Record{
			Age:       cfg.minAge + cfg.rng.Intn(span),
			FirstName: cfg.firstNames[cfg.rng.Intn(len(cfg.firstNames))],
			LastName:  cfg.lastNames[cfg.rng.Intn(len(cfg.lastNames))],
		}
	}

	return out, nil
}

// Ascending returns n records with strictly increasing composite keys:
// record i has age i.
func Ascending(n int) ([]record.Record, error) {
	if n < 0 {
		return nil, generateErrorf(methodAscending, ErrBadSize, "n=%d", n)
	}

	return lo.Times(n, ascendingAt), nil
}

// Reversed returns Ascending(n) in reverse order, so every adjacent pair
// is strictly out of order.
func Reversed(n int) ([]record.Record, error) {
	if n < 0 {
		return nil, generateErrorf(methodReversed, ErrBadSize, "n=%d", n)
	}

	return lo.Times(n, func(i int) record.Record { return ascendingAt(n - 1 - i) }), nil
}

// NearlySorted returns Ascending(n) with positions k and k+1 exchanged,
// i.e. exactly one adjacent inversion. Requires 0 <= k < n-1.
func NearlySorted(n, k int) ([]record.Record, error) {
	if n < 2 || k < 0 || k >= n-1 {
		return nil, generateErrorf(methodNearlySorted, ErrBadSize, "n=%d k=%d", n, k)
	}
	out, _ := Ascending(n)
	out[k], out[k+1] = out[k+1], out[k]

	return out, nil
}

// ascendingAt is record i of the Ascending dataset.
func ascendingAt(i int) record.Record {
	return record.Record{
		Age:       i,
		FirstName: fmt.Sprintf("%s%d", seqFirstStem, i%seqFirstMod),
		LastName:  fmt.Sprintf("%s%d", seqLastStem, i%seqLastMod),
	}
}

// validatePools rejects empty pools and names that would break the
// whitespace-separated users file format.
func validatePools(method string, cfg config) error {
	if len(cfg.firstNames) == 0 || len(cfg.lastNames) == 0 {
		return generateErrorf(method, ErrOptionViolation, "empty name pool")
	}
	for _, pool := range [][]string{cfg.firstNames, cfg.lastNames} {
		for _, name := range pool {
			if name == "" || strings.ContainsAny(name, " \t\r\n") {
				return generateErrorf(method, ErrOptionViolation, "bad name %q", name)
			}
		}
	}

	return nil
}
