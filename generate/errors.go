// SPDX-License-Identifier: MIT
// Package: sortlab/generate
//
// errors.go — sentinel errors for the generate package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the return site, never baked into
//     the sentinel message.

package generate

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative dataset length or an out-of-range
// position argument (e.g. NearlySorted swap index).
var ErrBadSize = errors.New("generate: invalid size")

// ErrNeedRandSource indicates that a stochastic dataset was requested
// without an RNG (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("generate: rng is required")

// ErrOptionViolation indicates that the resolved options are inconsistent
// (e.g. an empty name pool) at generation time.
var ErrOptionViolation = errors.New("generate: invalid option value")

// generateErrorf prefixes the formatted message with the dataset name and
// wraps sentinel so errors.Is keeps working.
func generateErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
