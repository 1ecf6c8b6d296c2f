// SPDX-License-Identifier: MIT
// Package: sortlab/generate
//
// options.go — functional options for the generate package.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//     Dataset constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package generate

import "math/rand"

// Option customizes a dataset constructor.
type Option func(*config)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAgeRange restricts Random ages to the closed interval [min, max].
// Panics if min < 0 or max < min.
func WithAgeRange(min, max int) Option {
	if min < 0 || max < min {
		panic("generate: WithAgeRange(min<0 || max<min)")
	}
	return func(c *config) {
		c.minAge, c.maxAge = min, max
	}
}

// WithNames replaces the first and last name pools used by Random.
// Names must not contain whitespace, since the users file is
// whitespace-separated. Empty pools surface as ErrOptionViolation.
func WithNames(first, last []string) Option {
	return func(c *config) {
		c.firstNames, c.lastNames = first, last
	}
}
