// SPDX-License-Identifier: MIT
// Package: sortlab/generate
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng        = nil            (Random requires WithSeed/WithRand)
//   • ages       = [18, 82]       (same span as the Sequential pattern)
//   • firstNames = defaultFirstNames
//   • lastNames  = defaultLastNames

package generate

import "math/rand"

// config aggregates all knobs used by the dataset constructors.
// It is passed by value.
type config struct {
	rng        *rand.Rand
	minAge     int
	maxAge     int
	firstNames []string
	lastNames  []string
}

// Sequential pattern constants, kept identical to the historical benchmark
// data so reports stay comparable.
const (
	seqAgeBase   = 18
	seqAgeSpan   = 65
	seqFirstMod  = 50
	seqLastMod   = 15
	seqFirstStem = "Name"
	seqLastStem  = "Last"
)

const (
	defaultMinAge = seqAgeBase
	defaultMaxAge = seqAgeBase + seqAgeSpan - 1
)

var defaultFirstNames = []string{
	"Aaron", "Abigail", "Adam", "Alice", "Amir", "Ana", "Ben", "Bianca",
	"Carlos", "Chloe", "Daniel", "Diana", "Elena", "Ethan", "Fatima", "Felix",
	"Grace", "Hana", "Hugo", "Ivan", "Jade", "James", "Kai", "Laura",
	"Leo", "Maya", "Nina", "Omar", "Priya", "Sofia", "Tom", "Zoe",
}

var defaultLastNames = []string{
	"Adams", "Brown", "Chen", "Diaz", "Evans", "Garcia", "Ivanova", "Johnson",
	"Kim", "Lopez", "Miller", "Nguyen", "Okafor", "Patel", "Rossi", "Smith",
	"Tanaka", "Walker", "Young", "Zhang",
}

// newConfig applies opts in order over the defaults; last wins.
func newConfig(opts ...Option) config {
	cfg := config{
		minAge:     defaultMinAge,
		maxAge:     defaultMaxAge,
		firstNames: defaultFirstNames,
		lastNames:  defaultLastNames,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
