// Package config loads the YAML benchmark profile used by sortbench.
//
// Example profile:
//
//	input: users.txt
//	output_dir: out
//	sizes: [5, 10, 25, 50]
//	formats: [text, csv]
//	verify: true
//	merge_strategy: recursive
//	generate:
//	  count: 5000
//	  seed: 42
//
// Every field is optional; Default supplies the rest. When input is empty
// the records are generated from the generate block.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/sortlab/bench"
	"github.com/katalvlaran/sortlab/mergesort"
	"github.com/katalvlaran/sortlab/report"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a profile fails validation.
var ErrInvalid = errors.New("config: invalid profile")

// Generation patterns accepted in the generate block.
const (
	PatternRandom     = "random"
	PatternSequential = "sequential"
)

// Generate describes the synthetic dataset used when no input is given.
type Generate struct {
	Count   int    `yaml:"count"`
	Seed    int64  `yaml:"seed"`
	Pattern string `yaml:"pattern"`
}

// Config is a benchmark profile.
type Config struct {
	Input         string   `yaml:"input"`
	OutputDir     string   `yaml:"output_dir"`
	Sizes         []int    `yaml:"sizes"`
	Formats       []string `yaml:"formats"`
	Verify        bool     `yaml:"verify"`
	MergeStrategy string   `yaml:"merge_strategy"`
	Generate      Generate `yaml:"generate"`
}

// Default returns the built-in profile: the historical size sweep over
// 5000 seeded random users, text reports into ./out, verification on.
func Default() Config {
	return Config{
		OutputDir:     "out",
		Sizes:         append([]int(nil), bench.DefaultSizes...),
		Formats:       []string{string(report.FormatText)},
		Verify:        true,
		MergeStrategy: mergesort.Recursive.String(),
		Generate: Generate{
			Count:   5000,
			Seed:    42,
			Pattern: PatternRandom,
		},
	}
}

// Load reads and parses the profile at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Parse(raw)
}

// Parse decodes raw YAML over Default and validates the result.
// Unknown keys are rejected.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks sizes (non-negative, no repeats), formats, strategy and
// the generate block.
func (c Config) Validate() error {
	for i, s := range c.Sizes {
		if s < 0 {
			return fmt.Errorf("%w: sizes[%d]=%d is negative", ErrInvalid, i, s)
		}
	}
	// one output{size}.txt per size
	if dup := lo.FindDuplicates(c.Sizes); len(dup) > 0 {
		return fmt.Errorf("%w: sizes repeat %v", ErrInvalid, dup)
	}
	if _, err := c.ReportFormats(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.Strategy(); err != nil {
		return err
	}
	if c.Input == "" {
		if c.Generate.Count < 0 {
			return fmt.Errorf("%w: generate.count=%d is negative", ErrInvalid, c.Generate.Count)
		}
		if c.Generate.Pattern != PatternRandom && c.Generate.Pattern != PatternSequential {
			return fmt.Errorf("%w: generate.pattern=%q", ErrInvalid, c.Generate.Pattern)
		}
	}

	return nil
}

// ReportFormats parses Formats, dropping duplicates.
func (c Config) ReportFormats() ([]report.Format, error) {
	out := make([]report.Format, 0, len(c.Formats))
	for _, name := range lo.Uniq(c.Formats) {
		f, err := report.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return lo.Uniq(out), nil
}

// Strategy parses MergeStrategy; empty means recursive.
func (c Config) Strategy() (mergesort.Strategy, error) {
	switch c.MergeStrategy {
	case "", mergesort.Recursive.String():
		return mergesort.Recursive, nil
	case mergesort.ExplicitStack.String():
		return mergesort.ExplicitStack, nil
	default:
		return 0, fmt.Errorf("%w: merge_strategy=%q", ErrInvalid, c.MergeStrategy)
	}
}
