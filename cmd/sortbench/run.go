package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/sortlab/bench"
	"github.com/katalvlaran/sortlab/config"
	"github.com/katalvlaran/sortlab/generate"
	"github.com/katalvlaran/sortlab/loader"
	"github.com/katalvlaran/sortlab/record"
	"github.com/katalvlaran/sortlab/report"
	"github.com/spf13/cobra"
)

// runFlags mirror the profile keys; set flags override the profile.
type runFlags struct {
	configPath string
	input      string
	outDir     string
	sizes      []int
	formats    []string
	noVerify   bool
	strategy   string
}

func newRunCmd(root *rootFlags) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the size sweep and write reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(cmd, root, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML profile")
	fl.StringVarP(&f.input, "input", "i", "", "users file (generated when empty)")
	fl.StringVarP(&f.outDir, "out", "o", "", "report directory")
	fl.IntSliceVar(&f.sizes, "sizes", nil, "comma-separated input sizes")
	fl.StringSliceVar(&f.formats, "format", nil, "report formats: text, csv, json")
	fl.BoolVar(&f.noVerify, "no-verify", false, "skip the cross-algorithm check")
	fl.StringVar(&f.strategy, "strategy", "", "merge strategy: recursive, explicit-stack")

	return cmd
}

// resolveConfig merges the profile (or defaults) with explicitly set flags.
func resolveConfig(cmd *cobra.Command, f *runFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("input") {
		cfg.Input = f.input
	}
	if fl.Changed("out") {
		cfg.OutputDir = f.outDir
	}
	if fl.Changed("sizes") {
		cfg.Sizes = f.sizes
	}
	if fl.Changed("format") {
		cfg.Formats = f.formats
	}
	if fl.Changed("no-verify") {
		cfg.Verify = !f.noVerify
	}
	if fl.Changed("strategy") {
		cfg.MergeStrategy = f.strategy
	}

	return cfg, cfg.Validate()
}

// loadRecords reads cfg.Input or synthesizes the generate block.
func loadRecords(cfg config.Config) ([]record.Record, string, error) {
	if cfg.Input != "" {
		recs, err := loader.LoadFile(cfg.Input)
		return recs, cfg.Input, err
	}

	g := cfg.Generate
	source := fmt.Sprintf("%s dataset (count=%d seed=%d)", g.Pattern, g.Count, g.Seed)
	if g.Pattern == config.PatternSequential {
		recs, err := generate.Sequential(g.Count)
		return recs, source, err
	}
	recs, err := generate.Random(g.Count, generate.WithSeed(g.Seed))

	return recs, source, err
}

func runBenchmark(cmd *cobra.Command, root *rootFlags, f *runFlags) error {
	log, err := root.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	strategy, _ := cfg.Strategy()
	formats, _ := cfg.ReportFormats()

	records, source, err := loadRecords(cfg)
	if err != nil {
		return err
	}
	log.Info("records loaded", "source", source, "count", len(records))

	dir, err := report.NewDirSink(cfg.OutputDir, formats...)
	if err != nil {
		return err
	}
	sink := report.Multi(report.NewConsole(cmd.OutOrStdout(), source), dir)

	started := time.Now()
	results, err := bench.Run(records, cfg.Sizes,
		bench.WithVerify(cfg.Verify),
		bench.WithMergeStrategy(strategy),
		bench.WithLogger(log),
		bench.WithOnResult(sink.Emit),
	)
	if err != nil {
		return err
	}
	if err := sink.Close(); err != nil {
		return err
	}

	mergeTotal, bubbleTotal := bench.Totals(results)
	log.Info("benchmark complete",
		"sizes", len(results),
		"merge_total", mergeTotal.String(),
		"bubble_total", bubbleTotal.String(),
		"files", len(dir.Written()),
		"dir", cfg.OutputDir,
		"elapsed", time.Since(started))

	return nil
}
