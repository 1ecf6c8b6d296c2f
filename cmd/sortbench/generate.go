package main

import (
	"fmt"

	"github.com/katalvlaran/sortlab/config"
	"github.com/katalvlaran/sortlab/generate"
	"github.com/katalvlaran/sortlab/loader"
	"github.com/katalvlaran/sortlab/record"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	count   int
	seed    int64
	pattern string
	out     string
}

func newGenerateCmd(root *rootFlags) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic users file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generateFile(cmd, root, f)
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&f.count, "count", "n", 5000, "number of users")
	fl.Int64Var(&f.seed, "seed", 42, "random seed")
	fl.StringVar(&f.pattern, "pattern", config.PatternRandom, "random or sequential")
	fl.StringVarP(&f.out, "out", "o", "users.txt", `output file ("-" for stdout)`)

	return cmd
}

func generateFile(cmd *cobra.Command, root *rootFlags, f *generateFlags) error {
	log, err := root.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var users []record.Record
	switch f.pattern {
	case config.PatternRandom:
		users, err = generate.Random(f.count, generate.WithSeed(f.seed))
	case config.PatternSequential:
		users, err = generate.Sequential(f.count)
	default:
		return fmt.Errorf("--pattern: unknown pattern %q", f.pattern)
	}
	if err != nil {
		return err
	}

	if f.out == "-" {
		return loader.Write(cmd.OutOrStdout(), users)
	}
	if err := loader.WriteFile(f.out, users); err != nil {
		return err
	}
	log.Info("users written", "path", f.out, "count", len(users), "pattern", f.pattern)

	return nil
}
