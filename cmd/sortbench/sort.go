package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/sortlab/bubblesort"
	"github.com/katalvlaran/sortlab/instrument"
	"github.com/katalvlaran/sortlab/loader"
	"github.com/katalvlaran/sortlab/mergesort"
	"github.com/katalvlaran/sortlab/record"
	"github.com/katalvlaran/sortlab/report"
	"github.com/spf13/cobra"
)

// Algorithm names accepted by --algo.
const (
	algoMerge  = "merge"
	algoBubble = "bubble"
)

type sortFlags struct {
	input string
	algo  string
}

func newSortCmd(root *rootFlags) *cobra.Command {
	f := &sortFlags{}
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort a users file with one algorithm and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return sortFile(cmd, root, f)
		},
	}
	cmd.Flags().StringVarP(&f.input, "input", "i", "users.txt", "users file")
	cmd.Flags().StringVarP(&f.algo, "algo", "a", algoMerge, "algorithm: merge or bubble")

	return cmd
}

func sortFile(cmd *cobra.Command, root *rootFlags, f *sortFlags) error {
	log, err := root.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	users, err := loader.LoadFile(f.input)
	if err != nil {
		return err
	}

	var (
		st     instrument.Stats
		sorted []record.Record
	)
	start := time.Now()
	switch f.algo {
	case algoMerge:
		sorted = mergesort.Sort(users, &st)
	case algoBubble:
		sorted = bubblesort.Sort(record.Clone(users), &st)
	default:
		return fmt.Errorf("--algo: unknown algorithm %q", f.algo)
	}
	elapsed := time.Since(start)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sorted by Age → First Name → Last Name:\n")
	if err := report.WriteRecords(out, sorted); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nSort completed in %.6f seconds\n", elapsed.Seconds())

	log.Info("sorted", "algo", f.algo, "users", len(users), "stats", st.String())

	return nil
}
