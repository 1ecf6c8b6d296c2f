package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/sortlab/bench"
	"github.com/katalvlaran/sortlab/record"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// summaryRule is the width of the summary table rules.
const summaryRule = 120

// newPrinter returns the number printer used for counters ("12,345").
func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

// WriteSizeReport writes the full report for one size: header, merge and
// bubble statistics, then every sorted record.
func WriteSizeReport(w io.Writer, r bench.Result) error {
	p := newPrinter()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "First %d users - Sorted by Age → First Name → Last Name\n", r.Size)
	writeStatsBlock(bw, p, "MERGE SORT", "Writes", r.Merge)
	writeStatsBlock(bw, p, "BUBBLE SORT", "Swaps", r.Bubble)

	fmt.Fprintf(bw, "\n=== SORTED DATA ===\n")
	writeRows(bw, r.Sorted)

	return bw.Flush()
}

// WriteRecords writes one "  Age: ..., First Name: ..., Last Name: ..."
// row per record.
func WriteRecords(w io.Writer, records []record.Record) error {
	bw := bufio.NewWriter(w)
	writeRows(bw, records)

	return bw.Flush()
}

// writeRows is the shared row layout of WriteRecords and WriteSizeReport.
func writeRows(w io.Writer, records []record.Record) {
	for _, u := range records {
		fmt.Fprintf(w, "  Age: %3d, First Name: %-10s, Last Name: %-10s\n", u.Age, u.FirstName, u.LastName)
	}
}

// writeStatsBlock writes one "=== X STATISTICS ===" section.
func writeStatsBlock(w io.Writer, p *message.Printer, title, movesLabel string, m bench.Measurement) {
	fmt.Fprintf(w, "\n=== %s STATISTICS ===\n", title)
	fmt.Fprintf(w, "Time: %.9f seconds\n", m.Elapsed.Seconds())
	fmt.Fprintf(w, "Comparisons: %s\n", group(p, m.Stats.Comparisons))
	fmt.Fprintf(w, "%s: %s\n", movesLabel, group(p, m.Stats.Moves()))
	fmt.Fprintf(w, "Auxiliary Memory (max elements): %s\n", group(p, m.Stats.MaxMemory))
	fmt.Fprintf(w, "Recursion Depth: %s\n", group(p, m.Stats.MaxDepth))
}

// WriteSummary writes the comparison table over all results.
func WriteSummary(w io.Writer, results []bench.Result) error {
	p := newPrinter()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "SORTING ALGORITHM STATISTICS COMPARISON\n")
	fmt.Fprintf(bw, "%s\n\n", strings.Repeat("=", summaryRule))
	fmt.Fprintf(bw, "%-10s %-15s %-15s %-20s %-20s %-15s %-12s\n",
		"Size", "Algorithm", "Time (s)", "Comparisons", "Swaps/Writes", "Aux Memory", "Recursion")
	fmt.Fprintf(bw, "%s\n", strings.Repeat("-", summaryRule))

	for _, r := range results {
		writeSummaryRow(bw, p, fmt.Sprint(r.Size), "Merge Sort", r.Merge)
		writeSummaryRow(bw, p, "", "Bubble Sort", r.Bubble)
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// writeSummaryRow writes one algorithm row of the summary table.
func writeSummaryRow(w io.Writer, p *message.Printer, size, algo string, m bench.Measurement) {
	fmt.Fprintf(w, "%-10s %-15s %-15.9f %-20s %-20s %-15s %-12s\n",
		size, algo, m.Elapsed.Seconds(),
		group(p, m.Stats.Comparisons),
		group(p, m.Stats.Moves()),
		group(p, m.Stats.MaxMemory),
		group(p, m.Stats.MaxDepth))
}

// group formats n with thousands separators.
func group(p *message.Printer, n int) string {
	return p.Sprintf("%d", n)
}
