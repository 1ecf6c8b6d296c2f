package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/sortlab/bench"
)

// consoleRule is the width of the console table rule.
const consoleRule = 70

// Console prints a live comparison table, one row per emitted size.
type Console struct {
	w       io.Writer
	source  string
	started bool
}

// NewConsole returns a Console writing to w. source names the record file
// in the table banner.
func NewConsole(w io.Writer, source string) *Console {
	return &Console{w: w, source: source}
}

// Emit implements Sink. The banner is printed before the first row.
func (c *Console) Emit(r bench.Result) error {
	if !c.started {
		c.started = true
		if _, err := fmt.Fprintf(c.w,
			"Performance Comparison: Merge Sort vs Bubble Sort\nTesting with first N users from %s\n\n%-10s %-20s %-20s %-10s\n%s\n",
			c.source, "Users", "Merge Sort (s)", "Bubble Sort (s)", "Speedup", strings.Repeat("-", consoleRule)); err != nil {
			return fmt.Errorf("report: console: %w", err)
		}
	}
	if _, err := fmt.Fprintf(c.w, "%-10d %-20.9f %-20.9f %-10.2fx\n",
		r.Size, r.Merge.Elapsed.Seconds(), r.Bubble.Elapsed.Seconds(), r.Speedup()); err != nil {
		return fmt.Errorf("report: console: %w", err)
	}

	return nil
}

// Close implements Sink. It writes nothing.
func (c *Console) Close() error {
	return nil
}
