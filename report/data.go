package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/sortlab/bench"
	"github.com/samber/lo"
)

// Algorithm labels used in machine-readable output.
const (
	algoMerge  = "merge"
	algoBubble = "bubble"
)

var csvHeader = []string{
	"size", "input", "algorithm", "seconds",
	"comparisons", "moves", "passes", "max_memory", "max_depth",
}

// WriteCSV writes a header and two rows per result (merge, then bubble).
func WriteCSV(w io.Writer, results []bench.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("report: csv: %w", err)
	}
	for _, r := range results {
		for _, row := range [][]string{
			csvRow(r, algoMerge, r.Merge),
			csvRow(r, algoBubble, r.Bubble),
		} {
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("report: csv: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: csv: %w", err)
	}

	return nil
}

// csvRow flattens one measurement.
func csvRow(r bench.Result, algo string, m bench.Measurement) []string {
	return []string{
		strconv.Itoa(r.Size),
		strconv.Itoa(r.Input),
		algo,
		strconv.FormatFloat(m.Elapsed.Seconds(), 'f', 9, 64),
		strconv.Itoa(m.Stats.Comparisons),
		strconv.Itoa(m.Stats.Moves()),
		strconv.Itoa(m.Stats.Passes),
		strconv.Itoa(m.Stats.MaxMemory),
		strconv.Itoa(m.Stats.MaxDepth),
	}
}

// jsonRun is the serialized form of a bench.Measurement.
type jsonRun struct {
	Seconds     float64 `json:"seconds"`
	Comparisons int     `json:"comparisons"`
	Writes      int     `json:"writes,omitempty"`
	Swaps       int     `json:"swaps,omitempty"`
	Passes      int     `json:"passes,omitempty"`
	MaxMemory   int     `json:"max_memory"`
	MaxDepth    int     `json:"max_depth"`
}

// jsonResult is the serialized form of a bench.Result. Sorted data is
// left out; the per-size text reports carry it.
type jsonResult struct {
	Size    int     `json:"size"`
	Input   int     `json:"input"`
	Merge   jsonRun `json:"merge"`
	Bubble  jsonRun `json:"bubble"`
	Speedup float64 `json:"speedup"`
}

// WriteJSON writes results as an indented JSON array.
func WriteJSON(w io.Writer, results []bench.Result) error {
	out := lo.Map(results, func(r bench.Result, _ int) jsonResult {
		return jsonResult{
			Size:    r.Size,
			Input:   r.Input,
			Merge:   toJSONRun(r.Merge),
			Bubble:  toJSONRun(r.Bubble),
			Speedup: r.Speedup(),
		}
	})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("report: json: %w", err)
	}

	return nil
}

// toJSONRun converts one measurement.
func toJSONRun(m bench.Measurement) jsonRun {
	return jsonRun{
		Seconds:     m.Elapsed.Seconds(),
		Comparisons: m.Stats.Comparisons,
		Writes:      m.Stats.Writes,
		Swaps:       m.Stats.Swaps,
		Passes:      m.Stats.Passes,
		MaxMemory:   m.Stats.MaxMemory,
		MaxDepth:    m.Stats.MaxDepth,
	}
}
