package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/sortlab/bench"
	"github.com/samber/lo"
)

// File names written by DirSink.
const (
	SummaryFile = "statistics_summary.txt"
	CSVFile     = "results.csv"
	JSONFile    = "results.json"
)

// SizeReportFile returns the per-size report file name, e.g. "output250.txt".
func SizeReportFile(size int) string {
	return fmt.Sprintf("output%d.txt", size)
}

// DirSink writes reports into a directory.
//   - FormatText: output{size}.txt on every Emit, summary on Close.
//   - FormatCSV / FormatJSON: results file on Close.
type DirSink struct {
	dir     string
	formats []Format
	results []bench.Result
	written []string
}

// NewDirSink creates dir (and parents) and returns a sink writing the given
// formats. No formats means FormatText only; duplicates are ignored.
func NewDirSink(dir string, formats ...Format) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	if len(formats) == 0 {
		formats = []Format{FormatText}
	}

	return &DirSink{dir: dir, formats: lo.Uniq(formats)}, nil
}

// Written lists the files produced so far, in write order.
func (d *DirSink) Written() []string {
	return d.written
}

// Emit implements Sink. The sorted data is dropped after the per-size
// report is written; the summary needs only the counters.
func (d *DirSink) Emit(r bench.Result) error {
	if d.has(FormatText) {
		if err := d.writeFile(SizeReportFile(r.Size), func(w io.Writer) error {
			return WriteSizeReport(w, r)
		}); err != nil {
			return err
		}
	}
	r.Sorted = nil
	d.results = append(d.results, r)

	return nil
}

// Close implements Sink.
func (d *DirSink) Close() error {
	if d.has(FormatText) {
		if err := d.writeFile(SummaryFile, func(w io.Writer) error {
			return WriteSummary(w, d.results)
		}); err != nil {
			return err
		}
	}
	if d.has(FormatCSV) {
		if err := d.writeFile(CSVFile, func(w io.Writer) error {
			return WriteCSV(w, d.results)
		}); err != nil {
			return err
		}
	}
	if d.has(FormatJSON) {
		if err := d.writeFile(JSONFile, func(w io.Writer) error {
			return WriteJSON(w, d.results)
		}); err != nil {
			return err
		}
	}

	return nil
}

// has reports whether f is enabled.
func (d *DirSink) has(f Format) bool {
	return lo.Contains(d.formats, f)
}

// writeFile creates name inside the directory and fills it with render.
func (d *DirSink) writeFile(name string, render func(io.Writer) error) (err error) {
	path := filepath.Join(d.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("report: close %s: %w", name, cerr)
		}
	}()

	if err = render(f); err != nil {
		return fmt.Errorf("report: %s: %w", name, err)
	}
	d.written = append(d.written, path)

	return nil
}
