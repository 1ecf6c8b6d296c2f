// Package report renders bench results.
//
// Renderers (io.Writer based, no file handling):
//   - WriteSizeReport — the per-size report: both statistics blocks and
//     the sorted data.
//   - WriteSummary    — one table over all sizes, two rows per size.
//   - WriteCSV        — one row per (size, algorithm).
//   - WriteJSON       — an indented array of per-size objects.
//
// Sinks (streaming, used with bench.WithOnResult):
//   - Console — the live "Users / Merge / Bubble / Speedup" table.
//   - DirSink — output{size}.txt per size, summary and extra formats on Close.
//   - Multi   — fan-out to several sinks.
//
// Counters are printed with thousands separators (golang.org/x/text),
// times in seconds with nine decimals.
package report
