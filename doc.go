// Package sortlab is a small laboratory for comparing sorting algorithms
// on user records, with every comparison, write and swap counted.
//
// 🚀 What is in the box?
//
//   - Records: age, first name, last name, ordered by all three keys
//   - Merge sort: top-down, stable, recursive or explicit-stack driver
//   - Bubble sort: in place, stable, early exit on a clean pass
//   - Benchmark harness: sweep sizes over prefixes of one record set
//   - Reports: per-size text files, summary table, CSV and JSON
//
// ✨ Guarantees
//
//   - Both sorts produce the same order for the same input
//   - Counters are deterministic for a given input
//   - The harness never mutates the records it is given
//
// Under the hood, everything is organized in small packages:
//
//	record/     — Record type, composite ordering, slice helpers
//	instrument/ — Stats counters shared by both algorithms
//	mergesort/  — instrumented merge sort
//	bubblesort/ — instrumented bubble sort
//	bench/      — size sweep, timing and cross-checks
//	report/     — text, CSV, JSON and console sinks
//	loader/     — users file reader and writer
//	generate/   — deterministic and seeded random record sets
//	config/     — YAML benchmark profiles
//	cmd/sortbench — command-line front end
//
// Quick start:
//
//	sortbench generate --count 5000 --out users.txt
//	sortbench run --input users.txt --sizes 100,1000 --format text,csv
//
//	go install github.com/katalvlaran/sortlab/cmd/sortbench@latest
package sortlab
