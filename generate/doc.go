// Package generate produces synthetic record.Record datasets for tests,
// benchmarks and the `sortbench generate` command.
//
// Datasets:
//   - Sequential(n)      — the classic benchmark pattern
//     age = i%65+18, first = "Name{i%50}", last = "Last{i%15}".
//   - Random(n, opts)    — names drawn from pools, ages uniform in a range;
//     requires an RNG (WithSeed or WithRand).
//   - Ascending(n)       — strictly increasing composite keys.
//   - Reversed(n)        — strictly decreasing composite keys (bubble sort
//     worst case).
//   - NearlySorted(n, k) — Ascending with positions k and k+1 exchanged.
//
// Guarantees:
//   - Deterministic for a fixed seed and options.
//   - Fast-fail on meaningless option values via panics in option
//     constructors; runtime validation returns sentinel errors.
package generate
