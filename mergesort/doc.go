// Package mergesort implements an instrumented top-down merge sort over
// record.Record values.
//
// 🚀 What it does:
//
//	Sort splits the input at ⌊n/2⌋, sorts each half one level deeper and
//	merges the halves with a two-pointer scan. The left head is taken when
//	record.LessOrEqual(left, right) holds, so equal records keep their
//	left-origin precedence and the sort is stable.
//
// 📊 Instrumentation (instrument.Stats):
//   - Comparisons — one per head-to-head comparison in a merge.
//   - Writes      — one per element appended to a merge output, including
//     the drain loops that copy the leftover run (no comparison there).
//   - MaxMemory   — the largest single merge buffer (n for n > 1).
//   - MaxDepth    — ⌈log2 n⌉ for n > 1, 0 otherwise.
//
// ⚙️ Strategies:
//   - Recursive     — one Go call per frame; halves are sub-slices of the
//     input and each merge allocates its own output.
//   - ExplicitStack — a work stack of (lo, hi, depth) frames over one
//     backing copy and one scratch buffer; no call-stack growth. Output and
//     counters are identical to Recursive.
//
// Usage:
//
//	var st instrument.Stats
//	sorted := mergesort.Sort(users, &st)
//	fmt.Println(st.Comparisons, st.Writes, st.MaxDepth)
//
// Complexity: O(n log n) time, O(n) auxiliary memory.
//
// The input slice is never modified.
package mergesort
