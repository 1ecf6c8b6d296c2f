// Package bubblesort implements an instrumented in-place bubble sort over
// record.Record values with early exit on a clean pass.
//
// Pass i compares the adjacent pairs (j, j+1) for j in [0, n-i-1) and swaps
// a pair only when record.Greater holds, i.e. strictly out of order. Equal
// records are never swapped, so the sort is stable. A pass without swaps
// ends the sort: the slice is already ordered.
//
// Instrumentation: Comparisons, Swaps and Passes are counted; MaxMemory is
// fixed at 1 (in place) and MaxDepth at 0 (iterative).
//
// Complexity: O(n²) comparisons worst case, O(n) on sorted input.
package bubblesort
