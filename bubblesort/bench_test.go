package bubblesort_test

import (
	"testing"

	"github.com/katalvlaran/sortlab/bubblesort"
	"github.com/katalvlaran/sortlab/generate"
	"github.com/katalvlaran/sortlab/record"
)

// benchmarkSort copies src before each iteration so every run sees the same input.
func benchmarkSort(b *testing.B, src []record.Record) {
	work := make([]record.Record, len(src))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		copy(work, src)
		b.StartTimer()
		bubblesort.Sort(work, nil)
	}
}

// BenchmarkSort_Random1K benchmarks 1 000 seeded random records.
func BenchmarkSort_Random1K(b *testing.B) {
	src, err := generate.Random(1_000, generate.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	benchmarkSort(b, src)
}

// BenchmarkSort_Reversed1K benchmarks the worst case on 1 000 records.
func BenchmarkSort_Reversed1K(b *testing.B) {
	src, err := generate.Reversed(1_000)
	if err != nil {
		b.Fatal(err)
	}
	benchmarkSort(b, src)
}

// BenchmarkSort_NearlySorted10K benchmarks the two-pass early exit.
func BenchmarkSort_NearlySorted10K(b *testing.B) {
	src, err := generate.NearlySorted(10_000, 5_000)
	if err != nil {
		b.Fatal(err)
	}
	benchmarkSort(b, src)
}
