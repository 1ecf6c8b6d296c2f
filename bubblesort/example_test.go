package bubblesort_test

import (
	"fmt"

	"github.com/katalvlaran/sortlab/bubblesort"
	"github.com/katalvlaran/sortlab/record"
)

// ExampleSort shows the early exit once a pass makes no swaps.
func ExampleSort() {
	users := []record.Record{
		{Age: 21, FirstName: "Leo", LastName: "Diaz"},
		{Age: 34, FirstName: "Mia", LastName: "Stone"},
		{Age: 34, FirstName: "Ann", LastName: "Reed"},
	}

	sorted, st := bubblesort.SortWithStats(users)
	for _, u := range sorted {
		fmt.Println(u)
	}
	fmt.Printf("comparisons=%d swaps=%d passes=%d\n", st.Comparisons, st.Swaps, st.Passes)
	// Output:
	// 21 Leo Diaz
	// 34 Ann Reed
	// 34 Mia Stone
	// comparisons=3 swaps=1 passes=2
}
