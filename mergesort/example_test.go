package mergesort_test

import (
	"fmt"

	"github.com/katalvlaran/sortlab/instrument"
	"github.com/katalvlaran/sortlab/mergesort"
	"github.com/katalvlaran/sortlab/record"
)

// ExampleSort sorts four users and prints the counters of the run.
func ExampleSort() {
	users := []record.Record{
		{Age: 34, FirstName: "Mia", LastName: "Stone"},
		{Age: 21, FirstName: "Leo", LastName: "Park"},
		{Age: 34, FirstName: "Ann", LastName: "Reed"},
		{Age: 21, FirstName: "Leo", LastName: "Diaz"},
	}

	var st instrument.Stats
	for _, u := range mergesort.Sort(users, &st) {
		fmt.Println(u)
	}
	fmt.Printf("comparisons=%d writes=%d memory=%d depth=%d\n",
		st.Comparisons, st.Writes, st.MaxMemory, st.MaxDepth)
	// Output:
	// 21 Leo Diaz
	// 21 Leo Park
	// 34 Ann Reed
	// 34 Mia Stone
	// comparisons=5 writes=8 memory=4 depth=2
}
