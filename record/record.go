package record

import "fmt"

// Record is one person entry: age plus first and last name.
type Record struct {
	Age       int
	FirstName string
	LastName  string
}

// String renders r as "age first last", the same layout the loader reads.
func (r Record) String() string {
	return fmt.Sprintf("%d %s %s", r.Age, r.FirstName, r.LastName)
}

// LessOrEqual reports whether a precedes or ties with b under the composite
// (Age, FirstName, LastName) order. The last key compares with <=.
//
// Complexity: O(len(name)) for the string comparisons, O(1) otherwise.
func LessOrEqual(a, b Record) bool {
	return a.Age < b.Age ||
		(a.Age == b.Age && a.FirstName < b.FirstName) ||
		(a.Age == b.Age && a.FirstName == b.FirstName && a.LastName <= b.LastName)
}

// Greater reports whether a strictly follows b. It is the negation of
// LessOrEqual, so equal composite keys are never Greater.
func Greater(a, b Record) bool {
	return !LessOrEqual(a, b)
}

// Clone returns an independent copy of src. A nil input yields nil.
func Clone(src []Record) []Record {
	if src == nil {
		return nil
	}
	dst := make([]Record, len(src))
	copy(dst, src)

	return dst
}

// IsSorted reports whether LessOrEqual holds for every adjacent pair.
func IsSorted(items []Record) bool {
	for i := 1; i < len(items); i++ {
		if !LessOrEqual(items[i-1], items[i]) {
			return false
		}
	}

	return true
}

// Equal reports whether a and b hold the same records in the same order.
func Equal(a, b []Record) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// SameMultiset reports whether a and b contain the same records with the
// same multiplicities, ignoring order.
func SameMultiset(a, b []Record) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[Record]int, len(a))
	for _, r := range a {
		counts[r]++
	}
	for _, r := range b {
		if counts[r] == 0 {
			return false
		}
		counts[r]--
	}

	return true
}
