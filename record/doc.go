// Package record defines the sortable unit of sortlab and the single
// composite order shared by every sorting algorithm in the module.
//
// 🚀 What is a Record?
//
//	A Record is an immutable value (Age, FirstName, LastName). Records are
//	compared only through LessOrEqual, never through structural equality:
//
//	  a ≤ b  ⇔  a.Age < b.Age
//	         ∨ (a.Age = b.Age ∧ a.FirstName < b.FirstName)
//	         ∨ (a.Age = b.Age ∧ a.FirstName = b.FirstName ∧ a.LastName ≤ b.LastName)
//
// ✨ Key points:
//   - LessOrEqual is non-strict on the last key; merge sort relies on that
//     to keep left-origin precedence for equal records.
//   - Greater is the strict converse, derived from LessOrEqual; bubble sort
//     swaps only on Greater so equal records never move.
//   - Records are values: Clone returns an independent copy that can be
//     mutated in place without affecting the source.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sortlab/record"
//
//	a := record.Record{Age: 30, FirstName: "B", LastName: "X"}
//	b := record.Record{Age: 20, FirstName: "A", LastName: "Y"}
//	record.LessOrEqual(b, a) // true
package record
