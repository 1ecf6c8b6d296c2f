package mergesort_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/sortlab/generate"
	"github.com/katalvlaran/sortlab/mergesort"
	"github.com/katalvlaran/sortlab/record"
	"github.com/pingcap/check"
)

var _ = check.Suite(&sortTestSuite{})

func TestT(t *testing.T) {
	check.TestingT(t)
}

type sortTestSuite struct{}

// TestAgainstStdlib compares against sort.SliceStable over a sweep of sizes,
// with a narrow age range so that ties are frequent.
func (s *sortTestSuite) TestAgainstStdlib(c *check.C) {
	lens := []int{1, 3, 5, 7, 11, 13, 17, 19, 23, 29, 1024, 1 << 13}

	for i, n := range lens {
		src, err := generate.Random(n, generate.WithSeed(int64(i)), generate.WithAgeRange(18, 21))
		c.Assert(err, check.IsNil)

		expect := record.Clone(src)
		sort.SliceStable(expect, func(i, j int) bool { return !record.LessOrEqual(expect[j], expect[i]) })

		for _, strategy := range []mergesort.Strategy{mergesort.Recursive, mergesort.ExplicitStack} {
			got := mergesort.Sort(src, nil, mergesort.WithStrategy(strategy))
			c.Assert(len(got), check.Equals, len(expect))
			for k := range got {
				c.Assert(got[k], check.Equals, expect[k])
			}
		}
	}
}
