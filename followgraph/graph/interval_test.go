package graph

import (
	"testing"

	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(IntervalTestSuite))

type IntervalTestSuite struct{}

// Register our test-suite with go test.
func Test(t *testing.T) { gc.TestingT(t) }

func (s *IntervalTestSuite) TestOpenInterval(c *gc.C) {
	i := NewInterval(3)
	c.Assert(i.IsOpen(), gc.Equals, true)
	_, closed := i.End()
	c.Assert(closed, gc.Equals, false)

	c.Assert(i.Covers(2), gc.Equals, false)
	c.Assert(i.Covers(3), gc.Equals, true)
	c.Assert(i.Covers(^Version(0)), gc.Equals, true, gc.Commentf("open intervals extend to infinity"))
	c.Assert(i.String(), gc.Equals, "[3, OPEN)")
}

func (s *IntervalTestSuite) TestClosedInterval(c *gc.C) {
	i := NewClosedInterval(1, 4)
	c.Assert(i.IsOpen(), gc.Equals, false)
	end, closed := i.End()
	c.Assert(closed, gc.Equals, true)
	c.Assert(end, gc.Equals, Version(4))

	c.Assert(i.Covers(0), gc.Equals, false)
	c.Assert(i.Covers(1), gc.Equals, true)
	c.Assert(i.Covers(4), gc.Equals, true)
	c.Assert(i.Covers(5), gc.Equals, false)
	c.Assert(i.String(), gc.Equals, "[1, 4]")
}

func (s *IntervalTestSuite) TestMaxVersionIsNotOpen(c *gc.C) {
	// A closed interval ending at the largest version must not be confused
	// with an open one.
	i := NewClosedInterval(0, ^Version(0))
	c.Assert(i.IsOpen(), gc.Equals, false)
	c.Assert(i.EndsAt(^Version(0)), gc.Equals, true)
}

func (s *IntervalTestSuite) TestCloseAndReopen(c *gc.C) {
	i := NewInterval(2)
	i.Close(5)
	c.Assert(i.EndsAt(5), gc.Equals, true)
	c.Assert(i.EndsAt(4), gc.Equals, false)
	c.Assert(i, gc.DeepEquals, NewClosedInterval(2, 5))

	i.Reopen()
	c.Assert(i.IsOpen(), gc.Equals, true)
	c.Assert(i.EndsAt(5), gc.Equals, false)
	c.Assert(i, gc.DeepEquals, NewInterval(2))
}
