package memory

import (
	"Social_Network/followgraph/graph"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
	"testing"
)

var _ = gc.Suite(new(InMemoryGraphTestSuite))

type InMemoryGraphTestSuite struct {
	graph.SuiteBase
	mg *VersionedGraph
}

func (s *InMemoryGraphTestSuite) SetUpTest(c *gc.C) {
	s.mg = NewVersionedGraph()
	s.SetGraph(s.mg)
}

// Register our test-suite with go test.
func Test(t *testing.T) { gc.TestingT(t) }

func (s *InMemoryGraphTestSuite) TestUnfollowIndexedEdgeWithoutHistory(c *gc.C) {
	s.mg.link(1, 2)

	_, err := s.mg.Unfollow(1, 2)
	c.Assert(xerrors.Is(err, graph.ErrInvalidIntervalState), gc.Equals, true, gc.Commentf("got %v", err))
}

func (s *InMemoryGraphTestSuite) TestUnfollowIndexedEdgeClosedInThePast(c *gc.C) {
	_, err := s.mg.Follow(1, 2)
	c.Assert(err, gc.IsNil)
	_, err = s.mg.Unfollow(1, 2)
	c.Assert(err, gc.IsNil)
	s.mg.Commit()

	// Put the index out of sync with the history.
	s.mg.link(1, 2)
	_, err = s.mg.Unfollow(1, 2)
	c.Assert(xerrors.Is(err, graph.ErrInvalidIntervalState), gc.Equals, true, gc.Commentf("got %v", err))
}

func (s *InMemoryGraphTestSuite) TestUnfollowReopensIntervalClosedInCurrentVersion(c *gc.C) {
	_, err := s.mg.Follow(1, 2)
	c.Assert(err, gc.IsNil)
	s.mg.Commit()
	_, err = s.mg.Unfollow(1, 2)
	c.Assert(err, gc.IsNil)

	// The index still lists the edge while its interval was closed during
	// the current version: a second unfollow toggles the interval back open.
	s.mg.link(1, 2)
	unfollowed, err := s.mg.Unfollow(1, 2)
	c.Assert(err, gc.IsNil)
	c.Assert(unfollowed, gc.Equals, true)
	c.Assert(s.mg.History(1, 2), gc.DeepEquals, []graph.Interval{graph.NewInterval(0)})
	c.Assert(s.mg.Followees(1), gc.DeepEquals, []graph.UserID{2})
}

func (s *InMemoryGraphTestSuite) TestFollowIntervalEndingInTheFuture(c *gc.C) {
	s.mg.history[edgeKey{follower: 1, followee: 2}] = []graph.Interval{graph.NewClosedInterval(0, 7)}

	_, err := s.mg.Follow(1, 2)
	c.Assert(xerrors.Is(err, graph.ErrInvalidIntervalState), gc.Equals, true, gc.Commentf("got %v", err))
	c.Assert(s.mg.Followees(1), gc.HasLen, 0)
}

func (s *InMemoryGraphTestSuite) TestHistoryReturnsCopy(c *gc.C) {
	_, err := s.mg.Follow(1, 2)
	c.Assert(err, gc.IsNil)

	history := s.mg.History(1, 2)
	history[0].Close(0)
	c.Assert(s.mg.History(1, 2), gc.DeepEquals, []graph.Interval{graph.NewInterval(0)})
}

func (s *InMemoryGraphTestSuite) TestUnlinkDropsEmptySets(c *gc.C) {
	_, err := s.mg.Follow(1, 2)
	c.Assert(err, gc.IsNil)
	_, err = s.mg.Unfollow(1, 2)
	c.Assert(err, gc.IsNil)

	c.Assert(s.mg.followees, gc.HasLen, 0)
	c.Assert(s.mg.followers, gc.HasLen, 0)
}
