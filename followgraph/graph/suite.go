package graph

import (
	"math/rand"

	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

// SuiteBase defines a re-usable set of follow-graph tests that can be
// executed against any type that implements graph.Graph.
type SuiteBase struct {
	g Graph
}

// SetGraph configures the test-suite to run all tests against g.
func (s *SuiteBase) SetGraph(g Graph) {
	s.g = g
}

// TestNewGraph verifies that a new graph starts empty at version 0.
func (s *SuiteBase) TestNewGraph(c *gc.C) {
	c.Assert(s.g.CurrentVersion(), gc.Equals, Version(0))
	c.Assert(s.g.FollowerCount(1), gc.Equals, 0)
	c.Assert(s.g.FolloweeCount(1), gc.Equals, 0)
}

// TestFollow verifies the follow logic.
func (s *SuiteBase) TestFollow(c *gc.C) {
	created, err := s.g.Follow(1, 2)
	c.Assert(err, gc.IsNil)
	c.Assert(created, gc.Equals, true)
	c.Assert(s.g.IsFollowing(1, 2), gc.Equals, true)
	c.Assert(s.g.IsFollowing(2, 1), gc.Equals, false, gc.Commentf("follow edges are directed"))

	c.Assert(s.g.Followees(1), gc.DeepEquals, []UserID{2})
	c.Assert(s.g.Followers(2), gc.DeepEquals, []UserID{1})
	c.Assert(s.g.FolloweeCount(1), gc.Equals, 1)
	c.Assert(s.g.FollowerCount(2), gc.Equals, 1)
	c.Assert(s.g.History(1, 2), gc.DeepEquals, []Interval{NewInterval(0)})
}

// TestDoubleFollow verifies that following twice before a commit is a no-op.
func (s *SuiteBase) TestDoubleFollow(c *gc.C) {
	created, err := s.g.Follow(1, 2)
	c.Assert(err, gc.IsNil)
	c.Assert(created, gc.Equals, true)

	created, err = s.g.Follow(1, 2)
	c.Assert(err, gc.IsNil)
	c.Assert(created, gc.Equals, false, gc.Commentf("expected second follow to report an existing edge"))
	c.Assert(s.g.IsFollowing(1, 2), gc.Equals, true)
	c.Assert(s.g.History(1, 2), gc.HasLen, 1)
	c.Assert(s.g.FollowerCount(2), gc.Equals, 1)
}

// TestSelfRelation verifies that users cannot follow or unfollow themselves.
func (s *SuiteBase) TestSelfRelation(c *gc.C) {
	_, err := s.g.Follow(1, 1)
	c.Assert(xerrors.Is(err, ErrSelfRelation), gc.Equals, true, gc.Commentf("got %v", err))

	_, err = s.g.Unfollow(1, 1)
	c.Assert(xerrors.Is(err, ErrSelfRelation), gc.Equals, true, gc.Commentf("got %v", err))

	c.Assert(s.g.IsFollowing(1, 1), gc.Equals, false)
	c.Assert(s.g.History(1, 1), gc.HasLen, 0)
	c.Assert(s.g.Followers(1), gc.HasLen, 0)
	c.Assert(s.g.Followees(1), gc.HasLen, 0)
}

// TestUnfollow verifies the unfollow logic.
func (s *SuiteBase) TestUnfollow(c *gc.C) {
	_, err := s.g.Follow(1, 2)
	c.Assert(err, gc.IsNil)

	unfollowed, err := s.g.Unfollow(1, 2)
	c.Assert(err, gc.IsNil)
	c.Assert(unfollowed, gc.Equals, true)
	c.Assert(s.g.Followees(1), gc.HasLen, 0)
	c.Assert(s.g.Followers(2), gc.HasLen, 0)

	// The interval [0, 0] still covers the uncommitted version.
	c.Assert(s.g.IsFollowing(1, 2), gc.Equals, true)
	c.Assert(s.g.History(1, 2), gc.DeepEquals, []Interval{NewClosedInterval(0, 0)})

	s.g.Commit()
	c.Assert(s.g.IsFollowing(1, 2), gc.Equals, false)

	unfollowed, err = s.g.Unfollow(1, 2)
	c.Assert(err, gc.IsNil)
	c.Assert(unfollowed, gc.Equals, false, gc.Commentf("expected unfollow of a closed edge to be a no-op"))
	c.Assert(s.g.History(1, 2), gc.HasLen, 1)
}

// TestUnfollowUnknownEdge verifies that unfollowing an edge that was never
// recorded is not an error.
func (s *SuiteBase) TestUnfollowUnknownEdge(c *gc.C) {
	unfollowed, err := s.g.Unfollow(1, 2)
	c.Assert(err, gc.IsNil)
	c.Assert(unfollowed, gc.Equals, false)
	c.Assert(s.g.History(1, 2), gc.HasLen, 0)
}

// TestToggleWithinVersion verifies that an unfollow followed by a follow
// inside the same uncommitted version collapses into a single interval.
func (s *SuiteBase) TestToggleWithinVersion(c *gc.C) {
	_, err := s.g.Follow(1, 2)
	c.Assert(err, gc.IsNil)
	c.Assert(s.g.Commit(), gc.Equals, Version(1))

	unfollowed, err := s.g.Unfollow(1, 2)
	c.Assert(err, gc.IsNil)
	c.Assert(unfollowed, gc.Equals, true)
	c.Assert(s.g.Followees(1), gc.HasLen, 0)

	created, err := s.g.Follow(1, 2)
	c.Assert(err, gc.IsNil)
	c.Assert(created, gc.Equals, false, gc.Commentf("expected the closed interval to be reopened"))
	c.Assert(s.g.History(1, 2), gc.DeepEquals, []Interval{NewInterval(0)})
	c.Assert(s.g.Followees(1), gc.DeepEquals, []UserID{2})
	c.Assert(s.g.Followers(2), gc.DeepEquals, []UserID{1})

	c.Assert(s.g.Commit(), gc.Equals, Version(2))
	for v := Version(0); v <= 2; v++ {
		c.Assert(s.g.IsFollowingAt(1, 2, v), gc.Equals, true, gc.Commentf("version %d", v))
	}
}

// TestRefollowAfterCommit verifies that following again after the unfollow
// was committed starts a new interval.
func (s *SuiteBase) TestRefollowAfterCommit(c *gc.C) {
	_, err := s.g.Follow(1, 2)
	c.Assert(err, gc.IsNil)
	v1 := s.g.Commit()
	c.Assert(s.g.IsFollowing(1, 2), gc.Equals, true)

	_, err = s.g.Unfollow(1, 2)
	c.Assert(err, gc.IsNil)
	v2 := s.g.Commit()
	c.Assert(s.g.IsFollowing(1, 2), gc.Equals, false)

	created, err := s.g.Follow(1, 2)
	c.Assert(err, gc.IsNil)
	c.Assert(created, gc.Equals, true)
	c.Assert(s.g.IsFollowing(1, 2), gc.Equals, true)
	v3 := s.g.Commit()

	c.Assert(s.g.History(1, 2), gc.DeepEquals, []Interval{
		NewClosedInterval(0, v1),
		NewInterval(v2),
	})
	c.Assert(s.g.IsFollowingAt(1, 2, v1), gc.Equals, true)
	c.Assert(s.g.IsFollowingAt(1, 2, v3), gc.Equals, true)
}

// TestVersioningScenario walks through a follow/unfollow/follow sequence
// across three commits and checks every historical version.
func (s *SuiteBase) TestVersioningScenario(c *gc.C) {
	created, err := s.g.Follow(1, 2)
	c.Assert(err, gc.IsNil)
	c.Assert(created, gc.Equals, true)
	c.Assert(s.g.Commit(), gc.Equals, Version(1))
	c.Assert(s.g.IsFollowingAt(1, 2, 0), gc.Equals, true)
	c.Assert(s.g.IsFollowingAt(1, 2, 1), gc.Equals, true)

	unfollowed, err := s.g.Unfollow(1, 2)
	c.Assert(err, gc.IsNil)
	c.Assert(unfollowed, gc.Equals, true)
	c.Assert(s.g.IsFollowingAt(1, 2, 1), gc.Equals, true, gc.Commentf("interval [0, 1] still covers version 1"))
	c.Assert(s.g.Commit(), gc.Equals, Version(2))
	c.Assert(s.g.IsFollowingAt(1, 2, 2), gc.Equals, false)

	created, err = s.g.Follow(1, 2)
	c.Assert(err, gc.IsNil)
	c.Assert(created, gc.Equals, true)
	c.Assert(s.g.Commit(), gc.Equals, Version(3))

	c.Assert(s.g.IsFollowingAt(1, 2, 0), gc.Equals, true)
	c.Assert(s.g.IsFollowingAt(1, 2, 1), gc.Equals, true)
	// The new interval starts at the version it was created in.
	c.Assert(s.g.IsFollowingAt(1, 2, 2), gc.Equals, true)
	c.Assert(s.g.IsFollowingAt(1, 2, 3), gc.Equals, true)
	c.Assert(s.g.History(1, 2), gc.DeepEquals, []Interval{
		NewClosedInterval(0, 1),
		NewInterval(2),
	})
}

// TestFutureVersion verifies that versions past the current one are never
// reported as following.
func (s *SuiteBase) TestFutureVersion(c *gc.C) {
	_, err := s.g.Follow(1, 2)
	c.Assert(err, gc.IsNil)
	s.g.Commit()

	cur := s.g.CurrentVersion()
	c.Assert(s.g.IsFollowingAt(1, 2, cur), gc.Equals, true)
	c.Assert(s.g.IsFollowingAt(1, 2, cur+1), gc.Equals, false)
	c.Assert(s.g.IsFollowingAt(1, 2, 999), gc.Equals, false)
}

// TestCommit verifies that commits advance the version monotonically.
func (s *SuiteBase) TestCommit(c *gc.C) {
	for exp := Version(1); exp <= 5; exp++ {
		c.Assert(s.g.Commit(), gc.Equals, exp)
		c.Assert(s.g.CurrentVersion(), gc.Equals, exp)
	}
}

// TestMultipleRelationships verifies the follower and followee lookups.
func (s *SuiteBase) TestMultipleRelationships(c *gc.C) {
	for _, e := range []Edge{{1, 2}, {1, 3}, {1, 4}, {2, 1}, {4, 1}} {
		_, err := s.g.Follow(e.Follower, e.Followee)
		c.Assert(err, gc.IsNil)
	}

	c.Assert(s.g.Followees(1), gc.DeepEquals, []UserID{2, 3, 4})
	c.Assert(s.g.Followers(1), gc.DeepEquals, []UserID{2, 4})
	c.Assert(s.g.FolloweeCount(1), gc.Equals, 3)
	c.Assert(s.g.FollowerCount(1), gc.Equals, 2)
	c.Assert(s.g.FollowerCount(3), gc.Equals, 1)
}

// TestUnknownUser verifies that lookups for unknown users return empty
// results instead of errors.
func (s *SuiteBase) TestUnknownUser(c *gc.C) {
	followers := s.g.Followers(999)
	c.Assert(followers, gc.NotNil)
	c.Assert(followers, gc.HasLen, 0)
	c.Assert(s.g.Followees(999), gc.HasLen, 0)
	c.Assert(s.g.History(999, 1), gc.HasLen, 0)
	for v := Version(0); v <= s.g.CurrentVersion(); v++ {
		c.Assert(s.g.IsFollowingAt(999, 1, v), gc.Equals, false)
	}
}

// TestIndexMatchesHistory applies a random sequence of operations and
// verifies that the adjacency lookups always match the edges whose last
// interval is open.
func (s *SuiteBase) TestIndexMatchesHistory(c *gc.C) {
	const numUsers = 6
	rng := rand.New(rand.NewSource(42))

	var selfPairs int
	for i := 0; i < 500; i++ {
		follower, followee := UserID(rng.Intn(numUsers)), UserID(rng.Intn(numUsers))
		var err error
		switch rng.Intn(4) {
		case 0, 1:
			_, err = s.g.Follow(follower, followee)
		case 2:
			_, err = s.g.Unfollow(follower, followee)
		case 3:
			s.g.Commit()
			continue
		}
		if follower == followee {
			selfPairs++
			c.Assert(xerrors.Is(err, ErrSelfRelation), gc.Equals, true)
		} else {
			c.Assert(err, gc.IsNil)
		}
	}
	c.Assert(selfPairs > 0, gc.Equals, true, gc.Commentf("no self relation was attempted"))

	for u := UserID(0); u < numUsers; u++ {
		followees := make(map[UserID]bool)
		for _, id := range s.g.Followees(u) {
			followees[id] = true
		}
		c.Assert(followees[u], gc.Equals, false, gc.Commentf("user %d follows themselves", u))

		for v := UserID(0); v < numUsers; v++ {
			history := s.g.History(u, v)
			active := len(history) != 0 && history[len(history)-1].IsOpen()
			c.Assert(followees[v], gc.Equals, active, gc.Commentf("edge %d -> %d, history %v", u, v, history))
			s.assertWellFormedHistory(c, history)
		}
	}
}

func (s *SuiteBase) assertWellFormedHistory(c *gc.C, history []Interval) {
	for i, interval := range history {
		end, closed := interval.End()
		if i != len(history)-1 {
			c.Assert(closed, gc.Equals, true, gc.Commentf("only the last interval may be open: %v", history))
		}
		if closed {
			c.Assert(interval.Start <= end, gc.Equals, true, gc.Commentf("malformed interval %s", interval))
		}
		if i > 0 {
			prevEnd, _ := history[i-1].End()
			c.Assert(prevEnd < interval.Start, gc.Equals, true, gc.Commentf("history out of order: %v", history))
		}
	}
}
