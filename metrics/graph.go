package metrics

import (
	"Social_Network/followgraph/graph"
	"time"
)

var _ graph.Graph = (*InstrumentedGraph)(nil)

// InstrumentedGraph wraps a graph.Graph and records operation counts,
// durations and the current version.
type InstrumentedGraph struct {
	g graph.Graph
}

// Instrument returns a graph that records metrics for every call it
// forwards to g.
func Instrument(g graph.Graph) *InstrumentedGraph {
	CurrentVersion.Set(float64(g.CurrentVersion()))
	return &InstrumentedGraph{g: g}
}

// Follow forwards to the wrapped graph and counts the outcome.
func (ig *InstrumentedGraph) Follow(follower, followee graph.UserID) (bool, error) {
	defer observe("follow", time.Now())
	created, err := ig.g.Follow(follower, followee)
	OperationsTotal.WithLabelValues("follow", mutationOutcome(created, err)).Inc()
	return created, err
}

// Unfollow forwards to the wrapped graph and counts the outcome.
func (ig *InstrumentedGraph) Unfollow(follower, followee graph.UserID) (bool, error) {
	defer observe("unfollow", time.Now())
	unfollowed, err := ig.g.Unfollow(follower, followee)
	OperationsTotal.WithLabelValues("unfollow", mutationOutcome(unfollowed, err)).Inc()
	return unfollowed, err
}

// IsFollowing forwards to the wrapped graph.
func (ig *InstrumentedGraph) IsFollowing(follower, followee graph.UserID) bool {
	defer observe("is_following", time.Now())
	OperationsTotal.WithLabelValues("is_following", OutcomeOK).Inc()
	return ig.g.IsFollowing(follower, followee)
}

// IsFollowingAt forwards to the wrapped graph.
func (ig *InstrumentedGraph) IsFollowingAt(follower, followee graph.UserID, version graph.Version) bool {
	defer observe("is_following", time.Now())
	OperationsTotal.WithLabelValues("is_following", OutcomeOK).Inc()
	return ig.g.IsFollowingAt(follower, followee, version)
}

// Followers forwards to the wrapped graph.
func (ig *InstrumentedGraph) Followers(user graph.UserID) []graph.UserID {
	defer observe("followers", time.Now())
	OperationsTotal.WithLabelValues("followers", OutcomeOK).Inc()
	return ig.g.Followers(user)
}

// Followees forwards to the wrapped graph.
func (ig *InstrumentedGraph) Followees(user graph.UserID) []graph.UserID {
	defer observe("followees", time.Now())
	OperationsTotal.WithLabelValues("followees", OutcomeOK).Inc()
	return ig.g.Followees(user)
}

// FollowerCount forwards to the wrapped graph without recording metrics.
func (ig *InstrumentedGraph) FollowerCount(user graph.UserID) int {
	return ig.g.FollowerCount(user)
}

// FolloweeCount forwards to the wrapped graph without recording metrics.
func (ig *InstrumentedGraph) FolloweeCount(user graph.UserID) int {
	return ig.g.FolloweeCount(user)
}

// History forwards to the wrapped graph.
func (ig *InstrumentedGraph) History(follower, followee graph.UserID) []graph.Interval {
	defer observe("history", time.Now())
	OperationsTotal.WithLabelValues("history", OutcomeOK).Inc()
	return ig.g.History(follower, followee)
}

// Commit forwards to the wrapped graph and updates the version gauge.
func (ig *InstrumentedGraph) Commit() graph.Version {
	defer observe("commit", time.Now())
	v := ig.g.Commit()
	OperationsTotal.WithLabelValues("commit", OutcomeApplied).Inc()
	CurrentVersion.Set(float64(v))
	return v
}

// CurrentVersion forwards to the wrapped graph without recording metrics.
func (ig *InstrumentedGraph) CurrentVersion() graph.Version {
	return ig.g.CurrentVersion()
}

func observe(op string, start time.Time) {
	OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func mutationOutcome(changed bool, err error) string {
	switch {
	case err != nil:
		return OutcomeError
	case changed:
		return OutcomeApplied
	default:
		return OutcomeNoop
	}
}
