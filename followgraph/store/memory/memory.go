package memory

import (
	"Social_Network/followgraph/graph"
	"golang.org/x/xerrors"
	"sort"
)

// Compile-time check for ensuring VersionedGraph implements graph.Graph.
var _ graph.Graph = (*VersionedGraph)(nil)

type edgeKey struct {
	follower graph.UserID
	followee graph.UserID
}

type userSet map[graph.UserID]struct{}

func (s userSet) has(id graph.UserID) bool {
	_, found := s[id]
	return found
}

// VersionedGraph implements an in-memory follow graph that keeps the full
// interval history of every edge.
//
// VersionedGraph is not safe for concurrent use. Callers that share an
// instance between goroutines must wrap it with one of the gate types.
type VersionedGraph struct {
	version graph.Version

	// The authoritative interval log for each edge.
	history map[edgeKey][]graph.Interval

	// Derived indexes for the edges that are active at the latest version.
	followees map[graph.UserID]userSet
	followers map[graph.UserID]userSet
}

// NewVersionedGraph creates a new, empty in-memory follow graph at version 0.
func NewVersionedGraph() *VersionedGraph {
	return &VersionedGraph{
		history:   make(map[edgeKey][]graph.Interval),
		followees: make(map[graph.UserID]userSet),
		followers: make(map[graph.UserID]userSet),
	}
}

// Follow implements graph.Graph.
func (g *VersionedGraph) Follow(follower, followee graph.UserID) (bool, error) {
	if follower == followee {
		return false, xerrors.Errorf("follow: %w", graph.ErrSelfRelation)
	}

	key := edgeKey{follower: follower, followee: followee}
	history := g.history[key]
	created := false
	if n := len(history); n != 0 {
		last := &history[n-1]
		switch end, closed := last.End(); {
		case !closed:
			// Already following.
			return false, nil
		case end == g.version:
			// Unfollowed earlier within the same uncommitted version; keep
			// a single continuous interval instead of fragmenting history.
			last.Reopen()
		case end > g.version:
			return false, xerrors.Errorf("follow %d -> %d: interval %s ends after version %d: %w",
				follower, followee, last, g.version, graph.ErrInvalidIntervalState)
		default:
			g.history[key] = append(history, graph.NewInterval(g.version))
			created = true
		}
	} else {
		g.history[key] = []graph.Interval{graph.NewInterval(g.version)}
		created = true
	}

	g.link(follower, followee)
	return created, nil
}

// Unfollow implements graph.Graph.
func (g *VersionedGraph) Unfollow(follower, followee graph.UserID) (bool, error) {
	if follower == followee {
		return false, xerrors.Errorf("unfollow: %w", graph.ErrSelfRelation)
	}
	if !g.followees[follower].has(followee) {
		return false, nil
	}

	history := g.history[edgeKey{follower: follower, followee: followee}]
	if len(history) == 0 {
		return false, xerrors.Errorf("unfollow %d -> %d: indexed edge has no history: %w",
			follower, followee, graph.ErrInvalidIntervalState)
	}

	last := &history[len(history)-1]
	switch {
	case last.IsOpen():
		last.Close(g.version)
		g.unlink(follower, followee)
	case last.EndsAt(g.version):
		// A second toggle within the same uncommitted version collapses
		// back into the open interval; the edge never left the index.
		last.Reopen()
	default:
		return false, xerrors.Errorf("unfollow %d -> %d: unexpected interval %s at version %d: %w",
			follower, followee, last, g.version, graph.ErrInvalidIntervalState)
	}
	return true, nil
}

// IsFollowing implements graph.Graph.
func (g *VersionedGraph) IsFollowing(follower, followee graph.UserID) bool {
	return g.IsFollowingAt(follower, followee, g.version)
}

// IsFollowingAt implements graph.Graph.
func (g *VersionedGraph) IsFollowingAt(follower, followee graph.UserID, version graph.Version) bool {
	if version > g.version {
		return false
	}
	for _, interval := range g.history[edgeKey{follower: follower, followee: followee}] {
		if interval.Covers(version) {
			return true
		}
	}
	return false
}

// Followers implements graph.Graph.
func (g *VersionedGraph) Followers(user graph.UserID) []graph.UserID {
	return g.followers[user].sorted()
}

// Followees implements graph.Graph.
func (g *VersionedGraph) Followees(user graph.UserID) []graph.UserID {
	return g.followees[user].sorted()
}

// FollowerCount implements graph.Graph.
func (g *VersionedGraph) FollowerCount(user graph.UserID) int {
	return len(g.followers[user])
}

// FolloweeCount implements graph.Graph.
func (g *VersionedGraph) FolloweeCount(user graph.UserID) int {
	return len(g.followees[user])
}

// History implements graph.Graph.
func (g *VersionedGraph) History(follower, followee graph.UserID) []graph.Interval {
	history := g.history[edgeKey{follower: follower, followee: followee}]
	hCopy := make([]graph.Interval, len(history))
	copy(hCopy, history)
	return hCopy
}

// Commit implements graph.Graph.
func (g *VersionedGraph) Commit() graph.Version {
	g.version++
	return g.version
}

// CurrentVersion implements graph.Graph.
func (g *VersionedGraph) CurrentVersion() graph.Version {
	return g.version
}

func (g *VersionedGraph) link(follower, followee graph.UserID) {
	if g.followees[follower] == nil {
		g.followees[follower] = make(userSet)
	}
	g.followees[follower][followee] = struct{}{}

	if g.followers[followee] == nil {
		g.followers[followee] = make(userSet)
	}
	g.followers[followee][follower] = struct{}{}
}

func (g *VersionedGraph) unlink(follower, followee graph.UserID) {
	delete(g.followees[follower], followee)
	if len(g.followees[follower]) == 0 {
		delete(g.followees, follower)
	}
	delete(g.followers[followee], follower)
	if len(g.followers[followee]) == 0 {
		delete(g.followers, followee)
	}
}

func (s userSet) sorted() []graph.UserID {
	list := make([]graph.UserID, 0, len(s))
	for id := range s {
		list = append(list, id)
	}
	sort.Slice(list, func(l, r int) bool { return list[l] < list[r] })
	return list
}
