package gate

import (
	"Social_Network/followgraph/graph"
	"sync"
)

// Compile-time check for ensuring Locked implements graph.Graph.
var _ graph.Graph = (*Locked)(nil)

// Locked wraps a graph.Graph behind a single exclusive lock. The lock is
// held for the full duration of every call, reads included, so all
// operations observe and produce one linear version history.
type Locked struct {
	mu sync.Mutex
	g  graph.Graph
}

// NewLocked returns a gate that serializes all access to g. The caller must
// not use g directly once it has been handed to the gate.
func NewLocked(g graph.Graph) *Locked {
	return &Locked{g: g}
}

// Follow implements graph.Graph.
func (l *Locked) Follow(follower, followee graph.UserID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Follow(follower, followee)
}

// Unfollow implements graph.Graph.
func (l *Locked) Unfollow(follower, followee graph.UserID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Unfollow(follower, followee)
}

// IsFollowing implements graph.Graph.
func (l *Locked) IsFollowing(follower, followee graph.UserID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.IsFollowing(follower, followee)
}

// IsFollowingAt implements graph.Graph.
func (l *Locked) IsFollowingAt(follower, followee graph.UserID, version graph.Version) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.IsFollowingAt(follower, followee, version)
}

// Followers implements graph.Graph.
func (l *Locked) Followers(user graph.UserID) []graph.UserID {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Followers(user)
}

// Followees implements graph.Graph.
func (l *Locked) Followees(user graph.UserID) []graph.UserID {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Followees(user)
}

// FollowerCount implements graph.Graph.
func (l *Locked) FollowerCount(user graph.UserID) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.FollowerCount(user)
}

// FolloweeCount implements graph.Graph.
func (l *Locked) FolloweeCount(user graph.UserID) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.FolloweeCount(user)
}

// History implements graph.Graph.
func (l *Locked) History(follower, followee graph.UserID) []graph.Interval {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.History(follower, followee)
}

// Commit implements graph.Graph.
func (l *Locked) Commit() graph.Version {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Commit()
}

// CurrentVersion implements graph.Graph.
func (l *Locked) CurrentVersion() graph.Version {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.CurrentVersion()
}
