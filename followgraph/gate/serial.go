package gate

import (
	"Social_Network/followgraph/graph"
	"sync"
)

// Compile-time check for ensuring Serial implements graph.Graph.
var _ graph.Graph = (*Serial)(nil)

type request struct {
	fn     func(graph.Graph)
	doneCh chan interface{}
}

// Serial hands a graph.Graph to a single goroutine that executes requests in
// the order they are received from a channel. It offers the same ordering
// guarantees as Locked through message passing instead of a lock.
//
// Calls made after Close panic.
type Serial struct {
	reqCh     chan request
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewSerial starts the goroutine that owns g and returns a gate for it. The
// caller must not use g directly once it has been handed to the gate and
// must call Close to release the goroutine.
func NewSerial(g graph.Graph) *Serial {
	s := &Serial{reqCh: make(chan request)}
	s.wg.Add(1)
	go s.loop(g)
	return s
}

func (s *Serial) loop(g graph.Graph) {
	defer s.wg.Done()
	for req := range s.reqCh {
		req.doneCh <- execute(g, req.fn)
	}
}

// execute runs fn against g and returns the value of any panic raised by
// fn so it can be re-raised by the caller.
func execute(g graph.Graph, fn func(graph.Graph)) (panicVal interface{}) {
	defer func() { panicVal = recover() }()
	fn(g)
	return nil
}

func (s *Serial) do(fn func(graph.Graph)) {
	doneCh := make(chan interface{}, 1)
	s.reqCh <- request{fn: fn, doneCh: doneCh}
	if panicVal := <-doneCh; panicVal != nil {
		panic(panicVal)
	}
}

// Close stops the goroutine that owns the graph after all in-flight requests
// complete. It is safe to call Close more than once.
func (s *Serial) Close() error {
	s.closeOnce.Do(func() { close(s.reqCh) })
	s.wg.Wait()
	return nil
}

// Follow implements graph.Graph.
func (s *Serial) Follow(follower, followee graph.UserID) (created bool, err error) {
	s.do(func(g graph.Graph) { created, err = g.Follow(follower, followee) })
	return created, err
}

// Unfollow implements graph.Graph.
func (s *Serial) Unfollow(follower, followee graph.UserID) (unfollowed bool, err error) {
	s.do(func(g graph.Graph) { unfollowed, err = g.Unfollow(follower, followee) })
	return unfollowed, err
}

// IsFollowing implements graph.Graph.
func (s *Serial) IsFollowing(follower, followee graph.UserID) (following bool) {
	s.do(func(g graph.Graph) { following = g.IsFollowing(follower, followee) })
	return following
}

// IsFollowingAt implements graph.Graph.
func (s *Serial) IsFollowingAt(follower, followee graph.UserID, version graph.Version) (following bool) {
	s.do(func(g graph.Graph) { following = g.IsFollowingAt(follower, followee, version) })
	return following
}

// Followers implements graph.Graph.
func (s *Serial) Followers(user graph.UserID) (ids []graph.UserID) {
	s.do(func(g graph.Graph) { ids = g.Followers(user) })
	return ids
}

// Followees implements graph.Graph.
func (s *Serial) Followees(user graph.UserID) (ids []graph.UserID) {
	s.do(func(g graph.Graph) { ids = g.Followees(user) })
	return ids
}

// FollowerCount implements graph.Graph.
func (s *Serial) FollowerCount(user graph.UserID) (count int) {
	s.do(func(g graph.Graph) { count = g.FollowerCount(user) })
	return count
}

// FolloweeCount implements graph.Graph.
func (s *Serial) FolloweeCount(user graph.UserID) (count int) {
	s.do(func(g graph.Graph) { count = g.FolloweeCount(user) })
	return count
}

// History implements graph.Graph.
func (s *Serial) History(follower, followee graph.UserID) (history []graph.Interval) {
	s.do(func(g graph.Graph) { history = g.History(follower, followee) })
	return history
}

// Commit implements graph.Graph.
func (s *Serial) Commit() (version graph.Version) {
	s.do(func(g graph.Graph) { version = g.Commit() })
	return version
}

// CurrentVersion implements graph.Graph.
func (s *Serial) CurrentVersion() (version graph.Version) {
	s.do(func(g graph.Graph) { version = g.CurrentVersion() })
	return version
}
