package simulator

import "Social_Network/followgraph/graph"

var _ API = localAPI{}

type localAPI struct {
	g graph.Graph
}

// LocalAPI adapts an in-process graph to the API expected by the simulator.
// The graph must be safe for concurrent use if more than one worker is
// configured.
func LocalAPI(g graph.Graph) API {
	return localAPI{g: g}
}

func (a localAPI) Follow(follower, followee graph.UserID) (bool, error) {
	return a.g.Follow(follower, followee)
}

func (a localAPI) Unfollow(follower, followee graph.UserID) (bool, error) {
	return a.g.Unfollow(follower, followee)
}

func (a localAPI) IsFollowing(follower, followee graph.UserID) (bool, error) {
	return a.g.IsFollowing(follower, followee), nil
}

func (a localAPI) Commit() (graph.Version, error) {
	return a.g.Commit(), nil
}
