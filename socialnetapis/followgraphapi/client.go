package followgraphapi

import (
	"Social_Network/followgraph/graph"
	"Social_Network/socialnetapis/followgraphapi/proto/socialnetwork"
	"context"
	"golang.org/x/xerrors"
)

// FollowGraphClient provides an API mirroring the graph.Graph interface for
// accessing a follow graph exposed by a remote gRPC server. Unlike a local
// graph, every method may fail with a transport error.
type FollowGraphClient struct {
	ctx context.Context
	cli socialnetwork.SocialNetworkServiceClient
}

// NewFollowGraphClient returns a new client that delegates its calls to a
// follow graph exposed by a remote gRPC server.
func NewFollowGraphClient(ctx context.Context, rpcClient socialnetwork.SocialNetworkServiceClient) *FollowGraphClient {
	return &FollowGraphClient{ctx: ctx, cli: rpcClient}
}

// Follow asks the server to record that follower follows followee.
func (c *FollowGraphClient) Follow(follower, followee graph.UserID) (bool, error) {
	res, err := c.cli.Follow(c.ctx, &socialnetwork.FollowRequest{
		FollowerId: uint64(follower),
		FolloweeId: uint64(followee),
	})
	if err != nil {
		return false, err
	}
	if !res.Success {
		return false, remoteError("follow", res.ErrorMessage)
	}
	return res.WasNewFollow, nil
}

// Unfollow asks the server to end the relationship between follower and
// followee.
func (c *FollowGraphClient) Unfollow(follower, followee graph.UserID) (bool, error) {
	res, err := c.cli.Unfollow(c.ctx, &socialnetwork.UnfollowRequest{
		FollowerId: uint64(follower),
		FolloweeId: uint64(followee),
	})
	if err != nil {
		return false, err
	}
	if !res.Success {
		return false, remoteError("unfollow", res.ErrorMessage)
	}
	return res.WasUnfollowed, nil
}

// IsFollowing checks the edge at the server's current version.
func (c *FollowGraphClient) IsFollowing(follower, followee graph.UserID) (bool, error) {
	return c.isFollowing(&socialnetwork.IsFollowingRequest{
		FollowerId: uint64(follower),
		FolloweeId: uint64(followee),
	})
}

// IsFollowingAt checks the edge at the specified version.
func (c *FollowGraphClient) IsFollowingAt(follower, followee graph.UserID, version graph.Version) (bool, error) {
	v := uint64(version)
	return c.isFollowing(&socialnetwork.IsFollowingRequest{
		FollowerId: uint64(follower),
		FolloweeId: uint64(followee),
		Version:    &v,
	})
}

func (c *FollowGraphClient) isFollowing(req *socialnetwork.IsFollowingRequest) (bool, error) {
	res, err := c.cli.IsFollowing(c.ctx, req)
	if err != nil {
		return false, err
	}
	return res.IsFollowing, nil
}

// Followers returns the users currently following user.
func (c *FollowGraphClient) Followers(user graph.UserID) ([]graph.UserID, error) {
	res, err := c.cli.GetFollowers(c.ctx, &socialnetwork.GetFollowersRequest{UserId: uint64(user)})
	if err != nil {
		return nil, err
	}
	return userIDsFromProto(res.FollowerIds), nil
}

// Followees returns the users currently followed by user.
func (c *FollowGraphClient) Followees(user graph.UserID) ([]graph.UserID, error) {
	res, err := c.cli.GetFollowees(c.ctx, &socialnetwork.GetFolloweesRequest{UserId: uint64(user)})
	if err != nil {
		return nil, err
	}
	return userIDsFromProto(res.FolloweeIds), nil
}

// History returns the interval history of the edge from follower to
// followee.
func (c *FollowGraphClient) History(follower, followee graph.UserID) ([]graph.Interval, error) {
	res, err := c.cli.GetHistory(c.ctx, &socialnetwork.GetHistoryRequest{
		FollowerId: uint64(follower),
		FolloweeId: uint64(followee),
	})
	if err != nil {
		return nil, err
	}
	history := make([]graph.Interval, 0, len(res.Intervals))
	for _, interval := range res.Intervals {
		if interval == nil {
			return nil, xerrors.Errorf("received nil interval in history")
		}
		history = append(history, intervalFromProto(interval))
	}
	return history, nil
}

// Commit seals the server's current version and returns the new one.
func (c *FollowGraphClient) Commit() (graph.Version, error) {
	res, err := c.cli.Commit(c.ctx, new(socialnetwork.CommitRequest))
	if err != nil {
		return 0, err
	}
	return graph.Version(res.Version), nil
}

// CurrentVersion returns the server's current version.
func (c *FollowGraphClient) CurrentVersion() (graph.Version, error) {
	res, err := c.cli.GetCurrentVersion(c.ctx, new(socialnetwork.GetCurrentVersionRequest))
	if err != nil {
		return 0, err
	}
	return graph.Version(res.Version), nil
}

// remoteError maps an error message reported by the server back to the
// matching graph error.
func remoteError(op, msg string) error {
	if msg == graph.ErrSelfRelation.Error() {
		return xerrors.Errorf("%s: %w", op, graph.ErrSelfRelation)
	}
	return xerrors.Errorf("%s: server reported failure: %s", op, msg)
}

func userIDsFromProto(ids []uint64) []graph.UserID {
	out := make([]graph.UserID, len(ids))
	for i, id := range ids {
		out[i] = graph.UserID(id)
	}
	return out
}

func intervalFromProto(interval *socialnetwork.Interval) graph.Interval {
	if interval.End == nil {
		return graph.NewInterval(graph.Version(interval.Start))
	}
	return graph.NewClosedInterval(graph.Version(interval.Start), graph.Version(*interval.End))
}
