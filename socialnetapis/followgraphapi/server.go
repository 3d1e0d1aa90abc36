package followgraphapi

import (
	"Social_Network/followgraph/graph"
	"Social_Network/socialnetapis/followgraphapi/proto/socialnetwork"
	"context"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"io/ioutil"
)

var _ socialnetwork.SocialNetworkServiceServer = (*FollowGraphServer)(nil)

// FollowGraphServer provides a gRPC layer for mutating and querying a
// versioned follow graph.
type FollowGraphServer struct {
	g      graph.Graph
	logger *logrus.Entry
}

// NewFollowGraphServer returns a new server instance that uses the provided
// graph as its backing store. The graph must be safe for concurrent use. If
// logger is nil, log output is discarded.
func NewFollowGraphServer(g graph.Graph, logger *logrus.Entry) *FollowGraphServer {
	if logger == nil {
		logger = logrus.NewEntry(&logrus.Logger{Out: ioutil.Discard})
	}
	return &FollowGraphServer{g: g, logger: logger}
}

// Follow records a follow relationship.
func (s *FollowGraphServer) Follow(ctx context.Context, req *socialnetwork.FollowRequest) (*socialnetwork.FollowResponse, error) {
	created, err := s.g.Follow(graph.UserID(req.FollowerId), graph.UserID(req.FolloweeId))
	if err != nil {
		msg, err := s.failure(ctx, "Follow", err)
		if err != nil {
			return nil, err
		}
		return &socialnetwork.FollowResponse{ErrorMessage: msg}, nil
	}
	return &socialnetwork.FollowResponse{Success: true, WasNewFollow: created}, nil
}

// Unfollow ends a follow relationship.
func (s *FollowGraphServer) Unfollow(ctx context.Context, req *socialnetwork.UnfollowRequest) (*socialnetwork.UnfollowResponse, error) {
	unfollowed, err := s.g.Unfollow(graph.UserID(req.FollowerId), graph.UserID(req.FolloweeId))
	if err != nil {
		msg, err := s.failure(ctx, "Unfollow", err)
		if err != nil {
			return nil, err
		}
		return &socialnetwork.UnfollowResponse{ErrorMessage: msg}, nil
	}
	return &socialnetwork.UnfollowResponse{Success: true, WasUnfollowed: unfollowed}, nil
}

// IsFollowing checks an edge at the requested version, or at the current
// version if none was requested.
func (s *FollowGraphServer) IsFollowing(_ context.Context, req *socialnetwork.IsFollowingRequest) (*socialnetwork.IsFollowingResponse, error) {
	follower, followee := graph.UserID(req.FollowerId), graph.UserID(req.FolloweeId)
	var following bool
	if req.Version != nil {
		following = s.g.IsFollowingAt(follower, followee, graph.Version(*req.Version))
	} else {
		following = s.g.IsFollowing(follower, followee)
	}
	return &socialnetwork.IsFollowingResponse{IsFollowing: following}, nil
}

// GetFollowers returns the users currently following a user.
func (s *FollowGraphServer) GetFollowers(_ context.Context, req *socialnetwork.GetFollowersRequest) (*socialnetwork.GetFollowersResponse, error) {
	return &socialnetwork.GetFollowersResponse{
		FollowerIds: userIDsToProto(s.g.Followers(graph.UserID(req.UserId))),
	}, nil
}

// GetFollowees returns the users currently followed by a user.
func (s *FollowGraphServer) GetFollowees(_ context.Context, req *socialnetwork.GetFolloweesRequest) (*socialnetwork.GetFolloweesResponse, error) {
	return &socialnetwork.GetFolloweesResponse{
		FolloweeIds: userIDsToProto(s.g.Followees(graph.UserID(req.UserId))),
	}, nil
}

// Commit seals the current version.
func (s *FollowGraphServer) Commit(context.Context, *socialnetwork.CommitRequest) (*socialnetwork.CommitResponse, error) {
	return &socialnetwork.CommitResponse{Version: uint64(s.g.Commit())}, nil
}

// GetCurrentVersion returns the current version.
func (s *FollowGraphServer) GetCurrentVersion(context.Context, *socialnetwork.GetCurrentVersionRequest) (*socialnetwork.GetCurrentVersionResponse, error) {
	return &socialnetwork.GetCurrentVersionResponse{Version: uint64(s.g.CurrentVersion())}, nil
}

// GetHistory returns the interval history of an edge.
func (s *FollowGraphServer) GetHistory(_ context.Context, req *socialnetwork.GetHistoryRequest) (*socialnetwork.GetHistoryResponse, error) {
	history := s.g.History(graph.UserID(req.FollowerId), graph.UserID(req.FolloweeId))
	res := &socialnetwork.GetHistoryResponse{Intervals: make([]*socialnetwork.Interval, len(history))}
	for i, interval := range history {
		res.Intervals[i] = intervalToProto(interval)
	}
	return res, nil
}

// failure maps a graph error to an RPC outcome. Caller mistakes are reported
// back as an error message; anything else indicates a broken invariant and
// is logged and surfaced as an internal error.
func (s *FollowGraphServer) failure(ctx context.Context, method string, err error) (string, error) {
	if xerrors.Is(err, graph.ErrSelfRelation) {
		return graph.ErrSelfRelation.Error(), nil
	}
	RequestLogger(ctx, s.logger).WithFields(logrus.Fields{
		"method": method,
		"err":    err.Error(),
	}).Error("follow graph invariant violation")
	return "", status.Error(codes.Internal, "internal error")
}

func userIDsToProto(ids []graph.UserID) []uint64 {
	out := make([]uint64, len(ids))
	for i, id := range ids {
		out[i] = uint64(id)
	}
	return out
}

func intervalToProto(interval graph.Interval) *socialnetwork.Interval {
	out := &socialnetwork.Interval{Start: uint64(interval.Start)}
	if end, closed := interval.End(); closed {
		v := uint64(end)
		out.End = &v
	}
	return out
}
