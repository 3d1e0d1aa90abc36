package socialnetwork

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const serviceName = "social_network.SocialNetworkService"

// SocialNetworkServiceClient is the client API for the social network service.
type SocialNetworkServiceClient interface {
	Follow(ctx context.Context, in *FollowRequest, opts ...grpc.CallOption) (*FollowResponse, error)
	Unfollow(ctx context.Context, in *UnfollowRequest, opts ...grpc.CallOption) (*UnfollowResponse, error)
	IsFollowing(ctx context.Context, in *IsFollowingRequest, opts ...grpc.CallOption) (*IsFollowingResponse, error)
	GetFollowers(ctx context.Context, in *GetFollowersRequest, opts ...grpc.CallOption) (*GetFollowersResponse, error)
	GetFollowees(ctx context.Context, in *GetFolloweesRequest, opts ...grpc.CallOption) (*GetFolloweesResponse, error)
	Commit(ctx context.Context, in *CommitRequest, opts ...grpc.CallOption) (*CommitResponse, error)
	GetCurrentVersion(ctx context.Context, in *GetCurrentVersionRequest, opts ...grpc.CallOption) (*GetCurrentVersionResponse, error)
	GetHistory(ctx context.Context, in *GetHistoryRequest, opts ...grpc.CallOption) (*GetHistoryResponse, error)
}

type socialNetworkServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSocialNetworkServiceClient returns a client that issues RPCs over cc.
func NewSocialNetworkServiceClient(cc grpc.ClientConnInterface) SocialNetworkServiceClient {
	return &socialNetworkServiceClient{cc: cc}
}

func (c *socialNetworkServiceClient) invoke(ctx context.Context, method string, in, out Message, opts []grpc.CallOption) error {
	return c.cc.Invoke(ctx, "/"+serviceName+"/"+method, in, out, opts...)
}

func (c *socialNetworkServiceClient) Follow(ctx context.Context, in *FollowRequest, opts ...grpc.CallOption) (*FollowResponse, error) {
	out := new(FollowResponse)
	if err := c.invoke(ctx, "Follow", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *socialNetworkServiceClient) Unfollow(ctx context.Context, in *UnfollowRequest, opts ...grpc.CallOption) (*UnfollowResponse, error) {
	out := new(UnfollowResponse)
	if err := c.invoke(ctx, "Unfollow", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *socialNetworkServiceClient) IsFollowing(ctx context.Context, in *IsFollowingRequest, opts ...grpc.CallOption) (*IsFollowingResponse, error) {
	out := new(IsFollowingResponse)
	if err := c.invoke(ctx, "IsFollowing", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *socialNetworkServiceClient) GetFollowers(ctx context.Context, in *GetFollowersRequest, opts ...grpc.CallOption) (*GetFollowersResponse, error) {
	out := new(GetFollowersResponse)
	if err := c.invoke(ctx, "GetFollowers", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *socialNetworkServiceClient) GetFollowees(ctx context.Context, in *GetFolloweesRequest, opts ...grpc.CallOption) (*GetFolloweesResponse, error) {
	out := new(GetFolloweesResponse)
	if err := c.invoke(ctx, "GetFollowees", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *socialNetworkServiceClient) Commit(ctx context.Context, in *CommitRequest, opts ...grpc.CallOption) (*CommitResponse, error) {
	out := new(CommitResponse)
	if err := c.invoke(ctx, "Commit", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *socialNetworkServiceClient) GetCurrentVersion(ctx context.Context, in *GetCurrentVersionRequest, opts ...grpc.CallOption) (*GetCurrentVersionResponse, error) {
	out := new(GetCurrentVersionResponse)
	if err := c.invoke(ctx, "GetCurrentVersion", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *socialNetworkServiceClient) GetHistory(ctx context.Context, in *GetHistoryRequest, opts ...grpc.CallOption) (*GetHistoryResponse, error) {
	out := new(GetHistoryResponse)
	if err := c.invoke(ctx, "GetHistory", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// SocialNetworkServiceServer is the server API for the social network service.
type SocialNetworkServiceServer interface {
	Follow(context.Context, *FollowRequest) (*FollowResponse, error)
	Unfollow(context.Context, *UnfollowRequest) (*UnfollowResponse, error)
	IsFollowing(context.Context, *IsFollowingRequest) (*IsFollowingResponse, error)
	GetFollowers(context.Context, *GetFollowersRequest) (*GetFollowersResponse, error)
	GetFollowees(context.Context, *GetFolloweesRequest) (*GetFolloweesResponse, error)
	Commit(context.Context, *CommitRequest) (*CommitResponse, error)
	GetCurrentVersion(context.Context, *GetCurrentVersionRequest) (*GetCurrentVersionResponse, error)
	GetHistory(context.Context, *GetHistoryRequest) (*GetHistoryResponse, error)
}

// UnimplementedSocialNetworkServiceServer can be embedded by servers that
// only implement a subset of the service.
type UnimplementedSocialNetworkServiceServer struct{}

func (UnimplementedSocialNetworkServiceServer) Follow(context.Context, *FollowRequest) (*FollowResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Follow not implemented")
}
func (UnimplementedSocialNetworkServiceServer) Unfollow(context.Context, *UnfollowRequest) (*UnfollowResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Unfollow not implemented")
}
func (UnimplementedSocialNetworkServiceServer) IsFollowing(context.Context, *IsFollowingRequest) (*IsFollowingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method IsFollowing not implemented")
}
func (UnimplementedSocialNetworkServiceServer) GetFollowers(context.Context, *GetFollowersRequest) (*GetFollowersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFollowers not implemented")
}
func (UnimplementedSocialNetworkServiceServer) GetFollowees(context.Context, *GetFolloweesRequest) (*GetFolloweesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFollowees not implemented")
}
func (UnimplementedSocialNetworkServiceServer) Commit(context.Context, *CommitRequest) (*CommitResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Commit not implemented")
}
func (UnimplementedSocialNetworkServiceServer) GetCurrentVersion(context.Context, *GetCurrentVersionRequest) (*GetCurrentVersionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCurrentVersion not implemented")
}
func (UnimplementedSocialNetworkServiceServer) GetHistory(context.Context, *GetHistoryRequest) (*GetHistoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetHistory not implemented")
}

// RegisterSocialNetworkServiceServer registers srv with the gRPC server s.
func RegisterSocialNetworkServiceServer(s grpc.ServiceRegistrar, srv SocialNetworkServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

// unaryHandler adapts a typed server method to a grpc.MethodDesc handler.
func unaryHandler(method string, newReq func() Message, call func(SocialNetworkServiceServer, context.Context, Message) (interface{}, error)) grpc.MethodDesc {
	fullMethod := "/" + serviceName + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := newReq()
			if err := dec(in); err != nil {
				return nil, err
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(SocialNetworkServiceServer), ctx, req.(Message))
			}
			if interceptor == nil {
				return handler(ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*SocialNetworkServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler("Follow", func() Message { return new(FollowRequest) },
			func(s SocialNetworkServiceServer, ctx context.Context, in Message) (interface{}, error) {
				return s.Follow(ctx, in.(*FollowRequest))
			}),
		unaryHandler("Unfollow", func() Message { return new(UnfollowRequest) },
			func(s SocialNetworkServiceServer, ctx context.Context, in Message) (interface{}, error) {
				return s.Unfollow(ctx, in.(*UnfollowRequest))
			}),
		unaryHandler("IsFollowing", func() Message { return new(IsFollowingRequest) },
			func(s SocialNetworkServiceServer, ctx context.Context, in Message) (interface{}, error) {
				return s.IsFollowing(ctx, in.(*IsFollowingRequest))
			}),
		unaryHandler("GetFollowers", func() Message { return new(GetFollowersRequest) },
			func(s SocialNetworkServiceServer, ctx context.Context, in Message) (interface{}, error) {
				return s.GetFollowers(ctx, in.(*GetFollowersRequest))
			}),
		unaryHandler("GetFollowees", func() Message { return new(GetFolloweesRequest) },
			func(s SocialNetworkServiceServer, ctx context.Context, in Message) (interface{}, error) {
				return s.GetFollowees(ctx, in.(*GetFolloweesRequest))
			}),
		unaryHandler("Commit", func() Message { return new(CommitRequest) },
			func(s SocialNetworkServiceServer, ctx context.Context, in Message) (interface{}, error) {
				return s.Commit(ctx, in.(*CommitRequest))
			}),
		unaryHandler("GetCurrentVersion", func() Message { return new(GetCurrentVersionRequest) },
			func(s SocialNetworkServiceServer, ctx context.Context, in Message) (interface{}, error) {
				return s.GetCurrentVersion(ctx, in.(*GetCurrentVersionRequest))
			}),
		unaryHandler("GetHistory", func() Message { return new(GetHistoryRequest) },
			func(s SocialNetworkServiceServer, ctx context.Context, in Message) (interface{}, error) {
				return s.GetHistory(ctx, in.(*GetHistoryRequest))
			}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "social_network.proto",
}
