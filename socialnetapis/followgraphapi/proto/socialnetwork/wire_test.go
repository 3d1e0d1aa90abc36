package socialnetwork

import (
	"os"
	"strings"
	"testing"

	"google.golang.org/grpc/encoding"
	protocodec "google.golang.org/grpc/encoding/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(WireTestSuite))

type WireTestSuite struct{}

// Register our test-suite with go test.
func Test(t *testing.T) { gc.TestingT(t) }

func (s *WireTestSuite) TestFollowRequestEncoding(c *gc.C) {
	b, err := (&FollowRequest{FollowerId: 1, FolloweeId: 300}).MarshalWire()
	c.Assert(err, gc.IsNil)
	c.Assert(b, gc.DeepEquals, []byte{0x08, 0x01, 0x10, 0xac, 0x02})

	var req FollowRequest
	c.Assert(req.UnmarshalWire(b), gc.IsNil)
	c.Assert(req, gc.DeepEquals, FollowRequest{FollowerId: 1, FolloweeId: 300})
}

func (s *WireTestSuite) TestOptionalVersionPresence(c *gc.C) {
	zero := uint64(0)
	b, err := (&IsFollowingRequest{FollowerId: 1, FolloweeId: 2, Version: &zero}).MarshalWire()
	c.Assert(err, gc.IsNil)
	c.Assert(b, gc.DeepEquals, []byte{0x08, 0x01, 0x10, 0x02, 0x18, 0x00}, gc.Commentf("an explicit zero version must be encoded"))

	var req IsFollowingRequest
	c.Assert(req.UnmarshalWire(b), gc.IsNil)
	c.Assert(req.Version, gc.NotNil)
	c.Assert(*req.Version, gc.Equals, uint64(0))

	c.Assert(req.UnmarshalWire([]byte{0x08, 0x01, 0x10, 0x02}), gc.IsNil)
	c.Assert(req.Version, gc.IsNil)
}

func (s *WireTestSuite) TestRepeatedIDsAcceptPackedAndUnpacked(c *gc.C) {
	b, err := (&GetFollowersResponse{FollowerIds: []uint64{1, 300}}).MarshalWire()
	c.Assert(err, gc.IsNil)
	c.Assert(b, gc.DeepEquals, []byte{0x0a, 0x03, 0x01, 0xac, 0x02})

	var res GetFolloweesResponse
	c.Assert(res.UnmarshalWire([]byte{0x08, 0x01, 0x08, 0xac, 0x02}), gc.IsNil)
	c.Assert(res.FolloweeIds, gc.DeepEquals, []uint64{1, 300})
}

func (s *WireTestSuite) TestOutcomeEncoding(c *gc.C) {
	b, err := (&FollowResponse{Success: false, ErrorMessage: "no", WasNewFollow: false}).MarshalWire()
	c.Assert(err, gc.IsNil)
	c.Assert(b, gc.DeepEquals, []byte{0x12, 0x02, 'n', 'o'})

	var res UnfollowResponse
	c.Assert(res.UnmarshalWire([]byte{0x08, 0x01, 0x18, 0x01}), gc.IsNil)
	c.Assert(res, gc.DeepEquals, UnfollowResponse{Success: true, WasUnfollowed: true})
}

func (s *WireTestSuite) TestHistoryEncoding(c *gc.C) {
	end := uint64(1)
	in := &GetHistoryResponse{Intervals: []*Interval{{Start: 0, End: &end}, {Start: 2}}}
	b, err := in.MarshalWire()
	c.Assert(err, gc.IsNil)
	c.Assert(b, gc.DeepEquals, []byte{0x0a, 0x02, 0x10, 0x01, 0x0a, 0x02, 0x08, 0x02})

	var out GetHistoryResponse
	c.Assert(out.UnmarshalWire(b), gc.IsNil)
	c.Assert(out.Intervals, gc.HasLen, 2)
	c.Assert(*out.Intervals[0].End, gc.Equals, uint64(1))
	c.Assert(out.Intervals[1].Start, gc.Equals, uint64(2))
	c.Assert(out.Intervals[1].End, gc.IsNil)
}

func (s *WireTestSuite) TestUnknownFieldsAreSkipped(c *gc.C) {
	var res CommitResponse
	// field 1 = 7, field 5 (string) = "x", field 6 (fixed32)
	b := []byte{0x08, 0x07, 0x2a, 0x01, 'x', 0x35, 0x01, 0x02, 0x03, 0x04}
	c.Assert(res.UnmarshalWire(b), gc.IsNil)
	c.Assert(res.Version, gc.Equals, uint64(7))
}

func (s *WireTestSuite) TestTruncatedInput(c *gc.C) {
	var req FollowRequest
	c.Assert(req.UnmarshalWire([]byte{0x08}), gc.NotNil)

	var res GetFollowersResponse
	c.Assert(res.UnmarshalWire([]byte{0x0a, 0x05, 0x01}), gc.NotNil)
}

func (s *WireTestSuite) TestCodecHandlesProtoMessages(c *gc.C) {
	cd := encoding.GetCodec(protocodec.Name)
	c.Assert(cd, gc.FitsTypeOf, codec{})

	b, err := cd.Marshal(&CommitResponse{Version: 3})
	c.Assert(err, gc.IsNil)
	c.Assert(b, gc.DeepEquals, []byte{0x08, 0x03})

	// Generated protobuf messages still go through the protobuf runtime.
	b, err = cd.Marshal(wrapperspb.UInt64(3))
	c.Assert(err, gc.IsNil)
	var out wrapperspb.UInt64Value
	c.Assert(cd.Unmarshal(b, &out), gc.IsNil)
	c.Assert(out.GetValue(), gc.Equals, uint64(3))

	_, err = cd.Marshal(struct{}{})
	c.Assert(err, gc.ErrorMatches, "marshal: unsupported message type struct {}")
}

func (s *WireTestSuite) TestServiceDescMatchesProtoFile(c *gc.C) {
	src, err := os.ReadFile("social_network.proto")
	c.Assert(err, gc.IsNil)
	def := string(src)

	c.Assert(strings.Contains(def, "package social_network;"), gc.Equals, true)
	c.Assert(strings.Contains(def, "service SocialNetworkService {"), gc.Equals, true)
	c.Assert(serviceDesc.ServiceName, gc.Equals, "social_network.SocialNetworkService")
	c.Assert(serviceDesc.Metadata, gc.Equals, "social_network.proto")

	c.Assert(strings.Count(def, "  rpc "), gc.Equals, len(serviceDesc.Methods))
	for _, m := range serviceDesc.Methods {
		c.Assert(strings.Contains(def, "rpc "+m.MethodName+"("+m.MethodName+"Request) returns ("+m.MethodName+"Response);"),
			gc.Equals, true, gc.Commentf("method %s", m.MethodName))
	}
}
