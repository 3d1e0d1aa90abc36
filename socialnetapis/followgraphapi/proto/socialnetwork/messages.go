package socialnetwork

import "google.golang.org/protobuf/encoding/protowire"

// The types below mirror the messages declared in social_network.proto.

// FollowRequest asks for follower to start following followee.
type FollowRequest struct {
	FollowerId uint64
	FolloweeId uint64
}

func (m *FollowRequest) MarshalWire() ([]byte, error) {
	return marshalEdge(m.FollowerId, m.FolloweeId), nil
}

func (m *FollowRequest) UnmarshalWire(b []byte) error {
	*m = FollowRequest{}
	return unmarshalEdge(b, &m.FollowerId, &m.FolloweeId)
}

// FollowResponse reports the outcome of a FollowRequest.
type FollowResponse struct {
	Success      bool
	ErrorMessage string
	WasNewFollow bool
}

func (m *FollowResponse) MarshalWire() ([]byte, error) {
	return marshalOutcome(m.Success, m.ErrorMessage, m.WasNewFollow), nil
}

func (m *FollowResponse) UnmarshalWire(b []byte) error {
	*m = FollowResponse{}
	return unmarshalOutcome(b, &m.Success, &m.ErrorMessage, &m.WasNewFollow)
}

// UnfollowRequest asks for follower to stop following followee.
type UnfollowRequest struct {
	FollowerId uint64
	FolloweeId uint64
}

func (m *UnfollowRequest) MarshalWire() ([]byte, error) {
	return marshalEdge(m.FollowerId, m.FolloweeId), nil
}

func (m *UnfollowRequest) UnmarshalWire(b []byte) error {
	*m = UnfollowRequest{}
	return unmarshalEdge(b, &m.FollowerId, &m.FolloweeId)
}

// UnfollowResponse reports the outcome of an UnfollowRequest.
type UnfollowResponse struct {
	Success       bool
	ErrorMessage  string
	WasUnfollowed bool
}

func (m *UnfollowResponse) MarshalWire() ([]byte, error) {
	return marshalOutcome(m.Success, m.ErrorMessage, m.WasUnfollowed), nil
}

func (m *UnfollowResponse) UnmarshalWire(b []byte) error {
	*m = UnfollowResponse{}
	return unmarshalOutcome(b, &m.Success, &m.ErrorMessage, &m.WasUnfollowed)
}

// IsFollowingRequest queries an edge. A nil Version queries the current
// version.
type IsFollowingRequest struct {
	FollowerId uint64
	FolloweeId uint64
	Version    *uint64
}

func (m *IsFollowingRequest) MarshalWire() ([]byte, error) {
	e := encoder{buf: marshalEdge(m.FollowerId, m.FolloweeId)}
	e.putOptionalUint64(3, m.Version)
	return e.buf, nil
}

func (m *IsFollowingRequest) UnmarshalWire(b []byte) error {
	*m = IsFollowingRequest{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeUint64(typ, b, &m.FollowerId)
		case 2:
			return consumeUint64(typ, b, &m.FolloweeId)
		case 3:
			return consumeOptionalUint64(typ, b, &m.Version)
		}
		return 0
	})
}

// IsFollowingResponse is the reply to an IsFollowingRequest.
type IsFollowingResponse struct {
	IsFollowing bool
}

func (m *IsFollowingResponse) MarshalWire() ([]byte, error) {
	var e encoder
	e.putBool(1, m.IsFollowing)
	return e.buf, nil
}

func (m *IsFollowingResponse) UnmarshalWire(b []byte) error {
	*m = IsFollowingResponse{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeBool(typ, b, &m.IsFollowing)
		}
		return 0
	})
}

// GetFollowersRequest asks for the current followers of a user.
type GetFollowersRequest struct {
	UserId uint64
}

func (m *GetFollowersRequest) MarshalWire() ([]byte, error) { return marshalUser(m.UserId), nil }

func (m *GetFollowersRequest) UnmarshalWire(b []byte) error {
	*m = GetFollowersRequest{}
	return unmarshalUser(b, &m.UserId)
}

// GetFollowersResponse is the reply to a GetFollowersRequest.
type GetFollowersResponse struct {
	FollowerIds []uint64
}

func (m *GetFollowersResponse) MarshalWire() ([]byte, error) { return marshalIDs(m.FollowerIds), nil }

func (m *GetFollowersResponse) UnmarshalWire(b []byte) error {
	*m = GetFollowersResponse{}
	return unmarshalIDs(b, &m.FollowerIds)
}

// GetFolloweesRequest asks for the users currently followed by a user.
type GetFolloweesRequest struct {
	UserId uint64
}

func (m *GetFolloweesRequest) MarshalWire() ([]byte, error) { return marshalUser(m.UserId), nil }

func (m *GetFolloweesRequest) UnmarshalWire(b []byte) error {
	*m = GetFolloweesRequest{}
	return unmarshalUser(b, &m.UserId)
}

// GetFolloweesResponse is the reply to a GetFolloweesRequest.
type GetFolloweesResponse struct {
	FolloweeIds []uint64
}

func (m *GetFolloweesResponse) MarshalWire() ([]byte, error) { return marshalIDs(m.FolloweeIds), nil }

func (m *GetFolloweesResponse) UnmarshalWire(b []byte) error {
	*m = GetFolloweesResponse{}
	return unmarshalIDs(b, &m.FolloweeIds)
}

// CommitRequest asks the server to seal the current version.
type CommitRequest struct{}

func (m *CommitRequest) MarshalWire() ([]byte, error) { return nil, nil }

func (m *CommitRequest) UnmarshalWire(b []byte) error { return decode(b, skipAll) }

// CommitResponse carries the version created by a commit.
type CommitResponse struct {
	Version uint64
}

func (m *CommitResponse) MarshalWire() ([]byte, error) { return marshalVersion(m.Version), nil }

func (m *CommitResponse) UnmarshalWire(b []byte) error {
	*m = CommitResponse{}
	return unmarshalVersion(b, &m.Version)
}

// GetCurrentVersionRequest asks for the current version.
type GetCurrentVersionRequest struct{}

func (m *GetCurrentVersionRequest) MarshalWire() ([]byte, error) { return nil, nil }

func (m *GetCurrentVersionRequest) UnmarshalWire(b []byte) error { return decode(b, skipAll) }

// GetCurrentVersionResponse is the reply to a GetCurrentVersionRequest.
type GetCurrentVersionResponse struct {
	Version uint64
}

func (m *GetCurrentVersionResponse) MarshalWire() ([]byte, error) {
	return marshalVersion(m.Version), nil
}

func (m *GetCurrentVersionResponse) UnmarshalWire(b []byte) error {
	*m = GetCurrentVersionResponse{}
	return unmarshalVersion(b, &m.Version)
}

// GetHistoryRequest asks for the interval history of an edge.
type GetHistoryRequest struct {
	FollowerId uint64
	FolloweeId uint64
}

func (m *GetHistoryRequest) MarshalWire() ([]byte, error) {
	return marshalEdge(m.FollowerId, m.FolloweeId), nil
}

func (m *GetHistoryRequest) UnmarshalWire(b []byte) error {
	*m = GetHistoryRequest{}
	return unmarshalEdge(b, &m.FollowerId, &m.FolloweeId)
}

// Interval is a span of versions during which an edge was active. A nil End
// marks an interval that is still open.
type Interval struct {
	Start uint64
	End   *uint64
}

func (m *Interval) MarshalWire() ([]byte, error) {
	var e encoder
	e.putUint64(1, m.Start)
	e.putOptionalUint64(2, m.End)
	return e.buf, nil
}

func (m *Interval) UnmarshalWire(b []byte) error {
	*m = Interval{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeUint64(typ, b, &m.Start)
		case 2:
			return consumeOptionalUint64(typ, b, &m.End)
		}
		return 0
	})
}

// GetHistoryResponse is the reply to a GetHistoryRequest.
type GetHistoryResponse struct {
	Intervals []*Interval
}

func (m *GetHistoryResponse) MarshalWire() ([]byte, error) {
	var e encoder
	for _, interval := range m.Intervals {
		if err := e.putMessage(1, interval); err != nil {
			return nil, err
		}
	}
	return e.buf, nil
}

func (m *GetHistoryResponse) UnmarshalWire(b []byte) error {
	*m = GetHistoryResponse{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num != 1 {
			return 0
		}
		interval := new(Interval)
		n := consumeMessage(typ, b, interval)
		if n > 0 {
			m.Intervals = append(m.Intervals, interval)
		}
		return n
	})
}

func skipAll(protowire.Number, protowire.Type, []byte) int { return 0 }

func marshalEdge(follower, followee uint64) []byte {
	var e encoder
	e.putUint64(1, follower)
	e.putUint64(2, followee)
	return e.buf
}

func unmarshalEdge(b []byte, follower, followee *uint64) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeUint64(typ, b, follower)
		case 2:
			return consumeUint64(typ, b, followee)
		}
		return 0
	})
}

func marshalOutcome(success bool, errMsg string, flag bool) []byte {
	var e encoder
	e.putBool(1, success)
	e.putString(2, errMsg)
	e.putBool(3, flag)
	return e.buf
}

func unmarshalOutcome(b []byte, success *bool, errMsg *string, flag *bool) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeBool(typ, b, success)
		case 2:
			return consumeString(typ, b, errMsg)
		case 3:
			return consumeBool(typ, b, flag)
		}
		return 0
	})
}

func marshalUser(user uint64) []byte {
	var e encoder
	e.putUint64(1, user)
	return e.buf
}

func unmarshalUser(b []byte, user *uint64) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeUint64(typ, b, user)
		}
		return 0
	})
}

func marshalIDs(ids []uint64) []byte {
	var e encoder
	e.putPackedUint64s(1, ids)
	return e.buf
}

func unmarshalIDs(b []byte, ids *[]uint64) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeUint64s(typ, b, ids)
		}
		return 0
	})
}

func marshalVersion(version uint64) []byte {
	var e encoder
	e.putUint64(1, version)
	return e.buf
}

func unmarshalVersion(b []byte, version *uint64) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeUint64(typ, b, version)
		}
		return 0
	})
}
