package socialnetwork

import (
	"golang.org/x/xerrors"
	"google.golang.org/grpc/encoding"
	protocodec "google.golang.org/grpc/encoding/proto"
	"google.golang.org/protobuf/proto"
)

// codec replaces the default gRPC protobuf codec so that the hand-written
// messages in this package travel in the same wire format as messages
// generated from social_network.proto. Generated protobuf messages are
// still marshaled with the protobuf runtime.
type codec struct{}

func init() {
	encoding.RegisterCodec(codec{})
}

func (codec) Marshal(v interface{}) ([]byte, error) {
	switch m := v.(type) {
	case Message:
		return m.MarshalWire()
	case proto.Message:
		return proto.Marshal(m)
	default:
		return nil, xerrors.Errorf("marshal: unsupported message type %T", v)
	}
}

func (codec) Unmarshal(data []byte, v interface{}) error {
	switch m := v.(type) {
	case Message:
		return m.UnmarshalWire(data)
	case proto.Message:
		return proto.Unmarshal(data, m)
	default:
		return xerrors.Errorf("unmarshal: unsupported message type %T", v)
	}
}

func (codec) Name() string { return protocodec.Name }
