package socialnetwork

import (
	"golang.org/x/xerrors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by the request and response types of the social
// network service. Implementations use the protobuf wire format.
type Message interface {
	MarshalWire() ([]byte, error)
	UnmarshalWire(b []byte) error
}

// encoder appends fields in protobuf wire format. Scalar fields holding their
// zero value are omitted, matching proto3 semantics.
type encoder struct {
	buf []byte
}

func (e *encoder) putUint64(num protowire.Number, v uint64) {
	if v == 0 {
		return
	}
	e.putOptionalUint64(num, &v)
}

func (e *encoder) putOptionalUint64(num protowire.Number, v *uint64) {
	if v == nil {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, *v)
}

func (e *encoder) putBool(num protowire.Number, v bool) {
	if !v {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, protowire.EncodeBool(v))
}

func (e *encoder) putString(num protowire.Number, v string) {
	if v == "" {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendString(e.buf, v)
}

func (e *encoder) putPackedUint64s(num protowire.Number, vs []uint64) {
	if len(vs) == 0 {
		return
	}
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, v)
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, packed)
}

func (e *encoder) putMessage(num protowire.Number, m Message) error {
	b, err := m.MarshalWire()
	if err != nil {
		return err
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, b)
	return nil
}

// fieldFunc decodes the value of a single field from b and returns the number
// of bytes it consumed. Returning 0 marks the field as unknown so it gets
// skipped; a negative value is a protowire parse error.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) int

func decode(b []byte, fn fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return xerrors.Errorf("decode tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		if n = fn(num, typ, b); n == 0 {
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return xerrors.Errorf("decode field %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}

func consumeUint64(typ protowire.Type, b []byte, dst *uint64) int {
	if typ != protowire.VarintType {
		return 0
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return n
	}
	*dst = v
	return n
}

func consumeOptionalUint64(typ protowire.Type, b []byte, dst **uint64) int {
	var v uint64
	n := consumeUint64(typ, b, &v)
	if n > 0 {
		*dst = &v
	}
	return n
}

func consumeBool(typ protowire.Type, b []byte, dst *bool) int {
	var v uint64
	n := consumeUint64(typ, b, &v)
	if n > 0 {
		*dst = protowire.DecodeBool(v)
	}
	return n
}

func consumeString(typ protowire.Type, b []byte, dst *string) int {
	if typ != protowire.BytesType {
		return 0
	}
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return n
	}
	*dst = v
	return n
}

// consumeUint64s accepts both the packed and the unpacked encoding of a
// repeated uint64 field.
func consumeUint64s(typ protowire.Type, b []byte, dst *[]uint64) int {
	switch typ {
	case protowire.VarintType:
		var v uint64
		n := consumeUint64(typ, b, &v)
		if n > 0 {
			*dst = append(*dst, v)
		}
		return n
	case protowire.BytesType:
		packed, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return n
		}
		for len(packed) > 0 {
			v, m := protowire.ConsumeVarint(packed)
			if m < 0 {
				return m
			}
			*dst = append(*dst, v)
			packed = packed[m:]
		}
		return n
	default:
		return 0
	}
}

func consumeMessage(typ protowire.Type, b []byte, m Message) int {
	if typ != protowire.BytesType {
		return 0
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return n
	}
	if err := m.UnmarshalWire(v); err != nil {
		return -1
	}
	return n
}
