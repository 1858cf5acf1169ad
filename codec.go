package protoenum

import (
	"bytes"

	"github.com/vedadiyan/protoenum/errors"
)

// Codec encodes and decodes the members of one enum type. Decode returns the
// member as the enum's Go type; Encode accepts the same.
type Codec interface {
	Type() *EnumType
	Decode(Reader) (any, error)
	Encode(any, Writer) error
	// Wide reports whether the enum needs a 64-bit wire representation.
	Wide() bool
}

var (
	_ Codec = (*Interpreted)(nil)
	_ Codec = (*Dispatcher)(nil)
)

func Marshal(c Codec, v any) ([]byte, error) {
	buffer := Alloc(0)
	defer Dealloc(buffer)
	if err := c.Encode(v, buffer); err != nil {
		return nil, err
	}
	return bytes.Clone(buffer.Bytes()), nil
}

func Unmarshal(c Codec, data []byte) (any, error) {
	return c.Decode(NewBuffer(data))
}

// readWire reads with the primitive selected for t and returns the result
// widened to int64.
func readWire(t *EnumType, r Reader) (int64, error) {
	switch t.kind.Primitive() {
	case PrimitiveInt64:
		{
			value, err := r.ReadInt64()
			if err != nil {
				return 0, errors.InvalidData(errors.PhaseDecode, t.name, err)
			}
			return value, nil
		}
	case PrimitiveUint64:
		{
			value, err := r.ReadUint64()
			if err != nil {
				return 0, errors.InvalidData(errors.PhaseDecode, t.name, err)
			}
			return int64(value), nil
		}
	default:
		{
			value, err := r.ReadInt32()
			if err != nil {
				return 0, errors.InvalidData(errors.PhaseDecode, t.name, err)
			}
			return int64(value), nil
		}
	}
}

// wireValue converts a widened wire integer into the enum's storage kind.
func wireValue(kind Representation, wire int64) Value {
	if kind.Primitive() == PrimitiveInt32 {
		return fromWire32(kind, int32(wire))
	}
	return Value{kind: kind, bits: uint64(wire)}
}

// writeWire writes v with the primitive selected for t.
func writeWire(t *EnumType, v Value, w Writer) error {
	var err error
	switch t.kind.Primitive() {
	case PrimitiveInt64:
		{
			err = w.WriteInt64(v.Int64())
		}
	case PrimitiveUint64:
		{
			err = w.WriteUint64(v.Uint64())
		}
	default:
		{
			err = w.WriteInt32(v.wire32())
		}
	}
	if err != nil {
		return errors.InvalidData(errors.PhaseEncode, t.name, err)
	}
	return nil
}

// writeMapped writes a mapped wire value, which is always an int32.
func writeMapped(t *EnumType, wire int32, w Writer) error {
	if err := w.WriteInt32(wire); err != nil {
		return errors.InvalidData(errors.PhaseEncode, t.name, err)
	}
	return nil
}
