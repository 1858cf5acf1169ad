package protoenum

import (
	"reflect"
	"strconv"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/vedadiyan/protoenum/errors"
)

// Field is an enum-typed message field.
type Field struct {
	Number protowire.Number
	Packed bool
	Codec  Codec
}

// ParseField reads the field number and packing of an enum field from its
// generated struct tag, e.g. `protobuf:"varint,3,rep,packed,name=kinds,enum=pkg.Kind"`.
// When the tag names an enum it must match the codec's enum.
func ParseField(tag reflect.StructTag, c Codec) (*Field, error) {
	value, ok := tag.Lookup("protobuf")
	if !ok {
		return nil, fieldTagError(c, "missing protobuf tag")
	}
	segments := strings.Split(strings.Trim(value, "\""), ",")
	if len(segments) < 2 {
		return nil, fieldTagError(c, "malformed protobuf tag %q", value)
	}
	if segments[0] != "varint" {
		return nil, fieldTagError(c, "enum fields are varint encoded, got %s", segments[0])
	}
	fieldNumber, err := strconv.Atoi(segments[1])
	if err != nil || !protowire.Number(fieldNumber).IsValid() {
		return nil, fieldTagError(c, "invalid field number %q", segments[1])
	}

	out := new(Field)
	out.Number = protowire.Number(fieldNumber)
	out.Codec = c
	for _, segment := range segments[2:] {
		switch {
		case segment == "packed":
			{
				out.Packed = true
			}
		case strings.HasPrefix(segment, "enum="):
			{
				name := strings.TrimPrefix(segment, "enum=")
				if !sameEnumName(name, c.Type().Name()) {
					return nil, fieldTagError(c, "field is tagged with enum %s", name)
				}
			}
		}
	}
	return out, nil
}

// sameEnumName compares a tag's enum name with a full name. Generated tags
// join nested names with underscores.
func sameEnumName(tagged string, fullName string) bool {
	return strings.ReplaceAll(tagged, "_", ".") == strings.ReplaceAll(fullName, "_", ".")
}

func fieldTagError(c Codec, msg string, args ...any) error {
	return errors.New(errors.PhaseCompile, errors.KindConfiguration).
		Enum(c.Type().Name()).
		Detail(msg, args...).
		Build()
}

// Encode writes the tag and value. Nothing is written if v cannot be encoded.
func (f *Field) Encode(v any, buffer *Buffer) error {
	scratch := Alloc(0)
	defer Dealloc(scratch)
	if err := f.Codec.Encode(v, scratch); err != nil {
		return err
	}
	if err := TagEncode(f.Number, protowire.VarintType, buffer); err != nil {
		return err
	}
	buffer.data.Write(scratch.Bytes())
	return nil
}

func (f *Field) Decode(buffer *Buffer) (any, error) {
	if err := f.expect(buffer, protowire.VarintType); err != nil {
		return nil, err
	}
	return f.Codec.Decode(buffer)
}

// EncodePacked writes values as one packed repeated field. Either every value
// is written or none is.
func (f *Field) EncodePacked(values []any, buffer *Buffer) error {
	scratch := Alloc(0)
	defer Dealloc(scratch)
	for _, v := range values {
		if err := f.Codec.Encode(v, scratch); err != nil {
			return err
		}
	}
	if err := TagEncode(f.Number, protowire.BytesType, buffer); err != nil {
		return err
	}
	buffer.WriteBytes(scratch.Bytes())
	return nil
}

func (f *Field) DecodePacked(buffer *Buffer) ([]any, error) {
	if err := f.expect(buffer, protowire.BytesType); err != nil {
		return nil, err
	}
	payload, err := buffer.ReadBytes()
	if err != nil {
		return nil, errors.InvalidData(errors.PhaseDecode, f.Codec.Type().Name(), err)
	}
	inner := NewBuffer(payload)
	out := make([]any, 0)
	for inner.Len() != 0 {
		value, err := f.Codec.Decode(inner)
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}

// expect consumes the field's tag. The buffer is left untouched when the next
// tag belongs to another field or has another wire type.
func (f *Field) expect(buffer *Buffer, wireType protowire.Type) error {
	fieldNumber, actual, n := protowire.ConsumeTag(buffer.Bytes())
	if n < 0 {
		return errors.InvalidData(errors.PhaseDecode, f.Codec.Type().Name(), protowire.ParseError(n))
	}
	if fieldNumber == f.Number && actual == wireType {
		buffer.data.Next(n)
		return nil
	}
	return errors.New(errors.PhaseDecode, errors.KindInvalidData).
		Enum(f.Codec.Type().Name()).
		Detail("expected field %d with wire type %d, got field %d with wire type %d", f.Number, wireType, fieldNumber, actual).
		Build()
}
