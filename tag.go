package protoenum

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/vedadiyan/protoenum/errors"
)

func TagEncode(fieldNumber protowire.Number, wireType protowire.Type, buffer *Buffer) error {
	if !fieldNumber.IsValid() {
		return errors.New(errors.PhaseEncode, errors.KindInvalidData).
			Value(int32(fieldNumber)).
			Detail("field number %d is out of range", fieldNumber).
			Build()
	}
	if wireType < protowire.VarintType || wireType > protowire.Fixed32Type {
		return errors.New(errors.PhaseEncode, errors.KindInvalidData).
			Value(int8(wireType)).
			Detail("invalid wire type %d", wireType).
			Build()
	}
	buffer.WriteVarint(protowire.EncodeTag(fieldNumber, wireType))
	return nil
}

func TagDecode(buffer *Buffer) (protowire.Number, protowire.Type, error) {
	fieldNumber, wireType, n := protowire.ConsumeTag(buffer.Bytes())
	if n < 0 {
		return 0, 0, errors.InvalidData(errors.PhaseDecode, "", protowire.ParseError(n))
	}
	buffer.data.Next(n)
	return fieldNumber, wireType, nil
}
