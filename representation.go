package protoenum

import (
	"fmt"
	"reflect"

	"github.com/vedadiyan/protoenum/errors"
)

type (
	// Representation is the storage width and signedness of an enum.
	Representation uint8
	// Primitive is the wire read/write pair used for a Representation.
	Primitive uint8
)

const (
	Int8 Representation = iota + 1
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
)

const (
	PrimitiveInt32 Primitive = iota + 1
	PrimitiveInt64
	PrimitiveUint64
)

var (
	_representations map[reflect.Kind]Representation
)

func init() {
	_representations = make(map[reflect.Kind]Representation)
	_representations[reflect.Int8] = Int8
	_representations[reflect.Uint8] = Uint8
	_representations[reflect.Int16] = Int16
	_representations[reflect.Uint16] = Uint16
	_representations[reflect.Int32] = Int32
	_representations[reflect.Uint32] = Uint32
	_representations[reflect.Int64] = Int64
	_representations[reflect.Uint64] = Uint64
}

// Resolve maps a Go storage kind to its Representation. Platform sized
// integers are rejected since their wire width would vary by architecture.
func Resolve(kind reflect.Kind) (Representation, error) {
	r, ok := _representations[kind]
	if !ok {
		return 0, errors.UnsupportedRepresentation("", kind.String())
	}
	return r, nil
}

func (r Representation) Primitive() Primitive {
	switch r {
	case Int8, Uint8, Int16, Uint16, Int32, Uint32:
		{
			return PrimitiveInt32
		}
	case Int64:
		{
			return PrimitiveInt64
		}
	case Uint64:
		{
			return PrimitiveUint64
		}
	}
	panic(fmt.Sprintf("protoenum: invalid representation %d", r))
}

// Wide reports whether values travel as 64-bit integers.
func (r Representation) Wide() bool {
	return r == Int64 || r == Uint64
}

func (r Representation) Signed() bool {
	switch r {
	case Int8, Int16, Int32, Int64:
		return true
	}
	return false
}

func (r Representation) Bits() int {
	switch r {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32:
		return 32
	case Int64, Uint64:
		return 64
	}
	return 0
}

func (r Representation) Valid() bool {
	return r >= Int8 && r <= Uint64
}

func (r Representation) String() string {
	switch r {
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	}
	return fmt.Sprintf("Representation(%d)", r)
}

// ParseRepresentation is the inverse of String.
func ParseRepresentation(s string) (Representation, error) {
	for r := Int8; r <= Uint64; r++ {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, errors.UnsupportedRepresentation("", s)
}

func (p Primitive) String() string {
	switch p {
	case PrimitiveInt32:
		return "int32"
	case PrimitiveInt64:
		return "int64"
	case PrimitiveUint64:
		return "uint64"
	}
	return fmt.Sprintf("Primitive(%d)", p)
}

// normalize truncates bits to the representation's width and re-extends them,
// sign-extending for signed kinds.
func (r Representation) normalize(bits uint64) uint64 {
	switch r {
	case Int8:
		return uint64(int64(int8(bits)))
	case Uint8:
		return uint64(uint8(bits))
	case Int16:
		return uint64(int64(int16(bits)))
	case Uint16:
		return uint64(uint16(bits))
	case Int32:
		return uint64(int64(int32(bits)))
	case Uint32:
		return uint64(uint32(bits))
	case Int64, Uint64:
		return bits
	}
	panic(fmt.Sprintf("protoenum: invalid representation %d", r))
}
