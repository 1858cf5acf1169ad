package protoenum

import (
	"reflect"
	"strconv"
)

// Value is an enum's underlying integer tagged with its Representation. The
// payload is kept normalized for the kind so that equal values compare equal.
type Value struct {
	kind Representation
	bits uint64
}

// Integer is satisfied by every Go type that can back an enum.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// SignedValue truncates v to kind.
func SignedValue(kind Representation, v int64) Value {
	return Value{kind: kind, bits: kind.normalize(uint64(v))}
}

// UnsignedValue truncates v to kind.
func UnsignedValue(kind Representation, v uint64) Value {
	return Value{kind: kind, bits: kind.normalize(v)}
}

// ValueFor tags a concrete integer with the representation of its type.
func ValueFor[T Integer](v T) Value {
	kind, err := Resolve(reflect.TypeFor[T]().Kind())
	if err != nil {
		panic(err)
	}
	return valueOfInteger(kind, v)
}

func valueOfInteger[T Integer](kind Representation, v T) Value {
	if kind.Signed() {
		return SignedValue(kind, int64(v))
	}
	return UnsignedValue(kind, uint64(v))
}

// reflectValue reads the integer held by rv, which must be of an integer kind.
func reflectValue(kind Representation, rv reflect.Value) Value {
	if kind.Signed() {
		return SignedValue(kind, rv.Int())
	}
	return UnsignedValue(kind, rv.Uint())
}

func (v Value) Kind() Representation {
	return v.kind
}

func (v Value) Int64() int64 {
	return int64(v.bits)
}

func (v Value) Uint64() uint64 {
	return v.bits
}

// As re-tags v for another representation, truncating as a Go conversion would.
func (v Value) As(kind Representation) Value {
	return Value{kind: kind, bits: kind.normalize(v.bits)}
}

func (v Value) String() string {
	if v.kind.Signed() {
		return strconv.FormatInt(int64(v.bits), 10)
	}
	return strconv.FormatUint(v.bits, 10)
}

// wire32 narrows v to the 32-bit wire primitive.
func (v Value) wire32() int32 {
	return int32(v.bits)
}

// fromWire32 widens a 32-bit wire integer back into kind.
func fromWire32(kind Representation, w int32) Value {
	return Value{kind: kind, bits: kind.normalize(uint64(int64(w)))}
}

// set stores v into rv, which must be settable and of an integer kind.
func (v Value) set(rv reflect.Value) {
	if v.kind.Signed() {
		rv.SetInt(int64(v.bits))
		return
	}
	rv.SetUint(v.bits)
}
