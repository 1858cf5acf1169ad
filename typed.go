package protoenum

import (
	"fmt"
	"reflect"

	"github.com/vedadiyan/protoenum/errors"
)

// TypedCodec wraps a Codec whose enum is backed by T.
type TypedCodec[T Integer] struct {
	codec Codec
}

func Typed[T Integer](c Codec) (TypedCodec[T], error) {
	if c.Type().GoType() != reflect.TypeFor[T]() {
		return TypedCodec[T]{}, errors.TypeMismatch(errors.PhaseCompile, c.Type().Name(), fmt.Sprint(reflect.TypeFor[T]()))
	}
	return TypedCodec[T]{codec: c}, nil
}

// TypedFor returns the codec of the enum registered for T.
func TypedFor[T Integer](r *Registry) (TypedCodec[T], error) {
	c, err := r.CodecFor(reflect.TypeFor[T]())
	if err != nil {
		return TypedCodec[T]{}, err
	}
	return Typed[T](c)
}

func (c TypedCodec[T]) Codec() Codec {
	return c.codec
}

func (c TypedCodec[T]) Encode(v T, w Writer) error {
	return c.codec.Encode(v, w)
}

func (c TypedCodec[T]) Decode(r Reader) (T, error) {
	value, err := c.codec.Decode(r)
	if err != nil {
		var zero T
		return zero, err
	}
	return value.(T), nil
}
