package protoenum

import (
	"fmt"
	"reflect"

	"github.com/vedadiyan/protoenum/errors"
)

// EnumType describes one Go enum: its storage representation and, when the
// wire values differ from the declared ones or the members are restricted,
// its validated ValueMap.
type EnumType struct {
	name   string
	goType reflect.Type
	kind   Representation
	values *ValueMap
}

// NewEnumType resolves goType's representation and validates pairs. A nil
// pairs slice means the enum has no map: any value of the storage type is
// accepted and travels as itself.
func NewEnumType(name string, goType reflect.Type, pairs []Pair) (*EnumType, error) {
	if goType == nil {
		return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
			Enum(name).
			Detail("Go type cannot be nil").
			Build()
	}
	if len(name) == 0 {
		name = goType.String()
	}

	kind, err := Resolve(goType.Kind())
	if err != nil {
		return nil, errors.UnsupportedRepresentation(name, goType.Kind().String())
	}

	out := new(EnumType)
	out.name = name
	out.goType = goType
	out.kind = kind
	if pairs == nil {
		return out, nil
	}

	entries := make([]Entry, len(pairs))
	for i, pair := range pairs {
		declared := pair.Declared.As(kind)
		entries[i] = Entry{
			Declared: declared,
			Wire:     pair.Wire,
			Typed:    out.Materialize(declared),
		}
	}
	values, err := NewValueMap(name, entries)
	if err != nil {
		return nil, err
	}
	out.values = values
	return out, nil
}

// EnumTypeFor is NewEnumType for a concrete Go type. Calling it without pairs
// creates an enum with no map.
func EnumTypeFor[T Integer](name string, pairs ...Pair) (*EnumType, error) {
	return NewEnumType(name, reflect.TypeFor[T](), pairs)
}

func (t *EnumType) Name() string {
	return t.name
}

func (t *EnumType) GoType() reflect.Type {
	return t.goType
}

func (t *EnumType) Kind() Representation {
	return t.kind
}

// Map returns the validated map, or nil when the enum is unmapped.
func (t *EnumType) Map() *ValueMap {
	return t.values
}

// Wide reports whether the enum needs a 64-bit wire representation.
func (t *EnumType) Wide() bool {
	return t.kind.Wide()
}

func (t *EnumType) String() string {
	return t.name
}

// Materialize returns v as an instance of the enum's Go type.
func (t *EnumType) Materialize(v Value) any {
	rv := reflect.New(t.goType).Elem()
	v.As(t.kind).set(rv)
	return rv.Interface()
}

// ValueOf extracts the tagged value from an instance of the enum's Go type.
// A Value of the same representation is accepted as is.
func (t *EnumType) ValueOf(v any) (Value, error) {
	if value, ok := v.(Value); ok {
		if value.kind != t.kind {
			return Value{}, errors.TypeMismatch(errors.PhaseEncode, t.name, fmt.Sprintf("Value(%s)", value.kind))
		}
		return value, nil
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Type() != t.goType {
		return Value{}, errors.TypeMismatch(errors.PhaseEncode, t.name, fmt.Sprintf("%T", v))
	}
	return reflectValue(t.kind, rv), nil
}
