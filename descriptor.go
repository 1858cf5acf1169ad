package protoenum

import (
	"reflect"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// FromDescriptor builds an enum whose members are the descriptor's values, in
// declaration order, each travelling as its own number. Aliased values share
// a number and collapse into duplicate entries.
func FromDescriptor(desc protoreflect.EnumDescriptor, goType reflect.Type) (*EnumType, error) {
	values := desc.Values()
	pairs := make([]Pair, 0, values.Len())
	for i := range values.Len() {
		number := values.Get(i).Number()
		pairs = append(pairs, Pair{
			Declared: SignedValue(Int64, int64(number)),
			Wire:     int32(number),
		})
	}
	return NewEnumType(string(desc.FullName()), goType, pairs)
}

// FromEnum builds the enum type of a generated protobuf enum value.
func FromEnum(e protoreflect.Enum) (*EnumType, error) {
	return FromDescriptor(e.Descriptor(), reflect.TypeOf(e))
}
