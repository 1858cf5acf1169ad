package main

import (
	"fmt"
	"reflect"

	"github.com/goccy/go-yaml"

	"github.com/vedadiyan/protoenum"
)

type (
	// Definition is an enum described in YAML:
	//
	//	name: example.Status
	//	storage: int16
	//	members:
	//	  - name: UNKNOWN
	//	    value: 0
	//	  - name: ACTIVE
	//	    value: 1
	//	    wire: 10
	//
	// A member without wire travels as its value. Setting mapped to false
	// drops the member list from the codec so any value of the storage type
	// is accepted.
	Definition struct {
		Name    string   `yaml:"name"`
		Storage string   `yaml:"storage"`
		Mapped  *bool    `yaml:"mapped"`
		Members []Member `yaml:"members"`
	}

	Member struct {
		Name  string `yaml:"name"`
		Value int64  `yaml:"value"`
		Wire  *int32 `yaml:"wire"`
	}
)

var (
	_storage = map[protoenum.Representation]reflect.Type{
		protoenum.Int8:   reflect.TypeFor[int8](),
		protoenum.Uint8:  reflect.TypeFor[uint8](),
		protoenum.Int16:  reflect.TypeFor[int16](),
		protoenum.Uint16: reflect.TypeFor[uint16](),
		protoenum.Int32:  reflect.TypeFor[int32](),
		protoenum.Uint32: reflect.TypeFor[uint32](),
		protoenum.Int64:  reflect.TypeFor[int64](),
		protoenum.Uint64: reflect.TypeFor[uint64](),
	}
)

func ParseDefinition(data []byte) (*Definition, error) {
	out := new(Definition)
	if err := yaml.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(out.Storage) == 0 {
		out.Storage = "int32"
	}
	return out, nil
}

func (d *Definition) EnumType() (*protoenum.EnumType, error) {
	kind, err := protoenum.ParseRepresentation(d.Storage)
	if err != nil {
		return nil, err
	}
	if d.Mapped != nil && !*d.Mapped {
		return protoenum.NewEnumType(d.Name, _storage[kind], nil)
	}
	pairs := make([]protoenum.Pair, 0, len(d.Members))
	for _, member := range d.Members {
		declared := d.value(kind, member.Value)
		wire := int32(member.Value)
		if member.Wire != nil {
			wire = *member.Wire
		}
		pairs = append(pairs, protoenum.Pair{Declared: declared, Wire: wire})
	}
	return protoenum.NewEnumType(d.Name, _storage[kind], pairs)
}

// MemberName returns the name of the first member declared with v.
func (d *Definition) MemberName(v protoenum.Value) string {
	for _, member := range d.Members {
		if d.value(v.Kind(), member.Value) == v {
			return member.Name
		}
	}
	return ""
}

func (d *Definition) value(kind protoenum.Representation, v int64) protoenum.Value {
	if kind.Signed() {
		return protoenum.SignedValue(kind, v)
	}
	return protoenum.UnsignedValue(kind, uint64(v))
}
