package protoenum

import (
	"sort"

	"github.com/vedadiyan/protoenum/errors"
)

type (
	// Dispatcher is the specialized codec for one enum type. It is built once
	// and behaves exactly like Interpreted: encode resolves declared values
	// through a first-match table, decode probes contiguous wire groups.
	Dispatcher struct {
		enum   *EnumType
		groups []Group
		jumps  []jumpTable
		wires  map[uint64]int32
		read   func(Reader) (int64, error)
		write  func(Value, Writer) error
	}

	// jumpTable holds a group's members indexed by wire value minus anchor.
	jumpTable struct {
		anchor int64
		typed  []any
	}
)

func Compile(t *EnumType) (*Dispatcher, error) {
	out := new(Dispatcher)
	out.enum = t
	out.read = compileReader(t)
	out.write = compileWriter(t)
	if t.values == nil {
		return out, nil
	}

	groups, err := Partition(t.values.entries)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.Enum = t.name
		}
		return nil, err
	}
	out.groups = groups
	out.jumps = make([]jumpTable, len(groups))
	for i, group := range groups {
		typed := make([]any, len(group.Members))
		for j, member := range group.Members {
			typed[j] = member.Typed
		}
		out.jumps[i] = jumpTable{anchor: int64(group.Anchor), typed: typed}
	}

	out.wires = make(map[uint64]int32, t.values.Len())
	for _, entry := range t.values.entries {
		if _, ok := out.wires[entry.Declared.bits]; ok {
			continue
		}
		out.wires[entry.Declared.bits] = entry.Wire
	}
	return out, nil
}

func compileReader(t *EnumType) func(Reader) (int64, error) {
	switch t.kind.Primitive() {
	case PrimitiveInt64:
		{
			return func(r Reader) (int64, error) {
				value, err := r.ReadInt64()
				if err != nil {
					return 0, errors.InvalidData(errors.PhaseDecode, t.name, err)
				}
				return value, nil
			}
		}
	case PrimitiveUint64:
		{
			return func(r Reader) (int64, error) {
				value, err := r.ReadUint64()
				if err != nil {
					return 0, errors.InvalidData(errors.PhaseDecode, t.name, err)
				}
				return int64(value), nil
			}
		}
	default:
		{
			return func(r Reader) (int64, error) {
				value, err := r.ReadInt32()
				if err != nil {
					return 0, errors.InvalidData(errors.PhaseDecode, t.name, err)
				}
				return int64(value), nil
			}
		}
	}
}

func compileWriter(t *EnumType) func(Value, Writer) error {
	switch t.kind.Primitive() {
	case PrimitiveInt64:
		{
			return func(v Value, w Writer) error {
				if err := w.WriteInt64(v.Int64()); err != nil {
					return errors.InvalidData(errors.PhaseEncode, t.name, err)
				}
				return nil
			}
		}
	case PrimitiveUint64:
		{
			return func(v Value, w Writer) error {
				if err := w.WriteUint64(v.Uint64()); err != nil {
					return errors.InvalidData(errors.PhaseEncode, t.name, err)
				}
				return nil
			}
		}
	default:
		{
			return func(v Value, w Writer) error {
				if err := w.WriteInt32(v.wire32()); err != nil {
					return errors.InvalidData(errors.PhaseEncode, t.name, err)
				}
				return nil
			}
		}
	}
}

func (d *Dispatcher) Type() *EnumType {
	return d.enum
}

func (d *Dispatcher) Wide() bool {
	return d.enum.Wide()
}

// Groups returns the contiguous wire groups decode dispatches over, in
// ascending wire order. It is nil for an unmapped enum.
func (d *Dispatcher) Groups() []Group {
	return d.groups
}

func (d *Dispatcher) Decode(r Reader) (any, error) {
	wire, err := d.read(r)
	if err != nil {
		return nil, err
	}
	if d.enum.values == nil {
		return d.enum.Materialize(wireValue(d.enum.kind, wire)), nil
	}
	if typed, ok := d.lookup(wire); ok {
		return typed, nil
	}
	return nil, errors.UnknownWireValue(d.enum.name, wire)
}

// lookup finds the only group that can hold wire, the last one anchored at or
// below it, then either tests equality or indexes its jump table.
func (d *Dispatcher) lookup(wire int64) (any, bool) {
	jumps := d.jumps
	i := sort.Search(len(jumps), func(i int) bool {
		return jumps[i].anchor > wire
	}) - 1
	if i < 0 {
		return nil, false
	}
	table := jumps[i]
	if len(table.typed) == 1 {
		if wire == table.anchor {
			return table.typed[0], true
		}
		return nil, false
	}
	// anchor is an int32, so the bound cannot overflow
	if wire > table.anchor+int64(len(table.typed))-1 {
		return nil, false
	}
	return table.typed[wire-table.anchor], true
}

func (d *Dispatcher) Encode(v any, w Writer) error {
	value, err := d.enum.ValueOf(v)
	if err != nil {
		return err
	}
	if d.wires == nil {
		return d.write(value, w)
	}
	wire, ok := d.wires[value.bits]
	if !ok {
		return errors.UnmappedValue(d.enum.name, v)
	}
	return writeMapped(d.enum, wire, w)
}
