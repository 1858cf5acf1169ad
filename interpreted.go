package protoenum

import (
	"github.com/vedadiyan/protoenum/errors"
)

// Interpreted is the general codec. It inspects the value on every call and
// scans the map linearly.
type Interpreted struct {
	enum *EnumType
}

func NewInterpreted(t *EnumType) *Interpreted {
	return &Interpreted{enum: t}
}

func (c *Interpreted) Type() *EnumType {
	return c.enum
}

func (c *Interpreted) Wide() bool {
	return c.enum.Wide()
}

func (c *Interpreted) Decode(r Reader) (any, error) {
	t := c.enum
	wire, err := readWire(t, r)
	if err != nil {
		return nil, err
	}
	if t.values == nil {
		return t.Materialize(wireValue(t.kind, wire)), nil
	}
	if entry, ok := t.values.LookupWire(wire); ok {
		return entry.Typed, nil
	}
	return nil, errors.UnknownWireValue(t.name, wire)
}

func (c *Interpreted) Encode(v any, w Writer) error {
	t := c.enum
	value, err := t.ValueOf(v)
	if err != nil {
		return err
	}
	if t.values == nil {
		return writeWire(t, value, w)
	}
	entry, ok := t.values.LookupDeclared(value)
	if !ok {
		return errors.UnmappedValue(t.name, v)
	}
	return writeMapped(t, entry.Wire, w)
}
