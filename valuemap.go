package protoenum

import (
	"slices"

	"github.com/vedadiyan/protoenum/errors"
)

type (
	// Pair is a declared value and the wire integer it travels as.
	Pair struct {
		Declared Value
		Wire     int32
	}

	// Entry is a validated Pair together with the declared value
	// materialized as the enum's Go type.
	Entry struct {
		Declared Value
		Wire     int32
		Typed    any
	}

	// ValueMap is an immutable, validated association between declared
	// values and wire integers. Lookups are first-match in entry order.
	ValueMap struct {
		entries []Entry
	}
)

// Remap pairs a declared enum member with an explicit wire value.
func Remap[T Integer](declared T, wire int32) Pair {
	return Pair{Declared: ValueFor(declared), Wire: wire}
}

// NewValueMap validates entries pairwise. Two entries may share a wire value
// or a declared value only if they are exact duplicates.
func NewValueMap(enum string, entries []Entry) (*ValueMap, error) {
	for i := 1; i < len(entries); i++ {
		for j := 0; j < i; j++ {
			if entries[i].Wire == entries[j].Wire && entries[i].Declared != entries[j].Declared {
				return nil, errors.DuplicateWireValue(enum, entries[i].Wire)
			}
			if entries[i].Declared == entries[j].Declared && entries[i].Wire != entries[j].Wire {
				return nil, errors.DuplicateDeclaredValue(enum, entries[i].Declared)
			}
		}
	}
	return &ValueMap{entries: slices.Clone(entries)}, nil
}

func (m *ValueMap) Len() int {
	return len(m.entries)
}

func (m *ValueMap) At(i int) Entry {
	return m.entries[i]
}

// Entries returns a copy of the entries in their original order.
func (m *ValueMap) Entries() []Entry {
	return slices.Clone(m.entries)
}

// LookupWire returns the first entry carrying the given wire value. The
// comparison is done on the full 64-bit value so that a wide read outside
// the int32 range never aliases a mapped member.
func (m *ValueMap) LookupWire(wire int64) (Entry, bool) {
	for i := range m.entries {
		if int64(m.entries[i].Wire) == wire {
			return m.entries[i], true
		}
	}
	return Entry{}, false
}

// LookupDeclared returns the first entry for the given declared value.
func (m *ValueMap) LookupDeclared(v Value) (Entry, bool) {
	for i := range m.entries {
		if m.entries[i].Declared == v {
			return m.entries[i], true
		}
	}
	return Entry{}, false
}
