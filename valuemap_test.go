package protoenum

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedadiyan/protoenum/errors"
)

const (
	A Color = 100
	B Color = 200
)

func TestValueMapValidation(t *testing.T) {
	tests := []struct {
		name  string
		pairs []Pair
		err   string
	}{
		{
			name:  "same wire value, different declared values",
			pairs: []Pair{Remap(A, 1), Remap(B, 1)},
			err:   "wire-value 1",
		},
		{
			name:  "same declared value, different wire values",
			pairs: []Pair{Remap(A, 1), Remap(A, 2)},
			err:   "deserialized-value 100",
		},
		{
			name:  "exact duplicates",
			pairs: []Pair{Remap(A, 1), Remap(A, 1)},
		},
		{
			name:  "conflict after an unrelated entry",
			pairs: []Pair{Remap(A, 1), Remap(Red, 5), Remap(B, 5)},
			err:   "wire-value 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := EnumTypeFor[Color]("example.Color", tt.pairs...)
			if tt.err == "" {
				require.NoError(t, err)
				assert.Equal(t, len(tt.pairs), e.Map().Len())
				return
			}
			require.ErrorIs(t, err, errors.ErrConfiguration)
			assert.Contains(t, err.Error(), tt.err)
			assert.Contains(t, err.Error(), "example.Color")
			assert.Nil(t, e)
		})
	}
}

func TestValueMapLookup(t *testing.T) {
	m := colorType(t).Map()

	entry, ok := m.LookupWire(12)
	require.True(t, ok)
	assert.Equal(t, Blue, entry.Typed)

	entry, ok = m.LookupDeclared(ValueFor(Gray))
	require.True(t, ok)
	assert.Equal(t, int32(-3), entry.Wire)

	_, ok = m.LookupWire(12 + 1<<32)
	assert.False(t, ok)
	_, ok = m.LookupDeclared(ValueFor(Color(3)))
	assert.False(t, ok)
}

func TestValueMapIsImmutable(t *testing.T) {
	m := colorType(t).Map()
	entries := m.Entries()
	entries[0].Wire = 99
	assert.Equal(t, int32(10), m.At(0).Wire)
}

func TestEnumTypeWithoutMap(t *testing.T) {
	e, err := EnumTypeFor[Color]("")
	require.NoError(t, err)
	assert.Nil(t, e.Map())
	assert.Equal(t, "protoenum.Color", e.Name())
	assert.Equal(t, Int32, e.Kind())
	assert.False(t, e.Wide())
}

func TestEnumTypeEmptyMap(t *testing.T) {
	e, err := NewEnumType("example.Empty", reflect.TypeFor[Color](), []Pair{})
	require.NoError(t, err)
	require.NotNil(t, e.Map())

	for name, c := range codecs(t, e) {
		t.Run(name, func(t *testing.T) {
			_, err := Marshal(c, Red)
			assert.ErrorIs(t, err, errors.ErrUnmappedValue)
			_, err = Unmarshal(c, bytesOf(0))
			assert.ErrorIs(t, err, errors.ErrUnknownWireValue)
		})
	}
}
