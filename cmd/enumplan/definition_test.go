package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedadiyan/protoenum"
	"github.com/vedadiyan/protoenum/errors"
)

const statusYAML = `
name: example.Status
storage: uint8
members:
  - name: UNKNOWN
    value: 0
  - name: ACTIVE
    value: 1
    wire: 10
  - name: SUSPENDED
    value: 2
    wire: 11
  - name: CLOSED
    value: 200
    wire: 30
`

func TestDefinitionEnumType(t *testing.T) {
	definition, err := ParseDefinition([]byte(statusYAML))
	require.NoError(t, err)
	assert.Len(t, definition.Members, 4)

	enum, err := definition.EnumType()
	require.NoError(t, err)
	assert.Equal(t, "example.Status", enum.Name())
	assert.Equal(t, protoenum.Uint8, enum.Kind())
	require.Equal(t, 4, enum.Map().Len())

	entry, ok := enum.Map().LookupWire(30)
	require.True(t, ok)
	assert.Equal(t, uint8(200), entry.Typed)
	assert.Equal(t, "CLOSED", definition.MemberName(entry.Declared))

	plan := Plan(definition, enum)
	assert.Contains(t, plan, "example.Status")
	assert.Contains(t, plan, "10=ACTIVE")
	assert.Contains(t, plan, "[10..11]")
}

func TestDefinitionUnmapped(t *testing.T) {
	definition, err := ParseDefinition([]byte("name: example.Raw\nstorage: int64\nmapped: false\n"))
	require.NoError(t, err)

	enum, err := definition.EnumType()
	require.NoError(t, err)
	assert.Nil(t, enum.Map())
	assert.True(t, enum.Wide())
	assert.Contains(t, Plan(definition, enum), "none")
}

func TestDefinitionInvalid(t *testing.T) {
	definition, err := ParseDefinition([]byte("name: example.Bad\nstorage: float\n"))
	require.NoError(t, err)
	_, err = definition.EnumType()
	assert.ErrorIs(t, err, errors.ErrUnsupported)

	definition, err = ParseDefinition([]byte("name: example.Dup\nmembers:\n  - {name: A, value: 1, wire: 5}\n  - {name: B, value: 2, wire: 5}\n"))
	require.NoError(t, err)
	_, err = definition.EnumType()
	assert.ErrorIs(t, err, errors.ErrConfiguration)
}

func TestEncodeOne(t *testing.T) {
	definition, err := ParseDefinition([]byte(statusYAML))
	require.NoError(t, err)
	enum, err := definition.EnumType()
	require.NoError(t, err)

	codec, err := protoenum.NewRegistry().Codec(enum)
	require.NoError(t, err)

	assert.Contains(t, encodeOne(codec, "1"), "0a")
	assert.Contains(t, encodeOne(codec, "3"), "unmapped_value")
	assert.Contains(t, encodeOne(codec, "300"), "out of range")
}
