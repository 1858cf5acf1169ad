package protoenum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/vedadiyan/protoenum/errors"
)

func TestBufferPrimitives(t *testing.T) {
	buffer := NewBuffer(nil)
	require.NoError(t, buffer.WriteInt32(-1))
	assert.Equal(t, 10, buffer.Len())
	require.NoError(t, buffer.WriteInt32(150))
	require.NoError(t, buffer.WriteInt64(-2))
	require.NoError(t, buffer.WriteUint64(1<<63))

	i32, err := buffer.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), i32)

	i32, err = buffer.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(150), i32)

	i64, err := buffer.ReadInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(-2), i64)

	u64, err := buffer.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<63), u64)

	assert.Equal(t, 0, buffer.Len())
	_, err = buffer.ReadUint64()
	assert.Error(t, err)
}

func TestBufferBytes(t *testing.T) {
	buffer := Alloc(16)
	defer Dealloc(buffer)

	buffer.WriteBytes([]byte{1, 2, 3})
	assert.Equal(t, []byte{3, 1, 2, 3}, buffer.Bytes())

	payload, err := buffer.ReadBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, payload)

	_, err = NewBuffer([]byte{5, 1}).ReadBytes()
	assert.Error(t, err)
}

func TestTag(t *testing.T) {
	buffer := NewBuffer(nil)
	require.NoError(t, TagEncode(3, protowire.VarintType, buffer))
	assert.Equal(t, []byte{0x18}, buffer.Bytes())

	number, wireType, err := TagDecode(buffer)
	require.NoError(t, err)
	assert.Equal(t, protowire.Number(3), number)
	assert.Equal(t, protowire.VarintType, wireType)

	assert.ErrorIs(t, TagEncode(0, protowire.VarintType, buffer), errors.ErrInvalidData)
	assert.ErrorIs(t, TagEncode(1, protowire.Type(7), buffer), errors.ErrInvalidData)

	_, _, err = TagDecode(NewBuffer([]byte{0x00}))
	assert.ErrorIs(t, err, errors.ErrInvalidData)
}
