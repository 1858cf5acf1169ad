package protoenum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vedadiyan/protoenum/errors"
)

func TestFromEnum(t *testing.T) {
	e, err := FromEnum(descriptorpb.FieldDescriptorProto_TYPE_INT32)
	require.NoError(t, err)
	assert.Equal(t, "google.protobuf.FieldDescriptorProto.Type", e.Name())
	assert.Equal(t, Int32, e.Kind())

	values := descriptorpb.FieldDescriptorProto_TYPE_INT32.Descriptor().Values()
	require.Equal(t, values.Len(), e.Map().Len())

	dispatcher, err := Compile(e)
	require.NoError(t, err)
	require.Len(t, dispatcher.Groups(), 1)
	assert.Equal(t, int32(1), dispatcher.Groups()[0].Anchor)

	for name, c := range codecs(t, e) {
		t.Run(name, func(t *testing.T) {
			for i := range values.Len() {
				number := values.Get(i).Number()
				decoded, err := Unmarshal(c, bytesOf(int32(number)))
				require.NoError(t, err)
				assert.Equal(t, descriptorpb.FieldDescriptorProto_Type(number), decoded)

				data, err := Marshal(c, decoded)
				require.NoError(t, err)
				assert.Equal(t, bytesOf(int32(number)), data)
			}

			_, err := Unmarshal(c, bytesOf(0))
			assert.ErrorIs(t, err, errors.ErrUnknownWireValue)
		})
	}
}

func TestFromEnumSingleValue(t *testing.T) {
	e, err := FromEnum(structpb.NullValue_NULL_VALUE)
	require.NoError(t, err)

	registry := NewRegistry()
	c, err := registry.Codec(e)
	require.NoError(t, err)

	data, err := Marshal(c, structpb.NullValue_NULL_VALUE)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, data)

	_, err = Unmarshal(c, bytesOf(1))
	assert.ErrorIs(t, err, errors.ErrUnknownWireValue)
}
