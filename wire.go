package protoenum

import (
	"bytes"

	"google.golang.org/protobuf/encoding/protowire"
)

type (
	// Reader is the transport side a decoder pulls integers from.
	Reader interface {
		ReadInt32() (int32, error)
		ReadInt64() (int64, error)
		ReadUint64() (uint64, error)
	}

	// Writer is the transport side an encoder pushes integers to.
	Writer interface {
		WriteInt32(int32) error
		WriteInt64(int64) error
		WriteUint64(uint64) error
	}

	// Buffer reads and writes protobuf varints. Negative int32 values are
	// sign-extended to ten bytes, as protobuf does for int32 fields.
	Buffer struct {
		data *bytes.Buffer
	}
)

var (
	_ Reader = (*Buffer)(nil)
	_ Writer = (*Buffer)(nil)
)

// NewBuffer returns a Buffer reading from data. Writes append to it.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: bytes.NewBuffer(data)}
}

func (b *Buffer) WriteVarint(value uint64) {
	b.data.Write(protowire.AppendVarint(b.data.AvailableBuffer(), value))
}

func (b *Buffer) ReadVarint() (uint64, error) {
	value, n := protowire.ConsumeVarint(b.data.Bytes())
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	b.data.Next(n)
	return value, nil
}

func (b *Buffer) WriteInt32(value int32) error {
	b.WriteVarint(uint64(int64(value)))
	return nil
}

func (b *Buffer) WriteInt64(value int64) error {
	b.WriteVarint(uint64(value))
	return nil
}

func (b *Buffer) WriteUint64(value uint64) error {
	b.WriteVarint(value)
	return nil
}

func (b *Buffer) ReadInt32() (int32, error) {
	value, err := b.ReadVarint()
	return int32(value), err
}

func (b *Buffer) ReadInt64() (int64, error) {
	value, err := b.ReadVarint()
	return int64(value), err
}

func (b *Buffer) ReadUint64() (uint64, error) {
	return b.ReadVarint()
}

// WriteBytes writes a length-prefixed payload.
func (b *Buffer) WriteBytes(value []byte) {
	b.data.Write(protowire.AppendBytes(b.data.AvailableBuffer(), value))
}

// ReadBytes reads a length-prefixed payload. The result aliases the buffer.
func (b *Buffer) ReadBytes() ([]byte, error) {
	value, n := protowire.ConsumeBytes(b.data.Bytes())
	if n < 0 {
		return nil, protowire.ParseError(n)
	}
	b.data.Next(n)
	return value, nil
}

// Bytes returns the unread portion of the buffer.
func (b *Buffer) Bytes() []byte {
	return b.data.Bytes()
}

func (b *Buffer) Len() int {
	return b.data.Len()
}

func (b *Buffer) Reset() {
	b.data.Reset()
}
