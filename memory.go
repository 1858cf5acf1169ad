package protoenum

import (
	"bytes"
	"sync"
)

var (
	_pool sync.Pool
)

func init() {
	_pool = sync.Pool{
		New: func() any {
			return &Buffer{data: bytes.NewBuffer([]byte{})}
		},
	}
}

func Alloc(size int) *Buffer {
	buffer := _pool.Get().(*Buffer)
	if size != 0 && buffer.data.Cap() < size {
		buffer.data.Grow(size)
	}
	return buffer
}

func Dealloc(buffer *Buffer) {
	buffer.Reset()
	_pool.Put(buffer)
}
