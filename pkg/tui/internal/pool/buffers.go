// ABOUTME: sync.Pool wrapper for the bytes.Buffer each render cycle assembles
// ABOUTME: Buffers are reset on get and put; callers must not retain Bytes() after Put

package pool

import (
	"bytes"
	"sync"
)

// maxPooledSize keeps a single huge emission flush from pinning memory.
const maxPooledSize = 1 << 20

var bytesBufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// GetBytesBuffer returns an empty bytes.Buffer from the pool.
func GetBytesBuffer() *bytes.Buffer {
	buf := bytesBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBytesBuffer returns a bytes.Buffer to the pool.
func PutBytesBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledSize {
		return
	}
	buf.Reset()
	bytesBufferPool.Put(buf)
}
