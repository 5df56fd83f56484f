// ABOUTME: Tests for the pooled bytes.Buffer helpers
// ABOUTME: Verifies buffers come back empty and nil/oversized puts are tolerated

package pool

import (
	"bytes"
	"testing"
)

func TestGetBytesBuffer_Empty(t *testing.T) {
	t.Parallel()

	buf := GetBytesBuffer()
	buf.WriteString("frame")
	PutBytesBuffer(buf)

	again := GetBytesBuffer()
	defer PutBytesBuffer(again)
	if again.Len() != 0 {
		t.Errorf("re-acquired buffer Len() = %d, want 0", again.Len())
	}
}

func TestPutBytesBuffer_NilAndOversized(t *testing.T) {
	t.Parallel()

	PutBytesBuffer(nil)

	big := bytes.NewBuffer(make([]byte, 0, maxPooledSize+1))
	PutBytesBuffer(big)
}
