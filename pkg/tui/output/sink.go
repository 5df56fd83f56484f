// ABOUTME: Sink is the output endpoint a console hands one assembled buffer per render cycle
// ABOUTME: Blocking writes synchronously on the caller's goroutine and flushes buffered writers

package output

import (
	"errors"
	"fmt"
	"io"
)

// ErrFinalized is returned by a sink used after Finalize.
var ErrFinalized = errors.New("output sink already finalized")

// Sink receives the bytes of each render cycle. Like io.Writer,
// implementations must not retain p after Output returns.
type Sink interface {
	// ShouldRender reports whether the sink can accept a frame now.
	// Returning false asks the caller to skip this render.
	ShouldRender() bool
	// Output writes one cycle's buffer.
	Output(p []byte) error
	// Finalize flushes pending output. The sink is unusable afterwards.
	Finalize() error
}

type flusher interface {
	Flush() error
}

// BlockingSink writes each buffer directly to its writer.
type BlockingSink struct {
	w         io.Writer
	finalized bool
}

// Blocking returns a Sink that writes synchronously to w. If w has a
// Flush() error method it is flushed after every write.
func Blocking(w io.Writer) *BlockingSink {
	return &BlockingSink{w: w}
}

// ShouldRender is always true.
func (s *BlockingSink) ShouldRender() bool { return true }

// Output writes p and flushes.
func (s *BlockingSink) Output(p []byte) error {
	if s.finalized {
		return ErrFinalized
	}
	return write(s.w, p)
}

// Finalize marks the sink finished. Output is already synchronous so there
// is nothing to flush.
func (s *BlockingSink) Finalize() error {
	if s.finalized {
		return ErrFinalized
	}
	s.finalized = true
	return nil
}

func write(w io.Writer, p []byte) error {
	if _, err := w.Write(p); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	if f, ok := w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flushing frame: %w", err)
		}
	}
	return nil
}
