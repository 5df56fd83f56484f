// ABOUTME: NonBlocking sink: a background writer fed through a one-slot channel
// ABOUTME: Reports back-pressure via ShouldRender and re-raises writer panics on Finalize

package output

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"
)

// NonBlockingSink hands buffers to a background goroutine so slow
// terminals do not stall the caller. At most one buffer waits in flight.
type NonBlockingSink struct {
	ch chan []byte
	g  errgroup.Group

	mu        sync.Mutex
	err       error
	recovered any
	finalized bool
}

// NonBlocking starts a writer goroutine for w and returns its Sink. The
// goroutine runs until Finalize.
func NonBlocking(w io.Writer) *NonBlockingSink {
	s := &NonBlockingSink{ch: make(chan []byte, 1)}
	s.g.Go(func() error {
		for p := range s.ch {
			if s.failed() {
				// Keep draining so Output never blocks on a dead writer.
				continue
			}
			s.writeOne(w, p)
		}
		return s.writeErr()
	})
	return s
}

func (s *NonBlockingSink) writeOne(w io.Writer, p []byte) {
	defer func() {
		if r := recover(); r != nil {
			s.mu.Lock()
			s.recovered = r
			if s.err == nil {
				s.err = fmt.Errorf("output writer panicked: %v", r)
			}
			s.mu.Unlock()
		}
	}()
	if err := write(w, p); err != nil {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
	}
}

func (s *NonBlockingSink) failed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err != nil
}

func (s *NonBlockingSink) writeErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// ShouldRender reports whether the hand-off slot is free.
func (s *NonBlockingSink) ShouldRender() bool {
	return len(s.ch) < cap(s.ch)
}

// Output copies p and queues it for the writer, blocking while the slot is
// taken. Once the writer has failed, Output returns that error.
func (s *NonBlockingSink) Output(p []byte) error {
	s.mu.Lock()
	finalized, err := s.finalized, s.err
	s.mu.Unlock()
	if finalized {
		return ErrFinalized
	}
	if err != nil {
		return err
	}
	s.ch <- bytes.Clone(p)
	return nil
}

// Finalize waits for queued output to be written and returns the first
// write error. A panic in the writer is re-raised here.
func (s *NonBlockingSink) Finalize() error {
	s.mu.Lock()
	if s.finalized {
		s.mu.Unlock()
		return ErrFinalized
	}
	s.finalized = true
	s.mu.Unlock()

	close(s.ch)
	err := s.g.Wait()

	s.mu.Lock()
	r := s.recovered
	s.mu.Unlock()
	if r != nil {
		panic(r)
	}
	return err
}
