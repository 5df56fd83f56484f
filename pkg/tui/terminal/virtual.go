// ABOUTME: VirtualTerminal implements Terminal and io.Writer for tests without a real TTY
// ABOUTME: Captures output, counts writes, and can simulate size and write failures

package terminal

import (
	"bytes"
	"fmt"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests. It also serves as the
// console's output stream so tests can inspect what was drawn.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	width      int
	height     int
	sizeErr    error
	writeErr   error
	tty        bool
	writeCount int
}

// NewVirtualTerminal returns an interactive VirtualTerminal of the given size.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:  width,
		height: height,
		tty:    true,
	}
}

// Size returns the configured dimensions, or the configured size error.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sizeErr != nil {
		return 0, 0, v.sizeErr
	}
	return v.width, v.height, nil
}

// IsTerminal reports the configured TTY flag.
func (v *VirtualTerminal) IsTerminal() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.tty
}

// Write appends data to the internal buffer, or fails with the configured
// write error.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.writeErr != nil {
		return 0, v.writeErr
	}
	v.writeCount++
	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer and write count.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
	v.writeCount = 0
}

// WriteCount returns how many successful Write calls were made.
func (v *VirtualTerminal) WriteCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.writeCount
}

// SetSize updates the terminal dimensions.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = width
	v.height = height
}

// SetSizeError makes Size fail with err; nil restores normal behavior.
func (v *VirtualTerminal) SetSizeError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sizeErr = err
}

// SetWriteError makes Write fail with err; nil restores normal behavior.
func (v *VirtualTerminal) SetWriteError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeErr = err
}

// SetTerminal sets what IsTerminal reports.
func (v *VirtualTerminal) SetTerminal(tty bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.tty = tty
}
