// ABOUTME: Canvas owns the root component and the height of the last frame drawn in place
// ABOUTME: Moving to the top of that frame lets the next frame overwrite it

package tui

import (
	"bytes"

	"github.com/mauromedda/pi-console/pkg/tui/content"
	"github.com/mauromedda/pi-console/pkg/tui/geom"
	"github.com/mauromedda/pi-console/pkg/tui/terminal"
)

// Canvas is the redrawable region at the bottom of the output.
type Canvas[S any] struct {
	root   Component[S]
	height int
}

// NewCanvas returns an empty canvas drawing root.
func NewCanvas[S any](root Component[S]) *Canvas[S] {
	return &Canvas[S]{root: root}
}

// Height returns the number of rows of the last frame still on screen.
func (c *Canvas[S]) Height() int { return c.height }

// MoveToTop writes the cursor movement to the first row of the last frame.
func (c *Canvas[S]) MoveToTop(buf *bytes.Buffer) {
	buf.WriteString(terminal.MoveUp(c.height))
}

// Draw draws the root within dims and records the frame height. A final
// frame stays on screen, so the recorded height becomes zero. On error the
// height is left as it was.
func (c *Canvas[S]) Draw(state S, dims geom.Dimensions, mode DrawMode) (content.Lines, error) {
	lines, err := Draw(c.root, state, dims, mode)
	if err != nil {
		return nil, err
	}
	c.height = len(lines)
	if mode == ModeFinal {
		c.height = 0
	}
	return lines, nil
}

// Clear erases the last frame and leaves the cursor where it started.
func (c *Canvas[S]) Clear(buf *bytes.Buffer) {
	c.MoveToTop(buf)
	buf.WriteString(terminal.EraseScreenBelow)
	c.height = 0
}

func (c *Canvas[S]) restore(height int) { c.height = height }
