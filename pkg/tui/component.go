// ABOUTME: Component protocol: a drawable producing Lines for a state within a size budget
// ABOUTME: Draw is the checked entry point that clamps every result to its budget

package tui

import (
	"github.com/mauromedda/pi-console/pkg/tui/content"
	"github.com/mauromedda/pi-console/pkg/tui/geom"
)

// DrawMode tells components whether this is an in-place frame or the last,
// permanent one.
type DrawMode int

const (
	// ModeNormal is a frame that will be overwritten by the next render.
	ModeNormal DrawMode = iota
	// ModeFinal is drawn once at shutdown and stays in the scrollback.
	ModeFinal
)

func (m DrawMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeFinal:
		return "final"
	default:
		return "unknown"
	}
}

// Component draws state S into at most dims. Implementations may return
// more than dims; Draw trims the excess.
type Component[S any] interface {
	DrawUnchecked(state S, dims geom.Dimensions, mode DrawMode) (content.Lines, error)
}

// ComponentFunc adapts a function to Component.
type ComponentFunc[S any] func(state S, dims geom.Dimensions, mode DrawMode) (content.Lines, error)

// DrawUnchecked calls f.
func (f ComponentFunc[S]) DrawUnchecked(state S, dims geom.Dimensions, mode DrawMode) (content.Lines, error) {
	return f(state, dims, mode)
}

// Draw draws c and shrinks the output to dims. Errors are returned as the
// component produced them.
func Draw[S any](c Component[S], state S, dims geom.Dimensions, mode DrawMode) (content.Lines, error) {
	lines, err := c.DrawUnchecked(state, dims, mode)
	if err != nil {
		return nil, err
	}
	lines.ShrinkToDimensions(dims)
	return lines, nil
}
