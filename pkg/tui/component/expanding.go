// ABOUTME: Expanding keeps its child's output at the largest size it has ever drawn
// ABOUTME: Stops frames from jittering when content briefly shrinks

package component

import (
	"github.com/mauromedda/pi-console/pkg/tui"
	"github.com/mauromedda/pi-console/pkg/tui/content"
	"github.com/mauromedda/pi-console/pkg/tui/geom"
)

// Expanding pads Child's output to the union of every size it has
// produced, clipped to the current budget. Not safe for concurrent draws.
type Expanding[S any] struct {
	Child   tui.Component[S]
	largest geom.Dimensions
}

// NewExpanding returns an Expanding wrapping child.
func NewExpanding[S any](child tui.Component[S]) *Expanding[S] {
	return &Expanding[S]{Child: child}
}

// DrawUnchecked draws the child and grows the result to the remembered size.
func (e *Expanding[S]) DrawUnchecked(state S, dims geom.Dimensions, mode tui.DrawMode) (content.Lines, error) {
	out, err := tui.Draw(e.Child, state, dims, mode)
	if err != nil {
		return nil, err
	}
	e.largest = e.largest.Union(out.Dimensions())
	out.SetToExactDimensions(e.largest.Intersect(dims))
	return out, nil
}
