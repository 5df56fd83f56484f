// ABOUTME: Bounded caps the drawing budget of its child at a maximum size
// ABOUTME: The result is shrunk to the same cap regardless of what the child returns

package component

import (
	"github.com/mauromedda/pi-console/pkg/tui"
	"github.com/mauromedda/pi-console/pkg/tui/content"
	"github.com/mauromedda/pi-console/pkg/tui/geom"
)

// Bounded limits Child to at most Max. Use geom.Unbounded for an axis
// without a limit.
type Bounded[S any] struct {
	Child tui.Component[S]
	Max   geom.Dimensions
}

// NewBounded returns a Bounded wrapping child.
func NewBounded[S any](child tui.Component[S], maxWidth, maxHeight int) *Bounded[S] {
	return &Bounded[S]{Child: child, Max: geom.New(maxWidth, maxHeight)}
}

// DrawUnchecked draws the child within the intersection of dims and Max.
func (b *Bounded[S]) DrawUnchecked(state S, dims geom.Dimensions, mode tui.DrawMode) (content.Lines, error) {
	limit := dims.Intersect(b.Max)
	out, err := tui.Draw(b.Child, state, limit, mode)
	if err != nil {
		return nil, err
	}
	out.ShrinkToDimensions(limit)
	return out, nil
}
