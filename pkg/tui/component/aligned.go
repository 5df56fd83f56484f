// ABOUTME: Aligned places its child's output left, center, or right and top, center, or bottom
// ABOUTME: Left alignment can justify every row to the width of the widest one

package component

import (
	"github.com/mauromedda/pi-console/pkg/tui"
	"github.com/mauromedda/pi-console/pkg/tui/content"
	"github.com/mauromedda/pi-console/pkg/tui/geom"
)

type horizontalKind int

const (
	alignLeft horizontalKind = iota
	alignCenter
	alignRight
)

// Horizontal selects where rows sit on the x-axis.
type Horizontal struct {
	kind    horizontalKind
	justify bool
}

// Left aligns rows to the left edge. With justify, every row is padded to
// the width of the widest row.
func Left(justify bool) Horizontal {
	return Horizontal{kind: alignLeft, justify: justify}
}

var (
	// HCenter centers each row in the available width; an odd remainder
	// goes to the right.
	HCenter = Horizontal{kind: alignCenter}

	// Right aligns rows to the right edge of the available width.
	Right = Horizontal{kind: alignRight}
)

// Vertical selects where the block of rows sits on the y-axis.
type Vertical int

const (
	Top Vertical = iota
	// VCenter puts floor(gap/2) blank rows above and the rest below.
	VCenter
	Bottom
)

// Aligned positions the output of Child inside the drawing budget.
type Aligned[S any] struct {
	Child      tui.Component[S]
	Horizontal Horizontal
	Vertical   Vertical
}

// NewAligned returns an Aligned wrapping child.
func NewAligned[S any](child tui.Component[S], h Horizontal, v Vertical) *Aligned[S] {
	return &Aligned[S]{Child: child, Horizontal: h, Vertical: v}
}

// DrawUnchecked draws the child and pads its output into place.
func (a *Aligned[S]) DrawUnchecked(state S, dims geom.Dimensions, mode tui.DrawMode) (content.Lines, error) {
	out, err := tui.Draw(a.Child, state, dims, mode)
	if err != nil {
		return nil, err
	}

	// An unbounded axis has no edge to align against; use the frame's own size.
	width, height := dims.Width, dims.Height
	if geom.IsUnbounded(width) {
		width = out.MaxLineLength()
	}
	if geom.IsUnbounded(height) {
		height = len(out)
	}

	gap := geom.SaturatingSub(height, len(out))
	switch a.Vertical {
	case VCenter:
		top := gap / 2
		out.PadTop(top)
		out.PadBottom(gap - top)
	case Bottom:
		out.PadTop(gap)
	}

	switch a.Horizontal.kind {
	case alignLeft:
		if a.Horizontal.justify {
			out.Justify()
		}
	case alignCenter:
		for i := range out {
			pad := geom.SaturatingSub(width, out[i].Len())
			left := pad / 2
			out[i].PadLeft(left)
			out[i].PadRight(pad - left)
		}
	case alignRight:
		for i := range out {
			out[i].PadLeft(geom.SaturatingSub(width, out[i].Len()))
		}
	}
	return out, nil
}
