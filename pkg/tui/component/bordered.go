// ABOUTME: Bordered surrounds its child's output with configurable span borders
// ABOUTME: Top and bottom borders become one full-width row per grapheme of the span

package component

import (
	"strings"

	"github.com/mauromedda/pi-console/pkg/tui"
	"github.com/mauromedda/pi-console/pkg/tui/content"
	"github.com/mauromedda/pi-console/pkg/tui/geom"
	"github.com/mauromedda/pi-console/pkg/tui/width"
)

// BorderSpec holds the span drawn on each side. A nil side has no border.
type BorderSpec struct {
	Left   *content.Span
	Right  *content.Span
	Top    *content.Span
	Bottom *content.Span
}

// DefaultBorderSpec draws "|" on the sides and "-" above and below.
func DefaultBorderSpec() BorderSpec {
	vertical := content.MustSpan("|", content.Style{})
	horizontal := content.MustSpan("-", content.Style{})
	return BorderSpec{
		Left:   &vertical,
		Right:  &vertical,
		Top:    &horizontal,
		Bottom: &horizontal,
	}
}

// Bordered draws Child justified and top-left aligned inside a border.
type Bordered[S any] struct {
	child  *Aligned[S]
	Border BorderSpec
}

// NewBordered returns a Bordered wrapping child.
func NewBordered[S any](child tui.Component[S], border BorderSpec) *Bordered[S] {
	return &Bordered[S]{
		child:  NewAligned(child, Left(true), Top),
		Border: border,
	}
}

func spanLen(s *content.Span) int {
	if s == nil {
		return 0
	}
	return s.Len()
}

// DrawUnchecked reserves room for the borders, draws the child, and adds
// the borders around it.
func (b *Bordered[S]) DrawUnchecked(state S, dims geom.Dimensions, mode tui.DrawMode) (content.Lines, error) {
	inner := dims.Shrink(
		spanLen(b.Border.Left)+spanLen(b.Border.Right),
		spanLen(b.Border.Top)+spanLen(b.Border.Bottom),
	)
	out, err := tui.Draw[S](b.child, state, inner, mode)
	if err != nil {
		return nil, err
	}

	for i := range out {
		if b.Border.Left != nil {
			out[i].Prepend(*b.Border.Left)
		}
		if b.Border.Right != nil {
			out[i].Append(*b.Border.Right)
		}
	}

	w := out.MaxLineLength()
	if b.Border.Top != nil {
		out = append(horizontalBorder(*b.Border.Top, w), out...)
	}
	if b.Border.Bottom != nil {
		out = append(out, horizontalBorder(*b.Border.Bottom, w)...)
	}
	return out, nil
}

// horizontalBorder turns each grapheme of s into its own row, repeated to
// fill w columns.
func horizontalBorder(s content.Span, w int) content.Lines {
	var rows content.Lines
	for cluster, cw := range width.Graphemes(s.Text()) {
		if cw == 0 {
			continue
		}
		row := content.MustSpan(strings.Repeat(cluster, w/cw), s.Style())
		rows = append(rows, content.NewLine(row))
	}
	return rows
}
