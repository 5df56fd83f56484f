// ABOUTME: Line is an ordered run of Spans forming one terminal row
// ABOUTME: Pad/Truncate/ToExactWidth edit by display width; Equal compares grapheme streams

package content

import (
	"bytes"
	"iter"
	"slices"
	"strings"

	"github.com/mauromedda/pi-console/pkg/tui/terminal"
)

// Side selects the end of a Line that padding is added to.
type Side int

const (
	Left Side = iota
	Right
)

// Line is one terminal row. Mutating methods never write through a
// backing array shared with a copy of the Line.
type Line struct {
	spans []Span
}

// NewLine returns a Line made of spans.
func NewLine(spans ...Span) Line {
	return Line{spans: slices.Clone(spans)}
}

// LineFromText builds an unstyled Line with one span per part.
func LineFromText(parts ...string) (Line, error) {
	spans := make([]Span, 0, len(parts))
	for _, p := range parts {
		s, err := NewUnstyledSpan(p)
		if err != nil {
			return Line{}, err
		}
		spans = append(spans, s)
	}
	return Line{spans: spans}, nil
}

// Spans returns a copy of the line's spans.
func (l Line) Spans() []Span {
	return slices.Clone(l.spans)
}

// Len returns the display width of the line: the sum of its span widths.
func (l Line) Len() int {
	n := 0
	for _, s := range l.spans {
		n += s.width
	}
	return n
}

// IsEmpty reports whether the line occupies no columns.
func (l Line) IsEmpty() bool {
	return l.Len() == 0
}

// Append adds spans to the right end of the line.
func (l *Line) Append(spans ...Span) {
	l.spans = append(l.spans[:len(l.spans):len(l.spans)], spans...)
}

// Prepend adds spans to the left end of the line.
func (l *Line) Prepend(spans ...Span) {
	l.spans = append(slices.Clone(spans), l.spans...)
}

// Pad adds one unstyled run of n spaces to the given side. No-op for n <= 0.
func (l *Line) Pad(side Side, n int) {
	if n <= 0 {
		return
	}
	if side == Left {
		l.Prepend(Padding(n))
		return
	}
	l.Append(Padding(n))
}

// PadLeft is Pad(Left, n).
func (l *Line) PadLeft(n int) { l.Pad(Left, n) }

// PadRight is Pad(Right, n).
func (l *Line) PadRight(n int) { l.Pad(Right, n) }

// Truncate shortens the line to at most maxWidth cells. Spans past the cut
// are dropped; a span straddling it keeps only whole graphemes that fit.
func (l *Line) Truncate(maxWidth int) {
	cur := 0
	for i, s := range l.spans {
		if cur >= maxWidth {
			l.spans = l.spans[:i]
			return
		}
		if cur+s.width > maxWidth {
			l.spans = append(l.spans[:i:i], s.truncate(maxWidth-cur))
			return
		}
		cur += s.width
	}
}

// ToExactWidth pads or truncates the right side so Len() == w. A wide
// grapheme dropped at the cut leaves a gap that is filled with a space.
func (l *Line) ToExactWidth(w int) {
	n := l.Len()
	switch {
	case n < w:
		l.PadRight(w - n)
	case n > w:
		l.Truncate(w)
		l.PadRight(w - l.Len())
	}
}

// Graphemes yields every grapheme of the line, left to right.
func (l Line) Graphemes() iter.Seq[Grapheme] {
	return func(yield func(Grapheme) bool) {
		for _, s := range l.spans {
			for g := range s.Graphemes() {
				if !yield(g) {
					return
				}
			}
		}
	}
}

// Equal reports whether l and o draw identically: the same graphemes in
// the same effective styles, however the spans are chunked.
func (l Line) Equal(o Line) bool {
	next, stop := iter.Pull(o.Graphemes())
	defer stop()
	for g := range l.Graphemes() {
		h, ok := next()
		if !ok || g != h {
			return false
		}
	}
	_, more := next()
	return !more
}

// Clone returns a copy that shares no backing array with l.
func (l Line) Clone() Line {
	return Line{spans: slices.Clone(l.spans)}
}

// String returns the line's text without styling.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l.spans {
		b.WriteString(s.text)
	}
	return b.String()
}

// Render writes the styled line, erases the rest of the row, and moves to
// column 0 of the next row.
func (l Line) Render(b *bytes.Buffer, r *Renderer) {
	for _, s := range l.spans {
		s.render(b, r)
	}
	b.WriteString(terminal.EraseLineRight)
	b.WriteString("\n\r")
}
