// ABOUTME: Lines is an ordered run of rows: a rendered frame or a queue of emitted output
// ABOUTME: Provides frame measurements and the row/column reshaping layout components use

package content

import (
	"bytes"
	"slices"

	"github.com/mauromedda/pi-console/pkg/tui/geom"
)

// Lines is a sequence of rows.
type Lines []Line

// TotalLength returns the sum of every line's width.
func (ls Lines) TotalLength() int {
	n := 0
	for _, l := range ls {
		n += l.Len()
	}
	return n
}

// MaxLineLength returns the width of the widest line.
func (ls Lines) MaxLineLength() int {
	w := 0
	for _, l := range ls {
		w = max(w, l.Len())
	}
	return w
}

// Dimensions returns the bounding box: widest line x number of lines.
func (ls Lines) Dimensions() geom.Dimensions {
	return geom.New(ls.MaxLineLength(), len(ls))
}

// PadTop inserts n empty lines before the first line.
func (ls *Lines) PadTop(n int) {
	if n <= 0 {
		return
	}
	*ls = append(make(Lines, n, n+len(*ls)), *ls...)
}

// PadBottom appends n empty lines.
func (ls *Lines) PadBottom(n int) {
	if n <= 0 {
		return
	}
	*ls = append(*ls, make(Lines, n)...)
}

// PadRight pads every line on the right by n cells.
func (ls Lines) PadRight(n int) {
	for i := range ls {
		ls[i].PadRight(n)
	}
}

// PadLeft pads every line on the left by n cells.
func (ls Lines) PadLeft(n int) {
	for i := range ls {
		ls[i].PadLeft(n)
	}
}

// Justify pads every line on the right to the width of the widest line.
func (ls Lines) Justify() {
	w := ls.MaxLineLength()
	for i := range ls {
		ls[i].PadRight(w - ls[i].Len())
	}
}

// ShrinkToDimensions drops rows past d.Height and truncates each row to
// d.Width. Smaller frames are left as they are.
func (ls *Lines) ShrinkToDimensions(d geom.Dimensions) {
	if len(*ls) > d.Height {
		*ls = (*ls)[:d.Height]
	}
	for i := range *ls {
		(*ls)[i].Truncate(d.Width)
	}
}

// SetToExactDimensions reshapes the frame to exactly d: rows are dropped
// or blank rows added, then every row is set to width d.Width.
func (ls *Lines) SetToExactDimensions(d geom.Dimensions) {
	if len(*ls) > d.Height {
		*ls = (*ls)[:d.Height]
	} else {
		ls.PadBottom(d.Height - len(*ls))
	}
	for i := range *ls {
		(*ls)[i].ToExactWidth(d.Width)
	}
}

// Equal reports whether both frames have the same rows, row by row.
func (ls Lines) Equal(o Lines) bool {
	return slices.EqualFunc(ls, o, Line.Equal)
}

// Clone returns a copy whose rows can be edited without touching ls.
func (ls Lines) Clone() Lines {
	if ls == nil {
		return nil
	}
	out := make(Lines, len(ls))
	for i, l := range ls {
		out[i] = l.Clone()
	}
	return out
}

// Strings returns each row's text without styling.
func (ls Lines) Strings() []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.String()
	}
	return out
}

// Render writes every row in order.
func (ls Lines) Render(b *bytes.Buffer, r *Renderer) {
	for _, l := range ls {
		l.Render(b, r)
	}
}
