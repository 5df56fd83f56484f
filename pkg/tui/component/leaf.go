// ABOUTME: Leaf components: Blank draws nothing, Echo draws lines taken from state, Text draws fixed lines
// ABOUTME: Results are cloned so parents can pad them without touching caller-owned data

package component

import (
	"github.com/mauromedda/pi-console/pkg/tui"
	"github.com/mauromedda/pi-console/pkg/tui/content"
	"github.com/mauromedda/pi-console/pkg/tui/geom"
)

// Blank draws no rows.
type Blank[S any] struct{}

// DrawUnchecked returns nothing.
func (Blank[S]) DrawUnchecked(S, geom.Dimensions, tui.DrawMode) (content.Lines, error) {
	return nil, nil
}

// Echo draws the lines its accessor selects from state.
type Echo[S any] struct {
	get      func(S) content.Lines
	collapse bool
}

// NewEcho returns an Echo reading lines with get. With collapse, the final
// frame is empty.
func NewEcho[S any](get func(S) content.Lines, collapse bool) *Echo[S] {
	return &Echo[S]{get: get, collapse: collapse}
}

// EchoLines is an Echo whose state is the lines themselves.
func EchoLines(collapse bool) *Echo[content.Lines] {
	return NewEcho(func(ls content.Lines) content.Lines { return ls }, collapse)
}

// DrawUnchecked returns a copy of the selected lines.
func (e *Echo[S]) DrawUnchecked(state S, _ geom.Dimensions, mode tui.DrawMode) (content.Lines, error) {
	if mode == tui.ModeFinal && e.collapse {
		return nil, nil
	}
	return e.get(state).Clone(), nil
}

// Text draws a fixed block of lines.
type Text[S any] struct {
	lines content.Lines
}

// NewText returns a Text drawing lines.
func NewText[S any](lines content.Lines) *Text[S] {
	return &Text[S]{lines: lines.Clone()}
}

// TextFromString returns a Text with one row per line of s.
func TextFromString[S any](s string, style content.Style) (*Text[S], error) {
	lines, err := content.LinesFromString(s, style)
	if err != nil {
		return nil, err
	}
	return &Text[S]{lines: lines}, nil
}

// SetLines replaces the displayed lines.
func (t *Text[S]) SetLines(lines content.Lines) {
	t.lines = lines.Clone()
}

// DrawUnchecked returns a copy of the lines.
func (t *Text[S]) DrawUnchecked(S, geom.Dimensions, tui.DrawMode) (content.Lines, error) {
	return t.lines.Clone(), nil
}
