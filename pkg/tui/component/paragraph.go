// ABOUTME: Paragraph word-wraps a string from state to the width budget
// ABOUTME: Tabs and control characters are replaced so any text can be drawn

package component

import (
	"github.com/mauromedda/pi-console/pkg/tui"
	"github.com/mauromedda/pi-console/pkg/tui/content"
	"github.com/mauromedda/pi-console/pkg/tui/geom"
	"github.com/mauromedda/pi-console/pkg/tui/width"
)

// Paragraph draws wrapped text in one style.
type Paragraph[S any] struct {
	get   func(S) string
	Style content.Style
}

// NewParagraph returns a Paragraph reading its text with get.
func NewParagraph[S any](get func(S) string, style content.Style) *Paragraph[S] {
	return &Paragraph[S]{get: get, Style: style}
}

// DrawUnchecked wraps the text to dims.Width.
func (p *Paragraph[S]) DrawUnchecked(state S, dims geom.Dimensions, _ tui.DrawMode) (content.Lines, error) {
	rows := width.Wrap(p.get(state), dims.Width)
	out := make(content.Lines, 0, len(rows))
	for _, row := range rows {
		if row == "" {
			out = append(out, content.Line{})
			continue
		}
		out = append(out, content.NewLine(content.NewSpanLossy(row, p.Style)))
	}
	return out, nil
}
