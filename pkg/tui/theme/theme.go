// ABOUTME: Theme types: a Palette of semantic content.Style roles plus a glamour style name
// ABOUTME: Palette.BorderSpec restyles the default BorderSpec used by bordered components

package theme

import (
	"github.com/mauromedda/pi-console/pkg/tui/component"
	"github.com/mauromedda/pi-console/pkg/tui/content"
)

// Palette maps semantic roles to span styles.
type Palette struct {
	// Text
	Primary   content.Style
	Secondary content.Style
	Muted     content.Style
	Accent    content.Style

	// Semantic
	Success content.Style
	Warning content.Style
	Error   content.Style
	Info    content.Style

	// Frame
	Border content.Style
	Status content.Style
}

// Theme holds a named palette and the glamour style used for markdown.
type Theme struct {
	Name     string
	Markdown string
	Palette  Palette
}

// BorderSpec returns the default border restyled with the Border role.
func (p Palette) BorderSpec() component.BorderSpec {
	spec := component.DefaultBorderSpec()
	for _, side := range []*content.Span{spec.Left, spec.Right, spec.Top, spec.Bottom} {
		*side = side.WithStyle(p.Border)
	}
	return spec
}

// DefaultPalette uses the 16 basic colors so it reads on any background.
func DefaultPalette() Palette {
	return Palette{
		Primary:   content.Style{},
		Secondary: content.Style{Foreground: "8"},
		Muted:     content.Style{Faint: true},
		Accent:    content.Style{Foreground: "208", Bold: true},

		Success: content.Style{Foreground: "2"},
		Warning: content.Style{Foreground: "3"},
		Error:   content.Style{Foreground: "1"},
		Info:    content.Style{Foreground: "6"},

		Border: content.Style{Foreground: "8"},
		Status: content.Style{Foreground: "3", Italic: true},
	}
}
