// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

import (
	"slices"

	"github.com/mauromedda/pi-console/pkg/tui/content"
)

var builtins = map[string]*Theme{
	"default": {
		Name:     "default",
		Markdown: "dark",
		Palette:  DefaultPalette(),
	},
	"dark": {
		Name:     "dark",
		Markdown: "dark",
		Palette: Palette{
			Primary:   content.Style{Foreground: "15"},
			Secondary: content.Style{Foreground: "8"},
			Muted:     content.Style{Faint: true},
			Accent:    content.Style{Foreground: "#7dcfff", Bold: true},

			Success: content.Style{Foreground: "114"},
			Warning: content.Style{Foreground: "221"},
			Error:   content.Style{Foreground: "203"},
			Info:    content.Style{Foreground: "117"},

			Border: content.Style{Foreground: "240"},
			Status: content.Style{Foreground: "221", Italic: true},
		},
	},
	"light": {
		Name:     "light",
		Markdown: "light",
		Palette: Palette{
			Primary:   content.Style{Foreground: "0"},
			Secondary: content.Style{Foreground: "7"},
			Muted:     content.Style{Faint: true},
			Accent:    content.Style{Foreground: "166", Bold: true},

			Success: content.Style{Foreground: "28"},
			Warning: content.Style{Foreground: "130"},
			Error:   content.Style{Foreground: "160"},
			Info:    content.Style{Foreground: "25"},

			Border: content.Style{Foreground: "249"},
			Status: content.Style{Foreground: "130", Italic: true},
		},
	},
	"monochrome": {
		Name:     "monochrome",
		Markdown: "ascii",
		Palette: Palette{
			Muted:  content.Style{Faint: true},
			Accent: content.Style{Bold: true},
			Error:  content.Style{Bold: true, Underline: true},
			Status: content.Style{Italic: true},
		},
	},
}

// Builtin returns a copy of the named built-in theme.
func Builtin(name string) (*Theme, bool) {
	t, ok := builtins[name]
	if !ok {
		return nil, false
	}
	c := *t
	return &c, true
}

// BuiltinNames returns the built-in theme names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
