// ABOUTME: YAML theme file loading; unset roles inherit from the default palette
// ABOUTME: Resolve accepts either a built-in theme name or a path to a theme file

package theme

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/pi-console/pkg/tui/content"
	"gopkg.in/yaml.v3"
)

// fileStyle is the on-disk form of a content.Style.
type fileStyle struct {
	Fg            string `yaml:"fg"`
	Bg            string `yaml:"bg"`
	Bold          bool   `yaml:"bold"`
	Faint         bool   `yaml:"faint"`
	Italic        bool   `yaml:"italic"`
	Underline     bool   `yaml:"underline"`
	Blink         bool   `yaml:"blink"`
	Reverse       bool   `yaml:"reverse"`
	Strikethrough bool   `yaml:"strikethrough"`
}

func (f fileStyle) style() content.Style {
	return content.Style{
		Foreground:    lipgloss.Color(f.Fg),
		Background:    lipgloss.Color(f.Bg),
		Bold:          f.Bold,
		Faint:         f.Faint,
		Italic:        f.Italic,
		Underline:     f.Underline,
		Blink:         f.Blink,
		Reverse:       f.Reverse,
		Strikethrough: f.Strikethrough,
	}
}

type fileTheme struct {
	Name     string                `yaml:"name"`
	Markdown string                `yaml:"markdown"`
	Palette  map[string]*fileStyle `yaml:"palette"`
}

// LoadFile reads a YAML theme file and returns a Theme.
// Roles missing from the file keep their DefaultPalette values.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var ft fileTheme
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	p := DefaultPalette()
	roles := p.roles()
	for name, fs := range ft.Palette {
		dst, ok := roles[name]
		if !ok {
			return nil, fmt.Errorf("parsing theme file: unknown role %q", name)
		}
		if fs != nil {
			*dst = fs.style()
		}
	}

	t := &Theme{Name: ft.Name, Markdown: ft.Markdown, Palette: p}
	if t.Markdown == "" {
		t.Markdown = "dark"
	}
	return t, nil
}

// Resolve returns the built-in theme called nameOrPath, or loads it as a
// file. The empty string resolves to the default theme.
func Resolve(nameOrPath string) (*Theme, error) {
	if nameOrPath == "" {
		nameOrPath = "default"
	}
	if t, ok := Builtin(nameOrPath); ok {
		return t, nil
	}
	return LoadFile(nameOrPath)
}

func (p *Palette) roles() map[string]*content.Style {
	return map[string]*content.Style{
		"primary":   &p.Primary,
		"secondary": &p.Secondary,
		"muted":     &p.Muted,
		"accent":    &p.Accent,
		"success":   &p.Success,
		"warning":   &p.Warning,
		"error":     &p.Error,
		"info":      &p.Info,
		"border":    &p.Border,
		"status":    &p.Status,
	}
}
