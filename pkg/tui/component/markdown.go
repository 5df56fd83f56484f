// ABOUTME: Markdown renders a markdown string from state with glamour at the width budget
// ABOUTME: Caches parsed lines keyed by content hash + width, bounded in size

package component

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mauromedda/pi-console/pkg/tui"
	"github.com/mauromedda/pi-console/pkg/tui/content"
	"github.com/mauromedda/pi-console/pkg/tui/geom"
	"github.com/muesli/termenv"
)

const (
	// maxWrap is the widest word-wrap handed to glamour.
	maxWrap = 1 << 12

	// maxCached bounds the render cache; a full cache is dropped wholesale.
	maxCached = 32
)

// Markdown draws rendered markdown. Colors are parsed into span styles, so
// the console's renderer decides how they reach the terminal.
type Markdown[S any] struct {
	get   func(S) string
	style string
	cache map[string]content.Lines // "hash:width" -> parsed
}

// NewMarkdown returns a Markdown reading its source with get. style names
// a glamour standard style ("dark", "light", "notty", ...); empty means "dark".
func NewMarkdown[S any](get func(S) string, style string) *Markdown[S] {
	if style == "" {
		style = "dark"
	}
	return &Markdown[S]{get: get, style: style, cache: make(map[string]content.Lines)}
}

// DrawUnchecked renders the markdown wrapped to dims.Width.
func (m *Markdown[S]) DrawUnchecked(state S, dims geom.Dimensions, _ tui.DrawMode) (content.Lines, error) {
	md := m.get(state)
	if md == "" || dims.Width == 0 {
		return nil, nil
	}
	wrap := min(dims.Width, maxWrap)

	key := cacheKey(md, wrap)
	if cached, ok := m.cache[key]; ok {
		return cached.Clone(), nil
	}

	lines, err := m.render(md, wrap)
	if err != nil {
		return nil, err
	}
	if len(m.cache) >= maxCached {
		clear(m.cache)
	}
	m.cache[key] = lines
	return lines.Clone(), nil
}

func (m *Markdown[S]) render(md string, wrap int) (content.Lines, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithColorProfile(termenv.TrueColor),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	// Trim the blank margin glamour adds around the document
	rendered = strings.Trim(rendered, "\n")
	rendered = strings.ReplaceAll(rendered, "\t", "    ")
	return content.ParseANSILossy(rendered), nil
}

// cacheKey produces a string key from content hash and width.
func cacheKey(source string, width int) string {
	h := sha256.Sum256([]byte(source))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
