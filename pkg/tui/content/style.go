// ABOUTME: Style is the comparable styling payload of a Span; Renderer turns it into SGR
// ABOUTME: Rendering goes through a lipgloss renderer with an explicit termenv color profile

package content

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/pi-console/pkg/tui/internal/ansitrack"
	"github.com/mauromedda/pi-console/pkg/tui/width"
	"github.com/muesli/termenv"
)

// Style describes how a run of text is drawn. The zero Style is unstyled.
// Colors are lipgloss color specs ("1", "208", "#ff8800"); empty means the
// terminal default.
type Style struct {
	Foreground    lipgloss.Color
	Background    lipgloss.Color
	Bold          bool
	Faint         bool
	Italic        bool
	Underline     bool
	Blink         bool
	Reverse       bool
	Strikethrough bool
	// Conceal hides the text; it is drawn as blank cells of the same width.
	Conceal bool
}

// IsZero reports whether s carries no styling.
func (s Style) IsZero() bool {
	return s == Style{}
}

// blank returns the style as it appears on a space. Foreground color and
// glyph-shape attributes are invisible on an empty cell.
func (s Style) blank() Style {
	s.Foreground = ""
	s.Bold = false
	s.Faint = false
	s.Italic = false
	s.Blink = false
	s.Conceal = false
	return s
}

// concealed is the style of the blank cells standing in for hidden text.
func (s Style) concealed() Style {
	s = s.blank()
	s.Underline = false
	s.Strikethrough = false
	return s
}

func styleFromState(st ansitrack.State) Style {
	return Style{
		Foreground:    lipgloss.Color(st.Foreground),
		Background:    lipgloss.Color(st.Background),
		Bold:          st.Bold,
		Faint:         st.Dim,
		Italic:        st.Italic,
		Underline:     st.Underline,
		Blink:         st.Blink,
		Reverse:       st.Reverse,
		Strikethrough: st.Strikethrough,
		Conceal:       st.Hidden,
	}
}

// Renderer converts styled spans to terminal bytes for one output stream.
// It memoizes lipgloss styles and is not safe for concurrent use.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[Style]lipgloss.Style
}

// NewRenderer returns a Renderer for w that emits colors for profile.
// termenv.Ascii produces plain text with no escape sequences.
func NewRenderer(w io.Writer, profile termenv.Profile) *Renderer {
	lg := lipgloss.NewRenderer(w)
	lg.SetColorProfile(profile)
	return &Renderer{lg: lg, styles: make(map[Style]lipgloss.Style)}
}

// DetectRenderer returns a Renderer whose color profile is detected from w.
func DetectRenderer(w io.Writer) *Renderer {
	return &Renderer{lg: lipgloss.NewRenderer(w), styles: make(map[Style]lipgloss.Style)}
}

// Profile returns the color profile in use.
func (r *Renderer) Profile() termenv.Profile {
	return r.lg.ColorProfile()
}

// Render returns text wrapped in the escape sequences for s.
func (r *Renderer) Render(s Style, text string) string {
	if s.Conceal {
		text, s = strings.Repeat(" ", width.VisibleWidth(text)), s.concealed()
	}
	if s.IsZero() || text == "" {
		return text
	}
	ls, ok := r.styles[s]
	if !ok {
		ls = r.lipgloss(s)
		r.styles[s] = ls
	}
	return ls.Render(text)
}

func (r *Renderer) lipgloss(s Style) lipgloss.Style {
	ls := r.lg.NewStyle().
		Bold(s.Bold).
		Faint(s.Faint).
		Italic(s.Italic).
		Underline(s.Underline).
		Blink(s.Blink).
		Reverse(s.Reverse).
		Strikethrough(s.Strikethrough)
	if s.Foreground != "" {
		ls = ls.Foreground(s.Foreground)
	}
	if s.Background != "" {
		ls = ls.Background(s.Background)
	}
	return ls
}
