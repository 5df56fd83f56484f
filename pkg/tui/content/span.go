// ABOUTME: Span is one uniformly styled run of text on a single row
// ABOUTME: Length is display width in cells, measured per grapheme cluster

package content

import (
	"bytes"
	"fmt"
	"iter"
	"strings"
	"unicode"

	"github.com/mauromedda/pi-console/pkg/tui/width"
	"golang.org/x/text/unicode/norm"
)

// Span is a run of text with one Style. Text is stored NFC-normalized and
// never contains newlines, tabs, or control characters.
type Span struct {
	text  string
	style Style
	width int
}

// Grapheme is one cluster of a Span together with the style it is drawn in.
type Grapheme struct {
	Text  string
	Style Style
}

// NewSpan validates text and returns a Span drawn in style.
func NewSpan(text string, style Style) (Span, error) {
	if err := validate(text); err != nil {
		return Span{}, err
	}
	return newSpan(text, style), nil
}

// NewUnstyledSpan is NewSpan with the zero Style.
func NewUnstyledSpan(text string) (Span, error) {
	return NewSpan(text, Style{})
}

// MustSpan is like NewSpan but panics on invalid text. For literals.
func MustSpan(text string, style Style) Span {
	s, err := NewSpan(text, style)
	if err != nil {
		panic(err)
	}
	return s
}

// NewSpanLossy replaces forbidden whitespace with a space and drops other
// control characters instead of failing.
func NewSpanLossy(text string, style Style) Span {
	if validate(text) == nil {
		return newSpan(text, style)
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == ' ':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return newSpan(b.String(), style)
}

// Padding returns an unstyled span of n spaces.
func Padding(n int) Span {
	if n <= 0 {
		return Span{}
	}
	return Span{text: strings.Repeat(" ", n), width: n}
}

func newSpan(text string, style Style) Span {
	text = norm.NFC.String(text)
	return Span{text: text, style: style, width: width.VisibleWidth(text)}
}

func validate(text string) error {
	for _, r := range text {
		if r == ' ' {
			continue
		}
		if unicode.IsSpace(r) {
			return fmt.Errorf("%w: %q", ErrInvalidWhitespace, text)
		}
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: %q", ErrControlCharacter, text)
		}
	}
	return nil
}

// Text returns the span's content.
func (s Span) Text() string { return s.text }

// Style returns the span's style.
func (s Span) Style() Style { return s.style }

// Len returns the display width of the span in cells.
func (s Span) Len() int { return s.width }

// WithStyle returns a copy of s drawn in style.
func (s Span) WithStyle(style Style) Span {
	s.style = style
	return s
}

// Graphemes yields each grapheme cluster with its effective style. Spaces
// report the style they visibly carry, so equality ignores invisible
// foreground attributes on blank cells.
func (s Span) Graphemes() iter.Seq[Grapheme] {
	return func(yield func(Grapheme) bool) {
		blank := s.style.blank()
		for cluster := range width.Graphemes(s.text) {
			style := s.style
			if cluster == " " {
				style = blank
			}
			if !yield(Grapheme{Text: cluster, Style: style}) {
				return
			}
		}
	}
}

// truncate keeps whole graphemes up to maxWidth cells.
func (s Span) truncate(maxWidth int) Span {
	s.text, s.width = width.Truncate(s.text, maxWidth)
	return s
}

func (s Span) render(b *bytes.Buffer, r *Renderer) {
	b.WriteString(r.Render(s.style, s.text))
}
