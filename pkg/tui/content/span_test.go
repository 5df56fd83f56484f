// ABOUTME: Tests for Span construction: validation errors, NFC normalization, display width
// ABOUTME: Also covers lossy construction and per-grapheme effective styles

package content

import (
	"errors"
	"testing"
)

func TestNewSpan_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{name: "plain", text: "hello world"},
		{name: "empty", text: ""},
		{name: "wide", text: "你好"},
		{name: "newline", text: "a\nb", wantErr: ErrInvalidWhitespace},
		{name: "tab", text: "a\tb", wantErr: ErrInvalidWhitespace},
		{name: "carriage return", text: "a\rb", wantErr: ErrInvalidWhitespace},
		{name: "escape", text: "\x1b[31mred", wantErr: ErrControlCharacter},
		{name: "bell", text: "ding\a", wantErr: ErrControlCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewUnstyledSpan(tt.text)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("NewUnstyledSpan(%q) unexpected error: %v", tt.text, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewUnstyledSpan(%q) error = %v, want %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestSpan_Len(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "ascii", text: "hello", want: 5},
		{name: "cjk", text: "你好", want: 4},
		{name: "emoji", text: "\U0001F9B6", want: 2},
		{name: "empty", text: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := MustSpan(tt.text, Style{}).Len(); got != tt.want {
				t.Errorf("Len(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestNewSpan_NormalizesNFC(t *testing.T) {
	t.Parallel()

	decomposed := MustSpan("cafe\u0301", Style{})
	composed := MustSpan("caf\u00e9", Style{})

	if decomposed.Text() != composed.Text() {
		t.Errorf("Text() = %q, want %q", decomposed.Text(), composed.Text())
	}
	if decomposed.Len() != 4 {
		t.Errorf("Len() = %d, want 4", decomposed.Len())
	}
}

func TestNewSpanLossy(t *testing.T) {
	t.Parallel()

	s := NewSpanLossy("a\tb\x1bc\n", Style{Bold: true})
	if got := s.Text(); got != "a bc " {
		t.Errorf("Text() = %q, want %q", got, "a bc ")
	}
	if !s.Style().Bold {
		t.Error("lossy span lost its style")
	}
}

func TestMustSpan_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("MustSpan with a newline should panic")
		}
	}()
	MustSpan("a\nb", Style{})
}

func TestPadding(t *testing.T) {
	t.Parallel()

	if got := Padding(3); got.Text() != "   " || got.Len() != 3 || !got.Style().IsZero() {
		t.Errorf("Padding(3) = %q/%d/%v", got.Text(), got.Len(), got.Style())
	}
	if got := Padding(-1); got.Len() != 0 {
		t.Errorf("Padding(-1).Len() = %d, want 0", got.Len())
	}
}

func TestSpan_GraphemesBlankStyle(t *testing.T) {
	t.Parallel()

	style := Style{Foreground: "1", Background: "4", Bold: true, Underline: true}
	var got []Grapheme
	for g := range MustSpan("a b", style).Graphemes() {
		got = append(got, g)
	}

	if len(got) != 3 {
		t.Fatalf("got %d graphemes, want 3", len(got))
	}
	if got[0].Style != style {
		t.Errorf("letter style = %+v, want %+v", got[0].Style, style)
	}
	want := Style{Background: "4", Underline: true}
	if got[1].Style != want {
		t.Errorf("space style = %+v, want %+v", got[1].Style, want)
	}
}
