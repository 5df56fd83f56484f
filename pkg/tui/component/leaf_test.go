// ABOUTME: Tests for leaf and composite components: Blank, Echo, Text, Paragraph, Stack
// ABOUTME: Verifies cloning, collapse on final frames, wrapping, and row budgeting

package component

import (
	"errors"
	"slices"
	"testing"

	"github.com/mauromedda/pi-console/pkg/tui"
	"github.com/mauromedda/pi-console/pkg/tui/content"
	"github.com/mauromedda/pi-console/pkg/tui/geom"
)

func TestBlank(t *testing.T) {
	t.Parallel()

	got, err := tui.Draw[string](Blank[string]{}, "ignored", geom.New(10, 10), tui.ModeNormal)
	if err != nil || len(got) != 0 {
		t.Errorf("Blank = %q, %v; want no rows", got.Strings(), err)
	}
}

func TestEcho_ClonesState(t *testing.T) {
	t.Parallel()

	state := content.Lines{line(t, "ab")}
	got, err := tui.Draw[content.Lines](EchoLines(false), state, geom.New(10, 10), tui.ModeNormal)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	got.PadRight(3)
	got.PadBottom(1)

	if state[0].String() != "ab" || len(state) != 1 {
		t.Errorf("state modified through Echo output: %q", state.Strings())
	}
}

func TestEcho_Collapse(t *testing.T) {
	t.Parallel()

	state := content.Lines{line(t, "x")}
	tests := []struct {
		name     string
		collapse bool
		mode     tui.DrawMode
		wantRows int
	}{
		{name: "normal", collapse: true, mode: tui.ModeNormal, wantRows: 1},
		{name: "final collapsed", collapse: true, mode: tui.ModeFinal, wantRows: 0},
		{name: "final kept", collapse: false, mode: tui.ModeFinal, wantRows: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tui.Draw[content.Lines](EchoLines(tt.collapse), state, geom.New(5, 5), tt.mode)
			if err != nil {
				t.Fatalf("Draw: %v", err)
			}
			if len(got) != tt.wantRows {
				t.Errorf("rows = %d, want %d", len(got), tt.wantRows)
			}
		})
	}
}

func TestEcho_Accessor(t *testing.T) {
	t.Parallel()

	type app struct{ status content.Lines }
	e := NewEcho(func(a app) content.Lines { return a.status }, false)

	got, err := tui.Draw[app](e, app{status: content.Lines{line(t, "busy")}}, geom.New(2, 5), tui.ModeNormal)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	assertLines(t, got, content.Lines{line(t, "bu")})
}

func TestText(t *testing.T) {
	t.Parallel()

	txt, err := TextFromString[int]("hello\nworld", content.Style{})
	if err != nil {
		t.Fatalf("TextFromString: %v", err)
	}
	got, err := tui.Draw[int](txt, 0, geom.New(80, 24), tui.ModeNormal)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if !slices.Equal(got.Strings(), []string{"hello", "world"}) {
		t.Errorf("Strings() = %q", got.Strings())
	}

	txt.SetLines(content.Lines{line(t, "new")})
	got, _ = tui.Draw[int](txt, 0, geom.New(80, 24), tui.ModeNormal)
	if !slices.Equal(got.Strings(), []string{"new"}) {
		t.Errorf("after SetLines Strings() = %q", got.Strings())
	}

	if _, err := TextFromString[int]("tab\there", content.Style{}); !errors.Is(err, content.ErrInvalidWhitespace) {
		t.Errorf("TextFromString error = %v, want ErrInvalidWhitespace", err)
	}
}

func TestParagraph_Wraps(t *testing.T) {
	t.Parallel()

	p := NewParagraph(func(s string) string { return s }, content.Style{Italic: true})
	got, err := tui.Draw[string](p, "the quick brown fox\n\njumps", geom.New(10, 10), tui.ModeNormal)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}

	want := []string{"the quick", "brown fox", "", "jumps"}
	if !slices.Equal(got.Strings(), want) {
		t.Errorf("Strings() = %q, want %q", got.Strings(), want)
	}
	if !got[0].Spans()[0].Style().Italic {
		t.Error("paragraph style not applied")
	}
}

func TestParagraph_ReplacesTabs(t *testing.T) {
	t.Parallel()

	p := NewParagraph(func(s string) string { return s }, content.Style{})
	got, err := tui.Draw[string](p, "a\tb", geom.New(10, 10), tui.ModeNormal)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if !slices.Equal(got.Strings(), []string{"a b"}) {
		t.Errorf("Strings() = %q", got.Strings())
	}
}

func TestStack(t *testing.T) {
	t.Parallel()

	header, _ := TextFromString[content.Lines]("header", content.Style{})
	s := NewStack[content.Lines](header)
	s.Add(EchoLines(false))
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	state := content.Lines{line(t, "one"), line(t, "two"), line(t, "three")}
	got, err := tui.Draw[content.Lines](s, state, geom.New(10, 3), tui.ModeNormal)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if want := []string{"header", "one", "two"}; !slices.Equal(got.Strings(), want) {
		t.Errorf("Strings() = %q, want %q", got.Strings(), want)
	}
}

func TestStack_PropagatesError(t *testing.T) {
	t.Parallel()

	s := NewStack[int](Blank[int]{}, failing[int]{})
	if _, err := tui.Draw[int](s, 0, geom.New(5, 5), tui.ModeNormal); !errors.Is(err, errFailing) {
		t.Errorf("error = %v, want %v", err, errFailing)
	}
}
