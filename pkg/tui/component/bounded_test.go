// ABOUTME: Tests for Bounded and Expanding size transformers
// ABOUTME: Bounded never exceeds its cap; Expanding never shrinks below what it has drawn

package component

import (
	"testing"

	"github.com/mauromedda/pi-console/pkg/tui"
	"github.com/mauromedda/pi-console/pkg/tui/content"
	"github.com/mauromedda/pi-console/pkg/tui/geom"
)

func TestBounded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		maxWidth  int
		maxHeight int
		dims      geom.Dimensions
		state     []string
		want      []string
	}{
		{name: "no bounding", maxWidth: 40, maxHeight: 40, dims: geom.New(50, 50), state: []string{"hello world"}, want: []string{"hello world"}},
		{name: "bounding", maxWidth: 2, maxHeight: 1, dims: geom.New(50, 50), state: []string{"hello world", "hello world"}, want: []string{"he"}},
		{name: "outer smaller", maxWidth: 40, maxHeight: 40, dims: geom.New(3, 1), state: []string{"hello", "x"}, want: []string{"hel"}},
		{name: "unbounded axis", maxWidth: geom.Unbounded, maxHeight: 1, dims: geom.New(50, 50), state: []string{"hello world", "x"}, want: []string{"hello world"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var state content.Lines
			for _, s := range tt.state {
				state = append(state, line(t, s))
			}
			var want content.Lines
			for _, s := range tt.want {
				want = append(want, line(t, s))
			}

			c := NewBounded[content.Lines](EchoLines(false), tt.maxWidth, tt.maxHeight)
			got, err := tui.Draw[content.Lines](c, state, tt.dims, tui.ModeNormal)
			if err != nil {
				t.Fatalf("Draw: %v", err)
			}
			assertLines(t, got, want)
			limit := tt.dims.Intersect(geom.New(tt.maxWidth, tt.maxHeight))
			if !got.Dimensions().Fits(limit) {
				t.Errorf("Dimensions() = %v exceeds %v", got.Dimensions(), limit)
			}
		})
	}
}

func TestExpanding_NeverShrinks(t *testing.T) {
	t.Parallel()

	e := NewExpanding[content.Lines](EchoLines(false))
	dims := geom.New(20, 20)

	frames := []content.Lines{
		{line(t, "Hello world"), line(t, "foobar")},
		{line(t, "H"), line(t, "foobar")},
		{line(t, "foobar")},
	}
	for i, state := range frames {
		got, err := tui.Draw[content.Lines](e, state, dims, tui.ModeNormal)
		if err != nil {
			t.Fatalf("frame %d: Draw: %v", i, err)
		}
		want := state.Clone()
		want.SetToExactDimensions(geom.New(11, 2))
		assertLines(t, got, want)
	}
}

func TestExpanding_KeepsHeightAfterGrowth(t *testing.T) {
	t.Parallel()

	e := NewExpanding[content.Lines](EchoLines(false))
	dims := geom.New(20, 20)

	frames := []struct {
		state content.Lines
		want  geom.Dimensions
	}{
		{state: content.Lines{line(t, "a")}, want: geom.New(1, 1)},
		{state: content.Lines{line(t, "a"), line(t, "b"), line(t, "c")}, want: geom.New(1, 3)},
		{state: content.Lines{line(t, "a")}, want: geom.New(1, 3)},
	}
	for i, f := range frames {
		got, err := tui.Draw[content.Lines](e, f.state, dims, tui.ModeNormal)
		if err != nil {
			t.Fatalf("frame %d: Draw: %v", i, err)
		}
		if got.Dimensions() != f.want {
			t.Errorf("frame %d: Dimensions() = %v, want %v", i, got.Dimensions(), f.want)
		}
		want := f.state.Clone()
		want.SetToExactDimensions(f.want)
		assertLines(t, got, want)
	}
}

func TestExpanding_ClippedToBudget(t *testing.T) {
	t.Parallel()

	e := NewExpanding[content.Lines](EchoLines(false))
	if _, err := tui.Draw[content.Lines](e, content.Lines{line(t, "wide line here"), {}, {}}, geom.New(20, 20), tui.ModeNormal); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	got, err := tui.Draw[content.Lines](e, content.Lines{line(t, "a")}, geom.New(5, 2), tui.ModeNormal)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if d := got.Dimensions(); d != geom.New(5, 2) {
		t.Errorf("Dimensions() = %v, want 5x2", d)
	}
	for i, l := range got {
		if l.Len() != 5 {
			t.Errorf("row %d Len() = %d, want 5", i, l.Len())
		}
	}
}
