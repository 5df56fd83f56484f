// ABOUTME: Tests for Lines measurement and reshaping: padding, justify, shrink, exact dimensions
// ABOUTME: Also checks Clone isolation and frame equality

package content

import (
	"slices"
	"testing"

	"github.com/mauromedda/pi-console/pkg/tui/geom"
)

func mustLines(t *testing.T, s string) Lines {
	t.Helper()
	ls, err := LinesFromString(s, Style{})
	if err != nil {
		t.Fatalf("LinesFromString(%q): %v", s, err)
	}
	return ls
}

func TestLines_Measurements(t *testing.T) {
	t.Parallel()

	ls := mustLines(t, "ab\nhello\n\nx")
	if got := ls.TotalLength(); got != 8 {
		t.Errorf("TotalLength() = %d, want 8", got)
	}
	if got := ls.MaxLineLength(); got != 5 {
		t.Errorf("MaxLineLength() = %d, want 5", got)
	}
	if got := ls.Dimensions(); got != geom.New(5, 4) {
		t.Errorf("Dimensions() = %v, want 5x4", got)
	}
	if got := (Lines{}).Dimensions(); got != geom.New(0, 0) {
		t.Errorf("empty Dimensions() = %v, want 0x0", got)
	}
}

func TestLines_PadTopBottom(t *testing.T) {
	t.Parallel()

	ls := mustLines(t, "a")
	ls.PadTop(2)
	ls.PadBottom(1)

	want := []string{"", "", "a", ""}
	if got := ls.Strings(); !slices.Equal(got, want) {
		t.Errorf("Strings() = %q, want %q", got, want)
	}
}

func TestLines_Justify(t *testing.T) {
	t.Parallel()

	ls := mustLines(t, "a\nabc\n")
	ls.Justify()

	for i, l := range ls {
		if l.Len() != 3 {
			t.Errorf("line %d Len() = %d, want 3", i, l.Len())
		}
	}
}

func TestLines_ShrinkToDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		dims geom.Dimensions
		want []string
	}{
		{name: "larger unchanged", in: "ab\nc", dims: geom.New(10, 10), want: []string{"ab", "c"}},
		{name: "rows dropped", in: "a\nb\nc", dims: geom.New(10, 2), want: []string{"a", "b"}},
		{name: "cols truncated", in: "abcdef\nxy", dims: geom.New(3, 5), want: []string{"abc", "xy"}},
		{name: "zero", in: "abc", dims: geom.New(0, 0), want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ls := mustLines(t, tt.in)
			ls.ShrinkToDimensions(tt.dims)
			if got := ls.Strings(); !slices.Equal(got, tt.want) {
				t.Errorf("Strings() = %q, want %q", got, tt.want)
			}
			if !ls.Dimensions().Fits(tt.dims) {
				t.Errorf("Dimensions() = %v does not fit %v", ls.Dimensions(), tt.dims)
			}
		})
	}
}

func TestLines_SetToExactDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		dims geom.Dimensions
	}{
		{name: "grow", in: "a", dims: geom.New(4, 3)},
		{name: "shrink", in: "abcdef\nb\nc\nd", dims: geom.New(2, 2)},
		{name: "wide cut", in: "你好", dims: geom.New(3, 1)},
		{name: "to zero", in: "abc", dims: geom.New(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ls := mustLines(t, tt.in)
			ls.SetToExactDimensions(tt.dims)
			if len(ls) != tt.dims.Height {
				t.Fatalf("len = %d, want %d", len(ls), tt.dims.Height)
			}
			for i, l := range ls {
				if l.Len() != tt.dims.Width {
					t.Errorf("line %d Len() = %d, want %d", i, l.Len(), tt.dims.Width)
				}
			}
		})
	}
}

func TestLines_CloneIsolated(t *testing.T) {
	t.Parallel()

	orig := mustLines(t, "ab\ncd")
	c := orig.Clone()
	c.PadRight(2)
	c.PadBottom(1)

	if got := orig.Strings(); !slices.Equal(got, []string{"ab", "cd"}) {
		t.Errorf("original modified: %q", got)
	}
	if orig.Equal(c) {
		t.Error("clone edits should make frames differ")
	}
	if !orig.Equal(orig.Clone()) {
		t.Error("clone should equal original")
	}
}
