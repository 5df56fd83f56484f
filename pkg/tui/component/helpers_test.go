// ABOUTME: Shared helpers for component tests: building lines from text parts
// ABOUTME: Also a component that always fails, for error propagation checks

package component

import (
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/pi-console/pkg/tui"
	"github.com/mauromedda/pi-console/pkg/tui/content"
	"github.com/mauromedda/pi-console/pkg/tui/geom"
)

// line builds an unstyled line with one span per part.
func line(t *testing.T, parts ...string) content.Line {
	t.Helper()
	l, err := content.LineFromText(parts...)
	if err != nil {
		t.Fatalf("LineFromText(%q): %v", parts, err)
	}
	return l
}

func spaces(n int) string { return strings.Repeat(" ", n) }

func assertLines(t *testing.T, got, want content.Lines) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("lines mismatch\n got: %q\nwant: %q", got.Strings(), want.Strings())
	}
}

var errFailing = errors.New("child failed")

// failing is a component that always returns errFailing.
type failing[S any] struct{}

func (failing[S]) DrawUnchecked(S, geom.Dimensions, tui.DrawMode) (content.Lines, error) {
	return nil, errFailing
}
