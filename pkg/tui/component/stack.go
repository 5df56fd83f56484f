// ABOUTME: Stack draws child components top to bottom as one frame
// ABOUTME: Each child gets the rows its predecessors left unused

package component

import (
	"github.com/mauromedda/pi-console/pkg/tui"
	"github.com/mauromedda/pi-console/pkg/tui/content"
	"github.com/mauromedda/pi-console/pkg/tui/geom"
)

// Stack holds an ordered list of child components.
type Stack[S any] struct {
	children []tui.Component[S]
}

// NewStack returns a Stack of children.
func NewStack[S any](children ...tui.Component[S]) *Stack[S] {
	return &Stack[S]{children: children}
}

// Add appends a component to the stack.
func (s *Stack[S]) Add(c tui.Component[S]) {
	s.children = append(s.children, c)
}

// Len returns the number of children.
func (s *Stack[S]) Len() int { return len(s.children) }

// DrawUnchecked draws every child in order until the height is used up.
func (s *Stack[S]) DrawUnchecked(state S, dims geom.Dimensions, mode tui.DrawMode) (content.Lines, error) {
	var out content.Lines
	for _, child := range s.children {
		remaining := dims.Shrink(0, len(out))
		if remaining.Height == 0 {
			break
		}
		lines, err := tui.Draw(child, state, remaining, mode)
		if err != nil {
			return nil, err
		}
		out = append(out, lines...)
	}
	return out, nil
}
