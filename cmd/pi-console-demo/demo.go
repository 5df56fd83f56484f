// ABOUTME: Greeter demo: emits one greeting per person above a live, bordered status frame
// ABOUTME: The frame collapses to a one-line summary when the console is finalized

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/mauromedda/pi-console/internal/log"
	"github.com/mauromedda/pi-console/pkg/tui"
	"github.com/mauromedda/pi-console/pkg/tui/component"
	"github.com/mauromedda/pi-console/pkg/tui/content"
	"github.com/mauromedda/pi-console/pkg/tui/geom"
	"github.com/mauromedda/pi-console/pkg/tui/theme"
)

const helpMarkdown = "Greeting **everyone** on the list. Press `Ctrl-C` to stop early."

// greeterState is what the frame is drawn from.
type greeterState struct {
	current string
	done    int
	total   int
	started time.Time
	now     time.Time
}

func (s greeterState) status() string {
	if s.current == "" {
		return fmt.Sprintf("waiting (%d/%d)", s.done, s.total)
	}
	return fmt.Sprintf("greeting %s (%d/%d)", s.current, s.done, s.total)
}

// summary is the single row left behind by the final frame.
func (s greeterState) summary() content.Lines {
	text := fmt.Sprintf("greeted %d of %d in %s", s.done, s.total, s.now.Sub(s.started).Round(time.Millisecond))
	return content.Lines{content.NewLine(content.NewSpanLossy(text, theme.Current().Palette.Success))}
}

// newRoot builds the live frame from th: a bordered status box over a help
// text, replaced by a summary in the final frame.
func newRoot(th *theme.Theme) tui.Component[greeterState] {
	status := component.NewParagraph(func(s greeterState) string { return s.status() }, th.Palette.Status)
	help := component.NewMarkdown(func(greeterState) string { return helpMarkdown }, th.Markdown)

	live := component.NewStack[greeterState](
		component.NewBordered[greeterState](component.NewExpanding[greeterState](status), th.Palette.BorderSpec()),
		component.NewBounded[greeterState](help, geom.Unbounded, 3),
	)
	final := component.NewEcho(func(s greeterState) content.Lines { return s.summary() }, false)

	return tui.ComponentFunc[greeterState](func(s greeterState, dims geom.Dimensions, mode tui.DrawMode) (content.Lines, error) {
		if mode == tui.ModeFinal {
			return tui.Draw[greeterState](final, s, dims, mode)
		}
		return tui.Draw[greeterState](live, s, dims, mode)
	})
}

func greeting(name string) content.Lines {
	p := theme.Current().Palette
	line := content.NewLine(
		content.MustSpan("Hello, ", p.Primary),
		content.NewSpanLossy(name, p.Accent),
		content.MustSpan("!", p.Primary),
	)
	return content.Lines{line}
}

type clock func() time.Time

// greet emits one greeting per name, redrawing the frame in between, and
// finalizes the console when done or when ctx is canceled.
func greet(ctx context.Context, c *tui.Console[greeterState], names []string, delay time.Duration, now clock) error {
	state := greeterState{total: len(names), started: now(), now: now()}

	var runErr error
loop:
	for _, name := range names {
		state.current, state.now = name, now()
		if err := c.Render(state); err != nil {
			runErr = err
			break
		}

		select {
		case <-ctx.Done():
			log.Debug("demo: interrupted after %d greetings", state.done)
			break loop
		case <-time.After(delay):
		}

		state.done++
		state.now = now()
		if err := c.EmitNow(greeting(name), state); err != nil {
			runErr = err
			break
		}
	}

	state.current, state.now = "", now()
	if err := c.Finalize(state); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
