// ABOUTME: Console renders a component tree in place at the bottom of the terminal
// ABOUTME: Lines emitted above the frame scroll into history; Finalize draws the last frame

package tui

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/mauromedda/pi-console/internal/log"
	"github.com/mauromedda/pi-console/pkg/tui/content"
	"github.com/mauromedda/pi-console/pkg/tui/geom"
	"github.com/mauromedda/pi-console/pkg/tui/internal/pool"
	"github.com/mauromedda/pi-console/pkg/tui/output"
	"github.com/mauromedda/pi-console/pkg/tui/terminal"
)

var (
	// ErrNotTerminal is returned by New when the stream is not a TTY.
	ErrNotTerminal = errors.New("output stream is not a terminal")

	// ErrSizeUnavailable is returned when the terminal size cannot be read
	// and no fallback size was configured.
	ErrSizeUnavailable = errors.New("terminal size unavailable")

	// ErrFinalized is returned by a Console used after Finalize.
	ErrFinalized = errors.New("console already finalized")
)

// Console is the render loop for one session. It is not safe for
// concurrent use.
type Console[S any] struct {
	canvas   *Canvas[S]
	queue    content.Lines
	term     terminal.Terminal
	sink     output.Sink
	renderer *content.Renderer
	fallback *geom.Dimensions

	minimumEmit   int
	maxEmitBuffer int
	syncOutput    bool
	finalized     bool
}

// New returns a Console drawing root, or ErrNotTerminal when the output
// is not an interactive terminal.
func New[S any](root Component[S], opts ...Option) (*Console[S], error) {
	c := newConsole(root, opts)
	if c.term == nil || !c.term.IsTerminal() {
		if err := c.sink.Finalize(); err != nil {
			log.Debug("console: releasing sink: %v", err)
		}
		return nil, ErrNotTerminal
	}
	return c, nil
}

// NewForced returns a Console even when the output is not a terminal.
// fallback is used whenever the real size cannot be read.
func NewForced[S any](root Component[S], fallback geom.Dimensions, opts ...Option) *Console[S] {
	return newConsole(root, append([]Option{WithFallbackSize(fallback)}, opts...))
}

func newConsole[S any](root Component[S], opts []Option) *Console[S] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	term := o.term
	if term == nil {
		if f, ok := o.writer.(*os.File); ok {
			term = terminal.NewProcessTerminal(f)
		}
	}

	sink := o.sink
	switch {
	case sink != nil:
	case o.nonBlocking:
		sink = output.NonBlocking(o.writer)
	default:
		sink = output.Blocking(o.writer)
	}

	renderer := content.DetectRenderer(o.writer)
	if o.profile != nil {
		renderer = content.NewRenderer(o.writer, *o.profile)
	}

	return &Console[S]{
		canvas:        NewCanvas(root),
		term:          term,
		sink:          sink,
		renderer:      renderer,
		fallback:      o.fallback,
		minimumEmit:   o.minimumEmit,
		maxEmitBuffer: o.maxEmitBuffer,
		syncOutput:    o.syncOutput,
	}
}

// Emit queues lines to be written above the frame on the next render.
func (c *Console[S]) Emit(lines content.Lines) {
	c.queue = append(c.queue, lines...)
}

// EmitNow queues lines and renders immediately.
func (c *Console[S]) EmitNow(lines content.Lines, state S) error {
	c.Emit(lines)
	return c.Render(state)
}

// Pending returns the number of queued lines not yet written.
func (c *Console[S]) Pending() int { return len(c.queue) }

// Render redraws the frame for state, writing queued lines above it. It
// repeats while the queue keeps shrinking so a small terminal still drains
// a backlog. If the sink is busy the render is skipped.
func (c *Console[S]) Render(state S) error {
	if c.finalized {
		return ErrFinalized
	}
	if !c.sink.ShouldRender() {
		log.Debug("console: sink busy, skipping render")
		return nil
	}
	for {
		before := len(c.queue)
		if err := c.cycle(state, ModeNormal); err != nil {
			return err
		}
		if len(c.queue) == 0 || len(c.queue) == before || !c.sink.ShouldRender() {
			return nil
		}
	}
}

// Finalize draws the final frame below every queued line and closes the
// sink. The Console is unusable afterwards.
func (c *Console[S]) Finalize(state S) error {
	if c.finalized {
		return ErrFinalized
	}
	c.finalized = true
	log.Debug("console: finalizing with %d queued lines", len(c.queue))

	err := c.cycle(state, ModeFinal)
	// A NonBlocking sink reports its stored write error from both calls.
	if ferr := c.sink.Finalize(); ferr != nil && !errors.Is(err, ferr) {
		err = errors.Join(err, fmt.Errorf("finalizing output: %w", ferr))
	}
	return err
}

// Clear erases the current frame from the screen.
func (c *Console[S]) Clear() error {
	if c.finalized {
		return ErrFinalized
	}
	prev := c.canvas.Height()
	buf := pool.GetBytesBuffer()
	defer pool.PutBytesBuffer(buf)

	c.begin(buf)
	c.canvas.Clear(buf)
	c.end(buf)
	if err := c.sink.Output(buf.Bytes()); err != nil {
		c.canvas.restore(prev)
		return err
	}
	return nil
}

func (c *Console[S]) cycle(state S, mode DrawMode) error {
	size, err := c.size()
	if err != nil {
		return err
	}

	prev := c.canvas.Height()
	buf := pool.GetBytesBuffer()
	defer pool.PutBytesBuffer(buf)

	c.begin(buf)
	c.canvas.MoveToTop(buf)
	frame, err := c.canvas.Draw(state, size, mode)
	if err != nil {
		return err
	}

	n := c.emitLimit(size, len(frame), mode)
	c.queue[:n].Render(buf, c.renderer)
	frame.Render(buf, c.renderer)
	buf.WriteString(terminal.EraseScreenBelow)
	c.end(buf)

	if err := c.sink.Output(buf.Bytes()); err != nil {
		c.canvas.restore(prev)
		return err
	}
	c.queue = slices.Delete(c.queue, 0, n)
	return nil
}

// emitLimit returns how many queued lines this cycle writes.
func (c *Console[S]) emitLimit(size geom.Dimensions, frameHeight int, mode DrawMode) int {
	if mode == ModeFinal {
		return len(c.queue)
	}
	if total := c.queue.TotalLength(); total > c.maxEmitBuffer {
		log.Debug("console: flushing oversized queue (%d cells)", total)
		return len(c.queue)
	}
	limit := max(geom.SaturatingSub(size.Height, frameHeight), c.minimumEmit)
	return min(limit, len(c.queue))
}

func (c *Console[S]) size() (geom.Dimensions, error) {
	var err error
	if c.term != nil {
		var w, h int
		w, h, err = c.term.Size()
		if err == nil && w > 0 && h > 0 {
			return geom.New(w, h), nil
		}
	}
	if c.fallback != nil {
		log.Debug("console: using fallback size %v", *c.fallback)
		return *c.fallback, nil
	}
	if err != nil {
		return geom.Dimensions{}, fmt.Errorf("%w: %w", ErrSizeUnavailable, err)
	}
	return geom.Dimensions{}, ErrSizeUnavailable
}

func (c *Console[S]) begin(buf *bytes.Buffer) {
	if c.syncOutput {
		buf.WriteString(terminal.SyncBegin)
	}
}

func (c *Console[S]) end(buf *bytes.Buffer) {
	if c.syncOutput {
		buf.WriteString(terminal.SyncEnd)
	}
}
