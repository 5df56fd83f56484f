// ABOUTME: Functional options configuring a Console's stream, sink, terminal, and tuning
// ABOUTME: Defaults: stderr, blocking sink, minimum emit 5, oversize threshold 1,000,000 cells

package tui

import (
	"io"
	"os"

	"github.com/mauromedda/pi-console/pkg/tui/geom"
	"github.com/mauromedda/pi-console/pkg/tui/output"
	"github.com/mauromedda/pi-console/pkg/tui/terminal"
	"github.com/muesli/termenv"
)

const (
	// DefaultMinimumEmit is how many queued lines a render writes even when
	// the frame leaves no room above it.
	DefaultMinimumEmit = 5

	// DefaultMaxEmitBuffer is the total queued width past which a render
	// writes the whole queue at once.
	DefaultMaxEmitBuffer = 1_000_000
)

// Option configures a Console.
type Option func(*options)

type options struct {
	writer        io.Writer
	nonBlocking   bool
	sink          output.Sink
	term          terminal.Terminal
	fallback      *geom.Dimensions
	profile       *termenv.Profile
	minimumEmit   int
	maxEmitBuffer int
	syncOutput    bool
}

func defaultOptions() options {
	return options{
		writer:        os.Stderr,
		minimumEmit:   DefaultMinimumEmit,
		maxEmitBuffer: DefaultMaxEmitBuffer,
	}
}

// WithWriter sets the output stream. If w is an *os.File it is also used
// to query the terminal size, unless WithTerminal is given.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.writer = w }
}

// WithNonBlocking writes frames from a background goroutine.
func WithNonBlocking() Option {
	return func(o *options) { o.nonBlocking = true }
}

// WithSink replaces the output sink. It takes precedence over WithNonBlocking.
func WithSink(s output.Sink) Option {
	return func(o *options) { o.sink = s }
}

// WithTerminal sets where the terminal size and TTY status come from.
func WithTerminal(t terminal.Terminal) Option {
	return func(o *options) { o.term = t }
}

// WithFallbackSize is used when the terminal size cannot be read.
func WithFallbackSize(d geom.Dimensions) Option {
	return func(o *options) { o.fallback = &d }
}

// WithColorProfile fixes the color profile instead of detecting it from
// the stream. termenv.Ascii disables styling.
func WithColorProfile(p termenv.Profile) Option {
	return func(o *options) { o.profile = &p }
}

// WithMinimumEmit sets how many queued lines each render writes at least.
// Values below 1 are ignored.
func WithMinimumEmit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.minimumEmit = n
		}
	}
}

// WithMaxEmitBuffer sets the queued width that triggers a full flush.
// Values below 1 are ignored.
func WithMaxEmitBuffer(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxEmitBuffer = n
		}
	}
}

// WithSynchronizedOutput brackets every write in CSI 2026 begin/end so
// terminals that support it repaint once per cycle.
func WithSynchronizedOutput(on bool) Option {
	return func(o *options) { o.syncOutput = on }
}
