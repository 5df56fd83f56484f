// ABOUTME: CLI entry point for the pi-console greeter demo
// ABOUTME: Parses flags, loads console settings, and runs the greeter until done or interrupted

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/mauromedda/pi-console/internal/config"
	pilog "github.com/mauromedda/pi-console/internal/log"
	"github.com/mauromedda/pi-console/pkg/tui"
	"github.com/mauromedda/pi-console/pkg/tui/geom"
	"github.com/mauromedda/pi-console/pkg/tui/theme"
)

var version = "dev"

// defaultFallback is the size used by --force when settings give none.
var defaultFallback = geom.New(80, 24)

func main() {
	args, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("pi-console-demo %s\n", version)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, args, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args cliArgs, out io.Writer, extra ...tui.Option) error {
	settings, err := config.Load(args.configDir)
	if err != nil {
		return err
	}

	level, _ := settings.Level()
	if args.verbose {
		level = pilog.LevelDebug
	}
	pilog.SetLevel(level)

	name := settings.Theme
	if args.theme != "" {
		name = args.theme
	}
	th, err := theme.Resolve(name)
	if err != nil {
		return fmt.Errorf("loading theme: %w", err)
	}
	theme.Set(th)
	pilog.Debug("demo: using theme %q", th.Name)

	opts := append([]tui.Option{tui.WithWriter(out)}, settings.Options()...)
	opts = append(opts, extra...)

	root := newRoot(th)
	var console *tui.Console[greeterState]
	if args.force {
		fallback, ok := settings.Fallback()
		if !ok {
			fallback = defaultFallback
		}
		console = tui.NewForced(root, fallback, opts...)
	} else {
		console, err = tui.New(root, opts...)
		if errors.Is(err, tui.ErrNotTerminal) {
			return fmt.Errorf("%w (use --force to draw anyway)", err)
		}
		if err != nil {
			return err
		}
	}

	return greet(ctx, console, args.names, args.delay, time.Now)
}
