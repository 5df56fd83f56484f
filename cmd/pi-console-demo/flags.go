// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --names, --delay, --force, --config-dir, --theme, --verbose, --version

package main

import (
	"flag"
	"strings"
	"time"
)

type cliArgs struct {
	names     []string
	delay     time.Duration
	force     bool
	configDir string
	theme     string
	verbose   bool
	version   bool
}

func parseFlags(fs *flag.FlagSet, argv []string) (cliArgs, error) {
	var args cliArgs
	var names string

	fs.StringVar(&names, "names", "Alice,Bob,Carol,Dave,Eve,Mallory,Trent", "Comma-separated people to greet")
	fs.DurationVar(&args.delay, "delay", 150*time.Millisecond, "Pause between greetings")
	fs.BoolVar(&args.force, "force", false, "Draw even when stderr is not a terminal")
	fs.StringVar(&args.configDir, "config-dir", ".", "Project root holding .pi-console/console.yaml")
	fs.StringVar(&args.theme, "theme", "", "Built-in theme name or path to a YAML theme (overrides settings)")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	for _, n := range strings.Split(names, ",") {
		if n = strings.TrimSpace(n); n != "" {
			args.names = append(args.names, n)
		}
	}
	return args, nil
}
