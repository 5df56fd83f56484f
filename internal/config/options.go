// ABOUTME: Validation of Settings and their mapping onto console options
// ABOUTME: Zero values keep the console defaults

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mauromedda/pi-console/internal/log"
	"github.com/mauromedda/pi-console/pkg/tui"
	"github.com/mauromedda/pi-console/pkg/tui/geom"
	"github.com/muesli/termenv"
)

// ErrInvalidSettings is wrapped by every Validate failure.
var ErrInvalidSettings = errors.New("invalid console settings")

var colorProfiles = map[string]termenv.Profile{
	"ascii":     termenv.Ascii,
	"ansi":      termenv.ANSI,
	"ansi256":   termenv.ANSI256,
	"truecolor": termenv.TrueColor,
}

// Validate reports the first inconsistent field.
func (s *Settings) Validate() error {
	if s.FallbackWidth < 0 || s.FallbackHeight < 0 {
		return fmt.Errorf("%w: fallback size %dx%d is negative", ErrInvalidSettings, s.FallbackWidth, s.FallbackHeight)
	}
	if (s.FallbackWidth == 0) != (s.FallbackHeight == 0) {
		return fmt.Errorf("%w: fallback_width and fallback_height must be set together", ErrInvalidSettings)
	}
	if s.MinimumEmit < 0 {
		return fmt.Errorf("%w: minimum_emit %d is negative", ErrInvalidSettings, s.MinimumEmit)
	}
	if s.MaxEmitBuffer < 0 {
		return fmt.Errorf("%w: max_emit_buffer %d is negative", ErrInvalidSettings, s.MaxEmitBuffer)
	}
	if _, _, err := s.profile(); err != nil {
		return err
	}
	if _, err := s.Level(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// Fallback returns the configured fallback size, if any.
func (s *Settings) Fallback() (geom.Dimensions, bool) {
	if s.FallbackWidth == 0 || s.FallbackHeight == 0 {
		return geom.Dimensions{}, false
	}
	return geom.New(s.FallbackWidth, s.FallbackHeight), true
}

// Level returns the configured log level; empty means info.
func (s *Settings) Level() (slog.Level, error) {
	if s.LogLevel == "" {
		return log.LevelInfo, nil
	}
	return log.ParseLevel(s.LogLevel)
}

func (s *Settings) profile() (termenv.Profile, bool, error) {
	if s.ColorProfile == "" {
		return termenv.Ascii, false, nil
	}
	p, ok := colorProfiles[strings.ToLower(s.ColorProfile)]
	if !ok {
		return termenv.Ascii, false, fmt.Errorf("%w: unknown color_profile %q", ErrInvalidSettings, s.ColorProfile)
	}
	return p, true, nil
}

// Options converts the settings into console options. Call Validate first;
// invalid fields are skipped.
func (s *Settings) Options() []tui.Option {
	var opts []tui.Option
	if s.NonBlocking {
		opts = append(opts, tui.WithNonBlocking())
	}
	if d, ok := s.Fallback(); ok {
		opts = append(opts, tui.WithFallbackSize(d))
	}
	if s.MinimumEmit > 0 {
		opts = append(opts, tui.WithMinimumEmit(s.MinimumEmit))
	}
	if s.MaxEmitBuffer > 0 {
		opts = append(opts, tui.WithMaxEmitBuffer(s.MaxEmitBuffer))
	}
	if p, ok, err := s.profile(); err == nil && ok {
		opts = append(opts, tui.WithColorProfile(p))
	}
	if s.SynchronizedOutput {
		opts = append(opts, tui.WithSynchronizedOutput(true))
	}
	return opts
}
