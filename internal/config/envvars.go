// ABOUTME: Environment handling for settings: PI_CONSOLE_* overrides and ${VAR} expansion
// ABOUTME: Expansion replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// EnvPrefix starts every environment override name.
const EnvPrefix = "PI_CONSOLE_"

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.ColorProfile = expandEnv(s.ColorProfile)
	s.LogLevel = expandEnv(s.LogLevel)
	s.Theme = expandEnv(s.Theme)
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// ApplyEnvOverrides sets fields from PI_CONSOLE_<FIELD> variables, e.g.
// PI_CONSOLE_MINIMUM_EMIT=3. Empty variables are ignored.
func ApplyEnvOverrides(s *Settings) error {
	bools := []struct {
		name string
		dst  *bool
	}{
		{"NON_BLOCKING", &s.NonBlocking},
		{"SYNCHRONIZED_OUTPUT", &s.SynchronizedOutput},
	}
	for _, b := range bools {
		v := os.Getenv(EnvPrefix + b.name)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s%s: %w", EnvPrefix, b.name, err)
		}
		*b.dst = parsed
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"FALLBACK_WIDTH", &s.FallbackWidth},
		{"FALLBACK_HEIGHT", &s.FallbackHeight},
		{"MINIMUM_EMIT", &s.MinimumEmit},
		{"MAX_EMIT_BUFFER", &s.MaxEmitBuffer},
	}
	for _, i := range ints {
		v := os.Getenv(EnvPrefix + i.name)
		if v == "" {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s%s: %w", EnvPrefix, i.name, err)
		}
		*i.dst = parsed
	}

	if v := os.Getenv(EnvPrefix + "COLOR_PROFILE"); v != "" {
		s.ColorProfile = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv(EnvPrefix + "THEME"); v != "" {
		s.Theme = v
	}
	return nil
}
