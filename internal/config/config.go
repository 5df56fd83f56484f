// ABOUTME: Console settings loading with global + project YAML merge
// ABOUTME: Uses gopkg.in/yaml.v3; environment overrides are applied after the merge

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the console configuration.
type Settings struct {
	NonBlocking        bool   `yaml:"non_blocking,omitempty"`
	FallbackWidth      int    `yaml:"fallback_width,omitempty"`
	FallbackHeight     int    `yaml:"fallback_height,omitempty"`
	MinimumEmit        int    `yaml:"minimum_emit,omitempty"`
	MaxEmitBuffer      int    `yaml:"max_emit_buffer,omitempty"`
	ColorProfile       string `yaml:"color_profile,omitempty"`
	SynchronizedOutput bool   `yaml:"synchronized_output,omitempty"`
	LogLevel           string `yaml:"log_level,omitempty"`
	Theme              string `yaml:"theme,omitempty"`
}

// Load reads and merges global and project-local settings, then applies
// PI_CONSOLE_* environment overrides and validates the result.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := LoadFile(GlobalConfigFile())
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := LoadFile(ProjectConfigFile(projectRoot))
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	if err := ApplyEnvOverrides(merged); err != nil {
		return nil, err
	}
	ResolveEnvVars(merged)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// LoadFile reads Settings from a YAML file. A missing file yields zero
// Settings and no error.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.NonBlocking {
		result.NonBlocking = true
	}
	if project.FallbackWidth != 0 {
		result.FallbackWidth = project.FallbackWidth
	}
	if project.FallbackHeight != 0 {
		result.FallbackHeight = project.FallbackHeight
	}
	if project.MinimumEmit != 0 {
		result.MinimumEmit = project.MinimumEmit
	}
	if project.MaxEmitBuffer != 0 {
		result.MaxEmitBuffer = project.MaxEmitBuffer
	}
	if project.ColorProfile != "" {
		result.ColorProfile = project.ColorProfile
	}
	if project.SynchronizedOutput {
		result.SynchronizedOutput = true
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.Theme != "" {
		result.Theme = project.Theme
	}

	return &result
}
