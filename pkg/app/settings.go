// Package app holds application-level settings loaded from the optional
// vellum.yaml file next to the executable.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-vellum/vellum/pkg/rendering"
)

// Default window and timing values used when vellum.yaml is absent or
// leaves a field unset.
const (
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
	DefaultTickInterval = 16 * time.Millisecond
)

// Settings configures the window and frame timing of an application.
type Settings struct {
	Window WindowSettings `yaml:"window"`

	// TickIntervalMillis is the interval between timer ticks delivered
	// to the application, in milliseconds. Zero means the default.
	TickIntervalMillis int `yaml:"tick_interval_ms,omitempty"`

	// Antialiasing requests smoothed path rendering from the backend.
	Antialiasing bool `yaml:"antialiasing,omitempty"`
}

// WindowSettings configures the application window.
type WindowSettings struct {
	Title  string  `yaml:"title,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// DefaultSettings returns the settings used without a config file.
func DefaultSettings() *Settings {
	return &Settings{
		Window: WindowSettings{
			Title:  "vellum",
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
		Antialiasing: true,
	}
}

// LoadOptional reads vellum.yaml from dir if present. A missing file
// yields the defaults; unset fields fall back to them.
func LoadOptional(dir string) (*Settings, error) {
	path := filepath.Join(dir, "vellum.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read vellum.yaml: %w", err)
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse vellum.yaml: %w", err)
	}
	if settings.Window.Width <= 0 {
		settings.Window.Width = DefaultWindowWidth
	}
	if settings.Window.Height <= 0 {
		settings.Window.Height = DefaultWindowHeight
	}
	if settings.TickIntervalMillis < 0 {
		return nil, fmt.Errorf("vellum.yaml: tick_interval_ms must not be negative")
	}

	return settings, nil
}

// TickInterval returns the configured tick interval.
func (s *Settings) TickInterval() time.Duration {
	if s.TickIntervalMillis <= 0 {
		return DefaultTickInterval
	}
	return time.Duration(s.TickIntervalMillis) * time.Millisecond
}

// WindowSize returns the configured window size.
func (s *Settings) WindowSize() rendering.Size {
	return rendering.Size{Width: s.Window.Width, Height: s.Window.Height}
}
