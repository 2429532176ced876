// Package theme defines the color palettes applications draw with and
// optional palette overrides loaded from a YAML file.
package theme

import "github.com/go-vellum/vellum/pkg/rendering"

// Brightness indicates if a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// Palette is the set of semantic colors a theme provides.
type Palette struct {
	// Background fills the window behind all content.
	Background rendering.Color

	// Surface fills raised regions like cards and fields.
	Surface rendering.Color

	// Text is the default foreground for text and strokes.
	Text rendering.Color

	// Primary marks interactive and highlighted elements.
	Primary rendering.Color

	// Success marks positive states.
	Success rendering.Color

	// Danger marks destructive or error states.
	Danger rendering.Color
}

// Theme pairs a named palette with its brightness.
type Theme struct {
	Name       string
	Brightness Brightness
	Palette    Palette
}

// Light returns the default light theme.
func Light() *Theme {
	return &Theme{
		Name:       "light",
		Brightness: BrightnessLight,
		Palette: Palette{
			Background: rendering.ColorWhite,
			Surface:    rendering.RGB(0xF5, 0xF5, 0xF5),
			Text:       rendering.RGB(0x1A, 0x1A, 0x1A),
			Primary:    rendering.RGB(0x3B, 0x82, 0xF6),
			Success:    rendering.RGB(0x22, 0xC5, 0x5E),
			Danger:     rendering.RGB(0xEF, 0x44, 0x44),
		},
	}
}

// Dark returns the default dark theme.
func Dark() *Theme {
	return &Theme{
		Name:       "dark",
		Brightness: BrightnessDark,
		Palette: Palette{
			Background: rendering.RGB(0x11, 0x11, 0x18),
			Surface:    rendering.RGB(0x1E, 0x1E, 0x28),
			Text:       rendering.RGB(0xE5, 0xE5, 0xE5),
			Primary:    rendering.RGB(0x60, 0xA5, 0xFA),
			Success:    rendering.RGB(0x4A, 0xDE, 0x80),
			Danger:     rendering.RGB(0xF8, 0x71, 0x71),
		},
	}
}

// Default returns the theme used when no override is configured.
func Default() *Theme {
	return Light()
}
