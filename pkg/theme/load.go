package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-vellum/vellum/pkg/rendering"
)

// fileTheme mirrors the theme.yaml layout.
type fileTheme struct {
	Base    string      `yaml:"base,omitempty"`
	Palette filePalette `yaml:"palette"`
}

type filePalette struct {
	Background string `yaml:"background,omitempty"`
	Surface    string `yaml:"surface,omitempty"`
	Text       string `yaml:"text,omitempty"`
	Primary    string `yaml:"primary,omitempty"`
	Success    string `yaml:"success,omitempty"`
	Danger     string `yaml:"danger,omitempty"`
}

// LoadOptional reads theme.yaml from dir if present. A missing file
// yields the default theme; entries in the file override the base
// palette color by color.
func LoadOptional(dir string) (*Theme, error) {
	path := filepath.Join(dir, "theme.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read theme.yaml: %w", err)
	}

	var file fileTheme
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme.yaml: %w", err)
	}

	theme, err := baseTheme(file.Base)
	if err != nil {
		return nil, err
	}

	overrides := []struct {
		hex    string
		target *rendering.Color
	}{
		{file.Palette.Background, &theme.Palette.Background},
		{file.Palette.Surface, &theme.Palette.Surface},
		{file.Palette.Text, &theme.Palette.Text},
		{file.Palette.Primary, &theme.Palette.Primary},
		{file.Palette.Success, &theme.Palette.Success},
		{file.Palette.Danger, &theme.Palette.Danger},
	}
	for _, o := range overrides {
		if o.hex == "" {
			continue
		}
		color, err := ParseHexColor(o.hex)
		if err != nil {
			return nil, fmt.Errorf("theme.yaml: %w", err)
		}
		*o.target = color
	}

	return theme, nil
}

func baseTheme(name string) (*Theme, error) {
	switch name {
	case "", "light":
		return Light(), nil
	case "dark":
		return Dark(), nil
	default:
		return nil, fmt.Errorf("theme.yaml: unknown base theme %q", name)
	}
}

// ParseHexColor parses "#RRGGBB" or "#AARRGGBB" into a color.
func ParseHexColor(s string) (rendering.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return 0, fmt.Errorf("invalid color %q", s)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	return rendering.Color(value), nil
}
