package rendering

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color Color
	Size  float64   // Font size in logical pixels; 0 uses the face's native size
	Face  font.Face // Measuring face; nil uses the default face
}

// TextLine represents a single measured line of text.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout contains measured text metrics ready for drawing.
//
// Shaping, font fallback, and rasterization are backend concerns; the layout
// carries enough metrics for the core to position and cache text geometry.
type TextLayout struct {
	Text       string
	Style      TextStyle
	Size       Size
	Ascent     float64
	Descent    float64
	LineHeight float64
	Lines      []TextLine
}

// DefaultFace returns the built-in measuring face.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// LayoutText measures text against the style's face and returns a layout.
// Lines are split on '\n'; the layout width is the widest line.
func LayoutText(text string, style TextStyle) *TextLayout {
	face := style.Face
	if face == nil {
		face = DefaultFace()
	}

	metrics := face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	lineHeight := fixedToFloat(metrics.Height)
	if lineHeight == 0 {
		lineHeight = ascent + descent
	}

	scale := 1.0
	if style.Size > 0 && ascent+descent > 0 {
		scale = style.Size / (ascent + descent)
	}

	var lines []TextLine
	maxWidth := 0.0
	for _, line := range strings.Split(text, "\n") {
		width := fixedToFloat(font.MeasureString(face, line)) * scale
		if width > maxWidth {
			maxWidth = width
		}
		lines = append(lines, TextLine{Text: line, Width: width})
	}

	return &TextLayout{
		Text:       text,
		Style:      style,
		Ascent:     ascent * scale,
		Descent:    descent * scale,
		LineHeight: lineHeight * scale,
		Lines:      lines,
		Size: Size{
			Width:  maxWidth,
			Height: lineHeight * scale * float64(len(lines)),
		},
	}
}
