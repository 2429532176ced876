package canvas

import "github.com/go-vellum/vellum/pkg/rendering"

// Fill describes how to fill a path interior.
type Fill struct {
	Color rendering.Color
	Rule  rendering.PathFillRule
}

// Stroke describes how to outline a path.
type Stroke struct {
	Color rendering.Color
	Width float64
	Cap   rendering.StrokeCap
	Join  rendering.StrokeJoin
	Dash  *rendering.DashPattern
}

// DefaultStroke returns a solid 1-pixel black stroke with butt caps and
// miter joins.
func DefaultStroke() Stroke {
	return Stroke{
		Color: rendering.ColorBlack,
		Width: 1,
	}
}

// paint converts the fill into a renderer paint.
func (f Fill) paint() rendering.Paint {
	return rendering.Paint{
		Color: f.Color,
		Style: rendering.PaintStyleFill,
	}
}

// paint converts the stroke into a renderer paint.
func (s Stroke) paint() rendering.Paint {
	width := s.Width
	if width == 0 {
		width = 1
	}
	return rendering.Paint{
		Color:       s.Color,
		Style:       rendering.PaintStyleStroke,
		StrokeWidth: width,
		StrokeCap:   s.Cap,
		StrokeJoin:  s.Join,
		Dash:        s.Dash,
	}
}

// Text is a run of text positioned within a frame.
type Text struct {
	Content  string
	Position rendering.Offset
	Color    rendering.Color
	Size     float64
}
