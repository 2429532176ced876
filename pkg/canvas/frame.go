package canvas

import "github.com/go-vellum/vellum/pkg/rendering"

// Frame records the drawing commands of one program invocation and turns
// them into immutable geometry.
type Frame struct {
	size     rendering.Size
	recorder rendering.PictureRecorder
	canvas   rendering.Canvas
}

// NewFrame creates a frame of the given size with its origin at the
// top-left corner.
func NewFrame(size rendering.Size) *Frame {
	f := &Frame{size: size}
	f.canvas = f.recorder.BeginRecording(size)
	return f
}

// Width returns the frame width.
func (f *Frame) Width() float64 {
	return f.size.Width
}

// Height returns the frame height.
func (f *Frame) Height() float64 {
	return f.size.Height
}

// Size returns the frame size.
func (f *Frame) Size() rendering.Size {
	return f.size
}

// Center returns the center point of the frame.
func (f *Frame) Center() rendering.Offset {
	return rendering.Offset{X: f.size.Width / 2, Y: f.size.Height / 2}
}

// Fill fills the path with the given fill.
func (f *Frame) Fill(path *rendering.Path, fill Fill) {
	f.canvas.DrawPath(path, fill.paint())
}

// FillRect fills a rectangle. Equivalent to filling a rectangle path but
// records a single primitive.
func (f *Frame) FillRect(rect rendering.Rect, fill Fill) {
	f.canvas.DrawRect(rect, fill.paint())
}

// Stroke outlines the path with the given stroke.
func (f *Frame) Stroke(path *rendering.Path, stroke Stroke) {
	f.canvas.DrawPath(path, stroke.paint())
}

// FillText draws a run of text at its position.
func (f *Frame) FillText(text Text) {
	layout := rendering.LayoutText(text.Content, rendering.TextStyle{
		Color: text.Color,
		Size:  text.Size,
	})
	f.canvas.DrawText(layout, text.Position)
}

// Translate moves the frame origin by the given offset for subsequent
// drawing.
func (f *Frame) Translate(offset rendering.Offset) {
	f.canvas.Translate(offset.X, offset.Y)
}

// Rotate rotates subsequent drawing around the current origin by radians.
func (f *Frame) Rotate(radians float64) {
	f.canvas.Rotate(radians)
}

// Scale scales subsequent drawing by the given factor.
func (f *Frame) Scale(factor float64) {
	f.canvas.Scale(factor, factor)
}

// WithSave runs fn with the current transform saved, restoring it after
// fn returns.
func (f *Frame) WithSave(fn func()) {
	f.canvas.Save()
	fn()
	f.canvas.Restore()
}

// Geometry finalizes the frame into immutable geometry. The frame must
// not be drawn to afterwards.
func (f *Frame) Geometry() *Geometry {
	return &Geometry{list: f.recorder.EndRecording()}
}
