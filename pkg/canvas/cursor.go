package canvas

import "github.com/go-vellum/vellum/pkg/rendering"

// Cursor is the pointer position a drawing program sees: either an
// available window-relative position or unavailable (pointer outside the
// window).
type Cursor struct {
	position  rendering.Offset
	available bool
}

// At returns an available cursor at the given window position.
func At(position rendering.Offset) Cursor {
	return Cursor{position: position, available: true}
}

// Unavailable returns a cursor with no known position.
func Unavailable() Cursor {
	return Cursor{}
}

// FromWindow converts a raw window position into a cursor. Negative
// coordinates are the dispatcher's convention for a pointer that has left
// the window.
func FromWindow(position rendering.Offset) Cursor {
	if position.X < 0 || position.Y < 0 {
		return Unavailable()
	}
	return At(position)
}

// Position returns the window-relative position, if available.
func (c Cursor) Position() (rendering.Offset, bool) {
	return c.position, c.available
}

// PositionIn returns the position relative to the bounds origin, but only
// while the cursor is over the bounds.
func (c Cursor) PositionIn(bounds rendering.Rect) (rendering.Offset, bool) {
	if !c.IsOver(bounds) {
		return rendering.Offset{}, false
	}
	return c.position.Sub(bounds.Origin()), true
}

// IsOver returns true when the cursor is available and inside the bounds.
func (c Cursor) IsOver(bounds rendering.Rect) bool {
	return c.available && bounds.Contains(c.position)
}
