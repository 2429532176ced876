package canvas

import "github.com/go-vellum/vellum/pkg/rendering"

// Cache memoizes the geometry produced by a drawing function, keyed by the
// size it was last drawn at.
//
// Staleness is edge-triggered: the cache never detects changed inputs on
// its own. Any state change that affects the drawing function's output
// (an animation tick, new data) must call Clear before the next draw, or
// stale geometry is replayed.
type Cache struct {
	filled   bool
	size     rendering.Size
	geometry *Geometry
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Draw returns the cached geometry when the requested size matches the
// last drawn size and no Clear intervened. Otherwise it runs fn against a
// fresh frame, stores the result, and returns it.
func (c *Cache) Draw(size rendering.Size, fn func(*Frame)) *Geometry {
	if c.filled && c.size == size {
		return c.geometry
	}

	frame := NewFrame(size)
	fn(frame)

	c.filled = true
	c.size = size
	c.geometry = frame.Geometry()
	return c.geometry
}

// Clear discards the cached geometry, forcing regeneration on the next
// Draw.
func (c *Cache) Clear() {
	c.filled = false
	c.geometry = nil
	c.size = rendering.Size{}
}
