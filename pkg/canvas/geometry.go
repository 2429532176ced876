// Package canvas provides a widget for drawing 2D vector graphics through
// a declarative drawing program, with cache-backed geometry regeneration.
//
// A drawing program implements [Program] and produces [Geometry] from the
// widget bounds. Programs that animate keep a [Cache] and clear it when
// their inputs change; unchanged frames replay the cached geometry instead
// of rebuilding vector paths.
package canvas

import "github.com/go-vellum/vellum/pkg/rendering"

// Geometry is an immutable chunk of vector drawing output, ready to hand
// to the renderer boundary.
type Geometry struct {
	list *rendering.DisplayList
}

// DisplayList returns the recorded drawing operations.
func (g *Geometry) DisplayList() *rendering.DisplayList {
	return g.list
}

// Replay executes the geometry's operations onto a canvas.
func (g *Geometry) Replay(canvas rendering.Canvas) {
	g.list.Paint(canvas)
}
