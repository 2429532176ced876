package canvas

import (
	"github.com/go-vellum/vellum/pkg/events"
	"github.com/go-vellum/vellum/pkg/layout"
	"github.com/go-vellum/vellum/pkg/rendering"
	"github.com/go-vellum/vellum/pkg/shell"
)

// DefaultSize is the default edge length of a canvas in logical pixels.
const DefaultSize = 100

// minDrawableExtent is the bounds extent below which drawing is skipped
// entirely.
const minDrawableExtent = 1

// Canvas is a widget that draws 2D graphics through a Program.
//
// The canvas itself is stateless between frames; programs own their
// geometry caches and clear them when their inputs change.
type Canvas[M any] struct {
	program Program[M]
	width   layout.Length
	height  layout.Length
}

// New creates a canvas for the given program with the default fixed size.
func New[M any](program Program[M]) *Canvas[M] {
	return &Canvas[M]{
		program: program,
		width:   layout.Fixed(DefaultSize),
		height:  layout.Fixed(DefaultSize),
	}
}

// Width sets the width policy of the canvas.
func (c *Canvas[M]) Width(width layout.Length) *Canvas[M] {
	c.width = width
	return c
}

// Height sets the height policy of the canvas.
func (c *Canvas[M]) Height(height layout.Length) *Canvas[M] {
	c.height = height
	return c
}

// Layout resolves the configured width and height policies against the
// given limits. Pure; no side effects.
func (c *Canvas[M]) Layout(limits layout.Limits) rendering.Size {
	return limits.Resolve(c.width, c.height)
}

// OnEvent routes a pointer or key event to the program, publishing any
// resulting message to the shell. Events the program has no capability for,
// and event categories a drawing program cannot react to, are reported as
// Ignored so they propagate to other widgets.
func (c *Canvas[M]) OnEvent(event events.Event, bounds rendering.Rect, cursorPosition rendering.Offset, sh *shell.Shell[M]) events.Status {
	switch event.(type) {
	case events.PointerEvent, events.KeyEvent, events.CharEvent:
	default:
		return events.Ignored
	}

	updater, ok := c.program.(Updater[M])
	if !ok {
		return events.Ignored
	}

	status, message := updater.Update(event, bounds, FromWindow(cursorPosition))
	if message != nil {
		sh.Publish(*message)
	}
	return status
}

// MouseInteraction returns the program's interaction hint for the current
// cursor position.
func (c *Canvas[M]) MouseInteraction(bounds rendering.Rect, cursorPosition rendering.Offset) Interaction {
	if interactor, ok := c.program.(Interactor); ok {
		return interactor.Interaction(bounds, FromWindow(cursorPosition))
	}
	return InteractionNone
}

// Draw asks the program for its geometry. Degenerate bounds produce
// nothing.
func (c *Canvas[M]) Draw(bounds rendering.Rect, cursorPosition rendering.Offset) []*Geometry {
	if bounds.Width() < minDrawableExtent || bounds.Height() < minDrawableExtent {
		return nil
	}
	return c.program.Draw(bounds, FromWindow(cursorPosition))
}
