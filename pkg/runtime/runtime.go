// Package runtime drives an application: it queues external events,
// delivers them to the widget tree one at a time, and routes published
// messages back into the application's update function.
//
// The runtime is single threaded. Events are processed to completion, in
// arrival order; a message produced while handling one event is applied
// before the next event is looked at.
package runtime

import (
	"time"

	"github.com/go-vellum/vellum/pkg/animation"
	"github.com/go-vellum/vellum/pkg/canvas"
	"github.com/go-vellum/vellum/pkg/errors"
	"github.com/go-vellum/vellum/pkg/events"
	"github.com/go-vellum/vellum/pkg/layout"
	"github.com/go-vellum/vellum/pkg/rendering"
	"github.com/go-vellum/vellum/pkg/shell"
)

// Application owns the model and reacts to messages published by widgets.
type Application[M any] interface {
	// Update applies one message to the model.
	Update(message M)
}

// Widget is the runtime-facing surface of a widget.
type Widget[M any] interface {
	// Layout resolves the widget size within the given limits.
	Layout(limits layout.Limits) rendering.Size

	// OnEvent handles one event, publishing messages to the shell.
	OnEvent(event events.Event, bounds rendering.Rect, cursorPosition rendering.Offset, sh *shell.Shell[M]) events.Status

	// Draw produces the widget's geometry.
	Draw(bounds rendering.Rect, cursorPosition rendering.Offset) []*canvas.Geometry
}

// interactor is the optional cursor-hint surface of a widget.
type interactor interface {
	MouseInteraction(bounds rendering.Rect, cursorPosition rendering.Offset) canvas.Interaction
}

// offscreen marks the cursor as outside the window.
var offscreen = rendering.Offset{X: -1, Y: -1}

// Runtime connects one root widget to one application.
type Runtime[M any] struct {
	app    Application[M]
	root   Widget[M]
	sh     *shell.Shell[M]
	queue  []events.Event
	bounds rendering.Rect
	cursor rendering.Offset
	ticker *animation.Ticker
	redraw bool
}

// New creates a runtime for the given application and root widget with
// the given initial window size.
func New[M any](app Application[M], root Widget[M], windowSize rendering.Size) *Runtime[M] {
	r := &Runtime[M]{
		app:    app,
		root:   root,
		sh:     shell.New[M](),
		cursor: offscreen,
		redraw: true,
	}
	r.resize(windowSize)
	return r
}

// StartTicker begins delivering TickEvents at the given interval. Tick
// times come from the animation clock; the external frame loop must call
// animation.StepTickers once per frame.
func (r *Runtime[M]) StartTicker(interval time.Duration) {
	if r.ticker != nil {
		return
	}
	var last time.Duration
	r.ticker = animation.NewTicker(func(elapsed time.Duration) {
		if elapsed-last < interval {
			return
		}
		last = elapsed
		r.Dispatch(events.TickEvent{At: animation.Now()})
	})
	r.ticker.Start()
}

// StopTicker stops tick delivery.
func (r *Runtime[M]) StopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
		r.ticker = nil
	}
}

// Dispatch queues an event for processing.
func (r *Runtime[M]) Dispatch(event events.Event) {
	r.queue = append(r.queue, event)
}

// Step processes the oldest queued event to completion: the widget sees
// the event, then every message it published is applied to the
// application. Reports whether an event was processed.
func (r *Runtime[M]) Step() bool {
	if len(r.queue) == 0 {
		return false
	}
	event := r.queue[0]
	r.queue = r.queue[1:]
	r.process(event)
	return true
}

// Run processes queued events until the queue is empty, including events
// queued while processing.
func (r *Runtime[M]) Run() {
	for r.Step() {
	}
}

// NeedsRedraw reports whether widget or model state changed since the
// last Render.
func (r *Runtime[M]) NeedsRedraw() bool {
	return r.redraw
}

// Render asks the root widget for its geometry and clears the redraw
// flag.
func (r *Runtime[M]) Render() []*canvas.Geometry {
	r.redraw = false
	return r.root.Draw(r.bounds, r.cursor)
}

// Interaction returns the pointer hint for the current cursor position.
func (r *Runtime[M]) Interaction() canvas.Interaction {
	if i, ok := r.root.(interactor); ok {
		return i.MouseInteraction(r.bounds, r.cursor)
	}
	return canvas.InteractionNone
}

func (r *Runtime[M]) process(event events.Event) {
	defer errors.Recover("runtime.process")

	switch e := event.(type) {
	case events.ResizeEvent:
		r.resize(e.Size)
		r.redraw = true
		return
	case events.PointerEvent:
		if e.Phase == events.PointerLeft {
			r.cursor = offscreen
		} else {
			r.cursor = e.Position
		}
	}

	r.root.OnEvent(event, r.bounds, r.cursor, r.sh)

	if r.sh.NeedsRedraw() {
		r.redraw = true
	}
	for _, message := range r.sh.Drain() {
		r.app.Update(message)
		r.redraw = true
	}
}

func (r *Runtime[M]) resize(size rendering.Size) {
	limits := layout.NewLimits(rendering.Size{}, size)
	r.bounds = rendering.RectFromSize(r.root.Layout(limits))
}
