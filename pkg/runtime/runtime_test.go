package runtime

import (
	"testing"
	"time"

	"github.com/go-vellum/vellum/pkg/animation"
	"github.com/go-vellum/vellum/pkg/canvas"
	"github.com/go-vellum/vellum/pkg/errors"
	"github.com/go-vellum/vellum/pkg/events"
	"github.com/go-vellum/vellum/pkg/layout"
	"github.com/go-vellum/vellum/pkg/rendering"
	"github.com/go-vellum/vellum/pkg/shell"
)

// recorderApp records applied messages in order.
type recorderApp struct {
	applied []string
}

func (a *recorderApp) Update(message string) {
	a.applied = append(a.applied, message)
}

// echoWidget publishes one message per pointer event and records the
// cursor positions it saw.
type echoWidget struct {
	seenCursor []rendering.Offset
	laidOut    rendering.Size
	panicOnKey bool
}

func (w *echoWidget) Layout(limits layout.Limits) rendering.Size {
	w.laidOut = limits.Resolve(layout.Fill(), layout.Fill())
	return w.laidOut
}

func (w *echoWidget) OnEvent(event events.Event, bounds rendering.Rect, cursorPosition rendering.Offset, sh *shell.Shell[string]) events.Status {
	w.seenCursor = append(w.seenCursor, cursorPosition)
	switch event.(type) {
	case events.PointerEvent:
		sh.Publish("pointer")
		return events.Captured
	case events.KeyEvent:
		if w.panicOnKey {
			panic("key handler exploded")
		}
		sh.Publish("key")
		return events.Captured
	}
	return events.Ignored
}

func (w *echoWidget) Draw(bounds rendering.Rect, cursorPosition rendering.Offset) []*canvas.Geometry {
	frame := canvas.NewFrame(bounds.Size())
	return []*canvas.Geometry{frame.Geometry()}
}

func pointerAt(x, y float64) events.PointerEvent {
	return events.PointerEvent{Phase: events.PointerMoved, Position: rendering.Offset{X: x, Y: y}}
}

func TestRuntimeAppliesMessagesPerEvent(t *testing.T) {
	app := &recorderApp{}
	r := New[string](app, &echoWidget{}, rendering.Size{Width: 100, Height: 100})

	r.Dispatch(pointerAt(1, 1))
	r.Dispatch(events.KeyEvent{Phase: events.KeyPressed, Key: events.KeyEnter})
	r.Run()

	if len(app.applied) != 2 || app.applied[0] != "pointer" || app.applied[1] != "key" {
		t.Errorf("applied = %v, want [pointer key]", app.applied)
	}
}

func TestRuntimeStepProcessesOneEvent(t *testing.T) {
	app := &recorderApp{}
	r := New[string](app, &echoWidget{}, rendering.Size{Width: 100, Height: 100})

	r.Dispatch(pointerAt(1, 1))
	r.Dispatch(pointerAt(2, 2))

	if !r.Step() {
		t.Fatalf("expected the first Step to process an event")
	}
	if len(app.applied) != 1 {
		t.Errorf("applied %d messages after one Step, want 1", len(app.applied))
	}

	r.Run()
	if r.Step() {
		t.Errorf("Step on an empty queue should report false")
	}
}

func TestRuntimeTracksCursor(t *testing.T) {
	widget := &echoWidget{}
	r := New[string](&recorderApp{}, widget, rendering.Size{Width: 100, Height: 100})

	r.Dispatch(pointerAt(30, 40))
	r.Run()

	if len(widget.seenCursor) != 1 {
		t.Fatalf("widget saw %d events, want 1", len(widget.seenCursor))
	}
	if got := widget.seenCursor[0]; got.X != 30 || got.Y != 40 {
		t.Errorf("cursor = %v, want (30, 40)", got)
	}

	r.Dispatch(events.PointerEvent{Phase: events.PointerLeft})
	r.Dispatch(events.KeyEvent{Phase: events.KeyPressed, Key: events.KeyEnter})
	r.Run()

	last := widget.seenCursor[len(widget.seenCursor)-1]
	if last.X >= 0 || last.Y >= 0 {
		t.Errorf("cursor after the pointer left = %v, want offscreen", last)
	}
}

func TestRuntimeResizeRelayouts(t *testing.T) {
	widget := &echoWidget{}
	r := New[string](&recorderApp{}, widget, rendering.Size{Width: 100, Height: 100})
	r.Render()

	r.Dispatch(events.ResizeEvent{Size: rendering.Size{Width: 300, Height: 200}})
	r.Run()

	if widget.laidOut != (rendering.Size{Width: 300, Height: 200}) {
		t.Errorf("laid out = %v, want 300x200", widget.laidOut)
	}
	if !r.NeedsRedraw() {
		t.Errorf("resize should request a redraw")
	}
}

func TestRuntimeRedrawFlag(t *testing.T) {
	r := New[string](&recorderApp{}, &echoWidget{}, rendering.Size{Width: 100, Height: 100})

	if !r.NeedsRedraw() {
		t.Fatalf("a new runtime should need an initial frame")
	}
	r.Render()
	if r.NeedsRedraw() {
		t.Errorf("Render should clear the redraw flag")
	}

	r.Dispatch(pointerAt(1, 1))
	r.Run()
	if !r.NeedsRedraw() {
		t.Errorf("an applied message should set the redraw flag")
	}
}

func TestRuntimeRecoversWidgetPanics(t *testing.T) {
	var recovered *errors.PanicError
	errors.SetHandler(panicCapture{captured: &recovered})
	defer errors.SetHandler(nil)

	app := &recorderApp{}
	r := New[string](app, &echoWidget{panicOnKey: true}, rendering.Size{Width: 100, Height: 100})

	r.Dispatch(events.KeyEvent{Phase: events.KeyPressed, Key: events.KeyEnter})
	r.Dispatch(pointerAt(1, 1))
	r.Run()

	if recovered == nil {
		t.Fatalf("expected the panic to be reported")
	}
	if len(app.applied) != 1 || app.applied[0] != "pointer" {
		t.Errorf("later events should still be processed, applied = %v", app.applied)
	}
}

type panicCapture struct {
	captured **errors.PanicError
}

func (h panicCapture) HandleError(err *errors.Error)      {}
func (h panicCapture) HandlePanic(err *errors.PanicError) { *h.captured = err }

func TestRuntimeTickerDispatchesTicks(t *testing.T) {
	fake := &tickClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := animation.SetClock(fake)
	defer animation.SetClock(prev)

	ticks := 0
	app := &countingApp{ticks: &ticks}
	r := New[string](app, &tickWidget{}, rendering.Size{Width: 100, Height: 100})
	r.StartTicker(16 * time.Millisecond)
	defer r.StopTicker()

	fake.now = fake.now.Add(20 * time.Millisecond)
	animation.StepTickers()
	r.Run()

	if ticks != 1 {
		t.Errorf("ticks = %d, want 1", ticks)
	}

	// Within the interval, no new tick fires.
	fake.now = fake.now.Add(5 * time.Millisecond)
	animation.StepTickers()
	r.Run()
	if ticks != 1 {
		t.Errorf("ticks = %d after 5ms, want still 1", ticks)
	}
}

type tickClock struct {
	now time.Time
}

func (c *tickClock) Now() time.Time { return c.now }

type countingApp struct {
	ticks *int
}

func (a *countingApp) Update(message string) {
	if message == "tick" {
		*a.ticks++
	}
}

// tickWidget turns tick events into messages.
type tickWidget struct{}

func (w *tickWidget) Layout(limits layout.Limits) rendering.Size {
	return limits.Resolve(layout.Fill(), layout.Fill())
}

func (w *tickWidget) OnEvent(event events.Event, bounds rendering.Rect, cursorPosition rendering.Offset, sh *shell.Shell[string]) events.Status {
	if _, ok := event.(events.TickEvent); ok {
		sh.Publish("tick")
		return events.Captured
	}
	return events.Ignored
}

func (w *tickWidget) Draw(bounds rendering.Rect, cursorPosition rendering.Offset) []*canvas.Geometry {
	return nil
}
