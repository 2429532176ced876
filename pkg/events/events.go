// Package events defines the structured input events delivered to widgets
// and the consumption status they report back.
//
// Events arrive from the external windowing layer with window-relative
// positions; widgets convert positions to surface-relative coordinates
// before acting on them.
package events

import (
	"time"

	"github.com/go-vellum/vellum/pkg/rendering"
)

// Status reports whether a widget consumed an event.
type Status int

const (
	// Ignored means the event was not handled and should propagate.
	Ignored Status = iota
	// Captured means the event was consumed and propagation stops.
	Captured
)

// Merge combines two statuses; Captured wins.
func (s Status) Merge(other Status) Status {
	if s == Captured || other == Captured {
		return Captured
	}
	return Ignored
}

func (s Status) String() string {
	if s == Captured {
		return "captured"
	}
	return "ignored"
}

// Event is a structured external input event.
//
// The concrete types are PointerEvent, KeyEvent, CharEvent, TickEvent, and
// ResizeEvent. Widgets type-switch on the categories they recognize and
// report Ignored for the rest.
type Event interface {
	isEvent()
}

// PointerPhase describes where a pointer event sits in its lifecycle.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMoved
	PointerUp
	PointerEntered
	PointerLeft
)

// PointerButton identifies which button produced a pointer event.
type PointerButton int

const (
	ButtonNone PointerButton = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is a mouse or touch event with a window-relative position.
type PointerEvent struct {
	Phase    PointerPhase
	Position rendering.Offset
	Button   PointerButton
}

func (PointerEvent) isEvent() {}

// Key identifies a non-character key.
type Key int

const (
	KeyUnknown Key = iota
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	KeyTab
)

// Modifiers holds the modifier key state accompanying an event.
type Modifiers struct {
	Shift   bool
	Control bool
	Alt     bool
	Meta    bool
}

// KeyPhase distinguishes presses from releases.
type KeyPhase int

const (
	KeyPressed KeyPhase = iota
	KeyReleased
)

// KeyEvent is a non-character key press or release.
type KeyEvent struct {
	Phase     KeyPhase
	Key       Key
	Modifiers Modifiers
}

func (KeyEvent) isEvent() {}

// CharEvent carries a single typed character.
type CharEvent struct {
	Rune rune
}

func (CharEvent) isEvent() {}

// TickEvent is a recurring clock tick from the external timer source.
type TickEvent struct {
	At time.Time
}

func (TickEvent) isEvent() {}

// ResizeEvent reports a new window size.
type ResizeEvent struct {
	Size rendering.Size
}

func (ResizeEvent) isEvent() {}
