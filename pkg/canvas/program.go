package canvas

import (
	"fmt"

	"github.com/go-vellum/vellum/pkg/events"
	"github.com/go-vellum/vellum/pkg/rendering"
)

// Interaction is the pointer interaction hint a program reports for the
// current cursor position.
type Interaction int

const (
	// InteractionNone requests the default pointer shape.
	InteractionNone Interaction = iota
	// InteractionPointer requests a clickable-target pointer.
	InteractionPointer
	// InteractionGrab requests a grabbable-content pointer.
	InteractionGrab
	// InteractionGrabbing requests a grabbing pointer.
	InteractionGrabbing
	// InteractionText requests a text selection pointer.
	InteractionText
	// InteractionCrosshair requests a crosshair pointer.
	InteractionCrosshair
)

func (i Interaction) String() string {
	switch i {
	case InteractionNone:
		return "none"
	case InteractionPointer:
		return "pointer"
	case InteractionGrab:
		return "grab"
	case InteractionGrabbing:
		return "grabbing"
	case InteractionText:
		return "text"
	case InteractionCrosshair:
		return "crosshair"
	default:
		return fmt.Sprintf("Interaction(%d)", int(i))
	}
}

// Program is a declarative drawing program: a pure function from bounds
// and cursor position to geometry.
//
// Programs gain input handling and interaction hints by additionally
// implementing [Updater] or [Interactor]; both are optional and default
// to no-ops.
type Program[M any] interface {
	// Draw produces the geometry for the current bounds and cursor.
	Draw(bounds rendering.Rect, cursor Cursor) []*Geometry
}

// Updater is the optional input-handling capability of a Program.
type Updater[M any] interface {
	// Update reacts to a pointer or key event. A non-nil message is
	// published to the application exactly once.
	Update(event events.Event, bounds rendering.Rect, cursor Cursor) (events.Status, *M)
}

// Interactor is the optional hover-hint capability of a Program.
type Interactor interface {
	// Interaction returns the pointer hint for the current cursor.
	Interaction(bounds rendering.Rect, cursor Cursor) Interaction
}
