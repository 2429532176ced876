// Package errors provides structured error reporting for the toolkit.
//
// The editing and drawing cores have no fatal error path: bounds are
// clamped, degenerate geometry is skipped, and unrecognized events
// propagate. What remains reportable are failures at the edges (config
// parsing, renderer handoff) and panics recovered from user-supplied
// drawing programs.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates a settings or theme loading error.
	KindConfig
	// KindRender indicates a failure handing geometry to the renderer.
	KindRender
	// KindInput indicates an event dispatch failure.
	KindInput
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindInput:
		return "input"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured toolkit error.
type Error struct {
	// Op is the operation that failed (e.g., "app.LoadSettings").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a panic recovered from a user callback.
type PanicError struct {
	// Op is the operation that panicked (e.g., "runtime.dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported by the toolkit.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
