// Package shell provides the one-way publish channel from widgets up to
// the application.
package shell

// Shell collects messages published by widgets while one event is being
// handled, along with any redraw request. The runtime drains it after each
// event; widgets never read back what they published.
type Shell[M any] struct {
	messages    []M
	needsRedraw bool
}

// New creates an empty shell.
func New[M any]() *Shell[M] {
	return &Shell[M]{}
}

// Publish queues a message for the application.
func (s *Shell[M]) Publish(message M) {
	s.messages = append(s.messages, message)
}

// RequestRedraw marks that widget state changed in a way that requires a
// new frame.
func (s *Shell[M]) RequestRedraw() {
	s.needsRedraw = true
}

// NeedsRedraw reports whether a redraw was requested since the last drain.
func (s *Shell[M]) NeedsRedraw() bool {
	return s.needsRedraw
}

// Drain returns the queued messages and resets the shell.
func (s *Shell[M]) Drain() []M {
	messages := s.messages
	s.messages = nil
	s.needsRedraw = false
	return messages
}
