package editing

import "sync"

// Controller manages the text and cursor of one editable field and
// notifies listeners on every mutation. Widgets hold a controller so the
// application can read and change the field from outside.
type Controller struct {
	value          *Value
	cursor         *Cursor
	listeners      map[int]func()
	nextListenerID int
	mu             sync.RWMutex
}

// NewController creates a controller with the given initial text and a
// collapsed cursor at the end of it.
func NewController(text string) *Controller {
	value := NewValue(text)
	cursor := NewCursor()
	cursor.MoveToEnd(value)
	return &Controller{
		value:     value,
		cursor:    cursor,
		listeners: make(map[int]func()),
	}
}

// Text returns the current text content.
func (c *Controller) Text() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value.String()
}

// SetText replaces the text content and moves the cursor to the end.
func (c *Controller) SetText(text string) {
	c.mu.Lock()
	c.value = NewValue(text)
	c.cursor.MoveToEnd(c.value)
	c.mu.Unlock()
	c.notifyListeners()
}

// Clear empties the field.
func (c *Controller) Clear() {
	c.SetText("")
}

// Selection returns the current selection bounds. ok is false when the
// cursor is a caret.
func (c *Controller) Selection() (start, end int, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cursor.Selection(c.value)
}

// CaretPosition returns the position of the selection end, where the
// caret blinks.
func (c *Controller) CaretPosition() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cursor.End(c.value)
}

// Insert types one character at the cursor, replacing any selection.
func (c *Controller) Insert(r rune) {
	c.edit(func(e *Editor) { e.Insert(r) })
}

// Paste inserts a string at the cursor, replacing any selection.
func (c *Controller) Paste(content string) {
	c.edit(func(e *Editor) { e.Paste(NewValue(content)) })
}

// Backspace removes the selection, or the character before the caret.
func (c *Controller) Backspace() {
	c.edit(func(e *Editor) { e.Backspace() })
}

// Delete removes the selection, or the character after the caret.
func (c *Controller) Delete() {
	c.edit(func(e *Editor) { e.Delete() })
}

// MoveLeft moves the caret one position left, collapsing any selection
// to its start.
func (c *Controller) MoveLeft() {
	c.move(func() { c.cursor.MoveLeft(c.value) })
}

// MoveRight moves the caret one position right, collapsing any selection
// to its end.
func (c *Controller) MoveRight() {
	c.move(func() { c.cursor.MoveRight(c.value) })
}

// MoveToStart moves the caret to the beginning of the text.
func (c *Controller) MoveToStart() {
	c.move(func() { c.cursor.MoveToStart() })
}

// MoveToEnd moves the caret to the end of the text.
func (c *Controller) MoveToEnd() {
	c.move(func() { c.cursor.MoveToEnd(c.value) })
}

// SelectLeft extends or shrinks the selection one position to the left.
func (c *Controller) SelectLeft() {
	c.move(func() { c.cursor.SelectLeft(c.value) })
}

// SelectRight extends or shrinks the selection one position to the right.
func (c *Controller) SelectRight() {
	c.move(func() { c.cursor.SelectRight(c.value) })
}

// SelectAll selects the entire text.
func (c *Controller) SelectAll() {
	c.move(func() { c.cursor.SelectAll(c.value) })
}

// AddListener adds a callback that is called after every mutation.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	c.mu.Lock()
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func (c *Controller) edit(fn func(*Editor)) {
	c.mu.Lock()
	fn(NewEditor(c.value, c.cursor))
	c.mu.Unlock()
	c.notifyListeners()
}

func (c *Controller) move(fn func()) {
	c.mu.Lock()
	fn()
	c.mu.Unlock()
	c.notifyListeners()
}

func (c *Controller) notifyListeners() {
	c.mu.RLock()
	listeners := make([]func(), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}
