package editing

// Editor is a transient handle that exclusively binds a value and a cursor
// for the duration of one edit operation.
//
// Construct one per operation and discard it; a persistent editor would
// allow interleaved mutation of the buffer it borrowed.
type Editor struct {
	value  *Value
	cursor *Cursor
}

// NewEditor binds a value and cursor for one edit operation.
func NewEditor(value *Value, cursor *Cursor) *Editor {
	return &Editor{value: value, cursor: cursor}
}

// Contents returns the current buffer contents.
func (e *Editor) Contents() string {
	return e.value.String()
}

// Insert replaces any active selection with the given rune and advances
// the caret past it.
func (e *Editor) Insert(r rune) {
	if start, end, ok := e.cursor.Selection(e.value); ok {
		e.value.RemoveMany(start, end)
		e.cursor.MoveTo(start)
	}

	e.value.Insert(e.cursor.End(e.value), r)
	e.cursor.MoveRight(e.value)
}

// Paste replaces any active selection with the given content and advances
// the caret past it. The selection replacement and insertion are a single
// operation; no intermediate state is observable.
func (e *Editor) Paste(content *Value) {
	length := content.Len()

	if start, end, ok := e.cursor.Selection(e.value); ok {
		e.value.RemoveMany(start, end)
		e.cursor.MoveTo(start)
	}

	e.value.InsertMany(e.cursor.End(e.value), content)
	e.cursor.MoveRightBy(e.value, length)
}

// Backspace deletes the active selection, or the rune left of the caret.
// At offset 0 with no selection it is a no-op.
func (e *Editor) Backspace() {
	if start, end, ok := e.cursor.Selection(e.value); ok {
		e.value.RemoveMany(start, end)
		e.cursor.MoveTo(start)
		return
	}

	start := e.cursor.Start(e.value)
	if start > 0 {
		e.cursor.MoveTo(start - 1)
		e.value.Remove(start - 1)
	}
}

// Delete deletes the active selection, or the rune at the caret.
//
// With a selection the caret lands on the selection start, mirroring
// Backspace. Without one the caret does not move; at the end of the buffer
// it is a no-op.
func (e *Editor) Delete() {
	if start, end, ok := e.cursor.Selection(e.value); ok {
		e.value.RemoveMany(start, end)
		e.cursor.MoveTo(start)
		return
	}

	end := e.cursor.End(e.value)
	if end < e.value.Len() {
		e.value.Remove(end)
	}
}
