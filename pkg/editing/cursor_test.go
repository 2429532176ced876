package editing

import "testing"

func TestCursorClampsAgainstValue(t *testing.T) {
	v := NewValue("abc")
	c := NewCursor()
	c.MoveTo(99)

	if got := c.Start(v); got != 3 {
		t.Errorf("start = %d, want clamped 3", got)
	}
	if got := c.End(v); got != 3 {
		t.Errorf("end = %d, want clamped 3", got)
	}
}

func TestCursorSelectionNormalizesBounds(t *testing.T) {
	v := NewValue("hello")
	c := NewCursor()
	c.SelectRange(4, 1)

	start, end, ok := c.Selection(v)
	if !ok {
		t.Fatal("expected active selection")
	}
	if start != 1 || end != 4 {
		t.Errorf("selection = (%d, %d), want (1, 4)", start, end)
	}
}

func TestCursorCollapsedSelectionIsNone(t *testing.T) {
	v := NewValue("hello")
	c := NewCursor()
	c.SelectRange(2, 2)

	if _, _, ok := c.Selection(v); ok {
		t.Error("anchor == head should not report a selection")
	}
}

func TestCursorSelectionCollapsesWhenClampedEqual(t *testing.T) {
	// A selection whose clamped bounds coincide degrades to a caret.
	v := NewValue("h")
	c := NewCursor()
	c.SelectRange(1, 5)

	if _, _, ok := c.Selection(v); ok {
		t.Error("selection clamped to zero width should report none")
	}
}

func TestCursorMoveLeftCollapsesSelection(t *testing.T) {
	v := NewValue("hello")
	c := NewCursor()
	c.SelectRange(1, 4)
	c.MoveLeft(v)

	caret(t, c, v, 1)
}

func TestCursorMoveRightCollapsesSelection(t *testing.T) {
	v := NewValue("hello")
	c := NewCursor()
	c.SelectRange(1, 4)
	c.MoveRight(v)

	caret(t, c, v, 4)
}

func TestCursorMoveLeftStopsAtZero(t *testing.T) {
	v := NewValue("ab")
	c := NewCursor()
	c.MoveLeft(v)
	caret(t, c, v, 0)

	c.MoveLeftBy(v, 10)
	caret(t, c, v, 0)
}

func TestCursorMoveRightStopsAtEnd(t *testing.T) {
	v := NewValue("ab")
	c := NewCursor()
	c.MoveRightBy(v, 10)
	caret(t, c, v, 2)
}

func TestCursorSelectAll(t *testing.T) {
	v := NewValue("hello")
	c := NewCursor()
	c.SelectAll(v)

	start, end, ok := c.Selection(v)
	if !ok || start != 0 || end != 5 {
		t.Errorf("selection = (%d, %d, %v), want (0, 5, true)", start, end, ok)
	}
}

func TestCursorSelectLeftRightExtendHead(t *testing.T) {
	v := NewValue("hello")
	c := NewCursor()
	c.MoveTo(2)

	c.SelectRight(v)
	if start, end, ok := c.Selection(v); !ok || start != 2 || end != 3 {
		t.Errorf("after select right: (%d, %d, %v), want (2, 3, true)", start, end, ok)
	}

	c.SelectLeft(v)
	if _, _, ok := c.Selection(v); ok {
		t.Error("select left should collapse the one-rune selection")
	}
}

func TestCursorMoveToEnd(t *testing.T) {
	v := NewValue("hello")
	c := NewCursor()
	c.MoveToEnd(v)
	caret(t, c, v, 5)

	c.MoveToStart()
	caret(t, c, v, 0)
}
