package editing

// Cursor tracks the caret position within a value, or an active selection
// between an anchor and a head offset.
//
// Offsets are stored raw and clamped against a value whenever they are read,
// so a cursor never outlives the bounds of the value it is used with.
type Cursor struct {
	anchor int
	head   int
}

// NewCursor creates a cursor with the caret at offset 0.
func NewCursor() *Cursor {
	return &Cursor{}
}

// Start returns the lower bound of the cursor, clamped to the value.
func (c *Cursor) Start(value *Value) int {
	start := c.anchor
	if c.head < start {
		start = c.head
	}
	return value.clamp(start)
}

// End returns the upper bound of the cursor, clamped to the value.
func (c *Cursor) End(value *Value) int {
	end := c.anchor
	if c.head > end {
		end = c.head
	}
	return value.clamp(end)
}

// Selection returns the selected range, or ok=false when the cursor is a
// plain caret (anchor == head after clamping).
func (c *Cursor) Selection(value *Value) (start, end int, ok bool) {
	start = c.Start(value)
	end = c.End(value)
	if start == end {
		return 0, 0, false
	}
	return start, end, true
}

// IsSelecting returns true when a non-empty selection is active.
func (c *Cursor) IsSelecting(value *Value) bool {
	_, _, ok := c.Selection(value)
	return ok
}

// MoveTo collapses the cursor to a caret at the given offset.
func (c *Cursor) MoveTo(position int) {
	if position < 0 {
		position = 0
	}
	c.anchor = position
	c.head = position
}

// MoveLeft collapses the cursor one position to the left. With an active
// selection it collapses to the selection's left edge.
func (c *Cursor) MoveLeft(value *Value) {
	c.MoveLeftBy(value, 1)
}

// MoveLeftBy collapses the cursor amount positions to the left of its
// start. With an active selection the selection's left edge counts as one
// of the positions.
func (c *Cursor) MoveLeftBy(value *Value, amount int) {
	if start, _, ok := c.Selection(value); ok && amount > 0 {
		c.MoveTo(start)
		return
	}
	c.MoveTo(c.Start(value) - amount)
}

// MoveRight collapses the cursor one position to the right. With an active
// selection it collapses to the selection's right edge.
func (c *Cursor) MoveRight(value *Value) {
	c.MoveRightBy(value, 1)
}

// MoveRightBy collapses the cursor amount positions to the right of its
// end, clamped to the value length.
func (c *Cursor) MoveRightBy(value *Value, amount int) {
	if _, end, ok := c.Selection(value); ok && amount > 0 {
		c.MoveTo(end)
		return
	}
	c.MoveTo(value.clamp(c.End(value) + amount))
}

// MoveToStart collapses the cursor to the beginning of the value.
func (c *Cursor) MoveToStart() {
	c.MoveTo(0)
}

// MoveToEnd collapses the cursor to the end of the value.
func (c *Cursor) MoveToEnd(value *Value) {
	c.MoveTo(value.Len())
}

// SelectRange selects from anchor to head. Equal offsets collapse to a caret.
func (c *Cursor) SelectRange(anchor, head int) {
	if anchor < 0 {
		anchor = 0
	}
	if head < 0 {
		head = 0
	}
	c.anchor = anchor
	c.head = head
}

// SelectLeft extends the selection head one position to the left.
func (c *Cursor) SelectLeft(value *Value) {
	if c.head > 0 {
		c.SelectRange(c.anchor, c.head-1)
	}
}

// SelectRight extends the selection head one position to the right.
func (c *Cursor) SelectRight(value *Value) {
	if c.head < value.Len() {
		c.SelectRange(c.anchor, c.head+1)
	}
}

// SelectAll selects the entire value.
func (c *Cursor) SelectAll(value *Value) {
	c.SelectRange(0, value.Len())
}
