// Package editing provides the text-editing core: a mutable text buffer,
// a caret/selection cursor, and the atomic edit operations that keep the
// two consistent.
package editing

// Value is the text content of a buffer as an ordered rune sequence.
//
// Operations are defined over rune offsets in [0, Len()]. Every index is
// clamped before use, so no operation can read or write out of bounds.
type Value struct {
	runes []rune
}

// NewValue creates a value from a string.
func NewValue(text string) *Value {
	return &Value{runes: []rune(text)}
}

// Len returns the number of runes in the value.
func (v *Value) Len() int {
	return len(v.runes)
}

// String returns the value as a string.
func (v *Value) String() string {
	return string(v.runes)
}

// Until returns a new value containing the runes before the given offset.
func (v *Value) Until(index int) *Value {
	index = v.clamp(index)
	return &Value{runes: append([]rune(nil), v.runes[:index]...)}
}

// Select returns a new value containing the runes in [start, end).
func (v *Value) Select(start, end int) *Value {
	start = v.clamp(start)
	end = v.clamp(end)
	if start > end {
		start, end = end, start
	}
	return &Value{runes: append([]rune(nil), v.runes[start:end]...)}
}

// Insert places a single rune at the given offset.
func (v *Value) Insert(index int, r rune) {
	index = v.clamp(index)
	v.runes = append(v.runes, 0)
	copy(v.runes[index+1:], v.runes[index:])
	v.runes[index] = r
}

// InsertMany places the contents of another value at the given offset.
func (v *Value) InsertMany(index int, content *Value) {
	if content == nil || content.Len() == 0 {
		return
	}
	index = v.clamp(index)
	tail := append([]rune(nil), v.runes[index:]...)
	v.runes = append(v.runes[:index], content.runes...)
	v.runes = append(v.runes, tail...)
}

// Remove deletes the rune at the given offset. Out-of-range offsets are
// a no-op.
func (v *Value) Remove(index int) {
	if index < 0 || index >= len(v.runes) {
		return
	}
	v.runes = append(v.runes[:index], v.runes[index+1:]...)
}

// RemoveMany deletes the runes in [start, end).
func (v *Value) RemoveMany(start, end int) {
	start = v.clamp(start)
	end = v.clamp(end)
	if start > end {
		start, end = end, start
	}
	v.runes = append(v.runes[:start], v.runes[end:]...)
}

// clamp bounds an offset to [0, len].
func (v *Value) clamp(index int) int {
	if index < 0 {
		return 0
	}
	if index > len(v.runes) {
		return len(v.runes)
	}
	return index
}
