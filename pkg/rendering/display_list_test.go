package rendering

import "testing"

// replayCanvas records the order of executed operations by name.
type replayCanvas struct {
	ops  []string
	size Size
}

func (c *replayCanvas) Save()                            { c.ops = append(c.ops, "save") }
func (c *replayCanvas) Restore()                         { c.ops = append(c.ops, "restore") }
func (c *replayCanvas) Translate(dx, dy float64)         { c.ops = append(c.ops, "translate") }
func (c *replayCanvas) Scale(sx, sy float64)             { c.ops = append(c.ops, "scale") }
func (c *replayCanvas) Rotate(radians float64)           { c.ops = append(c.ops, "rotate") }
func (c *replayCanvas) ClipRect(rect Rect)               { c.ops = append(c.ops, "clipRect") }
func (c *replayCanvas) Clear(color Color)                { c.ops = append(c.ops, "clear") }
func (c *replayCanvas) DrawRect(rect Rect, paint Paint)  { c.ops = append(c.ops, "drawRect") }
func (c *replayCanvas) DrawLine(a, b Offset, paint Paint) { c.ops = append(c.ops, "drawLine") }
func (c *replayCanvas) DrawPath(path *Path, paint Paint) { c.ops = append(c.ops, "drawPath") }
func (c *replayCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	c.ops = append(c.ops, "drawCircle")
}
func (c *replayCanvas) DrawText(layout *TextLayout, position Offset) {
	c.ops = append(c.ops, "drawText")
}
func (c *replayCanvas) Size() Size { return c.size }

func TestDisplayListReplaysOpsInOrder(t *testing.T) {
	var recorder PictureRecorder
	canvas := recorder.BeginRecording(Size{Width: 100, Height: 100})

	canvas.Save()
	canvas.Translate(10, 20)
	canvas.DrawRect(RectFromLTWH(0, 0, 50, 50), DefaultPaint())
	canvas.Restore()

	list := recorder.EndRecording()

	target := &replayCanvas{}
	list.Paint(target)

	want := []string{"save", "translate", "drawRect", "restore"}
	if len(target.ops) != len(want) {
		t.Fatalf("replayed %d ops, want %d", len(target.ops), len(want))
	}
	for i, op := range want {
		if target.ops[i] != op {
			t.Errorf("op[%d] = %s, want %s", i, target.ops[i], op)
		}
	}
}

func TestDisplayListIsImmutableAfterRecording(t *testing.T) {
	var recorder PictureRecorder
	canvas := recorder.BeginRecording(Size{Width: 10, Height: 10})
	canvas.DrawCircle(Offset{X: 5, Y: 5}, 2, DefaultPaint())
	list := recorder.EndRecording()

	// Drawing after EndRecording must not leak into the finished list.
	canvas.DrawCircle(Offset{X: 1, Y: 1}, 1, DefaultPaint())

	if list.Len() != 1 {
		t.Errorf("list has %d ops, want 1", list.Len())
	}
}

func TestEndRecordingWithoutBeginReturnsEmptyList(t *testing.T) {
	var recorder PictureRecorder
	list := recorder.EndRecording()
	if list.Len() != 0 {
		t.Errorf("list has %d ops, want 0", list.Len())
	}
}

func TestDisplayListKeepsRecordingSize(t *testing.T) {
	var recorder PictureRecorder
	recorder.BeginRecording(Size{Width: 320, Height: 240})
	list := recorder.EndRecording()

	if got := list.Size(); got.Width != 320 || got.Height != 240 {
		t.Errorf("list size = %+v, want 320x240", got)
	}
}
