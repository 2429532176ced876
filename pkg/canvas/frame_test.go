package canvas

import (
	"testing"

	"github.com/go-vellum/vellum/pkg/rendering"
)

// opCanvas records the order of replayed operations by name.
type opCanvas struct {
	ops []string
}

func (c *opCanvas) Save()                    { c.ops = append(c.ops, "save") }
func (c *opCanvas) Restore()                 { c.ops = append(c.ops, "restore") }
func (c *opCanvas) Translate(dx, dy float64) { c.ops = append(c.ops, "translate") }
func (c *opCanvas) Scale(sx, sy float64)     { c.ops = append(c.ops, "scale") }
func (c *opCanvas) Rotate(radians float64)   { c.ops = append(c.ops, "rotate") }
func (c *opCanvas) ClipRect(rect rendering.Rect) {
	c.ops = append(c.ops, "clipRect")
}
func (c *opCanvas) Clear(color rendering.Color) {
	c.ops = append(c.ops, "clear")
}
func (c *opCanvas) DrawRect(rect rendering.Rect, paint rendering.Paint) {
	c.ops = append(c.ops, "drawRect")
}
func (c *opCanvas) DrawCircle(center rendering.Offset, radius float64, paint rendering.Paint) {
	c.ops = append(c.ops, "drawCircle")
}
func (c *opCanvas) DrawLine(start, end rendering.Offset, paint rendering.Paint) {
	c.ops = append(c.ops, "drawLine")
}
func (c *opCanvas) DrawPath(path *rendering.Path, paint rendering.Paint) {
	c.ops = append(c.ops, "drawPath")
}
func (c *opCanvas) DrawText(layout *rendering.TextLayout, position rendering.Offset) {
	c.ops = append(c.ops, "drawText")
}
func (c *opCanvas) Size() rendering.Size { return rendering.Size{} }

func TestFrameCenter(t *testing.T) {
	frame := NewFrame(rendering.Size{Width: 200, Height: 100})

	center := frame.Center()
	if center.X != 100 || center.Y != 50 {
		t.Errorf("center = %v, want (100, 50)", center)
	}
}

func TestFrameRecordsDrawingOrder(t *testing.T) {
	frame := NewFrame(rendering.Size{Width: 100, Height: 100})

	center := frame.Center()
	circle := rendering.NewPath()
	circle.Circle(center.X, center.Y, 40)
	frame.Fill(circle, Fill{Color: rendering.ColorBlack})
	frame.Stroke(circle, DefaultStroke())
	frame.FillText(Text{Content: "hello", Size: 14, Color: rendering.ColorWhite})

	target := &opCanvas{}
	frame.Geometry().Replay(target)

	want := []string{"drawPath", "drawPath", "drawText"}
	if len(target.ops) != len(want) {
		t.Fatalf("replayed %d ops, want %d", len(target.ops), len(want))
	}
	for i, op := range want {
		if target.ops[i] != op {
			t.Errorf("op[%d] = %s, want %s", i, target.ops[i], op)
		}
	}
}

func TestFrameWithSavePairsSaveAndRestore(t *testing.T) {
	frame := NewFrame(rendering.Size{Width: 100, Height: 100})

	frame.WithSave(func() {
		frame.Translate(rendering.Offset{X: 10, Y: 10})
		frame.Rotate(0.5)
		frame.FillRect(rendering.RectFromLTWH(0, 0, 10, 10), Fill{Color: rendering.ColorRed})
	})

	target := &opCanvas{}
	frame.Geometry().Replay(target)

	want := []string{"save", "translate", "rotate", "drawRect", "restore"}
	if len(target.ops) != len(want) {
		t.Fatalf("replayed %d ops, want %d", len(target.ops), len(want))
	}
	for i, op := range want {
		if target.ops[i] != op {
			t.Errorf("op[%d] = %s, want %s", i, target.ops[i], op)
		}
	}
}

func TestFrameStrokeZeroWidthDefaultsToHairline(t *testing.T) {
	stroke := Stroke{Color: rendering.ColorBlack}

	paint := stroke.paint()
	if paint.StrokeWidth != 1 {
		t.Errorf("stroke width = %v, want 1", paint.StrokeWidth)
	}
	if paint.Style != rendering.PaintStyleStroke {
		t.Errorf("paint style = %v, want stroke", paint.Style)
	}
}
