package vtest

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-vellum/vellum/pkg/rendering"
)

// DisplayOp is one serialized drawing operation.
type DisplayOp struct {
	Op     string
	Params map[string]any
}

// String renders the op in a stable, diffable form.
func (o DisplayOp) String() string {
	if len(o.Params) == 0 {
		return o.Op
	}
	keys := make([]string, 0, len(o.Params))
	for key := range o.Params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", key, o.Params[key]))
	}
	return o.Op + "(" + strings.Join(parts, " ") + ")"
}

// Canvas records drawing operations as serialized ops for assertions.
// Replay a geometry's display list onto it, then compare Ops or Names.
type Canvas struct {
	ops  []DisplayOp
	size rendering.Size
}

// NewCanvas creates an empty recording canvas of the given size.
func NewCanvas(size rendering.Size) *Canvas {
	return &Canvas{size: size}
}

// Ops returns the recorded operations in order.
func (c *Canvas) Ops() []DisplayOp {
	return c.ops
}

// Names returns just the operation names in order.
func (c *Canvas) Names() []string {
	names := make([]string, len(c.ops))
	for i, op := range c.ops {
		names[i] = op.Op
	}
	return names
}

// Reset discards all recorded operations.
func (c *Canvas) Reset() {
	c.ops = nil
}

func (c *Canvas) record(op string, params map[string]any) {
	c.ops = append(c.ops, DisplayOp{Op: op, Params: params})
}

func (c *Canvas) Save()    { c.record("save", nil) }
func (c *Canvas) Restore() { c.record("restore", nil) }

func (c *Canvas) Translate(dx, dy float64) {
	c.record("translate", map[string]any{"dx": round2(dx), "dy": round2(dy)})
}

func (c *Canvas) Scale(sx, sy float64) {
	c.record("scale", map[string]any{"sx": round2(sx), "sy": round2(sy)})
}

func (c *Canvas) Rotate(radians float64) {
	c.record("rotate", map[string]any{"radians": round2(radians)})
}

func (c *Canvas) ClipRect(rect rendering.Rect) {
	c.record("clipRect", map[string]any{"rect": serializeRect(rect)})
}

func (c *Canvas) Clear(color rendering.Color) {
	c.record("clear", map[string]any{"color": serializeColor(color)})
}

func (c *Canvas) DrawRect(rect rendering.Rect, paint rendering.Paint) {
	c.record("drawRect", map[string]any{
		"rect":  serializeRect(rect),
		"paint": serializePaint(paint),
	})
}

func (c *Canvas) DrawCircle(center rendering.Offset, radius float64, paint rendering.Paint) {
	c.record("drawCircle", map[string]any{
		"center": serializeOffset(center),
		"radius": round2(radius),
		"paint":  serializePaint(paint),
	})
}

func (c *Canvas) DrawLine(start, end rendering.Offset, paint rendering.Paint) {
	c.record("drawLine", map[string]any{
		"start": serializeOffset(start),
		"end":   serializeOffset(end),
		"paint": serializePaint(paint),
	})
}

func (c *Canvas) DrawPath(path *rendering.Path, paint rendering.Paint) {
	c.record("drawPath", map[string]any{
		"commands": len(path.Commands),
		"paint":    serializePaint(paint),
	})
}

func (c *Canvas) DrawText(layout *rendering.TextLayout, position rendering.Offset) {
	c.record("drawText", map[string]any{
		"text":     layout.Text,
		"position": serializeOffset(position),
	})
}

func (c *Canvas) Size() rendering.Size { return c.size }

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func serializeRect(r rendering.Rect) string {
	return fmt.Sprintf("[%v %v %v %v]", round2(r.Left), round2(r.Top), round2(r.Right), round2(r.Bottom))
}

func serializeOffset(o rendering.Offset) string {
	return fmt.Sprintf("(%v, %v)", round2(o.X), round2(o.Y))
}

func serializeColor(c rendering.Color) string {
	return fmt.Sprintf("#%08X", uint32(c))
}

func serializePaint(p rendering.Paint) string {
	if p.Style == rendering.PaintStyleStroke {
		return fmt.Sprintf("stroke(%s w=%v)", serializeColor(p.Color), round2(p.StrokeWidth))
	}
	return fmt.Sprintf("fill(%s)", serializeColor(p.Color))
}
