package rendering

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathFillRule determines how path interiors are calculated for filling.
type PathFillRule int

const (
	// FillRuleNonZero fills regions with nonzero winding count.
	FillRuleNonZero PathFillRule = iota

	// FillRuleEvenOdd fills regions crossed an odd number of times.
	// Useful for creating holes: nested shapes alternate between filled/unfilled.
	FillRuleEvenOdd
)

// String returns a human-readable representation of the path fill rule.
func (r PathFillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("PathFillRule(%d)", int(r))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path built from lines, curves, arcs, and circles.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, Arc, ArcTo, Circle, and
// Close. Arcs and circles are flattened to cubic Bezier segments so every
// path reduces to the five primitive commands a renderer backend consumes.
type Path struct {
	Commands []PathCommand
	FillRule PathFillRule

	current     Offset // Current point after the last command
	subpathFrom Offset // Start of the current subpath (Close target)
	hasCurrent  bool
}

// NewPath creates a new empty path with nonzero fill rule.
func NewPath() *Path {
	return &Path{FillRule: FillRuleNonZero}
}

// NewPathWithFillRule creates a new empty path with the specified fill rule.
func NewPathWithFillRule(fillRule PathFillRule) *Path {
	return &Path{FillRule: fillRule}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
	p.current = Offset{X: x, Y: y}
	p.subpathFrom = p.current
	p.hasCurrent = true
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
	p.current = Offset{X: x, Y: y}
	p.hasCurrent = true
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
	p.current = Offset{X: x2, Y: y2}
	p.hasCurrent = true
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
	p.current = Offset{X: x3, Y: y3}
	p.hasCurrent = true
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
	p.current = p.subpathFrom
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return p.hasCurrent
}

// CurrentPoint returns the current point, or the zero offset if none exists.
func (p *Path) CurrentPoint() Offset {
	return p.current
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
	p.hasCurrent = false
	p.current = Offset{}
	p.subpathFrom = Offset{}
}

// Rectangle adds a rectangle subpath.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// bezierCircle is the control-point distance for approximating a quarter
// circle with a cubic Bezier: 4/3 * (sqrt(2) - 1).
const bezierCircle = 0.5522847498307936

// Circle adds a circle subpath centered at (cx, cy) with the given radius.
func (p *Path) Circle(cx, cy, r float64) {
	offset := r * bezierCircle

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.Close()
}

// Ellipse adds an ellipse subpath centered at (cx, cy) with radii rx, ry.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	ox := rx * bezierCircle
	oy := ry * bezierCircle

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// RoundedRectangle adds a rectangle subpath with rounded corners.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	// Clamp radius to half of the smaller dimension
	maxR := math.Min(w, h) / 2
	if r > maxR {
		r = maxR
	}

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, -math.Pi/2, 0)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	p.Close()
}

// Arc adds a circular arc around center (cx, cy) from angle1 to angle2,
// both in radians, sweeping in the direction of increasing angle.
//
// If the path has a current point, a line connects it to the arc start;
// otherwise the arc starts a new subpath.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}
	p.arcSweep(cx, cy, r, angle1, angle2)
}

// ArcTo adds an arc of the given radius connecting the segment from the
// current point to (x1, y1) with the segment from (x1, y1) to (x2, y2),
// following HTML canvas arcTo semantics. Falls back to a straight line when
// the points are collinear or the radius is degenerate.
func (p *Path) ArcTo(x1, y1, x2, y2, radius float64) {
	if !p.hasCurrent {
		p.MoveTo(x1, y1)
		return
	}

	p0 := p.current
	p1 := Offset{X: x1, Y: y1}
	p2 := Offset{X: x2, Y: y2}

	v1 := Offset{X: p0.X - p1.X, Y: p0.Y - p1.Y}
	v2 := Offset{X: p2.X - p1.X, Y: p2.Y - p1.Y}
	len1 := math.Hypot(v1.X, v1.Y)
	len2 := math.Hypot(v2.X, v2.Y)
	cross := v1.X*v2.Y - v1.Y*v2.X

	if radius <= 0 || len1 < epsilon || len2 < epsilon || math.Abs(cross) < epsilon {
		p.LineTo(x1, y1)
		return
	}

	v1 = Offset{X: v1.X / len1, Y: v1.Y / len1}
	v2 = Offset{X: v2.X / len2, Y: v2.Y / len2}

	// Half angle between the two segments at the corner.
	dot := v1.X*v2.X + v1.Y*v2.Y
	halfAngle := math.Acos(math.Max(-1, math.Min(1, dot))) / 2

	tanHalf := math.Tan(halfAngle)
	if math.Abs(tanHalf) < epsilon {
		p.LineTo(x1, y1)
		return
	}

	// Distance from the corner to each tangent point.
	dist := radius / tanHalf

	t1 := Offset{X: p1.X + v1.X*dist, Y: p1.Y + v1.Y*dist}
	t2 := Offset{X: p1.X + v2.X*dist, Y: p1.Y + v2.Y*dist}

	// Arc center lies along the corner bisector.
	bisector := Offset{X: v1.X + v2.X, Y: v1.Y + v2.Y}
	blen := math.Hypot(bisector.X, bisector.Y)
	centerDist := radius / math.Sin(halfAngle)
	center := Offset{
		X: p1.X + bisector.X/blen*centerDist,
		Y: p1.Y + bisector.Y/blen*centerDist,
	}

	a1 := math.Atan2(t1.Y-center.Y, t1.X-center.X)
	a2 := math.Atan2(t2.Y-center.Y, t2.X-center.X)

	// The tangent circle always contributes the minor arc between the two
	// tangent points, so sweep along the shortest angular delta.
	delta := math.Mod(a2-a1, 2*math.Pi)
	if delta > math.Pi {
		delta -= 2 * math.Pi
	} else if delta < -math.Pi {
		delta += 2 * math.Pi
	}

	p.LineTo(t1.X, t1.Y)
	p.arcSweep(center.X, center.Y, radius, a1, a1+delta)
}

// arcSweep appends cubic segments approximating an arc from a1 to a2,
// sweeping in either direction. Segments span at most 90 degrees each.
func (p *Path) arcSweep(cx, cy, r, a1, a2 float64) {
	const maxAngle = math.Pi / 2
	total := a2 - a1
	numSegments := int(math.Ceil(math.Abs(total) / maxAngle))
	if numSegments == 0 {
		return
	}
	angleStep := total / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		s1 := a1 + float64(i)*angleStep
		s2 := s1 + angleStep
		p.arcSegment(cx, cy, r, s1, s2)
	}
}

// arcSegment adds a single arc segment of at most 90 degrees as one cubic
// Bezier, using the standard tangent-length approximation.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	c1x := x1 - alpha*r*sin1
	c1y := y1 + alpha*r*cos1
	c2x := x2 + alpha*r*sin2
	c2y := y2 - alpha*r*cos2

	if !p.hasCurrent {
		p.MoveTo(x1, y1)
	} else if math.Abs(p.current.X-x1) > epsilon || math.Abs(p.current.Y-y1) > epsilon {
		p.LineTo(x1, y1)
	}
	p.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}
