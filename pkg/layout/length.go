// Package layout provides the sizing policies widgets use to resolve their
// dimensions against available space.
package layout

import (
	"fmt"
	"math"

	"github.com/go-vellum/vellum/pkg/rendering"
)

// LengthUnit identifies a sizing policy.
type LengthUnit int

const (
	// UnitFixed is an absolute size in logical pixels.
	UnitFixed LengthUnit = iota
	// UnitFill takes all available space.
	UnitFill
	// UnitFraction takes a fraction of available space.
	UnitFraction
	// UnitShrink takes the minimum allowed space.
	UnitShrink
)

// Length is a sizing policy for one axis: fixed, fill, fractional, or shrink.
type Length struct {
	Unit  LengthUnit
	Value float64 // Pixels for UnitFixed, fraction in (0, 1] for UnitFraction
}

// Fixed returns a length of the given number of logical pixels.
func Fixed(pixels float64) Length {
	return Length{Unit: UnitFixed, Value: pixels}
}

// Fill returns a length that takes all available space.
func Fill() Length {
	return Length{Unit: UnitFill}
}

// Fraction returns a length that takes the given fraction of available
// space. Fractions outside (0, 1] are clamped.
func Fraction(fraction float64) Length {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return Length{Unit: UnitFraction, Value: fraction}
}

// Shrink returns a length that takes the minimum allowed space.
func Shrink() Length {
	return Length{Unit: UnitShrink}
}

func (l Length) String() string {
	switch l.Unit {
	case UnitFixed:
		return fmt.Sprintf("fixed(%g)", l.Value)
	case UnitFill:
		return "fill"
	case UnitFraction:
		return fmt.Sprintf("fraction(%g)", l.Value)
	case UnitShrink:
		return "shrink"
	default:
		return fmt.Sprintf("Length(%d)", int(l.Unit))
	}
}

// Limits is the box of minimum and maximum sizes available to a widget.
type Limits struct {
	Min rendering.Size
	Max rendering.Size
}

// NewLimits creates limits between a minimum and maximum size.
func NewLimits(min, max rendering.Size) Limits {
	return Limits{Min: min, Max: max}
}

// Resolve applies width and height policies against the limits and returns
// the resulting size. The result always honors Min and Max; resolution is
// pure and has no side effects.
func (l Limits) Resolve(width, height Length) rendering.Size {
	return rendering.Size{
		Width:  l.resolveAxis(width, l.Min.Width, l.Max.Width),
		Height: l.resolveAxis(height, l.Min.Height, l.Max.Height),
	}
}

func (l Limits) resolveAxis(length Length, min, max float64) float64 {
	// Fill and fraction are meaningless against unbounded space; they
	// degrade to the minimum.
	available := max
	if math.IsInf(available, 1) {
		available = min
	}

	var resolved float64
	switch length.Unit {
	case UnitFixed:
		resolved = length.Value
	case UnitFill:
		resolved = available
	case UnitFraction:
		resolved = available * length.Value
	case UnitShrink:
		resolved = min
	}
	return clamp(resolved, min, max)
}

func clamp(v, min, max float64) float64 {
	if math.IsInf(max, 1) {
		return math.Max(v, min)
	}
	return math.Max(min, math.Min(v, max))
}
