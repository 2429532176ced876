package layout

import (
	"math"
	"testing"

	"github.com/go-vellum/vellum/pkg/rendering"
)

func limitsUpTo(w, h float64) Limits {
	return NewLimits(rendering.Size{}, rendering.Size{Width: w, Height: h})
}

func TestResolveFixedClampsToLimits(t *testing.T) {
	limits := limitsUpTo(200, 100)

	size := limits.Resolve(Fixed(50), Fixed(300))
	if size.Width != 50 {
		t.Errorf("width = %v, want 50", size.Width)
	}
	if size.Height != 100 {
		t.Errorf("height = %v, want clamped 100", size.Height)
	}
}

func TestResolveFillTakesMax(t *testing.T) {
	limits := limitsUpTo(640, 480)

	size := limits.Resolve(Fill(), Fill())
	if size.Width != 640 || size.Height != 480 {
		t.Errorf("size = %+v, want 640x480", size)
	}
}

func TestResolveFraction(t *testing.T) {
	limits := limitsUpTo(200, 100)

	size := limits.Resolve(Fraction(0.5), Fraction(0.25))
	if size.Width != 100 {
		t.Errorf("width = %v, want 100", size.Width)
	}
	if size.Height != 25 {
		t.Errorf("height = %v, want 25", size.Height)
	}
}

func TestResolveShrinkTakesMin(t *testing.T) {
	limits := NewLimits(
		rendering.Size{Width: 10, Height: 20},
		rendering.Size{Width: 200, Height: 100},
	)

	size := limits.Resolve(Shrink(), Shrink())
	if size.Width != 10 || size.Height != 20 {
		t.Errorf("size = %+v, want 10x20", size)
	}
}

func TestResolveRespectsMinimum(t *testing.T) {
	limits := NewLimits(
		rendering.Size{Width: 30, Height: 30},
		rendering.Size{Width: 100, Height: 100},
	)

	size := limits.Resolve(Fixed(5), Fixed(5))
	if size.Width != 30 || size.Height != 30 {
		t.Errorf("size = %+v, want min 30x30", size)
	}
}

func TestResolveUnboundedFill(t *testing.T) {
	limits := NewLimits(
		rendering.Size{Width: 40, Height: 40},
		rendering.Size{Width: math.Inf(1), Height: math.Inf(1)},
	)

	// Fill against unbounded space degrades to the minimum.
	size := limits.Resolve(Fixed(80), Fill())
	if size.Width != 80 {
		t.Errorf("width = %v, want 80", size.Width)
	}
	if size.Height != 40 {
		t.Errorf("height = %v, want min 40", size.Height)
	}
}

func TestFractionClamps(t *testing.T) {
	if Fraction(2).Value != 1 {
		t.Errorf("fraction above 1 should clamp to 1")
	}
	if Fraction(-1).Value != 0 {
		t.Errorf("negative fraction should clamp to 0")
	}
}
