package vtest

import (
	"testing"
	"time"

	"github.com/go-vellum/vellum/pkg/rendering"
)

func TestFakeClockAdvances(t *testing.T) {
	clock := NewFakeClock()
	start := clock.Now()

	clock.Advance(250 * time.Millisecond)
	if got := clock.Now().Sub(start); got != 250*time.Millisecond {
		t.Errorf("advanced %v, want 250ms", got)
	}

	exact := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock.Set(exact)
	if !clock.Now().Equal(exact) {
		t.Errorf("Set did not take effect, now = %v", clock.Now())
	}
}

func TestCanvasRecordsOps(t *testing.T) {
	canvas := NewCanvas(rendering.Size{Width: 100, Height: 100})

	canvas.Save()
	canvas.Translate(10, 20)
	canvas.DrawRect(rendering.RectFromLTWH(0, 0, 50, 50), rendering.DefaultPaint())
	canvas.Restore()

	names := canvas.Names()
	want := []string{"save", "translate", "drawRect", "restore"}
	if len(names) != len(want) {
		t.Fatalf("recorded %d ops, want %d", len(names), len(want))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("op[%d] = %s, want %s", i, names[i], name)
		}
	}

	if got := canvas.Ops()[1].String(); got != "translate(dx=10 dy=20)" {
		t.Errorf("serialized op = %q", got)
	}
}

func TestCanvasReset(t *testing.T) {
	canvas := NewCanvas(rendering.Size{Width: 10, Height: 10})
	canvas.Save()
	canvas.Reset()

	if len(canvas.Ops()) != 0 {
		t.Errorf("expected no ops after Reset, got %d", len(canvas.Ops()))
	}
}
