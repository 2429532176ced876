package animation

import (
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestTickerReportsElapsedTime(t *testing.T) {
	fake := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(fake)
	defer SetClock(prev)

	var elapsed time.Duration
	ticker := NewTicker(func(e time.Duration) { elapsed = e })
	ticker.Start()
	defer ticker.Stop()

	fake.now = fake.now.Add(16 * time.Millisecond)
	StepTickers()

	if elapsed != 16*time.Millisecond {
		t.Errorf("elapsed = %v, want 16ms", elapsed)
	}
	if ticker.Elapsed() != 16*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 16ms", ticker.Elapsed())
	}
}

func TestStoppedTickerDoesNotTick(t *testing.T) {
	fake := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(fake)
	defer SetClock(prev)

	ticks := 0
	ticker := NewTicker(func(time.Duration) { ticks++ })
	ticker.Start()
	ticker.Stop()

	fake.now = fake.now.Add(time.Second)
	StepTickers()

	if ticks != 0 {
		t.Errorf("stopped ticker ticked %d times", ticks)
	}
	if HasActiveTickers() {
		t.Errorf("no tickers should be active after Stop")
	}
}

func TestStartIsIdempotent(t *testing.T) {
	fake := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(fake)
	defer SetClock(prev)

	ticker := NewTicker(func(time.Duration) {})
	ticker.Start()
	fake.now = fake.now.Add(time.Second)
	ticker.Start()
	defer ticker.Stop()

	if ticker.Elapsed() != time.Second {
		t.Errorf("second Start should not reset the start time, elapsed = %v", ticker.Elapsed())
	}
}
