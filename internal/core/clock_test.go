package core

import (
	"testing"
	"time"
)

func TestClockFirstAdvanceYieldsOneTick(t *testing.T) {
	c := NewClock(60)
	if got := c.Advance(time.Unix(0, 0)); got != 1 {
		t.Errorf("first Advance = %d ticks, want 1", got)
	}
}

func TestClockFixedSteps(t *testing.T) {
	c := NewClock(60)
	start := time.Unix(100, 0)
	c.Advance(start)

	// Exactly 3 intervals elapsed -> exactly 3 ticks
	if got := c.Advance(start.Add(3 * c.Interval())); got != 3 {
		t.Errorf("Advance after 3 intervals = %d ticks, want 3", got)
	}
}

func TestClockCarriesRemainder(t *testing.T) {
	c := NewClock(60)
	start := time.Unix(100, 0)
	c.Advance(start)

	half := c.Interval() / 2

	// Half an interval: no tick due yet
	if got := c.Advance(start.Add(half)); got != 0 {
		t.Errorf("Advance after half interval = %d ticks, want 0", got)
	}
	// Another half: the carried remainder completes one tick
	if got := c.Advance(start.Add(2 * half)); got != 1 {
		t.Errorf("Advance after second half interval = %d ticks, want 1", got)
	}
}

func TestClockClampsLargeElapsed(t *testing.T) {
	c := NewClock(60)
	start := time.Unix(100, 0)
	c.Advance(start)

	// A backgrounded host waking up after 10 seconds must not produce a
	// 600-tick catch-up burst.
	got := c.Advance(start.Add(10 * time.Second))
	maxTicks := int(MaxFrameTime / c.Interval())
	if got > maxTicks {
		t.Errorf("Advance after 10s = %d ticks, want at most %d", got, maxTicks)
	}
	if got == 0 {
		t.Error("Advance after long stall should still produce ticks")
	}
}

func TestClockNegativeElapsed(t *testing.T) {
	c := NewClock(60)
	start := time.Unix(100, 0)
	c.Advance(start)

	// Wall clock stepping backwards must not corrupt the accumulator.
	if got := c.Advance(start.Add(-time.Second)); got != 0 {
		t.Errorf("Advance with backwards clock = %d ticks, want 0", got)
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(60)
	start := time.Unix(100, 0)
	c.Advance(start)
	c.Advance(start.Add(c.Interval() / 2))

	c.Reset()

	if got := c.Advance(start.Add(time.Hour)); got != 1 {
		t.Errorf("first Advance after Reset = %d ticks, want 1", got)
	}
}

func TestClockBadTickRateFallsBack(t *testing.T) {
	c := NewClock(0)
	if c.Interval() != time.Second/60 {
		t.Errorf("Interval = %v, want %v", c.Interval(), time.Second/60)
	}
}
