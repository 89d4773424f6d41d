package core

import "time"

// MaxFrameTime caps the elapsed time fed into the accumulator so that a
// stalled host (suspended terminal, debugger pause) does not trigger an
// unbounded catch-up burst of simulation ticks.
const MaxFrameTime = 250 * time.Millisecond

// Clock is a fixed-timestep accumulator. The platform feeds it wall-clock
// wakeups at whatever cadence the host provides; the clock answers how many
// fixed simulation ticks are due, carrying any remainder forward. No
// interpolation between ticks is performed.
type Clock struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
	started     bool
}

// NewClock creates a clock running at the given tick rate (ticks per second).
// Rates below 1 fall back to 60.
func NewClock(tickRate int) *Clock {
	if tickRate < 1 {
		tickRate = 60
	}
	return &Clock{interval: time.Second / time.Duration(tickRate)}
}

// Interval returns the fixed tick interval.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Advance records a wakeup at the given time and returns the number of fixed
// ticks that should run. Elapsed time is clamped to MaxFrameTime; the first
// call after creation or Reset yields exactly one tick.
func (c *Clock) Advance(now time.Time) int {
	if !c.started {
		c.started = true
		c.last = now
		return 1
	}

	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > MaxFrameTime {
		elapsed = MaxFrameTime
	}

	c.accumulator += elapsed
	ticks := 0
	for c.accumulator >= c.interval {
		c.accumulator -= c.interval
		ticks++
	}
	return ticks
}

// Reset clears accumulated time so the next Advance starts fresh.
// Used when resuming from pause-like suspensions in the host.
func (c *Clock) Reset() {
	c.accumulator = 0
	c.started = false
}
