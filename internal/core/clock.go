package core

import "time"

// DefaultMaxFrameDelta caps a single frame's delta so that a stalled host
// (suspended terminal, dragged window) does not teleport entities.
const DefaultMaxFrameDelta = 100 * time.Millisecond

// Clock turns host frame timestamps into per-frame deltas.
// The first Tick after creation or Reset returns zero.
type Clock struct {
	last     time.Time
	started  bool
	maxDelta time.Duration
}

// NewClock creates a clock that clamps deltas to maxDelta.
// A non-positive maxDelta uses DefaultMaxFrameDelta.
func NewClock(maxDelta time.Duration) *Clock {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxFrameDelta
	}
	return &Clock{maxDelta: maxDelta}
}

// Tick records now as the current frame time and returns the delta since
// the previous frame, clamped to [0, maxDelta].
func (c *Clock) Tick(now time.Time) time.Duration {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last)
	c.last = now

	if dt < 0 {
		return 0
	}
	if dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}

// Reset forgets the previous frame so the next Tick returns zero.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}
