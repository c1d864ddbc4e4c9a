package engine

// Countdown tracks a per-session time limit in simulation ticks.
// Expiry fires exactly once; later ticks are no-ops. Games treat expiry
// as an auto-submit or auto-fail transition, never as an error.
type Countdown struct {
	tickRate  int
	remaining int // Ticks left
	expired   bool
	fired     bool
}

// NewCountdown creates a countdown of the given duration in seconds.
// A non-positive duration yields an inactive countdown that never expires.
func NewCountdown(seconds, tickRate int) *Countdown {
	if tickRate <= 0 {
		tickRate = 60
	}
	c := &Countdown{tickRate: tickRate}
	c.Reset(seconds)
	return c
}

// Reset restarts the countdown with a new duration in seconds.
func (c *Countdown) Reset(seconds int) {
	c.expired = false
	c.fired = false
	if seconds <= 0 {
		c.remaining = -1
		return
	}
	c.remaining = seconds * c.tickRate
}

// Active reports whether the countdown is running.
func (c *Countdown) Active() bool {
	return c.remaining >= 0 && !c.expired
}

// Tick advances the countdown by one simulation tick.
// Returns true exactly once, on the tick the countdown reaches zero.
func (c *Countdown) Tick() bool {
	if c.remaining < 0 || c.expired {
		return false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.expired = true
		if !c.fired {
			c.fired = true
			return true
		}
	}
	return false
}

// Expired reports whether the countdown has reached zero.
func (c *Countdown) Expired() bool {
	return c.expired
}

// SecondsLeft returns the remaining whole seconds, rounded up.
// Returns 0 for inactive or expired countdowns.
func (c *Countdown) SecondsLeft() int {
	if c.remaining <= 0 {
		return 0
	}
	return (c.remaining + c.tickRate - 1) / c.tickRate
}
