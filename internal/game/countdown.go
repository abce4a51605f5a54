package game

// RoundCountdown is the per-round timer. On expiry it invokes the
// configured callback exactly once and deactivates; the callback, not
// the timer, decides whether and how to restart.
type RoundCountdown struct {
	duration  float64
	remaining float64
	active    bool
	onExpire  func()
}

// NewRoundCountdown creates an inactive countdown with the given expiry
// callback.
func NewRoundCountdown(onExpire func()) *RoundCountdown {
	return &RoundCountdown{onExpire: onExpire}
}

// Start activates the countdown with remaining = duration seconds.
// Any previous run is discarded.
func (c *RoundCountdown) Start(duration float64) {
	c.duration = duration
	c.remaining = duration
	c.active = true
}

// Stop deactivates the countdown without invoking the callback.
// Safe to call when nothing is pending.
func (c *RoundCountdown) Stop() {
	c.active = false
}

// Tick advances the countdown by dt seconds while active. Crossing to
// <= 0 deactivates the timer before invoking the expiry callback, so the
// callback may safely Start it again.
func (c *RoundCountdown) Tick(dt float64) {
	if !c.active {
		return
	}
	c.remaining -= dt
	if c.remaining <= 0 {
		c.remaining = 0
		c.active = false
		if c.onExpire != nil {
			c.onExpire()
		}
	}
}

// Active reports whether the countdown is running.
func (c *RoundCountdown) Active() bool {
	return c.active
}

// Fraction returns remaining/duration clamped to [0,1]: 1 immediately
// after Start, 0 at or after expiry.
func (c *RoundCountdown) Fraction() float64 {
	if c.duration <= 0 {
		return 0
	}
	f := c.remaining / c.duration
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
