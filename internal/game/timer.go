package game

// Countdown is a synchronous down-counter with a one-tick expiry pulse.
// The controller is the sole consumer of the pulse and must act on it the
// same tick; an unconsumed pulse is gone by the next tick.
type Countdown struct {
	remaining int
}

// Load sets the counter. Reload values are validated at construction time to
// be at least 1, so a loaded countdown always runs before pulsing.
func (c *Countdown) Load(ticks int) {
	c.remaining = ticks
}

// Tick decrements the counter and reports true on exactly the tick it
// reaches zero. An expired counter stays at zero and never pulses again
// until reloaded.
func (c *Countdown) Tick() bool {
	if c.remaining <= 0 {
		return false
	}
	c.remaining--
	return c.remaining == 0
}

// Remaining returns the ticks left before expiry.
func (c *Countdown) Remaining() int {
	return c.remaining
}
