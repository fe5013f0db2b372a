package journey

import (
	"math"
	"time"
)

// Countdown is the plain fixed-interval timer used by surfaces that don't
// carry the journey framing. No phases, no stops, no easing: elapsed time
// in, remaining time out.
type Countdown struct {
	total   float64 // seconds
	elapsed float64
	done    bool
}

// NewCountdown returns a countdown over the given duration. Non-positive
// durations produce an already-finished countdown.
func NewCountdown(d time.Duration) *Countdown {
	c := &Countdown{total: d.Seconds()}
	if c.total <= 0 {
		c.total = 0
		c.done = true
	}

	return c
}

// Tick advances the countdown. Invalid deltas are discarded.
func (c *Countdown) Tick(delta time.Duration) {
	if c.done {
		return
	}

	sec := delta.Seconds()
	if math.IsNaN(sec) || math.IsInf(sec, 0) || sec < 0 {
		return
	}

	c.elapsed += sec
	if c.elapsed >= c.total {
		c.elapsed = c.total
		c.done = true
	}
}

// Remaining returns the time left on the countdown.
func (c *Countdown) Remaining() time.Duration {
	return time.Duration((c.total - c.elapsed) * float64(time.Second))
}

// Progress returns the completion fraction in [0, 1].
func (c *Countdown) Progress() float64 {
	if c.total == 0 {
		return 1
	}

	return c.elapsed / c.total
}

// Done reports whether the countdown has finished.
func (c *Countdown) Done() bool {
	return c.done
}
