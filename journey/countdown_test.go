package journey

import (
	"testing"
	"time"
)

func TestCountdown(t *testing.T) {
	c := NewCountdown(2 * time.Minute)

	if c.Done() {
		t.Fatal("countdown done before any tick")
	}

	c.Tick(30 * time.Second)

	if got := c.Remaining(); got != 90*time.Second {
		t.Errorf("remaining = %s, want 90s", got)
	}

	if got := c.Progress(); got != 0.25 {
		t.Errorf("progress = %v, want 0.25", got)
	}

	// invalid deltas are discarded
	c.Tick(-time.Minute)

	if got := c.Remaining(); got != 90*time.Second {
		t.Errorf("remaining after negative delta = %s, want 90s", got)
	}

	// overshoot clamps to zero
	c.Tick(5 * time.Minute)

	if !c.Done() {
		t.Error("countdown not done after overshoot")
	}

	if got := c.Remaining(); got != 0 {
		t.Errorf("remaining after completion = %s, want 0", got)
	}

	if got := c.Progress(); got != 1 {
		t.Errorf("progress after completion = %v, want 1", got)
	}
}

func TestCountdownNonPositiveDuration(t *testing.T) {
	c := NewCountdown(0)

	if !c.Done() || c.Progress() != 1 {
		t.Error("zero-duration countdown should start finished")
	}
}
