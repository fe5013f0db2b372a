// Package journey drives the train-journey framing of a focus session: it
// converts wall-clock tick deltas into monotonic progress, derives the
// current phase, smooths the display value with per-phase easing, and fires
// stop and tunnel events exactly once per crossing. It is a pure state
// object with no scheduler of its own, so it can be driven by real frame
// callbacks or by synthetic deltas in tests.
package journey

import (
	"errors"
	"math"
	"time"
)

var errInvalidDuration = errors.New(
	"journey duration must be greater than zero",
)

// DefaultSuspendedRate is the fraction of wall-clock time that still counts
// as journey time while the host is suspended. The journey keeps moving
// while you're away, just more slowly.
const DefaultSuspendedRate = 0.85

// Tunnel bands are fixed stretches of the route. Each toggles the in-tunnel
// flag and fires an enter and an exit event once.
var tunnelBands = [...]struct{ low, high float64 }{
	{0.33, 0.37},
	{0.68, 0.72},
}

type tunnelState struct {
	entered bool
	exited  bool
}

// Journey is the progress engine for a single trip. It owns elapsed time,
// raw and display progress, the phase, and the stop list. A Journey is not
// reused: Configure resets everything for a new trip.
//
// All methods must be called from a single goroutine. Ticks are synchronous,
// non-blocking arithmetic; there is exactly one mutator.
type Journey struct {
	origin      string
	destination string

	total   float64 // seconds
	elapsed float64
	raw     float64
	display float64

	phase  Phase
	pinned bool // an override phase is active

	speed         float64
	suspendedRate float64

	milestones []Milestone
	tunnels    [len(tunnelBands)]tunnelState

	started   bool
	completed bool
	cancelled bool

	pool      NamePool
	listeners []Listener
}

// Option configures a Journey at construction time.
type Option func(*Journey)

// WithNamePool overrides the source of intermediate stop names. Inject a
// seeded or fixed pool for reproducible journeys.
func WithNamePool(pool NamePool) Option {
	return func(j *Journey) {
		j.pool = pool
	}
}

// WithSuspendedRate overrides the background progress rate. The rate is a
// configuration constant for the lifetime of the Journey; it is never
// recomputed per trip.
func WithSuspendedRate(rate float64) Option {
	return func(j *Journey) {
		if rate > 0 && rate < 1 {
			j.suspendedRate = rate
		}
	}
}

// New returns an unconfigured Journey. Call Configure before anything else.
func New(opts ...Option) *Journey {
	j := &Journey{
		pool:          defaultPool(),
		suspendedRate: DefaultSuspendedRate,
		speed:         1,
		phase:         Setup,
	}

	for _, opt := range opts {
		opt(j)
	}

	return j
}

// Configure resets all state for a new trip between the two named stations
// and generates its stop list. The previous trip's listeners are retained.
func (j *Journey) Configure(
	duration time.Duration,
	origin, destination string,
) error {
	if duration <= 0 {
		return errInvalidDuration
	}

	j.origin = origin
	j.destination = destination
	j.total = duration.Seconds()
	j.elapsed = 0
	j.raw = 0
	j.display = 0
	j.speed = 1
	j.pinned = false
	j.started = false
	j.completed = false
	j.cancelled = false
	j.phase = Setup
	j.tunnels = [len(tunnelBands)]tunnelState{}
	j.milestones = generateMilestones(
		stopCount(duration),
		origin,
		destination,
		j.pool,
	)

	return nil
}

// Start begins the journey. The phase moves to whatever zero progress
// implies (boarding); subsequent phases come only from per-tick derivation.
func (j *Journey) Start() {
	if j.total == 0 || j.started {
		return
	}

	j.started = true
	j.tick(0)
}

// Tick advances the journey by the given wall-clock delta. It is the sole
// progress-advancing operation. Negative, NaN, and infinite deltas are
// discarded so they can never corrupt monotonicity.
func (j *Journey) Tick(delta time.Duration) {
	j.tick(delta.Seconds())
}

func (j *Journey) tick(deltaSec float64) {
	if !j.started || j.completed || j.cancelled || j.pinned {
		return
	}

	if math.IsNaN(deltaSec) || math.IsInf(deltaSec, 0) || deltaSec < 0 {
		deltaSec = 0
	}

	j.elapsed += deltaSec * j.speed
	if j.elapsed > j.total {
		j.elapsed = j.total
	}

	raw := j.elapsed / j.total
	if raw > 1 {
		raw = 1
	}

	// raw progress never decreases, whatever the caller supplied
	if raw < j.raw {
		raw = j.raw
	}

	j.raw = raw
	j.display = easeProgress(raw)

	j.setPhase(phaseForProgress(raw))
	j.crossMilestones(raw)
	j.crossTunnels(raw)

	if raw >= 1 {
		j.arrive()
	}
}

func (j *Journey) setPhase(next Phase) {
	if next == j.phase {
		return
	}

	prev := j.phase
	j.phase = next
	j.emit(PhaseChangeEvent{From: prev, To: next})
}

func (j *Journey) crossMilestones(raw float64) {
	// skip the origin (passed at creation) and the destination (folded
	// into arrival)
	for i := 1; i < len(j.milestones)-1; i++ {
		m := &j.milestones[i]
		if m.Passed || m.Position > raw {
			continue
		}

		m.Passed = true
		j.emit(MilestonePassedEvent{Milestone: *m, Index: i})
	}
}

func (j *Journey) crossTunnels(raw float64) {
	for i := range tunnelBands {
		band := tunnelBands[i]
		state := &j.tunnels[i]

		if !state.entered && raw >= band.low {
			state.entered = true
			j.emit(TunnelEnterEvent{Progress: raw})
		}

		if state.entered && !state.exited && raw >= band.high {
			state.exited = true
			j.emit(TunnelExitEvent{Progress: raw})
		}
	}
}

func (j *Journey) arrive() {
	if j.completed {
		return
	}

	j.completed = true

	last := len(j.milestones) - 1
	j.milestones[last].Passed = true

	j.emit(CompleteEvent{
		Duration: time.Duration(j.total * float64(time.Second)),
	})
}

// Pause pins the phase to Paused and stops progress until Resume. Pausing
// an already paused, unstarted, or terminated journey is a no-op.
func (j *Journey) Pause() {
	if !j.started || j.completed || j.cancelled || j.pinned {
		return
	}

	j.pinned = true
	j.setPhase(Paused)
}

// Resume clears a pause or suspension and returns the journey to whichever
// phase current progress implies, which is not necessarily the phase it was
// in when pinned. Calling Resume when not paused or suspended is a no-op,
// tolerating duplicate lifecycle signals from the host.
func (j *Journey) Resume() {
	if j.phase != Paused && j.phase != Suspended {
		return
	}

	j.pinned = false
	j.speed = 1
	j.setPhase(phaseForProgress(j.raw))
}

// Suspend marks the host as no longer presenting the journey: the phase is
// pinned to Suspended and the background progress rate takes effect for the
// eventual catch-up tick. Safe to call before Start and idempotent against
// duplicate signals.
func (j *Journey) Suspend() {
	if !j.started || j.completed || j.cancelled || j.phase == Suspended {
		return
	}

	j.pinned = true
	j.speed = j.suspendedRate
	j.setPhase(Suspended)
}

// ResumeFromSuspension applies the wall-clock time that passed while
// suspended as one synthetic tick at the reduced background rate, then
// resumes normally. A trip suspended for hours advances by a bounded
// fraction of the gap instead of silently jumping to completion, and never
// freezes entirely. A no-op unless currently suspended.
func (j *Journey) ResumeFromSuspension(elapsed time.Duration) {
	if j.phase != Suspended {
		return
	}

	// unpin so the catch-up tick can advance at the suspended rate
	j.pinned = false
	j.tick(elapsed.Seconds())

	j.speed = 1

	if j.completed {
		return
	}

	j.setPhase(phaseForProgress(j.raw))
}

// Cancel terminates the journey permanently. Only Configure is meaningful
// afterwards.
func (j *Journey) Cancel() {
	if j.completed || j.cancelled {
		return
	}

	j.cancelled = true
	j.pinned = true
	j.setPhase(Cancelled)
}

// Phase returns the current phase, including any active override.
func (j *Journey) Phase() Phase {
	return j.phase
}

// RawProgress returns the monotonic completion fraction in [0, 1].
func (j *Journey) RawProgress() float64 {
	return j.raw
}

// DisplayProgress returns the eased projection of raw progress used for
// animation.
func (j *Journey) DisplayProgress() float64 {
	return j.display
}

// Elapsed returns how much journey time has accumulated.
func (j *Journey) Elapsed() time.Duration {
	return time.Duration(j.elapsed * float64(time.Second))
}

// TimeRemaining returns how much journey time is left.
func (j *Journey) TimeRemaining() time.Duration {
	return time.Duration((j.total - j.elapsed) * float64(time.Second))
}

// Milestones returns a snapshot of the stop list in order. Mutating the
// returned slice has no effect on the journey.
func (j *Journey) Milestones() []Milestone {
	return append([]Milestone(nil), j.milestones...)
}

// InTunnel reports whether current progress sits inside a tunnel band.
func (j *Journey) InTunnel() bool {
	for i := range j.tunnels {
		if j.tunnels[i].entered && !j.tunnels[i].exited {
			return true
		}
	}

	return false
}

// Completed reports whether the journey reached its destination.
func (j *Journey) Completed() bool {
	return j.completed
}

// Cancelled reports whether the journey was cancelled.
func (j *Journey) Cancelled() bool {
	return j.cancelled
}

// Origin returns the departure station label.
func (j *Journey) Origin() string {
	return j.origin
}

// Destination returns the arrival station label.
func (j *Journey) Destination() string {
	return j.destination
}
