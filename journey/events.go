package journey

import "time"

// Event is a marker for all journey events emitted by the engine. Payloads
// are value types so a listener can never mutate engine state through them.
type Event interface{ isEvent() }

// PhaseChangeEvent is emitted whenever the journey moves to a new phase,
// including transitions into and out of the override phases.
type PhaseChangeEvent struct {
	From Phase
	To   Phase
}

func (PhaseChangeEvent) isEvent() {}

// MilestonePassedEvent is emitted the first time raw progress reaches an
// intermediate stop. The origin never fires one, and the destination's
// crossing is folded into CompleteEvent.
type MilestonePassedEvent struct {
	Milestone Milestone
	Index     int
}

func (MilestonePassedEvent) isEvent() {}

// TunnelEnterEvent is emitted when progress crosses into a tunnel band.
type TunnelEnterEvent struct {
	Progress float64
}

func (TunnelEnterEvent) isEvent() {}

// TunnelExitEvent is emitted when progress crosses out of a tunnel band.
type TunnelExitEvent struct {
	Progress float64
}

func (TunnelExitEvent) isEvent() {}

// CompleteEvent is emitted exactly once, when raw progress reaches 1.0.
type CompleteEvent struct {
	Duration time.Duration
}

func (CompleteEvent) isEvent() {}

// Listener receives journey events. Listeners are invoked synchronously in
// subscription order from whichever call advanced the journey.
type Listener func(Event)

// Subscribe registers a listener for all subsequent events. Multiple
// listeners may be registered; the engine knows nothing about any of them.
func (j *Journey) Subscribe(fn Listener) {
	j.listeners = append(j.listeners, fn)
}

func (j *Journey) emit(ev Event) {
	for _, fn := range j.listeners {
		fn(ev)
	}
}
