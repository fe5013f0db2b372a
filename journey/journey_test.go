package journey

import (
	"math"
	"testing"
	"time"
)

// recorder collects every event the engine emits.
type recorder struct {
	events []Event
}

func (r *recorder) record(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(match func(Event) bool) int {
	var n int

	for _, ev := range r.events {
		if match(ev) {
			n++
		}
	}

	return n
}

func newTestJourney(
	t *testing.T,
	duration time.Duration,
) (*Journey, *recorder) {
	t.Helper()

	j := New(WithNamePool(SeededPool(1)))

	err := j.Configure(duration, "Paris", "Lyon")
	if err != nil {
		t.Fatalf("configure: %v", err)
	}

	rec := &recorder{}
	j.Subscribe(rec.record)

	return j, rec
}

// tickTo advances the journey to the given total elapsed time in one-second
// steps, mimicking foreground tick cadence.
func tickTo(j *Journey, total time.Duration) {
	for j.Elapsed() < total {
		step := total - j.Elapsed()
		if step > time.Second {
			step = time.Second
		}

		j.Tick(step)
	}
}

func TestConfigureRejectsNonPositiveDuration(t *testing.T) {
	j := New()

	for _, d := range []time.Duration{0, -time.Minute} {
		if err := j.Configure(d, "A", "B"); err == nil {
			t.Errorf("Configure(%s) accepted a non-positive duration", d)
		}
	}
}

func TestStartMovesToBoarding(t *testing.T) {
	j, rec := newTestJourney(t, 25*time.Minute)

	if j.Phase() != Setup {
		t.Fatalf("phase before start = %s, want %s", j.Phase(), Setup)
	}

	j.Start()

	if j.Phase() != Boarding {
		t.Fatalf("phase after start = %s, want %s", j.Phase(), Boarding)
	}

	if len(rec.events) != 1 {
		t.Fatalf("expected one event after start, got %d", len(rec.events))
	}

	change, ok := rec.events[0].(PhaseChangeEvent)
	if !ok || change.From != Setup || change.To != Boarding {
		t.Errorf("unexpected first event: %#v", rec.events[0])
	}
}

func TestRawProgressIsMonotonic(t *testing.T) {
	j, _ := newTestJourney(t, 10*time.Minute)
	j.Start()

	deltas := []float64{1, 5, -10, math.NaN(), 0, 2.5, math.Inf(1), 30, -1}

	prev := j.RawProgress()

	for _, d := range deltas {
		j.tick(d)

		raw := j.RawProgress()
		if raw < prev {
			t.Fatalf("raw progress decreased from %v to %v", prev, raw)
		}

		if raw < 0 || raw > 1 {
			t.Fatalf("raw progress %v outside [0,1]", raw)
		}

		if disp := j.DisplayProgress(); disp < 0 || disp > 1 {
			t.Fatalf("display progress %v outside [0,1]", disp)
		}

		prev = raw
	}
}

func TestNegativeDeltaDoesNotRewind(t *testing.T) {
	j, _ := newTestJourney(t, 10*time.Minute)
	j.Start()

	j.Tick(time.Minute)
	before := j.Elapsed()

	j.Tick(-5 * time.Minute)

	if j.Elapsed() != before {
		t.Errorf(
			"elapsed moved from %s to %s on a negative delta",
			before,
			j.Elapsed(),
		)
	}
}

func TestFullJourney(t *testing.T) {
	j, rec := newTestJourney(t, 25*time.Minute) // 1500s, 7 stops
	j.Start()

	checkpoints := []struct {
		elapsed time.Duration
		want    Phase
	}{
		{30 * time.Second, Boarding},
		{100 * time.Second, Departing},
		{1000 * time.Second, Cruising},
		{1440 * time.Second, Approaching},
		{1500 * time.Second, Arrived},
	}

	for _, cp := range checkpoints {
		tickTo(j, cp.elapsed)

		if j.Phase() != cp.want {
			t.Fatalf(
				"phase at %s = %s, want %s",
				cp.elapsed,
				j.Phase(),
				cp.want,
			)
		}
	}

	if !j.Completed() {
		t.Fatal("journey did not complete")
	}

	if j.DisplayProgress() != 1 {
		t.Errorf("display progress = %v, want exactly 1", j.DisplayProgress())
	}

	if j.RawProgress() != 1 {
		t.Errorf("raw progress = %v, want exactly 1", j.RawProgress())
	}

	for i, m := range j.Milestones() {
		if !m.Passed {
			t.Errorf("milestone %d (%s) not passed at arrival", i, m.Name)
		}
	}

	completions := rec.count(func(ev Event) bool {
		_, ok := ev.(CompleteEvent)
		return ok
	})
	if completions != 1 {
		t.Errorf("CompleteEvent fired %d times, want 1", completions)
	}

	// intermediate stops fire once each; origin and destination never do
	passes := rec.count(func(ev Event) bool {
		_, ok := ev.(MilestonePassedEvent)
		return ok
	})
	if want := len(j.Milestones()) - 2; passes != want {
		t.Errorf("MilestonePassedEvent fired %d times, want %d", passes, want)
	}

	// ticks after completion change nothing
	n := len(rec.events)
	j.Tick(time.Minute)

	if len(rec.events) != n {
		t.Error("tick after completion emitted events")
	}

	if j.Elapsed() != 25*time.Minute {
		t.Errorf("elapsed advanced past total: %s", j.Elapsed())
	}
}

func TestMilestoneFiresExactlyOnce(t *testing.T) {
	j, rec := newTestJourney(t, 10*time.Minute) // 600s, 4 stops
	j.Start()

	first := j.Milestones()[1]

	// cross the first intermediate stop, then keep ticking past it
	tickTo(j, time.Duration(first.Position*600)*time.Second+5*time.Second)
	tickTo(j, 500*time.Second)

	passes := rec.count(func(ev Event) bool {
		mp, ok := ev.(MilestonePassedEvent)
		return ok && mp.Index == 1
	})
	if passes != 1 {
		t.Errorf("first stop fired %d times, want 1", passes)
	}

	if !j.Milestones()[1].Passed {
		t.Error("first stop not marked passed")
	}
}

func TestTunnelCrossings(t *testing.T) {
	j, rec := newTestJourney(t, 1000*time.Second)
	j.Start()

	tickTo(j, 320*time.Second) // raw 0.32, before the first band

	if j.InTunnel() {
		t.Fatal("in tunnel before reaching the first band")
	}

	tickTo(j, 340*time.Second) // raw 0.34, inside [0.33, 0.37)

	if !j.InTunnel() {
		t.Fatal("not in tunnel inside the first band")
	}

	tickTo(j, 380*time.Second) // raw 0.38, past the first band

	if j.InTunnel() {
		t.Fatal("still in tunnel past the first band")
	}

	// jump clean over the second band in a single tick
	j.Tick(400 * time.Second) // raw 0.78

	enters := rec.count(func(ev Event) bool {
		_, ok := ev.(TunnelEnterEvent)
		return ok
	})
	exits := rec.count(func(ev Event) bool {
		_, ok := ev.(TunnelExitEvent)
		return ok
	})

	if enters != 2 || exits != 2 {
		t.Errorf(
			"tunnel events: %d enters, %d exits, want 2 and 2",
			enters,
			exits,
		)
	}

	if j.InTunnel() {
		t.Error("in tunnel after jumping past the second band")
	}
}

func TestTunnelBandsJumpedInSingleTicks(t *testing.T) {
	j, rec := newTestJourney(t, 1000*time.Second)
	j.Start()

	j.Tick(500 * time.Second) // raw 0.5, clean over the first band
	j.Tick(500 * time.Second) // raw 1.0, clean over the second band

	if !j.Completed() {
		t.Fatal("journey did not complete")
	}

	enters := rec.count(func(ev Event) bool {
		_, ok := ev.(TunnelEnterEvent)
		return ok
	})
	exits := rec.count(func(ev Event) bool {
		_, ok := ev.(TunnelExitEvent)
		return ok
	})

	if enters != 2 || exits != 2 {
		t.Errorf(
			"tunnel events: %d enters, %d exits, want 2 and 2",
			enters,
			exits,
		)
	}

	if j.InTunnel() {
		t.Error("in tunnel after arrival")
	}
}

func TestSuspendAppliesPartialProgress(t *testing.T) {
	j, _ := newTestJourney(t, 20*time.Minute)
	j.Start()

	tickTo(j, time.Minute)

	j.Suspend()

	if j.Phase() != Suspended {
		t.Fatalf("phase after suspend = %s, want %s", j.Phase(), Suspended)
	}

	// ticks are not meaningful while suspended
	j.Tick(time.Minute)

	if got := j.Elapsed(); got.Round(time.Millisecond) != time.Minute {
		t.Fatalf("elapsed advanced while suspended: %s", got)
	}

	j.ResumeFromSuspension(10 * time.Minute)

	// 60 + 600*0.85 = 570 seconds
	want := 570.0

	if got := j.Elapsed().Seconds(); math.Abs(got-want) > 1e-6 {
		t.Errorf("elapsed after resume = %vs, want %vs", got, want)
	}

	if j.Phase() == Suspended {
		t.Error("phase still suspended after resume")
	}

	// subsequent ticks run at full speed again
	before := j.Elapsed()
	j.Tick(time.Second)

	if got := (j.Elapsed() - before).Seconds(); math.Abs(got-1) > 1e-6 {
		t.Errorf("post-resume tick advanced %vs, want 1s", got)
	}
}

func TestSuspendIsIdempotent(t *testing.T) {
	j, rec := newTestJourney(t, 20*time.Minute)

	// suspending an un-started journey is safe
	j.Suspend()

	if j.Phase() != Setup {
		t.Fatalf("suspend before start changed phase to %s", j.Phase())
	}

	j.Start()
	j.Suspend()

	n := len(rec.events)

	j.Suspend()

	if len(rec.events) != n {
		t.Error("duplicate suspend emitted events")
	}
}

func TestResumeFromSuspensionRequiresSuspension(t *testing.T) {
	j, _ := newTestJourney(t, 20*time.Minute)
	j.Start()

	tickTo(j, time.Minute)

	j.ResumeFromSuspension(10 * time.Minute)

	if got := j.Elapsed(); got.Round(time.Millisecond) != time.Minute {
		t.Errorf("resumeFromSuspension advanced an unsuspended journey: %s", got)
	}
}

func TestPauseAndResume(t *testing.T) {
	j, rec := newTestJourney(t, 20*time.Minute)
	j.Start()

	tickTo(j, 30*time.Second)

	j.Pause()
	j.Pause() // duplicate signal

	if j.Phase() != Paused {
		t.Fatalf("phase = %s, want %s", j.Phase(), Paused)
	}

	// a stray tick while paused must not count
	j.Tick(time.Minute)

	if got := j.Elapsed(); got.Round(time.Millisecond) != 30*time.Second {
		t.Fatalf("elapsed advanced while paused: %s", got)
	}

	j.Resume()

	// resume returns to the phase implied by progress, not the paused one
	if j.Phase() != Boarding {
		t.Errorf("phase after resume = %s, want %s", j.Phase(), Boarding)
	}

	n := len(rec.events)

	// resume without a matching pause is a no-op
	j.Resume()

	if len(rec.events) != n {
		t.Error("duplicate resume emitted events")
	}
}

func TestCancelIsTerminal(t *testing.T) {
	j, rec := newTestJourney(t, 20*time.Minute)
	j.Start()

	tickTo(j, time.Minute)

	j.Cancel()

	if j.Phase() != Cancelled {
		t.Fatalf("phase = %s, want %s", j.Phase(), Cancelled)
	}

	n := len(rec.events)

	j.Tick(time.Minute)
	j.Resume()
	j.Pause()

	if len(rec.events) != n {
		t.Error("cancelled journey still emitted events")
	}

	// a fresh configuration starts over
	if err := j.Configure(10*time.Minute, "Lyon", "Marseille"); err != nil {
		t.Fatalf("reconfigure after cancel: %v", err)
	}

	if j.Phase() != Setup || j.RawProgress() != 0 {
		t.Error("reconfigure did not reset journey state")
	}
}

func TestTimeRemaining(t *testing.T) {
	j, _ := newTestJourney(t, 10*time.Minute)
	j.Start()

	tickTo(j, 4*time.Minute)

	want := 6 * time.Minute
	if got := j.TimeRemaining().Round(time.Millisecond); got != want {
		t.Errorf("time remaining = %s, want %s", got, want)
	}
}

func TestMilestoneSnapshotIsImmutable(t *testing.T) {
	j, _ := newTestJourney(t, 10*time.Minute)
	j.Start()

	snapshot := j.Milestones()
	snapshot[1].Passed = true
	snapshot[1].Name = "mutated"

	if j.Milestones()[1].Passed {
		t.Error("mutating a snapshot leaked into engine state")
	}
}
