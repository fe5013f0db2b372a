// Package trip presents a journey in the terminal. It is the engine's clock
// source (real frame deltas from the bubbletea loop) and its event sink
// (progress bar, stop list, notifications, arrival chime).
package trip

import (
	"encoding/json"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"

	"github.com/HSellappan/railfocus/config"
	"github.com/HSellappan/railfocus/internal/models"
	"github.com/HSellappan/railfocus/journey"
	"github.com/HSellappan/railfocus/store"
)

const (
	padding  = 2
	maxWidth = 80

	// frameInterval approximates animation cadence in a terminal.
	frameInterval = 100 * time.Millisecond
)

// Status mirrors the active journey for the status command.
type Status struct {
	EndTime     time.Time     `json:"end_time"`
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Phase       journey.Phase `json:"phase"`
}

// Trip is the bubbletea model for a running journey.
type Trip struct {
	Engine    *journey.Journey
	Opts      *config.JourneyConfig
	StartTime time.Time

	db       *store.Client
	alerts   *alertSink
	progress progress.Model
	help     help.Model

	lastTick   time.Time
	lastStatus int // whole seconds remaining at last status write
	lastEvent  string
	persisted  bool
	quitting   bool
}

func newTrip(
	db *store.Client,
	cfg *config.JourneyConfig,
	eng *journey.Journey,
) *Trip {
	t := &Trip{
		Engine:     eng,
		Opts:       cfg,
		StartTime:  time.Now(),
		db:         db,
		alerts:     newAlertSink(cfg),
		progress:   progress.New(progress.WithDefaultGradient()),
		help:       help.New(),
		lastStatus: -1,
	}

	eng.Subscribe(t.observe)
	eng.Subscribe(t.alerts.Handle)

	return t
}

// New configures a fresh journey from the given options.
func New(db *store.Client, cfg *config.JourneyConfig) (*Trip, error) {
	eng := journey.New(journey.WithSuspendedRate(cfg.SuspendedRate))

	err := eng.Configure(cfg.Duration, cfg.Origin, cfg.Destination)
	if err != nil {
		return nil, err
	}

	return newTrip(db, cfg, eng), nil
}

// Resume reconstructs the suspended journey from its snapshot and applies
// the time that passed while the process was away at the reduced background
// rate. The stored foreground progress is replayed silently before the
// sinks are attached, so only the catch-up crossings are announced.
func Resume(db *store.Client, cfg *config.JourneyConfig) (*Trip, error) {
	snap, err := db.GetSnapshot()
	if err != nil {
		return nil, err
	}

	eng := journey.New(
		journey.WithSuspendedRate(cfg.SuspendedRate),
		journey.WithNamePool(journey.FixedPool(snap.StopNames...)),
	)

	err = eng.Configure(snap.Duration, snap.Origin, snap.Destination)
	if err != nil {
		return nil, err
	}

	eng.Start()
	eng.Tick(snap.Elapsed)
	eng.Suspend()

	t := newTrip(db, cfg, eng)
	t.StartTime = snap.StartTime

	eng.ResumeFromSuspension(time.Since(snap.SuspendedAt))

	if err := db.ClearSnapshot(); err != nil {
		return nil, err
	}

	return t, nil
}

// observe keeps the view and the journey log in sync with engine events.
func (t *Trip) observe(ev journey.Event) {
	switch ev := ev.(type) {
	case journey.MilestonePassedEvent:
		t.lastEvent = "Now passing " + ev.Milestone.Name
	case journey.TunnelEnterEvent:
		t.lastEvent = "Entering a tunnel"
	case journey.TunnelExitEvent:
		t.lastEvent = "Back in daylight"
	case journey.CompleteEvent:
		t.lastEvent = "Arrived at " + t.Engine.Destination()
		t.persist()
	}
}

// persist records the finished journey and removes the status file. It runs
// at most once per trip.
func (t *Trip) persist() {
	if t.persisted || t.db == nil {
		return
	}

	t.persisted = true

	var passed int

	milestones := t.Engine.Milestones()
	for _, m := range milestones {
		if m.Passed {
			passed++
		}
	}

	rec := models.JourneyRecord{
		StartTime:   t.StartTime,
		EndTime:     time.Now(),
		Origin:      t.Engine.Origin(),
		Destination: t.Engine.Destination(),
		Duration:    t.Opts.Duration,
		StopsPassed: passed,
		StopsTotal:  len(milestones),
		Completed:   t.Engine.Completed(),
	}

	_ = t.db.SaveJourney(&rec)

	_ = os.Remove(config.StatusFilePath())
}

// suspend pins the engine and snapshots it so a later process can pick the
// journey back up.
func (t *Trip) suspend() {
	if t.Engine.Completed() || t.Engine.Cancelled() || t.db == nil {
		return
	}

	t.Engine.Suspend()

	milestones := t.Engine.Milestones()

	names := make([]string, 0, len(milestones)-2)
	for _, m := range milestones[1 : len(milestones)-1] {
		names = append(names, m.Name)
	}

	snap := models.JourneySnapshot{
		StartTime:   t.StartTime,
		SuspendedAt: time.Now(),
		Origin:      t.Engine.Origin(),
		Destination: t.Engine.Destination(),
		Duration:    t.Opts.Duration,
		Elapsed:     t.Engine.Elapsed(),
		StopNames:   names,
	}

	_ = t.db.SaveSnapshot(&snap)

	_ = os.Remove(config.StatusFilePath())
}

// maybeWriteStatus refreshes the status file when the remaining whole
// second changes.
func (t *Trip) maybeWriteStatus() {
	remaining := int(t.Engine.TimeRemaining().Seconds())
	if remaining == t.lastStatus {
		return
	}

	t.lastStatus = remaining

	s := Status{
		EndTime:     time.Now().Add(t.Engine.TimeRemaining()),
		Origin:      t.Engine.Origin(),
		Destination: t.Engine.Destination(),
		Phase:       t.Engine.Phase(),
	}

	b, err := json.Marshal(s)
	if err != nil {
		return
	}

	_ = os.WriteFile(config.StatusFilePath(), b, 0o600)
}

// ReadStatus loads the status file written by a running instance.
func ReadStatus() (*Status, error) {
	b, err := os.ReadFile(config.StatusFilePath())
	if err != nil {
		return nil, err
	}

	var s Status

	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}

	return &s, nil
}
