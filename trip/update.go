package trip

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/HSellappan/railfocus/journey"
)

// frameMsg carries the wall-clock instant of an animation frame.
type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (t *Trip) Init() tea.Cmd {
	t.lastTick = time.Now()
	t.Engine.Start()

	return frameCmd()
}

// handleFrame feeds the real elapsed frame delta into the engine.
func (t *Trip) handleFrame(msg frameMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	delta := now.Sub(t.lastTick)
	t.lastTick = now

	t.Engine.Tick(delta)
	t.maybeWriteStatus()

	if t.Engine.Completed() {
		// persistence and alerts already ran off CompleteEvent; hold on
		// the arrival view until the user dismisses it
		return t, nil
	}

	return t, frameCmd()
}

func (t *Trip) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		if t.Engine.Completed() || t.Engine.Cancelled() {
			return t, nil
		}

		if t.Engine.Phase() == journey.Paused {
			t.Engine.Resume()
			t.lastTick = time.Now()
		} else {
			t.Engine.Pause()
		}

		return t, nil

	case key.Matches(msg, defaultKeymap.cancel):
		if t.Engine.Completed() || t.Engine.Cancelled() {
			return t, nil
		}

		t.Engine.Cancel()
		t.persist()
		t.quitting = true

		return t, tea.Batch(tea.ClearScreen, tea.Quit)

	case key.Matches(msg, defaultKeymap.enter):
		if t.Engine.Completed() {
			t.quitting = true
			return t, tea.Batch(tea.ClearScreen, tea.Quit)
		}

		return t, nil

	case key.Matches(msg, defaultKeymap.quit):
		t.suspend()
		t.quitting = true

		return t, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return t, nil
}

func (t *Trip) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return t.handleFrame(msg)

	case tea.KeyMsg:
		return t.handleKey(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd

	default:
		slog.Debug(spew.Sdump(msg))
	}

	return t, nil
}
