package trip

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/HSellappan/railfocus/internal/timeutil"
	"github.com/HSellappan/railfocus/journey"
)

var (
	baseStyle = lipgloss.NewStyle().Padding(1, padding)
	mainStyle = lipgloss.NewStyle().Bold(true)
	hintStyle = lipgloss.NewStyle().Faint(true)

	routeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	tunnelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("11"))

	phaseColors = map[journey.Phase]string{
		journey.Boarding:    "3",
		journey.Departing:   "6",
		journey.Cruising:    "2",
		journey.Approaching: "5",
		journey.Arrived:     "10",
		journey.Paused:      "8",
		journey.Suspended:   "8",
		journey.Cancelled:   "1",
	}

	phaseLabels = map[journey.Phase]string{
		journey.Boarding:    "Boarding",
		journey.Departing:   "Departing",
		journey.Cruising:    "Cruising",
		journey.Approaching: "Approaching",
		journey.Arrived:     "Arrived",
		journey.Paused:      "Held at signal",
		journey.Suspended:   "Suspended",
		journey.Cancelled:   "Cancelled",
	}
)

func (t *Trip) phaseView() string {
	phase := t.Engine.Phase()

	label, ok := phaseLabels[phase]
	if !ok {
		label = string(phase)
	}

	style := lipgloss.NewStyle().Bold(true)
	if color, ok := phaseColors[phase]; ok {
		style = style.Foreground(lipgloss.Color(color))
	}

	return style.Render("[" + label + "]")
}

func (t *Trip) routeView() string {
	return routeStyle.Render(
		t.Engine.Origin() + " → " + t.Engine.Destination(),
	)
}

// stopsView draws the route as a line of stops, filled once passed.
func (t *Trip) stopsView() string {
	var s strings.Builder

	milestones := t.Engine.Milestones()

	for i, m := range milestones {
		if i > 0 {
			s.WriteString(hintStyle.Render("──"))
		}

		if m.Passed {
			s.WriteString("●")
		} else {
			s.WriteString("○")
		}
	}

	s.WriteString("\n")

	// label the next unpassed stop
	for _, m := range milestones {
		if !m.Passed {
			s.WriteString(hintStyle.Render("next stop: " + m.Name))
			break
		}
	}

	return s.String()
}

func (t *Trip) journeyView() string {
	var s strings.Builder

	s.WriteString(t.routeView())
	s.WriteString("  ")
	s.WriteString(t.phaseView())
	s.WriteString("\n\n")

	remaining := timeutil.FormatRemaining(t.Engine.TimeRemaining())
	s.WriteString(mainStyle.Render(remaining))

	if t.Engine.InTunnel() {
		s.WriteString("  ")
		s.WriteString(tunnelStyle.Render(" tunnel "))
	}

	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.Engine.DisplayProgress()))
	s.WriteString("\n\n")
	s.WriteString(t.stopsView())

	if t.lastEvent != "" {
		s.WriteString("\n\n")
		s.WriteString(hintStyle.Render(t.lastEvent))
	}

	s.WriteString("\n\n")
	s.WriteString(t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.cancel,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Trip) arrivalView() string {
	var s strings.Builder

	s.WriteString(mainStyle.Render(
		"You have arrived at " + t.Engine.Destination(),
	))
	s.WriteString("\n\n")
	s.WriteString(hintStyle.Render("Well done. The journey is complete."))
	s.WriteString("\n\n")
	s.WriteString(t.help.ShortHelpView([]key.Binding{
		defaultKeymap.enter,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Trip) View() string {
	if t.quitting {
		return ""
	}

	if t.Engine.Completed() {
		return baseStyle.Render(t.arrivalView())
	}

	return baseStyle.Render(t.journeyView())
}
