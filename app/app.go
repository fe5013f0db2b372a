// Package app defines the railfocus command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/HSellappan/railfocus/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the railfocus app instance.
func Get() *cli.App {
	railfocusApp := &cli.App{
		Name: "railfocus",
		Usage: `
		RailFocus is a focus timer for the command-line that frames each
		session as a train journey between two stations. Stay on board
		until you arrive.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "resume",
				Usage:  "Reboard a suspended journey",
				Action: resumeAction,
			},
			{
				Name:   "history",
				Usage:  "List journeys taken within a time period",
				Action: historyAction,
				Flags:  []cli.Flag{daysFlag},
			},
			{
				Name:   "status",
				Usage:  "Print the status of the active journey",
				Action: statusAction,
			},
			{
				Name:      "quick",
				Usage:     "Run a bare countdown without the journey framing",
				UsageText: "railfocus quick [MINUTES]",
				Action:    quickAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			durationFlag,
			fromFlag,
			toFlag,
			soundFlag,
			journeyCmdFlag,
			disableNotificationFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return railfocusApp
}
