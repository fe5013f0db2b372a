package app

import "github.com/urfave/cli/v2"

var (
	durationFlag = &cli.UintFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Journey length in minutes",
	}

	fromFlag = &cli.StringFlag{
		Name:  "from",
		Usage: "Departure station label",
	}

	toFlag = &cli.StringFlag{
		Name:  "to",
		Usage: "Arrival station label",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Path to a chime played on arrival (mp3, ogg, flac, or wav). Disable by setting to 'off'",
	}

	journeyCmdFlag = &cli.StringFlag{
		Name:    "cmd",
		Aliases: []string{"journey-cmd"},
		Usage:   "Execute an arbitrary command after arriving",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"n"},
		Usage:   "Disable the system notification that appears on arrival and at each stop",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	daysFlag = &cli.UintFlag{
		Name:  "days",
		Usage: "Reporting period in days",
		Value: 7,
	}
)
