package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
)

const banner = `
██████╗  █████╗ ██╗██╗     ███████╗ ██████╗  ██████╗██╗   ██╗███████╗
██╔══██╗██╔══██╗██║██║     ██╔════╝██╔═══██╗██╔════╝██║   ██║██╔════╝
██████╔╝███████║██║██║     █████╗  ██║   ██║██║     ██║   ██║███████╗
██╔══██╗██╔══██║██║██║     ██╔══╝  ██║   ██║██║     ██║   ██║╚════██║
██║  ██║██║  ██║██║███████╗██║     ╚██████╔╝╚██████╗╚██████╔╝███████║
╚═╝  ╚═╝╚═╝  ╚═╝╚═╝╚══════╝╚═╝      ╚═════╝  ╚═════╝ ╚═════╝ ╚══════╝`

func validateMinutes(s string) error {
	num, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || num <= 0 {
		return errExpectedInteger
	}

	return nil
}

func validateStation(s string) error {
	if strings.TrimSpace(s) == "" {
		return errEmptyStation
	}

	return nil
}

// prompt allows the user to state their preferred values for the most
// important journey settings. It is run only when a configuration file is
// not already present (e.g. on first run).
func prompt() error {
	fmt.Printf("%s\n\n", banner)

	pterm.Info.Printfln(
		"Your preferences will be saved to: %s\n",
		configFilePath,
	)

	duration := strconv.Itoa(defaultDurationMinutes)
	origin := defaultOrigin
	destination := defaultDestination
	notify := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Journey length in minutes").
				Value(&duration).
				Validate(validateMinutes),
			huh.NewInput().
				Title("Departure station").
				Value(&origin).
				Validate(validateStation),
			huh.NewInput().
				Title("Arrival station").
				Value(&destination).
				Validate(validateStation),
			huh.NewConfirm().
				Title("Notify on arrival?").
				Value(&notify),
		),
	)

	err := form.Run()
	if err != nil {
		return err
	}

	mins, err := strconv.Atoi(strings.TrimSpace(duration))
	if err != nil {
		return errExpectedInteger
	}

	viper.Set(keyDurationMinutes, mins)
	viper.Set(keyOrigin, strings.TrimSpace(origin))
	viper.Set(keyDestination, strings.TrimSpace(destination))
	viper.Set(keyNotify, notify)

	return nil
}
