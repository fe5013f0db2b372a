// Package config is responsible for setting the program config from the
// config file and command-line arguments.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const Version = "v0.3.0"

var (
	configDir      = "railfocus"
	configFileName = "config.yml"
	dbFileName     = "railfocus.db"
	statusFileName = "status.json"
	logFileName    = "railfocus.log"

	configFilePath string
	dbFilePath     string
	statusFilePath string
	logFilePath    string
)

const (
	defaultDurationMinutes = 25
	defaultOrigin          = "Paris"
	defaultDestination     = "Lyon"
	defaultSuspendedRate   = 0.85
)

const (
	keyDurationMinutes = "duration_mins"
	keyOrigin          = "origin"
	keyDestination     = "destination"
	keyNotify          = "notify"
	keyArrivalSound    = "arrival_sound"
	keyJourneyCmd      = "journey_cmd"
	keyTwentyFourHour  = "24hr_clock"
	keyDarkTheme       = "dark_theme"
	keySuspendedRate   = "suspended_rate"
)

// JourneyConfig represents the program configuration derived from the
// config file and command-line arguments.
type JourneyConfig struct {
	Stderr              io.Writer     `json:"-"`
	Stdout              io.Writer     `json:"-"`
	Stdin               io.Reader     `json:"-"`
	Duration            time.Duration `json:"duration"`
	Origin              string        `json:"origin"`
	Destination         string        `json:"destination"`
	ArrivalSound        string        `json:"arrival_sound"`
	JourneyCmd          string        `json:"journey_cmd"`
	PathToConfig        string        `json:"path_to_config"`
	PathToDB            string        `json:"path_to_db"`
	SuspendedRate       float64       `json:"suspended_rate"`
	Notify              bool          `json:"notify"`
	DarkTheme           bool          `json:"dark_theme"`
	TwentyFourHourClock bool          `json:"twenty_four_hour_clock"`
}

var journeyCfg = &JourneyConfig{}

var once sync.Once

// Dir returns the name of the program's configuration directory.
func Dir() string {
	return configDir
}

// DBFilePath returns the location of the journey database.
func DBFilePath() string {
	return dbFilePath
}

// StatusFilePath returns the location of the active journey status file.
func StatusFilePath() string {
	return statusFilePath
}

// LogFilePath returns the location of the log file.
func LogFilePath() string {
	return logFilePath
}

// ConfigFilePath returns the location of the configuration file.
func ConfigFilePath() string {
	return configFilePath
}

func initializePaths() error {
	env := strings.TrimSpace(os.Getenv("RAILFOCUS_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		dbFileName = fmt.Sprintf("railfocus_%s.db", env)
		statusFileName = fmt.Sprintf("status_%s.json", env)
		logFileName = fmt.Sprintf("railfocus_%s.log", env)
	}

	var err error

	configFilePath, err = xdg.ConfigFile(
		filepath.Join(configDir, configFileName),
	)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		return err
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)
	statusFilePath = filepath.Join(dataDir, statusFileName)
	logFilePath = filepath.Join(dataDir, "log", logFileName)

	return nil
}

// journeyDefaults sets the program's default configuration values.
func journeyDefaults() {
	viper.SetDefault(keyDurationMinutes, defaultDurationMinutes)
	viper.SetDefault(keyOrigin, defaultOrigin)
	viper.SetDefault(keyDestination, defaultDestination)
	viper.SetDefault(keyNotify, true)
	viper.SetDefault(keyArrivalSound, "")
	viper.SetDefault(keyJourneyCmd, "")
	viper.SetDefault(keyTwentyFourHour, false)
	viper.SetDefault(keyDarkTheme, true)
	viper.SetDefault(keySuspendedRate, defaultSuspendedRate)
}

// createJourneyConfig prompts for preferred values for key settings and
// saves the result to the user's config directory.
func createJourneyConfig() error {
	if os.Getenv("RAILFOCUS_ENV") != "testing" {
		if err := prompt(); err != nil {
			return err
		}
	}

	journeyDefaults()

	err := viper.WriteConfigAs(configFilePath)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Your settings have been saved. Enjoy the ride!\n",
	)

	return nil
}

// initJourneyConfig initialises the application configuration. If the
// config file does not exist, it prompts the user and saves the inputted
// preferences and defaults in a config file.
func initJourneyConfig() error {
	viper.SetConfigName(strings.TrimSuffix(configFileName, ".yml"))
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Dir(configFilePath))

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return createJourneyConfig()
		}

		return err
	}

	journeyDefaults()

	return nil
}

// setJourneyConfig assembles the effective configuration from the config
// file and command-line arguments. Flags take precedence.
func setJourneyConfig(ctx *cli.Context) {
	journeyCfg.Stderr = os.Stderr
	journeyCfg.Stdout = os.Stdout
	journeyCfg.Stdin = os.Stdin
	journeyCfg.PathToConfig = configFilePath
	journeyCfg.PathToDB = dbFilePath

	journeyCfg.Duration = time.Duration(
		viper.GetInt(keyDurationMinutes),
	) * time.Minute
	journeyCfg.Origin = viper.GetString(keyOrigin)
	journeyCfg.Destination = viper.GetString(keyDestination)
	journeyCfg.Notify = viper.GetBool(keyNotify)
	journeyCfg.ArrivalSound = viper.GetString(keyArrivalSound)
	journeyCfg.JourneyCmd = viper.GetString(keyJourneyCmd)
	journeyCfg.TwentyFourHourClock = viper.GetBool(keyTwentyFourHour)
	journeyCfg.DarkTheme = viper.GetBool(keyDarkTheme)

	rate := viper.GetFloat64(keySuspendedRate)
	if rate <= 0 || rate >= 1 {
		rate = defaultSuspendedRate
	}

	journeyCfg.SuspendedRate = rate

	if ctx.Uint("duration") > 0 {
		journeyCfg.Duration = time.Duration(ctx.Uint("duration")) * time.Minute
	}

	if ctx.String("from") != "" {
		journeyCfg.Origin = ctx.String("from")
	}

	if ctx.String("to") != "" {
		journeyCfg.Destination = ctx.String("to")
	}

	if ctx.Bool("disable-notification") {
		journeyCfg.Notify = false
	}

	if sound := ctx.String("sound"); sound != "" {
		if sound == "off" {
			journeyCfg.ArrivalSound = ""
		} else {
			journeyCfg.ArrivalSound = sound
		}
	}

	if ctx.String("cmd") != "" {
		journeyCfg.JourneyCmd = ctx.String("cmd")
	}
}

// Journey initializes and returns the journey configuration. The
// initialization is done just once no matter how many times it is called.
func Journey(ctx *cli.Context) *JourneyConfig {
	once.Do(func() {
		err := initializePaths()
		if err == nil {
			err = initJourneyConfig()
		}

		if err != nil {
			pterm.Error.Printfln("%s: %s", errInitFailed.Error(), err.Error())
			os.Exit(1)
		}

		setJourneyConfig(ctx)
	})

	return journeyCfg
}
