package config

import "errors"

var (
	errInitFailed = errors.New(
		"Unable to initialise RailFocus settings from the configuration file",
	)
	errExpectedInteger = errors.New(
		"Expected an integer that must be greater than zero",
	)
	errEmptyStation = errors.New(
		"Station names must not be empty",
	)
)
