/*
NAME
  config.go

DESCRIPTION
  config contains the configuration settings shared by the btle-decode
  and btle-burst command-line tools.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package config contains the configuration settings for the btle
// decode/burst command-line tools.
package config

import (
	"time"

	"github.com/ausocean/utils/logging"
)

// Config provides parameters relevant to a btle-decode or btle-burst
// instance. A new Config must be passed through Validate before use.
// Default values for these fields are defined as consts in variables.go.
type Config struct {
	// InputPath is the WAV file read by btle-decode when no -wav flag is
	// given. btle-burst does not use it; its output path is the -out flag.
	InputPath string

	// LogLevel is the logging verbosity level. Valid values are defined
	// by enums from the logging package: logging.Debug, logging.Info,
	// logging.Warning, logging.Error, logging.Fatal.
	LogLevel int8

	// Logger holds an implementation of the Logger interface. This must
	// be set before Update or Validate log anything.
	Logger logging.Logger

	// ServiceUUID16 is the 4-hex-digit service UUID the sensor monitor
	// watches for.
	ServiceUUID16 string

	// ActivationLevel and DeactivationLevel bound the sensor monitor's
	// hysteresis band.
	ActivationLevel   float64
	DeactivationLevel float64

	// AlarmTimeout is the wall-clock duration after which, with no
	// matching packet observed, the sensor monitor forces StateAlarm.
	AlarmTimeout time.Duration

	// Mode, Group, RateSps, Gain, Repeat, StartLabel, EndLabel configure
	// the burst generator.
	Mode       bool
	Group      string
	RateSps    float64
	Gain       float32
	Repeat     int
	StartLabel string
	EndLabel   string
}

// Validate checks for errors in the config fields and defaults settings
// if particular parameters have not been defined.
func (c *Config) Validate() error {
	for _, v := range Variables {
		if v.Validate != nil {
			v.Validate(c)
		}
	}
	return nil
}

// Update takes a map of configuration variable names and their
// corresponding values, parses the string values, and sets the matching
// Config fields.
func (c *Config) Update(vars map[string]string) {
	for _, value := range Variables {
		if v, ok := vars[value.Name]; ok && value.Update != nil {
			value.Update(c, v)
		}
	}
}

// LogInvalidField logs that a field was unset or invalid and the default
// it is being given.
func (c *Config) LogInvalidField(name string, def interface{}) {
	c.Logger.Info(name+" bad or unset, defaulting", name, def)
}
