/*
NAME
  variables.go

DESCRIPTION
  variables.go contains a list of structs that provide a variable Name,
  type in a string format, a function for updating the variable in the
  Config struct from a string, and a validation function to check the
  validity of the corresponding field value in the Config.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ausocean/utils/logging"
)

// Config map keys.
const (
	KeyInputPath         = "InputPath"
	KeyLogLevel          = "LogLevel"
	KeyServiceUUID16     = "ServiceUUID16"
	KeyActivationLevel   = "ActivationLevel"
	KeyDeactivationLevel = "DeactivationLevel"
	KeyAlarmTimeout      = "AlarmTimeout"
	KeyMode              = "Mode"
	KeyGroup             = "Group"
	KeyRateSps           = "RateSps"
	KeyGain              = "Gain"
	KeyRepeat            = "Repeat"
	KeyStartLabel        = "StartLabel"
	KeyEndLabel          = "EndLabel"
)

// Config map parameter types.
const (
	typeString = "string"
	typeInt    = "int"
	typeFloat  = "float"
	typeBool   = "bool"
)

// Default variable values.
const (
	defaultLogLevel          = logging.Error
	defaultServiceUUID16     = "EA06"
	defaultActivationLevel   = 0.0
	defaultDeactivationLevel = 0.0
	defaultAlarmTimeout      = 10 * time.Second
	defaultGroup             = "A"
	defaultRateSps           = 250e3
	defaultGain              = 0.7
	defaultRepeat            = 10
	defaultEndLabel          = "txEnd"
)

// Variables describes the variables that can be used to configure a
// btle-decode or btle-burst instance. Each entry provides the name and
// type of a variable, a function for updating this variable in a
// Config, and a function for validating/defaulting the field's value.
var Variables = []struct {
	Name     string
	Type     string
	Update   func(*Config, string)
	Validate func(*Config)
}{
	{
		Name:   KeyInputPath,
		Type:   typeString,
		Update: func(c *Config, v string) { c.InputPath = v },
		Validate: func(c *Config) {
			if c.InputPath == "" {
				c.LogInvalidField(KeyInputPath, "(none)")
			}
		},
	},
	{
		Name:   KeyLogLevel,
		Type:   typeInt,
		Update: func(c *Config, v string) { c.LogLevel = int8(parseInt(KeyLogLevel, v, c)) },
		Validate: func(c *Config) {
			if c.LogLevel == 0 {
				c.LogInvalidField(KeyLogLevel, defaultLogLevel)
				c.LogLevel = defaultLogLevel
			}
		},
	},
	{
		Name:   KeyServiceUUID16,
		Type:   typeString,
		Update: func(c *Config, v string) { c.ServiceUUID16 = v },
		Validate: func(c *Config) {
			if c.ServiceUUID16 == "" {
				c.LogInvalidField(KeyServiceUUID16, defaultServiceUUID16)
				c.ServiceUUID16 = defaultServiceUUID16
			}
		},
	},
	{
		Name:   KeyActivationLevel,
		Type:   typeFloat,
		Update: func(c *Config, v string) { c.ActivationLevel = parseFloat(KeyActivationLevel, v, c) },
	},
	{
		Name:   KeyDeactivationLevel,
		Type:   typeFloat,
		Update: func(c *Config, v string) { c.DeactivationLevel = parseFloat(KeyDeactivationLevel, v, c) },
	},
	{
		Name: KeyAlarmTimeout,
		Type: typeInt,
		Update: func(c *Config, v string) {
			secs, err := strconv.Atoi(v)
			if err != nil {
				c.Logger.Warning("invalid AlarmTimeout param", "value", v)
				return
			}
			c.AlarmTimeout = time.Duration(secs) * time.Second
		},
		Validate: func(c *Config) {
			if c.AlarmTimeout <= 0 {
				c.LogInvalidField(KeyAlarmTimeout, defaultAlarmTimeout)
				c.AlarmTimeout = defaultAlarmTimeout
			}
		},
	},
	{
		Name:   KeyMode,
		Type:   typeBool,
		Update: func(c *Config, v string) { c.Mode = parseBool(KeyMode, v, c) },
	},
	{
		Name:   KeyGroup,
		Type:   typeString,
		Update: func(c *Config, v string) { c.Group = v },
		Validate: func(c *Config) {
			if c.Group == "" {
				c.LogInvalidField(KeyGroup, defaultGroup)
				c.Group = defaultGroup
			}
		},
	},
	{
		Name:   KeyRateSps,
		Type:   typeFloat,
		Update: func(c *Config, v string) { c.RateSps = parseFloat(KeyRateSps, v, c) },
		Validate: func(c *Config) {
			if c.RateSps <= 0 {
				c.LogInvalidField(KeyRateSps, defaultRateSps)
				c.RateSps = defaultRateSps
			}
		},
	},
	{
		Name: KeyGain,
		Type: typeFloat,
		Update: func(c *Config, v string) {
			c.Gain = float32(parseFloat(KeyGain, v, c))
		},
		Validate: func(c *Config) {
			if c.Gain == 0 {
				c.LogInvalidField(KeyGain, defaultGain)
				c.Gain = defaultGain
			}
		},
	},
	{
		Name:   KeyRepeat,
		Type:   typeInt,
		Update: func(c *Config, v string) { c.Repeat = parseInt(KeyRepeat, v, c) },
		Validate: func(c *Config) {
			if c.Repeat <= 0 {
				c.LogInvalidField(KeyRepeat, defaultRepeat)
				c.Repeat = defaultRepeat
			}
		},
	},
	{
		Name:   KeyStartLabel,
		Type:   typeString,
		Update: func(c *Config, v string) { c.StartLabel = v },
	},
	{
		Name:   KeyEndLabel,
		Type:   typeString,
		Update: func(c *Config, v string) { c.EndLabel = v },
		Validate: func(c *Config) {
			if c.EndLabel == "" {
				c.EndLabel = defaultEndLabel
			}
		},
	},
}

func parseInt(n, v string, c *Config) int {
	_v, err := strconv.Atoi(v)
	if err != nil {
		c.Logger.Warning(fmt.Sprintf("expected integer for param %s", n), "value", v)
	}
	return _v
}

func parseFloat(n, v string, c *Config) float64 {
	_v, err := strconv.ParseFloat(v, 64)
	if err != nil {
		c.Logger.Warning(fmt.Sprintf("expected float for param %s", n), "value", v)
	}
	return _v
}

func parseBool(n, v string, c *Config) (b bool) {
	switch strings.ToLower(v) {
	case "true":
		b = true
	case "false":
		b = false
	default:
		c.Logger.Warning(fmt.Sprintf("expected bool for param %s", n), "value", v)
	}
	return
}
