// +build !pi

/*
DESCRIPTION
  gpio_other.go lets btle-burst build on non-Pi platforms, without GPIO
  trigger support.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package main

import (
	"errors"

	"github.com/ausocean/btle/burst"
	"github.com/ausocean/utils/logging"
)

// watchGPIO is unavailable off a Raspberry Pi build.
func watchGPIO(pinName string, gen *burst.Generator, l logging.Logger) error {
	return errors.New("GPIO trigger requires a pi build")
}
