// +build pi

/*
DESCRIPTION
  gpio_pi.go lets btle-burst trigger a burst from a GPIO input edge when
  built for a Raspberry Pi.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package main

import (
	"github.com/kidoman/embd"
	_ "github.com/kidoman/embd/host/rpi"

	"github.com/ausocean/btle/burst"
	"github.com/ausocean/utils/logging"
)

// watchGPIO blocks, triggering gen on every rising edge seen on pinName,
// until an error occurs reading the pin.
func watchGPIO(pinName string, gen *burst.Generator, l logging.Logger) error {
	pin, err := embd.NewDigitalPin(pinName)
	if err != nil {
		return err
	}
	defer pin.Close()
	if err := pin.SetDirection(embd.In); err != nil {
		return err
	}

	var last int
	for {
		v, err := pin.Read()
		if err != nil {
			return err
		}
		if v == 1 && last == 0 {
			l.Info("GPIO edge detected, triggering burst", "pin", pinName)
			gen.Trigger()
		}
		last = v
	}
}
