/*
DESCRIPTION
  btle-advertise is a small, standalone reference utility that assembles
  a BTLE advertising-channel payload byte sequence: a Flags field, an
  optional Complete Name field, and an optional Service Data
  field carrying a 16-bit UUID. It prints the resulting bytes as hex.

  This is a boundary-only reference tool: it has no dependency on, and is
  not imported by, the decode/burst/sensor core. Actually transmitting
  the assembled payload over a Bluetooth HCI controller is out of scope.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package btle-advertise is a standalone reference utility for
// assembling a BTLE advertising payload byte sequence.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
)

const (
	adTypeFlags        = 0x01
	adTypeCompleteName = 0x09
	adTypeServiceData  = 0x16

	flagLimitedDiscoverable = 0x01
)

func main() {
	name := flag.String("name", "", "Complete local name to advertise.")
	uuid := flag.String("uuid", "", "16-bit service UUID in hex, e.g. EA06.")
	data := flag.String("data", "", "Arbitrary service data string.")
	flag.Parse()

	payload, err := buildPayload(*name, *uuid, *data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(hex.EncodeToString(payload))
}

// buildPayload assembles a Flags field, an optional Complete Name field,
// and an optional Service Data field (16-bit UUID + data bytes) into a
// single length-prefixed AD-structure byte sequence, mirroring the HCI
// advertising-data assembly this decoder's DECODER component consumes
// downstream of.
func buildPayload(name, uuidHex, data string) ([]byte, error) {
	var out []byte

	out = append(out, 0x02, adTypeFlags, flagLimitedDiscoverable)

	if name != "" {
		out = append(out, byte(len(name)+1), adTypeCompleteName)
		out = append(out, []byte(name)...)
	}

	if data != "" {
		if uuidHex == "" {
			return nil, fmt.Errorf("service data requires a -uuid value")
		}
		uuid, err := strconv.ParseUint(uuidHex, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid uuid %q: %w", uuidHex, err)
		}
		out = append(out, byte(len(data)+1+2), adTypeServiceData)
		out = append(out, byte(uuid&0xff), byte(uuid>>8))
		out = append(out, []byte(data)...)
	}

	return out, nil
}
