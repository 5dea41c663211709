/*
NAME
  advert.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package decode

import (
	"fmt"
	"strings"

	"github.com/ausocean/btle/record"
)

const (
	adTypeFlags            = 0x01
	adTypeShortenedName    = 0x08
	adTypeCompleteName     = 0x09
	adTypeServiceData      = 0x16
	adTypeURI              = 0x24
	adTypeManufacturerData = 0xFF
)

// adTypeName maps an AD structure type byte to its display name.
func adTypeName(typ byte) string {
	switch typ {
	case adTypeFlags:
		return "Flags"
	case adTypeShortenedName:
		return "Shortened Name"
	case adTypeCompleteName:
		return "Complete Name"
	case adTypeServiceData:
		return "Service Data"
	case adTypeURI:
		return "URI"
	case adTypeManufacturerData:
		return "Manufacturer Data"
	default:
		return fmt.Sprintf("0x%02x", typ)
	}
}

// hasUUID16 reports whether an AD structure of the given type carries a
// leading 16-bit UUID before its value bytes.
func hasUUID16(typ byte) bool {
	return typ == adTypeServiceData || typ == adTypeManufacturerData
}

// renderASCII renders a bit-reversed byte slice as a string, keeping
// printable ASCII (space through '~') verbatim and escaping everything
// else as \xHH.
func renderASCII(bs []byte) string {
	var sb strings.Builder
	for _, c := range bs {
		c = swapBits(c)
		if c >= ' ' && c <= '~' {
			sb.WriteByte(c)
		} else {
			fmt.Fprintf(&sb, "\\x%02x", c)
		}
	}
	return sb.String()
}

// parseAdStructures walks the length-prefixed TLV region of an
// advertising payload, writing recognized fields into rec. buf holds the
// already-whitened bytes starting at whitened offset 8 (immediately
// after access address + header).
//
// The loop keeps the original decoder's remaining-length check: parsing
// stops when len >= rem, i.e. when the structure's 1+len bytes would not
// fit in the remaining bytes. A final structure that exactly fills the
// remaining bytes (len == rem-1) is parsed.
func parseAdStructures(rec *record.PacketRecord, buf []byte) {
	rem := len(buf)
	pos := 0
	for rem >= 3 {
		length := int(swapBits(buf[pos]))
		if length >= rem {
			break
		}
		typ := swapBits(buf[pos+1])
		name := adTypeName(typ)
		ad := buf[pos : pos+1+length] // ad[0]=len, ad[1]=type, ad[2:] value.

		switch {
		case typ == adTypeFlags && length == 2:
			rec.SetInt(name, int64(swapBits(ad[2])))
		default:
			i := 2
			if hasUUID16(typ) && len(ad) >= 4 {
				uuid16 := uint16(swapBits(ad[2])) | uint16(swapBits(ad[3]))<<8
				rec.SetString(name+" UUID16", fmt.Sprintf("%02x", uuid16))
				i = 4
			}
			if i <= len(ad) {
				rec.SetString(name, renderASCII(ad[i:]))
			}
		}

		adv := 1 + length
		pos += adv
		rem -= adv
	}
}
