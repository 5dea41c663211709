/*
NAME
  record.go

DESCRIPTION
  record provides PacketRecord, an ordered key/value record type for
  decoded BTLE advertising packets. A plain Go map does not preserve
  insertion order, so fields are kept in an explicit slice, mirroring the
  way container/mts/psi represents descriptor fields as structured slices
  rather than generic maps.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package record defines the ordered PacketRecord type populated by a
// successful BTLE advertising-packet decode.
package record

import (
	"fmt"
	"strconv"
	"strings"
)

// field is a single ordered key/value pair. The value is either the
// string str or, when isNum is set, the int64 num; String renders
// whichever is set.
type field struct {
	key   string
	str   string
	num   int64
	isNum bool
}

// PacketRecord is an ordered mapping from field name to value, populated
// by the decoder on a successful CRC-validated packet. Field order is
// insertion order, not sorted or map order.
type PacketRecord struct {
	fields []field
}

// New returns an empty PacketRecord.
func New() *PacketRecord {
	return &PacketRecord{}
}

// SetString appends or replaces a string-valued field, preserving the
// position of the first insertion if the key already exists.
func (r *PacketRecord) SetString(key, value string) {
	for i := range r.fields {
		if r.fields[i].key == key {
			r.fields[i] = field{key: key, str: value}
			return
		}
	}
	r.fields = append(r.fields, field{key: key, str: value})
}

// SetInt appends or replaces an integer-valued field.
func (r *PacketRecord) SetInt(key string, value int64) {
	for i := range r.fields {
		if r.fields[i].key == key {
			r.fields[i] = field{key: key, num: value, isNum: true}
			return
		}
	}
	r.fields = append(r.fields, field{key: key, num: value, isNum: true})
}

// String returns the string value of key and whether it was present.
func (r *PacketRecord) String(key string) (string, bool) {
	for _, f := range r.fields {
		if f.key == key {
			if f.isNum {
				return strconv.FormatInt(f.num, 10), true
			}
			return f.str, true
		}
	}
	return "", false
}

// Int returns the integer value of key and whether it was present and
// numeric.
func (r *PacketRecord) Int(key string) (int64, bool) {
	for _, f := range r.fields {
		if f.key == key {
			if !f.isNum {
				return 0, false
			}
			return f.num, true
		}
	}
	return 0, false
}

// Keys returns field names in insertion order.
func (r *PacketRecord) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.key
	}
	return keys
}

// Text renders the record as "key=value" pairs in insertion order,
// separated by spaces.
func (r *PacketRecord) Text() string {
	var sb strings.Builder
	for i, f := range r.fields {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if f.isNum {
			fmt.Fprintf(&sb, "%s=%d", f.key, f.num)
		} else {
			fmt.Fprintf(&sb, "%s=%s", f.key, f.str)
		}
	}
	return sb.String()
}

// MarshalJSON renders the record as a JSON object with members in
// insertion order. encoding/json on a map would re-sort by key, so this
// is hand-written to preserve the order semantics PacketRecord promises.
func (r *PacketRecord) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%q:", f.key)
		if f.isNum {
			fmt.Fprintf(&sb, "%d", f.num)
		} else {
			fmt.Fprintf(&sb, "%q", f.str)
		}
	}
	sb.WriteByte('}')
	return []byte(sb.String()), nil
}
