/*
NAME
  sensor.go

DESCRIPTION
  sensor implements a BTLE service-data monitor: it watches decoded
  advertising records for a configured 16-bit service UUID, tracks the
  associated sensor value with hysteresis, and raises an alarm once the
  service has been silent for too long.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package sensor monitors decoded BTLE advertising records for a
// configured service UUID16 and raises activation/deactivation/alarm
// state transitions based on the carried sensor value and its recency.
package sensor

import (
	"strconv"
	"strings"
	"time"

	"github.com/ausocean/btle/record"
)

// State is one of the three states a Monitor can report.
type State int

const (
	StateInactive State = iota
	StateActive
	StateAlarm
)

// String renders the state the way the original monitor's "state" signal
// did: ACTIVE, INACTIVE or ALARM.
func (s State) String() string {
	switch s {
	case StateActive:
		return "ACTIVE"
	case StateAlarm:
		return "ALARM"
	default:
		return "INACTIVE"
	}
}

// Signal is emitted by Observe and Tick on a state transition.
type Signal struct {
	State  State
	Value  float64
	Active bool
}

// Monitor tracks one service UUID16's sensor value across a stream of
// PacketRecords. A Monitor has a single caller; it is not safe for
// concurrent Observe/Tick calls without external synchronization.
type Monitor struct {
	ServiceUUID16     string
	ActivationLevel   float64
	DeactivationLevel float64
	AlarmTimeout      time.Duration

	active   bool
	value    float64
	lastSeen time.Time
	seen     bool
}

// Last returns the most recently observed value and activation state,
// without evaluating alarm timeout.
func (m *Monitor) Last() (value float64, active bool) {
	return m.value, m.active
}

// Observe inspects rec for a "<name> UUID16" field matching
// ServiceUUID16 and a companion value field, applies hysteresis, and
// returns the resulting Signal along with whether a transition (or
// alarm override) occurred. If rec carries no matching field, Observe
// only checks for alarm timeout expiry relative to now and does not
// otherwise change state.
func (m *Monitor) Observe(rec *record.PacketRecord, now time.Time) (Signal, bool) {
	name, value, ok := m.matchingField(rec)
	if !ok {
		return m.Tick(now)
	}

	m.value = value
	m.lastSeen = now
	m.seen = true
	_ = name

	prevActive := m.active
	switch {
	case value >= m.ActivationLevel:
		m.active = true
	case value <= m.DeactivationLevel:
		m.active = false
	}

	state := StateInactive
	if m.active {
		state = StateActive
	}
	changed := m.active != prevActive

	return Signal{State: state, Value: m.value, Active: m.active}, changed
}

// Tick evaluates alarm timeout without a new record: the Go equivalent
// of the original Pothos block's periodic triggerReport, since nothing
// here drives a scheduled callback on its own. Callers needing wall-clock
// ALARM detection between packets must call Tick periodically.
func (m *Monitor) Tick(now time.Time) (Signal, bool) {
	if !m.seen || m.AlarmTimeout <= 0 {
		return Signal{}, false
	}
	if now.Sub(m.lastSeen) > m.AlarmTimeout {
		m.active = false
		return Signal{State: StateAlarm, Value: m.value, Active: false}, true
	}
	state := StateInactive
	if m.active {
		state = StateActive
	}
	return Signal{State: state, Value: m.value, Active: m.active}, false
}

// matchingField looks for a "<name> UUID16" field equal to
// m.ServiceUUID16 (case-insensitive hex comparison) and a companion
// "<name>" field holding the sensor value as a parseable float.
func (m *Monitor) matchingField(rec *record.PacketRecord) (name string, value float64, ok bool) {
	for _, key := range rec.Keys() {
		if !strings.HasSuffix(key, " UUID16") {
			continue
		}
		uuidStr, _ := rec.String(key)
		if !strings.EqualFold(uuidStr, m.ServiceUUID16) {
			continue
		}
		fieldName := strings.TrimSuffix(key, " UUID16")
		valStr, found := rec.String(fieldName)
		if !found {
			continue
		}
		v, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			continue
		}
		return fieldName, v, true
	}
	return "", 0, false
}
