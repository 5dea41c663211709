/*
NAME
  decode.go

DESCRIPTION
  decode implements the BTLE advertising-channel packet detector: a
  streaming decoder that, after each new sample, computes a sliding
  quantization threshold, attempts preamble detection, and on success
  extracts, descrambles, CRC-checks, and parses a BTLE advertising PDU
  into a record.PacketRecord.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package decode implements the BTLE advertising-channel physical-layer
// packet detector and decoder described by the project's specification:
// sliding threshold estimation, preamble detection, bit extraction,
// whitening, CRC24 validation and AD-structure parsing.
package decode

import (
	"fmt"
	"math"

	"github.com/ausocean/btle/record"
	"github.com/ausocean/btle/ringbuffer"
)

// thresholdLimit is the absolute magnitude gate on the sliding threshold;
// windows that saturate or carry strong DC bias are rejected outright.
const thresholdLimit = 15500

// warmupSkip is the initial skip count before the first decode attempt,
// matching ring buffer warm-up (Capacity samples must be written first).
const warmupSkip = ringbuffer.Capacity

// debounceSkip is the skip count applied after a successful decode, to
// avoid re-detecting the same packet at many adjacent sample offsets.
const debounceSkip = 20

// advertisingAddress is the BTLE advertising-channel access address.
const advertisingAddress = 0x8E89BED6

// Decoder holds the streaming state for BTLE advertising-channel
// detection: the sample ring and the skip/debounce counter. A Decoder has
// a single writer/caller; it is not safe for concurrent use.
type Decoder struct {
	rb        *ringbuffer.Buffer
	skip      int
	sample    int64 // count of decode attempts (samples fed outside warm-up and debounce), used as Timestamp and SampleIndex.
	lastThres int32
}

// NewDecoder returns a Decoder ready to accept samples via FeedSample or
// FeedFloat.
func NewDecoder() *Decoder {
	return &Decoder{
		rb:   ringbuffer.NewBuffer(),
		skip: warmupSkip,
	}
}

// FeedFloat converts a radian-scaled float64 sample (as produced by an FM
// demodulator emitting float32 in [-pi, pi]) to the u16 scale this
// decoder expects, then feeds it through FeedSample.
func (d *Decoder) FeedFloat(x float64) (*record.PacketRecord, bool) {
	scaled := x * (32768.0 / math.Pi)
	return d.FeedSample(uint16(int16(scaled)))
}

// FeedSample writes one sample into the ring and, once warmed up and past
// any post-detection debounce window, attempts to decode a packet. It
// returns the decoded record and true on success.
func (d *Decoder) FeedSample(u16 uint16) (*record.PacketRecord, bool) {
	d.rb.Write(int16(u16))

	if d.skip >= 1 {
		d.skip--
		return nil, false
	}

	d.sample++
	rec, ok := d.decodePacket()
	if ok {
		d.skip = debounceSkip
	}
	return rec, ok
}

// threshold computes the sliding quantization threshold over the last
// 8*srate samples.
func (d *Decoder) threshold() int32 {
	var sum int32
	for c := 0; c < 8*srate; c++ {
		sum += int32(d.rb.At(c))
	}
	return sum / (8 * srate)
}

// detectPreamble reports whether the last 8 symbols plus the phase symbol
// Q(9) exhibit the BTLE preamble's four-transition alternating pattern.
func (d *Decoder) detectPreamble(threshold int32) bool {
	var q [10]bool
	for k := 0; k < 10; k++ {
		q[k] = d.quantize(k, threshold)
	}
	transitions := 0
	if q[9] {
		for c := 0; c < 8; c++ {
			if q[c] && !q[c+1] {
				transitions++
			}
		}
	} else {
		for c := 0; c < 8; c++ {
			if !q[c] && q[c+1] {
				transitions++
			}
		}
	}
	return transitions == 4
}

// decodePacket attempts a full advertising-packet decode at the current
// ring position: preamble detection, access-address recognition, header
// and payload extraction, whitening, CRC validation, and AD-structure
// parsing. Every failure mode is non-fatal: it returns (nil, false) and
// leaves the stream to continue.
func (d *Decoder) decodePacket() (*record.PacketRecord, bool) {
	threshold := d.threshold()
	d.lastThres = threshold
	if abs32(threshold) >= thresholdLimit {
		return nil, false
	}
	if !d.detectPreamble(threshold) {
		return nil, false
	}

	addrBytes := d.extractBytes(8, 4, threshold)
	var addr uint64
	for i, b := range addrBytes {
		addr |= uint64(swapBits(b)) << uint(8*i)
	}
	if uint32(addr) != advertisingAddress {
		return nil, false
	}

	header := d.extractBytes(40, 2, threshold)
	whiten(header, advertisingChannel)
	packetLength := int(swapBits(header[1])) & 0x3F

	full := d.extractBytes(40, packetLength+2+3, threshold)
	whiten(full, advertisingChannel)

	crcStart := len(full) - 3
	receivedCRC := uint32(full[crcStart])<<16 | uint32(full[crcStart+1])<<8 | uint32(full[crcStart+2])
	computedCRC := crc24(full[:crcStart], ClassAdvertising)
	if computedCRC != receivedCRC {
		return nil, false
	}

	rec := record.New()
	rec.SetInt("Timestamp", d.sample)
	rec.SetString("Address", fmt.Sprintf("0x%08x", addr))
	rec.SetString("CRC", fmt.Sprintf("0x%06x", receivedCRC))
	rec.SetInt("SampleIndex", d.sample)
	rec.SetInt("Threshold", int64(threshold))

	mac := make([]byte, 6)
	for i := 0; i < 6; i++ {
		mac[i] = swapBits(full[7-i])
	}
	rec.SetString("MAC", fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		mac[0], mac[1], mac[2], mac[3], mac[4], mac[5]))

	adRegion := full[8:crcStart]
	parseAdStructures(rec, adRegion)

	return rec, true
}

// LastThreshold returns the most recently computed sliding quantization
// threshold, for diagnostic reporting by callers.
func (d *Decoder) LastThreshold() int32 {
	return d.lastThres
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
