/*
NAME
  ringbuffer.go

DESCRIPTION
  ringbuffer provides a fixed-capacity circular buffer of signed 16-bit
  samples, written one sample at a time by a single writer and read by
  index relative to the most recently written sample.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ringbuffer provides a fixed-capacity circular sample buffer
// suitable for sliding-window threshold estimation and preamble search
// over a streaming signal.
package ringbuffer

// Capacity is the number of samples held by a Buffer. It is fixed by the
// decoder's warm-up and preamble-search window requirements; see decode
// package for how large a window it reads back through At.
const Capacity = 1000

// WarmupSamples is the number of writes a Buffer requires before reads
// through At are guaranteed to reference only previously written samples.
const WarmupSamples = Capacity

// Buffer is a fixed-capacity circular buffer of signed 16-bit samples.
// A Buffer has a single writer; it is not safe for concurrent use.
type Buffer struct {
	buf  [Capacity]int16
	head int
	n    int // total samples written, saturates at Capacity for warm-up tracking.
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer { return &Buffer{} }

// Write advances the write head and stores sample as the new most-recent
// entry.
func (b *Buffer) Write(sample int16) {
	b.head = (b.head + 1) % Capacity
	b.buf[b.head] = sample
	if b.n < Capacity {
		b.n++
	}
}

// Warm reports whether Capacity samples have been written, i.e. whether
// At can be safely called for any offset in [0, Capacity).
func (b *Buffer) Warm() bool { return b.n >= Capacity }

// At returns the sample at reader offset l: At(0) is the most recently
// written sample. l must be non-negative. The index is computed as
// (head + l) mod Capacity, matching the decoder's indexing convention;
// callers should not assume At is monotonically older with increasing l
// beyond l == 0, since the modular offset wraps rather than walking
// straight back through write order.
func (b *Buffer) At(l int) int16 {
	idx := (b.head + l) % Capacity
	return b.buf[idx]
}
