/*
NAME
  burst.go

DESCRIPTION
  burst implements the OOK burst generator: on Trigger, it materializes a
  queue of amplitude-keyed symbols from the compile-time codebook, then
  Work streams them out a caller-provided complex64 buffer at a time,
  posting start/end labels the way the reference remote-control block
  posts Pothos labels on its output port.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package burst implements the OOK (on-off keying) wireless remote
// control burst generator: a per-(mode,group) codebook of bit patterns,
// streamed as amplitude-keyed complex samples at a configured symbol
// rate.
package burst

import (
	"math/rand"
)

// Label marks a position within a Work output buffer, mirroring a
// dataflow framework's output-port label: a named event at a sample
// offset, optionally carrying an associated value.
type Label struct {
	Name  string
	Index int
	Value int
}

// Generator holds BurstTrigger configuration and the per-burst transmit
// queue. A Generator has a single caller; it is not safe for concurrent
// Trigger/Work calls without external synchronization.
type Generator struct {
	Mode       bool
	Group      string
	RateSps    float64
	Gain       float32
	Repeat     int
	StartLabel string
	EndLabel   string

	queue        []float32
	sampsPerSym  int
	samplesCount int
	doStartBurst bool
}

// Trigger clears and refills the transmit queue: samps_per_sym is
// recomputed from RateSps (symbol duration is fixed at 500us), and Repeat
// codes are chosen at random from codebook[Mode][Group] and appended bit
// by bit as amplitudes ('0' -> 0, '1' -> Gain).
func (g *Generator) Trigger() {
	g.sampsPerSym = int(g.RateSps * 500e-6)
	g.samplesCount = 0
	g.doStartBurst = true
	g.queue = g.queue[:0]

	codes, ok := codesFor(g.Mode, g.Group)
	if !ok || len(codes) == 0 {
		return
	}
	for i := 0; i < g.Repeat; i++ {
		code := codes[rand.Intn(len(codes))]
		for _, ch := range code {
			if ch == '0' {
				g.queue = append(g.queue, 0)
			} else {
				g.queue = append(g.queue, g.Gain)
			}
		}
	}
}

// Work writes up to len(out) samples from the transmit queue into out,
// advancing the per-symbol counter and popping a queue entry every
// sampsPerSym output slots. It returns the number of samples written and,
// if applicable, the start and end labels posted during this call. A
// start label is only ever posted on the first Work call after Trigger,
// at index 0, carrying the total burst length in samples; an end label is posted the slot the queue empties,
// terminating the write early.
func (g *Generator) Work(out []complex64) (n int, startLabel, endLabel *Label) {
	if len(g.queue) == 0 {
		return 0, nil, nil
	}

	if g.doStartBurst && g.StartLabel != "" {
		startLabel = &Label{Name: g.StartLabel, Index: 0, Value: len(g.queue) * g.sampsPerSym}
	}
	g.doStartBurst = false

	i := 0
	for ; i < len(out); i++ {
		out[i] = complex(g.queue[0], 0)
		g.samplesCount++
		if g.samplesCount == g.sampsPerSym {
			g.queue = g.queue[1:]
			g.samplesCount = 0
		}
		if len(g.queue) == 0 {
			if g.EndLabel != "" {
				endLabel = &Label{Name: g.EndLabel, Index: i}
			}
			i++
			break
		}
	}
	return i, startLabel, endLabel
}

// Done reports whether the transmit queue has been fully drained.
func (g *Generator) Done() bool {
	return len(g.queue) == 0
}
