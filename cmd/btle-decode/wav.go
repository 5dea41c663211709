/*
DESCRIPTION
  wav.go wraps go-audio/wav's PCM decoding into fixed-size sample chunks
  suitable for streaming one sample at a time into decode.Decoder.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package main

import (
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// wavIntBuffer reads successive chunks of up to frames mono samples from
// a wav.Decoder.
type wavIntBuffer struct {
	frames int
	data   []int
	buf    *audio.IntBuffer
}

// read fills b.data with the next chunk of samples and returns how many
// were read. It returns (0, nil) at end of stream.
func (b *wavIntBuffer) read(dec *wav.Decoder) (int, error) {
	if b.buf == nil {
		b.buf = &audio.IntBuffer{
			Data:   make([]int, b.frames),
			Format: &audio.Format{NumChannels: 1, SampleRate: int(dec.SampleRate)},
		}
	}
	b.buf.Data = b.buf.Data[:cap(b.buf.Data)]
	if err := dec.PCMBuffer(b.buf); err != nil {
		return 0, err
	}
	b.data = b.buf.Data
	return len(b.buf.Data), nil
}
