/*
NAME
  bits.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package decode

// srate is the number of samples per symbol: the air bit rate is 1 Mbps
// sampled at 2 Msps.
const srate = 2

// swapBits reverses the bit order of a byte. The ring extracts bits
// MSB-first but BTLE transmits LSB-first per byte, so every byte pulled
// out of the bit stream needs its bits reversed before interpretation.
func swapBits(b byte) byte {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

// quantize reports whether the sample at symbol index l exceeds threshold,
// i.e. the quantized symbol value used for preamble detection and bit
// extraction.
func (d *Decoder) quantize(l int, threshold int32) bool {
	return int32(d.rb.At(l*srate)) > threshold
}

// extractByte reads eight consecutive symbols starting at symbol index l,
// packing them MSB-first.
func (d *Decoder) extractByte(l int, threshold int32) byte {
	var b byte
	for c := 0; c < 8; c++ {
		if d.quantize(l+c, threshold) {
			b |= 1 << uint(7-c)
		}
	}
	return b
}

// extractBytes reads n consecutive bytes starting at symbol index l, with
// a stride of eight symbols per byte.
func (d *Decoder) extractBytes(l, n int, threshold int32) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = d.extractByte(l+i*8, threshold)
	}
	return out
}
