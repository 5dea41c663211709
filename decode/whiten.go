/*
NAME
  whiten.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package decode

// advertisingChannel is the whitening index for the advertising channels
// this decoder supports (logical channel 38); see spec §1 Non-goals.
const advertisingChannel = 38

// whiten applies the BTLE data-whitening LFSR to data in place, keyed by
// channel. The LFSR is self-synchronous and self-inverse: calling whiten
// twice with the same channel restores the original bytes.
func whiten(data []byte, channel byte) {
	lfsr := swapBits(channel) | 0x02
	for i := range data {
		var out byte
		for mask := byte(0x80); mask != 0; mask >>= 1 {
			if lfsr&0x80 != 0 {
				lfsr ^= 0x11
				out = data[i] ^ mask
				data[i] = out
			}
			lfsr <<= 1
		}
	}
}
