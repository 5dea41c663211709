/*
NAME
  crc.go

DESCRIPTION
  crc.go implements the BTLE advertising-channel CRC24, a bespoke,
  per-bit LFSR-style CRC with a class-dependent initial register. It is
  computed bit by bit, directly against the algorithm's defining
  recurrence, rather than via a precomputed lookup table (the recurrence
  here is cheap enough, and class-dependent initial state would need a
  table per class anyway).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package decode

// Class identifies the packet class a CRC24 register is initialized for.
// Only ClassAdvertising is implemented; ClassNRF24 is a typed extension
// point for a sibling decoder outside this package's scope.
type Class int

const (
	ClassAdvertising Class = iota
	ClassNRF24
)

// initialRegister returns the three CRC24 register bytes used to seed a
// computation for the given class. Advertising packets initialize all
// three bytes to 0x55; ClassNRF24 is a contract-only placeholder and
// panics if ever used, since no NRF24 CRC variant is implemented here.
func initialRegister(c Class) [3]byte {
	switch c {
	case ClassAdvertising:
		return [3]byte{0x55, 0x55, 0x55}
	default:
		panic("decode: CRC24 initial register not implemented for class")
	}
}

// crc24 computes the BTLE CRC24 over data, seeded for class c. Each input
// byte is bit-reversed before being folded in, matching the LSB-first air
// order.
func crc24(data []byte, c Class) uint32 {
	reg := initialRegister(c)
	for _, d := range data {
		d = swapBits(d)
		for v := 0; v < 8; v++ {
			t := (reg[0] >> 7) & 1
			reg[0] = reg[0] << 1
			if reg[1]&0x80 != 0 {
				reg[0] |= 1
			}
			reg[1] = reg[1] << 1
			if reg[2]&0x80 != 0 {
				reg[1] |= 1
			}
			reg[2] = reg[2] << 1
			bit := (d >> uint(v)) & 1
			if t != bit {
				reg[2] ^= 0x5B
				reg[1] ^= 0x06
			}
		}
	}
	return uint32(reg[0])<<16 | uint32(reg[1])<<8 | uint32(reg[2])
}
