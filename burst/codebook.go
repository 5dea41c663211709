/*
NAME
  codebook.go

DESCRIPTION
  codebook.go holds the compile-time bit-pattern table for the OOK burst
  generator, one set of candidate codes per (mode, group) pair.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package burst

// codebook maps mode (true=on, false=off) to group name to a list of
// candidate bit-pattern strings; trigger picks one at random per
// repetition. Ported from the reference remote-control code tables.
var codebook = map[bool]map[string][]string{
	true: {
		"A": {
			"1111110000000000000011010011011010010011101001101001101101001001001001101001101001101101001000",
			"1111110000000000000011010011011010010011101001101001101101001001001001101001101001101101001001",
			"1111110000000000000011010011011010010011010001101001101101001001001001101001101001101101001001",
			"1111110000000000000011010011011010010011010001101001101101001001001001101001101001101101001000",
			"1111110000000000000011010011011010010011001001101001101101001001001001101001101001101101001001",
			"1111110000000000000011010011011010010011001001101001101101001001001001101001101001101101001000",
			"1111110000000000000011010011011010010011011001101001101101001001001001101001101001101101001000",
			"1111110000000000000011010011011010010011011001101001101101001001001001101001101001101101001001",
		},
	},
	false: {
		"A": {
			"1111110000000000000011010011011011010011001001001101001101101001101001101001101101101101001000",
			"1111110000000000000011010011011011010011001001001101001101101001101001101001101101101101001001",
			"1111110000000000000011010011011011010011010001001101001101101001101001101001101101101101001000",
			"1111110000000000000011010011011011010011010001001101001101101001101001101001101101101101001001",
			"1111110000000000000011010011011011010011101001001101001101101001101001101001101101101101001001",
			"1111110000000000000011010011011011010011101001001101001101101001101001101001101101101101001000",
			"1111110000000000000011010011011011010011011001001101001101101001101001101001101101101101001001",
			"1111110000000000000011010011011011010011011001001101001101101001101001101001101101101101001000",
		},
	},
}

// codesFor returns the candidate code list for mode/group, and whether
// the pair was found in the codebook.
func codesFor(mode bool, group string) ([]string, bool) {
	byGroup, ok := codebook[mode]
	if !ok {
		return nil, false
	}
	codes, ok := byGroup[group]
	return codes, ok
}
