package decode

import (
	"bytes"
	"testing"
)

func TestWhitenInvolution(t *testing.T) {
	channels := []byte{0, 1, advertisingChannel, 37, 39}
	original := []byte{0x00, 0xFF, 0xAA, 0x55, 0x12, 0x34, 0x00}

	for _, ch := range channels {
		data := append([]byte(nil), original...)
		whiten(data, ch)
		if bytes.Equal(data, original) {
			t.Errorf("channel %d: whiten left data unchanged, expected scrambling", ch)
		}
		whiten(data, ch)
		if !bytes.Equal(data, original) {
			t.Errorf("channel %d: whiten(whiten(x)) = %x, want %x", ch, data, original)
		}
	}
}

func TestWhitenDifferentChannelsDiffer(t *testing.T) {
	original := []byte{0x12, 0x34, 0x56, 0x78}

	a := append([]byte(nil), original...)
	whiten(a, 1)

	b := append([]byte(nil), original...)
	whiten(b, 2)

	if bytes.Equal(a, b) {
		t.Errorf("whitening with different channels produced identical output: %x", a)
	}
}
