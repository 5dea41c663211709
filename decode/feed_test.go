package decode

import (
	"math"
	"testing"

	"github.com/ausocean/btle/record"
)

// TestFeedSampleWarmup exercises the warm-up property: the first
// warmupSkip FeedSample calls must return false regardless of input,
// since no decode attempt is made until the ring has been written once
// all the way around. The skip counter gates decodePacket entirely, so
// the zero-valued input here is not special-cased by the implementation.
func TestFeedSampleWarmup(t *testing.T) {
	d := NewDecoder()
	for i := 0; i < warmupSkip; i++ {
		if _, ok := d.FeedSample(0); ok {
			t.Fatalf("FeedSample returned true during warm-up, call %d", i+1)
		}
	}
}

// samplesFromBitsStreamed lays out bits into a total-length sample array
// so that, fed one sample at a time through FeedSample, the call whose
// total'th write just landed reads the intended quantize(k) values: that
// call's quantize(0) reads the sample most recently written (index
// total-1), and quantize(k) for k >= 1 reads index total-1001+2k. This is
// the streaming counterpart of samplesFromBits's fixed-buffer derivation,
// generalized because FeedSample's first decode attempt lands on the
// 1001st write (warmupSkip decrements before the first attempt), not the
// 1000th.
func samplesFromBitsStreamed(bits []bool, total int) []int16 {
	samples := make([]int16, total)
	for k, bit := range bits {
		idx := total - 1001 + 2*k
		if k == 0 {
			idx = total - 1
		}
		v := int16(-testAmplitude)
		if bit {
			v = testAmplitude
		}
		samples[idx] = v
	}
	return samples
}

// firstDecodeCall is the call index at which FeedSample first attempts a
// decode: warmupSkip calls are consumed by warm-up before it.
const firstDecodeCall = warmupSkip + 1

func TestFeedSampleDecodesAtExpectedCall(t *testing.T) {
	mac := [6]byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	addrBytes, fullBytes := encodedAdvertisement(t, mac, 0x06)
	bits := buildBits(addrBytes, fullBytes)
	samples := samplesFromBitsStreamed(bits, firstDecodeCall)

	d := NewDecoder()
	var rec *record.PacketRecord
	var at int
	for i, s := range samples {
		r, ok := d.FeedSample(uint16(s))
		if ok {
			rec, at = r, i+1
		}
	}

	if rec == nil {
		t.Fatal("expected a decode once the planted packet had fully streamed in, got none")
	}
	if at != firstDecodeCall {
		t.Errorf("decoded at call %d, want call %d", at, firstDecodeCall)
	}
	if addr, _ := rec.String("Address"); addr != "0x8e89bed6" {
		t.Errorf("Address = %q, want 0x8e89bed6", addr)
	}
	if mac, _ := rec.String("MAC"); mac != "aa:bb:cc:dd:ee:ff" {
		t.Errorf("MAC = %q, want aa:bb:cc:dd:ee:ff", mac)
	}
}

// TestFeedSampleDebounceAfterSuccess exercises the debounce property: the
// debounceSkip calls immediately following a successful decode must all
// return false, since the skip counter suppresses decodePacket for that
// window regardless of buffer content.
func TestFeedSampleDebounceAfterSuccess(t *testing.T) {
	mac := [6]byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	addrBytes, fullBytes := encodedAdvertisement(t, mac, 0x06)
	bits := buildBits(addrBytes, fullBytes)
	samples := samplesFromBitsStreamed(bits, firstDecodeCall)

	d := NewDecoder()
	var successAt int
	for i, s := range samples {
		if _, ok := d.FeedSample(uint16(s)); ok {
			successAt = i + 1
		}
	}
	if successAt != firstDecodeCall {
		t.Fatalf("setup failed: expected decode at call %d, got %d", firstDecodeCall, successAt)
	}

	for i := 0; i < debounceSkip; i++ {
		if _, ok := d.FeedSample(0); ok {
			t.Errorf("FeedSample returned true during debounce window, call %d", i+1)
		}
	}
}

// TestFeedSampleTwoPacketsSeparatedByGapProduceTwoRecords reproduces the
// back-to-back scenario: two valid packets separated by a 2000-call gap,
// fed sample-by-sample through FeedSample, must decode to exactly two
// records, at exactly the two calls the packets were planted to land on.
// The gap is filled with silence; any partially-overlapping sliding-window
// read of either packet's own content that happens to satisfy
// detectPreamble's four-transition gate is still rejected downstream by
// the access-address and CRC checks, which only the intended, fully
// aligned read can satisfy.
func TestFeedSampleTwoPacketsSeparatedByGapProduceTwoRecords(t *testing.T) {
	mac := [6]byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	addrBytes, fullBytes := encodedAdvertisement(t, mac, 0x06)
	bits := buildBits(addrBytes, fullBytes)

	const gap = 2000
	const firstAt = firstDecodeCall
	const secondAt = firstAt + gap

	samples := make([]int16, secondAt)
	plant := func(total int) {
		for k, bit := range bits {
			idx := total - 1001 + 2*k
			if k == 0 {
				idx = total - 1
			}
			v := int16(-testAmplitude)
			if bit {
				v = testAmplitude
			}
			samples[idx] = v
		}
	}
	plant(firstAt)
	plant(secondAt)

	d := NewDecoder()
	var hits []int
	for i, s := range samples {
		if _, ok := d.FeedSample(uint16(s)); ok {
			hits = append(hits, i+1)
		}
	}

	if len(hits) != 2 {
		t.Fatalf("got %d records (at calls %v), want exactly 2", len(hits), hits)
	}
	if hits[0] != firstAt || hits[1] != secondAt {
		t.Errorf("decoded at calls %v, want [%d %d]", hits, firstAt, secondAt)
	}
}

// TestFeedFloatMatchesFeedSample exercises FeedFloat/FeedSample scaling
// equivalence: feeding the float64 radian-scaled equivalent of the same
// fixture through FeedFloat must decode the same packet at the same call
// as feeding it through FeedSample directly.
func TestFeedFloatMatchesFeedSample(t *testing.T) {
	mac := [6]byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	addrBytes, fullBytes := encodedAdvertisement(t, mac, 0x06)
	bits := buildBits(addrBytes, fullBytes)
	samples := samplesFromBitsStreamed(bits, firstDecodeCall)

	sampleDecoder := NewDecoder()
	floatDecoder := NewDecoder()

	var sampleRec, floatRec *record.PacketRecord
	var sampleAt, floatAt int
	for i, s := range samples {
		if r, ok := sampleDecoder.FeedSample(uint16(s)); ok {
			sampleRec, sampleAt = r, i+1
		}
		x := float64(s) * math.Pi / 32768.0
		if r, ok := floatDecoder.FeedFloat(x); ok {
			floatRec, floatAt = r, i+1
		}
	}

	if sampleRec == nil || floatRec == nil {
		t.Fatalf("expected both paths to decode: FeedSample ok=%v, FeedFloat ok=%v", sampleRec != nil, floatRec != nil)
	}
	if sampleAt != floatAt {
		t.Errorf("FeedSample decoded at call %d, FeedFloat at call %d", sampleAt, floatAt)
	}

	sAddr, _ := sampleRec.String("Address")
	fAddr, _ := floatRec.String("Address")
	if sAddr != fAddr {
		t.Errorf("Address mismatch: FeedSample=%q FeedFloat=%q", sAddr, fAddr)
	}
	sMAC, _ := sampleRec.String("MAC")
	fMAC, _ := floatRec.String("MAC")
	if sMAC != fMAC {
		t.Errorf("MAC mismatch: FeedSample=%q FeedFloat=%q", sMAC, fMAC)
	}
}
