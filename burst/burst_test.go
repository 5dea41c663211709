package burst

import "testing"

func TestTriggerQueueLength(t *testing.T) {
	codes, ok := codesFor(true, "A")
	if !ok {
		t.Fatal("codebook missing mode=true, group=A")
	}
	codeLen := len(codes[0])
	for _, c := range codes {
		if len(c) != codeLen {
			t.Fatalf("codebook entries have differing lengths: %d vs %d", len(c), codeLen)
		}
	}

	g := &Generator{Mode: true, Group: "A", RateSps: 250e3, Gain: 0.7, Repeat: 3}
	g.Trigger()

	want := 3 * codeLen
	if len(g.queue) != want {
		t.Errorf("queue length = %d, want %d", len(g.queue), want)
	}
}

func TestTriggerUnknownGroupEmptiesQueue(t *testing.T) {
	g := &Generator{Mode: true, Group: "nonexistent", RateSps: 250e3, Gain: 0.7, Repeat: 3}
	g.Trigger()
	if !g.Done() {
		t.Error("expected an empty queue for an unknown group")
	}
}

func TestWorkProducesExactSampleCount(t *testing.T) {
	g := &Generator{Mode: true, Group: "A", RateSps: 2e3, Gain: 1.0, Repeat: 1, StartLabel: "start", EndLabel: "end"}
	g.Trigger()

	codes, _ := codesFor(true, "A")
	sampsPerSym := int(g.RateSps * 500e-6)
	wantTotal := len(g.queue) * sampsPerSym
	_ = codes

	var total int
	var sawStart, sawEnd bool
	out := make([]complex64, 7) // deliberately awkward chunk size.
	for !g.Done() {
		n, start, end := g.Work(out)
		if start != nil {
			if sawStart {
				t.Error("start label posted more than once")
			}
			sawStart = true
			if start.Index != 0 {
				t.Errorf("start label at index %d, want 0", start.Index)
			}
		}
		if end != nil {
			sawEnd = true
		}
		total += n
		if n == 0 {
			break
		}
	}

	if total != wantTotal {
		t.Errorf("total samples produced = %d, want %d", total, wantTotal)
	}
	if !sawStart {
		t.Error("start label was never posted")
	}
	if !sawEnd {
		t.Error("end label was never posted")
	}
}

func TestWorkSamplesHaveZeroImaginaryPart(t *testing.T) {
	g := &Generator{Mode: false, Group: "A", RateSps: 2e3, Gain: 0.5, Repeat: 1}
	g.Trigger()

	out := make([]complex64, 4096)
	n, _, _ := g.Work(out)
	for i := 0; i < n; i++ {
		if imag(out[i]) != 0 {
			t.Fatalf("sample %d has non-zero imaginary part: %v", i, out[i])
		}
	}
}

func TestWorkOnEmptyQueueReturnsZero(t *testing.T) {
	g := &Generator{}
	out := make([]complex64, 10)
	n, start, end := g.Work(out)
	if n != 0 || start != nil || end != nil {
		t.Errorf("Work on empty generator = (%d, %v, %v), want (0, nil, nil)", n, start, end)
	}
}
