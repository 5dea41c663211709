package record

import (
	"encoding/json"
	"testing"
)

func TestOrderPreservation(t *testing.T) {
	r := New()
	r.SetString("c", "3")
	r.SetInt("a", 1)
	r.SetString("b", "2")

	want := []string{"c", "a", "b"}
	got := r.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSetReplacesInPlace(t *testing.T) {
	r := New()
	r.SetString("a", "1")
	r.SetString("b", "2")
	r.SetString("a", "updated")

	if got := r.Keys(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Keys() = %v, want [a b] with a retaining position 0", got)
	}
	v, ok := r.String("a")
	if !ok || v != "updated" {
		t.Errorf("String(a) = %q, %v, want %q, true", v, ok, "updated")
	}
}

func TestIntAndStringAccessors(t *testing.T) {
	r := New()
	r.SetInt("n", 42)
	r.SetString("s", "hello")

	n, ok := r.Int("n")
	if !ok || n != 42 {
		t.Errorf("Int(n) = %d, %v, want 42, true", n, ok)
	}
	if _, ok := r.Int("s"); ok {
		t.Errorf("Int(s) reported ok for a string field")
	}
	if _, ok := r.Int("missing"); ok {
		t.Errorf("Int(missing) reported ok for an absent field")
	}
}

func TestMarshalJSONOrder(t *testing.T) {
	r := New()
	r.SetString("zeta", "z")
	r.SetInt("alpha", 1)

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"zeta":"z","alpha":1}`
	if string(data) != want {
		t.Errorf("MarshalJSON() = %s, want %s", data, want)
	}
}

func TestText(t *testing.T) {
	r := New()
	r.SetString("a", "1")
	r.SetInt("b", 2)

	want := "a=1 b=2"
	if got := r.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}
