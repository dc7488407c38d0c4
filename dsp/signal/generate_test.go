package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/core"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
}

func TestSineErrors(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Sine(1000, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}

	g = NewGenerator(core.WithSampleRate(-1))
	if _, err := g.Sine(1000, 1, 8); err != nil {
		// WithSampleRate ignores invalid values and keeps the default.
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSourceNoiseRepeatsAcrossGenerators(t *testing.T) {
	fill := func() []float64 {
		src, err := NewGenerator().NewSource(440, 0, WithNoise(1))
		if err != nil {
			t.Fatalf("NewSource() error = %v", err)
		}
		buf := make([]float64, 16)
		src.Fill(buf)
		return buf
	}

	a, b := fill(), fill()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, a[i], b[i])
		}
		if math.Abs(a[i]) > 1 {
			t.Fatalf("noise out of range at %d: %v", i, a[i])
		}
	}
}
