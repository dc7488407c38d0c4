package spectrum

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroReference is returned by ToneGain when the reference signal has
// no energy at the target frequency.
var ErrZeroReference = errors.New("goertzel: reference tone has zero amplitude")

// Goertzel evaluates a single DFT term over all samples fed to it since the
// last Reset. It is used to read the level of a test tone at the output of
// a filter without running a full transform.
//
// Leakage is zero only when the processed samples hold a whole number of
// cycles of the target frequency.
type Goertzel struct {
	coeff  float64
	s0, s1 float64
	n      int
}

// NewGoertzel returns a detector for frequency, which must lie in
// [0, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel: invalid sample rate %v", sampleRate)
	}

	if !(frequency >= 0 && frequency <= sampleRate/2) {
		return nil, fmt.Errorf("goertzel: frequency %v outside [0, %v]", frequency, sampleRate/2)
	}

	return &Goertzel{coeff: 2 * math.Cos(2*math.Pi*frequency/sampleRate)}, nil
}

// Reset clears the accumulated state.
func (g *Goertzel) Reset() {
	g.s0, g.s1, g.n = 0, 0, 0
}

// ProcessSample feeds one sample.
func (g *Goertzel) ProcessSample(x float64) {
	g.s0, g.s1 = x+g.coeff*g.s0-g.s1, g.s0
	g.n++
}

// ProcessBlock feeds a block of samples.
func (g *Goertzel) ProcessBlock(in []float64) {
	s0, s1, c := g.s0, g.s1, g.coeff
	for _, x := range in {
		s0, s1 = x+c*s0-s1, s0
	}

	g.s0, g.s1 = s0, s1
	g.n += len(in)
}

// Power returns |X[k]|^2 for the samples processed so far.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns |X[k]|.
func (g *Goertzel) Magnitude() float64 {
	return math.Sqrt(math.Max(g.Power(), 0))
}

// Amplitude estimates the peak amplitude of a sinusoid at the target
// frequency. The estimate is exact over a whole number of cycles.
func (g *Goertzel) Amplitude() float64 {
	if g.n == 0 {
		return 0
	}

	return 2 * g.Magnitude() / float64(g.n)
}

// Count returns the number of samples processed since the last Reset.
func (g *Goertzel) Count() int { return g.n }

// ToneGain returns the linear gain a system applied to a tone at frequency,
// given equally long reference and output recordings.
func ToneGain(reference, output []float64, frequency, sampleRate float64) (float64, error) {
	if len(reference) != len(output) {
		return 0, fmt.Errorf("goertzel: length mismatch %d != %d", len(reference), len(output))
	}

	in, err := NewGoertzel(frequency, sampleRate)
	if err != nil {
		return 0, err
	}
	out := *in

	in.ProcessBlock(reference)
	out.ProcessBlock(output)

	ref := in.Amplitude()
	if ref == 0 {
		return 0, ErrZeroReference
	}

	return out.Amplitude() / ref, nil
}
