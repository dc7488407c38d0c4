package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Block returns a multichannel block with independent copies of each
// channel, so tests can process it in place without touching the source.
func Block(channels ...[]float64) [][]float64 {
	out := make([][]float64, len(channels))
	for i, ch := range channels {
		out[i] = append([]float64(nil), ch...)
	}
	return out
}

// Blocks splits a channel into consecutive slices of at most size samples.
// The returned slices alias in.
func Blocks(in []float64, size int) [][]float64 {
	if size <= 0 {
		return nil
	}
	var out [][]float64
	for start := 0; start < len(in); start += size {
		out = append(out, in[start:min(start+size, len(in))])
	}
	return out
}

// RMS returns the root-mean-square level of data, or 0 for empty input.
func RMS(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(data)))
}

// PeakAbs returns the largest absolute sample value.
func PeakAbs(data []float64) float64 {
	peak := 0.0
	for _, v := range data {
		peak = max(peak, math.Abs(v))
	}
	return peak
}
