package design

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// ButterworthLPInto writes a lowpass Butterworth cascade of the given even
// order into dst and returns the number of sections written (order/2).
// It returns 0 and leaves dst untouched when order is not a positive even
// number or dst is too short. Zero-alloc.
func ButterworthLPInto(dst []biquad.Coefficients, freq float64, order int, sampleRate float64) int {
	return butterworthInto(dst, freq, order, sampleRate, Lowpass)
}

// ButterworthHPInto is the highpass counterpart of ButterworthLPInto.
func ButterworthHPInto(dst []biquad.Coefficients, freq float64, order int, sampleRate float64) int {
	return butterworthInto(dst, freq, order, sampleRate, Highpass)
}

func butterworthInto(
	dst []biquad.Coefficients,
	freq float64,
	order int,
	sampleRate float64,
	section func(freq, q, sampleRate float64) biquad.Coefficients,
) int {
	n := butterworthSections(order)
	if n == 0 || len(dst) < n {
		return 0
	}

	// Lowest Q first keeps intermediate peaks small.
	for i := range n {
		dst[i] = section(freq, butterworthQ(order, n-1-i), sampleRate)
	}

	return n
}

// butterworthSections returns order/2 for positive even orders and 0 otherwise.
func butterworthSections(order int) int {
	if order <= 0 || order%2 != 0 {
		return 0
	}

	return order / 2
}

// butterworthQ returns the quality factor of pole pair index (0..order/2-1)
// of a Butterworth filter of the given order.
func butterworthQ(order, index int) float64 {
	if order <= 0 {
		return defaultQ
	}

	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return defaultQ
	}

	return 1 / (2 * s)
}
