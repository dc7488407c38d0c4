package spectrum

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// SplitComplex copies the real and imaginary parts of in into re and im.
// All three slices must have the same length. Zero-alloc.
func SplitComplex(re, im []float64, in []complex128) {
	_ = re[len(in)-1]
	_ = im[len(in)-1]

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
//
// This is the zero-allocation fast path for callers that already have real and
// imaginary parts in separate slices. All three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// Scale multiplies every value in buf by gain in place.
func Scale(buf []float64, gain float64) {
	for i := range buf {
		buf[i] *= gain
	}
}

// ToDecibels converts linear magnitudes in buf to dB in place.
//
// Values at or below the floor, as well as NaN and ±Inf, map to floorDB.
func ToDecibels(buf []float64, floorDB float64) {
	for i, v := range buf {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			buf[i] = floorDB
			continue
		}

		buf[i] = max(floorDB, 20*math.Log10(v))
	}
}
