package core

import "math"

const defaultEpsilon = 1e-12

// DefaultMinusInfinityDB is the floor used when converting silent or
// non-finite gains to decibels.
const DefaultMinusInfinityDB = -100.0

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Finite returns x, or fallback when x is NaN or ±Inf.
func Finite(x, fallback float64) float64 {
	if IsFinite(x) {
		return x
	}

	return fallback
}

// DecibelsToGain converts dB to linear amplitude. Values at or below
// floorDB map to exactly 0.
func DecibelsToGain(db, floorDB float64) float64 {
	if db <= floorDB {
		return 0
	}

	return math.Pow(10, db/20)
}

// GainToDecibels converts linear amplitude to dB, never returning less
// than floorDB. Zero, negative and non-finite gains yield floorDB.
func GainToDecibels(gain, floorDB float64) float64 {
	if !(gain > 0) || math.IsInf(gain, 0) {
		return floorDB
	}

	return math.Max(floorDB, 20*math.Log10(gain))
}
