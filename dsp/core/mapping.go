package core

import "math"

// Map linearly maps value from [srcMin, srcMax] to [dstMin, dstMax].
// The result is not clamped.
func Map(value, srcMin, srcMax, dstMin, dstMax float64) float64 {
	if srcMax == srcMin {
		return dstMin
	}

	return dstMin + (dstMax-dstMin)*(value-srcMin)/(srcMax-srcMin)
}

// MapToLog10 maps a proportion in [0, 1] onto the logarithmic range
// [min, max]. Both bounds must be > 0.
func MapToLog10(proportion, min, max float64) float64 {
	return math.Exp(proportion*(math.Log(max)-math.Log(min)) + math.Log(min))
}

// MapFromLog10 is the inverse of MapToLog10: it returns the proportion of
// value within the logarithmic range [min, max].
func MapFromLog10(value, min, max float64) float64 {
	return (math.Log10(value) - math.Log10(min)) / (math.Log10(max) - math.Log10(min))
}
