package params

import "math"

// Range describes the legal values of a parameter.
//
// Interval snaps values to start + k*Interval when > 0. Skew shapes the
// mapping to the normalised [0, 1] domain: a skew below 1 spends more of the
// normalised range on the low end, which suits frequencies.
type Range struct {
	Min, Max float64
	Interval float64
	Skew     float64
}

// Linear returns an unskewed range.
func Linear(lo, hi, interval float64) Range {
	return Range{Min: lo, Max: hi, Interval: interval, Skew: 1}
}

// Skewed returns a range with the given skew factor.
func Skewed(lo, hi, interval, skew float64) Range {
	return Range{Min: lo, Max: hi, Interval: interval, Skew: skew}
}

func (r Range) valid() bool {
	return r.Max > r.Min && r.Interval >= 0 && r.skew() > 0 &&
		!math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0)
}

func (r Range) skew() float64 {
	if r.Skew == 0 {
		return 1
	}
	return r.Skew
}

// Clamp limits v to [Min, Max]. NaN maps to Min.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	return min(max(v, r.Min), r.Max)
}

// Snap clamps v and rounds it to the nearest interval step.
func (r Range) Snap(v float64) float64 {
	v = r.Clamp(v)
	if r.Interval > 0 {
		v = r.Min + r.Interval*math.Floor((v-r.Min)/r.Interval+0.5)
	}
	return r.Clamp(v)
}

// ToNormalized maps v to [0, 1].
func (r Range) ToNormalized(v float64) float64 {
	p := (r.Clamp(v) - r.Min) / (r.Max - r.Min)
	if s := r.skew(); s != 1 && p > 0 {
		p = math.Pow(p, s)
	}
	return p
}

// FromNormalized maps p in [0, 1] back to the range, without snapping.
func (r Range) FromNormalized(p float64) float64 {
	if math.IsNaN(p) {
		p = 0
	}
	p = min(max(p, 0), 1)
	if s := r.skew(); s != 1 && p > 0 {
		p = math.Exp(math.Log(p) / s)
	}
	return r.Min + (r.Max-r.Min)*p
}

// SkewForCentre returns the skew that maps centre to the normalised value 0.5.
func SkewForCentre(lo, hi, centre float64) float64 {
	return math.Log(0.5) / math.Log((centre-lo)/(hi-lo))
}
