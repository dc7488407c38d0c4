package window

import "math"

// Analysis holds spectral properties measured from a window's coefficients.
// Frequencies are expressed in FFT bins of the window length.
type Analysis struct {
	CoherentGain float64
	// AmplitudeCorrection is 1/CoherentGain, the factor that makes a
	// bin-centred sine of amplitude A read A after windowing.
	AmplitudeCorrection float64
	ENBW                float64
	Bandwidth3dB        float64
	HighestSidelobedB   float64
	FirstMinimumBins    float64
	ScallopLossdB       float64
}

// scanStep is the coarse search resolution in bins.
const scanStep = 0.125

// Analyze measures the window by evaluating its DTFT directly. It is meant
// for reports and tests, not for the audio path.
func Analyze(coeffs []float64) Analysis {
	if len(coeffs) == 0 {
		return Analysis{}
	}

	k := kernel{coeffs: coeffs, n: float64(len(coeffs))}

	dc := k.power(0)
	if dc == 0 {
		return Analysis{}
	}

	var sum, sumSq float64
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	firstMin := k.firstMinimum(dc)

	return Analysis{
		CoherentGain:        sum / k.n,
		AmplitudeCorrection: k.n / sum,
		ENBW:                k.n * sumSq / (sum * sum),
		Bandwidth3dB:        2 * k.halfPowerBins(dc),
		HighestSidelobedB:   powerDB(k.peakAbove(firstMin), dc),
		FirstMinimumBins:    firstMin,
		ScallopLossdB:       powerDB(k.power(0.5), dc),
	}
}

type kernel struct {
	coeffs []float64
	n      float64
}

// power returns |W(f)|^2 at f bins from DC.
func (k kernel) power(bins float64) float64 {
	w := 2 * math.Pi * bins / k.n

	var re, im float64
	for i, c := range k.coeffs {
		s, co := math.Sincos(w * float64(i))
		re += c * co
		im -= c * s
	}

	return re*re + im*im
}

func (k kernel) nyquist() float64 { return k.n / 2 }

// halfPowerBins bisects for the one-sided -3 dB point.
func (k kernel) halfPowerBins(dc float64) float64 {
	lo, hi := 0.0, k.nyquist()
	for range 64 {
		mid := 0.5 * (lo + hi)
		if k.power(mid) > 0.5*dc {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

// firstMinimum walks out of the main lobe until the response turns upward.
// The walk only accepts a turn once the response has fallen 10 dB, so wide
// flat-top main lobes do not produce an early stop.
func (k kernel) firstMinimum(dc float64) float64 {
	prev := dc
	at := scanStep
	for f := scanStep; f < k.nyquist(); f += scanStep {
		p := k.power(f)
		if prev < 0.1*dc && p > prev {
			at = f - scanStep
			break
		}
		prev = p
	}

	return k.refine(at, func(p float64) float64 { return p })
}

// peakAbove returns the largest power between from and Nyquist.
func (k kernel) peakAbove(from float64) float64 {
	best, at := 0.0, from
	for f := from; f < k.nyquist(); f += scanStep {
		if p := k.power(f); p > best {
			best, at = p, f
		}
	}

	peak := k.power(k.refine(at, func(p float64) float64 { return -p }))

	return math.Max(best, peak)
}

// refine runs a golden-section search for the minimum of cost(power(f))
// within one coarse step either side of f.
func (k kernel) refine(f float64, cost func(float64) float64) float64 {
	const invPhi = 0.6180339887498949

	a := math.Max(0, f-scanStep)
	b := math.Min(k.nyquist(), f+scanStep)

	for range 64 {
		c := b - invPhi*(b-a)
		d := a + invPhi*(b-a)
		if cost(k.power(c)) < cost(k.power(d)) {
			b = d
		} else {
			a = c
		}
	}

	return 0.5 * (a + b)
}

func powerDB(p, ref float64) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(p/ref)
}
