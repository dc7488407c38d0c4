package eq

import (
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// maxDesignRatio keeps design frequencies below Nyquist, where the
// bilinear designs are undefined.
const maxDesignRatio = 0.49

// CutCoefficients holds a cut filter cascade. Sections past Active are
// identity and must be bypassed by the chain.
type CutCoefficients struct {
	Sections [NumSlopes]biquad.Coefficients
	Active   int
}

// ChainCoefficients is the full coefficient set of one MonoChain.
type ChainCoefficients struct {
	LowCut  CutCoefficients
	Peak    biquad.Coefficients
	HighCut CutCoefficients
}

// Designer computes chain coefficients from settings. Implementations must
// be pure and must not allocate; the audio thread calls Design.
type Designer interface {
	Design(s Settings, sampleRate float64) ChainCoefficients
}

// DesignerFunc adapts a function to the Designer interface.
type DesignerFunc func(s Settings, sampleRate float64) ChainCoefficients

// Design calls f.
func (f DesignerFunc) Design(s Settings, sampleRate float64) ChainCoefficients {
	return f(s, sampleRate)
}

// ButterworthDesigner is the default Designer: Butterworth cut cascades
// around an RBJ peaking bell.
type ButterworthDesigner struct{}

// Design implements Designer.
func (ButterworthDesigner) Design(s Settings, sampleRate float64) ChainCoefficients {
	return ChainCoefficients{
		LowCut:  MakeLowCutFilter(s, sampleRate),
		Peak:    MakePeakFilter(s, sampleRate),
		HighCut: MakeHighCutFilter(s, sampleRate),
	}
}

// MakePeakFilter designs the bell section for s.PeakFreq, s.PeakGainDB and
// s.PeakQuality.
func MakePeakFilter(s Settings, sampleRate float64) biquad.Coefficients {
	s = s.Clamped()

	return design.Peak(designFrequency(s.PeakFreq, sampleRate), s.PeakGainDB, s.PeakQuality, sampleRate)
}

// MakeLowCutFilter designs a Butterworth high-pass of order
// s.LowCutSlope.Order() at s.LowCutFreq.
func MakeLowCutFilter(s Settings, sampleRate float64) CutCoefficients {
	s = s.Clamped()

	return makeCut(true, s.LowCutFreq, s.LowCutSlope, sampleRate)
}

// MakeHighCutFilter designs a Butterworth low-pass of order
// s.HighCutSlope.Order() at s.HighCutFreq.
func MakeHighCutFilter(s Settings, sampleRate float64) CutCoefficients {
	s = s.Clamped()

	return makeCut(false, s.HighCutFreq, s.HighCutSlope, sampleRate)
}

func makeCut(highpass bool, freq float64, slope Slope, sampleRate float64) CutCoefficients {
	var cc CutCoefficients

	freq = designFrequency(freq, sampleRate)
	if highpass {
		cc.Active = design.ButterworthHPInto(cc.Sections[:], freq, slope.Order(), sampleRate)
	} else {
		cc.Active = design.ButterworthLPInto(cc.Sections[:], freq, slope.Order(), sampleRate)
	}

	for i := cc.Active; i < len(cc.Sections); i++ {
		cc.Sections[i] = biquad.Passthrough
	}

	return cc
}

func designFrequency(freq, sampleRate float64) float64 {
	return min(freq, maxDesignRatio*sampleRate)
}
