package editor

import (
	"github.com/cwbudde/algo-eq/analyzer"
	"github.com/cwbudde/algo-eq/dsp/core"
)

// MagnitudeResponder answers linear gain queries. *eq.MonoChain implements it.
type MagnitudeResponder interface {
	MagnitudeForFrequency(freqHz, sampleRate float64) float64
}

// FrequencyResponseSource exposes the latest analytic response curve.
type FrequencyResponseSource interface {
	ResponseCurve() analyzer.Path
}

// SpectrumPathSource exposes the latest measured spectrum of a channel.
type SpectrumPathSource interface {
	SpectrumPath(ch analyzer.Channel) analyzer.Path
}

// BuildResponseCurve samples chain once per horizontal pixel of bounds.
//
// Pixel i samples mapToLog10(i/width, 20, 20000) Hz; the gain in dB is
// mapped from [-24, 24] onto [bottom, top] and clamped to bounds.
func BuildResponseCurve(chain MagnitudeResponder, sampleRate float64, bounds analyzer.Rect) analyzer.Path {
	w := int(bounds.Width)
	if w <= 0 {
		return nil
	}

	path := make(analyzer.Path, w)
	top, bottom := bounds.Y, bounds.Bottom()

	for i := range path {
		freq := core.MapToLog10(float64(i)/float64(w), MinFrequency, MaxFrequency)
		db := core.GainToDecibels(chain.MagnitudeForFrequency(freq, sampleRate), core.DefaultMinusInfinityDB)
		y := core.Clamp(core.Map(db, MinGainDB, MaxGainDB, bottom, top), top, bottom)
		path[i] = analyzer.Point{X: bounds.X + float64(i), Y: y}
	}

	return path
}
