package eq

import "github.com/cwbudde/algo-eq/params"

// Parameter ids.
const (
	IDLowCutFreq      = "LowCut Freq"
	IDHighCutFreq     = "HighCut Freq"
	IDPeakFreq        = "Peak Freq"
	IDPeakGain        = "Peak Gain"
	IDPeakQuality     = "Peak Quality"
	IDLowCutSlope     = "LowCut Slope"
	IDHighCutSlope    = "HighCut Slope"
	IDLowCutBypassed  = "LowCut Bypassed"
	IDPeakBypassed    = "Peak Bypassed"
	IDHighCutBypassed = "HighCut Bypassed"
	IDAnalyzerEnabled = "Analyzer Enabled"
)

const (
	pLowCutFreq = iota
	pHighCutFreq
	pPeakFreq
	pPeakGain
	pPeakQuality
	pLowCutSlope
	pHighCutSlope
	pLowCutBypassed
	pPeakBypassed
	pHighCutBypassed
	pAnalyzerEnabled
	numParams
)

var paramIDs = [numParams]string{
	IDLowCutFreq,
	IDHighCutFreq,
	IDPeakFreq,
	IDPeakGain,
	IDPeakQuality,
	IDLowCutSlope,
	IDHighCutSlope,
	IDLowCutBypassed,
	IDPeakBypassed,
	IDHighCutBypassed,
	IDAnalyzerEnabled,
}

// frequencySkew puts 1 kHz near the middle of a rotary control.
const frequencySkew = 0.25

// ParameterLayout returns the equalizer parameter definitions in display order.
func ParameterLayout() []params.Definition {
	freq := params.Skewed(MinFrequency, MaxFrequency, 1, frequencySkew)
	d := DefaultSettings()

	slopes := make([]string, NumSlopes)
	for i, s := range Slopes() {
		slopes[i] = s.String()
	}

	return []params.Definition{
		params.Float(IDLowCutFreq, IDLowCutFreq, freq, d.LowCutFreq, "Hz"),
		params.Float(IDHighCutFreq, IDHighCutFreq, freq, d.HighCutFreq, "Hz"),
		params.Float(IDPeakFreq, IDPeakFreq, freq, d.PeakFreq, "Hz"),
		params.Float(IDPeakGain, IDPeakGain, params.Linear(-MaxGainDB, MaxGainDB, 0.5), d.PeakGainDB, "dB"),
		params.Float(IDPeakQuality, IDPeakQuality, params.Linear(MinQuality, MaxQuality, 0.05), d.PeakQuality, ""),
		params.Choice(IDLowCutSlope, IDLowCutSlope, slopes, int(d.LowCutSlope)),
		params.Choice(IDHighCutSlope, IDHighCutSlope, slopes, int(d.HighCutSlope)),
		params.Bool(IDLowCutBypassed, IDLowCutBypassed, d.LowCutBypassed),
		params.Bool(IDPeakBypassed, IDPeakBypassed, d.PeakBypassed),
		params.Bool(IDHighCutBypassed, IDHighCutBypassed, d.HighCutBypassed),
		params.Bool(IDAnalyzerEnabled, IDAnalyzerEnabled, d.AnalyzerEnabled),
	}
}

// NewParameterStore returns a store holding ParameterLayout at defaults.
func NewParameterStore() *params.Store {
	s, err := params.NewStore(ParameterLayout()...)
	if err != nil {
		panic("eq: invalid parameter layout: " + err.Error())
	}

	return s
}
