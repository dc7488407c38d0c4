package main

import (
	"fmt"

	"github.com/cwbudde/algo-eq/eq"
	"github.com/cwbudde/algo-eq/internal/paramfile"
)

type settingsFlags struct {
	SampleRate   float64 `default:"48000" help:"Sample rate in Hz."`
	LowCut       float64 `default:"20" help:"Low-cut frequency in Hz."`
	HighCut      float64 `default:"20000" help:"High-cut frequency in Hz."`
	PeakFreq     float64 `default:"750" help:"Peak frequency in Hz."`
	PeakGain     float64 `default:"0" help:"Peak gain in dB."`
	PeakQ        float64 `default:"1" name:"peak-q" help:"Peak quality."`
	LowCutSlope  int     `default:"12" enum:"12,24,36,48" help:"Low-cut slope in dB/oct (${enum})."`
	HighCutSlope int     `default:"12" enum:"12,24,36,48" help:"High-cut slope in dB/oct (${enum})."`
	Params       string  `type:"existingfile" help:"Parameter file applied over the flags."`
}

// settings routes the flags through a parameter store so they are
// snapped and clamped exactly as the running equalizer would.
func (f settingsFlags) settings() (eq.Settings, error) {
	if f.SampleRate <= 0 {
		return eq.Settings{}, fmt.Errorf("sample rate must be > 0: %v", f.SampleRate)
	}

	store := eq.NewParameterStore()
	values := []struct {
		id string
		v  float64
	}{
		{eq.IDLowCutFreq, f.LowCut},
		{eq.IDHighCutFreq, f.HighCut},
		{eq.IDPeakFreq, f.PeakFreq},
		{eq.IDPeakGain, f.PeakGain},
		{eq.IDPeakQuality, f.PeakQ},
		{eq.IDLowCutSlope, float64(f.LowCutSlope/12 - 1)},
		{eq.IDHighCutSlope, float64(f.HighCutSlope/12 - 1)},
	}
	for _, kv := range values {
		if err := store.Set(kv.id, kv.v); err != nil {
			return eq.Settings{}, err
		}
	}

	if f.Params != "" {
		if _, err := paramfile.Load(f.Params, store); err != nil {
			return eq.Settings{}, err
		}
	}

	return eq.SettingsFromStore(store), nil
}

func describe(s eq.Settings) string {
	return fmt.Sprintf("low-cut %.0f Hz %v, peak %.0f Hz %+.1f dB Q %.2f, high-cut %.0f Hz %v",
		s.LowCutFreq, s.LowCutSlope, s.PeakFreq, s.PeakGainDB, s.PeakQuality, s.HighCutFreq, s.HighCutSlope)
}
