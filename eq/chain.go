package eq

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// Position names a stage of the MonoChain.
type Position int

const (
	LowCut Position = iota
	Peak
	HighCut
	numPositions
)

func (p Position) String() string {
	switch p {
	case LowCut:
		return "LowCut"
	case Peak:
		return "Peak"
	case HighCut:
		return "HighCut"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// MonoChain is one channel of the equalizer: a 4-section low cut, a single
// peak section and a 4-section high cut, processed in that order.
//
// Each position can be bypassed as a whole; within a cut position only the
// sections selected by the slope are active. Bypassed parts pass audio
// unchanged and contribute unity gain to MagnitudeForFrequency.
type MonoChain struct {
	stages   [numPositions]*biquad.Chain
	bypassed [numPositions]bool
}

// NewMonoChain returns a chain whose sections are all identity.
func NewMonoChain() *MonoChain {
	m := &MonoChain{}
	m.stages[LowCut] = biquad.NewPassthroughChain(NumSlopes)
	m.stages[Peak] = biquad.NewPassthroughChain(1)
	m.stages[HighCut] = biquad.NewPassthroughChain(NumSlopes)

	return m
}

// Update swaps in cc and applies the bypass flags of s. Section delay
// lines are kept.
func (m *MonoChain) Update(cc ChainCoefficients, s Settings) {
	updateCut(m.stages[LowCut], cc.LowCut)
	m.stages[Peak].SetSection(0, cc.Peak)
	updateCut(m.stages[HighCut], cc.HighCut)

	m.bypassed[LowCut] = s.LowCutBypassed
	m.bypassed[Peak] = s.PeakBypassed
	m.bypassed[HighCut] = s.HighCutBypassed
}

func updateCut(c *biquad.Chain, cc CutCoefficients) {
	for i := range c.NumSections() {
		if i < cc.Active {
			c.SetSection(i, cc.Sections[i])
			c.SetBypassed(i, false)
			continue
		}

		c.SetSection(i, biquad.Passthrough)
		c.SetBypassed(i, true)
	}
}

// Process filters buf in place through every active stage.
func (m *MonoChain) Process(buf []float64) {
	for p, c := range m.stages {
		if m.bypassed[p] {
			continue
		}
		c.ProcessBlock(buf)
	}
}

// Reset clears the state of every section.
func (m *MonoChain) Reset() {
	for _, c := range m.stages {
		c.Reset()
	}
}

// SetBypassed bypasses or enables a whole position.
func (m *MonoChain) SetBypassed(p Position, bypassed bool) {
	m.bypassed[p] = bypassed
}

// IsBypassed reports whether position p is bypassed.
func (m *MonoChain) IsBypassed(p Position) bool { return m.bypassed[p] }

// Stage exposes the cascade at position p.
func (m *MonoChain) Stage(p Position) *biquad.Chain { return m.stages[p] }

// ActiveSections returns how many sections of position p are processed,
// counting a bypassed position as zero.
func (m *MonoChain) ActiveSections(p Position) int {
	if m.bypassed[p] {
		return 0
	}

	return m.stages[p].NumActive()
}

// MagnitudeForFrequency returns the linear gain of every active section at
// freqHz.
func (m *MonoChain) MagnitudeForFrequency(freqHz, sampleRate float64) float64 {
	mag := 1.0
	for p, c := range m.stages {
		if m.bypassed[p] {
			continue
		}
		mag *= c.MagnitudeForFrequency(freqHz, sampleRate)
	}

	return mag
}
