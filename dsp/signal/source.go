package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Source renders a phase-continuous test signal block by block: a sine tone
// that optionally glides exponentially between two frequencies, plus white
// noise. It is meant for driving the processor without an audio device.
//
// Fill does not allocate. A Source is not safe for concurrent use.
type Source struct {
	sampleRate float64
	amplitude  float64
	noise      float64

	startHz, endHz float64
	sweepSamples   int
	pos            int

	phase float64
	rng   *rand.Rand
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithNoise mixes white noise of the given peak amplitude into the tone.
func WithNoise(amplitude float64) SourceOption {
	return func(s *Source) {
		if amplitude >= 0 {
			s.noise = amplitude
		}
	}
}

// WithSweep makes the tone glide from startHz to endHz over seconds and
// then start over.
func WithSweep(endHz, seconds float64) SourceOption {
	return func(s *Source) {
		if endHz > 0 && seconds > 0 {
			s.endHz = endHz
			s.sweepSamples = int(seconds * s.sampleRate)
		}
	}
}

// NewSource returns a streaming source at freqHz using the generator's
// sample rate and noise seed.
func (g *Generator) NewSource(freqHz, amplitude float64, opts ...SourceOption) (*Source, error) {
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("source sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	if freqHz <= 0 || freqHz >= g.cfg.SampleRate/2 {
		return nil, fmt.Errorf("source frequency must be in (0, %f): %f", g.cfg.SampleRate/2, freqHz)
	}

	s := &Source{
		sampleRate: g.cfg.SampleRate,
		amplitude:  amplitude,
		startHz:    freqHz,
		endHz:      freqHz,
		rng:        rand.New(rand.NewSource(g.seed)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s, nil
}

// Frequency returns the instantaneous tone frequency.
func (s *Source) Frequency() float64 {
	if s.sweepSamples <= 0 || s.startHz == s.endHz {
		return s.startHz
	}

	t := float64(s.pos) / float64(s.sweepSamples)
	return s.startHz * math.Pow(s.endHz/s.startHz, t)
}

// Fill overwrites dst with the next len(dst) samples.
func (s *Source) Fill(dst []float64) {
	for i := range dst {
		f := s.Frequency()
		s.phase += 2 * math.Pi * f / s.sampleRate
		if s.phase >= 2*math.Pi {
			s.phase -= 2 * math.Pi
		}

		x := s.amplitude * math.Sin(s.phase)
		if s.noise > 0 {
			x += (s.rng.Float64()*2 - 1) * s.noise
		}
		dst[i] = x

		if s.sweepSamples > 0 {
			s.pos++
			if s.pos >= s.sweepSamples {
				s.pos = 0
			}
		}
	}
}
