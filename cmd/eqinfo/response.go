package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/signal"
	"github.com/cwbudde/algo-eq/dsp/spectrum"
	"github.com/cwbudde/algo-eq/eq"
)

type responseCmd struct {
	settingsFlags `embed:""`

	Points  int  `default:"31" help:"Number of log-spaced frequencies between 20 Hz and 20 kHz."`
	Measure bool `default:"true" negatable:"" help:"Measure each frequency by filtering a sine."`
}

func (c *responseCmd) Run() error {
	s, err := c.settings()
	if err != nil {
		return err
	}
	if c.Points < 2 {
		return fmt.Errorf("points must be >= 2: %d", c.Points)
	}
	return printResponse(os.Stdout, s, c.SampleRate, responseFrequencies(c.Points), c.Measure)
}

func responseFrequencies(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = core.MapToLog10(float64(i)/float64(n-1), eq.MinFrequency, eq.MaxFrequency)
	}
	return out
}

// stageChain returns a chain with only the given stage active.
func stageChain(s eq.Settings, cc eq.ChainCoefficients, keep eq.Position) *eq.MonoChain {
	c := eq.NewMonoChain()
	c.Update(cc, s)
	for _, p := range []eq.Position{eq.LowCut, eq.Peak, eq.HighCut} {
		if p != keep {
			c.SetBypassed(p, true)
		}
	}
	return c
}

// measureGain filters a sine at freq through chain and returns the gain in
// dB, comparing Goertzel amplitudes of input and output after the
// filters have settled.
func measureGain(chain *eq.MonoChain, freq, sampleRate float64) (float64, error) {
	n := int(sampleRate / 2)
	gen := signal.NewGenerator(core.WithSampleRate(sampleRate))

	in, err := gen.Sine(freq, 0.5, n)
	if err != nil {
		return 0, err
	}
	out := append([]float64(nil), in...)

	chain.Reset()
	chain.Process(out)

	settled := n / 2
	gain, err := spectrum.ToneGain(in[settled:], out[settled:], freq, sampleRate)
	if err != nil {
		return 0, err
	}

	return core.GainToDecibels(gain, core.DefaultMinusInfinityDB), nil
}

func printResponse(w io.Writer, s eq.Settings, sampleRate float64, freqs []float64, measure bool) error {
	cc := eq.ButterworthDesigner{}.Design(s, sampleRate)

	full := eq.NewMonoChain()
	full.Update(cc, s)
	stages := []*eq.MonoChain{
		stageChain(s, cc, eq.LowCut),
		stageChain(s, cc, eq.Peak),
		stageChain(s, cc, eq.HighCut),
	}

	if _, err := fmt.Fprintf(w, "%s at %.0f Hz\n\n", describe(s), sampleRate); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := "Freq [Hz]\tLow-cut [dB]\tPeak [dB]\tHigh-cut [dB]\tTotal [dB]\t"
	if measure {
		header += "Measured [dB]\t"
	}
	fmt.Fprintln(tw, header)

	db := func(c *eq.MonoChain, f float64) float64 {
		return core.GainToDecibels(c.MagnitudeForFrequency(f, sampleRate), core.DefaultMinusInfinityDB)
	}

	for _, f := range freqs {
		fmt.Fprintf(tw, "%.1f\t%.2f\t%.2f\t%.2f\t%.2f\t", f, db(stages[0], f), db(stages[1], f), db(stages[2], f), db(full, f))
		if measure {
			m, err := measureGain(full, f, sampleRate)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%.2f\t", m)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
