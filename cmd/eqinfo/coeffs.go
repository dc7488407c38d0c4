package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/eq"
)

type coeffsCmd struct {
	settingsFlags `embed:""`
}

func (c *coeffsCmd) Run() error {
	s, err := c.settings()
	if err != nil {
		return err
	}
	return printCoefficients(os.Stdout, s, c.SampleRate)
}

func printCoefficients(w io.Writer, s eq.Settings, sampleRate float64) error {
	cc := eq.ButterworthDesigner{}.Design(s, sampleRate)

	if _, err := fmt.Fprintf(w, "%s at %.0f Hz\n\n", describe(s), sampleRate); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Stage\tSection\tB0\tB1\tB2\tA1\tA2\tPole radius\tStable\n")
	fmt.Fprintf(tw, "-----\t-------\t--\t--\t--\t--\t--\t-----------\t------\n")

	row := func(stage eq.Position, i int, c biquad.Coefficients) {
		fmt.Fprintf(tw, "%v\t%d\t%.9f\t%.9f\t%.9f\t%.9f\t%.9f\t%.6f\t%t\n",
			stage, i, c.B0, c.B1, c.B2, c.A1, c.A2, c.MaxPoleRadius(), c.IsStable())
	}

	for i := range cc.LowCut.Active {
		row(eq.LowCut, i, cc.LowCut.Sections[i])
	}
	row(eq.Peak, 0, cc.Peak)
	for i := range cc.HighCut.Active {
		row(eq.HighCut, i, cc.HighCut.Sections[i])
	}

	return tw.Flush()
}
