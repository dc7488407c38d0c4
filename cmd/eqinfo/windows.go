package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/window"
)

type windowsCmd struct {
	Size     int      `default:"2048" help:"Window length in samples."`
	Periodic bool     `default:"true" negatable:"" help:"Use the periodic (FFT) form."`
	Names    []string `arg:"" optional:"" help:"Window names; all when omitted."`
}

func (c *windowsCmd) Run() error {
	if c.Size < 2 {
		return fmt.Errorf("size must be >= 2: %d", c.Size)
	}

	types := window.Types()
	if len(c.Names) > 0 {
		types = types[:0:0]
		for _, name := range c.Names {
			t, err := window.ParseType(name)
			if err != nil {
				return err
			}
			types = append(types, t)
		}
	}

	var opts []window.Option
	if c.Periodic {
		opts = append(opts, window.WithPeriodic())
	}

	return printWindows(os.Stdout, types, c.Size, opts...)
}

func printWindows(w io.Writer, types []window.Type, size int, opts ...window.Option) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tBW 3dB [bins]\tSidelobe [dB]\t1st Min [bins]\tScallop [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t-------------\t-------------\t--------------\t------------\n")

	for _, t := range types {
		a := window.Analyze(window.Generate(t, size, opts...))

		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\t%.2f\t%.4f\t%.4f\n",
			t, size, a.CoherentGain, a.ENBW, a.Bandwidth3dB, a.HighestSidelobedB, a.FirstMinimumBins, a.ScallopLossdB)
	}

	return tw.Flush()
}
