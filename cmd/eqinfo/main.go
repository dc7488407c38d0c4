// Command eqinfo prints the filters the equalizer designs for a set of
// parameters: biquad coefficients, the analytic magnitude response next
// to a measured one, the analyzer windows and the CPU report.
//
// Usage:
//
//	eqinfo [command] [flags]
//
// Examples:
//
//	eqinfo coeffs --low-cut 80 --low-cut-slope 48
//	eqinfo response --peak-freq 1000 --peak-gain 6 --peak-q 2
//	eqinfo response --params preset.json
//	eqinfo windows --size 2048
//	eqinfo cpu
package main

import (
	"github.com/alecthomas/kong"
)

// CLI is the command line.
type CLI struct {
	Coeffs   coeffsCmd   `cmd:"" default:"withargs" help:"Print biquad coefficients (default)."`
	Response responseCmd `cmd:"" help:"Print analytic and measured magnitude response."`
	Windows  windowsCmd  `cmd:"" help:"Print spectral properties of the analyzer windows."`
	CPU      cpuCmd      `cmd:"" name:"cpu" help:"Print SIMD features of this processor."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("eqinfo"),
		kong.Description("Inspect the equalizer's filter designs."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
