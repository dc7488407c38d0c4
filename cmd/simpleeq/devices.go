package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-eq/internal/host"
)

type devicesCmd struct{}

func (devicesCmd) Run(log *logrus.Entry) error {
	if err := host.Initialize(); err != nil {
		return fmt.Errorf("portaudio: %w", err)
	}
	defer host.Terminate()

	devices, err := host.Devices()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Host API\tDevice\tIn\tOut\tRate [Hz]\tDefault\n")
	fmt.Fprintf(tw, "--------\t------\t--\t---\t---------\t-------\n")
	for _, d := range devices {
		def := ""
		switch {
		case d.IsDefaultInput && d.IsDefaultOutput:
			def = "in/out"
		case d.IsDefaultInput:
			def = "in"
		case d.IsDefaultOutput:
			def = "out"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.0f\t%s\n", d.HostAPI, d.Name, d.MaxInput, d.MaxOutput, d.DefaultSampleHz, def)
	}

	log.WithField("devices", len(devices)).Debug("listed audio devices")

	return tw.Flush()
}
