// Command simpleeq runs the three-band equalizer with its spectrum
// analyzer and serves the editor to a browser.
//
// Usage:
//
//	simpleeq [flags] run [flags]
//	simpleeq devices
//
// Examples:
//
//	simpleeq run --host offline --tone 440 --sweep 8
//	simpleeq run --host portaudio --input "USB" --listen :8080
//	simpleeq --config eq.json run --params preset.json --watch
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

var version = "0.1.0"

// CLI is the command line. Flags can also be given in a JSON config file.
type CLI struct {
	Config   kong.ConfigFlag  `short:"c" help:"JSON config file with flag defaults."`
	LogLevel string           `default:"info" enum:"trace,debug,info,warn,error" help:"Log level (${enum})."`
	LogJSON  bool             `help:"Log as JSON."`
	Version  kong.VersionFlag `short:"v" help:"Show version information."`

	Run     runCmd     `cmd:"" default:"withargs" help:"Run the equalizer (default)."`
	Devices devicesCmd `cmd:"" help:"List audio devices."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("simpleeq"),
		kong.Description("Three-band parametric equalizer with a live spectrum analyzer."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, "~/.config/simpleeq.json"),
		kong.Vars{
			"version": version,
		},
	)

	log, err := newLogger(cli.LogLevel, cli.LogJSON)
	ctx.FatalIfErrorf(err)

	if err := ctx.Run(log); err != nil {
		log.WithError(err).Error("simpleeq failed")
		os.Exit(1)
	}
}

func newLogger(level string, asJSON bool) (*logrus.Entry, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetLevel(lvl)
	if asJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logrus.NewEntry(l).WithField("app", "simpleeq"), nil
}
