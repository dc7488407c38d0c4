package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	ossignal "os/signal"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-eq/analyzer"
	"github.com/cwbudde/algo-eq/dsp/signal"
	"github.com/cwbudde/algo-eq/editor"
	"github.com/cwbudde/algo-eq/eq"
	"github.com/cwbudde/algo-eq/internal/cpu"
	"github.com/cwbudde/algo-eq/internal/host"
	"github.com/cwbudde/algo-eq/internal/paramfile"
	"github.com/cwbudde/algo-eq/internal/webui"
)

type runCmd struct {
	Host       string  `default:"offline" enum:"offline,portaudio" help:"Audio host (${enum})."`
	Input      string  `help:"PortAudio input device name (substring)."`
	Output     string  `help:"PortAudio output device name (substring)."`
	SampleRate float64 `default:"48000" help:"Sample rate in Hz. With portaudio, 0 uses the device default."`
	BlockSize  int     `default:"512" help:"Samples per processing block."`

	Tone      float64 `default:"1000" help:"Offline host: tone frequency in Hz."`
	Amplitude float64 `default:"0.25" help:"Offline host: tone amplitude."`
	Noise     float64 `default:"0.02" help:"Offline host: white noise amplitude."`
	Sweep     float64 `help:"Offline host: sweep the tone up to 20 kHz over this many seconds."`

	Listen   string  `default:"localhost:8080" help:"Address of the web editor."`
	Rate     int     `default:"60" help:"Display refresh rate in Hz."`
	FFTOrder int     `default:"11" enum:"11,12,13" help:"Analyzer FFT order (${enum})."`
	Width    float64 `default:"600" help:"Initial width of the response view."`
	Height   float64 `default:"250" help:"Initial height of the response view."`

	Params     string `type:"path" help:"JSON parameter file to load."`
	Watch      bool   `help:"Reload the parameter file when it changes."`
	SaveOnExit bool   `help:"Write the parameters back to --params on exit."`
}

func (r *runCmd) Run(log *logrus.Entry) error {
	ctx, stop := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return r.run(ctx, log)
}

func (r *runCmd) validate() error {
	if r.Watch && r.Params == "" {
		return errors.New("--watch needs --params")
	}
	if r.SaveOnExit && r.Params == "" {
		return errors.New("--save-on-exit needs --params")
	}
	if r.BlockSize <= 0 {
		return fmt.Errorf("block size must be > 0: %d", r.BlockSize)
	}
	return nil
}

func (r *runCmd) newHost(proc *eq.Processor, log *logrus.Entry) (host.Host, error) {
	switch r.Host {
	case "portaudio":
		return host.NewPortAudio(proc, host.PortAudioConfig{
			InputDevice:  r.Input,
			OutputDevice: r.Output,
			SampleRate:   r.SampleRate,
			BlockSize:    r.BlockSize,
		}, log)
	default:
		var srcOpts []signal.SourceOption
		if r.Noise > 0 {
			srcOpts = append(srcOpts, signal.WithNoise(r.Noise))
		}
		if r.Sweep > 0 {
			srcOpts = append(srcOpts, signal.WithSweep(eq.MaxFrequency, r.Sweep))
		}
		return host.NewOffline(proc, r.SampleRate, r.BlockSize,
			host.WithTone(r.Tone, r.Amplitude, srcOpts...),
			host.WithOfflineLogger(log))
	}
}

func (r *runCmd) run(ctx context.Context, log *logrus.Entry) error {
	if err := r.validate(); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"function": "run",
		"version":  version,
		"cpu":      cpu.Detect().String(),
		"host":     r.Host,
	}).Info("starting")

	store := eq.NewParameterStore()
	if r.Params != "" {
		n, err := paramfile.Load(r.Params, store)
		switch {
		case errors.Is(err, os.ErrNotExist) && (r.Watch || r.SaveOnExit):
			log.WithField("path", r.Params).Warn("parameter file does not exist yet")
		case err != nil:
			return err
		default:
			log.WithFields(logrus.Fields{"path": r.Params, "values": n}).Info("loaded parameters")
		}
	}

	proc, err := eq.NewProcessor(store)
	if err != nil {
		return err
	}

	h, err := r.newHost(proc, log.WithField("component", "host"))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	spawn := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil && !errors.Is(err, context.Canceled) {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
				cancel()
			}
		}()
	}

	spawn("host", func() error { return h.Start(ctx) })

	select {
	case <-h.Ready():
	case <-ctx.Done():
		wg.Wait()
		return errors.Join(errs...)
	}

	syncer, err := editor.NewSynchronizer(proc,
		editor.WithSize(r.Width, r.Height),
		editor.WithAnalyzerOptions(analyzer.WithOrder(analyzer.FFTOrder(r.FFTOrder))),
		editor.WithLogger(log.WithField("component", "editor")))
	if err != nil {
		cancel()
		wg.Wait()
		return err
	}
	defer syncer.Close()

	web := webui.NewServer(syncer, store, editor.DefaultStyle(), log.WithField("component", "webui"))

	spawn("editor", func() error { return syncer.Run(ctx, r.Rate) })
	spawn("webui", func() error { return web.ListenAndServe(ctx, r.Listen) })

	if r.Watch {
		w, err := paramfile.NewWatcher(r.Params, store, paramfile.WithLogger(log.WithField("component", "paramfile")))
		if err != nil {
			cancel()
			wg.Wait()
			return err
		}
		spawn("paramfile", func() error { return w.Run(ctx) })
	}

	wg.Wait()

	if r.SaveOnExit {
		if err := paramfile.Save(r.Params, store); err != nil {
			errs = append(errs, err)
		} else {
			log.WithField("path", r.Params).Info("saved parameters")
		}
	}

	log.WithFields(logrus.Fields{
		"function": "run",
		"rebuilds": syncer.Rebuilds(),
	}).Info("stopped")

	return errors.Join(errs...)
}
