package host

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-eq/dsp/core"
)

var (
	initOnce sync.Once
	termOnce sync.Once
	initErr  error
)

// Initialize wraps portaudio.Initialize so that several callers are safe.
func Initialize() error {
	initOnce.Do(func() {
		initErr = portaudio.Initialize()
	})
	return initErr
}

// Terminate balances Initialize.
func Terminate() {
	if initErr != nil {
		return
	}
	termOnce.Do(func() {
		_ = portaudio.Terminate()
	})
}

// PortAudioConfig selects devices and stream format.
type PortAudioConfig struct {
	// InputDevice and OutputDevice match device names case-insensitively
	// by substring. Empty selects the default device.
	InputDevice  string
	OutputDevice string
	// SampleRate of zero uses the output device's default rate.
	SampleRate float64
	BlockSize  int
}

// PortAudio runs the processor inside a duplex stereo PortAudio stream.
// Input channels beyond the device's channel count are silent.
type PortAudio struct {
	proc Processor
	cfg  PortAudioConfig
	log  *logrus.Entry

	sampleRate float64
	block      [][]float64
	ready      *readiness
}

// NewPortAudio validates cfg and returns a host for proc. Devices are
// opened by Start.
func NewPortAudio(proc Processor, cfg PortAudioConfig, log *logrus.Entry) (*PortAudio, error) {
	if proc == nil {
		return nil, ErrNilProcessor
	}
	if cfg.BlockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}
	if cfg.SampleRate < 0 {
		return nil, ErrInvalidSampleRate
	}
	if log == nil {
		log = logrus.WithField("component", "host")
	}

	return &PortAudio{
		proc:       proc,
		cfg:        cfg,
		log:        log,
		sampleRate: cfg.SampleRate,
		block:      newBlock(cfg.BlockSize),
		ready:      newReadiness(),
	}, nil
}

// SampleRate implements Host. It is the configured rate until Start has
// picked the device default.
func (p *PortAudio) SampleRate() float64 { return p.sampleRate }

// Ready implements Host.
func (p *PortAudio) Ready() <-chan struct{} { return p.ready.ch }

// BlockSize implements Host.
func (p *PortAudio) BlockSize() int { return p.cfg.BlockSize }

// Start implements Host.
func (p *PortAudio) Start(ctx context.Context) error {
	if err := Initialize(); err != nil {
		return fmt.Errorf("host: portaudio init: %w", err)
	}
	defer Terminate()

	in, err := findDevice(p.cfg.InputDevice, true)
	if err != nil {
		return err
	}
	out, err := findDevice(p.cfg.OutputDevice, false)
	if err != nil {
		return err
	}

	if p.sampleRate == 0 {
		p.sampleRate = out.DefaultSampleRate
	}
	inChannels := min(in.MaxInputChannels, Channels)

	if err := p.proc.Prepare(p.sampleRate, p.cfg.BlockSize); err != nil {
		return fmt.Errorf("host: prepare: %w", err)
	}
	p.ready.signal()

	stream, err := portaudio.OpenStream(portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Device:   in,
			Channels: inChannels,
			Latency:  in.DefaultLowInputLatency,
		},
		Output: portaudio.StreamDeviceParameters{
			Device:   out,
			Channels: Channels,
			Latency:  out.DefaultLowOutputLatency,
		},
		SampleRate:      p.sampleRate,
		FramesPerBuffer: p.cfg.BlockSize,
	}, p.process)
	if err != nil {
		return fmt.Errorf("host: open stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("host: start stream: %w", err)
	}

	log := p.log.WithFields(logrus.Fields{
		"function":    "PortAudio.Start",
		"input":       in.Name,
		"output":      out.Name,
		"sample_rate": p.sampleRate,
		"block_size":  p.cfg.BlockSize,
	})
	log.Info("audio stream started")

	<-ctx.Done()

	if err := stream.Stop(); err != nil {
		return fmt.Errorf("host: stop stream: %w", err)
	}
	log.Info("audio stream stopped")

	return nil
}

// process is the stream callback. Buffers are non-interleaved; a callback
// longer than the block size is processed in block-sized pieces.
func (p *PortAudio) process(in, out [][]float32) {
	if len(out) == 0 {
		return
	}

	frames := len(out[0])
	size := len(p.block[0])
	inChannels := min(len(in), Channels)

	for off := 0; off < frames; off += size {
		n := min(size, frames-off)
		block := p.block
		for ch := range block {
			block[ch] = block[ch][:n]
		}

		for ch := range inChannels {
			core.Float32To64(block[ch], in[ch][off:off+n])
		}

		p.proc.ProcessBlock(block, inChannels)

		for ch := range out {
			if ch < len(block) {
				core.Float64To32(out[ch][off:off+n], block[ch])
			} else {
				clear(out[ch][off : off+n])
			}
		}

		for ch := range block {
			block[ch] = block[ch][:size]
		}
	}
}

// Device describes an audio device.
type Device struct {
	Name            string
	HostAPI         string
	MaxInput        int
	MaxOutput       int
	DefaultSampleHz float64
	IsDefaultInput  bool
	IsDefaultOutput bool
}

// Devices lists every device across host APIs, sorted by host and name.
// Initialize must have been called.
func Devices() ([]Device, error) {
	hosts, err := portaudio.HostApis()
	if err != nil {
		return nil, fmt.Errorf("host: host apis: %w", err)
	}

	defIn, defOut := -1, -1
	if d, err := portaudio.DefaultInputDevice(); err == nil && d != nil {
		defIn = d.Index
	}
	if d, err := portaudio.DefaultOutputDevice(); err == nil && d != nil {
		defOut = d.Index
	}

	var devices []Device
	for _, h := range hosts {
		for _, d := range h.Devices {
			devices = append(devices, Device{
				Name:            d.Name,
				HostAPI:         h.Name,
				MaxInput:        d.MaxInputChannels,
				MaxOutput:       d.MaxOutputChannels,
				DefaultSampleHz: d.DefaultSampleRate,
				IsDefaultInput:  d.Index == defIn,
				IsDefaultOutput: d.Index == defOut,
			})
		}
	}

	sort.Slice(devices, func(i, j int) bool {
		if devices[i].HostAPI == devices[j].HostAPI {
			return devices[i].Name < devices[j].Name
		}
		return devices[i].HostAPI < devices[j].HostAPI
	})

	return devices, nil
}

func findDevice(name string, input bool) (*portaudio.DeviceInfo, error) {
	usable := func(d *portaudio.DeviceInfo) bool {
		if d == nil {
			return false
		}
		if input {
			return d.MaxInputChannels > 0
		}
		return d.MaxOutputChannels >= Channels
	}

	if name == "" {
		var (
			d   *portaudio.DeviceInfo
			err error
		)
		if input {
			d, err = portaudio.DefaultInputDevice()
		} else {
			d, err = portaudio.DefaultOutputDevice()
		}
		if err == nil && usable(d) {
			return d, nil
		}
	}

	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("host: list devices: %w", err)
	}

	needle := strings.ToLower(name)
	for _, d := range devices {
		if usable(d) && strings.Contains(strings.ToLower(d.Name), needle) {
			return d, nil
		}
	}

	kind := "output"
	if input {
		kind = "input"
	}

	return nil, fmt.Errorf("%w: %s %q", ErrNoDevice, kind, name)
}
