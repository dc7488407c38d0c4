package host

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/signal"
)

// Offline feeds a generated test signal through the processor one block
// at a time, paced in real time by a ticker.
type Offline struct {
	proc       Processor
	sampleRate float64
	blockSize  int

	freqHz    float64
	amplitude float64
	srcOpts   []signal.SourceOption
	limit     uint64
	unpaced   bool
	log       *logrus.Entry

	blocks atomic.Uint64
	ready  *readiness
}

// OfflineOption configures an Offline host.
type OfflineOption func(*Offline)

// WithTone sets the generated tone. Defaults to a 0.25 amplitude 1 kHz sine.
func WithTone(freqHz, amplitude float64, opts ...signal.SourceOption) OfflineOption {
	return func(o *Offline) {
		o.freqHz = freqHz
		o.amplitude = amplitude
		o.srcOpts = append(o.srcOpts, opts...)
	}
}

// WithBlockLimit stops the host after n blocks. Zero runs until cancelled.
func WithBlockLimit(n uint64) OfflineOption {
	return func(o *Offline) { o.limit = n }
}

// WithUnpaced renders blocks back to back instead of in real time.
func WithUnpaced() OfflineOption {
	return func(o *Offline) { o.unpaced = true }
}

// WithOfflineLogger sets the entry lifecycle events are logged to.
func WithOfflineLogger(log *logrus.Entry) OfflineOption {
	return func(o *Offline) {
		if log != nil {
			o.log = log
		}
	}
}

// NewOffline returns a generator host for proc.
func NewOffline(proc Processor, sampleRate float64, blockSize int, opts ...OfflineOption) (*Offline, error) {
	if proc == nil {
		return nil, ErrNilProcessor
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if blockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}

	o := &Offline{
		proc:       proc,
		sampleRate: sampleRate,
		blockSize:  blockSize,
		freqHz:     1000,
		amplitude:  0.25,
		log:        logrus.WithField("component", "host"),
		ready:      newReadiness(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o, nil
}

// SampleRate implements Host.
func (o *Offline) SampleRate() float64 { return o.sampleRate }

// BlockSize implements Host.
func (o *Offline) BlockSize() int { return o.blockSize }

// Ready implements Host.
func (o *Offline) Ready() <-chan struct{} { return o.ready.ch }

// Blocks returns how many blocks have been processed.
func (o *Offline) Blocks() uint64 { return o.blocks.Load() }

// Start implements Host.
func (o *Offline) Start(ctx context.Context) error {
	gen := signal.NewGenerator(core.WithSampleRate(o.sampleRate), core.WithBlockSize(o.blockSize))

	src, err := gen.NewSource(o.freqHz, o.amplitude, o.srcOpts...)
	if err != nil {
		return fmt.Errorf("host: offline source: %w", err)
	}

	if err := o.proc.Prepare(o.sampleRate, o.blockSize); err != nil {
		return fmt.Errorf("host: prepare: %w", err)
	}
	o.ready.signal()

	log := o.log.WithFields(logrus.Fields{
		"function":    "Offline.Start",
		"sample_rate": o.sampleRate,
		"block_size":  o.blockSize,
	})
	log.WithField("tone_hz", o.freqHz).Info("offline host started")

	var tick <-chan time.Time
	if !o.unpaced {
		period := time.Duration(float64(o.blockSize) / o.sampleRate * float64(time.Second))
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		tick = ticker.C
	}

	block := newBlock(o.blockSize)

	for {
		if o.limit > 0 && o.blocks.Load() >= o.limit {
			log.WithField("blocks", o.blocks.Load()).Info("offline host finished")
			return nil
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				log.WithField("blocks", o.blocks.Load()).Info("offline host stopped")
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			log.WithField("blocks", o.blocks.Load()).Info("offline host stopped")
			return nil
		}

		src.Fill(block[0])
		copy(block[1], block[0])
		o.proc.ProcessBlock(block, Channels)
		o.blocks.Add(1)
	}
}
