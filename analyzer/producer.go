package analyzer

import (
	"slices"

	"github.com/cwbudde/algo-eq/dsp/buffer"
)

// PathProducer drains a SampleFifo, keeps a sliding window of the last
// FFTSize samples, and turns it into the most recent spectrum path.
//
// A PathProducer is driven from one goroutine. Path returns an immutable
// slice that is replaced, never modified, by later Process calls.
type PathProducer struct {
	cfg   Config
	fifo  *SampleFifo
	fft   *FFTDataGenerator
	paths *PathGenerator

	mono     *buffer.Buffer
	incoming []float64
	fftData  []float64
	pulled   Path
	path     Path
}

// NewPathProducer creates a producer reading from fifo.
func NewPathProducer(fifo *SampleFifo, opts ...Option) (*PathProducer, error) {
	if fifo == nil {
		return nil, ErrNilFifo
	}

	cfg := applyOptions(opts)

	gen, err := NewFFTDataGenerator(opts...)
	if err != nil {
		return nil, err
	}

	return &PathProducer{
		cfg:   cfg,
		fifo:  fifo,
		fft:   gen,
		paths: NewPathGenerator(cfg.RingCapacity),
		mono:  buffer.New(gen.FFTSize()),
	}, nil
}

// ChangeOrder switches the FFT size. The sliding window restarts empty.
func (p *PathProducer) ChangeOrder(order FFTOrder) error {
	if err := p.fft.ChangeOrder(order); err != nil {
		return err
	}

	p.mono.Resize(p.fft.FFTSize())

	return nil
}

// FFTSize returns the current analysis window length.
func (p *PathProducer) FFTSize() int { return p.fft.FFTSize() }

// Process runs one analysis cycle: every complete fifo block is shifted
// into the window and, once the window has been filled, transformed; every
// queued magnitude block becomes a path; the newest path is kept.
// It performs no work when nothing is queued.
func (p *PathProducer) Process(bounds Rect, sampleRate float64) {
	negInf := p.cfg.NegativeInfinityDB

	for p.fifo.NumCompleteBuffersAvailable() > 0 {
		var ok bool
		p.incoming, ok = p.fifo.PullBuffer(p.incoming)
		if !ok {
			break
		}

		p.mono.ShiftIn(p.incoming)
		if p.mono.Full() {
			p.fft.Produce(p.mono.Samples(), negInf)
		}
	}

	fftSize := p.fft.FFTSize()
	binWidth := sampleRate / float64(fftSize)

	for p.fft.NumAvailableBlocks() > 0 {
		var ok bool
		p.fftData, ok = p.fft.PullFFTData(p.fftData)
		if !ok {
			break
		}

		p.paths.Generate(p.fftData, bounds, fftSize, binWidth, negInf)
	}

	updated := false
	for p.paths.NumPathsAvailable() > 0 {
		var ok bool
		p.pulled, ok = p.paths.PullPath(p.pulled)
		if !ok {
			break
		}
		updated = true
	}

	if updated {
		p.path = slices.Clone(p.pulled)
	}
}

// Path returns the last completed spectrum path, or nil before the first.
func (p *PathProducer) Path() Path { return p.path }

// FFTDropped returns the number of magnitude blocks lost to a full queue.
func (p *PathProducer) FFTDropped() uint64 { return p.fft.Dropped() }
