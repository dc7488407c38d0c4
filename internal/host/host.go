// Package host drives the equalizer from an audio source: a PortAudio
// duplex stream for live use, or a paced signal generator for running
// without a sound card.
package host

import (
	"context"
	"errors"
	"sync"
)

// Host owns the audio callback of a processor.
type Host interface {
	// Start prepares the processor and runs audio until ctx is done.
	// It returns nil on a clean shutdown.
	Start(ctx context.Context) error
	// Ready is closed once the processor has been prepared. Consumers
	// of the processor's analyzer fifos must wait for it.
	Ready() <-chan struct{}
	SampleRate() float64
	BlockSize() int
}

// Processor is what a Host calls. *eq.Processor implements it.
type Processor interface {
	Prepare(sampleRate float64, blockSize int) error
	ProcessBlock(block [][]float64, inputChannels int)
}

// Channels is the number of output channels every host renders.
const Channels = 2

var (
	// ErrNilProcessor is returned when a host is built without a processor.
	ErrNilProcessor = errors.New("host: processor is nil")
	// ErrInvalidSampleRate is returned for a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("host: sample rate must be > 0")
	// ErrInvalidBlockSize is returned for a non-positive block size.
	ErrInvalidBlockSize = errors.New("host: block size must be > 0")
	// ErrNoDevice is returned when no usable audio device is found.
	ErrNoDevice = errors.New("host: no usable audio device")
)

func newBlock(blockSize int) [][]float64 {
	block := make([][]float64, Channels)
	for ch := range block {
		block[ch] = make([]float64, blockSize)
	}
	return block
}

// readiness closes a channel exactly once.
type readiness struct {
	once sync.Once
	ch   chan struct{}
}

func newReadiness() *readiness { return &readiness{ch: make(chan struct{})} }

func (r *readiness) signal() { r.once.Do(func() { close(r.ch) }) }
