package analyzer

import (
	"fmt"
	"sync/atomic"

	"github.com/cwbudde/algo-eq/dsp/buffer"
)

// Channel selects which input channel a SampleFifo captures.
type Channel int

const (
	Left Channel = iota
	Right
)

func (c Channel) String() string {
	switch c {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// SampleFifo collects one channel of audio into fixed-size blocks and hands
// complete blocks to a consumer through a ring.
//
// Update is called on the audio thread; it never allocates or blocks. When
// the ring is full the completed block is dropped.
type SampleFifo struct {
	channel  Channel
	capacity int

	fill     []float64
	fillIdx  int
	ring     buffer.Ring[float64]
	prepared atomic.Bool
}

// NewSampleFifo returns an unprepared fifo for ch. capacity is the number
// of complete blocks the ring can hold; values < 1 select DefaultRingCapacity.
func NewSampleFifo(ch Channel, capacity int) *SampleFifo {
	if capacity < 1 {
		capacity = DefaultRingCapacity
	}

	return &SampleFifo{channel: ch, capacity: capacity}
}

// Prepare allocates the fill buffer and ring for blocks of bufferSize
// samples. It must not run concurrently with Update or PullBuffer.
func (f *SampleFifo) Prepare(bufferSize int) {
	f.prepared.Store(false)

	bufferSize = max(bufferSize, 1)
	f.fill = make([]float64, bufferSize)
	f.fillIdx = 0
	f.ring.Prepare(f.capacity, bufferSize)

	f.prepared.Store(true)
}

// Update copies the configured channel of block into the fill buffer,
// pushing each completed buffer into the ring.
func (f *SampleFifo) Update(block [][]float64) {
	if !f.prepared.Load() || int(f.channel) >= len(block) {
		return
	}

	for _, x := range block[f.channel] {
		f.fill[f.fillIdx] = x
		f.fillIdx++

		if f.fillIdx == len(f.fill) {
			f.ring.Push(f.fill)
			f.fillIdx = 0
		}
	}
}

// Channel returns the captured channel.
func (f *SampleFifo) Channel() Channel { return f.channel }

// IsPrepared reports whether Prepare has completed.
func (f *SampleFifo) IsPrepared() bool { return f.prepared.Load() }

// Size returns the number of samples per block.
func (f *SampleFifo) Size() int { return len(f.fill) }

// NumCompleteBuffersAvailable returns the number of blocks ready to pull.
func (f *SampleFifo) NumCompleteBuffersAvailable() int { return f.ring.Available() }

// PullBuffer copies the oldest complete block into dst, growing it if needed.
func (f *SampleFifo) PullBuffer(dst []float64) ([]float64, bool) {
	return f.ring.Pull(dst)
}

// Dropped returns the number of blocks lost to a full ring.
func (f *SampleFifo) Dropped() uint64 { return f.ring.Dropped() }
