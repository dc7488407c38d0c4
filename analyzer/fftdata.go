package analyzer

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eq/dsp/buffer"
	"github.com/cwbudde/algo-eq/dsp/spectrum"
	"github.com/cwbudde/algo-eq/dsp/window"
)

// FFTOrder is the base-2 logarithm of the FFT size.
type FFTOrder int

const (
	Order2048 FFTOrder = 11
	Order4096 FFTOrder = 12
	Order8192 FFTOrder = 13
)

// Size returns the number of FFT points.
func (o FFTOrder) Size() int { return 1 << o }

// Valid reports whether o is one of the supported orders.
func (o FFTOrder) Valid() bool { return o >= Order2048 && o <= Order8192 }

func (o FFTOrder) String() string { return fmt.Sprintf("%d", o.Size()) }

// FFTDataGenerator converts windows of fftSize samples into dB magnitude
// blocks of fftSize/2 bins and queues them for the path stage.
//
// Produce and the pull methods belong to a single goroutine; all buffers
// are allocated by ChangeOrder so Produce does not allocate.
type FFTDataGenerator struct {
	cfg   Config
	order FFTOrder
	plan  *algofft.Plan[complex128]

	coeffs   []float64
	windowed []float64
	in       []complex128
	out      []complex128
	re, im   []float64
	mags     []float64

	ring buffer.Ring[float64]
}

// NewFFTDataGenerator builds a generator for the configured order.
func NewFFTDataGenerator(opts ...Option) (*FFTDataGenerator, error) {
	g := &FFTDataGenerator{cfg: applyOptions(opts)}
	if err := g.ChangeOrder(g.cfg.Order); err != nil {
		return nil, err
	}

	return g, nil
}

// ChangeOrder rebuilds the FFT plan, window and queue for order. Queued
// blocks of the previous size are discarded.
func (g *FFTDataGenerator) ChangeOrder(order FFTOrder) error {
	if !order.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidOrder, int(order))
	}

	n := order.Size()

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return fmt.Errorf("analyzer: fft plan %d: %w", n, err)
	}

	coeffs := window.Generate(g.cfg.Window, n)
	if g.cfg.NormalizeWindow {
		window.Normalize(coeffs)
	}

	half := n / 2
	g.order = order
	g.plan = plan
	g.coeffs = coeffs
	g.windowed = make([]float64, n)
	g.in = make([]complex128, n)
	g.out = make([]complex128, n)
	g.re = make([]float64, half)
	g.im = make([]float64, half)
	g.mags = make([]float64, half)
	g.ring.Prepare(g.cfg.RingCapacity, half)

	return nil
}

// Order returns the current FFT order.
func (g *FFTDataGenerator) Order() FFTOrder { return g.order }

// FFTSize returns the number of FFT points.
func (g *FFTDataGenerator) FFTSize() int { return g.order.Size() }

// NumBins returns the number of magnitude bins per block.
func (g *FFTDataGenerator) NumBins() int { return len(g.mags) }

// Produce windows the first FFTSize samples of mono, transforms them and
// queues the dB magnitudes of the lower half spectrum. A shorter input is
// zero padded. Magnitudes are normalised by the bin count; non-finite
// values and values below negInfDB map to negInfDB.
func (g *FFTDataGenerator) Produce(mono []float64, negInfDB float64) {
	n := copy(g.windowed, mono)
	clear(g.windowed[n:])

	vecmath.MulBlockInPlace(g.windowed, g.coeffs)

	for i, x := range g.windowed {
		g.in[i] = complex(x, 0)
	}

	if err := g.plan.Forward(g.out, g.in); err != nil {
		return
	}

	half := len(g.mags)
	spectrum.SplitComplex(g.re, g.im, g.out[:half])
	spectrum.MagnitudeFromParts(g.mags, g.re, g.im)
	spectrum.Scale(g.mags, 1/float64(half))
	spectrum.ToDecibels(g.mags, negInfDB)

	g.ring.Push(g.mags)
}

// NumAvailableBlocks returns the number of queued magnitude blocks.
func (g *FFTDataGenerator) NumAvailableBlocks() int { return g.ring.Available() }

// PullFFTData copies the oldest magnitude block into dst.
func (g *FFTDataGenerator) PullFFTData(dst []float64) ([]float64, bool) {
	return g.ring.Pull(dst)
}

// Dropped returns the number of blocks lost to a full queue.
func (g *FFTDataGenerator) Dropped() uint64 { return g.ring.Dropped() }
