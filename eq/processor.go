package eq

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-eq/analyzer"
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/params"
)

// Name is the processor name reported to hosts.
const Name = "Simple EQ"

// Processor is the host-facing stereo equalizer.
//
// Prepare and ProcessBlock follow the host contract: they are never called
// concurrently. ProcessBlock takes no locks and does not allocate. It
// notices parameter changes through the store version, takes a snapshot
// and swaps new coefficients into both channel chains, so left and right
// always share one coefficient set.
type Processor struct {
	reader   *SettingsReader
	designer Designer
	fifoCap  int

	cfg        core.ProcessorConfig
	sampleRate atomic.Uint64
	prepared   bool
	version    uint64
	coeffs     ChainCoefficients

	chains [2]*MonoChain
	fifos  [2]*analyzer.SampleFifo
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithDesigner replaces the coefficient designer.
func WithDesigner(d Designer) ProcessorOption {
	return func(p *Processor) {
		if d != nil {
			p.designer = d
		}
	}
}

// WithFifoCapacity sets how many captured blocks each analyzer fifo holds.
func WithFifoCapacity(n int) ProcessorOption {
	return func(p *Processor) {
		if n > 0 {
			p.fifoCap = n
		}
	}
}

// NewProcessor creates a processor reading its parameters from store, which
// must hold the layout of NewParameterStore.
func NewProcessor(store *params.Store, opts ...ProcessorOption) (*Processor, error) {
	reader, err := NewSettingsReader(store)
	if err != nil {
		return nil, err
	}

	p := &Processor{
		reader:   reader,
		designer: ButterworthDesigner{},
		fifoCap:  analyzer.DefaultRingCapacity,
		cfg:      core.DefaultProcessorConfig(),
	}
	for _, opt := range opts {
		opt(p)
	}

	for ch := range p.chains {
		p.chains[ch] = NewMonoChain()
		p.fifos[ch] = analyzer.NewSampleFifo(analyzer.Channel(ch), p.fifoCap)
	}

	return p, nil
}

// Prepare sizes the analyzer fifos, clears filter state and designs the
// initial coefficients.
func (p *Processor) Prepare(sampleRate float64, blockSize int) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if blockSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}

	p.cfg = core.ApplyProcessorOptions(
		core.WithSampleRate(sampleRate),
		core.WithBlockSize(blockSize),
		core.WithChannels(len(p.chains)),
	)
	p.sampleRate.Store(math.Float64bits(sampleRate))

	for ch := range p.chains {
		p.chains[ch].Reset()
		p.fifos[ch].Prepare(blockSize)
	}

	p.version = p.reader.Store().Version()
	p.applySettings()
	p.prepared = true

	return nil
}

// ProcessBlock filters block in place. The first inputChannels channels
// carry audio; any further channels are cleared. Channels beyond the
// second are not filtered.
func (p *Processor) ProcessBlock(block [][]float64, inputChannels int) {
	inputChannels = max(inputChannels, 0)
	for ch := inputChannels; ch < len(block); ch++ {
		clear(block[ch])
	}

	if !p.prepared {
		return
	}

	if v := p.reader.Store().Version(); v != p.version {
		p.version = v
		p.applySettings()
	}

	n := min(inputChannels, len(block), len(p.chains))
	for ch := range n {
		p.chains[ch].Process(block[ch])
	}

	for _, f := range p.fifos {
		f.Update(block)
	}
}

func (p *Processor) applySettings() {
	s := p.reader.Snapshot()
	p.coeffs = p.designer.Design(s, p.cfg.SampleRate)

	for _, c := range p.chains {
		c.Update(p.coeffs, s)
	}
}

// SampleRate returns the rate passed to the last Prepare. Safe from any goroutine.
func (p *Processor) SampleRate() float64 {
	if sr := math.Float64frombits(p.sampleRate.Load()); sr > 0 {
		return sr
	}

	return core.DefaultProcessorConfig().SampleRate
}

// BlockSize returns the block size passed to the last Prepare.
func (p *Processor) BlockSize() int { return p.cfg.BlockSize }

// Store returns the parameter store.
func (p *Processor) Store() *params.Store { return p.reader.Store() }

// Fifo returns the analyzer capture fifo of ch. The analysis goroutine is
// its only consumer.
func (p *Processor) Fifo(ch analyzer.Channel) *analyzer.SampleFifo { return p.fifos[ch] }

// Chain returns the filter chain of ch. It belongs to the audio thread.
func (p *Processor) Chain(ch analyzer.Channel) *MonoChain { return p.chains[ch] }

// Name returns the processor name.
func (p *Processor) Name() string { return Name }

// TailSeconds reports the processing tail, which is zero.
func (p *Processor) TailSeconds() float64 { return 0 }

// State returns the persisted state. No state format is defined, so it is empty.
func (p *Processor) State() []byte { return nil }

// SetState restores persisted state. It accepts and ignores any input.
func (p *Processor) SetState([]byte) error { return nil }
