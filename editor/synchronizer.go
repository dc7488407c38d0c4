package editor

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-eq/analyzer"
	"github.com/cwbudde/algo-eq/eq"
	"github.com/cwbudde/algo-eq/params"
)

// DefaultRate is the tick rate of Run when none is given.
const DefaultRate = 60

// Processor is what the Synchronizer needs from the audio side.
// *eq.Processor implements it.
type Processor interface {
	Store() *params.Store
	SampleRate() float64
	Fifo(ch analyzer.Channel) *analyzer.SampleFifo
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithDesigner replaces the coefficient designer used for the response curve.
func WithDesigner(d eq.Designer) Option {
	return func(s *Synchronizer) {
		if d != nil {
			s.designer = d
		}
	}
}

// WithSize sets the initial size of the response view.
func WithSize(width, height float64) Option {
	return func(s *Synchronizer) {
		g := NewGeometry(width, height)
		s.geometry.Store(&g)
	}
}

// WithAnalyzerOptions configures both spectrum path producers.
func WithAnalyzerOptions(opts ...analyzer.Option) Option {
	return func(s *Synchronizer) {
		s.analyzerOpts = append(s.analyzerOpts, opts...)
	}
}

// WithLogger sets the entry lifecycle events are logged to.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Synchronizer) {
		if log != nil {
			s.log = log
		}
	}
}

// Synchronizer keeps the display in step with the parameters and audio.
//
// Parameter changes arrive by subscription and raise an atomic dirty flag.
// Tick clears the flag with a compare-and-swap, so however many changes
// land within one period the chain is rebuilt at most once, and never
// skipped. Tick and Run must be driven from a single goroutine; the
// accessors are safe from any goroutine.
type Synchronizer struct {
	proc         Processor
	reader       *eq.SettingsReader
	sub          *params.Subscription
	designer     eq.Designer
	analyzerOpts []analyzer.Option
	log          *logrus.Entry

	dirty    atomic.Bool
	geometry atomic.Pointer[Geometry]
	response atomic.Pointer[analyzer.Path]
	spectrum [2]atomic.Pointer[analyzer.Path]
	rebuilds atomic.Uint64
	repaint  chan struct{}

	// Owned by the ticking goroutine.
	chain      *eq.MonoChain
	producers  [2]*analyzer.PathProducer
	settings   eq.Settings
	sampleRate float64
	lastPaths  [2]analyzer.Path
}

// NewSynchronizer subscribes to proc's parameters and builds the initial
// response curve.
func NewSynchronizer(proc Processor, opts ...Option) (*Synchronizer, error) {
	if proc == nil {
		return nil, ErrNilProcessor
	}

	reader, err := eq.NewSettingsReader(proc.Store())
	if err != nil {
		return nil, err
	}

	s := &Synchronizer{
		proc:     proc,
		reader:   reader,
		designer: eq.ButterworthDesigner{},
		log:      logrus.WithField("component", "editor"),
		repaint:  make(chan struct{}, 1),
		chain:    eq.NewMonoChain(),
	}

	g := NewGeometry(600, 125)
	s.geometry.Store(&g)

	for _, opt := range opts {
		opt(s)
	}

	for ch := range s.producers {
		p, err := analyzer.NewPathProducer(proc.Fifo(analyzer.Channel(ch)), s.analyzerOpts...)
		if err != nil {
			return nil, err
		}
		s.producers[ch] = p
	}

	s.sub = proc.Store().Subscribe(proc.Store().Len() * 4)
	s.updateChain()

	return s, nil
}

// Close unsubscribes from the parameter store.
func (s *Synchronizer) Close() {
	s.sub.Close()
}

// MarkDirty forces a rebuild on the next tick.
func (s *Synchronizer) MarkDirty() { s.dirty.Store(true) }

// SetSize changes the size of the response view and schedules a rebuild.
func (s *Synchronizer) SetSize(width, height float64) {
	g := NewGeometry(width, height)
	s.geometry.Store(&g)
	s.dirty.Store(true)
}

// Tick runs one display cycle and reports whether a repaint was signalled.
func (s *Synchronizer) Tick() bool {
	if _, changed := s.sub.Drain(); changed {
		s.dirty.Store(true)
	}

	if sr := s.proc.SampleRate(); sr != s.sampleRate {
		s.dirty.Store(true)
	}

	repaint := false
	if s.dirty.CompareAndSwap(true, false) {
		s.updateChain()
		repaint = true
	}

	if s.processSpectrum() {
		repaint = true
	}

	if repaint {
		select {
		case s.repaint <- struct{}{}:
		default:
		}
	}

	return repaint
}

func (s *Synchronizer) updateChain() {
	s.settings = s.reader.Snapshot()
	s.sampleRate = s.proc.SampleRate()
	s.chain.Update(s.designer.Design(s.settings, s.sampleRate), s.settings)

	curve := BuildResponseCurve(s.chain, s.sampleRate, s.Geometry().AnalysisArea)
	s.response.Store(&curve)
	s.rebuilds.Add(1)
}

func (s *Synchronizer) processSpectrum() bool {
	if !s.settings.AnalyzerEnabled {
		changed := false
		for ch := range s.spectrum {
			if s.lastPaths[ch] != nil {
				s.lastPaths[ch] = nil
				s.spectrum[ch].Store(nil)
				changed = true
			}
		}
		return changed
	}

	area := s.Geometry().AnalysisArea
	changed := false

	for ch, p := range s.producers {
		p.Process(area, s.sampleRate)

		path := p.Path()
		if path == nil || (len(s.lastPaths[ch]) > 0 && &path[0] == &s.lastPaths[ch][0]) {
			continue
		}

		s.lastPaths[ch] = path
		s.spectrum[ch].Store(&path)
		changed = true
	}

	return changed
}

// Run ticks at rate Hz until ctx is done. rate <= 0 selects DefaultRate.
func (s *Synchronizer) Run(ctx context.Context, rate int) error {
	if rate <= 0 {
		rate = DefaultRate
	}

	s.log.WithFields(logrus.Fields{
		"function": "Synchronizer.Run",
		"rate_hz":  rate,
	}).Info("display synchronizer started")

	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.WithFields(logrus.Fields{
				"function": "Synchronizer.Run",
				"rebuilds": s.Rebuilds(),
				"dropped":  s.proc.Fifo(analyzer.Left).Dropped() + s.proc.Fifo(analyzer.Right).Dropped(),
			}).Info("display synchronizer stopped")
			return ctx.Err()
		case <-ticker.C:
			s.Tick()
		}
	}
}

// ResponseCurve returns the latest analytic response curve.
func (s *Synchronizer) ResponseCurve() analyzer.Path {
	if p := s.response.Load(); p != nil {
		return *p
	}

	return nil
}

// SpectrumPath returns the latest spectrum of ch, or nil while the
// analyzer is off or has not produced a path yet.
func (s *Synchronizer) SpectrumPath(ch analyzer.Channel) analyzer.Path {
	if ch < analyzer.Left || int(ch) >= len(s.spectrum) {
		return nil
	}

	if p := s.spectrum[ch].Load(); p != nil {
		return *p
	}

	return nil
}

// Repaint delivers one signal per tick that changed something. Signals
// coalesce while the consumer is busy.
func (s *Synchronizer) Repaint() <-chan struct{} { return s.repaint }

// Geometry returns the current view geometry.
func (s *Synchronizer) Geometry() Geometry { return *s.geometry.Load() }

// Rebuilds returns how many times the chain has been rebuilt.
func (s *Synchronizer) Rebuilds() uint64 { return s.rebuilds.Load() }
