package editor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-eq/analyzer"
	"github.com/cwbudde/algo-eq/eq"
	"github.com/cwbudde/algo-eq/internal/testutil"
)

type countingDesigner struct {
	calls atomic.Int64
}

func (d *countingDesigner) Design(s eq.Settings, sr float64) eq.ChainCoefficients {
	d.calls.Add(1)
	return eq.ButterworthDesigner{}.Design(s, sr)
}

func newTestProcessor(t *testing.T) *eq.Processor {
	t.Helper()
	p, err := eq.NewProcessor(eq.NewParameterStore())
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Prepare(48000, 512); err != nil {
		t.Fatal(err)
	}
	return p
}

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func newTestSynchronizer(t *testing.T, p *eq.Processor, opts ...Option) *Synchronizer {
	t.Helper()
	s, err := NewSynchronizer(p, append([]Option{WithLogger(quietLogger())}, opts...)...)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Close)
	return s
}

func drainRepaint(s *Synchronizer) int {
	n := 0
	for {
		select {
		case <-s.Repaint():
			n++
		default:
			return n
		}
	}
}

func TestNewSynchronizerNilProcessor(t *testing.T) {
	if _, err := NewSynchronizer(nil); !errors.Is(err, ErrNilProcessor) {
		t.Fatalf("error = %v, want ErrNilProcessor", err)
	}
}

func TestSynchronizerRebuildsOnlyOnChange(t *testing.T) {
	p := newTestProcessor(t)
	d := &countingDesigner{}
	s := newTestSynchronizer(t, p, WithDesigner(d))

	if d.calls.Load() != 1 || s.Rebuilds() != 1 {
		t.Fatalf("after construction: calls=%d rebuilds=%d, want 1", d.calls.Load(), s.Rebuilds())
	}

	for range 2 {
		if s.Tick() {
			t.Fatal("idle tick signalled a repaint")
		}
	}
	if d.calls.Load() != 1 {
		t.Fatalf("idle ticks redesigned: calls=%d", d.calls.Load())
	}

	if err := p.Store().Set(eq.IDPeakGain, 6); err != nil {
		t.Fatal(err)
	}
	if err := p.Store().Set(eq.IDPeakFreq, 1000); err != nil {
		t.Fatal(err)
	}
	if !s.Tick() {
		t.Fatal("tick after a change did not signal a repaint")
	}
	if d.calls.Load() != 2 || s.Rebuilds() != 2 {
		t.Fatalf("after change: calls=%d rebuilds=%d, want 2", d.calls.Load(), s.Rebuilds())
	}

	s.Tick()
	if d.calls.Load() != 2 {
		t.Fatalf("follow-up tick redesigned: calls=%d", d.calls.Load())
	}
}

func TestSynchronizerSetToSameValueIsIdle(t *testing.T) {
	p := newTestProcessor(t)
	s := newTestSynchronizer(t, p)

	v := p.Store().Value(eq.IDPeakQuality)
	if err := p.Store().Set(eq.IDPeakQuality, v); err != nil {
		t.Fatal(err)
	}
	s.Tick()
	if s.Rebuilds() != 1 {
		t.Fatalf("rebuilds = %d, want 1", s.Rebuilds())
	}
}

func TestSynchronizerSubscriptionOverflowStillRebuilds(t *testing.T) {
	p := newTestProcessor(t)
	s := newTestSynchronizer(t, p)

	for i := range 500 {
		if err := p.Store().Set(eq.IDPeakFreq, float64(100+i)); err != nil {
			t.Fatal(err)
		}
	}
	s.Tick()
	if s.Rebuilds() != 2 {
		t.Fatalf("rebuilds = %d, want 2", s.Rebuilds())
	}
}

func TestSynchronizerResponseFollowsParameters(t *testing.T) {
	p := newTestProcessor(t)
	s := newTestSynchronizer(t, p)
	g := s.Geometry()

	for _, pt := range s.ResponseCurve() {
		if pt.X < g.FrequencyX(100) || pt.X > g.FrequencyX(5000) {
			continue
		}
		if math.Abs(pt.Y-g.GainY(0)) > 0.5 {
			t.Fatalf("default curve not flat mid-band: point %+v", pt)
		}
	}

	store := p.Store()
	_ = store.Set(eq.IDPeakFreq, 750)
	_ = store.Set(eq.IDPeakGain, 12)
	_ = store.Set(eq.IDPeakQuality, 1)
	s.Tick()

	curve := s.ResponseCurve()
	x := int(math.Round(g.FrequencyX(750) - g.AnalysisArea.X))
	db := -24 + 48*(g.AnalysisArea.Bottom()-curve[x].Y)/g.AnalysisArea.Height
	if math.Abs(db-12) > 0.2 {
		t.Fatalf("curve at 750 Hz = %.2f dB, want 12 dB", db)
	}
}

func TestSynchronizerSetSize(t *testing.T) {
	p := newTestProcessor(t)
	s := newTestSynchronizer(t, p, WithSize(300, 100))

	if got := len(s.ResponseCurve()); got != 260 {
		t.Fatalf("initial curve has %d points, want 260", got)
	}

	s.SetSize(800, 200)
	s.Tick()
	if got := len(s.ResponseCurve()); got != 760 {
		t.Fatalf("resized curve has %d points, want 760", got)
	}
	if s.Rebuilds() != 2 {
		t.Fatalf("rebuilds = %d, want 2", s.Rebuilds())
	}
}

func TestSynchronizerRepaintCoalesces(t *testing.T) {
	p := newTestProcessor(t)
	s := newTestSynchronizer(t, p)

	for i := range 3 {
		_ = p.Store().Set(eq.IDPeakGain, float64(i+1))
		s.Tick()
	}
	if n := drainRepaint(s); n != 1 {
		t.Fatalf("%d pending repaints, want 1", n)
	}
	if s.Rebuilds() != 4 {
		t.Fatalf("rebuilds = %d, want 4", s.Rebuilds())
	}
}

func feedSine(t *testing.T, p *eq.Processor, blocks int) {
	t.Helper()
	sine := testutil.DeterministicSine(1000, 48000, 0.5, blocks*512)
	for _, b := range testutil.Blocks(sine, 512) {
		p.ProcessBlock(testutil.Block(b, b), 2)
	}
}

func TestSynchronizerSpectrum(t *testing.T) {
	p := newTestProcessor(t)
	s := newTestSynchronizer(t, p)

	if s.SpectrumPath(analyzer.Left) != nil {
		t.Fatal("spectrum available before any audio")
	}

	feedSine(t, p, 8)
	if !s.Tick() {
		t.Fatal("new spectrum did not signal a repaint")
	}

	for _, ch := range []analyzer.Channel{analyzer.Left, analyzer.Right} {
		path := s.SpectrumPath(ch)
		if len(path) == 0 {
			t.Fatalf("%v: no spectrum path", ch)
		}
		a := s.Geometry().AnalysisArea
		for _, pt := range path {
			if pt.Y < a.Y || pt.Y > a.Bottom() {
				t.Fatalf("%v: point %+v outside %+v", ch, pt, a)
			}
		}
	}

	if s.Tick() {
		t.Fatal("tick without new audio signalled a repaint")
	}
	if s.SpectrumPath(analyzer.Left) == nil {
		t.Fatal("last spectrum must persist while idle")
	}
	if s.SpectrumPath(analyzer.Channel(7)) != nil {
		t.Fatal("unknown channel returned a path")
	}
}

func TestSynchronizerAnalyzerDisabled(t *testing.T) {
	p := newTestProcessor(t)
	s := newTestSynchronizer(t, p)

	feedSine(t, p, 8)
	s.Tick()
	if s.SpectrumPath(analyzer.Left) == nil {
		t.Fatal("expected a spectrum with the analyzer on")
	}

	if err := p.Store().Set(eq.IDAnalyzerEnabled, 0); err != nil {
		t.Fatal(err)
	}
	s.Tick()
	if s.SpectrumPath(analyzer.Left) != nil || s.SpectrumPath(analyzer.Right) != nil {
		t.Fatal("spectrum paths must be cleared with the analyzer off")
	}
	if s.Frame(DefaultStyle()).Analyzer {
		t.Fatal("frame reports analyzer on")
	}
}

func TestSynchronizerRun(t *testing.T) {
	p := newTestProcessor(t)
	s := newTestSynchronizer(t, p)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, 200) }()

	if err := p.Store().Set(eq.IDHighCutFreq, 5000); err != nil {
		t.Fatal(err)
	}

	select {
	case <-s.Repaint():
	case <-time.After(5 * time.Second):
		t.Fatal("no repaint after a parameter change")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}
	if s.Rebuilds() < 2 {
		t.Fatalf("rebuilds = %d", s.Rebuilds())
	}
}

func TestFrameJSON(t *testing.T) {
	p := newTestProcessor(t)
	s := newTestSynchronizer(t, p)

	data, err := json.Marshal(s.Frame(DefaultStyle()))
	if err != nil {
		t.Fatal(err)
	}

	var back struct {
		Response []analyzer.Point `json:"response"`
		Grid     Grid             `json:"grid"`
		Style    Style            `json:"style"`
	}
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if len(back.Response) != len(s.ResponseCurve()) {
		t.Fatalf("response has %d points, want %d", len(back.Response), len(s.ResponseCurve()))
	}
	if len(back.Grid.Frequencies) != 10 || back.Style != DefaultStyle() {
		t.Fatalf("frame lost grid or style: %s", data)
	}
}
