package analyzer

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-eq/internal/testutil"
)

func TestNewPathProducerRequiresFifo(t *testing.T) {
	if _, err := NewPathProducer(nil); !errors.Is(err, ErrNilFifo) {
		t.Fatalf("error = %v, want ErrNilFifo", err)
	}
}

func TestPathProducerWaitsForFullWindow(t *testing.T) {
	const blockSize = 512
	fifo := NewSampleFifo(Left, 0)
	fifo.Prepare(blockSize)
	p, err := NewPathProducer(fifo)
	if err != nil {
		t.Fatal(err)
	}
	bounds := Rect{X: 24, Y: 16, Width: 552, Height: 103}
	silence := [][]float64{make([]float64, blockSize)}

	for range p.FFTSize()/blockSize - 1 {
		fifo.Update(silence)
	}
	p.Process(bounds, 48000)
	if p.Path() != nil {
		t.Fatal("path produced before the analysis window was full")
	}

	fifo.Update(silence)
	p.Process(bounds, 48000)
	path := p.Path()
	if len(path) != 1+p.FFTSize()/4 {
		t.Fatalf("len(path) = %d, want %d", len(path), 1+p.FFTSize()/4)
	}
	for i, pt := range path {
		if pt.Y != bounds.Bottom() {
			t.Fatalf("point %d: y = %v, want the floor at %v", i, pt.Y, bounds.Bottom())
		}
	}
}

func TestPathProducerKeepsLastPathWhenIdle(t *testing.T) {
	fifo := NewSampleFifo(Left, 0)
	fifo.Prepare(2048)
	p, err := NewPathProducer(fifo)
	if err != nil {
		t.Fatal(err)
	}
	bounds := Rect{Width: 400, Height: 100}
	fifo.Update([][]float64{testutil.DeterministicSine(1000, 48000, 0.5, 2048)})
	p.Process(bounds, 48000)
	first := p.Path()
	if first == nil {
		t.Fatal("expected a path")
	}
	p.Process(bounds, 48000)
	if len(p.Path()) != len(first) || &p.Path()[0] != &first[0] {
		t.Fatal("idle Process must keep the previous path")
	}
}

func TestPathProducerShowsSinePeak(t *testing.T) {
	const sampleRate = 48000.0
	fifo := NewSampleFifo(Left, 0)
	fifo.Prepare(1024)
	p, err := NewPathProducer(fifo)
	if err != nil {
		t.Fatal(err)
	}
	bounds := Rect{Width: 600, Height: 120}
	sine := testutil.DeterministicSine(1500, sampleRate, 1, 4096)
	for _, b := range testutil.Blocks(sine, 1024) {
		fifo.Update([][]float64{b})
	}
	p.Process(bounds, sampleRate)

	highest := bounds.Bottom()
	for _, pt := range p.Path() {
		highest = min(highest, pt.Y)
	}
	if highest > bounds.Y+0.1*bounds.Height {
		t.Fatalf("peak y = %v, want within the top tenth for a full scale sine", highest)
	}
}

func TestPathProducerChangeOrder(t *testing.T) {
	fifo := NewSampleFifo(Left, 0)
	fifo.Prepare(512)
	p, err := NewPathProducer(fifo)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.ChangeOrder(Order8192); err != nil {
		t.Fatal(err)
	}
	if p.FFTSize() != 8192 {
		t.Fatalf("FFTSize() = %d, want 8192", p.FFTSize())
	}
	if err := p.ChangeOrder(3); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("error = %v", err)
	}
}
