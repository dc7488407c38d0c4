package buffer

// Buffer is a fixed-width sliding window over a sample stream.
// DSP functions accept raw []float64; use Samples() to bridge.
type Buffer struct {
	samples []float64
	filled  int
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// Samples returns the underlying slice, oldest sample first.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the window width in samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Filled returns how many of the Len() samples have been written since the
// last Resize or Zero, saturating at Len().
func (b *Buffer) Filled() int {
	return b.filled
}

// Full reports whether every sample in the window has been written at least once.
func (b *Buffer) Full() bool {
	return len(b.samples) > 0 && b.filled >= len(b.samples)
}

// ShiftIn shifts the window left by len(in) samples and appends in at the
// tail. When in is longer than the window only its last Len() samples are kept.
func (b *Buffer) ShiftIn(in []float64) {
	n := len(b.samples)
	if n == 0 || len(in) == 0 {
		return
	}

	if len(in) >= n {
		copy(b.samples, in[len(in)-n:])
		b.filled = n
		return
	}

	copy(b.samples, b.samples[len(in):])
	copy(b.samples[n-len(in):], in)

	b.filled += len(in)
	if b.filled > n {
		b.filled = n
	}
}

// Resize sets the window width to n, reusing existing capacity when possible.
// The window is cleared and its fill count reset.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		b.samples = make([]float64, n)
	}
	b.Zero()
}

// Zero sets all samples to 0 and resets the fill count.
func (b *Buffer) Zero() {
	for i := range b.samples {
		b.samples[i] = 0
	}
	b.filled = 0
}
