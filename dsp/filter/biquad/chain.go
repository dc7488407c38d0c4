package biquad

// Chain is an ordered cascade of biquad sections processed in series.
//
// The number of sections is fixed at construction. Each section can be
// bypassed individually, in which case it is skipped during processing and
// contributes unity to the frequency response. A bypassed section keeps its
// delay-line state.
type Chain struct {
	sections []Section
	bypassed []bool
}

// NewChain creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one active Section in the cascade.
func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{
		sections: make([]Section, len(coeffs)),
		bypassed: make([]bool, len(coeffs)),
	}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// NewPassthroughChain returns a chain of n passthrough sections.
func NewPassthroughChain(n int) *Chain {
	if n < 0 {
		n = 0
	}

	coeffs := make([]Coefficients, n)
	for i := range coeffs {
		coeffs[i] = Passthrough
	}

	return NewChain(coeffs)
}

// ProcessSample cascades input through all active sections in order.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		if c.bypassed[i] {
			continue
		}
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through every active section.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		if c.bypassed[i] {
			continue
		}
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears all section states, including bypassed ones.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumSections returns the number of biquad sections, active or not.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// NumActive returns the number of sections that are not bypassed.
func (c *Chain) NumActive() int {
	n := 0
	for _, b := range c.bypassed {
		if !b {
			n++
		}
	}

	return n
}

// Order returns the filter order of the active cascade (2 per section).
func (c *Chain) Order() int {
	return 2 * c.NumActive()
}

// SetSection replaces the coefficients of section i. The delay-line state
// is preserved so that coefficient updates do not click.
func (c *Chain) SetSection(i int, coeffs Coefficients) {
	c.sections[i].Coefficients = coeffs
}

// SetBypassed enables or bypasses section i.
func (c *Chain) SetBypassed(i int, bypassed bool) {
	c.bypassed[i] = bypassed
}

// IsBypassed reports whether section i is bypassed.
func (c *Chain) IsBypassed(i int) bool {
	return c.bypassed[i]
}

// Section returns a pointer to the i-th section for inspection or modification.
func (c *Chain) Section(i int) *Section {
	return &c.sections[i]
}
