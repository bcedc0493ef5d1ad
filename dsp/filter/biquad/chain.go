package biquad

// Chain is an ordered cascade of biquad sections processed in series.
// Designed IIR trace filters (Butterworth, Chebyshev II) run as one
// chain, each second-order section feeding the next. Overall gain is
// folded into the section coefficients at design time, so the chain
// itself applies no scaling.
type Chain struct {
	sections []Section
}

// NewChain creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section in the cascade.
func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{sections: make([]Section, len(coeffs))}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// ProcessSample cascades one sample through all sections in order.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears all section states.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumSections returns the number of biquad sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Section returns a pointer to the i-th section for inspection or
// modification.
func (c *Chain) Section(i int) *Section {
	return &c.sections[i]
}

// State returns a snapshot of all section delay-line states.
func (c *Chain) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores previously saved section states. The slice length
// must match NumSections.
func (c *Chain) SetState(states [][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}
