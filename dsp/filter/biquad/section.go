package biquad

// Coefficients holds the transfer function of a single second-order
// section with a0 normalized to 1 and not stored. The design package
// emits designed trace filters as slices of these.
//
// Processing follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Section is one biquad with coefficients and delay-line state. A
// first-order section is expressed with B2 and A2 zero.
type Section struct {
	Coefficients

	d0, d1 float64
}

// NewSection returns a Section with the given coefficients and zero
// state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters a block of samples in-place without allocating.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	d0, d1 := s.d0, s.d1

	for i, x := range buf {
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
}

// ProcessBlockTo filters src into dst. dst must be at least as long as
// src.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		y := s.B0*x + s.d0
		s.d0 = s.B1*x - s.A1*y + s.d1
		s.d1 = s.B2*x - s.A2*y
		dst[i] = y
	}
}

// Reset clears the delay line to zero.
func (s *Section) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// State returns the current delay-line state [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a previously saved delay-line state. The zero-phase
// apply path uses this to prime a pass at its steady state.
func (s *Section) SetState(state [2]float64) {
	s.d0 = state[0]
	s.d1 = state[1]
}
