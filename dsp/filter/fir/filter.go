package fir

// Filter runs designed taps over a trace in direct form, one sample at a
// time, using a circular-buffer delay line.
type Filter struct {
	taps  []float64
	delay []float64
	pos   int
}

// New creates a filter from the given tap weights. The taps are copied.
// The filter order is len(taps)-1.
func New(taps []float64) *Filter {
	t := make([]float64, len(taps))
	copy(t, taps)
	return &Filter{
		taps:  t,
		delay: make([]float64, len(taps)),
	}
}

// ProcessSample filters one sample by direct convolution over the delay
// line.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) ProcessSample(x float64) float64 {
	f.delay[f.pos] = x
	var y float64
	n := len(f.taps)
	p := f.pos
	for k := range n {
		y += f.taps[k] * f.delay[p]
		p--
		if p < 0 {
			p = n - 1
		}
	}
	f.pos++
	if f.pos >= n {
		f.pos = 0
	}
	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. dst must be at least as long as src.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Prime fills the delay line as if an infinitely long constant input of
// amplitude x0 had already passed through. A primed filter sees no
// startup step when the first real sample equals x0, which is how the
// zero-phase edge extension avoids transients.
func (f *Filter) Prime(x0 float64) {
	for i := range f.delay {
		f.delay[i] = x0
	}
	f.pos = 0
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	clear(f.delay)
	f.pos = 0
}

// Order returns the filter order (len(taps) - 1).
func (f *Filter) Order() int {
	return len(f.taps) - 1
}

// Taps returns a copy of the tap weights.
func (f *Filter) Taps() []float64 {
	t := make([]float64, len(f.taps))
	copy(t, f.taps)
	return t
}
