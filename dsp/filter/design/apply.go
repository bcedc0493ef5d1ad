package design

import (
	"fmt"
	"slices"

	"github.com/seistools/tracedsp/dsp/core"
	"github.com/seistools/tracedsp/dsp/filter/biquad"
	"github.com/seistools/tracedsp/dsp/filter/fir"
)

// ApplyCausal filters signal in a single forward pass from zero initial
// state and returns the result as a new slice. The output carries the
// filter's full phase delay; use ApplyZeroPhase when event timing must be
// preserved.
func (c Coefficients) ApplyCausal(signal []float64) ([]float64, error) {
	if !c.IsIIR() && !c.IsFIR() {
		return nil, fmt.Errorf("%w: apply: empty coefficients", core.ErrParameter)
	}

	return c.run(signal, 0), nil
}

// ApplyZeroPhase filters signal forward and then backward, canceling the
// filter's phase response. The effective magnitude response is the square
// of the single-pass response, so band edges attenuate twice as deep.
//
// Edge transients are suppressed by extending the signal with odd
// reflections of length 3·max(len(b), len(a)) on both ends and priming
// each pass with its step steady state. Signals no longer than the
// extension cannot be padded and return ErrShortSignal.
func (c Coefficients) ApplyZeroPhase(signal []float64) ([]float64, error) {
	if !c.IsIIR() && !c.IsFIR() {
		return nil, fmt.Errorf("%w: apply: empty coefficients", core.ErrParameter)
	}

	padlen := 3 * max(len(c.Feedforward()), len(c.Feedback()))
	if len(signal) <= padlen {
		return nil, fmt.Errorf("%w: apply: signal length %d must exceed padding length %d",
			core.ErrShortSignal, len(signal), padlen)
	}

	ext := oddReflect(signal, padlen)

	forward := c.run(ext, ext[0])
	slices.Reverse(forward)
	backward := c.run(forward, forward[0])
	slices.Reverse(backward)

	out := make([]float64, len(signal))
	copy(out, backward[padlen:padlen+len(signal)])

	return out, nil
}

// run performs one filtering pass, priming the state as if an infinitely
// long constant input of amplitude x0 had preceded the signal.
func (c Coefficients) run(signal []float64, x0 float64) []float64 {
	out := make([]float64, len(signal))

	if c.IsFIR() {
		f := fir.New(c.taps)
		if x0 != 0 {
			f.Prime(x0)
		}
		f.ProcessBlockTo(out, signal)

		return out
	}

	chain := biquad.NewChain(c.sections)
	if x0 != 0 {
		chain.SetState(steadyState(c.sections, x0))
	}

	copy(out, signal)
	chain.ProcessBlock(out)

	return out
}

// steadyState returns the delay-line contents of each cascade section
// after an infinitely long constant input of amplitude x0. With the odd
// reflection starting at exactly x0, a pass primed this way has no
// startup transient.
func steadyState(sections []biquad.Coefficients, x0 float64) [][2]float64 {
	states := make([][2]float64, len(sections))
	for i, s := range sections {
		y0 := x0 * (s.B0 + s.B1 + s.B2) / (1 + s.A1 + s.A2)
		states[i] = [2]float64{
			(s.B1+s.B2)*x0 - (s.A1+s.A2)*y0,
			s.B2*x0 - s.A2*y0,
		}
		// The section's steady output drives the next section.
		x0 = y0
	}

	return states
}

// oddReflect extends signal by n samples on each end, rotating the edge
// samples by 180° about the end points: ext[i] = 2·x[0] - x[n-i] on the
// left and symmetrically on the right. The extension meets the signal
// with matching value and slope, so a primed filter sees no edge step.
// Requires len(signal) > n.
func oddReflect(signal []float64, n int) []float64 {
	last := len(signal) - 1
	ext := make([]float64, len(signal)+2*n)

	for i := 0; i < n; i++ {
		ext[i] = 2*signal[0] - signal[n-i]
	}
	copy(ext[n:], signal)
	for j := 0; j < n; j++ {
		ext[n+len(signal)+j] = 2*signal[last] - signal[last-1-j]
	}

	return ext
}
