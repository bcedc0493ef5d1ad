package design

import (
	"math"
	"math/cmplx"

	"github.com/seistools/tracedsp/dsp/core"
	"github.com/seistools/tracedsp/dsp/filter/biquad"
)

// Coefficients holds a designed filter in either of two shapes: an IIR
// filter as a cascade of second-order sections, or an FIR filter as a tap
// sequence. The zero value is empty and applies as an identity error.
//
// Coefficients are immutable once designed: accessors return copies and
// application methods never modify the receiver, so one set may be shared
// across goroutines filtering different traces.
type Coefficients struct {
	sections []biquad.Coefficients
	taps     []float64
}

// NewIIR builds IIR coefficients from second-order sections. The slice is
// copied.
func NewIIR(sections []biquad.Coefficients) Coefficients {
	s := make([]biquad.Coefficients, len(sections))
	copy(s, sections)

	return Coefficients{sections: s}
}

// NewFIR builds FIR coefficients from a tap sequence. The slice is copied.
func NewFIR(taps []float64) Coefficients {
	t := make([]float64, len(taps))
	copy(t, taps)

	return Coefficients{taps: t}
}

// IsIIR reports whether the coefficients describe an IIR cascade.
func (c Coefficients) IsIIR() bool {
	return len(c.sections) > 0
}

// IsFIR reports whether the coefficients describe an FIR tap sequence.
func (c Coefficients) IsFIR() bool {
	return len(c.taps) > 0
}

// NumSections returns the number of second-order sections (0 for FIR).
func (c Coefficients) NumSections() int {
	return len(c.sections)
}

// Sections returns a copy of the second-order sections, or nil for FIR.
func (c Coefficients) Sections() []biquad.Coefficients {
	if len(c.sections) == 0 {
		return nil
	}

	out := make([]biquad.Coefficients, len(c.sections))
	copy(out, c.sections)

	return out
}

// Taps returns a copy of the FIR tap weights, or nil for IIR.
func (c Coefficients) Taps() []float64 {
	if len(c.taps) == 0 {
		return nil
	}

	out := make([]float64, len(c.taps))
	copy(out, c.taps)

	return out
}

// Order returns the effective filter order: the sum of section orders for
// IIR (2 per biquad, 1 per first-order tail), or taps-1 for FIR.
func (c Coefficients) Order() int {
	if c.IsFIR() {
		return len(c.taps) - 1
	}

	order := 0
	for _, s := range c.sections {
		if s.B2 == 0 && s.A2 == 0 {
			order++
		} else {
			order += 2
		}
	}

	return order
}

// Feedforward returns the flattened numerator polynomial b[0..n] in powers
// of z^-1: the product of all section numerators for IIR, or the taps for
// FIR. The result is a fresh slice.
func (c Coefficients) Feedforward() []float64 {
	if c.IsFIR() {
		return c.Taps()
	}

	poly := []float64{1}
	for _, s := range c.sections {
		poly = polyMul(poly, trimPoly([]float64{s.B0, s.B1, s.B2}))
	}

	return poly
}

// Feedback returns the flattened denominator polynomial a[0..n] in powers
// of z^-1 with a[0] = 1: the product of all section denominators for IIR,
// or [1] for FIR. The result is a fresh slice.
func (c Coefficients) Feedback() []float64 {
	if c.IsFIR() {
		return []float64{1}
	}

	poly := []float64{1}
	for _, s := range c.sections {
		poly = polyMul(poly, trimPoly([]float64{1, s.A1, s.A2}))
	}

	return poly
}

// Response evaluates the complex frequency response at freq (Hz) for data
// sampled at sampleRate.
func (c Coefficients) Response(freq, sampleRate float64) complex128 {
	if c.IsFIR() {
		w := 2 * math.Pi * freq / sampleRate

		h := complex(0, 0)
		for k, tap := range c.taps {
			h += complex(tap, 0) * cmplx.Exp(complex(0, -w*float64(k)))
		}

		return h
	}

	h := complex(1, 0)
	for _, s := range c.sections {
		h *= s.Response(freq, sampleRate)
	}

	return h
}

// MagnitudeDB returns the magnitude response in decibels at freq (Hz).
// IIR cascades use the per-section closed form, which needs no complex
// exponentials.
func (c Coefficients) MagnitudeDB(freq, sampleRate float64) float64 {
	if c.IsIIR() {
		m2 := 1.0
		for _, s := range c.sections {
			m2 *= s.MagnitudeSquared(freq, sampleRate)
		}

		return core.LinearPowerToDB(m2)
	}

	return core.LinearToDB(cmplx.Abs(c.Response(freq, sampleRate)))
}

// Stable reports whether every pole lies strictly inside the unit circle.
// FIR filters have no poles and are always stable.
func (c Coefficients) Stable() bool {
	if c.IsFIR() {
		return true
	}

	return biquad.Stable(c.sections)
}

func (c Coefficients) allFinite() bool {
	for _, s := range c.sections {
		for _, v := range [5]float64{s.B0, s.B1, s.B2, s.A1, s.A2} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	for _, t := range c.taps {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return false
		}
	}

	return true
}

// polyMul multiplies two polynomials given as coefficient slices in powers
// of z^-1.
func polyMul(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}

	return out
}

// trimPoly drops trailing zero coefficients so first-order sections
// contribute degree-1 factors.
func trimPoly(p []float64) []float64 {
	n := len(p)
	for n > 1 && p[n-1] == 0 {
		n--
	}

	return p[:n]
}
