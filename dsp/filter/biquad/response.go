package biquad

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^jw) of one
// section at the given frequency (Hz) and sample rate (Hz). Cascade
// responses are the product of their section responses; the design
// package evaluates full filters that way.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(c.B0, 0) + complex(c.B1, 0)*ejw + complex(c.B2, 0)*ej2w
	den := complex(1, 0) + complex(c.A1, 0)*ejw + complex(c.A2, 0)*ej2w
	return num / den
}

// MagnitudeSquared returns |H(f)|^2 using a closed-form expression that
// avoids complex exponentials. At a spectral null the numerator terms
// cancel; rounding can leave a tiny negative residue, which is clamped
// so callers can take logarithms.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*cw)*cw
	if num < 0 {
		num = 0
	}
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw
	return num / den
}
