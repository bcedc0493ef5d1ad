package design

import (
	"math"

	"github.com/seistools/tracedsp/dsp/filter/biquad"
)

// Second-order section primitives shared by the IIR designers. Every helper
// here assumes already-validated inputs (0 < freq < Nyquist, sampleRate > 0);
// degenerate coefficients are caught afterwards by checkSynthesis.

// butterworthQ returns the quality factor for cascade section index of a
// Butterworth filter: Q = 1/(2 sin(π(2i+1)/(2N))).
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	return 1 / (2 * math.Sin(theta))
}

// prewarp returns the bilinear frequency warping factor tan(π·freq/sampleRate),
// which maps the analog prototype edge exactly onto the requested digital
// frequency.
func prewarp(freq, sampleRate float64) float64 {
	return math.Tan(math.Pi * freq / sampleRate)
}

// sectionLowpass designs one lowpass biquad at freq with quality q: the
// bilinear transform of the analog prototype 1/(s² + s/Q + 1) scaled to the
// pre-warped cutoff.
func sectionLowpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	return normalizeSection(
		(1-cw)/2, 1-cw, (1-cw)/2,
		1+alpha, -2*cw, 1-alpha,
	)
}

// sectionHighpass designs one highpass biquad at freq with quality q.
func sectionHighpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	return normalizeSection(
		(1+cw)/2, -(1 + cw), (1+cw)/2,
		1+alpha, -2*cw, 1-alpha,
	)
}

// sectionNotch designs a unity-gain notch biquad centered at freq with
// quality q.
func sectionNotch(freq, q, sampleRate float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	return normalizeSection(
		1, -2*cw, 1,
		1+alpha, -2*cw, 1-alpha,
	)
}

// firstOrderLowpass returns the single-pole lowpass tail used by odd-order
// Butterworth cascades.
func firstOrderLowpass(freq, sampleRate float64) biquad.Coefficients {
	k := prewarp(freq, sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

// firstOrderHighpass returns the single-pole highpass tail used by
// odd-order Butterworth cascades.
func firstOrderHighpass(freq, sampleRate float64) biquad.Coefficients {
	k := prewarp(freq, sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}

// cheby2FirstOrderLowpass returns the real-pole tail of an odd-order
// Type II lowpass: the inverted prototype pole at -1/sinh(mu), scaled by
// the pre-warped stopband edge wc.
func cheby2FirstOrderLowpass(wc, mu float64) biquad.Coefficients {
	sp := wc / math.Sinh(mu)
	g := sp / (1 + sp)

	return biquad.Coefficients{
		B0: g,
		B1: g,
		A1: (sp - 1) / (1 + sp),
	}
}

// cheby2FirstOrderHighpass returns the real-pole tail of an odd-order
// Type II highpass after the LP-to-HP transform s -> wc/s.
func cheby2FirstOrderHighpass(wc, mu float64) biquad.Coefficients {
	sp := wc * math.Sinh(mu)
	g := 1 / (1 + sp)

	return biquad.Coefficients{
		B0: g,
		B1: -g,
		A1: (sp - 1) / (1 + sp),
	}
}

func normalizeSection(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
