package design

import (
	"math"

	"github.com/seistools/tracedsp/dsp/core"
	"github.com/seistools/tracedsp/dsp/filter/biquad"
)

// Chebyshev2 designs an inverse Chebyshev (Type II) IIR filter and returns
// it as a cascade of second-order sections. The passband is maximally flat
// and the stopband is equiripple at -rippleDB: the magnitude response is
// exactly -rippleDB dB at every cutoff frequency, which marks the stopband
// edge rather than the -3 dB point.
//
// Lowpass and highpass take a single cutoff; bandpass takes
// [freqmin, freqmax] and is realized as a highpass at freqmin in series
// with a lowpass at freqmax, each at the requested order.
func Chebyshev2(band Band, order int, rippleDB float64, cutoffs []float64, sampleRate float64) (Coefficients, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return Coefficients{}, err
	}
	if err := validateOrder(order); err != nil {
		return Coefficients{}, err
	}
	if err := validateRipple(rippleDB); err != nil {
		return Coefficients{}, err
	}
	if err := validateCutoffs(band, cutoffs, sampleRate); err != nil {
		return Coefficients{}, err
	}

	mu := stopbandMu(order, rippleDB)

	var sections []biquad.Coefficients
	switch band {
	case BandLowpass:
		sections = cheby2Lowpass(order, cutoffs[0], mu, sampleRate)
	case BandHighpass:
		sections = cheby2Highpass(order, cutoffs[0], mu, sampleRate)
	case BandBandpass:
		sections = append(
			cheby2Highpass(order, cutoffs[0], mu, sampleRate),
			cheby2Lowpass(order, cutoffs[1], mu, sampleRate)...,
		)
	}

	c := NewIIR(sections)
	if err := checkSynthesis(c); err != nil {
		return Coefficients{}, err
	}

	return c, nil
}

// stopbandMu converts a stopband attenuation in dB to the prototype
// parameter mu = asinh(1/eps)/order, where eps places the equiripple floor
// at -rippleDB: eps = 1/sqrt(10^(rippleDB/10) - 1).
func stopbandMu(order int, rippleDB float64) float64 {
	return math.Asinh(math.Sqrt(core.DBPowerToLinear(rippleDB)-1)) / float64(order)
}

// cheby2Pair returns the analog prototype for conjugate pair i of an
// order-N Type II filter: the inverted Type I pole (sigma, omega) and the
// imaginary-axis zero frequency. The prototype is normalized so the
// stopband edge sits at 1 rad/s.
func cheby2Pair(order, i int, mu float64) (sigma, omega, zero float64) {
	phi := math.Pi * float64(2*i+1) / float64(2*order)

	// Type I pole, then reciprocal to invert the response.
	s1 := math.Sinh(mu) * math.Sin(phi)
	w1 := math.Cosh(mu) * math.Cos(phi)
	magSq := s1*s1 + w1*w1

	return s1 / magSq, w1 / magSq, 1 / math.Cos(phi)
}

func cheby2Lowpass(order int, freq, mu, sampleRate float64) []biquad.Coefficients {
	wc := prewarp(freq, sampleRate)
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	for i := 0; i < order/2; i++ {
		sigma, omega, zero := cheby2Pair(order, i, mu)

		// Scale the prototype to the pre-warped edge.
		wpr := wc * sigma
		wp2 := wpr*wpr + (wc*omega)*(wc*omega)
		wz2 := (wc * zero) * (wc * zero)

		// Bilinear transform s -> (z-1)/(z+1) of
		// (s² + wz²) / (s² + 2·wpr·s + wp2).
		sections = append(sections, bilinearSection(wz2, wpr, wp2, dcUnity))
	}

	if order%2 == 1 {
		sections = append(sections, cheby2FirstOrderLowpass(wc, mu))
	}

	return sections
}

func cheby2Highpass(order int, freq, mu, sampleRate float64) []biquad.Coefficients {
	wc := prewarp(freq, sampleRate)
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	for i := 0; i < order/2; i++ {
		sigma, omega, zero := cheby2Pair(order, i, mu)

		// LP-to-HP transform s -> wc/s maps the inverted pole back onto
		// the Type I pole scaled by wc, and the zero onto wc/zero.
		hpSigma := wc * sigma / (sigma*sigma + omega*omega)
		hpOmega := wc * omega / (sigma*sigma + omega*omega)
		hp2 := hpSigma*hpSigma + hpOmega*hpOmega
		wz2 := (wc / zero) * (wc / zero)

		sections = append(sections, bilinearSection(wz2, hpSigma, hp2, nyquistUnity))
	}

	if order%2 == 1 {
		sections = append(sections, cheby2FirstOrderHighpass(wc, mu))
	}

	return sections
}

type gainReference int

const (
	dcUnity gainReference = iota
	nyquistUnity
)

// bilinearSection maps the analog section (s² + wz2)/(s² + 2·sp·s + pp2)
// through s -> (z-1)/(z+1) and normalizes the result to unity gain at the
// given reference frequency (z=1 for DC, z=-1 for Nyquist).
func bilinearSection(wz2, sp, pp2 float64, ref gainReference) biquad.Coefficients {
	bn0 := 1 + wz2
	bn1 := -2 + 2*wz2
	bn2 := 1 + wz2

	ad0 := 1 + 2*sp + pp2
	ad1 := -2 + 2*pp2
	ad2 := 1 - 2*sp + pp2

	c := normalizeSection(bn0, bn1, bn2, ad0, ad1, ad2)

	var gain float64
	switch ref {
	case dcUnity:
		gain = (c.B0 + c.B1 + c.B2) / (1 + c.A1 + c.A2)
	case nyquistUnity:
		gain = (c.B0 - c.B1 + c.B2) / (1 - c.A1 + c.A2)
	}
	c.B0 /= gain
	c.B1 /= gain
	c.B2 /= gain

	return c
}
