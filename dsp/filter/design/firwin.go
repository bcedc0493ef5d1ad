package design

import (
	"fmt"
	"math"

	"github.com/seistools/tracedsp/dsp/core"
	"github.com/seistools/tracedsp/dsp/window"
)

// FIRWindow designs a linear-phase FIR filter by the windowed-sinc method.
// The ideal band response is sampled around the tap midpoint, multiplied by
// the chosen window, and scaled to unity gain at a band reference: DC for
// lowpass, Nyquist for highpass, and the band center for bandpass.
//
// Highpass designs require an odd tap count, since an even-length
// symmetric filter has a forced null at Nyquist.
func FIRWindow(band Band, numTaps int, cutoffs []float64, sampleRate float64, win window.Type) (Coefficients, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return Coefficients{}, err
	}
	if err := validateTaps(band, numTaps); err != nil {
		return Coefficients{}, err
	}
	if err := validateCutoffs(band, cutoffs, sampleRate); err != nil {
		return Coefficients{}, err
	}

	return firWindowed(band, numTaps, cutoffs, sampleRate, window.Generate(win, numTaps))
}

// FIRKaiser designs a windowed-sinc FIR filter with a Kaiser window of the
// given beta. Use window.KaiserBetaForAttenuation to derive beta from a
// target stopband attenuation.
func FIRKaiser(band Band, numTaps int, cutoffs []float64, sampleRate, beta float64) (Coefficients, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return Coefficients{}, err
	}
	if err := validateTaps(band, numTaps); err != nil {
		return Coefficients{}, err
	}
	if err := validateCutoffs(band, cutoffs, sampleRate); err != nil {
		return Coefficients{}, err
	}

	win, err := window.Kaiser(numTaps, beta)
	if err != nil {
		return Coefficients{}, fmt.Errorf("design: %w", err)
	}

	return firWindowed(band, numTaps, cutoffs, sampleRate, win)
}

// FIRZeroPhaseBandpass designs a Blackman-Harris windowed-sinc bandpass
// intended for forward-backward application with ApplyZeroPhase, where the
// window's deep sidelobes are squared by the two passes.
func FIRZeroPhaseBandpass(numTaps int, freqMin, freqMax, sampleRate float64) (Coefficients, error) {
	return FIRWindow(BandBandpass, numTaps, []float64{freqMin, freqMax}, sampleRate, window.TypeBlackmanHarris)
}

func firWindowed(band Band, numTaps int, cutoffs []float64, sampleRate float64, win []float64) (Coefficients, error) {
	nyq := core.Nyquist(sampleRate)

	var left, right float64
	switch band {
	case BandLowpass:
		left, right = 0, cutoffs[0]/nyq
	case BandHighpass:
		left, right = cutoffs[0]/nyq, 1
	case BandBandpass:
		left, right = cutoffs[0]/nyq, cutoffs[1]/nyq
	}

	mid := 0.5 * float64(numTaps-1)
	taps := make([]float64, numTaps)
	for k := range taps {
		m := float64(k) - mid
		taps[k] = right*sinc(right*m) - left*sinc(left*m)
	}
	if err := window.ApplyCoefficientsInPlace(taps, win); err != nil {
		return Coefficients{}, fmt.Errorf("design: %w", err)
	}

	// Unity gain at the band reference frequency.
	var ref float64
	switch {
	case left == 0:
		ref = 0
	case right == 1:
		ref = 1
	default:
		ref = 0.5 * (left + right)
	}
	var sum float64
	for k := range taps {
		sum += taps[k] * math.Cos(math.Pi*(float64(k)-mid)*ref)
	}
	for k := range taps {
		taps[k] /= sum
	}

	c := NewFIR(taps)
	if err := checkSynthesis(c); err != nil {
		return Coefficients{}, err
	}

	return c, nil
}

// sinc is the normalized sinc function sin(πx)/(πx).
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	return math.Sin(math.Pi*x) / (math.Pi * x)
}
