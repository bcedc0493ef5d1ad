package decon

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/seistools/tracedsp/dsp/conv"
	"github.com/seistools/tracedsp/dsp/core"
)

// Spiking compresses the wavelet embedded in signal toward a spike: a
// least-squares inverse filter of filterLength taps is designed from
// the wavelet and applied causally. The wavelet is assumed minimum
// phase; noiseLevel is added to the zero-lag autocorrelation to keep
// the normal equations well conditioned.
func Spiking(signal, wavelet []float64, filterLength int, noiseLevel float64) ([]float64, error) {
	if err := validateSignal(signal); err != nil {
		return nil, err
	}
	inverse, err := SpikingFilter(wavelet, filterLength, noiseLevel)
	if err != nil {
		return nil, err
	}
	return applyCausal(signal, inverse)
}

// SpikingFilter designs the least-squares inverse of wavelet: the
// causal filter a of the given length minimizing the misfit between
// a*wavelet and a unit spike, from the Wiener-Levinson normal
// equations R a = e0.
func SpikingFilter(wavelet []float64, length int, noiseLevel float64) ([]float64, error) {
	if len(wavelet) == 0 {
		return nil, fmt.Errorf("%w: decon: empty wavelet", core.ErrParameter)
	}
	if length < 1 {
		return nil, fmt.Errorf("%w: decon: filter length %d must be at least 1", core.ErrParameter, length)
	}
	if err := validateNoise(noiseLevel); err != nil {
		return nil, err
	}

	r := autocorrelation(wavelet, length)
	r[0] += noiseLevel

	rhs := make([]float64, length)
	rhs[0] = 1
	return solveToeplitz(r, rhs)
}

// Predictive returns the prediction error of signal for the given gap:
// what a length-tap predictor reaching back gap samples or more cannot
// foresee. Periodic energy such as reverberations and multiples is
// predictable and drops out; arrivals inside the gap pass untouched.
func Predictive(signal []float64, gap, length int, noiseLevel float64) ([]float64, error) {
	f, err := PredictionFilter(signal, gap, length, noiseLevel)
	if err != nil {
		return nil, err
	}
	return applyCausal(signal, f)
}

// PredictionFilter designs a gap-deconvolution filter from the
// signal's own autocorrelation: prediction taps g estimating x[i] from
// x[i-gap], x[i-gap-1], ..., returned in error form
//
//	[1, 0 x (gap-1), -g[0], ..., -g[length-1]]
//
// so that applying it causally yields the prediction error directly.
// A gap of 1 makes it the usual whitening (prediction-error) filter.
func PredictionFilter(signal []float64, gap, length int, noiseLevel float64) ([]float64, error) {
	if err := validateSignal(signal); err != nil {
		return nil, err
	}
	if gap < 1 {
		return nil, fmt.Errorf("%w: decon: prediction gap %d must be at least 1", core.ErrParameter, gap)
	}
	if length < 1 {
		return nil, fmt.Errorf("%w: decon: filter length %d must be at least 1", core.ErrParameter, length)
	}
	if err := validateNoise(noiseLevel); err != nil {
		return nil, err
	}
	if gap+length > len(signal) {
		return nil, fmt.Errorf("%w: decon: gap %d plus filter length %d needs %d autocorrelation lags, signal has %d samples",
			core.ErrShortSignal, gap, length, gap+length, len(signal))
	}

	lags := autocorrelation(signal, gap+length)

	r := make([]float64, length)
	copy(r, lags[:length])
	r[0] += noiseLevel

	g, err := solveToeplitz(r, lags[gap:])
	if err != nil {
		return nil, err
	}

	out := make([]float64, gap+length)
	out[0] = 1
	for k, v := range g {
		out[gap+k] = -v
	}
	return out, nil
}

// Wiener deconvolves signal by the wavelet in the frequency domain:
// the spectrum is multiplied by conj(W)/(|W|²+noiseLevel), the
// regularized least-squares inverse of the wavelet response. Larger
// noise levels trade resolution for noise suppression; noiseLevel must
// be strictly positive since it alone guards spectral nulls.
func Wiener(signal, wavelet []float64, noiseLevel float64) ([]float64, error) {
	if err := validateSignal(signal); err != nil {
		return nil, err
	}
	if len(wavelet) == 0 {
		return nil, fmt.Errorf("%w: decon: empty wavelet", core.ErrParameter)
	}
	if len(wavelet) > len(signal) {
		return nil, fmt.Errorf("%w: decon: wavelet length %d exceeds signal length %d", core.ErrShortSignal, len(wavelet), len(signal))
	}
	if noiseLevel <= 0 || math.IsNaN(noiseLevel) || math.IsInf(noiseLevel, 0) {
		return nil, fmt.Errorf("%w: decon: noise level %g must be positive and finite", core.ErrParameter, noiseLevel)
	}

	fft := fourier.NewFFT(len(signal))
	filter := wienerFilterSpec(fft, wavelet, len(signal), noiseLevel)
	return applySpectrum(fft, signal, filter), nil
}

// Correlate crosscorrelates signal with a pilot, trimmed to the signal
// length with same-mode centering. For a vibroseis record this is the
// matched filter: every sweep in the data collapses to the pilot's
// autocorrelation (Klauder) wavelet at its onset.
func Correlate(signal, pilot []float64) ([]float64, error) {
	if err := validateSignal(signal); err != nil {
		return nil, err
	}
	if len(pilot) == 0 {
		return nil, fmt.Errorf("%w: decon: empty pilot", core.ErrParameter)
	}
	if len(pilot) > len(signal) {
		return nil, fmt.Errorf("%w: decon: pilot length %d exceeds signal length %d", core.ErrShortSignal, len(pilot), len(signal))
	}
	return conv.CorrelateMode(signal, pilot, conv.ModeSame)
}

// wienerFilterSpec pads the wavelet to length n and returns the
// regularized inverse on the half spectrum of a real transform.
func wienerFilterSpec(fft *fourier.FFT, wavelet []float64, n int, noiseLevel float64) []complex128 {
	padded := make([]float64, n)
	copy(padded, wavelet)

	spec := fft.Coefficients(nil, padded)
	for k, w := range spec {
		power := real(w)*real(w) + imag(w)*imag(w)
		spec[k] = cmplx.Conj(w) / complex(power+noiseLevel, 0)
	}
	return spec
}

// applySpectrum multiplies the signal's half spectrum by filter and
// inverts. gonum's Sequence is unnormalized, so scale by 1/n.
func applySpectrum(fft *fourier.FFT, signal []float64, filter []complex128) []float64 {
	spec := fft.Coefficients(nil, signal)
	for k := range spec {
		spec[k] *= filter[k]
	}

	out := fft.Sequence(nil, spec)
	scale := 1 / float64(len(signal))
	for i := range out {
		out[i] *= scale
	}
	return out
}

// applyCausal runs a causal FIR filter: the full convolution truncated
// to the signal length, so sample i depends only on inputs at or
// before i.
func applyCausal(signal, filter []float64) ([]float64, error) {
	full, err := conv.ConvolveMode(signal, filter, conv.ModeFull)
	if err != nil {
		return nil, err
	}
	return full[:len(signal)], nil
}

func reverse(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[len(x)-1-i] = v
	}
	return out
}

func validateSignal(signal []float64) error {
	if len(signal) == 0 {
		return fmt.Errorf("%w: decon: empty signal", core.ErrParameter)
	}
	return nil
}

func validateNoise(noiseLevel float64) error {
	if noiseLevel < 0 || math.IsNaN(noiseLevel) || math.IsInf(noiseLevel, 0) {
		return fmt.Errorf("%w: decon: noise level %g must be non-negative and finite", core.ErrParameter, noiseLevel)
	}
	return nil
}
