package decon

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/seistools/tracedsp/dsp/conv"
	"github.com/seistools/tracedsp/dsp/core"
)

// EstimateWavelet estimates the embedded wavelet statistically: the
// first length lags of the signal's autocorrelation, peak-normalized.
// For white reflectivity the trace autocorrelation equals the wavelet
// autocorrelation, whose early lags carry the wavelet shape.
func EstimateWavelet(signal []float64, length int) ([]float64, error) {
	if err := validateSignal(signal); err != nil {
		return nil, err
	}
	if length < 1 {
		return nil, fmt.Errorf("%w: decon: wavelet length %d must be at least 1", core.ErrParameter, length)
	}
	if length > len(signal) {
		return nil, fmt.Errorf("%w: decon: wavelet length %d exceeds signal length %d", core.ErrShortSignal, length, len(signal))
	}
	return normalizePeak(autocorrelation(signal, length))
}

// MatchingWavelet estimates the wavelet by crosscorrelating the signal
// against a known reflector series, peak-normalized with same-mode
// centering. Where the reflector aligns with the data, the correlation
// rebuilds the wavelet around it.
func MatchingWavelet(signal, reflector []float64) ([]float64, error) {
	if err := validateSignal(signal); err != nil {
		return nil, err
	}
	if len(reflector) == 0 {
		return nil, fmt.Errorf("%w: decon: empty reflector", core.ErrParameter)
	}
	if len(reflector) > len(signal) {
		return nil, fmt.Errorf("%w: decon: reflector length %d exceeds signal length %d", core.ErrShortSignal, len(reflector), len(signal))
	}

	w, err := conv.CorrelateMode(signal, reflector, conv.ModeSame)
	if err != nil {
		return nil, err
	}
	return normalizePeak(w)
}

// normalizePeak scales to unit peak magnitude. An all-zero estimate
// has no wavelet in it to normalize.
func normalizePeak(w []float64) ([]float64, error) {
	peak := core.MaxAbs(w)
	if peak == 0 {
		return nil, fmt.Errorf("%w: decon: zero-energy wavelet estimate", core.ErrComputation)
	}

	out := make([]float64, len(w))
	vecmath.ScaleBlock(out, w, 1/peak)
	return out, nil
}
