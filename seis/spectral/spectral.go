package spectral

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/seistools/tracedsp/dsp/core"
	"github.com/seistools/tracedsp/dsp/spectrum"
	"github.com/seistools/tracedsp/dsp/window"
)

// Defaults for the estimators.
const (
	// DefaultSegmentLength is the Welch segment length in samples.
	DefaultSegmentLength = 256

	// DefaultWindowDuration is the spectrogram window length in seconds.
	DefaultWindowDuration = 0.1

	// DefaultOverlap is the fraction of overlap between segments.
	DefaultOverlap = 0.5

	// DefaultPowerFloor keeps the log out of -Inf when converting power
	// to decibels.
	DefaultPowerFloor = 1e-12
)

type config struct {
	segmentLength  int
	windowDuration float64
	overlap        float64
	windowType     window.Type
}

func defaultConfig() config {
	return config{
		segmentLength:  DefaultSegmentLength,
		windowDuration: DefaultWindowDuration,
		overlap:        DefaultOverlap,
		windowType:     window.TypeHann,
	}
}

// Option adjusts an estimator. Out-of-range values are ignored.
type Option func(*config)

// WithSegmentLength sets the Welch segment length in samples.
func WithSegmentLength(samples int) Option {
	return func(cfg *config) {
		if samples >= 2 {
			cfg.segmentLength = samples
		}
	}
}

// WithWindowDuration sets the spectrogram window length in seconds.
func WithWindowDuration(seconds float64) Option {
	return func(cfg *config) {
		if seconds > 0 && !math.IsInf(seconds, 0) {
			cfg.windowDuration = seconds
		}
	}
}

// WithOverlap sets the fraction of overlap between neighboring
// segments, in [0, 1).
func WithOverlap(fraction float64) Option {
	return func(cfg *config) {
		if fraction >= 0 && fraction < 1 {
			cfg.overlap = fraction
		}
	}
}

// WithWindow selects the taper applied to each segment.
func WithWindow(t window.Type) Option {
	return func(cfg *config) {
		cfg.windowType = t
	}
}

// PSD is a one-sided power spectral density: Power[k] is the density in
// amplitude²/Hz at Frequencies[k], for frequencies from DC to Nyquist.
type PSD struct {
	Frequencies []float64
	Power       []float64
}

// Periodogram estimates the PSD of the whole signal at once: mean
// removed, transformed at the next power of two, magnitude squared and
// scaled to density. Integrating Power over frequency (sum times bin
// width) recovers the mean power of the detrended signal.
func Periodogram(signal []float64, sampleRate float64) (PSD, error) {
	if err := validateSignal(signal, sampleRate); err != nil {
		return PSD{}, err
	}

	seg := detrended(signal)
	nfft := core.NextPow2(len(seg))
	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return PSD{}, fmt.Errorf("spectral: %w", err)
	}

	// Boxcar window: the density scale reduces to 1/(fs*N).
	power, err := segmentDensity(seg, float64(len(seg)), nfft, sampleRate, plan)
	if err != nil {
		return PSD{}, err
	}
	return PSD{Frequencies: spectrum.FrequencyAxis(nfft, sampleRate), Power: power}, nil
}

// Welch estimates the PSD by averaging periodograms of overlapping,
// tapered segments. Segments default to 256 samples with 50% overlap
// and a periodic Hann taper; signals shorter than the segment length
// are treated as a single segment. The trailing part of the signal that
// does not fill a whole segment is dropped.
func Welch(signal []float64, sampleRate float64, opts ...Option) (PSD, error) {
	if err := validateSignal(signal, sampleRate); err != nil {
		return PSD{}, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	segLen := cfg.segmentLength
	if segLen > len(signal) {
		segLen = len(signal)
	}
	step := segLen - int(cfg.overlap*float64(segLen))

	win := window.Generate(cfg.windowType, segLen, window.WithPeriodic())
	sumW2 := 0.0
	for _, w := range win {
		sumW2 += w * w
	}

	nfft := core.NextPow2(segLen)
	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return PSD{}, fmt.Errorf("spectral: %w", err)
	}

	avg := make([]float64, nfft/2+1)
	count := 0
	for start := 0; start+segLen <= len(signal); start += step {
		seg := detrended(signal[start : start+segLen])
		if err := window.ApplyCoefficientsInPlace(seg, win); err != nil {
			return PSD{}, err
		}
		power, err := segmentDensity(seg, sumW2, nfft, sampleRate, plan)
		if err != nil {
			return PSD{}, err
		}
		for k, p := range power {
			avg[k] += p
		}
		count++
	}
	for k := range avg {
		avg[k] /= float64(count)
	}
	return PSD{Frequencies: spectrum.FrequencyAxis(nfft, sampleRate), Power: avg}, nil
}

// detrended returns a copy of seg with its mean removed.
func detrended(seg []float64) []float64 {
	mean := 0.0
	for _, v := range seg {
		mean += v
	}
	mean /= float64(len(seg))

	out := make([]float64, len(seg))
	for i, v := range seg {
		out[i] = v - mean
	}
	return out
}

// segmentDensity transforms one already-tapered segment zero-padded to
// nfft and returns the one-sided density |X|²/(fs·Σw²) with interior
// bins doubled. sumW2 must match the taper the caller applied; for an
// untapered segment it is the segment length.
func segmentDensity(seg []float64, sumW2 float64, nfft int, sampleRate float64, plan *algofft.Plan[complex128]) ([]float64, error) {
	in := make([]complex128, nfft)
	for i, v := range seg {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, nfft)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectral: %w", err)
	}

	scale := 1 / (sampleRate * sumW2)
	half := nfft/2 + 1
	power := make([]float64, half)
	for k := 0; k < half; k++ {
		re, im := real(out[k]), imag(out[k])
		p := (re*re + im*im) * scale
		if k != 0 && k != nfft/2 {
			p *= 2
		}
		power[k] = p
	}
	return power, nil
}

func validateSignal(signal []float64, sampleRate float64) error {
	if len(signal) < 2 {
		return fmt.Errorf("%w: spectral: need at least 2 samples, got %d", core.ErrParameter, len(signal))
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: spectral: sample rate %g Hz must be positive and finite", core.ErrParameter, sampleRate)
	}
	return nil
}
