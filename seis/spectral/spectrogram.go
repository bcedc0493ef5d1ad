package spectral

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/seistools/tracedsp/dsp/core"
	"github.com/seistools/tracedsp/dsp/spectrum"
	"github.com/seistools/tracedsp/dsp/window"
)

// Spectrogram is a short-time power density map. Power is indexed
// [segment][frequency bin]: row j holds the one-sided PSD of the
// segment centered at Times[j], on the grid in Frequencies.
type Spectrogram struct {
	Frequencies []float64
	Times       []float64
	Power       [][]float64
}

// NewSpectrogram slices the signal into tapered, overlapping windows
// and estimates a PSD for each. The window defaults to 0.1 s of
// symmetric Hann with 50% overlap; the transform length is the next
// power of two above the window, with a floor of 256 bins.
func NewSpectrogram(signal []float64, sampleRate float64, opts ...Option) (Spectrogram, error) {
	if err := validateSignal(signal, sampleRate); err != nil {
		return Spectrogram{}, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	segLen := int(cfg.windowDuration * sampleRate)
	if segLen < 2 {
		return Spectrogram{}, fmt.Errorf("%w: spectral: window duration %g s spans %d samples at %g Hz, need at least 2",
			core.ErrParameter, cfg.windowDuration, segLen, sampleRate)
	}
	if segLen > len(signal) {
		return Spectrogram{}, fmt.Errorf("%w: spectral: window of %d samples exceeds signal length %d",
			core.ErrShortSignal, segLen, len(signal))
	}
	step := segLen - int(cfg.overlap*float64(segLen))

	win := window.Generate(cfg.windowType, segLen)
	sumW2 := 0.0
	for _, w := range win {
		sumW2 += w * w
	}

	nfft := core.NextPow2(segLen)
	if nfft < 256 {
		nfft = 256
	}
	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return Spectrogram{}, fmt.Errorf("spectral: %w", err)
	}

	var times []float64
	var power [][]float64
	for start := 0; start+segLen <= len(signal); start += step {
		seg := detrended(signal[start : start+segLen])
		if err := window.ApplyCoefficientsInPlace(seg, win); err != nil {
			return Spectrogram{}, err
		}
		row, err := segmentDensity(seg, sumW2, nfft, sampleRate, plan)
		if err != nil {
			return Spectrogram{}, err
		}
		times = append(times, (float64(segLen)/2+float64(start))/sampleRate)
		power = append(power, row)
	}

	return Spectrogram{
		Frequencies: spectrum.FrequencyAxis(nfft, sampleRate),
		Times:       times,
		Power:       power,
	}, nil
}

// PowerDB converts the power map to decibels, adding floor to every
// bin first so silent cells stay finite. DefaultPowerFloor gives the
// conventional -120 dB floor.
func (s Spectrogram) PowerDB(floor float64) [][]float64 {
	out := make([][]float64, len(s.Power))
	for j, row := range s.Power {
		dst := make([]float64, len(row))
		for k, p := range row {
			dst[k] = core.LinearPowerToDB(p + floor)
		}
		out[j] = dst
	}
	return out
}
