package decon

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/seistools/tracedsp/dsp/conv"
	"github.com/seistools/tracedsp/dsp/core"
	"github.com/seistools/tracedsp/trace"
)

// SpikingSection applies spiking deconvolution to every trace. The
// inverse filter is designed once from the wavelet and shared.
func SpikingSection(sec trace.Section, wavelet []float64, filterLength int, noiseLevel float64) (trace.Section, error) {
	inverse, err := SpikingFilter(wavelet, filterLength, noiseLevel)
	if err != nil {
		return trace.Section{}, err
	}
	return sec.MapTraces(func(samples []float64) ([]float64, error) {
		return applyCausal(samples, inverse)
	})
}

// PredictiveSection gap-deconvolves every trace against its own
// autocorrelation, the usual practice when multiples vary across the
// section.
func PredictiveSection(sec trace.Section, gap, length int, noiseLevel float64) (trace.Section, error) {
	return sec.MapTraces(func(samples []float64) ([]float64, error) {
		return Predictive(samples, gap, length, noiseLevel)
	})
}

// WienerSection spectrally deconvolves every trace by one wavelet. The
// filter spectrum is built once for the section's sample count.
func WienerSection(sec trace.Section, wavelet []float64, noiseLevel float64) (trace.Section, error) {
	if len(wavelet) == 0 {
		return trace.Section{}, fmt.Errorf("%w: decon: empty wavelet", core.ErrParameter)
	}
	if noiseLevel <= 0 || math.IsNaN(noiseLevel) || math.IsInf(noiseLevel, 0) {
		return trace.Section{}, fmt.Errorf("%w: decon: noise level %g must be positive and finite", core.ErrParameter, noiseLevel)
	}
	if sec.NumTraces() > 0 && len(wavelet) > sec.NumSamples() {
		return trace.Section{}, fmt.Errorf("%w: decon: wavelet length %d exceeds trace length %d", core.ErrShortSignal, len(wavelet), sec.NumSamples())
	}

	var fft *fourier.FFT
	var filter []complex128
	if sec.NumTraces() > 0 {
		fft = fourier.NewFFT(sec.NumSamples())
		filter = wienerFilterSpec(fft, wavelet, sec.NumSamples(), noiseLevel)
	}
	return sec.MapTraces(func(samples []float64) ([]float64, error) {
		return applySpectrum(fft, samples, filter), nil
	})
}

// CorrelateSection matched-filters every trace with one pilot sweep.
// The pilot spectrum is transformed once and swept across the section
// by a shared overlap-add convolver.
func CorrelateSection(sec trace.Section, pilot []float64) (trace.Section, error) {
	if len(pilot) == 0 {
		return trace.Section{}, fmt.Errorf("%w: decon: empty pilot", core.ErrParameter)
	}
	if sec.NumTraces() > 0 && len(pilot) > sec.NumSamples() {
		return trace.Section{}, fmt.Errorf("%w: decon: pilot length %d exceeds trace length %d", core.ErrShortSignal, len(pilot), sec.NumSamples())
	}

	oa, err := conv.NewOverlapAdd(reverse(pilot), 0)
	if err != nil {
		return trace.Section{}, err
	}
	return sec.MapTraces(func(samples []float64) ([]float64, error) {
		return oa.ProcessMode(samples, conv.ModeSame)
	})
}
