package attrib

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/seistools/tracedsp/dsp/core"
	"github.com/seistools/tracedsp/dsp/spectrum"
	"github.com/seistools/tracedsp/trace"
)

// Attributes holds the per-sample instantaneous attributes of one trace.
// All three slices have the length of the input signal.
type Attributes struct {
	// Amplitude is the envelope: the magnitude of the analytic signal.
	Amplitude []float64
	// Phase is the analytic-signal argument, wrapped into (-pi, pi].
	Phase []float64
	// Frequency is the derivative of the unwrapped phase in Hz. The
	// first sample repeats the first derivative value so the slice
	// aligns with the input.
	Frequency []float64
}

// Compute derives all three instantaneous attributes of signal at once.
// A signal needs at least two samples to differentiate the phase;
// shorter input returns an error wrapping core.ErrShortSignal.
func Compute(signal []float64, sampleRate float64) (Attributes, error) {
	if err := validate(signal, sampleRate); err != nil {
		return Attributes{}, err
	}

	analytic, err := AnalyticSignal(signal)
	if err != nil {
		return Attributes{}, err
	}

	phase := spectrum.Phase(analytic)
	return Attributes{
		Amplitude: spectrum.Magnitude(analytic),
		Phase:     phase,
		Frequency: instantaneousFrequency(phase, sampleRate),
	}, nil
}

// AnalyticSignal returns the complex analytic extension of signal: its
// spectrum with the negative-frequency half removed and the strictly
// positive bins doubled, transformed back to time. The real part
// reproduces the input; the imaginary part is its Hilbert transform.
func AnalyticSignal(signal []float64) ([]complex128, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("%w: attrib: empty signal", core.ErrParameter)
	}

	n := len(signal)
	buf := make([]complex128, n)
	for i, v := range signal {
		buf[i] = complex(v, 0)
	}

	fft := fourier.NewCmplxFFT(n)
	spec := fft.Coefficients(make([]complex128, n), buf)

	// DC keeps its weight, and so does the shared Nyquist bin on even
	// lengths; everything between them doubles, everything above zeroes.
	half := n / 2
	for k := 1; k < half; k++ {
		spec[k] *= 2
	}
	if n%2 != 0 && half >= 1 {
		spec[half] *= 2
	}
	for k := half + 1; k < n; k++ {
		spec[k] = 0
	}

	out := fft.Sequence(make([]complex128, n), spec)
	scale := complex(1/float64(n), 0)
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}

// Envelope returns the instantaneous amplitude of signal: the magnitude
// of its analytic extension. For a narrowband trace this recovers the
// amplitude modulation without rectifying or smoothing.
func Envelope(signal []float64) ([]float64, error) {
	analytic, err := AnalyticSignal(signal)
	if err != nil {
		return nil, err
	}
	return spectrum.Magnitude(analytic), nil
}

// EnvelopeSection replaces every trace of a section with its envelope.
func EnvelopeSection(sec trace.Section) (trace.Section, error) {
	return sec.MapTraces(Envelope)
}

// instantaneousFrequency differentiates the unwrapped phase and scales
// radians per sample into Hz. The first output repeats the first
// derivative so the result keeps the input length.
func instantaneousFrequency(phase []float64, sampleRate float64) []float64 {
	unwrapped := spectrum.UnwrapPhase(phase)
	out := make([]float64, len(unwrapped))
	scale := sampleRate / (2 * math.Pi)
	for i := 1; i < len(unwrapped); i++ {
		out[i] = (unwrapped[i] - unwrapped[i-1]) * scale
	}
	if len(out) > 1 {
		out[0] = out[1]
	}
	return out
}

func validate(signal []float64, sampleRate float64) error {
	if len(signal) == 0 {
		return fmt.Errorf("%w: attrib: empty signal", core.ErrParameter)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: attrib: sample rate %g must be positive and finite", core.ErrParameter, sampleRate)
	}
	if len(signal) < 2 {
		return fmt.Errorf("%w: attrib: need at least 2 samples to differentiate phase, got %d", core.ErrShortSignal, len(signal))
	}
	return nil
}
