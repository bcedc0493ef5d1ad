package spectral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/seistools/tracedsp/dsp/core"
)

// MaskBandpass filters by zeroing every Fourier coefficient whose
// frequency falls outside [freqmin, freqmax], both edges inclusive.
// The mask acts on the real-input transform, so conjugate symmetry is
// preserved by construction: passband components come back with unity
// gain and the output is exactly real. The transform runs at the
// signal's own length; no padding, no phase shift.
func MaskBandpass(signal []float64, freqmin, freqmax, sampleRate float64) ([]float64, error) {
	if err := validateSignal(signal, sampleRate); err != nil {
		return nil, err
	}
	nyquist := core.Nyquist(sampleRate)
	if freqmin < 0 || math.IsNaN(freqmin) {
		return nil, fmt.Errorf("%w: spectral: freqmin %g Hz must be non-negative", core.ErrParameter, freqmin)
	}
	if freqmax <= freqmin || math.IsNaN(freqmax) {
		return nil, fmt.Errorf("%w: spectral: freqmax %g Hz must exceed freqmin %g Hz", core.ErrParameter, freqmax, freqmin)
	}
	if freqmax > nyquist {
		return nil, fmt.Errorf("%w: spectral: freqmax %g Hz exceeds Nyquist %g Hz", core.ErrParameter, freqmax, nyquist)
	}

	n := len(signal)
	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, signal)
	for k := range coeffs {
		freq := float64(k) * sampleRate / float64(n)
		if freq < freqmin || freq > freqmax {
			coeffs[k] = 0
		}
	}

	out := fft.Sequence(nil, coeffs)
	scale := 1 / float64(n)
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}
