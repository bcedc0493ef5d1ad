package gain

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/seistools/tracedsp/dsp/conv"
	"github.com/seistools/tracedsp/dsp/core"
)

// rmsFloor bounds the sliding RMS away from zero so silent stretches do
// not blow the gain up.
const rmsFloor = 1e-10

// AGC applies automatic gain control: every sample is divided by the
// RMS of the signal envelope over a centered window of windowSize
// samples. Windows reaching past either end are zero-padded, so the
// gain rises slightly toward the trace edges.
func AGC(signal []float64, windowSize int) ([]float64, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("%w: gain: empty signal", core.ErrParameter)
	}
	if windowSize < 1 {
		return nil, fmt.Errorf("%w: gain: window size %d must be at least 1", core.ErrParameter, windowSize)
	}
	if windowSize > len(signal) {
		return nil, fmt.Errorf("%w: gain: window size %d exceeds signal length %d", core.ErrShortSignal, windowSize, len(signal))
	}

	power := make([]float64, len(signal))
	vecmath.MulBlock(power, signal, signal)

	box := make([]float64, windowSize)
	for i := range box {
		box[i] = 1 / float64(windowSize)
	}

	mean, err := conv.ConvolveMode(power, box, conv.ModeSame)
	if err != nil {
		return nil, fmt.Errorf("gain: %w", err)
	}

	out := make([]float64, len(signal))
	for i, m := range mean {
		// The FFT path can leave tiny negative means; clamp before the root.
		rms := math.Sqrt(math.Max(m, 0))
		if rms < rmsFloor {
			rms = rmsFloor
		}
		out[i] = signal[i] / rms
	}
	return out, nil
}

// TVG applies time-variant gain: the i-th sample is scaled by
// (i+1)^gradient, boosting late samples relative to early ones.
// A gradient of zero leaves the trace unchanged; negative gradients
// attenuate with depth instead.
func TVG(signal []float64, gradient float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("%w: gain: empty signal", core.ErrParameter)
	}
	if err := validateFinite("gradient", gradient); err != nil {
		return nil, err
	}

	out := make([]float64, len(signal))
	vecmath.MulBlock(out, signal, timeCurve(len(signal), gradient))
	return out, nil
}

// Constant scales every sample by factor.
func Constant(signal []float64, factor float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("%w: gain: empty signal", core.ErrParameter)
	}
	if err := validateFinite("factor", factor); err != nil {
		return nil, err
	}

	out := make([]float64, len(signal))
	vecmath.ScaleBlock(out, signal, factor)
	return out, nil
}

// timeCurve returns the power-law gain curve (1..n)^gradient.
func timeCurve(n int, gradient float64) []float64 {
	curve := make([]float64, n)
	for i := range curve {
		curve[i] = math.Pow(float64(i+1), gradient)
	}
	return curve
}

func validateFinite(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: gain: %s %g must be finite", core.ErrParameter, name, value)
	}
	return nil
}
