package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"

	"github.com/seistools/tracedsp/dsp/core"
)

// Magnitude returns |X[k]| for each complex bin. The unpacking into
// real and imaginary planes feeds the vectorized magnitude kernel.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re := make([]float64, len(in))
	im := make([]float64, len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |X[k]|² for each complex bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re := make([]float64, len(in))
	im := make([]float64, len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	return out
}

// Phase returns arg(X[k]) in radians, wrapped into (-pi, pi].
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// UnwrapPhase folds 2-pi jumps out of a wrapped phase sequence:
// whenever a step exceeds pi in magnitude, all following samples shift
// by a full turn the other way. Steps of exactly pi pass through
// unchanged.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}

	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		switch d := phase[i] - phase[i-1]; {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

// FrequencyAxis returns the bin-centre frequencies in Hz for the
// one-sided spectrum of a real transform: fftSize/2 + 1 points from DC
// to Nyquist.
func FrequencyAxis(fftSize int, sampleRate float64) []float64 {
	if fftSize <= 0 {
		return nil
	}
	n := fftSize/2 + 1
	out := make([]float64, n)
	df := sampleRate / float64(fftSize)
	for i := range out {
		out[i] = float64(i) * df
	}
	return out
}

// GroupDelayFromPhase differentiates an unwrapped phase into group
// delay in samples, -dphi/dw. The phase points must sit on the uniform
// bin grid of an fftSize-point transform; interior points use a
// centred difference, the ends a one-sided one. A linear-phase FIR
// comes out flat at (taps-1)/2.
func GroupDelayFromPhase(unwrapped []float64, fftSize int) ([]float64, error) {
	if len(unwrapped) < 2 {
		return nil, fmt.Errorf("%w: spectrum: group delay needs at least 2 phase points, got %d", core.ErrParameter, len(unwrapped))
	}
	if fftSize <= 0 {
		return nil, fmt.Errorf("%w: spectrum: transform size %d must be positive", core.ErrParameter, fftSize)
	}

	dw := 2 * math.Pi / float64(fftSize)
	out := make([]float64, len(unwrapped))
	for i := range unwrapped {
		var dphi float64
		switch i {
		case 0:
			dphi = unwrapped[1] - unwrapped[0]
		case len(unwrapped) - 1:
			dphi = unwrapped[i] - unwrapped[i-1]
		default:
			dphi = (unwrapped[i+1] - unwrapped[i-1]) / 2
		}
		out[i] = -dphi / dw
	}
	return out, nil
}
