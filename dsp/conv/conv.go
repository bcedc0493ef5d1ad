package conv

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/seistools/tracedsp/dsp/core"
)

// Sentinel causes, all parameter-class so callers can branch on the
// specific complaint or classify with core.ErrParameter.
var (
	ErrEmptyInput  = fmt.Errorf("%w: conv: empty input", core.ErrParameter)
	ErrEmptyKernel = fmt.Errorf("%w: conv: empty kernel", core.ErrParameter)
)

// Mode selects which part of a full convolution or correlation the
// caller gets back.
type Mode int

const (
	// ModeFull is the whole result, len(a)+len(b)-1 samples.
	ModeFull Mode = iota

	// ModeSame is the centre portion with the length of the first
	// input, the usual choice when filtering a trace by a kernel.
	ModeSame

	// ModeValid keeps only samples where the inputs fully overlap,
	// max(len(a),len(b)) - min(len(a),len(b)) + 1 of them.
	ModeValid
)

// Direct convolves a with b in the time domain and returns the full
// result of len(a)+len(b)-1 samples. The cost is O(len(a)·len(b)),
// which wins for short kernels; Convolve picks the crossover.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo convolves into a caller-provided destination, which must
// hold len(a)+len(b)-1 samples and is overwritten entirely.
func DirectTo(dst, a, b []float64) {
	n := len(a)
	m := len(b)

	for i := range dst {
		dst[i] = 0
	}

	// Vectorized accumulation pays off once the kernel has a few taps.
	const vecThreshold = 4
	if m >= vecThreshold {
		directToVec(dst, a, b, n, m)
	} else {
		directToScalar(dst, a, b, n, m)
	}
}

func directToScalar(dst, a, b []float64, n, m int) {
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			dst[i+j] += a[i] * b[j]
		}
	}
}

// directToVec scales the whole kernel by each input sample and
// accumulates the block, the same i-outer j-inner order as the scalar
// path, so both produce bit-identical sums.
func directToVec(dst, a, b []float64, n, m int) {
	temp := make([]float64, m)

	for i := 0; i < n; i++ {
		vecmath.ScaleBlock(temp, b, a[i])
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}

// Convolve returns the full linear convolution of a and b, choosing
// the algorithm by kernel length: direct below the crossover, FFT
// overlap-add above it. The inputs commute.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	// Treat the longer input as the signal.
	if len(b) > len(a) {
		a, b = b, a
	}

	// Empirical crossover for a few-thousand-sample trace.
	const directThreshold = 64
	if len(b) <= directThreshold {
		return Direct(a, b)
	}

	return OverlapAddConvolve(a, b)
}

// ConvolveMode convolves and trims the result to the requested mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// trimToMode slices the requested portion out of a full-length result.
// ModeSame centering matches numpy's convolve for len(a) >= len(b).
func trimToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeFull:
		return full
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	default:
		return full
	}
}

// fftLength returns the power-of-2 transform size covering n samples.
func fftLength(n int) int {
	return core.NextPow2(n)
}
