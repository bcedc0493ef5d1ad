package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// OverlapAdd is an FFT convolver that splits the input into blocks,
// multiplies each by the kernel spectrum, and accumulates the
// overlapping tails. The kernel transform and scratch buffers are
// computed once, so one instance amortises the setup across every
// trace of a section.
type OverlapAdd struct {
	kernelFFT []complex128

	kernelLen int
	blockSize int
	fftSize   int // covers blockSize+kernelLen-1, power of 2

	plan *algofft.Plan[complex128]

	inputPadded  []complex128
	outputPadded []complex128
}

// NewOverlapAdd prepares a convolver for the given kernel. blockSize
// sets how the input is segmented; pass 0 to size blocks from the
// kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	kernelLen := len(kernel)

	if blockSize <= 0 {
		// Blocks at least as long as the kernel keep the padding
		// overhead below half the transform.
		blockSize = fftLength(kernelLen)
		if blockSize < 256 {
			blockSize = 256
		}
	}

	// Linear convolution of a block needs blockSize+kernelLen-1 bins.
	fftSize := fftLength(blockSize + kernelLen - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT:    make([]complex128, fftSize),
		kernelLen:    kernelLen,
		blockSize:    blockSize,
		fftSize:      fftSize,
		plan:         plan,
		inputPadded:  make([]complex128, fftSize),
		outputPadded: make([]complex128, fftSize),
	}

	kernelPadded := make([]complex128, fftSize)
	for i, v := range kernel {
		kernelPadded[i] = complex(v, 0)
	}

	if err := plan.Forward(oa.kernelFFT, kernelPadded); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return oa, nil
}

// BlockSize returns the input segment length.
func (oa *OverlapAdd) BlockSize() int {
	return oa.blockSize
}

// FFTSize returns the transform size used per block.
func (oa *OverlapAdd) FFTSize() int {
	return oa.fftSize
}

// Process convolves the input with the kernel and returns the full
// result, len(input)+kernelLen-1 samples.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	outputLen := len(input) + oa.kernelLen - 1
	output := make([]float64, outputLen)

	numBlocks := (len(input) + oa.blockSize - 1) / oa.blockSize

	for blockIdx := 0; blockIdx < numBlocks; blockIdx++ {
		start := blockIdx * oa.blockSize
		end := min(start+oa.blockSize, len(input))
		blockLen := end - start

		for i := range oa.inputPadded {
			oa.inputPadded[i] = 0
		}
		for i := 0; i < blockLen; i++ {
			oa.inputPadded[i] = complex(input[start+i], 0)
		}

		if err := oa.plan.Forward(oa.inputPadded, oa.inputPadded); err != nil {
			return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
		}

		for i := range oa.outputPadded {
			oa.outputPadded[i] = oa.inputPadded[i] * oa.kernelFFT[i]
		}

		if err := oa.plan.Inverse(oa.outputPadded, oa.outputPadded); err != nil {
			return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		// Each block contributes blockLen+kernelLen-1 samples; the
		// tail beyond blockSize overlaps the next block's head.
		resultLen := blockLen + oa.kernelLen - 1
		for i := 0; i < resultLen && start+i < outputLen; i++ {
			output[start+i] += real(oa.outputPadded[i])
		}
	}

	return output, nil
}

// ProcessMode convolves the input and trims the result like
// ConvolveMode, with the kernel in the role of the second operand.
func (oa *OverlapAdd) ProcessMode(input []float64, mode Mode) ([]float64, error) {
	full, err := oa.Process(input)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(input), oa.kernelLen, mode), nil
}

// OverlapAddConvolve is the one-shot form, building a convolver for a
// single use. Prefer a shared OverlapAdd when the kernel repeats.
func OverlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}
	return oa.Process(signal)
}
