package fk

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/seistools/tracedsp/dsp/core"
)

// sigmaDivisor sets the Gaussian spread relative to the taper support:
// sigma = order/sigmaDivisor keeps roughly ±3 sigma inside the window.
const sigmaDivisor = 6.0

// Spec describes an F-K filter. Order is the side length of the square
// Gaussian taper in grid samples: larger orders smooth over a wider
// neighborhood and cut deeper into high wavenumbers.
type Spec struct {
	Order int
}

// Apply runs the described filter over section.
func (s Spec) Apply(section [][]float64) ([][]float64, error) {
	return Apply(section, s.Order)
}

// Apply filters a rectangular section in the frequency-wavenumber domain:
// the 2-D spectrum over (trace, sample) is multiplied by the transform of
// a sum-normalized isotropic Gaussian taper of side length order, then
// transformed back. Sum normalization makes the taper's DC response
// exactly one, so the section mean is preserved. Boundaries wrap.
//
// The input must be rectangular and satisfy 1 <= order <= min(rows, cols);
// violations return an error wrapping core.ErrParameter. The input is
// never mutated.
func Apply(section [][]float64, order int) ([][]float64, error) {
	rows, cols, err := dims(section)
	if err != nil {
		return nil, err
	}
	if order < 1 {
		return nil, fmt.Errorf("%w: fk: taper order %d must be >= 1", core.ErrParameter, order)
	}
	if order > rows || order > cols {
		return nil, fmt.Errorf("%w: fk: taper order %d exceeds section dimensions %dx%d",
			core.ErrParameter, order, rows, cols)
	}

	grid := make([]complex128, rows*cols)
	for i, tr := range section {
		for j, v := range tr {
			grid[i*cols+j] = complex(v, 0)
		}
	}

	sampleFFT := fourier.NewCmplxFFT(cols)
	traceFFT := fourier.NewCmplxFFT(rows)

	forwardRows(grid, rows, cols, sampleFFT)
	forwardCols(grid, rows, cols, traceFFT)

	// The taper is separable: one factor per axis.
	sampleTaper := taperSpectrum(sampleFFT, cols, order)
	traceTaper := taperSpectrum(traceFFT, rows, order)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			grid[i*cols+j] *= traceTaper[i] * sampleTaper[j]
		}
	}

	inverseCols(grid, rows, cols, traceFFT)
	inverseRows(grid, rows, cols, sampleFFT)

	norm := 1 / float64(rows*cols)
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			out[i][j] = real(grid[i*cols+j]) * norm
		}
	}

	return out, nil
}

func dims(section [][]float64) (rows, cols int, err error) {
	if len(section) == 0 || len(section[0]) == 0 {
		return 0, 0, fmt.Errorf("%w: fk: empty section", core.ErrParameter)
	}

	rows, cols = len(section), len(section[0])
	for i, tr := range section {
		if len(tr) != cols {
			return 0, 0, fmt.Errorf("%w: fk: ragged section: trace %d has %d samples, want %d",
				core.ErrParameter, i, len(tr), cols)
		}
	}

	return rows, cols, nil
}

// gaussianTaps returns one axis of the square taper: Gaussian samples at
// integer offsets [-(order+1)/2, ...) with sigma = order/sigmaDivisor,
// normalized to unit sum so the 2-D product has unity DC gain.
func gaussianTaps(order int) []float64 {
	sigma := float64(order) / sigmaDivisor
	start := -((order + 1) / 2)

	taps := make([]float64, order)
	for i := range taps {
		x := float64(start + i)
		taps[i] = math.Exp(-x * x / (2 * sigma * sigma))
	}
	floats.Scale(1/floats.Sum(taps), taps)

	return taps
}

// taperSpectrum embeds the taper axis into a length-n circular kernel,
// aligned the way a same-mode wrap convolution centres its kernel, and
// returns its DFT.
func taperSpectrum(fft *fourier.CmplxFFT, n, order int) []complex128 {
	taps := gaussianTaps(order)
	centre := (order - 1) / 2

	embedded := make([]complex128, n)
	for j, w := range taps {
		embedded[((j-centre)%n+n)%n] = complex(w, 0)
	}

	return fft.Coefficients(make([]complex128, n), embedded)
}

func forwardRows(grid []complex128, rows, cols int, fft *fourier.CmplxFFT) {
	buf := make([]complex128, cols)
	for i := 0; i < rows; i++ {
		row := grid[i*cols : (i+1)*cols]
		fft.Coefficients(buf, row)
		copy(row, buf)
	}
}

func inverseRows(grid []complex128, rows, cols int, fft *fourier.CmplxFFT) {
	buf := make([]complex128, cols)
	for i := 0; i < rows; i++ {
		row := grid[i*cols : (i+1)*cols]
		fft.Sequence(buf, row)
		copy(row, buf)
	}
}

func forwardCols(grid []complex128, rows, cols int, fft *fourier.CmplxFFT) {
	in := make([]complex128, rows)
	out := make([]complex128, rows)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			in[i] = grid[i*cols+j]
		}
		fft.Coefficients(out, in)
		for i := 0; i < rows; i++ {
			grid[i*cols+j] = out[i]
		}
	}
}

func inverseCols(grid []complex128, rows, cols int, fft *fourier.CmplxFFT) {
	in := make([]complex128, rows)
	out := make([]complex128, rows)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			in[i] = grid[i*cols+j]
		}
		fft.Sequence(out, in)
		for i := 0; i < rows; i++ {
			grid[i*cols+j] = out[i]
		}
	}
}
