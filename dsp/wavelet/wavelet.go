package wavelet

import (
	"fmt"
	"math/bits"

	"github.com/seistools/tracedsp/dsp/core"
)

// Decompose runs a periodized orthogonal wavelet transform of the
// requested depth. The result holds the coarsest approximation band
// and level detail bands ordered coarsest first. Whenever a level
// starts from an odd number of samples, the last sample is replicated
// before splitting and the step is flagged in Padded so Reconstruct
// restores the exact input length.
func Decompose(signal []float64, family Family, level int) (Pyramid, error) {
	h, g, err := family.filters()
	if err != nil {
		return Pyramid{}, err
	}
	if level < 1 {
		return Pyramid{}, fmt.Errorf("%w: wavelet: decomposition level %d must be >= 1", core.ErrParameter, level)
	}
	if max := maxLevel(len(signal)); level > max {
		return Pyramid{}, fmt.Errorf("%w: wavelet: %d samples support at most %d levels, got %d",
			core.ErrShortSignal, len(signal), max, level)
	}

	cur := append([]float64(nil), signal...)
	p := Pyramid{
		Details: make([][]float64, level),
		Padded:  make([]bool, level),
	}
	for step := 0; step < level; step++ {
		// Step 0 emits the finest detail band, which lives at the end
		// of the coarsest-first layout.
		idx := level - 1 - step
		if len(cur)%2 == 1 {
			cur = append(cur, cur[len(cur)-1])
			p.Padded[idx] = true
		}
		cur, p.Details[idx] = analyze(cur, h, g)
	}
	p.Approx = cur
	return p, nil
}

// Reconstruct inverts Decompose, returning a signal of the original
// length. The approximation band and every detail band must keep the
// lengths Decompose produced.
func Reconstruct(p Pyramid, family Family) ([]float64, error) {
	h, g, err := family.filters()
	if err != nil {
		return nil, err
	}
	if len(p.Details) == 0 || len(p.Approx) == 0 {
		return nil, fmt.Errorf("%w: wavelet: pyramid has no bands", core.ErrParameter)
	}
	if p.Padded != nil && len(p.Padded) != len(p.Details) {
		return nil, fmt.Errorf("%w: wavelet: %d padding flags for %d detail bands",
			core.ErrParameter, len(p.Padded), len(p.Details))
	}

	cur := append([]float64(nil), p.Approx...)
	for i, det := range p.Details {
		if len(det) != len(cur) {
			return nil, fmt.Errorf("%w: wavelet: detail band %d has %d samples, want %d",
				core.ErrParameter, i, len(det), len(cur))
		}
		cur = synthesize(cur, det, h, g)
		if p.Padded != nil && p.Padded[i] {
			cur = cur[:len(cur)-1]
		}
	}
	return cur, nil
}

// Filter is the decompose/reconstruct round trip. With untouched bands
// the trip is lossless, so this is the scaffold onto which band-wise
// edits such as SoftThreshold attach.
func Filter(signal []float64, family Family, level int) ([]float64, error) {
	p, err := Decompose(signal, family, level)
	if err != nil {
		return nil, err
	}
	return Reconstruct(p, family)
}

// Denoise soft-thresholds every detail band at its own standard
// deviation before reconstructing. Broadband noise spread across the
// detail bands is shrunk away while features concentrated in the
// approximation band survive.
func Denoise(signal []float64, family Family, level int) ([]float64, error) {
	p, err := Decompose(signal, family, level)
	if err != nil {
		return nil, err
	}
	return Reconstruct(p.SoftThreshold(), family)
}

// maxLevel is the largest depth with 2^level <= n.
func maxLevel(n int) int {
	return bits.Len(uint(n)) - 1
}

// analyze splits an even-length signal into approximation and detail
// halves through the periodized filter bank.
func analyze(signal, h, g []float64) (approx, detail []float64) {
	n := len(signal)
	approx = make([]float64, n/2)
	detail = make([]float64, n/2)
	for k := range approx {
		var a, d float64
		for j, hj := range h {
			v := signal[(2*k+j)%n]
			a += hj * v
			d += g[j] * v
		}
		approx[k] = a
		detail[k] = d
	}
	return approx, detail
}

// synthesize inverts analyze by scattering each coefficient pair back
// through the transposed filter bank.
func synthesize(approx, detail, h, g []float64) []float64 {
	n := 2 * len(approx)
	out := make([]float64, n)
	for k, a := range approx {
		d := detail[k]
		for j, hj := range h {
			out[(2*k+j)%n] += hj*a + g[j]*d
		}
	}
	return out
}
