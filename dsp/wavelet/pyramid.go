package wavelet

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Pyramid is one multiresolution decomposition: the coarsest
// approximation band plus detail bands ordered coarsest first.
type Pyramid struct {
	Approx  []float64
	Details [][]float64

	// Padded is aligned with Details and marks steps whose finer-level
	// signal had odd length and was extended by edge replication.
	// Reconstruct drops the replicated sample again; a nil slice means
	// no step needed padding.
	Padded []bool
}

// Level reports the number of detail bands.
func (p Pyramid) Level() int { return len(p.Details) }

// Clone deep-copies the pyramid.
func (p Pyramid) Clone() Pyramid {
	out := Pyramid{Approx: append([]float64(nil), p.Approx...)}
	if p.Details != nil {
		out.Details = make([][]float64, len(p.Details))
		for i, det := range p.Details {
			out.Details[i] = append([]float64(nil), det...)
		}
	}
	if p.Padded != nil {
		out.Padded = append([]bool(nil), p.Padded...)
	}
	return out
}

// SoftThreshold returns a copy of the pyramid with every detail band
// shrunk toward zero by its own population standard deviation. The
// approximation band is left intact. Bands whose deviation is zero
// pass through unchanged.
func (p Pyramid) SoftThreshold() Pyramid {
	out := p.Clone()
	for _, det := range out.Details {
		if len(det) == 0 {
			continue
		}
		shrink(det, stat.PopStdDev(det, nil))
	}
	return out
}

// shrink applies soft thresholding in place: sign(x) * max(|x|-t, 0).
func shrink(band []float64, t float64) {
	for i, v := range band {
		mag := math.Abs(v) - t
		if mag <= 0 {
			band[i] = 0
			continue
		}
		band[i] = math.Copysign(mag, v)
	}
}
