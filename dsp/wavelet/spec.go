package wavelet

// Spec pairs a wavelet family with a decomposition depth.
type Spec struct {
	Family Family
	Level  int
}

// Decompose runs the transform described by the spec.
func (s Spec) Decompose(signal []float64) (Pyramid, error) {
	return Decompose(signal, s.Family, s.Level)
}

// Filter runs the lossless round trip described by the spec.
func (s Spec) Filter(signal []float64) ([]float64, error) {
	return Filter(signal, s.Family, s.Level)
}

// Denoise runs the soft-threshold round trip described by the spec.
func (s Spec) Denoise(signal []float64) ([]float64, error) {
	return Denoise(signal, s.Family, s.Level)
}
