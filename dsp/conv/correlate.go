package conv

// Correlate returns the full cross-correlation of a with b,
// len(a)+len(b)-1 samples. Index len(b)-1 is zero lag; use
// LagFromIndex to translate a peak position into the shift of b
// relative to a. Computed as convolution with the reversed template,
// so the direct/FFT crossover of Convolve applies.
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	reversed := make([]float64, len(b))
	for i, v := range b {
		reversed[len(b)-1-i] = v
	}

	return Convolve(a, reversed)
}

// CorrelateMode cross-correlates and trims the result to the
// requested mode. ModeSame keeps len(a) samples centred on zero lag,
// the shape wanted when sweeping a pilot along a trace.
func CorrelateMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Correlate(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// FindPeak returns the index and value of the maximum sample, the
// usual way to read an arrival time off a correlation. An empty input
// yields index -1.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	value = corr[0]
	for i, v := range corr {
		if v > value {
			index = i
			value = v
		}
	}

	return index, value
}

// LagFromIndex converts an index in a full correlation against a
// template of lenB samples into a lag: positive when the template
// occurs later in the signal.
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}
