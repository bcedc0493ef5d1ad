package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine samples a pure tone of the given frequency, phase
// zero at the first sample.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	w := 2 * math.Pi * freqHz / sampleRate
	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * math.Sin(w*float64(i))
	}
	return out
}

// DeterministicNoise draws uniform noise in [-amplitude, amplitude] from
// a seeded source, so a test sees the same realization on every run.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}
	return out
}

// Impulse places a unit spike at pos; out-of-range positions leave the
// signal all zero.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos < 0 || pos >= length {
		return out
	}
	out[pos] = 1
	return out
}

// DC fills a signal with one constant value.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones is DC(1, n).
func Ones(n int) []float64 {
	return DC(1, n)
}

// FlatSection builds a rectangular section whose traces all carry the same
// horizontal event: a cosine pulse centered at the given sample.
func FlatSection(traces, samples, center int, amplitude float64) [][]float64 {
	out := make([][]float64, traces)
	pulse := cosinePulse(samples, center, amplitude)
	for i := range out {
		out[i] = make([]float64, samples)
		copy(out[i], pulse)
	}
	return out
}

// AddDippingEvent superimposes a linearly dipping cosine pulse onto a
// section in place: the pulse center shifts by slope samples per trace.
func AddDippingEvent(section [][]float64, start int, slope, amplitude float64) {
	for i := range section {
		center := start + int(math.Round(slope*float64(i)))
		pulse := cosinePulse(len(section[i]), center, amplitude)
		for j := range section[i] {
			section[i][j] += pulse[j]
		}
	}
}

// cosinePulse is a short raised-cosine wavelet, zero outside its support.
func cosinePulse(length, center int, amplitude float64) []float64 {
	const halfWidth = 4

	out := make([]float64, length)
	for j := center - halfWidth; j <= center+halfWidth; j++ {
		if j < 0 || j >= length {
			continue
		}
		phase := float64(j-center) / float64(halfWidth)
		out[j] = amplitude * 0.5 * (1 + math.Cos(math.Pi*phase))
	}
	return out
}
