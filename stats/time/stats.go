// Package time computes single-pass time-domain statistics over trace
// samples: amplitude extremes, energy, zero crossings, and central
// moments via Welford's online algorithm. The QC layer builds its
// dead/clipped/low-energy verdicts on these numbers.
package time

import (
	"math"

	"github.com/seistools/tracedsp/dsp/core"
)

// Stats holds the time-domain statistics of one trace.
type Stats struct {
	Length        int
	Mean          float64 // DC bias
	RMS           float64
	RMSdB         float64
	Max           float64
	MaxPos        int
	Min           float64
	MinPos        int
	Peak          float64 // max(|Max|, |Min|)
	PeakdB        float64
	Range         float64 // Max - Min
	CrestFactor   float64 // Peak / RMS, linear
	Energy        float64 // sum of squares
	Power         float64 // Energy / Length
	ZeroCrossings int
	Variance      float64 // population
	StdDev        float64
	Skewness      float64
	Kurtosis      float64 // excess
}

// ampTodB converts an amplitude to decibels: 20 * log10(|value|).
// Returns -Inf for zero.
func ampTodB(value float64) float64 {
	return core.LinearToDB(math.Abs(value))
}

// emptyStats is the zero-length result, with -Inf for the dB fields.
func emptyStats() Stats {
	return Stats{
		RMSdB:  math.Inf(-1),
		PeakdB: math.Inf(-1),
	}
}

// Calculate computes all statistics in a single pass. Higher-order
// moments use Welford's online updates for numerical stability.
func Calculate(samples []float64) Stats {
	n := len(samples)
	if n == 0 {
		return emptyStats()
	}

	// Central-moment state.
	var (
		mean float64
		m2   float64
		m3   float64
		m4   float64
	)

	// Extremes, energy, crossings.
	var (
		sumSq         float64
		maxVal        = samples[0]
		maxPos        int
		minVal        = samples[0]
		minPos        int
		zeroCrossings int
	)

	for i, x := range samples {
		ni := float64(i + 1) // count including this sample
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// Each moment update reads the lower ones pre-update, so the
		// order m4, m3, m2, mean is load-bearing.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}

		if i > 0 && samples[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	return assemble(n, mean, m2, m3, m4, sumSq, maxVal, maxPos, minVal, minPos, zeroCrossings)
}

// assemble derives the exported fields from the raw accumulators.
func assemble(n int, mean, m2, m3, m4, sumSq, maxVal float64, maxPos int, minVal float64, minPos, zeroCrossings int) Stats {
	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	variance := m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return Stats{
		Length:        n,
		Mean:          mean,
		RMS:           rms,
		RMSdB:         ampTodB(rms),
		Max:           maxVal,
		MaxPos:        maxPos,
		Min:           minVal,
		MinPos:        minPos,
		Peak:          peak,
		PeakdB:        ampTodB(peak),
		Range:         maxVal - minVal,
		CrestFactor:   crest,
		Energy:        sumSq,
		Power:         sumSq / nf,
		ZeroCrossings: zeroCrossings,
		Variance:      variance,
		StdDev:        math.Sqrt(variance),
		Skewness:      skewness,
		Kurtosis:      kurtosis,
	}
}

// RMS returns the root-mean-square amplitude.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range samples {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(samples)))
}

// Mean returns the DC bias, using Kahan summation for stability.
func Mean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sum, c float64
	for _, x := range samples {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(samples))
}

// Peak returns the largest absolute amplitude, 0 for an empty trace.
func Peak(samples []float64) float64 {
	return core.MaxAbs(samples)
}

// CrestFactor returns Peak / RMS, or 0 for a silent trace.
func CrestFactor(samples []float64) float64 {
	r := RMS(samples)
	if r == 0 {
		return 0
	}

	return Peak(samples) / r
}

// ZeroCrossings counts sign changes between consecutive samples.
func ZeroCrossings(samples []float64) int {
	if len(samples) < 2 {
		return 0
	}

	var count int
	for i := 1; i < len(samples); i++ {
		if samples[i-1]*samples[i] < 0 {
			count++
		}
	}

	return count
}

// Accumulator folds statistics over samples delivered in blocks, e.g.
// trace by trace across a section. Each sample is processed
// individually so the result is bit-for-bit identical with handing
// [Calculate] the concatenation.
type Accumulator struct {
	n             int
	mean          float64
	m2            float64
	m3            float64
	m4            float64
	sumSq         float64
	maxVal        float64
	maxPos        int
	minVal        float64
	minPos        int
	zeroCrossings int
	hasData       bool
	lastSample    float64
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Update folds a block of samples into the running statistics.
func (a *Accumulator) Update(samples []float64) {
	for _, x := range samples {
		a.n++
		ni := float64(a.n)

		delta := x - a.mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(a.n-1)

		a.m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*a.m2 - 4*deltaN*a.m3
		a.m3 += term1*deltaN*(float64(a.n-1)-1) - 3*deltaN*a.m2
		a.m2 += term1
		a.mean += deltaN

		a.sumSq += x * x

		if !a.hasData {
			a.maxVal, a.minVal = x, x
			a.maxPos, a.minPos = a.n-1, a.n-1
			a.hasData = true
		} else {
			if x > a.maxVal {
				a.maxVal = x
				a.maxPos = a.n - 1
			}

			if x < a.minVal {
				a.minVal = x
				a.minPos = a.n - 1
			}
		}

		if a.n > 1 && a.lastSample*x < 0 {
			a.zeroCrossings++
		}

		a.lastSample = x
	}
}

// Result computes the statistics accumulated so far.
func (a *Accumulator) Result() Stats {
	if a.n == 0 {
		return emptyStats()
	}

	return assemble(a.n, a.mean, a.m2, a.m3, a.m4, a.sumSq, a.maxVal, a.maxPos, a.minVal, a.minPos, a.zeroCrossings)
}

// Reset clears the accumulator for reuse.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
