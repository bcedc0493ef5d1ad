package spectrum

import (
	"fmt"
	"math"

	"github.com/seistools/tracedsp/dsp/core"
)

// Power readouts below this level report the dB floor instead of
// chasing log10 toward -Inf.
const (
	minPower   = 1e-30
	minPowerDB = -300.0
)

// Goertzel measures the spectral power at one fixed frequency by
// running a two-register recurrence over the samples. For a handful of
// frequencies of interest, mains hum at 50 or 60 Hz being the usual
// case, it answers without transforming the whole trace.
//
// The detector accumulates: Power reflects every sample fed since the
// last Reset, and matches |X[k]|² of a DFT over the same samples when
// the frequency sits on a bin. Off-bin tones leak into the reading the
// same way they would leak in a rectangular-windowed DFT.
type Goertzel struct {
	freq  float64
	rate  float64
	coeff float64
	d1    float64
	d2    float64
}

// NewGoertzel returns a detector tuned to freq Hz for data sampled at
// rate Hz. The frequency must lie in [0, rate/2].
func NewGoertzel(freq, rate float64) (*Goertzel, error) {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return nil, fmt.Errorf("%w: spectrum: sample rate %v must be positive and finite", core.ErrParameter, rate)
	}
	if freq < 0 || freq > core.Nyquist(rate) || math.IsNaN(freq) {
		return nil, fmt.Errorf("%w: spectrum: frequency %v Hz outside [0, %v]", core.ErrParameter, freq, core.Nyquist(rate))
	}

	return &Goertzel{
		freq:  freq,
		rate:  rate,
		coeff: 2 * math.Cos(2*math.Pi*freq/rate),
	}, nil
}

// Reset clears the recurrence registers for a fresh trace.
func (g *Goertzel) Reset() {
	g.d1 = 0
	g.d2 = 0
}

// ProcessSample feeds one sample into the recurrence.
func (g *Goertzel) ProcessSample(x float64) {
	d := x + g.coeff*g.d1 - g.d2
	g.d2 = g.d1
	g.d1 = d
}

// ProcessBlock feeds a block of samples. The registers stay in locals
// across the loop, which matters when the block is a whole trace.
func (g *Goertzel) ProcessBlock(block []float64) {
	d1, d2 := g.d1, g.d2
	coeff := g.coeff
	for _, x := range block {
		d := x + coeff*d1 - d2
		d2 = d1
		d1 = d
	}
	g.d1, g.d2 = d1, d2
}

// Power returns |X(f)|² accumulated so far. A unit tone sitting
// exactly on the detector frequency reads (n/2)² after n samples.
func (g *Goertzel) Power() float64 {
	return g.d1*g.d1 + g.d2*g.d2 - g.coeff*g.d1*g.d2
}

// Magnitude returns |X(f)| accumulated so far.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}
	return math.Sqrt(p)
}

// PowerDB returns the accumulated power in dB, floored at -300.
func (g *Goertzel) PowerDB() float64 {
	p := g.Power()
	if p <= minPower {
		return minPowerDB
	}
	return core.LinearPowerToDB(p)
}

// AnalyzeBlock measures the power at freq Hz over one block in a
// single call.
func AnalyzeBlock(block []float64, freq, rate float64) (float64, error) {
	g, err := NewGoertzel(freq, rate)
	if err != nil {
		return 0, err
	}
	g.ProcessBlock(block)
	return g.Power(), nil
}

// MultiGoertzel runs one detector per frequency over the same samples,
// the shape of a mains scan that watches 50 and 60 Hz at once.
type MultiGoertzel struct {
	bins []*Goertzel
}

// NewMultiGoertzel returns detectors for each of the given frequencies,
// all tuned for data sampled at rate Hz.
func NewMultiGoertzel(freqs []float64, rate float64) (*MultiGoertzel, error) {
	if len(freqs) == 0 {
		return nil, fmt.Errorf("%w: spectrum: no frequencies given", core.ErrParameter)
	}

	bins := make([]*Goertzel, len(freqs))
	for i, f := range freqs {
		g, err := NewGoertzel(f, rate)
		if err != nil {
			return nil, err
		}
		bins[i] = g
	}
	return &MultiGoertzel{bins: bins}, nil
}

// Reset clears every detector for a fresh trace.
func (m *MultiGoertzel) Reset() {
	for _, g := range m.bins {
		g.Reset()
	}
}

// ProcessBlock feeds the block to every detector.
func (m *MultiGoertzel) ProcessBlock(block []float64) {
	for _, g := range m.bins {
		g.ProcessBlock(block)
	}
}

// Powers returns the accumulated power per frequency, in the order the
// frequencies were given.
func (m *MultiGoertzel) Powers() []float64 {
	out := make([]float64, len(m.bins))
	for i, g := range m.bins {
		out[i] = g.Power()
	}
	return out
}
