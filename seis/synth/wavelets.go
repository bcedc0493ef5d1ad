package synth

import (
	"fmt"
	"math"

	"github.com/seistools/tracedsp/dsp/core"
)

// symmetricAxis builds a dt-spaced time axis centred on zero. Odd
// counts contain an exact t=0 sample.
func symmetricAxis(n int, dt float64) []float64 {
	t := make([]float64, n)
	mid := float64(n-1) / 2
	for i := range t {
		t[i] = (float64(i) - mid) * dt
	}
	return t
}

// sinc is the normalized sinc, sin(pi x)/(pi x).
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// Ricker generates a peak-normalized Ricker (Mexican hat) wavelet of
// the given central frequency, length seconds long and centred on its
// midpoint.
func (g *Generator) Ricker(freq, length float64) ([]float64, error) {
	n, dt, err := g.axis(length)
	if err != nil {
		return nil, err
	}
	if err := validateFreq("central frequency", freq); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i, t := range symmetricAxis(n, dt) {
		u := math.Pi * math.Pi * freq * freq * t * t
		out[i] = (1 - 2*u) * math.Exp(-u)
	}
	return normalizePeak(out), nil
}

// Ormsby generates a peak-normalized Ormsby wavelet from the corner
// frequencies of its trapezoidal amplitude spectrum: reject below f1
// and above f4, pass between f2 and f3.
func (g *Generator) Ormsby(f1, f2, f3, f4, length float64) ([]float64, error) {
	n, dt, err := g.axis(length)
	if err != nil {
		return nil, err
	}
	for _, c := range []struct {
		name string
		freq float64
	}{{"f1", f1}, {"f2", f2}, {"f3", f3}, {"f4", f4}} {
		if err := validateFreq(c.name, c.freq); err != nil {
			return nil, err
		}
	}
	if !(f1 < f2 && f2 < f3 && f3 < f4) {
		return nil, fmt.Errorf("%w: synth: corner frequencies must satisfy f1 < f2 < f3 < f4, got %g %g %g %g",
			core.ErrParameter, f1, f2, f3, f4)
	}

	num := func(f, t float64) float64 {
		s := sinc(f * t)
		return math.Pi * math.Pi * f * f * s * s
	}
	hi := math.Pi * (f4 - f3)
	lo := math.Pi * (f2 - f1)

	out := make([]float64, n)
	for i, t := range symmetricAxis(n, dt) {
		out[i] = num(f4, t)/hi - num(f3, t)/hi - num(f2, t)/lo + num(f1, t)/lo
	}
	return normalizePeak(out), nil
}

// Klauder generates a peak-normalized Klauder wavelet, the
// autocorrelation of a linear sweep from f0 to f1 over sweepDuration
// seconds. The wavelet itself spans length seconds around its centre.
func (g *Generator) Klauder(f0, f1, sweepDuration, length float64) ([]float64, error) {
	n, dt, err := g.axis(length)
	if err != nil {
		return nil, err
	}
	if err := validateFreq("start frequency", f0); err != nil {
		return nil, err
	}
	if err := validateFreq("end frequency", f1); err != nil {
		return nil, err
	}
	if f0 == f1 {
		return nil, fmt.Errorf("%w: synth: sweep needs distinct start and end frequencies, got %g Hz", core.ErrParameter, f0)
	}
	if sweepDuration <= 0 || math.IsInf(sweepDuration, 0) || math.IsNaN(sweepDuration) {
		return nil, fmt.Errorf("%w: synth: sweep duration %g s must be positive and finite", core.ErrParameter, sweepDuration)
	}

	rate := (f1 - f0) / sweepDuration
	mid := (f0 + f1) / 2

	out := make([]float64, n)
	for i, t := range symmetricAxis(n, dt) {
		env := sweepDuration - t
		if t != 0 {
			env = math.Sin(math.Pi*rate*t*(sweepDuration-t)) / (math.Pi * rate * t)
		}
		out[i] = env * math.Cos(2*math.Pi*mid*t)
	}
	return normalizePeak(out), nil
}

// GaussianMinimumPhase generates a causal Gaussian pulse with its peak
// at t=0, decaying at a rate set by the dominant frequency.
func (g *Generator) GaussianMinimumPhase(freq, length float64) ([]float64, error) {
	n, dt, err := g.axis(length)
	if err != nil {
		return nil, err
	}
	if err := validateFreq("dominant frequency", freq); err != nil {
		return nil, err
	}

	a := 2 * math.Pi * math.Pi * freq * freq
	out := make([]float64, n)
	for i := range out {
		t := float64(i) * dt
		out[i] = math.Exp(-a * t * t / 2)
	}
	return out, nil
}

// GaussianZeroPhase generates a Gaussian-enveloped cosine centred on
// zero, symmetric in time.
func (g *Generator) GaussianZeroPhase(freq, length float64) ([]float64, error) {
	n, dt, err := g.axis(length)
	if err != nil {
		return nil, err
	}
	if err := validateFreq("central frequency", freq); err != nil {
		return nil, err
	}

	a := 2 * math.Pi * math.Pi * freq * freq
	out := make([]float64, n)
	for i, t := range symmetricAxis(n, dt) {
		out[i] = math.Cos(2*math.Pi*freq*t) * math.Exp(-a*t*t/2)
	}
	return out, nil
}

// Chirp generates a unit-amplitude linear sweep from f0 to f1 over the
// whole duration.
func (g *Generator) Chirp(f0, f1, duration float64) ([]float64, error) {
	n, dt, err := g.axis(duration)
	if err != nil {
		return nil, err
	}
	if err := validateFreq("start frequency", f0); err != nil {
		return nil, err
	}
	if err := validateFreq("end frequency", f1); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		t := float64(i) * dt
		out[i] = math.Sin(2 * math.Pi * (f0*t + (f1-f0)*t*t/(2*duration)))
	}
	return out, nil
}

// Boomer generates a synthetic boomer signature: a swept-sine pulse
// occupying the first pulseDuration/2 seconds of a length-second
// window, silent afterwards.
func (g *Generator) Boomer(f0, f1, pulseDuration, length float64) ([]float64, error) {
	n, dt, err := g.axis(length)
	if err != nil {
		return nil, err
	}
	if err := validateFreq("start frequency", f0); err != nil {
		return nil, err
	}
	if err := validateFreq("end frequency", f1); err != nil {
		return nil, err
	}
	if pulseDuration <= 0 || pulseDuration > 2*length {
		return nil, fmt.Errorf("%w: synth: pulse duration %g s must be in (0, %g]", core.ErrParameter, pulseDuration, 2*length)
	}

	m := int(math.Round(pulseDuration / 2 * g.cfg.SampleRate))
	if m > n {
		m = n
	}

	out := make([]float64, n)
	for i := 0; i < m; i++ {
		f := f0
		if m > 1 {
			f += (f1 - f0) * float64(i) / float64(m-1)
		}
		t := float64(i) * dt
		out[i] = math.Sin(2 * math.Pi * f * t)
	}
	return out, nil
}
