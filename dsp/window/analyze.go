package window

import (
	"math"

	"github.com/seistools/tracedsp/dsp/core"
)

// Analysis holds the spectral figures of merit of a taper, the numbers
// the choice of window trades between: main lobe width sets how sharp a
// filter transition or spectral peak can be, sidelobe level sets how
// much energy leaks far away from it.
type Analysis struct {
	// CoherentGain is sum(w)/N, the DC gain of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in DFT bins
	// (rectangular 1, Hann 1.5).
	ENBW float64
	// MainLobeWidthBins is the null-to-null main lobe width in bins
	// (rectangular 2, Hann 4, Blackman-Harris 8).
	MainLobeWidthBins float64
	// HighestSidelobeDB is the largest sidelobe relative to the main
	// lobe peak, in dB.
	HighestSidelobeDB float64
}

// Analyze measures taper coefficients by direct DFT evaluation. The
// continuous spectrum is sampled at an eighth of a bin and the null and
// sidelobe positions refined from there, so the figures hold for short
// windows where the textbook asymptotes are off by a fraction of a bin.
// A nil or all-zero input yields the zero Analysis.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	peak := dftPower(coeffs, 0)
	if peak == 0 {
		return Analysis{}
	}

	sum, sumSq := 0.0, 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	null := firstNull(coeffs)
	return Analysis{
		CoherentGain:      sum / float64(n),
		ENBW:              float64(n) * sumSq / (sum * sum),
		MainLobeWidthBins: 2 * null * float64(n),
		HighestSidelobeDB: peakSidelobeDB(coeffs, peak, null),
	}
}

// dftPower is |W(f)|^2 at normalised frequency f in [0, 0.5].
func dftPower(coeffs []float64, f float64) float64 {
	w := 2 * math.Pi * f

	re, im := 0.0, 0.0
	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}
	return re*re + im*im
}

// firstNull locates the first spectral minimum above DC, in normalised
// frequency. A coarse scan at an eighth of a bin finds the turn-around
// and golden-section search tightens it. The scan only starts looking
// for a minimum once the power has fallen to a tenth of the DC value,
// so ripple on a wide main lobe is not mistaken for the null.
func firstNull(coeffs []float64) float64 {
	n := float64(len(coeffs))
	step := 1 / (8 * n)

	dc := dftPower(coeffs, 0)
	floor := dc * 0.1

	prev := dc
	at := step
	for f := step; f < 0.5; f += step {
		v := dftPower(coeffs, f)
		if prev < floor && v > prev {
			at = f - step
			break
		}
		prev = v
	}

	a := at - 2*step
	b := at + 2*step
	if a < 0 {
		a = 0
	}
	if b > 0.5 {
		b = 0.5
	}

	const invPhi = 0.6180339887498949 // (sqrt(5)-1)/2
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	for i := 0; i < 80; i++ {
		if dftPower(coeffs, c) < dftPower(coeffs, d) {
			b = d
		} else {
			a = c
		}
		c = b - invPhi*(b-a)
		d = a + invPhi*(b-a)
	}
	return (a + b) / 2
}

// peakSidelobeDB scans from the first null out to Nyquist for the
// hottest sidelobe and reports it in dB relative to the DC power.
func peakSidelobeDB(coeffs []float64, dcRef, from float64) float64 {
	n := float64(len(coeffs))
	step := 1 / (8 * n)

	best := 0.0
	bestAt := from
	for f := from; f < 0.5; f += step {
		if v := dftPower(coeffs, f); v > best {
			best = v
			bestAt = f
		}
	}

	// Tighten around the coarse peak.
	fine := step / 32
	for f := bestAt - step; f <= bestAt+step; f += fine {
		if f < 0 {
			continue
		}
		if v := dftPower(coeffs, f); v > best {
			best = v
		}
	}

	if best <= 0 {
		return math.Inf(-1)
	}
	return core.LinearPowerToDB(best / dcRef)
}
