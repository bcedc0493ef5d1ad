package design

import (
	"fmt"
	"math"

	"github.com/seistools/tracedsp/dsp/core"
	"github.com/seistools/tracedsp/dsp/filter/biquad"
)

// Notch designs a single-section IIR notch at freq with quality q. The gain
// is unity away from the notch and zero at freq itself; q sets the rejection
// bandwidth as freq/q. Typical use is removing powerline interference before
// spectral analysis.
func Notch(freq, q, sampleRate float64) (Coefficients, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return Coefficients{}, err
	}
	if err := validateCutoff(freq, sampleRate); err != nil {
		return Coefficients{}, err
	}
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return Coefficients{}, fmt.Errorf("%w: design: notch quality %g must be > 0", core.ErrParameter, q)
	}

	c := NewIIR([]biquad.Coefficients{sectionNotch(freq, q, sampleRate)})
	if err := checkSynthesis(c); err != nil {
		return Coefficients{}, err
	}

	return c, nil
}
