package window

import (
	"fmt"
	"math"

	"github.com/seistools/tracedsp/dsp/core"
)

func validateKaiser(size int, beta float64) error {
	if size <= 0 {
		return fmt.Errorf("%w: window: kaiser length %d must be positive", core.ErrParameter, size)
	}
	if beta < 0 || math.IsNaN(beta) || math.IsInf(beta, 0) {
		return fmt.Errorf("%w: window: kaiser beta %g must be non-negative and finite", core.ErrParameter, beta)
	}
	return nil
}

func validateSameLength(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return fmt.Errorf("%w: window: %d samples against %d taper coefficients",
			core.ErrParameter, len(samples), len(coeffs))
	}
	return nil
}
