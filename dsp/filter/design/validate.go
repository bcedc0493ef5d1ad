package design

import (
	"fmt"
	"math"

	"github.com/seistools/tracedsp/dsp/core"
)

// Validation runs to completion before any coefficient math starts, so a
// failed call never leaves partial output. Violations wrap core.ErrParameter
// and carry the offending values; numeric failures after validation wrap
// core.ErrComputation.

func validateSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: design: sample rate %g Hz must be positive and finite", core.ErrParameter, sampleRate)
	}

	return nil
}

func validateOrder(order int) error {
	if order < 1 {
		return fmt.Errorf("%w: design: order %d must be >= 1", core.ErrParameter, order)
	}

	return nil
}

func validateCutoff(freq, sampleRate float64) error {
	if math.IsNaN(freq) || math.IsInf(freq, 0) || freq <= 0 {
		return fmt.Errorf("%w: design: cutoff %g Hz must be positive and finite", core.ErrParameter, freq)
	}

	if nyq := core.Nyquist(sampleRate); freq >= nyq {
		return fmt.Errorf("%w: design: cutoff %g Hz at or above Nyquist %g Hz", core.ErrParameter, freq, nyq)
	}

	return nil
}

func validateRipple(rippleDB float64) error {
	if rippleDB <= 0 || math.IsNaN(rippleDB) || math.IsInf(rippleDB, 0) {
		return fmt.Errorf("%w: design: stopband ripple %g dB must be > 0", core.ErrParameter, rippleDB)
	}

	return nil
}

// validateCutoffs checks the cutoff list against the band type: one edge
// for lowpass/highpass, an ordered pair below Nyquist for bandpass.
func validateCutoffs(band Band, cutoffs []float64, sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}

	switch band {
	case BandLowpass, BandHighpass:
		if len(cutoffs) != 1 {
			return fmt.Errorf("%w: design: %s needs exactly 1 cutoff, got %d", core.ErrParameter, band, len(cutoffs))
		}

		return validateCutoff(cutoffs[0], sampleRate)

	case BandBandpass:
		if len(cutoffs) != 2 {
			return fmt.Errorf("%w: design: bandpass needs exactly 2 cutoffs, got %d", core.ErrParameter, len(cutoffs))
		}

		for _, f := range cutoffs {
			if err := validateCutoff(f, sampleRate); err != nil {
				return err
			}
		}

		if cutoffs[0] >= cutoffs[1] {
			return fmt.Errorf("%w: design: band edges inverted: freqmin %g Hz >= freqmax %g Hz",
				core.ErrParameter, cutoffs[0], cutoffs[1])
		}

		return nil

	default:
		return fmt.Errorf("%w: design: unknown band type %d", core.ErrParameter, int(band))
	}
}

// validateTaps checks the FIR tap count. Bands with non-zero gain at
// Nyquist (highpass) need a type I filter, so the tap count must be odd.
func validateTaps(band Band, numTaps int) error {
	if numTaps < 2 {
		return fmt.Errorf("%w: design: tap count %d must be >= 2", core.ErrParameter, numTaps)
	}

	if band == BandHighpass && numTaps%2 == 0 {
		return fmt.Errorf("%w: design: highpass needs an odd tap count for non-zero Nyquist response, got %d",
			core.ErrParameter, numTaps)
	}

	return nil
}

// checkSynthesis verifies finished coefficients are finite and (for IIR)
// stable. Failures are computation errors, not parameter errors: the spec
// was valid but the numeric pipeline degenerated.
func checkSynthesis(c Coefficients) error {
	if !c.allFinite() {
		return fmt.Errorf("%w: design: synthesized coefficients are not finite", core.ErrComputation)
	}

	if !c.Stable() {
		return fmt.Errorf("%w: design: synthesized filter has poles outside the unit circle", core.ErrComputation)
	}

	return nil
}
