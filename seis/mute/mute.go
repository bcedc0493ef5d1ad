package mute

import (
	"fmt"
	"math"

	"github.com/seistools/tracedsp/dsp/core"
)

// Top zeroes every sample before muteTime and ramps linearly back to
// full amplitude over taperLength seconds after it. With a zero taper
// the mute edge is hard: samples in [0, muteTime) vanish and the sample
// at muteTime survives untouched.
func Top(signal []float64, muteTime, taperLength, sampleRate float64) ([]float64, error) {
	if err := validateSignal(signal, sampleRate); err != nil {
		return nil, err
	}
	if err := validateTime("mute time", muteTime, signal, sampleRate); err != nil {
		return nil, err
	}
	if err := validateTime("taper length", taperLength, signal, sampleRate); err != nil {
		return nil, err
	}

	out := append([]float64(nil), signal...)
	muteAt := int(muteTime * sampleRate)
	taper := int(taperLength * sampleRate)

	for i := 0; i < muteAt; i++ {
		out[i] = 0
	}
	for k := 0; k < taper; k++ {
		i := muteAt + k
		if i >= len(out) {
			break
		}
		out[i] *= float64(k+1) / float64(taper+1)
	}
	return out, nil
}

// Bottom zeroes every sample from muteTime onward and ramps down to the
// mute over the taperLength seconds before it. With a zero taper the
// edge is hard: samples in [muteTime, end) vanish.
func Bottom(signal []float64, muteTime, taperLength, sampleRate float64) ([]float64, error) {
	if err := validateSignal(signal, sampleRate); err != nil {
		return nil, err
	}
	if err := validateTime("mute time", muteTime, signal, sampleRate); err != nil {
		return nil, err
	}
	if err := validateTime("taper length", taperLength, signal, sampleRate); err != nil {
		return nil, err
	}

	out := append([]float64(nil), signal...)
	muteAt := int(muteTime * sampleRate)
	taper := int(taperLength * sampleRate)

	for i := muteAt; i < len(out); i++ {
		out[i] = 0
	}
	for k := 0; k < taper; k++ {
		i := muteAt - 1 - k
		if i < 0 {
			break
		}
		out[i] *= float64(k+1) / float64(taper+1)
	}
	return out, nil
}

// TimeVariant fades the signal linearly from full amplitude at
// startTime to zero at endTime. Samples from endTime onward keep their
// original amplitude, so the fade acts as a localized attenuation band
// rather than a permanent cut; compose with Bottom to mute the tail.
func TimeVariant(signal []float64, startTime, endTime, sampleRate float64) ([]float64, error) {
	if err := validateSignal(signal, sampleRate); err != nil {
		return nil, err
	}
	if err := validateTime("start time", startTime, signal, sampleRate); err != nil {
		return nil, err
	}
	if err := validateTime("end time", endTime, signal, sampleRate); err != nil {
		return nil, err
	}
	if endTime <= startTime {
		return nil, fmt.Errorf("%w: mute: end time %g s must come after start time %g s", core.ErrParameter, endTime, startTime)
	}

	out := append([]float64(nil), signal...)
	start := int(startTime * sampleRate)
	end := int(endTime * sampleRate)

	span := float64(end - start)
	for i := start; i < end && i < len(out); i++ {
		out[i] *= 1 - float64(i-start)/span
	}
	return out, nil
}

func validateSignal(signal []float64, sampleRate float64) error {
	if len(signal) == 0 {
		return fmt.Errorf("%w: mute: empty signal", core.ErrParameter)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: mute: sample rate %g Hz must be positive and finite", core.ErrParameter, sampleRate)
	}
	return nil
}

// validateTime rejects times outside [0, duration]; a mute anchored past
// the end of the trace is a caller mistake, not a silent no-op.
func validateTime(name string, t float64, signal []float64, sampleRate float64) error {
	if t < 0 || math.IsNaN(t) {
		return fmt.Errorf("%w: mute: %s %g s must be non-negative", core.ErrParameter, name, t)
	}
	if t*sampleRate > float64(len(signal)) {
		return fmt.Errorf("%w: mute: %s %g s lies beyond the trace end %g s", core.ErrParameter, name, t, float64(len(signal))/sampleRate)
	}
	return nil
}
