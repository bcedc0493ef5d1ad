package trace

import (
	"fmt"
	"math"

	"github.com/seistools/tracedsp/dsp/core"
)

// Trace is one recorded channel: evenly spaced samples plus the rate
// they were acquired at, in Hz.
//
// Engine operations treat trace samples as read-only and return fresh
// buffers; [New] copies its input for the same reason.
type Trace struct {
	Samples    []float64
	SampleRate float64
}

// New builds a trace from a copy of samples.
func New(samples []float64, sampleRate float64) (Trace, error) {
	if err := validateRate(sampleRate); err != nil {
		return Trace{}, err
	}
	return Trace{
		Samples:    append([]float64(nil), samples...),
		SampleRate: sampleRate,
	}, nil
}

// Len reports the number of samples.
func (t Trace) Len() int { return len(t.Samples) }

// Dt is the sample interval in seconds.
func (t Trace) Dt() float64 { return 1 / t.SampleRate }

// Nyquist is the folding frequency in Hz.
func (t Trace) Nyquist() float64 { return core.Nyquist(t.SampleRate) }

// Duration is the recorded time span in seconds.
func (t Trace) Duration() float64 { return float64(len(t.Samples)) * t.Dt() }

// Clone deep-copies the trace.
func (t Trace) Clone() Trace {
	return Trace{
		Samples:    append([]float64(nil), t.Samples...),
		SampleRate: t.SampleRate,
	}
}

func validateRate(sampleRate float64) error {
	if sampleRate <= 0 || math.IsInf(sampleRate, 0) || math.IsNaN(sampleRate) {
		return fmt.Errorf("%w: trace: sample rate %g Hz must be positive and finite", core.ErrParameter, sampleRate)
	}
	return nil
}
