package trace

import (
	"fmt"

	"github.com/seistools/tracedsp/dsp/core"
)

// Section is an ordered, rectangular collection of traces: every trace
// shares one sample rate and one length, so the section can be handed
// to 2-D operations as a dense matrix.
type Section struct {
	Traces []Trace
}

// NewSection validates rectangularity and wraps the given traces.
// The traces themselves are not copied; use [Section.Clone] for an
// independent section.
func NewSection(traces []Trace) (Section, error) {
	if len(traces) == 0 {
		return Section{}, fmt.Errorf("%w: trace: section has no traces", core.ErrParameter)
	}
	if err := validateRate(traces[0].SampleRate); err != nil {
		return Section{}, err
	}
	rate, length := traces[0].SampleRate, traces[0].Len()
	for i, tr := range traces[1:] {
		if tr.SampleRate != rate {
			return Section{}, fmt.Errorf("%w: trace: trace %d sample rate %g Hz differs from %g Hz",
				core.ErrParameter, i+1, tr.SampleRate, rate)
		}
		if tr.Len() != length {
			return Section{}, fmt.Errorf("%w: trace: trace %d has %d samples, others have %d",
				core.ErrParameter, i+1, tr.Len(), length)
		}
	}
	return Section{Traces: traces}, nil
}

// FromData builds a section from a copy of a row-per-trace matrix.
func FromData(data [][]float64, sampleRate float64) (Section, error) {
	traces := make([]Trace, len(data))
	for i, row := range data {
		tr, err := New(row, sampleRate)
		if err != nil {
			return Section{}, err
		}
		traces[i] = tr
	}
	return NewSection(traces)
}

// NumTraces reports the number of traces.
func (s Section) NumTraces() int { return len(s.Traces) }

// NumSamples reports the per-trace length.
func (s Section) NumSamples() int {
	if len(s.Traces) == 0 {
		return 0
	}
	return s.Traces[0].Len()
}

// SampleRate is the shared trace sample rate in Hz.
func (s Section) SampleRate() float64 {
	if len(s.Traces) == 0 {
		return 0
	}
	return s.Traces[0].SampleRate
}

// Dt is the shared sample interval in seconds.
func (s Section) Dt() float64 { return 1 / s.SampleRate() }

// Nyquist is the folding frequency in Hz.
func (s Section) Nyquist() float64 { return core.Nyquist(s.SampleRate()) }

// Data returns the section as a freshly allocated row-per-trace matrix.
func (s Section) Data() [][]float64 {
	out := make([][]float64, len(s.Traces))
	for i, tr := range s.Traces {
		out[i] = append([]float64(nil), tr.Samples...)
	}
	return out
}

// Clone deep-copies the section.
func (s Section) Clone() Section {
	out := Section{Traces: make([]Trace, len(s.Traces))}
	for i, tr := range s.Traces {
		out.Traces[i] = tr.Clone()
	}
	return out
}

// MapTraces applies a 1-D transform to every trace and assembles the
// results into a new section. fn must treat its argument as read-only;
// the transform runs sequentially, and all outputs must share one
// length so the result stays rectangular.
func (s Section) MapTraces(fn func(samples []float64) ([]float64, error)) (Section, error) {
	if len(s.Traces) == 0 {
		return Section{}, fmt.Errorf("%w: trace: section has no traces", core.ErrParameter)
	}
	traces := make([]Trace, len(s.Traces))
	for i, tr := range s.Traces {
		out, err := fn(tr.Samples)
		if err != nil {
			return Section{}, fmt.Errorf("trace %d: %w", i, err)
		}
		traces[i] = Trace{Samples: out, SampleRate: tr.SampleRate}
	}
	return NewSection(traces)
}
