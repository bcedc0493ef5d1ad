package mute

import (
	"fmt"
	"math"

	"github.com/seistools/tracedsp/dsp/core"
	"github.com/seistools/tracedsp/trace"
)

// TopSection applies the top mute trace by trace.
func TopSection(sec trace.Section, muteTime, taperLength float64) (trace.Section, error) {
	return sec.MapTraces(func(samples []float64) ([]float64, error) {
		return Top(samples, muteTime, taperLength, sec.SampleRate())
	})
}

// BottomSection applies the bottom mute trace by trace.
func BottomSection(sec trace.Section, muteTime, taperLength float64) (trace.Section, error) {
	return sec.MapTraces(func(samples []float64) ([]float64, error) {
		return Bottom(samples, muteTime, taperLength, sec.SampleRate())
	})
}

// TimeVariantSection applies the linear fade trace by trace.
func TimeVariantSection(sec trace.Section, startTime, endTime float64) (trace.Section, error) {
	return sec.MapTraces(func(samples []float64) ([]float64, error) {
		return TimeVariant(samples, startTime, endTime, sec.SampleRate())
	})
}

// OffsetSection zeroes whole traces whose source-receiver offset
// exceeds maxOffset. Offsets are compared as given, one per trace in
// section order; the cutoff itself survives.
func OffsetSection(sec trace.Section, offsets []float64, maxOffset float64) (trace.Section, error) {
	if sec.NumTraces() == 0 {
		return trace.Section{}, fmt.Errorf("%w: mute: empty section", core.ErrParameter)
	}
	if len(offsets) != sec.NumTraces() {
		return trace.Section{}, fmt.Errorf("%w: mute: %d offsets for %d traces", core.ErrParameter, len(offsets), sec.NumTraces())
	}
	if math.IsNaN(maxOffset) || math.IsInf(maxOffset, 0) {
		return trace.Section{}, fmt.Errorf("%w: mute: max offset %g must be finite", core.ErrParameter, maxOffset)
	}

	out := sec.Clone()
	for i := range out.Traces {
		if offsets[i] > maxOffset {
			samples := out.Traces[i].Samples
			for j := range samples {
				samples[j] = 0
			}
		}
	}
	return out, nil
}
