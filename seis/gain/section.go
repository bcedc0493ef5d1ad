package gain

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/seistools/tracedsp/dsp/core"
	"github.com/seistools/tracedsp/trace"
)

// AGCSection applies automatic gain control trace by trace.
func AGCSection(sec trace.Section, windowSize int) (trace.Section, error) {
	if windowSize < 1 {
		return trace.Section{}, fmt.Errorf("%w: gain: window size %d must be at least 1", core.ErrParameter, windowSize)
	}
	if sec.NumTraces() > 0 && windowSize > sec.NumSamples() {
		return trace.Section{}, fmt.Errorf("%w: gain: window size %d exceeds trace length %d", core.ErrShortSignal, windowSize, sec.NumSamples())
	}
	return sec.MapTraces(func(samples []float64) ([]float64, error) {
		return AGC(samples, windowSize)
	})
}

// TVGSection applies time-variant gain trace by trace. One gain curve
// is shared across the whole section.
func TVGSection(sec trace.Section, gradient float64) (trace.Section, error) {
	if err := validateFinite("gradient", gradient); err != nil {
		return trace.Section{}, err
	}
	curve := timeCurve(sec.NumSamples(), gradient)
	return sec.MapTraces(func(samples []float64) ([]float64, error) {
		out := make([]float64, len(samples))
		vecmath.MulBlock(out, samples, curve)
		return out, nil
	})
}

// ConstantSection scales every sample of every trace by factor.
func ConstantSection(sec trace.Section, factor float64) (trace.Section, error) {
	if err := validateFinite("factor", factor); err != nil {
		return trace.Section{}, err
	}
	return sec.MapTraces(func(samples []float64) ([]float64, error) {
		return Constant(samples, factor)
	})
}
