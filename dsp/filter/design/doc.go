// Package design synthesizes and applies the filters used on geophysical
// trace data.
//
// IIR designers (Butterworth, Chebyshev Type II, Notch) return cascades of
// biquad sections consumable by dsp/filter/biquad; FIR designers
// (FIRWindow, FIRKaiser, FIRZeroPhaseBandpass) return windowed-sinc tap
// sequences. Both come wrapped in [Coefficients], which previews the
// frequency response and applies the filter causally or with zero phase.
// [Spec] describes a design as plain data for configuration-driven use.
//
// All designers validate parameters against the sample rate before any
// synthesis: cutoffs must lie strictly inside (0, Nyquist), band edges must
// be ordered, and failures return errors wrapping core.ErrParameter. A
// design that synthesizes non-finite or unstable coefficients returns an
// error wrapping core.ErrComputation instead of degraded output.
package design
