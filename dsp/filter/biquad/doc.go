// Package biquad runs second-order IIR sections over trace samples.
//
// A [Section] processes one biquad in Direct Form II Transposed; a
// [Chain] cascades several for the higher-order Butterworth and
// Chebyshev II filters the design package produces. State can be
// snapshotted and restored, which the zero-phase apply path uses to
// prime passes at their steady state.
//
// Coefficient design lives in dsp/filter/design; this package only
// applies what was designed.
package biquad
