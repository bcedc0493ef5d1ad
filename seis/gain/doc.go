// Package gain amplitude-corrects trace data.
//
// Three corrections are provided, each in slice and section form:
// automatic gain control ([AGC]) equalizes amplitudes against a sliding
// RMS of the signal envelope, time-variant gain ([TVG]) compensates
// decay with a power-law curve over sample index, and [Constant]
// applies a single scale factor throughout.
package gain
