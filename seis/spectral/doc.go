// Package spectral estimates power spectra of trace data.
//
// Three estimators cover the usual trade-offs: [Periodogram] transforms
// the whole trace at once, [Welch] trades resolution for variance by
// averaging tapered overlapping segments, and [NewSpectrogram] keeps
// the segments separate as a time-frequency map with a decibel view.
// All three return one-sided densities in amplitude²/Hz.
//
// [MaskBandpass] is the frequency-domain companion: it zeroes
// coefficients outside a band and inverts, keeping passband amplitudes
// untouched.
package spectral
