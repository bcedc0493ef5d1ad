// Package spectrum turns complex transform output into the quantities
// the rest of the engine reads: magnitude, power, wrapped and unwrapped
// phase, the one-sided frequency axis, and group delay. It does not
// compute transforms itself; callers hand it the bins from algo-fft.
//
// The attribute engine reads instantaneous amplitude and phase off an
// analytic signal through these helpers, the spectral estimators label
// their axes with FrequencyAxis, and the filter-response printer turns
// an unwrapped phase curve into group delay in samples.
//
// The Goertzel detector is the exception to the array-in, array-out
// shape: it measures single frequencies directly from the samples, the
// cheap way to screen a section for 50 or 60 Hz mains contamination
// without transforming every trace.
package spectrum
