// Package decon removes source and path signatures from trace data.
//
// Everything here rests on the convolutional model: a recorded trace
// is the earth's reflectivity convolved with a wavelet. [Spiking]
// designs a least-squares inverse of a known wavelet and compresses it
// toward a spike; [Predictive] suppresses repeating energy such as
// multiples by subtracting what a gapped predictor foresees; [Wiener]
// divides the spectrum by a regularized wavelet response; [Correlate]
// collapses long sweeps with a matched filter. When the wavelet is not
// known, [EstimateWavelet] and [MatchingWavelet] recover it from the
// data.
package decon
