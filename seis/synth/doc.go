// Package synth generates the source signatures used to build
// synthetic traces: Ricker, Ormsby and Klauder wavelets, Gaussian
// minimum- and zero-phase pulses, linear sweeps and a boomer pulse,
// plus plain sines and deterministic noise for mixing.
//
// A [Generator] carries the sample rate so signature lengths are given
// in seconds. Band-shaped wavelets (Ricker, Ormsby, Klauder) come back
// peak-normalized.
package synth
