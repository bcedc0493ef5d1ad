// Package fir runs designed FIR taps over trace samples in direct form.
//
// A [Filter] holds the taps and a circular-buffer delay line, and is the
// execution engine behind the causal and zero-phase apply paths in
// dsp/filter/design. [Filter.Prime] preloads the delay line with a
// constant history, which those paths use to start a pass without an
// edge transient. For kernels longer than a few hundred taps, FFT-based
// convolution (dsp/conv) is the better fit.
//
// Tap design (windowed-sinc, Kaiser) lives in dsp/filter/design; this
// package only applies what was designed.
package fir
