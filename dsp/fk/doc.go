// Package fk filters 2-D trace sections in the frequency-wavenumber
// domain.
//
// The section is transformed over both axes, multiplied by the spectrum of
// an isotropic Gaussian taper, and transformed back. In the space domain
// this is a wrap-around smoothing over an order x order neighborhood, the
// standard pre-pass for dip and coherent-noise suppression on shot
// gathers. The taper is sum-normalized, so DC (the section mean) passes
// unchanged.
package fk
