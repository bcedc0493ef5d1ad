// Package qc screens sections for defective traces.
//
// A [Checker] flags dead traces (peak below a floor), clipped traces
// (too many samples at clip level), low-energy traces (RMS below a
// floor), amplitude anomalies (trace RMS far from the section mean),
// and mains hum (a 50 or 60 Hz component carrying too much of the
// trace power). Thresholds start from the Default* constants and are
// adjusted with options:
//
//	c := qc.New(qc.WithEnergyThreshold(1e-2))
//	report, err := c.Check(sec)
//
// Screens only report indices; deciding what to do with a flagged
// trace stays with the caller.
package qc
