// Package attrib derives instantaneous attributes of trace data from
// the analytic signal.
//
// [AnalyticSignal] builds the complex extension in the frequency domain
// by dropping negative-frequency content, [Envelope] takes its
// magnitude, and [Compute] returns envelope, wrapped phase, and
// instantaneous frequency together. The frequency is the sample-to-
// sample derivative of the unwrapped phase, so it is local: a chirp
// reads back its sweep, not an average.
package attrib
