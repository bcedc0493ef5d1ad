// Package trace holds the data model the engine operates on: a
// [Trace] is one evenly sampled channel, a [Section] is a rectangular
// stack of traces sharing rate and length (a line, a gather).
//
// The engine's transforms work on plain slices; [Section.MapTraces]
// bridges the two by running a 1-D transform across every trace, and
// [Section.Data] exports the dense matrix 2-D operations expect.
// Callers that want parallel fan-out drive the traces themselves; the
// engine never starts goroutines.
package trace
