// Package wavelet provides periodized orthogonal multiresolution
// transforms for trace data.
//
// [Decompose] splits a signal into a [Pyramid]: one coarse
// approximation band plus one detail band per level, coarsest first.
// [Reconstruct] inverts the split exactly, and [Filter] wires the two
// into a lossless round trip that callers can interpose band edits
// into. [Denoise] is the stock edit: soft thresholding of each detail
// band at its own deviation, the classic recipe for suppressing
// broadband noise in marine records.
//
// Supported families are haar, db2, db4, db6 and sym4. Signals of any
// length are accepted; odd lengths are extended by edge replication
// per level and restored on reconstruction.
package wavelet
