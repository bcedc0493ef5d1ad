package core

import "errors"

// Engine-wide error kinds. Packages wrap these with fmt.Errorf("%w: ...")
// adding operation-specific detail, so callers branch with errors.Is while
// still seeing the offending values in the message.
var (
	// ErrParameter reports a specification that fails validation before
	// any numeric work starts: cutoff at or above Nyquist, inverted band
	// edges, non-positive order or ripple, a level or order beyond the
	// input's capacity.
	ErrParameter = errors.New("tracedsp: invalid parameter")

	// ErrComputation reports a numeric failure after validation passed:
	// non-finite synthesized coefficients, an unstable section, a
	// singular solve. The underlying cause is chained when one exists.
	ErrComputation = errors.New("tracedsp: computation failed")

	// ErrShortSignal reports an input too short for the requested
	// operation (zero-phase padding, wavelet decomposition depth).
	ErrShortSignal = errors.New("tracedsp: signal too short")
)
