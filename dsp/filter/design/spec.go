package design

import (
	"fmt"

	"github.com/seistools/tracedsp/dsp/core"
	"github.com/seistools/tracedsp/dsp/window"
)

// Family selects the filter design method.
type Family int

const (
	FamilyButterworth Family = iota
	FamilyChebyshev2
	FamilyFIRWindow
	FamilyFIRKaiser
	FamilyFIRZeroPhase
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyButterworth:
		return "butterworth"
	case FamilyChebyshev2:
		return "chebyshev2"
	case FamilyFIRWindow:
		return "fir-window"
	case FamilyFIRKaiser:
		return "fir-kaiser"
	case FamilyFIRZeroPhase:
		return "fir-zero-phase"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// Band selects the passband shape.
type Band int

const (
	BandLowpass Band = iota
	BandHighpass
	BandBandpass
)

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandLowpass:
		return "lowpass"
	case BandHighpass:
		return "highpass"
	case BandBandpass:
		return "bandpass"
	default:
		return fmt.Sprintf("band(%d)", int(b))
	}
}

// DefaultFIRWindow is the recommended window for FIRWindow designs when
// the caller has no specific sidelobe requirement. The Spec zero value is
// a rectangular (unwindowed) design; selection is always explicit.
const DefaultFIRWindow = window.TypeHamming

// Spec describes a filter as data, so designs can be built from
// configuration or serialized job descriptions. Fields beyond the chosen
// family and band are ignored.
type Spec struct {
	Family Family
	Band   Band

	// Order is the IIR filter order, or the tap count for FIR families.
	Order int

	// Freq is the cutoff in Hz for lowpass and highpass designs.
	Freq float64

	// FreqMin and FreqMax are the band edges in Hz for bandpass designs.
	FreqMin float64
	FreqMax float64

	// RippleDB is the Chebyshev Type II stopband attenuation in dB.
	RippleDB float64

	// Window is the FIR window kind for FamilyFIRWindow.
	Window window.Type

	// Beta is the Kaiser shape parameter for FamilyFIRKaiser.
	Beta float64
}

// Design synthesizes the described filter at the given sample rate.
func (s Spec) Design(sampleRate float64) (Coefficients, error) {
	switch s.Family {
	case FamilyButterworth:
		return Butterworth(s.Band, s.Order, s.cutoffs(), sampleRate)
	case FamilyChebyshev2:
		return Chebyshev2(s.Band, s.Order, s.RippleDB, s.cutoffs(), sampleRate)
	case FamilyFIRWindow:
		return FIRWindow(s.Band, s.Order, s.cutoffs(), sampleRate, s.Window)
	case FamilyFIRKaiser:
		return FIRKaiser(s.Band, s.Order, s.cutoffs(), sampleRate, s.Beta)
	case FamilyFIRZeroPhase:
		if s.Band != BandBandpass {
			return Coefficients{}, fmt.Errorf("%w: design: %s requires %s, got %s",
				core.ErrParameter, s.Family, BandBandpass, s.Band)
		}

		return FIRZeroPhaseBandpass(s.Order, s.FreqMin, s.FreqMax, sampleRate)
	default:
		return Coefficients{}, fmt.Errorf("%w: design: unknown filter family %s", core.ErrParameter, s.Family)
	}
}

func (s Spec) cutoffs() []float64 {
	if s.Band == BandBandpass {
		return []float64{s.FreqMin, s.FreqMax}
	}

	return []float64{s.Freq}
}
