// Command filtinfo designs a trace filter from flags and prints its
// coefficients and frequency response: magnitude, unwrapped phase, and
// group delay. Linear-phase FIR designs read off as a constant delay
// of (taps-1)/2 samples.
//
// Usage:
//
//	filtinfo [flags]
//
// Examples:
//
//	filtinfo -family butterworth -band lowpass -order 4 -cutoff 60
//	filtinfo -family chebyshev2 -band bandpass -order 6 -ripple 40 -low 10 -high 80
//	filtinfo -family fir-kaiser -band highpass -order 101 -cutoff 30 -beta 6
//	filtinfo -family fir-kaiser -band lowpass -order 101 -cutoff 40 -atten 70
//	filtinfo -family fir-window -band lowpass -order 65 -cutoff 55 -window blackman
//	filtinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/seistools/tracedsp/dsp/filter/design"
	"github.com/seistools/tracedsp/dsp/spectrum"
	"github.com/seistools/tracedsp/dsp/window"
)

var families = map[string]design.Family{
	"butterworth":    design.FamilyButterworth,
	"chebyshev2":     design.FamilyChebyshev2,
	"fir-window":     design.FamilyFIRWindow,
	"fir-kaiser":     design.FamilyFIRKaiser,
	"fir-zero-phase": design.FamilyFIRZeroPhase,
}

var bands = map[string]design.Band{
	"lowpass":  design.BandLowpass,
	"highpass": design.BandHighpass,
	"bandpass": design.BandBandpass,
}

var windows = map[string]window.Type{
	"rectangular":      window.TypeRectangular,
	"bartlett":         window.TypeBartlett,
	"hann":             window.TypeHann,
	"hamming":          window.TypeHamming,
	"blackman":         window.TypeBlackman,
	"blackman-harris":  window.TypeBlackmanHarris,
	"blackman-nuttall": window.TypeBlackmanNuttall,
	"tukey":            window.TypeTukey,
	"gauss":            window.TypeGauss,
	"kaiser":           window.TypeKaiser,
}

func main() {
	familyName := flag.String("family", "butterworth", "design family (use -list to see names)")
	bandName := flag.String("band", "lowpass", "passband shape: lowpass, highpass, bandpass")
	order := flag.Int("order", 4, "filter order for IIR families, tap count for FIR families")
	cutoff := flag.Float64("cutoff", 100, "cutoff frequency in Hz for lowpass and highpass")
	low := flag.Float64("low", 20, "lower band edge in Hz for bandpass")
	high := flag.Float64("high", 120, "upper band edge in Hz for bandpass")
	rate := flag.Float64("rate", 1000, "sample rate in Hz")
	ripple := flag.Float64("ripple", 40, "stopband attenuation in dB for chebyshev2")
	winName := flag.String("window", "hamming", "window name for fir-window designs")
	beta := flag.Float64("beta", 8.6, "beta shape parameter for fir-kaiser designs")
	atten := flag.Float64("atten", 0, "derive fir-kaiser beta from this stopband attenuation in dB (overrides -beta)")
	points := flag.Int("points", 21, "rows in the frequency response table")
	list := flag.Bool("list", false, "list family, band, and window names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filtinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Designs a trace filter and prints coefficients and response.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filtinfo -family butterworth -band lowpass -order 4 -cutoff 60\n")
		fmt.Fprintf(os.Stderr, "  filtinfo -family chebyshev2 -band bandpass -order 6 -low 10 -high 80\n")
		fmt.Fprintf(os.Stderr, "  filtinfo -family fir-kaiser -band highpass -order 101 -cutoff 30 -beta 6\n")
		fmt.Fprintf(os.Stderr, "  filtinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	kaiserBeta := *beta
	if *atten > 0 {
		kaiserBeta = window.KaiserBetaForAttenuation(*atten)
	}

	spec, err := buildSpec(*familyName, *bandName, *order, *cutoff, *low, *high, *ripple, *winName, kaiserBeta)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	coeffs, err := spec.Design(*rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *points < 2 {
		fmt.Fprintf(os.Stderr, "error: -points must be at least 2, got %d\n", *points)
		os.Exit(1)
	}

	printSummary(spec, coeffs, *rate)
	printCoefficients(coeffs)
	printResponse(coeffs, *rate, *points)
}

func printList() {
	groups := []struct {
		title string
		names []string
	}{
		{"families", sortedKeys(families)},
		{"bands", sortedKeys(bands)},
		{"windows", sortedKeys(windows)},
	}
	for _, g := range groups {
		fmt.Printf("%s:\n", g.title)
		for _, n := range g.names {
			fmt.Printf("  %s\n", n)
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func buildSpec(familyName, bandName string, order int, cutoff, low, high, ripple float64, winName string, beta float64) (design.Spec, error) {
	family, ok := families[strings.ToLower(strings.TrimSpace(familyName))]
	if !ok {
		return design.Spec{}, fmt.Errorf("unknown family %q (use -list to see available)", familyName)
	}
	band, ok := bands[strings.ToLower(strings.TrimSpace(bandName))]
	if !ok {
		return design.Spec{}, fmt.Errorf("unknown band %q (use -list to see available)", bandName)
	}
	win, ok := windows[strings.ToLower(strings.TrimSpace(winName))]
	if !ok {
		return design.Spec{}, fmt.Errorf("unknown window %q (use -list to see available)", winName)
	}

	return design.Spec{
		Family:   family,
		Band:     band,
		Order:    order,
		Freq:     cutoff,
		FreqMin:  low,
		FreqMax:  high,
		RippleDB: ripple,
		Window:   win,
		Beta:     beta,
	}, nil
}

func printSummary(spec design.Spec, coeffs design.Coefficients, rate float64) {
	fmt.Printf("Filter   %s %s\n", spec.Family, spec.Band)
	fmt.Printf("Order    %d\n", coeffs.Order())
	fmt.Printf("Rate     %g Hz\n", rate)
	if spec.Band == design.BandBandpass {
		fmt.Printf("Band     %g - %g Hz\n", spec.FreqMin, spec.FreqMax)
	} else {
		fmt.Printf("Cutoff   %g Hz\n", spec.Freq)
	}
	if w := specWindow(spec); w != nil {
		a := window.Analyze(w)
		fmt.Printf("Window   %s (ENBW %.2f bins, peak sidelobe %.1f dB)\n",
			windowLabel(spec), a.ENBW, a.HighestSidelobeDB)
	}
	fmt.Printf("Stable   %t\n\n", coeffs.Stable())
}

// specWindow rebuilds the taper a FIR design uses, for reporting. IIR
// families have none.
func specWindow(spec design.Spec) []float64 {
	switch spec.Family {
	case design.FamilyFIRWindow:
		return window.Generate(spec.Window, spec.Order)
	case design.FamilyFIRKaiser:
		w, err := window.Kaiser(spec.Order, spec.Beta)
		if err != nil {
			return nil
		}
		return w
	case design.FamilyFIRZeroPhase:
		return window.Generate(window.TypeBlackmanHarris, spec.Order)
	default:
		return nil
	}
}

func windowLabel(spec design.Spec) string {
	switch spec.Family {
	case design.FamilyFIRKaiser:
		return fmt.Sprintf("kaiser beta %.3f", spec.Beta)
	case design.FamilyFIRZeroPhase:
		return "blackman-harris"
	default:
		return windowName(spec.Window)
	}
}

func windowName(t window.Type) string {
	for name, typ := range windows {
		if typ == t {
			return name
		}
	}
	return "custom"
}

func printCoefficients(coeffs design.Coefficients) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if coeffs.IsIIR() {
		if _, err := fmt.Fprintf(tw, "Section\tB0\tB1\tB2\tA1\tA2\n"); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
			return
		}
		if _, err := fmt.Fprintf(tw, "-------\t--\t--\t--\t--\t--\n"); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
			return
		}
		for i, s := range coeffs.Sections() {
			if _, err := fmt.Fprintf(tw, "%d\t%+.8f\t%+.8f\t%+.8f\t%+.8f\t%+.8f\n",
				i+1, s.B0, s.B1, s.B2, s.A1, s.A2); err != nil {
				fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
				return
			}
		}
	} else {
		if _, err := fmt.Fprintf(tw, "Tap\tWeight\n"); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
			return
		}
		if _, err := fmt.Fprintf(tw, "---\t------\n"); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
			return
		}
		for i, tap := range coeffs.Taps() {
			if _, err := fmt.Fprintf(tw, "%d\t%+.8f\n", i, tap); err != nil {
				fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
				return
			}
		}
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return
	}
	fmt.Println()
}

func printResponse(coeffs design.Coefficients, rate float64, points int) {
	// A grid of this many points from DC to Nyquist is the one-sided
	// axis of a 2*(points-1) transform, which is also the bin spacing
	// the group-delay difference needs.
	fftSize := 2 * (points - 1)
	freqs := spectrum.FrequencyAxis(fftSize, rate)

	resp := make([]complex128, len(freqs))
	for i, f := range freqs {
		resp[i] = coeffs.Response(f, rate)
	}
	phase := spectrum.UnwrapPhase(spectrum.Phase(resp))
	delay, err := spectrum.GroupDelayFromPhase(phase, fftSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: group delay: %v\n", err)
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Freq [Hz]\tMagnitude [dB]\tPhase [rad]\tDelay [smp]\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "---------\t--------------\t-----------\t-----------\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for i, f := range freqs {
		if _, err := fmt.Fprintf(tw, "%.2f\t%.2f\t%+.3f\t%.2f\n",
			f, coeffs.MagnitudeDB(f, rate), phase[i], delay[i]); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
