package window

import (
	"errors"
	"math"
	"testing"

	"github.com/seistools/tracedsp/dsp/core"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestGenerate_NonPositiveLength(t *testing.T) {
	if got := Generate(TypeHann, 0); got != nil {
		t.Fatalf("length 0: got %v, want nil", got)
	}
	if got := Generate(TypeKaiser, -4); got != nil {
		t.Fatalf("negative length: got %v, want nil", got)
	}
}

func TestGenerate_BartlettExact(t *testing.T) {
	// Positions n/4 and the triangle arithmetic are all dyadic, so the
	// coefficients are exact.
	want := []float64{0, 0.5, 1, 0.5, 0}

	got := Generate(TypeBartlett, 5)
	for i, w := range got {
		if w != want[i] {
			t.Fatalf("bartlett[%d] = %v, want %v", i, w, want[i])
		}
	}
}

func TestGenerate_RectangularAllOnes(t *testing.T) {
	for i, w := range Generate(TypeRectangular, 7) {
		if w != 1 {
			t.Fatalf("rectangular[%d] = %v, want 1", i, w)
		}
	}
}

func TestGenerate_CosineEndsAndPeak(t *testing.T) {
	// For a symmetric odd-length window the ends evaluate the cosine sum
	// at phase 0 and 2pi, the centre at pi. Ends are the alternating-sign
	// sum of the term table, the centre is the plain sum, which every
	// table here makes exactly 1.
	cases := []struct {
		name string
		typ  Type
		end  float64
	}{
		{"hann", TypeHann, 0},
		{"hamming", TypeHamming, 0.08},
		{"blackman", TypeBlackman, 0},
		{"blackman-harris", TypeBlackmanHarris, 0.00006},
		{"blackman-nuttall", TypeBlackmanNuttall, 0.0003628},
	}

	for _, tc := range cases {
		w := Generate(tc.typ, 9)
		if !almostEqual(w[0], tc.end, eps) || !almostEqual(w[8], tc.end, eps) {
			t.Fatalf("%s ends = %v, %v, want %v", tc.name, w[0], w[8], tc.end)
		}
		if !almostEqual(w[4], 1, eps) {
			t.Fatalf("%s centre = %v, want 1", tc.name, w[4])
		}
	}
}

func TestGenerate_Symmetric(t *testing.T) {
	for _, typ := range []Type{TypeBartlett, TypeHann, TypeHamming, TypeBlackman, TypeBlackmanHarris, TypeGauss, TypeKaiser} {
		w := Generate(typ, 33, WithAlpha(6))
		for i := range w {
			j := len(w) - 1 - i
			if !almostEqual(w[i], w[j], eps) {
				t.Fatalf("type %d asymmetric at %d: %v vs %v", typ, i, w[i], w[j])
			}
		}
	}
}

func TestGenerate_PeriodicIsTruncatedSymmetric(t *testing.T) {
	// The periodic length-N window samples the same positions n/N as the
	// first N points of the symmetric length-N+1 window, so the
	// coefficients match bit for bit.
	for _, typ := range []Type{TypeHann, TypeBlackmanHarris} {
		per := Generate(typ, 16, WithPeriodic())
		sym := Generate(typ, 17)
		for i, w := range per {
			if w != sym[i] {
				t.Fatalf("type %d index %d: periodic %v != symmetric %v", typ, i, w, sym[i])
			}
		}
	}
}

func TestWithAlpha_IgnoresNegative(t *testing.T) {
	got := Generate(TypeGauss, 9, WithAlpha(-2))
	want := Generate(TypeGauss, 9)
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("negative alpha not ignored at %d: %v vs %v", i, got[i], want[i])
		}
	}
}

func TestGenerate_TukeyShapes(t *testing.T) {
	for i, w := range Generate(TypeTukey, 9, WithAlpha(0)) {
		if w != 1 {
			t.Fatalf("alpha 0 should be rectangular, got %v at %d", w, i)
		}
	}

	asHann := Generate(TypeTukey, 9, WithAlpha(1))
	hann := Generate(TypeHann, 9)
	for i := range asHann {
		if asHann[i] != hann[i] {
			t.Fatalf("alpha 1 should match hann at %d: %v vs %v", i, asHann[i], hann[i])
		}
	}

	// Alpha 0.5 on 9 points: cosine ramps over the outer quarter on each
	// side, flat at 1 in between.
	w := Generate(TypeTukey, 9, WithAlpha(0.5))
	if w[0] != 0 || w[8] != 0 {
		t.Fatalf("ends = %v, %v, want 0", w[0], w[8])
	}
	if !almostEqual(w[1], 0.5, eps) || !almostEqual(w[7], 0.5, eps) {
		t.Fatalf("ramp midpoints = %v, %v, want 0.5", w[1], w[7])
	}
	for i := 2; i <= 6; i++ {
		if w[i] != 1 {
			t.Fatalf("flat top at %d = %v, want 1", i, w[i])
		}
	}
}

func TestGenerate_GaussHalfPowerEdges(t *testing.T) {
	// Alpha 1 puts the edges at exp(-ln 2) = one half.
	w := Generate(TypeGauss, 5, WithAlpha(1))
	if w[2] != 1 {
		t.Fatalf("centre = %v, want 1", w[2])
	}
	if !almostEqual(w[0], 0.5, eps) || !almostEqual(w[4], 0.5, eps) {
		t.Fatalf("edges = %v, %v, want 0.5", w[0], w[4])
	}
}

func TestKaiser_BetaZeroIsRectangular(t *testing.T) {
	w, err := Kaiser(6, 0)
	if err != nil {
		t.Fatalf("Kaiser: %v", err)
	}
	for i, v := range w {
		if v != 1 {
			t.Fatalf("kaiser[%d] = %v, want 1", i, v)
		}
	}
}

func TestKaiser_MatchesGenerate(t *testing.T) {
	w, err := Kaiser(21, 6)
	if err != nil {
		t.Fatalf("Kaiser: %v", err)
	}

	want := Generate(TypeKaiser, 21, WithAlpha(6))
	for i := range w {
		if w[i] != want[i] {
			t.Fatalf("index %d: %v != %v", i, w[i], want[i])
		}
	}
}

func TestKaiser_PeakAndTails(t *testing.T) {
	w, err := Kaiser(9, 8.6)
	if err != nil {
		t.Fatalf("Kaiser: %v", err)
	}

	// The centre evaluates I0(beta)/I0(beta).
	if w[4] != 1 {
		t.Fatalf("centre = %v, want exactly 1", w[4])
	}
	if w[0] > 0.01 {
		t.Fatalf("end = %v, want near zero for beta 8.6", w[0])
	}
	for i := 1; i <= 4; i++ {
		if w[i] <= w[i-1] {
			t.Fatalf("not strictly increasing toward centre: w[%d]=%v w[%d]=%v", i-1, w[i-1], i, w[i])
		}
	}
}

func TestKaiser_Validation(t *testing.T) {
	cases := []struct {
		name string
		size int
		beta float64
	}{
		{"zero size", 0, 2},
		{"negative beta", 8, -0.5},
		{"nan beta", 8, math.NaN()},
	}

	for _, tc := range cases {
		if _, err := Kaiser(tc.size, tc.beta); !errors.Is(err, core.ErrParameter) {
			t.Fatalf("%s: err = %v, want core.ErrParameter", tc.name, err)
		}
	}
}

func TestKaiserBetaForAttenuation(t *testing.T) {
	if got := KaiserBetaForAttenuation(60); !almostEqual(got, 5.65326, 1e-10) {
		t.Fatalf("60 dB: beta = %v, want 5.65326", got)
	}
	if got := KaiserBetaForAttenuation(21); got != 0 {
		t.Fatalf("21 dB: beta = %v, want 0", got)
	}
	if got := KaiserBetaForAttenuation(5); got != 0 {
		t.Fatalf("5 dB: beta = %v, want 0", got)
	}

	// The sign of the attenuation does not matter.
	if KaiserBetaForAttenuation(-60) != KaiserBetaForAttenuation(60) {
		t.Fatal("negative attenuation should behave like its magnitude")
	}

	// More attenuation always needs a larger beta, across both branches
	// of the fit.
	prev := 0.0
	for _, a := range []float64{25, 35, 45, 55, 65, 90} {
		b := KaiserBetaForAttenuation(a)
		if b <= prev {
			t.Fatalf("beta not increasing: %v dB gives %v after %v", a, b, prev)
		}
		prev = b
	}
}

func TestApplyCoefficients(t *testing.T) {
	samples := []float64{2, 3, 4}
	coeffs := []float64{0.5, 0.25, 2}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatalf("ApplyCoefficients: %v", err)
	}

	want := []float64{1, 0.75, 8}
	for i := range out {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
	if samples[0] != 2 || samples[2] != 4 {
		t.Fatal("input samples were modified")
	}

	if _, err := ApplyCoefficients([]float64{1, 2}, []float64{1}); !errors.Is(err, core.ErrParameter) {
		t.Fatalf("mismatch err = %v, want core.ErrParameter", err)
	}
}

func TestApplyCoefficientsInPlace(t *testing.T) {
	samples := []float64{2, 3, 4}
	if err := ApplyCoefficientsInPlace(samples, []float64{0.5, 0.25, 2}); err != nil {
		t.Fatalf("ApplyCoefficientsInPlace: %v", err)
	}

	want := []float64{1, 0.75, 8}
	for i := range samples {
		if samples[i] != want[i] {
			t.Fatalf("samples[%d] = %v, want %v", i, samples[i], want[i])
		}
	}

	untouched := []float64{1, 2}
	if err := ApplyCoefficientsInPlace(untouched, []float64{1}); !errors.Is(err, core.ErrParameter) {
		t.Fatalf("mismatch err = %v, want core.ErrParameter", err)
	}
	if untouched[0] != 1 || untouched[1] != 2 {
		t.Fatal("failed apply modified its input")
	}
}

func TestAnalyze_Rectangular(t *testing.T) {
	a := Analyze(Generate(TypeRectangular, 16))

	if a.CoherentGain != 1 {
		t.Fatalf("coherent gain = %v, want 1", a.CoherentGain)
	}
	if a.ENBW != 1 {
		t.Fatalf("ENBW = %v, want 1", a.ENBW)
	}
	if !almostEqual(a.MainLobeWidthBins, 2, 0.05) {
		t.Fatalf("main lobe = %v bins, want 2", a.MainLobeWidthBins)
	}
	// The Dirichlet kernel's first sidelobe sits near -13.3 dB.
	if a.HighestSidelobeDB < -14 || a.HighestSidelobeDB > -13 {
		t.Fatalf("sidelobe = %v dB, want about -13.3", a.HighestSidelobeDB)
	}
}

func TestAnalyze_HannPeriodic(t *testing.T) {
	a := Analyze(Generate(TypeHann, 64, WithPeriodic()))

	// Over whole periods the cosine term sums to zero, so the gain and
	// bandwidth land on the textbook values almost exactly.
	if !almostEqual(a.CoherentGain, 0.5, 1e-9) {
		t.Fatalf("coherent gain = %v, want 0.5", a.CoherentGain)
	}
	if !almostEqual(a.ENBW, 1.5, 1e-9) {
		t.Fatalf("ENBW = %v, want 1.5", a.ENBW)
	}
	if !almostEqual(a.MainLobeWidthBins, 4, 0.05) {
		t.Fatalf("main lobe = %v bins, want 4", a.MainLobeWidthBins)
	}
	if a.HighestSidelobeDB < -33 || a.HighestSidelobeDB > -30 {
		t.Fatalf("sidelobe = %v dB, want about -31.5", a.HighestSidelobeDB)
	}
}

func TestAnalyze_MainLobeWidths(t *testing.T) {
	cases := []struct {
		typ    Type
		length int
		want   float64
		tol    float64
	}{
		{TypeRectangular, 64, 2, 0.1},
		{TypeHann, 64, 4, 0.1},
		{TypeBlackmanHarris, 128, 8, 0.3},
	}

	for _, tc := range cases {
		a := Analyze(Generate(tc.typ, tc.length, WithPeriodic()))
		if !almostEqual(a.MainLobeWidthBins, tc.want, tc.tol) {
			t.Fatalf("type %d: main lobe = %v bins, want %v", tc.typ, a.MainLobeWidthBins, tc.want)
		}
	}
}

func TestAnalyze_SidelobeLadder(t *testing.T) {
	// Each step down the ladder trades main lobe width for sidelobe
	// rejection; the ordering is what makes the windows worth having.
	ladder := []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman, TypeBlackmanHarris}

	prevSide := 0.0
	prevENBW := 0.0
	for i, typ := range ladder {
		a := Analyze(Generate(typ, 64))
		if i > 0 && a.HighestSidelobeDB >= prevSide {
			t.Fatalf("type %d sidelobe %v dB not below predecessor %v dB", typ, a.HighestSidelobeDB, prevSide)
		}
		if typ != TypeHamming && a.ENBW <= prevENBW {
			// Hamming narrows ENBW relative to Hann, so it sits out of
			// this particular ordering.
			t.Fatalf("type %d ENBW %v not above predecessor %v", typ, a.ENBW, prevENBW)
		}
		prevSide = a.HighestSidelobeDB
		if typ != TypeHamming {
			prevENBW = a.ENBW
		}
	}
}

func TestAnalyze_KaiserBetaTradeoff(t *testing.T) {
	low, err := Kaiser(64, 4)
	if err != nil {
		t.Fatalf("Kaiser: %v", err)
	}
	high, err := Kaiser(64, 8)
	if err != nil {
		t.Fatalf("Kaiser: %v", err)
	}

	la, ha := Analyze(low), Analyze(high)
	if ha.HighestSidelobeDB >= la.HighestSidelobeDB {
		t.Fatalf("beta 8 sidelobe %v dB should be below beta 4's %v dB", ha.HighestSidelobeDB, la.HighestSidelobeDB)
	}
	if ha.ENBW <= la.ENBW {
		t.Fatalf("beta 8 ENBW %v should exceed beta 4's %v", ha.ENBW, la.ENBW)
	}
}

func TestAnalyze_DegenerateInput(t *testing.T) {
	if a := Analyze(nil); a != (Analysis{}) {
		t.Fatalf("nil input: got %+v, want zero Analysis", a)
	}
	if a := Analyze(make([]float64, 8)); a != (Analysis{}) {
		t.Fatalf("all-zero input: got %+v, want zero Analysis", a)
	}
}
