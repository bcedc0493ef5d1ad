package wavelet

import (
	"errors"
	"math"
	"testing"

	"github.com/seistools/tracedsp/dsp/core"
	"github.com/seistools/tracedsp/internal/testutil"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestDecompose_HaarKnownValues(t *testing.T) {
	signal := []float64{1, 2, 3, 4}
	root2 := math.Sqrt2

	p, err := Decompose(signal, FamilyHaar, 1)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, p.Approx, []float64{3 / root2, 7 / root2}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, p.Details[0], []float64{-1 / root2, -1 / root2}, 1e-12)

	p, err = Decompose(signal, FamilyHaar, 2)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, p.Approx, []float64{5}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, p.Details[0], []float64{-2}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, p.Details[1], []float64{-1 / root2, -1 / root2}, 1e-12)
}

func TestDecompose_PyramidShape(t *testing.T) {
	signal := testutil.DeterministicNoise(1, 1, 37)
	p, err := Decompose(signal, FamilyHaar, 3)
	if err != nil {
		t.Fatal(err)
	}

	if p.Level() != 3 {
		t.Fatalf("Level()=%d, want 3", p.Level())
	}
	// 37 -> pad 38 -> 19 -> pad 20 -> 10 -> 5, coarsest first.
	wantLens := []int{5, 10, 19}
	for i, want := range wantLens {
		if len(p.Details[i]) != want {
			t.Errorf("detail %d: %d samples, want %d", i, len(p.Details[i]), want)
		}
	}
	if len(p.Approx) != 5 {
		t.Errorf("approx: %d samples, want 5", len(p.Approx))
	}
	wantPadded := []bool{false, true, true}
	for i, want := range wantPadded {
		if p.Padded[i] != want {
			t.Errorf("padded[%d]=%v, want %v", i, p.Padded[i], want)
		}
	}
}

func TestFilter_RoundTrip(t *testing.T) {
	families := []Family{FamilyHaar, FamilyDB2, FamilyDB4, FamilyDB6, FamilySym4}
	lengths := []int{16, 37, 100, 129}

	for _, family := range families {
		for _, n := range lengths {
			signal := testutil.DeterministicNoise(int64(n), 1, n)
			for level := 1; level <= 4; level++ {
				got, err := Filter(signal, family, level)
				if err != nil {
					t.Fatalf("%v n=%d level=%d: %v", family, n, level, err)
				}
				if len(got) != n {
					t.Fatalf("%v n=%d level=%d: output length %d", family, n, level, len(got))
				}
				if diff := testutil.MaxAbsDiff(got, signal); diff >= 1e-9 {
					t.Errorf("%v n=%d level=%d: round trip error %.3g", family, n, level, diff)
				}
			}
		}
	}
}

func TestFilter_MinimumLength(t *testing.T) {
	// Eight samples at level 3 bottoms out at a single approximation
	// coefficient, with the db6 filter wrapping several times.
	signal := testutil.DeterministicNoise(9, 1, 8)
	got, err := Filter(signal, FamilyDB6, 3)
	if err != nil {
		t.Fatal(err)
	}
	if diff := testutil.MaxAbsDiff(got, signal); diff >= 1e-9 {
		t.Errorf("round trip error %.3g", diff)
	}
}

func TestDecompose_DetailsVanishOnConstant(t *testing.T) {
	p, err := Decompose(testutil.DC(3, 64), FamilyDB6, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i, det := range p.Details {
		for _, v := range det {
			if math.Abs(v) > 1e-12 {
				t.Fatalf("detail %d carries %.3g on a constant input", i, v)
			}
		}
	}
	// Each split scales a constant by sqrt(2).
	want := 3 * math.Pow(math.Sqrt2, 3)
	for _, v := range p.Approx {
		if !almostEqual(v, want, 1e-12) {
			t.Fatalf("approx %.15f, want %.15f", v, want)
		}
	}
}

func TestDecompose_PreservesEnergy(t *testing.T) {
	signal := testutil.DeterministicNoise(4, 1, 64)
	p, err := Decompose(signal, FamilyDB4, 3)
	if err != nil {
		t.Fatal(err)
	}

	sumSq := func(x []float64) float64 {
		var s float64
		for _, v := range x {
			s += v * v
		}
		return s
	}
	got := sumSq(p.Approx)
	for _, det := range p.Details {
		got += sumSq(det)
	}
	if want := sumSq(signal); !almostEqual(got, want, 1e-10) {
		t.Fatalf("band energy %.15f, signal energy %.15f", got, want)
	}
}

func TestDecompose_InputUntouched(t *testing.T) {
	signal := testutil.DeterministicNoise(6, 1, 50)
	orig := append([]float64(nil), signal...)
	if _, err := Decompose(signal, FamilySym4, 3); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, signal, orig, 0)
}

func TestDecompose_InvalidInputs(t *testing.T) {
	signal := testutil.DeterministicNoise(2, 1, 16)
	cases := []struct {
		name   string
		signal []float64
		family Family
		level  int
		want   error
	}{
		{"zero level", signal, FamilyHaar, 0, core.ErrParameter},
		{"negative level", signal, FamilyHaar, -1, core.ErrParameter},
		{"unknown family", signal, Family(99), 2, core.ErrParameter},
		{"too deep", signal[:7], FamilyHaar, 3, core.ErrShortSignal},
		{"empty signal", nil, FamilyHaar, 1, core.ErrShortSignal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decompose(tc.signal, tc.family, tc.level); !errors.Is(err, tc.want) {
				t.Fatalf("err=%v, want %v", err, tc.want)
			}
		})
	}
}

func TestReconstruct_InvalidPyramids(t *testing.T) {
	signal := testutil.DeterministicNoise(3, 1, 16)
	valid, err := Decompose(signal, FamilyHaar, 2)
	if err != nil {
		t.Fatal(err)
	}

	truncated := valid.Clone()
	truncated.Details[1] = truncated.Details[1][:3]

	misflagged := valid.Clone()
	misflagged.Padded = []bool{true}

	cases := []struct {
		name string
		p    Pyramid
	}{
		{"empty pyramid", Pyramid{}},
		{"no approximation", Pyramid{Details: [][]float64{{1}}}},
		{"detail length mismatch", truncated},
		{"padding flag mismatch", misflagged},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Reconstruct(tc.p, FamilyHaar); !errors.Is(err, core.ErrParameter) {
				t.Fatalf("err=%v, want ErrParameter", err)
			}
		})
	}
}

func TestReconstruct_NilPaddedFlags(t *testing.T) {
	// Even lengths never pad, so dropping the bookkeeping entirely must
	// not change the result.
	signal := testutil.DeterministicNoise(8, 1, 16)
	p, err := Decompose(signal, FamilyDB2, 2)
	if err != nil {
		t.Fatal(err)
	}
	p.Padded = nil

	got, err := Reconstruct(p, FamilyDB2)
	if err != nil {
		t.Fatal(err)
	}
	if diff := testutil.MaxAbsDiff(got, signal); diff >= 1e-9 {
		t.Errorf("round trip error %.3g", diff)
	}
}

func TestSoftThreshold_KnownBand(t *testing.T) {
	p := Pyramid{
		Approx:  []float64{1, 2},
		Details: [][]float64{{3, -1, 0.5}},
	}
	got := p.SoftThreshold()

	// Population deviation of {3, -1, 0.5} is 7/(3*sqrt(2)).
	sigma := 7 / (3 * math.Sqrt2)
	want := []float64{3 - sigma, 0, 0}
	testutil.RequireSliceNearlyEqual(t, got.Details[0], want, 1e-12)
	testutil.RequireSliceNearlyEqual(t, got.Approx, p.Approx, 0)

	// The receiver keeps its bands.
	testutil.RequireSliceNearlyEqual(t, p.Details[0], []float64{3, -1, 0.5}, 0)
}

func TestDenoise_ConstantPassesThrough(t *testing.T) {
	got, err := Denoise(testutil.DC(5, 64), FamilyDB2, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range got {
		if !almostEqual(v, 5, 1e-12) {
			t.Fatalf("sample %d: %.15f, want 5", i, v)
		}
	}
}

func TestDenoise_ReducesBroadbandNoise(t *testing.T) {
	const n = 512
	clean := testutil.DeterministicSine(15, 1000, 1, n)
	noise := testutil.DeterministicNoise(10, 0.3, n)
	noisy := make([]float64, n)
	for i := range noisy {
		noisy[i] = clean[i] + noise[i]
	}

	got, err := Denoise(noisy, FamilyDB4, 4)
	if err != nil {
		t.Fatal(err)
	}

	residual := func(x []float64) float64 {
		diff := make([]float64, n)
		for i := range diff {
			diff[i] = x[i] - clean[i]
		}
		return testutil.RMS(diff)
	}
	before, after := residual(noisy), residual(got)
	if after >= 0.9*before {
		t.Fatalf("residual %.4f after denoising, %.4f before", after, before)
	}
}

func TestSpec_MatchesFreeFunctions(t *testing.T) {
	signal := testutil.DeterministicNoise(12, 1, 64)
	spec := Spec{Family: FamilySym4, Level: 3}

	wantPyramid, err := Decompose(signal, FamilySym4, 3)
	if err != nil {
		t.Fatal(err)
	}
	gotPyramid, err := spec.Decompose(signal)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, gotPyramid.Approx, wantPyramid.Approx, 0)
	for i := range wantPyramid.Details {
		testutil.RequireSliceNearlyEqual(t, gotPyramid.Details[i], wantPyramid.Details[i], 0)
	}

	got, err := spec.Filter(signal)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Filter(signal, FamilySym4, 3)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)

	got, err = spec.Denoise(signal)
	if err != nil {
		t.Fatal(err)
	}
	want, err = Denoise(signal, FamilySym4, 3)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func BenchmarkDecompose(b *testing.B) {
	signal := testutil.DeterministicNoise(1, 1, 4096)
	b.SetBytes(8 * 4096)
	b.ResetTimer()
	for range b.N {
		if _, err := Decompose(signal, FamilyDB4, 5); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFilter(b *testing.B) {
	signal := testutil.DeterministicNoise(1, 1, 4096)
	b.SetBytes(8 * 4096)
	b.ResetTimer()
	for range b.N {
		if _, err := Filter(signal, FamilyDB4, 5); err != nil {
			b.Fatal(err)
		}
	}
}
