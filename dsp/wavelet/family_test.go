package wavelet

import (
	"errors"
	"math"
	"testing"

	"github.com/seistools/tracedsp/dsp/core"
)

func TestParseFamily_RoundTrips(t *testing.T) {
	for _, name := range []string{"haar", "db2", "db4", "db6", "sym4"} {
		f, err := ParseFamily(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if f.String() != name {
			t.Errorf("%s parsed to %v", name, f)
		}
	}
}

func TestParseFamily_Unknown(t *testing.T) {
	if _, err := ParseFamily("coif1"); !errors.Is(err, core.ErrParameter) {
		t.Fatalf("err=%v, want ErrParameter", err)
	}
}

func TestScalingFilters_Orthonormal(t *testing.T) {
	wantLen := map[Family]int{
		FamilyHaar: 2,
		FamilyDB2:  4,
		FamilyDB4:  8,
		FamilyDB6:  12,
		FamilySym4: 8,
	}

	for family, n := range wantLen {
		h, g, err := family.filters()
		if err != nil {
			t.Fatal(err)
		}
		if len(h) != n || len(g) != n {
			t.Fatalf("%v: filter lengths %d/%d, want %d", family, len(h), len(g), n)
		}

		var sum, energy, gsum float64
		for j := range h {
			sum += h[j]
			energy += h[j] * h[j]
			gsum += g[j]
		}
		if !almostEqual(sum, math.Sqrt2, 1e-12) {
			t.Errorf("%v: scaling sum %.15f, want sqrt(2)", family, sum)
		}
		if !almostEqual(energy, 1, 1e-12) {
			t.Errorf("%v: scaling energy %.15f, want 1", family, energy)
		}
		if !almostEqual(gsum, 0, 1e-12) {
			t.Errorf("%v: wavelet sum %.3g, want 0", family, gsum)
		}

		// Orthogonality to even shifts of itself.
		for shift := 2; shift < n; shift += 2 {
			var dot float64
			for j := 0; j+shift < n; j++ {
				dot += h[j] * h[j+shift]
			}
			if !almostEqual(dot, 0, 1e-12) {
				t.Errorf("%v: shift %d correlation %.3g, want 0", family, shift, dot)
			}
		}
	}
}

func TestMirrorFilter(t *testing.T) {
	g := mirrorFilter([]float64{1, 2, 3, 4})
	want := []float64{4, -3, 2, -1}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("g=%v, want %v", g, want)
		}
	}
}
