package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t unless got matches want element by
// element within the absolute tolerance eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps {
			t.Fatalf("index %d: got %v, want %v (off by %v, eps %v)", i, got[i], want[i], d, eps)
		}
	}
}

// RequireFinite fails t at the first NaN or Inf sample.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d holds %v", i, v)
		}
	}
}

// MaxAbsDiff returns the largest per-element absolute difference, or an
// error when the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	var worst float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > worst {
			worst = d
		}
	}
	return worst, nil
}

// RMS returns the root-mean-square amplitude of data, 0 for empty input.
func RMS(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(data)))
}

// PeakIndex returns the index of the largest absolute value in data.
func PeakIndex(data []float64) int {
	idx := 0
	peak := 0.0
	for i, v := range data {
		if av := math.Abs(v); av > peak {
			peak = av
			idx = i
		}
	}
	return idx
}
