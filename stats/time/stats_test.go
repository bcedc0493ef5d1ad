package time

import (
	"math"
	"testing"

	"github.com/seistools/tracedsp/internal/testutil"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}
	return math.Abs(a-b) <= tol
}

// makeSquare creates a +val/-val alternating square wave, the cleanest
// signal for exact zero-crossing counts.
func makeSquare(val float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i%2 == 0 {
			out[i] = val
		} else {
			out[i] = -val
		}
	}
	return out
}

func TestCalculate_Constant(t *testing.T) {
	s := Calculate(testutil.DC(1, 1000))

	if s.Length != 1000 {
		t.Errorf("Length: got %d, want 1000", s.Length)
	}
	if !almostEqual(s.Mean, 1, tolerance) {
		t.Errorf("Mean: got %g, want 1", s.Mean)
	}
	if !almostEqual(s.RMS, 1, tolerance) {
		t.Errorf("RMS: got %g, want 1", s.RMS)
	}
	if !almostEqual(s.Peak, 1, tolerance) {
		t.Errorf("Peak: got %g, want 1", s.Peak)
	}
	if !almostEqual(s.CrestFactor, 1, tolerance) {
		t.Errorf("CrestFactor: got %g, want 1", s.CrestFactor)
	}
	if s.ZeroCrossings != 0 {
		t.Errorf("ZeroCrossings: got %d, want 0", s.ZeroCrossings)
	}
	if !almostEqual(s.Variance, 0, tolerance) || !almostEqual(s.StdDev, 0, tolerance) {
		t.Errorf("Variance/StdDev: got %g/%g, want 0/0", s.Variance, s.StdDev)
	}
	if !almostEqual(s.Range, 0, tolerance) {
		t.Errorf("Range: got %g, want 0", s.Range)
	}
	if !almostEqual(s.Energy, 1000, tolerance) {
		t.Errorf("Energy: got %g, want 1000", s.Energy)
	}
	if !almostEqual(s.Power, 1, tolerance) {
		t.Errorf("Power: got %g, want 1", s.Power)
	}
}

func TestCalculate_Sine(t *testing.T) {
	// 20 full cycles: RMS is exactly amplitude / sqrt(2).
	s := Calculate(testutil.DeterministicSine(50, 1000, 2, 400))

	if !almostEqual(s.RMS, math.Sqrt2, tolerance) {
		t.Errorf("RMS: got %g, want sqrt(2)", s.RMS)
	}
	if !almostEqual(s.Mean, 0, tolerance) {
		t.Errorf("Mean: got %g, want 0", s.Mean)
	}
	if !almostEqual(s.Peak, 2, tolerance) {
		t.Errorf("Peak: got %g, want 2", s.Peak)
	}
	if !almostEqual(s.CrestFactor, math.Sqrt2, tolerance) {
		t.Errorf("CrestFactor: got %g, want sqrt(2)", s.CrestFactor)
	}
}

func TestCalculate_SquareWave(t *testing.T) {
	s := Calculate(makeSquare(3, 1000))

	if s.ZeroCrossings != 999 {
		t.Errorf("ZeroCrossings: got %d, want 999", s.ZeroCrossings)
	}
	if !almostEqual(s.RMS, 3, tolerance) {
		t.Errorf("RMS: got %g, want 3", s.RMS)
	}
	if !almostEqual(s.CrestFactor, 1, tolerance) {
		t.Errorf("CrestFactor: got %g, want 1", s.CrestFactor)
	}
}

func TestCalculate_KnownMoments(t *testing.T) {
	// Mean 5, population variance 4 by hand.
	s := Calculate([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	if !almostEqual(s.Mean, 5, tolerance) {
		t.Errorf("Mean: got %g, want 5", s.Mean)
	}
	if !almostEqual(s.Variance, 4, tolerance) {
		t.Errorf("Variance: got %g, want 4", s.Variance)
	}
	if !almostEqual(s.StdDev, 2, tolerance) {
		t.Errorf("StdDev: got %g, want 2", s.StdDev)
	}
	if !almostEqual(s.Skewness, 0.65625, tolerance) {
		t.Errorf("Skewness: got %g, want 0.65625", s.Skewness)
	}
	if !almostEqual(s.Kurtosis, -0.21875, tolerance) {
		t.Errorf("Kurtosis: got %g, want -0.21875", s.Kurtosis)
	}
	if s.Max != 9 || s.MaxPos != 7 || s.Min != 2 || s.MinPos != 0 {
		t.Errorf("extremes: got max %g@%d min %g@%d, want 9@7 2@0", s.Max, s.MaxPos, s.Min, s.MinPos)
	}
	if !almostEqual(s.Energy, 232, tolerance) || !almostEqual(s.Power, 29, tolerance) {
		t.Errorf("Energy/Power: got %g/%g, want 232/29", s.Energy, s.Power)
	}
}

func TestCalculate_MixedSigns(t *testing.T) {
	s := Calculate([]float64{0, 3, -5, 1})

	if s.Max != 3 || s.MaxPos != 1 {
		t.Errorf("Max: got %g@%d, want 3@1", s.Max, s.MaxPos)
	}
	if s.Min != -5 || s.MinPos != 2 {
		t.Errorf("Min: got %g@%d, want -5@2", s.Min, s.MinPos)
	}
	if !almostEqual(s.Peak, 5, tolerance) {
		t.Errorf("Peak: got %g, want 5", s.Peak)
	}
	if !almostEqual(s.Range, 8, tolerance) {
		t.Errorf("Range: got %g, want 8", s.Range)
	}
	// The leading zero sample produces no sign product; two crossings remain.
	if s.ZeroCrossings != 2 {
		t.Errorf("ZeroCrossings: got %d, want 2", s.ZeroCrossings)
	}
}

func TestCalculate_Empty(t *testing.T) {
	s := Calculate(nil)

	if s.Length != 0 {
		t.Errorf("Length: got %d, want 0", s.Length)
	}
	if !math.IsInf(s.RMSdB, -1) || !math.IsInf(s.PeakdB, -1) {
		t.Errorf("dB fields: got %g/%g, want -Inf/-Inf", s.RMSdB, s.PeakdB)
	}
}

func TestCalculate_DecibelFields(t *testing.T) {
	s := Calculate(testutil.DC(10, 4))

	if !almostEqual(s.RMSdB, 20, tolerance) {
		t.Errorf("RMSdB: got %g, want 20", s.RMSdB)
	}
	if !almostEqual(s.PeakdB, 20, tolerance) {
		t.Errorf("PeakdB: got %g, want 20", s.PeakdB)
	}
}

func TestCalculate_MatchesNaiveMoments(t *testing.T) {
	signal := testutil.DeterministicNoise(42, 1, 1024)

	var mean float64
	for _, x := range signal {
		mean += x
	}
	mean /= float64(len(signal))

	var m2, m3, m4 float64
	for _, x := range signal {
		d := x - mean
		m2 += d * d
		m3 += d * d * d
		m4 += d * d * d * d
	}
	nf := float64(len(signal))
	variance := m2 / nf
	skew := (m3 / nf) / math.Pow(variance, 1.5)
	kurt := (m4/nf)/(variance*variance) - 3

	s := Calculate(signal)
	if !almostEqual(s.Mean, mean, 1e-9) {
		t.Errorf("Mean: got %g, want %g", s.Mean, mean)
	}
	if !almostEqual(s.Variance, variance, 1e-9) {
		t.Errorf("Variance: got %g, want %g", s.Variance, variance)
	}
	if !almostEqual(s.Skewness, skew, 1e-9) {
		t.Errorf("Skewness: got %g, want %g", s.Skewness, skew)
	}
	if !almostEqual(s.Kurtosis, kurt, 1e-9) {
		t.Errorf("Kurtosis: got %g, want %g", s.Kurtosis, kurt)
	}
}

func TestFreeFunctions_AgreeWithCalculate(t *testing.T) {
	signal := testutil.DeterministicNoise(7, 2, 500)
	s := Calculate(signal)

	if got := RMS(signal); !almostEqual(got, s.RMS, tolerance) {
		t.Errorf("RMS: got %g, want %g", got, s.RMS)
	}
	if got := Mean(signal); !almostEqual(got, s.Mean, 1e-12) {
		t.Errorf("Mean: got %g, want %g", got, s.Mean)
	}
	if got := Peak(signal); got != s.Peak {
		t.Errorf("Peak: got %g, want %g", got, s.Peak)
	}
	if got := CrestFactor(signal); !almostEqual(got, s.CrestFactor, tolerance) {
		t.Errorf("CrestFactor: got %g, want %g", got, s.CrestFactor)
	}
	if got := ZeroCrossings(signal); got != s.ZeroCrossings {
		t.Errorf("ZeroCrossings: got %d, want %d", got, s.ZeroCrossings)
	}
}

func TestFreeFunctions_Empty(t *testing.T) {
	if got := RMS(nil); got != 0 {
		t.Errorf("RMS(nil): got %g, want 0", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil): got %g, want 0", got)
	}
	if got := Peak(nil); got != 0 {
		t.Errorf("Peak(nil): got %g, want 0", got)
	}
	if got := CrestFactor(nil); got != 0 {
		t.Errorf("CrestFactor(nil): got %g, want 0", got)
	}
	if got := ZeroCrossings([]float64{1}); got != 0 {
		t.Errorf("ZeroCrossings(single): got %d, want 0", got)
	}
}

func TestAccumulator_MatchesBatch(t *testing.T) {
	signal := testutil.DeterministicNoise(9, 1, 1000)
	want := Calculate(signal)

	for _, block := range []int{1, 7, 128, 1000} {
		acc := NewAccumulator()
		for start := 0; start < len(signal); start += block {
			end := start + block
			if end > len(signal) {
				end = len(signal)
			}
			acc.Update(signal[start:end])
		}
		if got := acc.Result(); got != want {
			t.Errorf("block %d: accumulator diverged from batch result", block)
		}
	}
}

func TestAccumulator_CrossBlockZeroCrossing(t *testing.T) {
	acc := NewAccumulator()
	acc.Update([]float64{1, 1})
	acc.Update([]float64{-1, -1})
	acc.Update([]float64{1})

	if got := acc.Result().ZeroCrossings; got != 2 {
		t.Errorf("ZeroCrossings: got %d, want 2", got)
	}
}

func TestAccumulator_Reset(t *testing.T) {
	acc := NewAccumulator()
	acc.Update([]float64{5, 5, 5})
	acc.Reset()
	acc.Update([]float64{1, -1})

	s := acc.Result()
	if s.Length != 2 {
		t.Errorf("Length after reset: got %d, want 2", s.Length)
	}
	if !almostEqual(s.Mean, 0, tolerance) {
		t.Errorf("Mean after reset: got %g, want 0", s.Mean)
	}
}

func TestAccumulator_Empty(t *testing.T) {
	if got := NewAccumulator().Result(); got != emptyStats() {
		t.Errorf("empty accumulator: got %+v", got)
	}
}
