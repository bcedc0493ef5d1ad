package conv_test

import (
	"fmt"

	"github.com/seistools/tracedsp/dsp/conv"
	"github.com/seistools/tracedsp/internal/testutil"
)

func ExampleDirect() {
	signal := []float64{1, 2, 3, 4}
	smoother := []float64{0.5, 0.5}

	out, _ := conv.Direct(signal, smoother)
	fmt.Println(out)
	// Output:
	// [0.5 1.5 2.5 3.5 2]
}

func ExampleConvolveMode() {
	// A three-sample box spreads a spike without changing the grid.
	signal := []float64{0, 0, 3, 0, 0}
	box := []float64{1, 1, 1}

	out, _ := conv.ConvolveMode(signal, box, conv.ModeSame)
	fmt.Println(out)
	// Output:
	// [0 3 3 3 0]
}

func ExampleCorrelate() {
	// Locate a known wavelet inside a recorded trace.
	pilot := []float64{1, 2, 1}
	rec := []float64{0, 0, 0, 1, 2, 1, 0, 0}

	corr, _ := conv.Correlate(rec, pilot)
	idx, val := conv.FindPeak(corr)
	lag := conv.LagFromIndex(idx, len(pilot))

	fmt.Printf("pilot onset at sample %d (peak %.1f)\n", lag, val)
	// Output:
	// pilot onset at sample 3 (peak 6.0)
}

func ExampleOverlapAdd() {
	// One convolver carries the pilot spectrum across a whole record.
	pilot := testutil.DeterministicNoise(1, 1, 400)

	oa, _ := conv.NewOverlapAdd(pilot, 0)
	fmt.Println(oa.BlockSize(), oa.FFTSize())

	rec := testutil.DeterministicNoise(2, 1, 2000)
	out, _ := oa.ProcessMode(rec, conv.ModeSame)
	fmt.Println(len(out))
	// Output:
	// 512 1024
	// 2000
}
