package wavelet_test

import (
	"fmt"

	"github.com/seistools/tracedsp/dsp/wavelet"
)

func ExampleDecompose() {
	signal := make([]float64, 16)
	for i := range signal {
		signal[i] = float64(i)
	}

	p, err := wavelet.Decompose(signal, wavelet.FamilyHaar, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(p.Level(), len(p.Approx), len(p.Details[0]), len(p.Details[2]))
	// Output: 3 2 2 8
}

func ExampleFilter() {
	signal := []float64{1, 2, 3, 4, 5, 4, 3, 2}
	out, err := wavelet.Filter(signal, wavelet.FamilyDB2, 2)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.6f %.6f\n", out[0], out[7])
	// Output: 1.000000 2.000000
}
