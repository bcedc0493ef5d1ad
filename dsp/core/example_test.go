package core_test

import (
	"errors"
	"fmt"

	"github.com/seistools/tracedsp/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(4000),
	)

	fmt.Printf("sampleRate=%.0f nyquist=%.0f\n", cfg.SampleRate, core.Nyquist(cfg.SampleRate))

	// Output:
	// sampleRate=4000 nyquist=2000
}

func ExampleNextPow2() {
	fmt.Println(core.NextPow2(500), core.NextPow2(1024), core.NextPow2(1025))

	// Output:
	// 512 1024 2048
}

func ExampleErrParameter() {
	err := fmt.Errorf("%w: cutoff 500 Hz must lie below nyquist 500 Hz", core.ErrParameter)

	fmt.Println(errors.Is(err, core.ErrParameter))
	fmt.Println(err)

	// Output:
	// true
	// tracedsp: invalid parameter: cutoff 500 Hz must lie below nyquist 500 Hz
}
