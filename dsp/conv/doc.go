// Package conv provides linear convolution and cross-correlation for
// trace data.
//
// Two strategies are available and [Convolve] picks between them by
// kernel length: time-domain [Direct] for short kernels, FFT
// overlap-add for long ones. The crossover sits around 64 taps for a
// few-thousand-sample trace. Filter application in dsp/filter runs on
// its own state-carrying engines; this package serves the callers
// that work with explicit kernels, such as wavelet convolution and
// pilot-sweep correlation in seis/decon.
//
// For a kernel applied once:
//
//	result, err := conv.Convolve(signal, kernel)
//
// When the same kernel sweeps every trace of a section, build the
// convolver once so the kernel spectrum is reused:
//
//	oa, err := conv.NewOverlapAdd(kernel, 0)
//	for _, tr := range traces {
//		out, err := oa.ProcessMode(tr, conv.ModeSame)
//		...
//	}
//
// Correlation is convolution with the reversed template and shares
// the same machinery. Reading an alignment off the result:
//
//	corr, err := conv.Correlate(trace, template)
//	peak, _ := conv.FindPeak(corr)
//	lag := conv.LagFromIndex(peak, len(template))
package conv
