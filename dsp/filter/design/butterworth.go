package design

import (
	"github.com/seistools/tracedsp/dsp/filter/biquad"
)

// Butterworth designs a maximally-flat IIR filter of the given order and
// returns it as a cascade of second-order sections. Lowpass and highpass
// take a single cutoff; bandpass takes [freqmin, freqmax] and is realized
// as a highpass at freqmin in series with a lowpass at freqmax, each at the
// requested order. The magnitude response is -3 dB at every cutoff.
func Butterworth(band Band, order int, cutoffs []float64, sampleRate float64) (Coefficients, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return Coefficients{}, err
	}
	if err := validateOrder(order); err != nil {
		return Coefficients{}, err
	}
	if err := validateCutoffs(band, cutoffs, sampleRate); err != nil {
		return Coefficients{}, err
	}

	var sections []biquad.Coefficients
	switch band {
	case BandLowpass:
		sections = butterworthLowpass(order, cutoffs[0], sampleRate)
	case BandHighpass:
		sections = butterworthHighpass(order, cutoffs[0], sampleRate)
	case BandBandpass:
		sections = append(
			butterworthHighpass(order, cutoffs[0], sampleRate),
			butterworthLowpass(order, cutoffs[1], sampleRate)...,
		)
	}

	c := NewIIR(sections)
	if err := checkSynthesis(c); err != nil {
		return Coefficients{}, err
	}

	return c, nil
}

func butterworthLowpass(order int, freq, sampleRate float64) []biquad.Coefficients {
	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := 0; i < order/2; i++ {
		sections = append(sections, sectionLowpass(freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 == 1 {
		sections = append(sections, firstOrderLowpass(freq, sampleRate))
	}

	return sections
}

func butterworthHighpass(order int, freq, sampleRate float64) []biquad.Coefficients {
	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := 0; i < order/2; i++ {
		sections = append(sections, sectionHighpass(freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 == 1 {
		sections = append(sections, firstOrderHighpass(freq, sampleRate))
	}

	return sections
}
