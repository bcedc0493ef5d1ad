package qc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/seistools/tracedsp/dsp/core"
	"github.com/seistools/tracedsp/dsp/spectrum"
	timestats "github.com/seistools/tracedsp/stats/time"
	"github.com/seistools/tracedsp/trace"
)

// Default screening thresholds.
const (
	// DefaultDeadThreshold is the peak amplitude below which a trace
	// counts as dead.
	DefaultDeadThreshold = 1e-6

	// DefaultClipThreshold is the fraction of a trace's peak that marks
	// a sample as sitting at clip level.
	DefaultClipThreshold = 0.95

	// DefaultClipRatio is the fraction of clip-level samples beyond
	// which a trace counts as clipped.
	DefaultClipRatio = 0.1

	// DefaultEnergyThreshold is the RMS amplitude below which a trace
	// counts as low energy.
	DefaultEnergyThreshold = 1e-3

	// DefaultAnomalySigma is how many standard deviations a trace RMS
	// may stray from the section mean before it counts as anomalous.
	DefaultAnomalySigma = 3.0

	// DefaultHumFraction is the share of a trace's total power one
	// mains component may carry before the trace counts as hum
	// contaminated.
	DefaultHumFraction = 0.2
)

// Config holds the screening thresholds.
type Config struct {
	DeadThreshold   float64
	ClipThreshold   float64
	ClipRatio       float64
	EnergyThreshold float64
	AnomalySigma    float64
	HumFraction     float64
	HumFrequencies  []float64
}

// DefaultConfig returns the standard thresholds. The hum scan watches
// both mains standards, 50 and 60 Hz.
func DefaultConfig() Config {
	return Config{
		DeadThreshold:   DefaultDeadThreshold,
		ClipThreshold:   DefaultClipThreshold,
		ClipRatio:       DefaultClipRatio,
		EnergyThreshold: DefaultEnergyThreshold,
		AnomalySigma:    DefaultAnomalySigma,
		HumFraction:     DefaultHumFraction,
		HumFrequencies:  []float64{50, 60},
	}
}

// Option adjusts a Config. Out-of-range values are ignored.
type Option func(*Config)

// WithDeadThreshold sets the dead-trace peak threshold.
func WithDeadThreshold(threshold float64) Option {
	return func(cfg *Config) {
		if threshold > 0 && !math.IsInf(threshold, 0) {
			cfg.DeadThreshold = threshold
		}
	}
}

// WithClipPolicy sets the clip level as a fraction of the trace peak
// and the fraction of clip-level samples that flags the trace.
func WithClipPolicy(threshold, ratio float64) Option {
	return func(cfg *Config) {
		if threshold > 0 && threshold <= 1 {
			cfg.ClipThreshold = threshold
		}
		if ratio >= 0 && ratio < 1 {
			cfg.ClipRatio = ratio
		}
	}
}

// WithEnergyThreshold sets the low-energy RMS floor.
func WithEnergyThreshold(threshold float64) Option {
	return func(cfg *Config) {
		if threshold > 0 && !math.IsInf(threshold, 0) {
			cfg.EnergyThreshold = threshold
		}
	}
}

// WithAnomalySigma sets the RMS outlier distance in standard deviations.
func WithAnomalySigma(sigma float64) Option {
	return func(cfg *Config) {
		if sigma > 0 && !math.IsInf(sigma, 0) {
			cfg.AnomalySigma = sigma
		}
	}
}

// WithHumPolicy sets the power fraction that flags mains contamination
// and the frequencies scanned for it.
func WithHumPolicy(fraction float64, frequencies ...float64) Option {
	return func(cfg *Config) {
		if fraction > 0 && fraction <= 1 {
			cfg.HumFraction = fraction
		}
		if len(frequencies) == 0 {
			return
		}
		for _, f := range frequencies {
			if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
				return
			}
		}
		cfg.HumFrequencies = append([]float64(nil), frequencies...)
	}
}

// Checker screens sections for bad traces.
type Checker struct {
	cfg Config
}

// New builds a Checker from the default thresholds and the given
// options.
func New(opts ...Option) *Checker {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Checker{cfg: cfg}
}

// Config returns the thresholds in use.
func (c *Checker) Config() Config { return c.cfg }

// Report collects the trace indices flagged by every screen.
type Report struct {
	Dead      []int
	Clipped   []int
	LowEnergy []int
	Anomalous []int
	Hum       []int
}

// Check runs all screens and collects their findings.
func (c *Checker) Check(sec trace.Section) (Report, error) {
	dead, err := c.DeadTraces(sec)
	if err != nil {
		return Report{}, err
	}
	clipped, err := c.ClippedTraces(sec)
	if err != nil {
		return Report{}, err
	}
	lowEnergy, err := c.LowEnergyTraces(sec)
	if err != nil {
		return Report{}, err
	}
	anomalous, err := c.AnomalousTraces(sec)
	if err != nil {
		return Report{}, err
	}
	hum, err := c.HumTraces(sec)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Dead:      dead,
		Clipped:   clipped,
		LowEnergy: lowEnergy,
		Anomalous: anomalous,
		Hum:       hum,
	}, nil
}

// DeadTraces reports traces whose peak amplitude stays below the dead
// threshold.
func (c *Checker) DeadTraces(sec trace.Section) ([]int, error) {
	if err := validateSection(sec); err != nil {
		return nil, err
	}
	var indices []int
	for i, tr := range sec.Traces {
		if core.MaxAbs(tr.Samples) < c.cfg.DeadThreshold {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

// ClippedTraces reports traces where more than ClipRatio of the samples
// sit above ClipThreshold times the trace peak.
func (c *Checker) ClippedTraces(sec trace.Section) ([]int, error) {
	if err := validateSection(sec); err != nil {
		return nil, err
	}
	var indices []int
	for i, tr := range sec.Traces {
		peak := core.MaxAbs(tr.Samples)
		if peak == 0 {
			continue
		}
		level := c.cfg.ClipThreshold * peak
		count := 0
		for _, v := range tr.Samples {
			if math.Abs(v) > level {
				count++
			}
		}
		if float64(count) > float64(tr.Len())*c.cfg.ClipRatio {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

// LowEnergyTraces reports traces whose RMS amplitude falls below the
// energy threshold.
func (c *Checker) LowEnergyTraces(sec trace.Section) ([]int, error) {
	if err := validateSection(sec); err != nil {
		return nil, err
	}
	var indices []int
	for i, tr := range sec.Traces {
		if timestats.RMS(tr.Samples) < c.cfg.EnergyThreshold {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

// AnomalousTraces reports traces whose RMS amplitude strays more than
// AnomalySigma standard deviations from the section mean. Sections with
// fewer than two traces have no population to compare against and
// report nothing.
func (c *Checker) AnomalousTraces(sec trace.Section) ([]int, error) {
	if err := validateSection(sec); err != nil {
		return nil, err
	}
	if sec.NumTraces() < 2 {
		return nil, nil
	}

	rms := make([]float64, sec.NumTraces())
	for i, tr := range sec.Traces {
		rms[i] = timestats.RMS(tr.Samples)
	}
	mean := stat.Mean(rms, nil)
	sd := stat.StdDev(rms, nil)

	var indices []int
	for i, v := range rms {
		if math.Abs(v-mean) > c.cfg.AnomalySigma*sd {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

// HumTraces reports traces where one mains component carries more than
// HumFraction of the total power, measured by a Goertzel scan at the
// configured frequencies. Frequencies at or above the section's Nyquist
// cannot be measured and are skipped; if none remain the screen reports
// nothing.
func (c *Checker) HumTraces(sec trace.Section) ([]int, error) {
	if err := validateSection(sec); err != nil {
		return nil, err
	}

	var freqs []float64
	for _, f := range c.cfg.HumFrequencies {
		if f < sec.Nyquist() {
			freqs = append(freqs, f)
		}
	}
	if len(freqs) == 0 {
		return nil, nil
	}

	scan, err := spectrum.NewMultiGoertzel(freqs, sec.SampleRate())
	if err != nil {
		return nil, err
	}

	var indices []int
	for i, tr := range sec.Traces {
		energy := 0.0
		for _, v := range tr.Samples {
			energy += v * v
		}
		if energy == 0 {
			continue
		}

		scan.Reset()
		scan.ProcessBlock(tr.Samples)

		n := float64(tr.Len())
		for _, p := range scan.Powers() {
			// One interior spectral component of power P holds 2P/N²
			// of the trace mean square, against a total of E/N.
			if 2*p > c.cfg.HumFraction*n*energy {
				indices = append(indices, i)
				break
			}
		}
	}
	return indices, nil
}

func validateSection(sec trace.Section) error {
	if sec.NumTraces() == 0 {
		return fmt.Errorf("%w: qc: empty section", core.ErrParameter)
	}
	return nil
}
