package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/seistools/tracedsp/dsp/core"
)

// Generator creates deterministic source signatures and test signals
// from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator with the given processing options.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a generator with both processing and
// generator-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// axis converts a duration to a sample count and interval, guarding
// the configuration.
func (g *Generator) axis(length float64) (n int, dt float64, err error) {
	if g.cfg.SampleRate <= 0 {
		return 0, 0, fmt.Errorf("%w: synth: sample rate %g Hz must be positive", core.ErrParameter, g.cfg.SampleRate)
	}
	if length <= 0 || math.IsInf(length, 0) || math.IsNaN(length) {
		return 0, 0, fmt.Errorf("%w: synth: length %g s must be positive and finite", core.ErrParameter, length)
	}
	n = int(math.Round(length * g.cfg.SampleRate))
	if n < 1 {
		return 0, 0, fmt.Errorf("%w: synth: length %g s yields no samples at %g Hz", core.ErrParameter, length, g.cfg.SampleRate)
	}
	return n, 1 / g.cfg.SampleRate, nil
}

func validateFreq(name string, freq float64) error {
	if freq <= 0 || math.IsInf(freq, 0) || math.IsNaN(freq) {
		return fmt.Errorf("%w: synth: %s %g Hz must be positive and finite", core.ErrParameter, name, freq)
	}
	return nil
}

// Sine generates a sine at the configured rate.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: synth: samples must be > 0, got %d", core.ErrParameter, samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: synth: sample rate %g Hz must be positive", core.ErrParameter, g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic uniform noise in
// [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: synth: samples must be > 0, got %d", core.ErrParameter, samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("%w: synth: amplitude %g must be >= 0", core.ErrParameter, amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Normalize scales data to the target peak amplitude and returns a new
// slice. All-zero input stays zero.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("%w: synth: target peak %g must be >= 0", core.ErrParameter, targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: synth: normalize input is empty", core.ErrParameter)
	}

	maxAbs := core.MaxAbs(data)
	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}

// normalizePeak rescales in place to unit peak.
func normalizePeak(data []float64) []float64 {
	maxAbs := core.MaxAbs(data)
	if maxAbs == 0 {
		return data
	}
	for i := range data {
		data[i] /= maxAbs
	}
	return data
}
