package core

// ProcessorConfig defines settings shared by trace processors.
type ProcessorConfig struct {
	// SampleRate is the trace sampling frequency in Hz.
	SampleRate float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns defaults for typical reflection data
// (1 ms sampling).
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 1000,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
