package analyzer

import "github.com/cwbudde/algo-eq/dsp/window"

const (
	// DefaultRingCapacity is the number of blocks each stage can queue.
	DefaultRingCapacity = 30
	// DefaultNegativeInfinityDB is the dB floor of the spectrum display.
	DefaultNegativeInfinityDB = -48.0
	// PathResolution is the bin stride used when building spectrum paths.
	PathResolution = 2
)

// Config holds the analyzer pipeline settings.
type Config struct {
	Order              FFTOrder
	Window             window.Type
	NormalizeWindow    bool
	NegativeInfinityDB float64
	RingCapacity       int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a 2048-point Blackman-Harris analyzer with a -48 dB floor.
func DefaultConfig() Config {
	return Config{
		Order:              Order2048,
		Window:             window.TypeBlackmanHarris4Term,
		NormalizeWindow:    true,
		NegativeInfinityDB: DefaultNegativeInfinityDB,
		RingCapacity:       DefaultRingCapacity,
	}
}

// WithOrder selects the FFT size.
func WithOrder(o FFTOrder) Option {
	return func(c *Config) {
		c.Order = o
	}
}

// WithWindow selects the tapering window.
func WithWindow(t window.Type) Option {
	return func(c *Config) {
		c.Window = t
	}
}

// WithRawWindow disables window gain normalisation. By default the window
// is scaled so its coefficients sum to the FFT size, which makes a full
// scale sine read 0 dB.
func WithRawWindow() Option {
	return func(c *Config) {
		c.NormalizeWindow = false
	}
}

// WithNegativeInfinity sets the dB floor. Values >= 0 are ignored.
func WithNegativeInfinity(db float64) Option {
	return func(c *Config) {
		if db < 0 {
			c.NegativeInfinityDB = db
		}
	}
}

// WithRingCapacity sets the queue depth of every stage. Values < 1 are ignored.
func WithRingCapacity(n int) Option {
	return func(c *Config) {
		if n >= 1 {
			c.RingCapacity = n
		}
	}
}

func applyOptions(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
