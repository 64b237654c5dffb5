package formant

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tract/dsp/core"
	"github.com/cwbudde/algo-tract/dsp/window"
)

// Analysis defaults.
const (
	DefaultFFTSize     = 8192
	DefaultMaxFormants = 5
	DefaultMinFreq     = 80.0
	DefaultMaxFreq     = 5500.0

	minFFTSize = 64
)

// Option configures an analysis.
type Option func(*config) error

type config struct {
	fftSize     int
	resolution  float64
	window      window.Type
	maxFormants int
	smoothing   int
	minFreq     float64
	maxFreq     float64
}

func defaultConfig() config {
	return config{
		fftSize:     DefaultFFTSize,
		window:      window.TypeHann,
		maxFormants: DefaultMaxFormants,
		minFreq:     DefaultMinFreq,
		maxFreq:     DefaultMaxFreq,
	}
}

// WithFFTSize sets the transform size, a power of two >= 64. Longer
// responses are truncated to it.
func WithFFTSize(n int) Option {
	return func(cfg *config) error {
		if n < minFFTSize || n&(n-1) != 0 {
			return fmt.Errorf("formant fft size must be a power of two >= %d: %d", minFFTSize, n)
		}
		cfg.fftSize = n
		return nil
	}
}

// WithResolution sizes the transform from the sample rate so bins are at
// most hz apart, overriding WithFFTSize. The size is the next power of two
// and never below 64.
func WithResolution(hz float64) Option {
	return func(cfg *config) error {
		if !(hz > 0) || !core.IsFinite(hz) {
			return fmt.Errorf("formant resolution must be > 0: %f", hz)
		}
		cfg.resolution = hz
		return nil
	}
}

// sizeFor returns the transform size used at sampleRate.
func (cfg config) sizeFor(sampleRate float64) int {
	if cfg.resolution == 0 {
		return cfg.fftSize
	}
	return max(minFFTSize, core.NextPowerOfTwo(int(math.Ceil(sampleRate/cfg.resolution))))
}

// WithWindow selects the taper applied to the tail of the response.
func WithWindow(t window.Type) Option {
	return func(cfg *config) error {
		cfg.window = t
		return nil
	}
}

// WithMaxFormants limits the result to the n strongest peaks.
func WithMaxFormants(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("formant count must be >= 1: %d", n)
		}
		cfg.maxFormants = n
		return nil
	}
}

// WithSmoothing averages the magnitude spectrum over 2*halfWidth+1 bins
// before peak picking, which suppresses source harmonics when the response
// was not excited by a single impulse.
func WithSmoothing(halfWidth int) Option {
	return func(cfg *config) error {
		if halfWidth < 0 {
			return fmt.Errorf("formant smoothing must be >= 0: %d", halfWidth)
		}
		cfg.smoothing = halfWidth
		return nil
	}
}

// WithBand restricts the search to [lo, hi] Hz.
func WithBand(lo, hi float64) Option {
	return func(cfg *config) error {
		if !(lo >= 0 && hi > lo) {
			return fmt.Errorf("formant band invalid: [%f, %f]", lo, hi)
		}
		cfg.minFreq = lo
		cfg.maxFreq = hi
		return nil
	}
}
