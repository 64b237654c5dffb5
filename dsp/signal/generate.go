package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-tract/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a signal generator for the given processor settings.
func NewGenerator(cfg core.ProcessorConfig, opts ...Option) *Generator {
	g := &Generator{cfg: cfg, seed: 1}
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

// PulseTrain generates unit-height impulses scaled by amplitude every
// sampleRate/f0 samples, the first at sample 0. Fractional periods are
// rounded per pulse so the mean rate stays at f0.
func (g *Generator) PulseTrain(f0, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("pulse train samples must be > 0: %d", samples)
	}
	if f0 <= 0 || !core.IsFinite(f0) {
		return nil, fmt.Errorf("pulse train frequency must be > 0: %f", f0)
	}
	period := g.cfg.SampleRate / f0
	if period < 1 {
		return nil, fmt.Errorf("pulse train frequency %.1fHz exceeds sample rate %.0fHz", f0, g.cfg.SampleRate)
	}

	out := make([]float64, samples)
	for t := 0.0; ; t += period {
		i := int(math.Round(t))
		if i >= samples {
			break
		}
		out[i] = amplitude
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Normalize scales data in place so its absolute peak equals targetPeak.
// Silent input is left untouched.
func Normalize(data []float64, targetPeak float64) error {
	if targetPeak < 0 {
		return fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}

	peak := 0.0
	for _, v := range data {
		peak = math.Max(peak, math.Abs(v))
	}
	if peak == 0 {
		return nil
	}

	scale := targetPeak / peak
	for i := range data {
		data[i] *= scale
	}
	return nil
}
