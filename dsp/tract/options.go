package tract

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tract/dsp/core"
)

// Parameter ranges. Setters clamp into these; options reject values outside.
const (
	DefaultLength = 17.5
	MinLength     = 8.0
	MaxLength     = 24.0

	DefaultDamping = 0.04
	MinDamping     = 0.0
	MaxDamping     = 0.2

	DefaultPressure = 0.0
	MinPressure     = -0.2
	MaxPressure     = 0.2

	DefaultFrication = 0.1
	MaxFrication     = 1.0

	// DefaultPhysicalDamping relaxes each segment's area onto its target
	// within one sample.
	DefaultPhysicalDamping = 1.0

	defaultSeed = 1
)

// Option mutates tract construction parameters.
type Option func(*config) error

type config struct {
	damping         float64
	pressure        float64
	frication       float64
	physicalDamping float64
	wallRigidity    float64
	seed            int64
}

func defaultConfig() config {
	return config{
		damping:         DefaultDamping,
		pressure:        DefaultPressure,
		frication:       DefaultFrication,
		physicalDamping: DefaultPhysicalDamping,
		wallRigidity:    1,
		seed:            defaultSeed,
	}
}

func inRange(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return fmt.Errorf("tract %s must be in [%g, %g]: %f", name, lo, hi, v)
	}
	return nil
}

// WithDamping sets the fraction of energy lost at every reflection.
func WithDamping(damping float64) Option {
	return func(cfg *config) error {
		if err := inRange("damping", damping, MinDamping, MaxDamping); err != nil {
			return err
		}
		cfg.damping = damping
		return nil
	}
}

// WithPressure sets the constant diaphragm pressure added at the glottis.
func WithPressure(pressure float64) Option {
	return func(cfg *config) error {
		if err := inRange("pressure", pressure, MinPressure, MaxPressure); err != nil {
			return err
		}
		cfg.pressure = pressure
		return nil
	}
}

// WithFrication sets the gain of the noise injected at constrictions.
func WithFrication(frication float64) Option {
	return func(cfg *config) error {
		if err := inRange("frication", frication, 0, MaxFrication); err != nil {
			return err
		}
		cfg.frication = frication
		return nil
	}
}

// WithPhysicalDamping sets how far each segment's area moves toward its
// target per sample, in (0, 1].
func WithPhysicalDamping(d float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(d) || d <= 0 || d > 1 {
			return fmt.Errorf("tract physical damping must be in (0, 1]: %f", d)
		}
		cfg.physicalDamping = d
		return nil
	}
}

// WithWallRigidity sets the rigidity of throat and tongue walls in [0, 1].
// Below 1 the reflected sound pressure deforms the segment area, an
// experimental model of wall compliance.
func WithWallRigidity(r float64) Option {
	return func(cfg *config) error {
		if err := inRange("wall rigidity", r, 0, 1); err != nil {
			return err
		}
		cfg.wallRigidity = r
		return nil
	}
}

// WithSeed seeds the frication noise source.
func WithSeed(seed int64) Option {
	return func(cfg *config) error {
		cfg.seed = seed
		return nil
	}
}

// ClampLength limits a requested tract length to [MinLength, MaxLength].
// NaN maps to DefaultLength.
func ClampLength(cm float64) float64 {
	if math.IsNaN(cm) {
		return DefaultLength
	}
	return core.Clamp(cm, MinLength, MaxLength)
}
