package voice

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tract/dsp/articulation"
	"github.com/cwbudde/algo-tract/dsp/tract"
)

// Option mutates engine construction parameters.
type Option func(*config) error

type config struct {
	length    float64
	drag      float64
	ambient   articulation.Phoneme
	tractOpts []tract.Option
	status    func(Status)
}

func defaultConfig() config {
	return config{
		length:  tract.DefaultLength,
		drag:    articulation.DefaultDrag,
		ambient: articulation.Neutral,
	}
}

// WithLength sets the initial tract length in cm, within
// [tract.MinLength, tract.MaxLength].
func WithLength(cm float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(cm) || cm < tract.MinLength || cm > tract.MaxLength {
			return fmt.Errorf("voice length must be in [%g, %g]: %f", tract.MinLength, tract.MaxLength, cm)
		}
		cfg.length = cm
		return nil
	}
}

// WithDrag sets the articulation interpolation coefficient in
// [articulation.MinDrag, articulation.MaxDrag].
func WithDrag(drag float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(drag) || drag < articulation.MinDrag || drag > articulation.MaxDrag {
			return fmt.Errorf("voice drag must be in [%g, %g]: %f", articulation.MinDrag, articulation.MaxDrag, drag)
		}
		cfg.drag = drag
		return nil
	}
}

// WithAmbient sets the resting articulation the voice starts on.
func WithAmbient(p articulation.Phoneme) Option {
	return func(cfg *config) error {
		if p != p.Clamped() {
			return fmt.Errorf("voice ambient phoneme out of range: %+v", p)
		}
		cfg.ambient = p
		return nil
	}
}

// WithPreset starts the voice on a catalogue phoneme.
func WithPreset(name string) Option {
	return func(cfg *config) error {
		p, ok := articulation.Preset(name)
		if !ok {
			return fmt.Errorf("voice preset unknown: %q", name)
		}
		cfg.ambient = p
		return nil
	}
}

// WithTractOptions forwards options to the underlying tract (damping,
// pressure, frication, wall compliance, noise seed).
func WithTractOptions(opts ...tract.Option) Option {
	return func(cfg *config) error {
		cfg.tractOpts = append(cfg.tractOpts, opts...)
		return nil
	}
}

// WithStatusFunc registers a callback receiving a Status line whenever the
// tract is built or resized, or a resize fails. While Run is active the
// callback runs on Run's goroutine (or the SetLength caller's), never on the
// processing path. Without Run, length events resize inline and the callback
// runs inside Process, so it must not block there. A repeated length event
// for the live length is ignored.
func WithStatusFunc(fn func(Status)) Option {
	return func(cfg *config) error {
		cfg.status = fn
		return nil
	}
}
