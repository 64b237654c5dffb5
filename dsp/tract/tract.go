package tract

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-tract/dsp/articulation"
	"github.com/cwbudde/algo-tract/dsp/core"
)

// Articulator supplies the articulation that drives the tract shape. Tick is
// called once per sample after the buffers swap.
type Articulator interface {
	Tick() articulation.Phoneme
}

// Tract runs the waveguide over a Chain.
type Tract struct {
	chain *Chain

	damping         float64
	pressure        float64
	frication       float64
	physicalDamping float64

	rng *rand.Rand

	articulator Articulator
	shaped      articulation.Phoneme
	hasShape    bool
}

// New creates a tract of roughly desiredLength cm at sampleRate with every
// segment at neutral impedance. No shape is applied until an articulator is
// attached or Shape is called.
func New(desiredLength, sampleRate float64, opts ...Option) (*Tract, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	chain, err := NewChain(desiredLength, sampleRate)
	if err != nil {
		return nil, err
	}
	chain.SetWallRigidity(cfg.wallRigidity)

	return &Tract{
		chain:           chain,
		damping:         cfg.damping,
		pressure:        cfg.pressure,
		frication:       cfg.frication,
		physicalDamping: cfg.physicalDamping,
		rng:             rand.New(rand.NewSource(cfg.seed)),
	}, nil
}

// Chain returns the live segment chain.
func (t *Tract) Chain() *Chain { return t.chain }

// Damping returns the reflection loss.
func (t *Tract) Damping() float64 { return t.damping }

// Pressure returns the diaphragm pressure.
func (t *Tract) Pressure() float64 { return t.pressure }

// Frication returns the constriction noise gain.
func (t *Tract) Frication() float64 { return t.frication }

// SetDamping sets the reflection loss, clamped to [MinDamping, MaxDamping].
// NaN is ignored.
func (t *Tract) SetDamping(damping float64) {
	if !math.IsNaN(damping) {
		t.damping = core.Clamp(damping, MinDamping, MaxDamping)
	}
}

// SetPressure sets the diaphragm pressure, clamped to [MinPressure, MaxPressure].
// NaN is ignored.
func (t *Tract) SetPressure(pressure float64) {
	if !math.IsNaN(pressure) {
		t.pressure = core.Clamp(pressure, MinPressure, MaxPressure)
	}
}

// SetFrication sets the constriction noise gain, clamped to [0, MaxFrication].
// NaN is ignored.
func (t *Tract) SetFrication(frication float64) {
	if !math.IsNaN(frication) {
		t.frication = core.Clamp(frication, 0, MaxFrication)
	}
}

// Articulator returns the attached articulator, nil if none.
func (t *Tract) Articulator() Articulator { return t.articulator }

// SetArticulator attaches the source of per-sample articulation. Passing nil
// freezes the current shape.
func (t *Tract) SetArticulator(a Articulator) {
	t.articulator = a
	t.hasShape = false
}

// Shape applies articulation p to the live chain.
func (t *Tract) Shape(p articulation.Phoneme, snap bool) {
	t.chain.Shape(p, snap)
	t.shaped = p
	t.hasShape = true
}

// Reset silences the tract.
func (t *Tract) Reset() {
	t.chain.Reset()
}

func (t *Tract) noise() float64 {
	return t.rng.Float64()*2 - 1
}

// Step advances the tract by one sample, injecting source at the glottis,
// and returns the sample leaving the lips.
func (t *Tract) Step(source float64) float64 {
	front := t.chain.Front()
	back := t.chain.Back()
	n := len(front)
	loss := 1 - t.damping

	for i := range front {
		oldArea := 1 / front[i].Impedance
		targetArea := 1 / front[i].TargetImpedance
		b := &back[i]
		b.TargetImpedance = front[i].TargetImpedance
		b.Rigidity = front[i].Rigidity
		b.Right = 0
		b.Left = 0
		b.Impedance = impedanceOf(oldArea + (targetArea-oldArea)*t.physicalDamping)
	}

	var drain float64
	for i := range front {
		cur := &front[i]
		compliance := 1 - cur.Rigidity
		area := 1 / back[i].Impedance

		// toward the lips
		if i == 0 {
			inject := 1 - Reflection(DrainImpedance, cur.Impedance)
			back[0].Right += cur.Left*loss + source*inject + t.pressure
		} else {
			prev := &front[i-1]
			r := prev.Right * Reflection(prev.Impedance, cur.Impedance)
			back[i].Right += prev.Right - r
			back[i-1].Left += r*loss + t.fricate(r)
			area += r * compliance
		}

		// toward the glottis
		if i == n-1 {
			r := cur.Right * Reflection(cur.Impedance, DrainImpedance)
			drain = cur.Right - r
			back[i].Left += r * loss
			area += r * compliance
		} else {
			next := &front[i+1]
			r := next.Left * Reflection(next.Impedance, cur.Impedance)
			back[i].Left += next.Left - r
			back[i+1].Right += r*loss + t.fricate(r)
			area += r * compliance
		}

		back[i].Impedance = impedanceOf(area)
	}

	t.chain.Swap()

	if t.articulator != nil {
		p := t.articulator.Tick()
		if !t.hasShape || p != t.shaped {
			t.Shape(p, false)
		}
	}

	return core.FlushDenormals(drain)
}

// fricate returns turbulence noise for a reflection r. Only flow running into
// a constriction (positive reflection) is turbulent.
func (t *Tract) fricate(r float64) float64 {
	if r <= 0 || t.frication == 0 {
		return 0
	}
	return t.frication * r * t.noise()
}

// Process runs Step for every sample of in and writes the result to out.
func (t *Tract) Process(in, out []float64) error {
	if len(out) < len(in) {
		return fmt.Errorf("tract output too short: %d < %d", len(out), len(in))
	}
	for i, x := range in {
		out[i] = t.Step(x)
	}
	return nil
}
