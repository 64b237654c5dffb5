package tract

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tract/dsp/core"
)

const (
	// SpeedOfSound in air, in cm per second.
	SpeedOfSound = 34300.0

	// NeutralImpedance is the impedance of a relaxed (schwa) segment.
	NeutralImpedance = 1.0
	// ThroatImpedance is the fixed impedance of the pharynx zone.
	ThroatImpedance = 5.0
	// DrainImpedance is the acoustic impedance outside the lips.
	DrainImpedance = 0.1

	// MinArea floors every cross-sectional area so impedance never reaches
	// infinity and no reflection coefficient divides by zero.
	MinArea = 1e-6

	// MinSegments is the shortest chain that still has a distinct glottis
	// and lip boundary.
	MinSegments = 2
)

// Segment is one discretized slice of the tract.
type Segment struct {
	Impedance       float64 // current impedance, always > 0
	TargetImpedance float64 // impedance the shape function asks for
	Rigidity        float64 // 1 = wall does not yield to sound pressure
	Right           float64 // wave traveling toward the lips
	Left            float64 // wave traveling toward the glottis
}

func neutralSegment() Segment {
	return Segment{
		Impedance:       NeutralImpedance,
		TargetImpedance: NeutralImpedance,
		Rigidity:        1,
	}
}

// Chain is the double-buffered segment state of a tract.
type Chain struct {
	sampleRate float64
	unitLength float64
	requested  float64
	rigidity   float64

	buffers [2][]Segment
	front   int
}

// NewChain discretizes a tract of roughly desiredLength cm at sampleRate.
// The realized length is the largest whole number of segments that fits,
// each segment being the distance sound travels in one sample.
func NewChain(desiredLength, sampleRate float64) (*Chain, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("tract sample rate must be > 0 and finite: %f", sampleRate)
	}
	if desiredLength <= 0 || !core.IsFinite(desiredLength) {
		return nil, fmt.Errorf("tract length must be > 0 and finite: %f", desiredLength)
	}

	unitLength := SpeedOfSound / sampleRate
	n := int(math.Floor(desiredLength / unitLength))
	if n < MinSegments {
		return nil, fmt.Errorf("tract length %.3fcm yields %d segments at %.0fHz, need at least %d",
			desiredLength, n, sampleRate, MinSegments)
	}

	c := &Chain{
		sampleRate: sampleRate,
		unitLength: unitLength,
		requested:  desiredLength,
		rigidity:   1,
	}
	for b := range c.buffers {
		c.buffers[b] = make([]Segment, n)
		for i := range c.buffers[b] {
			c.buffers[b][i] = neutralSegment()
		}
	}
	return c, nil
}

// SampleRate returns the rate the chain was discretized for.
func (c *Chain) SampleRate() float64 { return c.sampleRate }

// UnitLength returns the length of one segment in cm.
func (c *Chain) UnitLength() float64 { return c.unitLength }

// Len returns the number of segments.
func (c *Chain) Len() int { return len(c.buffers[0]) }

// Length returns the realized tract length in cm.
func (c *Chain) Length() float64 { return float64(c.Len()) * c.unitLength }

// RequestedLength returns the length the chain was asked for in cm.
func (c *Chain) RequestedLength() float64 { return c.requested }

// Front returns the buffer holding the state after the last step.
func (c *Chain) Front() []Segment { return c.buffers[c.front] }

// Back returns the buffer the next step writes into.
func (c *Chain) Back() []Segment { return c.buffers[1-c.front] }

// Swap exchanges the roles of the front and back buffers.
func (c *Chain) Swap() { c.front = 1 - c.front }

// WallRigidity returns the rigidity the shape function gives to throat and
// tongue segments.
func (c *Chain) WallRigidity() float64 { return c.rigidity }

// SetWallRigidity sets the rigidity of throat and tongue segments, clamped to
// [0, 1]. Values below 1 let sound pressure deform the tract walls; the lips
// always stay rigid. Takes effect on the next Shape.
func (c *Chain) SetWallRigidity(r float64) {
	if math.IsNaN(r) {
		return
	}
	c.rigidity = core.Clamp(r, 0, 1)
}

// Energy returns the impedance-weighted wave energy of the front buffer,
// sum of z*(Right^2 + Left^2). Interior scattering conserves this sum, so
// without injection it can only fall through boundary and damping losses.
func (c *Chain) Energy() float64 {
	var e float64
	for _, s := range c.Front() {
		e += s.Impedance * (s.Right*s.Right + s.Left*s.Left)
	}
	return e
}

// Reset silences all traveling waves without changing the shape.
func (c *Chain) Reset() {
	for b := range c.buffers {
		for i := range c.buffers[b] {
			c.buffers[b][i].Right = 0
			c.buffers[b][i].Left = 0
		}
	}
}
