package tract

import (
	"math"

	"github.com/cwbudde/algo-tract/dsp/articulation"
)

const (
	// TongueBack and TongueFront bound the tongue zone as fractions of the
	// tract length. Before TongueBack lies the throat, after TongueFront the
	// lips.
	TongueBack  = 0.2
	TongueFront = 0.9

	// LipRigidity is the rigidity of every lip segment.
	LipRigidity = 1.0
)

// Zones returns the first tongue index and the first lip index for a chain
// of n segments.
func Zones(n int) (start, stop int) {
	return int(TongueBack * float64(n)), int(TongueFront * float64(n))
}

// Shape writes the target impedance profile for articulation p into the
// front buffer. The tongue is a raised cosine centred at TonguePosition with
// amplitude TongueHeight; its endpoints sit exactly at u = 0 and u = 1 of the
// zone. With snap set the current impedance jumps to the target as well;
// traveling waves are never touched.
func (c *Chain) Shape(p articulation.Phoneme, snap bool) {
	p = p.Clamped()
	front := c.Front()
	n := len(front)
	start, stop := Zones(n)
	span := float64(stop - start - 1)
	lips := NeutralImpedance / (1 - p.LipRoundedness + MinArea)

	for i := range front {
		s := &front[i]
		switch {
		case i < start:
			s.TargetImpedance = ThroatImpedance
			s.Rigidity = c.rigidity
		case i >= stop:
			s.TargetImpedance = lips
			s.Rigidity = LipRigidity
		default:
			u := 0.0
			if span > 0 {
				u = float64(i-start) / span
			}
			phase := u - p.TonguePosition
			value := math.Cos(phase*math.Pi/2) * p.TongueHeight
			s.TargetImpedance = NeutralImpedance / (1 - value + MinArea)
			s.Rigidity = c.rigidity
		}
		if snap {
			s.Impedance = s.TargetImpedance
		}
	}
}
