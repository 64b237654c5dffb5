package articulation

import (
	"math"

	"github.com/cwbudde/algo-tract/dsp/core"
)

const (
	// DefaultDrag is the per-sample interpolation coefficient. At 44.1 kHz it
	// settles a phoneme change in roughly a quarter of a second.
	DefaultDrag = 0.0004

	// MinDrag keeps the smoother moving; a drag of zero would freeze it.
	MinDrag = 1e-7
	MaxDrag = 1.0
)

// ClampDrag limits drag to [MinDrag, MaxDrag]. NaN maps to DefaultDrag.
func ClampDrag(drag float64) float64 {
	if math.IsNaN(drag) {
		return DefaultDrag
	}
	return core.Clamp(drag, MinDrag, MaxDrag)
}

// Advance moves current one sample toward target. Each field is a first order
// low-pass: current += (target - current) * drag, evaluated as the shrinking
// remaining distance so a field never steps past its target.
func Advance(current *Phoneme, target Phoneme, drag float64) {
	current.TongueHeight = approach(current.TongueHeight, target.TongueHeight, drag)
	current.TonguePosition = approach(current.TonguePosition, target.TonguePosition, drag)
	current.LipRoundedness = approach(current.LipRoundedness, target.LipRoundedness, drag)
}

func approach(current, target, drag float64) float64 {
	return target - (target-current)*(1-drag)
}
