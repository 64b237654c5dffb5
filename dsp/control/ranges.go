package control

import (
	"github.com/cwbudde/algo-tract/dsp/core"
	"github.com/cwbudde/algo-tract/dsp/tract"
)

// MaxLevel is the largest discrete controller level.
const MaxLevel = 127

// Range is the span a controller level maps onto. Min is the value at level
// 0 and Max the value at MaxLevel; Min may exceed Max.
type Range struct {
	Min, Max float64
}

// Map converts a controller level into the range. Levels above MaxLevel
// saturate.
func (r Range) Map(level uint8) float64 {
	return core.MapRange(float64(level)/MaxLevel, r.Min, r.Max)
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	return core.Clamp(v, r.Min, r.Max)
}

// Turning the drag controller up slows the glide, so its range runs
// downward.
var ranges = map[Kind]Range{
	KindLength:         {Min: tract.MinLength, Max: tract.MaxLength},
	KindTongueHeight:   {Min: 0, Max: 1},
	KindTonguePosition: {Min: 0, Max: 1},
	KindLipRoundedness: {Min: 0, Max: 1},
	KindDrag:           {Min: 0.001, Max: 0.0001},
	KindPressure:       {Min: tract.MinPressure, Max: tract.MaxPressure},
	KindDamping:        {Min: tract.MinDamping, Max: tract.MaxDamping},
}

// RangeOf returns the controller range of a numeric kind.
func RangeOf(kind Kind) (Range, bool) {
	r, ok := ranges[kind]
	return r, ok
}

// Level maps a controller level for kind into an event. It reports false
// for kinds without a numeric range.
func Level(kind Kind, level uint8) (Event, bool) {
	r, ok := ranges[kind]
	if !ok {
		return Event{}, false
	}
	return Set(kind, r.Map(level)), true
}
