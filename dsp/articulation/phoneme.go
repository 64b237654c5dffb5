package articulation

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-tract/dsp/core"
)

// Phoneme is an articulatory target in normalized vowel space.
type Phoneme struct {
	TongueHeight   float64 // closedness, 0 = open
	TonguePosition float64 // backness, 0 = back, 1 = front
	LipRoundedness float64 // 0 = spread, 1 = closed
}

// Clamped returns p with every field limited to [0, 1]. NaN fields become 0.
func (p Phoneme) Clamped() Phoneme {
	return Phoneme{
		TongueHeight:   unit(p.TongueHeight),
		TonguePosition: unit(p.TonguePosition),
		LipRoundedness: unit(p.LipRoundedness),
	}
}

func unit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return core.Clamp(v, 0, 1)
}

// Neutral is the resting articulation: tongue relaxed mid-mouth, lips open.
var Neutral = Phoneme{TongueHeight: 0, TonguePosition: 0.5, LipRoundedness: 0}

var presets = map[string]Phoneme{
	"a":     {TongueHeight: 0.9, TonguePosition: 0, LipRoundedness: 0},
	"i":     {TongueHeight: 0.9, TonguePosition: 1, LipRoundedness: 0},
	"u":     {TongueHeight: 0, TonguePosition: 0, LipRoundedness: 0.9},
	"e":     {TongueHeight: 0.9, TonguePosition: 0.5, LipRoundedness: 0},
	"o":     {TongueHeight: 0.9, TonguePosition: 0.25, LipRoundedness: 0.9},
	"schwa": {TongueHeight: 0, TonguePosition: 0, LipRoundedness: 0},
	"uh":    {TongueHeight: 0.7, TonguePosition: 0, LipRoundedness: 0.6},
	"ah":    {TongueHeight: 0.7, TonguePosition: 0, LipRoundedness: 0},
	"ue":    {TongueHeight: 0.9, TonguePosition: 1, LipRoundedness: 0.9},
	"ii":    {TongueHeight: 0.9, TonguePosition: 0.75, LipRoundedness: 0},
	"oe":    {TongueHeight: 0, TonguePosition: 0, LipRoundedness: 0.75},
}

// Preset looks up a named phoneme from the catalogue.
func Preset(name string) (Phoneme, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames returns the catalogue names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
