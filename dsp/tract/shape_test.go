package tract

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-tract/dsp/articulation"
)

func newTestChain(t *testing.T, length float64) *Chain {
	t.Helper()
	c, err := NewChain(length, 44100)
	if err != nil {
		t.Fatalf("NewChain() error = %v", err)
	}
	return c
}

func tongueImpedance(u float64, p articulation.Phoneme) float64 {
	value := math.Cos((u-p.TonguePosition)*math.Pi/2) * p.TongueHeight
	return NeutralImpedance / (1 - value + MinArea)
}

func TestZones(t *testing.T) {
	start, stop := Zones(22)
	if start != 4 || stop != 19 {
		t.Fatalf("Zones(22) = %d, %d, want 4, 19", start, stop)
	}
}

func TestShapeZones(t *testing.T) {
	c := newTestChain(t, 17.5)
	c.SetWallRigidity(0.25)
	p := articulation.Phoneme{TongueHeight: 0.9, TonguePosition: 0.25, LipRoundedness: 0.6}
	c.Shape(p, false)

	start, stop := Zones(c.Len())
	lips := NeutralImpedance / (1 - 0.6 + MinArea)
	for i, s := range c.Front() {
		switch {
		case i < start:
			if s.TargetImpedance != ThroatImpedance || s.Rigidity != 0.25 {
				t.Fatalf("throat segment %d = %+v", i, s)
			}
		case i >= stop:
			if s.TargetImpedance != lips || s.Rigidity != LipRigidity {
				t.Fatalf("lip segment %d = %+v, want target %v rigid", i, s, lips)
			}
		default:
			u := float64(i-start) / float64(stop-start-1)
			if want := tongueImpedance(u, p); math.Abs(s.TargetImpedance-want) > 1e-12 {
				t.Fatalf("tongue segment %d target = %v, want %v", i, s.TargetImpedance, want)
			}
			if s.Rigidity != 0.25 {
				t.Fatalf("tongue segment %d rigidity = %v, want 0.25", i, s.Rigidity)
			}
		}
		if s.Impedance != NeutralImpedance {
			t.Fatalf("segment %d impedance changed without snap: %v", i, s.Impedance)
		}
	}
}

func TestShapeTongueEndpointsSpanProfile(t *testing.T) {
	c := newTestChain(t, 17.5)
	start, stop := Zones(c.Len())

	for _, name := range articulation.PresetNames() {
		p, _ := articulation.Preset(name)
		c.Shape(p, false)
		f := c.Front()

		if got, want := f[start].TargetImpedance, tongueImpedance(0, p); math.Abs(got-want) > 1e-12 {
			t.Fatalf("%s: back tongue edge = %v, want profile at u=0 %v", name, got, want)
		}
		if got, want := f[stop-1].TargetImpedance, tongueImpedance(1, p); math.Abs(got-want) > 1e-12 {
			t.Fatalf("%s: front tongue edge = %v, want profile at u=1 %v", name, got, want)
		}
	}
}

// The zone formulas do not join the throat and lip constants; the steps at
// the zone edges are part of the model.
func TestShapeZoneBoundarySteps(t *testing.T) {
	c := newTestChain(t, 17.5)
	start, stop := Zones(c.Len())

	tests := []struct {
		name                 string
		throat, tongueBack   float64
		tongueFront, lipEdge float64
	}{
		{"a", 5, 1 / (0.1 + MinArea), 1 / (1 + MinArea), 1 / (1 + MinArea)},
		{"schwa", 5, 1 / (1 + MinArea), 1 / (1 + MinArea), 1 / (1 + MinArea)},
		{"u", 5, 1 / (1 + MinArea), 1 / (1 + MinArea), 1 / (0.1 + MinArea)},
	}
	for _, tt := range tests {
		p, _ := articulation.Preset(tt.name)
		c.Shape(p, false)
		f := c.Front()
		got := []float64{f[start-1].TargetImpedance, f[start].TargetImpedance, f[stop-1].TargetImpedance, f[stop].TargetImpedance}
		want := []float64{tt.throat, tt.tongueBack, tt.tongueFront, tt.lipEdge}
		for i := range got {
			if math.Abs(got[i]-want[i]) > 1e-9*want[i] {
				t.Fatalf("%s: edge impedances = %v, want %v", tt.name, got, want)
			}
		}
	}
}

func TestShapeNeutralTongueIsFlat(t *testing.T) {
	c := newTestChain(t, 17.5)
	c.Shape(articulation.Neutral, true)
	start, stop := Zones(c.Len())

	// Neutral lips and a flat tongue meet without a jump at the front cut.
	want := NeutralImpedance / (1 + MinArea)
	for i := start; i < c.Len(); i++ {
		if got := c.Front()[i].TargetImpedance; math.Abs(got-want) > MinArea {
			t.Fatalf("segment %d target = %v, want %v", i, got, want)
		}
	}
	if got := c.Front()[stop].TargetImpedance - c.Front()[stop-1].TargetImpedance; math.Abs(got) > MinArea {
		t.Fatalf("discontinuity at the lip cut: %v", got)
	}
}

func TestShapeSnapAndWavesUntouched(t *testing.T) {
	c := newTestChain(t, 17.5)
	f := c.Front()
	for i := range f {
		f[i].Right = float64(i)
		f[i].Left = -float64(i)
	}

	p, _ := articulation.Preset("i")
	c.Shape(p, true)
	for i, s := range c.Front() {
		if s.Impedance != s.TargetImpedance {
			t.Fatalf("segment %d not snapped: %v vs %v", i, s.Impedance, s.TargetImpedance)
		}
		if s.Impedance <= 0 {
			t.Fatalf("segment %d impedance %v <= 0", i, s.Impedance)
		}
		if s.Right != float64(i) || s.Left != -float64(i) {
			t.Fatalf("segment %d waves touched: %+v", i, s)
		}
	}
}

func TestShapeClosedLipsStayFinite(t *testing.T) {
	c := newTestChain(t, 17.5)
	c.Shape(articulation.Phoneme{TongueHeight: 1, TonguePosition: 0.5, LipRoundedness: 1}, true)
	for i, s := range c.Front() {
		if math.IsInf(s.Impedance, 0) || math.IsNaN(s.Impedance) || s.Impedance <= 0 {
			t.Fatalf("segment %d impedance %v not finite and positive", i, s.Impedance)
		}
	}
}

func TestShapeShortChain(t *testing.T) {
	// 2.4cm gives 3 segments: no throat, two tongue segments, one lip segment.
	c := newTestChain(t, 2.4)
	c.Shape(articulation.Phoneme{TongueHeight: 0.5}, true)
	for i, s := range c.Front() {
		if math.IsNaN(s.TargetImpedance) || s.TargetImpedance <= 0 {
			t.Fatalf("segment %d target %v", i, s.TargetImpedance)
		}
	}
}
