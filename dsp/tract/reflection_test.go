package tract

import (
	"math"
	"testing"
)

func TestReflectionBoundedAndAntisymmetric(t *testing.T) {
	impedances := []float64{MinArea, 1e-3, 0.1, 0.5, 1, 2, 5, 100, 1 / MinArea}
	for _, z1 := range impedances {
		for _, z2 := range impedances {
			g := Reflection(z1, z2)
			if !(g > -1 && g < 1) {
				t.Fatalf("Reflection(%g, %g) = %g, want in (-1, 1)", z1, z2, g)
			}
			if back := Reflection(z2, z1); g != -back {
				t.Fatalf("Reflection(%g, %g) = %g, Reflection(%g, %g) = %g, want negated", z1, z2, g, z2, z1, back)
			}
		}
	}
}

func TestReflectionKnownValues(t *testing.T) {
	if got := Reflection(1, 1); got != 0 {
		t.Fatalf("Reflection(1, 1) = %v, want 0", got)
	}
	if got, want := Reflection(1, DrainImpedance), -0.9/1.1; math.Abs(got-want) > 1e-15 {
		t.Fatalf("Reflection(1, drain) = %v, want %v", got, want)
	}
}

func TestImpedanceOfFloorsArea(t *testing.T) {
	for _, area := range []float64{0, -1, -1e9, MinArea / 2} {
		if got := impedanceOf(area); got != 1/MinArea {
			t.Fatalf("impedanceOf(%g) = %g, want %g", area, got, 1/MinArea)
		}
	}
	if got := impedanceOf(math.NaN()); got != 1/MinArea {
		t.Fatalf("impedanceOf(NaN) = %g, want %g", got, 1/MinArea)
	}
	if got := impedanceOf(math.Inf(1)); got != MinArea {
		t.Fatalf("impedanceOf(+Inf) = %g, want %g", got, MinArea)
	}
	if got := impedanceOf(0.5); got != 2 {
		t.Fatalf("impedanceOf(0.5) = %g, want 2", got)
	}
}
