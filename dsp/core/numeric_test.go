package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMapRange(t *testing.T) {
	if got := MapRange(0.5, 8, 24); got != 16 {
		t.Fatalf("MapRange(0.5, 8, 24) = %v, want 16", got)
	}
	// inverted ranges run from the first bound to the second
	if got := MapRange(1, 0.001, 0.0001); got != 0.0001 {
		t.Fatalf("MapRange(1, 0.001, 0.0001) = %v, want 0.0001", got)
	}
	if got := MapRange(0, 0.001, 0.0001); got != 0.001 {
		t.Fatalf("MapRange(0, 0.001, 0.0001) = %v, want 0.001", got)
	}
	if got := MapRange(2, 0, 1); got != 1 {
		t.Fatalf("MapRange(2, 0, 1) = %v, want 1", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1) {
		t.Fatal("1 should be finite")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Fatal("NaN/Inf reported finite")
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestLinearToDB(t *testing.T) {
	if got := LinearToDB(10); !NearlyEqual(got, 20, 1e-12) {
		t.Fatalf("LinearToDB(10) = %v, want 20", got)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestFlushDenormals(t *testing.T) {
	if FlushDenormals(1e-40) != 0 {
		t.Fatal("expected tiny value to flush to zero")
	}
	if FlushDenormals(1e-3) != 1e-3 {
		t.Fatal("expected normal value to pass through")
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	for _, tc := range []struct{ in, want int }{{0, 1}, {1, 1}, {3, 4}, {1024, 1024}, {1025, 2048}} {
		if got := NextPowerOfTwo(tc.in); got != tc.want {
			t.Fatalf("NextPowerOfTwo(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
