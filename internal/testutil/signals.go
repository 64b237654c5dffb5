// Package testutil provides deterministic excitation signals and tolerance
// assertions shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// PulseTrain generates a crude glottal excitation: one unit impulse every
// sampleRate/f0 samples, starting at index 0.
func PulseTrain(f0, sampleRate float64, length int) []float64 {
	out := make([]float64, length)
	if f0 <= 0 || sampleRate <= 0 {
		return out
	}
	period := sampleRate / f0
	for next := 0.0; int(next) < length; next += period {
		out[int(math.Round(next))%length] = 1
	}
	return out
}
