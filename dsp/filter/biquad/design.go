package biquad

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tract/dsp/core"
)

// Butterworth is the quality factor of a maximally flat section.
const Butterworth = 1 / math.Sqrt2

// Lowpass designs a lowpass section with corner freq (Hz). Non-positive q
// selects Butterworth.
func Lowpass(freq, q, sampleRate float64) (Coefficients, error) {
	cw, alpha, err := prewarp(freq, q, sampleRate)
	if err != nil {
		return Coefficients{}, err
	}
	b := (1 - cw) / 2
	return normalize(b, 2*b, b, 1+alpha, -2*cw, 1-alpha), nil
}

// Highpass designs a highpass section with corner freq (Hz). Non-positive
// q selects Butterworth.
func Highpass(freq, q, sampleRate float64) (Coefficients, error) {
	cw, alpha, err := prewarp(freq, q, sampleRate)
	if err != nil {
		return Coefficients{}, err
	}
	b := (1 + cw) / 2
	return normalize(b, -2*b, b, 1+alpha, -2*cw, 1-alpha), nil
}

func prewarp(freq, q, sampleRate float64) (cw, alpha float64, err error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return 0, 0, fmt.Errorf("biquad sample rate must be > 0: %f", sampleRate)
	}
	if freq <= 0 || freq >= sampleRate/2 || !core.IsFinite(freq) {
		return 0, 0, fmt.Errorf("biquad frequency must be in (0, %g): %f", sampleRate/2, freq)
	}
	if q <= 0 || !core.IsFinite(q) {
		q = Butterworth
	}
	w0 := 2 * math.Pi * freq / sampleRate
	return math.Cos(w0), math.Sin(w0) / (2 * q), nil
}

func normalize(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
