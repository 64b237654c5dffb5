package biquad

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-tract/internal/testutil"
)

const rate = 44100.0

func TestLowpassResponse(t *testing.T) {
	c, err := Lowpass(1000, 0, rate)
	if err != nil {
		t.Fatalf("Lowpass() error = %v", err)
	}
	tests := []struct {
		freq, want, tol float64
	}{
		{freq: 1e-3, want: 0, tol: 1e-6},
		{freq: 1000, want: -3.0103, tol: 1e-3},
		{freq: 2000, want: -12.3, tol: 0.5},
	}
	for _, tt := range tests {
		if got := c.MagnitudeDB(tt.freq, rate); math.Abs(got-tt.want) > tt.tol {
			t.Fatalf("MagnitudeDB(%g) = %.4f, want %.4f", tt.freq, got, tt.want)
		}
	}
	if got := c.MagnitudeSquared(rate/2, rate); got > 1e-20 {
		t.Fatalf("Nyquist gain = %g, want 0", got)
	}
}

func TestHighpassResponse(t *testing.T) {
	c, err := Highpass(20, Butterworth, rate)
	if err != nil {
		t.Fatalf("Highpass() error = %v", err)
	}
	if got := c.MagnitudeDB(20, rate); math.Abs(got+3.0103) > 1e-3 {
		t.Fatalf("corner gain = %.4f dB", got)
	}
	if got := c.MagnitudeDB(1000, rate); math.Abs(got) > 1e-3 {
		t.Fatalf("passband gain = %.4f dB", got)
	}
	if got := c.MagnitudeSquared(0, rate); got > 1e-20 {
		t.Fatalf("DC gain = %g, want 0", got)
	}
}

func TestDesignValidation(t *testing.T) {
	tests := []struct {
		name       string
		freq, rate float64
	}{
		{"zero freq", 0, rate},
		{"at nyquist", rate / 2, rate},
		{"nan freq", math.NaN(), rate},
		{"zero rate", 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Lowpass(tt.freq, 1, tt.rate); err == nil {
				t.Fatal("Lowpass: expected error")
			}
			if _, err := Highpass(tt.freq, 1, tt.rate); err == nil {
				t.Fatal("Highpass: expected error")
			}
		})
	}
}

func TestSectionStepResponse(t *testing.T) {
	lp, _ := Lowpass(1000, 0, rate)
	hp, _ := Highpass(20, 0, rate)
	lps, hps := NewSection(lp), NewSection(hp)

	buf := make([]float64, int(rate))
	for i := range buf {
		buf[i] = 1
	}
	hpBuf := append([]float64(nil), buf...)
	lps.ProcessBlock(buf)
	hps.ProcessBlock(hpBuf)

	if got := buf[len(buf)-1]; math.Abs(got-1) > 1e-9 {
		t.Fatalf("lowpass step settles at %g, want 1", got)
	}
	if got := hpBuf[len(hpBuf)-1]; math.Abs(got) > 1e-6 {
		t.Fatalf("highpass step settles at %g, want 0", got)
	}
}

func TestProcessSampleMatchesBlock(t *testing.T) {
	c, _ := Lowpass(3000, 2, rate)
	in := testutil.DeterministicNoise(11, 0.5, 512)

	a, b := NewSection(c), NewSection(c)
	want := append([]float64(nil), in...)
	a.ProcessBlock(want[:100])
	a.ProcessBlock(want[100:])
	got := make([]float64, len(in))
	for i, x := range in {
		got[i] = b.ProcessSample(x)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)

	b.Reset()
	if y := b.ProcessSample(0); y != 0 {
		t.Fatalf("after Reset output = %g, want 0", y)
	}
}
