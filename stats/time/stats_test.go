package time

import (
	"math"
	"testing"
)

func TestCalculateSquareWave(t *testing.T) {
	s := Calculate([]float64{0.5, -0.5, 0.5, -0.5})

	if s.Length != 4 || s.DC != 0 || s.RMS != 0.5 || s.Peak != 0.5 {
		t.Fatalf("stats = %+v", s)
	}
	if math.Abs(s.RMS_dB-20*math.Log10(0.5)) > 1e-12 {
		t.Fatalf("RMS_dB = %v", s.RMS_dB)
	}
	if math.Abs(s.CrestFactor_dB) > 1e-12 {
		t.Fatalf("CrestFactor_dB = %v, want 0", s.CrestFactor_dB)
	}
	if s.ZeroCrossings != 3 || s.Energy != 1 || s.Clipped != 0 {
		t.Fatalf("zc=%d energy=%v clipped=%d", s.ZeroCrossings, s.Energy, s.Clipped)
	}
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)
	if s.Length != 0 || !math.IsInf(s.RMS_dB, -1) || !math.IsInf(s.Peak_dB, -1) {
		t.Fatalf("empty stats = %+v", s)
	}
}

func TestStreamingMatchesBatch(t *testing.T) {
	x := []float64{0.1, -0.3, 1.2, 0, -0.7, 0.05, 0.4}

	var s StreamingStats
	s.Update(x[:3])
	s.Update(x[3:])
	if got, want := s.Result(), Calculate(x); got != want {
		t.Fatalf("streaming %+v != batch %+v", got, want)
	}
	if s.Result().PeakPos != 2 || s.Result().Clipped != 1 {
		t.Fatalf("peak pos / clipped = %d / %d", s.Result().PeakPos, s.Result().Clipped)
	}

	s.Reset()
	if s.Result().Length != 0 {
		t.Fatal("Reset did not clear")
	}
}

func TestUpdate32(t *testing.T) {
	s := NewStreamingStats()
	s.Update32([]float32{0.25, -0.25})
	if r := s.Result(); r.Peak != 0.25 || r.ZeroCrossings != 1 {
		t.Fatalf("stats = %+v", r)
	}
}

func TestSilentCrest(t *testing.T) {
	s := Calculate([]float64{0, 0, 0})
	if !math.IsInf(s.CrestFactor_dB, -1) || s.RMS != 0 {
		t.Fatalf("silent stats = %+v", s)
	}
}
