package spectrum

import (
	"math"
	"testing"
)

func TestMagnitude(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(nil, bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}
	if math.Abs(mag[0]-5) > 1e-12 || math.Abs(mag[1]-math.Sqrt2) > 1e-12 || mag[2] != 0 {
		t.Fatalf("Magnitude = %v", mag)
	}

	dst := make([]float64, 8)
	got := Magnitude(dst, bins)
	if &got[0] != &dst[0] || len(got) != 3 {
		t.Fatal("Magnitude did not reuse dst")
	}
	if len(Magnitude(dst, nil)) != 0 {
		t.Fatal("empty input should yield empty output")
	}
}

func TestSmooth(t *testing.T) {
	src := []float64{0, 0, 9, 0, 0}
	dst := make([]float64, len(src))

	Smooth(dst, src, 1)
	want := []float64{0, 3, 3, 3, 0}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Fatalf("Smooth[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	Smooth(dst, src, 0)
	if dst[2] != 9 || dst[1] != 0 {
		t.Fatalf("halfWidth 0 should copy, got %v", dst)
	}
}

func TestFindPeaksInterpolates(t *testing.T) {
	// samples of a parabola in dB centered on bin 10.3
	mag := make([]float64, 21)
	for k := range mag {
		d := float64(k) - 10.3
		mag[k] = math.Pow(10, (-6-d*d)/20)
	}

	peaks := FindPeaks(mag, 0, len(mag))
	if len(peaks) != 1 {
		t.Fatalf("peaks = %v, want one", peaks)
	}
	if math.Abs(peaks[0].Bin-10.3) > 1e-9 {
		t.Fatalf("Bin = %v, want 10.3", peaks[0].Bin)
	}
	if math.Abs(peaks[0].Level+6) > 1e-9 {
		t.Fatalf("Level = %v, want -6", peaks[0].Level)
	}
}

func TestFindPeaksRange(t *testing.T) {
	mag := []float64{0, 1, 0, 2, 0, 3, 0}

	all := FindPeaks(mag, 0, 10)
	if len(all) != 3 || all[0].Bin != 1 || all[2].Bin != 5 {
		t.Fatalf("peaks = %v", all)
	}
	if got := FindPeaks(mag, 2, 4); len(got) != 1 || got[0].Bin != 3 {
		t.Fatalf("windowed peaks = %v", got)
	}
	if got := FindPeaks(mag[:2], 0, 10); len(got) != 0 {
		t.Fatalf("short input peaks = %v", got)
	}
}

func TestStrongest(t *testing.T) {
	peaks := []Peak{{Bin: 1, Level: -10}, {Bin: 3, Level: 0}, {Bin: 5, Level: -3}, {Bin: 7, Level: -20}}

	got := Strongest(peaks, 2)
	if len(got) != 2 || got[0].Bin != 3 || got[1].Bin != 5 {
		t.Fatalf("Strongest = %v", got)
	}
	if len(Strongest(peaks, 0)) != 4 || len(Strongest(peaks, 10)) != 4 {
		t.Fatal("Strongest should keep all peaks when n is out of range")
	}
}

func TestToDB(t *testing.T) {
	src := []float64{1, 0.1, 0}
	dst := make([]float64, 3)
	ToDB(dst, src, -120)
	if math.Abs(dst[0]) > 1e-9 || math.Abs(dst[1]+20) > 1e-9 || dst[2] != -120 {
		t.Fatalf("ToDB = %v", dst)
	}
}
