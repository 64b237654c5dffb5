package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-tract/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(nil, bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleFindPeaks() {
	mag := []float64{0.1, 0.5, 1, 0.5, 0.1, 0.2, 0.1}
	for _, p := range spectrum.FindPeaks(mag, 0, len(mag)) {
		fmt.Printf("bin=%.2f\n", p.Bin)
	}
	// Output:
	// bin=2.00
	// bin=5.00
}
