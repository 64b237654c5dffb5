package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-tract/dsp/filter/biquad"
)

func ExampleLowpass() {
	c, err := biquad.Lowpass(500, biquad.Butterworth, 44100)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.1f dB at the corner\n", c.MagnitudeDB(500, 44100))
	// Output:
	// -3.0 dB at the corner
}
