package formant_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tract/dsp/tract"
	"github.com/cwbudde/algo-tract/measure/formant"
)

func ExampleMeasure() {
	t, err := tract.New(17.5, 44100, tract.WithDamping(0), tract.WithFrication(0))
	if err != nil {
		panic(err)
	}
	res, err := formant.Measure(t, formant.WithBand(80, 3000))
	if err != nil {
		panic(err)
	}
	for i, f := range res.Formants {
		fmt.Printf("F%d ~ %.0f Hz\n", i+1, math.Round(f.Frequency/100)*100)
	}
	// Output:
	// F1 ~ 500 Hz
	// F2 ~ 1500 Hz
	// F3 ~ 2500 Hz
}
