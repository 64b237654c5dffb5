package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-tract/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(48000),
		core.WithBlockSize(128),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d\n", cfg.SampleRate, cfg.BlockSize)

	// Output:
	// sampleRate=48000 blockSize=128
}

func ExampleMapRange() {
	// a 0..127 controller level at its midpoint, mapped to a tract length in cm
	fmt.Printf("%.2f\n", core.MapRange(64.0/127, 8, 24))

	// Output:
	// 16.06
}
