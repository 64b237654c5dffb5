package voice_test

import (
	"fmt"

	"github.com/cwbudde/algo-tract/dsp/control"
	"github.com/cwbudde/algo-tract/dsp/core"
	"github.com/cwbudde/algo-tract/dsp/voice"
)

func ExampleEngine_Process() {
	cfg := core.ApplyProcessorOptions(core.WithSampleRate(44100), core.WithBlockSize(64))
	e, err := voice.New(cfg, voice.WithPreset("a"))
	if err != nil {
		panic(err)
	}
	fmt.Println(e.Status())

	in := make([]float64, cfg.BlockSize)
	out := make([]float64, cfg.BlockSize)
	_ = e.Process(in, out, []control.Event{control.Set(control.KindLength, 12)})
	fmt.Println(e.Status())
	// Output:
	// rate=44100Hz desired=17.50cm actual=17.11cm unit=0.7778cm segments=22
	// rate=44100Hz desired=12.00cm actual=11.67cm unit=0.7778cm segments=15
}
