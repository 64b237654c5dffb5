// Command tractlive runs the vocal tract on a live audio stream.
//
// The default input device supplies the glottal source and the tract
// output goes to the default output device. With -f0 an internal impulse
// train is used instead of the input. Commands read from stdin change the
// articulation while audio runs:
//
//	phoneme i
//	length 15
//	height 0.4
//	midi b0 15 7f
//
// Usage:
//
//	tractlive [flags]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gordonklaus/portaudio"
	"github.com/op/go-logging"

	"github.com/cwbudde/algo-tract/dsp/articulation"
	"github.com/cwbudde/algo-tract/dsp/control"
	"github.com/cwbudde/algo-tract/dsp/core"
	"github.com/cwbudde/algo-tract/dsp/tract"
	"github.com/cwbudde/algo-tract/dsp/voice"
	"github.com/cwbudde/algo-tract/internal/cli"
	"github.com/cwbudde/algo-tract/internal/live"
)

var log *logging.Logger

func main() {
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	block := flag.Int("block", 256, "frames per buffer")
	f0 := flag.Float64("f0", 0, "use an internal impulse train at f0 Hz instead of the input device")
	gain := flag.Float64("gain", 0.5, "output gain")
	preset := flag.String("phoneme", "schwa", "initial phoneme")
	length := flag.Float64("length", tract.DefaultLength, "initial tract length in cm")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()
	log = cli.NewLogger("tractlive", os.Stderr, *verbose)

	cfg := core.ApplyProcessorOptions(core.WithSampleRate(*rate), core.WithBlockSize(*block))
	e, err := voice.New(cfg,
		voice.WithLength(tract.ClampLength(*length)),
		voice.WithPreset(*preset),
		voice.WithDrag(articulation.DefaultDrag),
		voice.WithStatusFunc(cli.StatusLogger(log)),
	)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, e, *f0, float32(*gain), os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, e *voice.Engine, f0 float64, gain float32, commands io.Reader) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("portaudio: %w", err)
	}
	defer portaudio.Terminate()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan control.Event, live.MaxBlockEvents)
	h := live.NewHost(e, events, f0, gain)

	cfg := e.Config()
	var stream *portaudio.Stream
	var err error
	if f0 > 0 {
		stream, err = portaudio.OpenDefaultStream(0, 1, cfg.SampleRate, cfg.BlockSize, h.Generate)
	} else {
		stream, err = portaudio.OpenDefaultStream(1, 1, cfg.SampleRate, cfg.BlockSize, h.Process)
	}
	if err != nil {
		return fmt.Errorf("portaudio: %w", err)
	}
	defer stream.Close()

	go func() {
		if err := e.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Errorf("resize loop: %v", err)
		}
	}()
	go func() {
		if err := live.ReadCommands(commands, events, log); err != nil {
			log.Errorf("reading commands: %v", err)
		}
		cancel()
	}()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("portaudio: %w", err)
	}
	log.Infof("running at %.0f Hz, %d frames per buffer", cfg.SampleRate, cfg.BlockSize)

	<-ctx.Done()
	if err := stream.Stop(); err != nil {
		return fmt.Errorf("portaudio: %w", err)
	}
	if n := h.Failures(); n > 0 {
		log.Warningf("%d blocks failed to render", n)
	}
	if st := h.Level(); st.Length > 0 {
		log.Infof("output: peak %.1f dBFS, rms %.1f dBFS, %d clipped of %d",
			st.Peak_dB, st.RMS_dB, st.Clipped, st.Length)
	}
	return ctx.Err()
}
