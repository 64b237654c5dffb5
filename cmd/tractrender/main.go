// Command tractrender renders a glottal source through the vocal tract to a
// WAV file.
//
// The source is a WAV file or, without -in, an impulse train at -f0. With
// -source noise the built-in source is white noise, for whispering. A
// phoneme script sets the articulation over time; the tract glides between
// phonemes with the drag coefficient.
//
// Usage:
//
//	tractrender [flags] -out voice.wav
//
// Examples:
//
//	tractrender -script "a:0.5,i:0.5,u:0.5" -out aiu.wav
//	tractrender -in source.wav -length 15 -script "o" -out o.wav
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/op/go-logging"

	"github.com/cwbudde/algo-tract/dsp/articulation"
	"github.com/cwbudde/algo-tract/dsp/control"
	"github.com/cwbudde/algo-tract/dsp/core"
	"github.com/cwbudde/algo-tract/dsp/filter/biquad"
	"github.com/cwbudde/algo-tract/dsp/signal"
	"github.com/cwbudde/algo-tract/dsp/tract"
	"github.com/cwbudde/algo-tract/dsp/voice"
	"github.com/cwbudde/algo-tract/internal/cli"
	timestats "github.com/cwbudde/algo-tract/stats/time"
)

var log *logging.Logger

func main() {
	in := flag.String("in", "", "glottal source WAV (first channel); default is an impulse train")
	out := flag.String("out", "", "output WAV path (required)")
	rate := flag.Float64("rate", 44100, "sample rate for the impulse train source")
	f0 := flag.Float64("f0", 110, "impulse train frequency in Hz")
	kind := flag.String("source", "pulse", "built-in source without -in: pulse or noise")
	tilt := flag.Float64("tilt", 0, "lowpass corner in Hz applied to the source; 0 disables")
	dcBlock := flag.Float64("dcblock", 20, "highpass corner in Hz applied to the output; 0 disables")
	script := flag.String("script", "a:1", "phoneme script, e.g. a:0.5,i:0.5")
	length := flag.Float64("length", tract.DefaultLength, "tract length in cm")
	damping := flag.Float64("damping", tract.DefaultDamping, "reflection loss")
	frication := flag.Float64("frication", tract.DefaultFrication, "constriction noise gain")
	pressure := flag.Float64("pressure", tract.DefaultPressure, "diaphragm pressure")
	drag := flag.Float64("drag", articulation.DefaultDrag, "articulation glide coefficient")
	block := flag.Int("block", 256, "processing block size")
	bits := flag.Int("bits", 16, "output bit depth")
	normalize := flag.Bool("normalize", true, "scale the output peak to -1 dBFS")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tractrender [flags] -out voice.wav\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	log = cli.NewLogger("tractrender", os.Stderr, *verbose)

	if *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	steps, err := parseScript(*script, 1)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if len(steps) == 0 {
		log.Fatalf("script is empty")
	}

	var source []float64
	sampleRate := *rate
	if *in != "" {
		source, sampleRate, err = readWAV(*in)
		if err != nil {
			log.Fatalf("%v", err)
		}
		log.Infof("source %s: %d samples at %.0f Hz", *in, len(source), sampleRate)
	} else {
		n := int(totalDuration(steps) * sampleRate)
		source, err = builtinSource(*kind, *f0, sampleRate, n)
		if err != nil {
			log.Fatalf("%v", err)
		}
		log.Infof("%s source, %d samples", *kind, n)
	}
	if len(source) == 0 {
		log.Fatalf("nothing to render")
	}
	if *tilt > 0 {
		c, err := filter(source, biquad.Lowpass, *tilt, sampleRate)
		if err != nil {
			log.Fatalf("tilt: %v", err)
		}
		log.Infof("source tilt %.0f Hz: %.1f dB at 1 kHz, %.1f dB at 4 kHz",
			*tilt, c.MagnitudeDB(1000, sampleRate), c.MagnitudeDB(4000, sampleRate))
	}

	cfg := core.ApplyProcessorOptions(core.WithSampleRate(sampleRate), core.WithBlockSize(*block))
	e, err := voice.New(cfg,
		voice.WithLength(tract.ClampLength(*length)),
		voice.WithPreset(steps[0].preset),
		voice.WithDrag(articulation.ClampDrag(*drag)),
		voice.WithStatusFunc(cli.StatusLogger(log)),
		voice.WithTractOptions(
			tract.WithDamping(*damping),
			tract.WithFrication(*frication),
			tract.WithPressure(*pressure),
		),
	)
	if err != nil {
		log.Fatalf("%v", err)
	}

	rendered, err := render(e, source, newSchedule(steps, sampleRate))
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *dcBlock > 0 {
		c, err := filter(rendered, biquad.Highpass, *dcBlock, sampleRate)
		if err != nil {
			log.Fatalf("dcblock: %v", err)
		}
		log.Debugf("dc block %.0f Hz: %.1f dB at 100 Hz", *dcBlock, c.MagnitudeDB(100, sampleRate))
	}

	st := timestats.Calculate(rendered)
	log.Infof("peak %.1f dBFS at %.3fs, rms %.1f dBFS, crest %.1f dB",
		st.Peak_dB, float64(st.PeakPos)/sampleRate, st.RMS_dB, st.CrestFactor_dB)
	if *normalize {
		if err := signal.Normalize(rendered, math.Pow(10, -1.0/20)); err != nil {
			log.Fatalf("%v", err)
		}
	} else if st.Clipped > 0 {
		log.Warningf("%d samples clip", st.Clipped)
	}

	if err := writeWAV(*out, rendered, int(sampleRate), *bits); err != nil {
		log.Fatalf("%v", err)
	}
	log.Infof("wrote %s", *out)
}

// render runs source through e block by block, applying the scheduled
// events at the block they fall into.
func render(e *voice.Engine, source []float64, sched *schedule) ([]float64, error) {
	blockSize := e.Config().BlockSize
	out := make([]float64, len(source))
	var events []control.Event

	for start := 0; start < len(source); start += blockSize {
		end := min(start+blockSize, len(source))
		events = sched.block(events, start, end-start)
		for _, ev := range events {
			log.Debugf("frame %d: %s", start, ev)
		}
		if err := e.Process(source[start:end], out[start:end], events); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// filter runs x in place through a Butterworth section made by design and
// returns the coefficients used.
func filter(x []float64, design func(freq, q, sampleRate float64) (biquad.Coefficients, error), freq, sampleRate float64) (biquad.Coefficients, error) {
	c, err := design(freq, biquad.Butterworth, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}
	biquad.NewSection(c).ProcessBlock(x)
	return c, nil
}

// builtinSource generates n samples of the named excitation.
func builtinSource(kind string, f0, sampleRate float64, n int) ([]float64, error) {
	g := signal.NewGenerator(core.ApplyProcessorOptions(core.WithSampleRate(sampleRate)))
	switch kind {
	case "pulse":
		return g.PulseTrain(f0, 1, n)
	case "noise":
		return g.WhiteNoise(0.3, n)
	}
	return nil, fmt.Errorf("unknown source %q", kind)
}
