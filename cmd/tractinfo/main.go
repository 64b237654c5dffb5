// Command tractinfo prints how vocal tract lengths discretize at a sample
// rate, and the articulation presets with their measured formants.
//
// Usage:
//
//	tractinfo [flags] [length-cm ...]
//
// Without arguments it prints the default tract length.
//
// Examples:
//
//	tractinfo 14 17.5 20
//	tractinfo -rate 48000 17.5
//	tractinfo -presets
//	tractinfo -presets -formants -window blackman
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/op/go-logging"

	"github.com/cwbudde/algo-tract/dsp/articulation"
	"github.com/cwbudde/algo-tract/dsp/tract"
	"github.com/cwbudde/algo-tract/dsp/window"
	"github.com/cwbudde/algo-tract/internal/cli"
	"github.com/cwbudde/algo-tract/measure/formant"
	"github.com/cwbudde/algo-tract/measure/ir"
)

var log *logging.Logger

type options struct {
	rate     float64
	presets  bool
	formants bool
	count    int
	fftSize  int
	window   window.Type
	damping  float64
}

func main() {
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	presets := flag.Bool("presets", false, "list the articulation presets")
	formants := flag.Bool("formants", false, "with -presets, measure the formants of each preset")
	count := flag.Int("count", 3, "number of formants to print")
	fftSize := flag.Int("fft", formant.DefaultFFTSize, "FFT size for formant analysis")
	win := flag.String("window", "hann", "taper for formant analysis (rectangular, hann, hamming, blackman)")
	damping := flag.Float64("damping", tract.DefaultDamping, "reflection loss used for formant analysis")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tractinfo [flags] [length-cm ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints tract discretization and articulation presets.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  tractinfo 14 17.5 20\n")
		fmt.Fprintf(os.Stderr, "  tractinfo -presets -formants\n")
	}
	flag.Parse()
	log = cli.NewLogger("tractinfo", os.Stderr, *verbose)

	wt, ok := window.ParseType(*win)
	if !ok {
		log.Fatalf("unknown window %q", *win)
	}
	opts := options{
		rate:     *rate,
		presets:  *presets,
		formants: *formants,
		count:    *count,
		fftSize:  *fftSize,
		window:   wt,
		damping:  *damping,
	}

	lengths := parseLengths(flag.Args())
	if len(lengths) == 0 {
		lengths = []float64{tract.DefaultLength}
	}

	if err := printDiscretization(os.Stdout, lengths, opts.rate); err != nil {
		log.Fatalf("%v", err)
	}
	if opts.presets {
		fmt.Println()
		if err := printPresets(os.Stdout, lengths[0], opts); err != nil {
			log.Fatalf("%v", err)
		}
	}
}

func parseLengths(args []string) []float64 {
	var lengths []float64
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			log.Warningf("ignoring length %q: %v", a, err)
			continue
		}
		lengths = append(lengths, v)
	}
	return lengths
}

func printDiscretization(w io.Writer, lengths []float64, rate float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Length [cm]\tRate [Hz]\tUnit [cm]\tSegments\tActual [cm]\tRound trip [ms]\tF1 uniform [Hz]\n")
	fmt.Fprintf(tw, "-----------\t---------\t---------\t--------\t-----------\t---------------\t---------------\n")

	for _, l := range lengths {
		c, err := tract.NewChain(l, rate)
		if err != nil {
			log.Warningf("%v", err)
			continue
		}
		n := float64(c.Len())
		fmt.Fprintf(tw, "%.2f\t%.0f\t%.4f\t%d\t%.4f\t%.3f\t%.1f\n",
			l, rate, c.UnitLength(), c.Len(), c.Length(), 2*n/rate*1000, rate/(4*n))
	}
	return tw.Flush()
}

func printPresets(w io.Writer, length float64, opts options) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Preset\tHeight\tPosition\tLips")
	if opts.formants {
		for k := 1; k <= opts.count; k++ {
			fmt.Fprintf(tw, "\tF%d [Hz]", k)
		}
		fmt.Fprintf(tw, "\tOnset [ms]\tRT60 [ms]")
	}
	fmt.Fprintln(tw)

	for _, name := range articulation.PresetNames() {
		p, _ := articulation.Preset(name)
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f", name, p.TongueHeight, p.TonguePosition, p.LipRoundedness)
		if opts.formants {
			cols, err := measurePreset(length, p, opts)
			if err != nil {
				return fmt.Errorf("preset %s: %w", name, err)
			}
			fmt.Fprint(tw, cols)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func measurePreset(length float64, p articulation.Phoneme, opts options) (string, error) {
	t, err := tract.New(length, opts.rate, tract.WithDamping(opts.damping), tract.WithFrication(0))
	if err != nil {
		return "", err
	}
	t.Shape(p, true)

	response, err := formant.ImpulseResponse(t, opts.fftSize)
	if err != nil {
		return "", err
	}
	res, err := formant.Analyze(response, opts.rate,
		formant.WithFFTSize(opts.fftSize),
		formant.WithWindow(opts.window),
		formant.WithMaxFormants(opts.count))
	if err != nil {
		return "", err
	}
	m, err := ir.NewAnalyzer(opts.rate).Analyze(response)
	if err != nil {
		return "", err
	}
	log.Debugf("%+v: %d formants, response peak at sample %d", p, len(res.Formants), m.PeakIndex)

	var cols string
	for k := 0; k < opts.count; k++ {
		if k < len(res.Formants) {
			cols += fmt.Sprintf("\t%.0f", res.Formants[k].Frequency)
		} else {
			cols += "\t-"
		}
	}
	cols += fmt.Sprintf("\t%.3f\t%.1f", float64(m.Onset)/opts.rate*1000, m.RT60*1000)
	return cols, nil
}
