package formant

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-tract/dsp/core"
	"github.com/cwbudde/algo-tract/dsp/spectrum"
	"github.com/cwbudde/algo-tract/dsp/tract"
	"github.com/cwbudde/algo-tract/dsp/window"
)

// Errors returned by Analyze.
var (
	ErrEmptyResponse     = errors.New("formant: impulse response is empty")
	ErrInvalidSampleRate = errors.New("formant: sample rate must be positive and finite")
	ErrSilent            = errors.New("formant: impulse response is silent")
)

// levelFloor is the lowest level reported in Result.Levels.
const levelFloor = -240.0

// Formant is one resonance of the tract.
type Formant struct {
	Frequency float64 // Hz
	Level     float64 // dB relative to the strongest bin
}

// Result holds the spectrum of a response and the resonances found in it.
type Result struct {
	SampleRate float64
	FFTSize    int
	Formants   []Formant
	// Levels is the magnitude spectrum in dB relative to its maximum, for
	// bins 0 through FFTSize/2.
	Levels []float64
}

// BinWidth returns the frequency spacing of Levels in Hz.
func (r Result) BinWidth() float64 {
	if r.FFTSize == 0 {
		return 0
	}
	return r.SampleRate / float64(r.FFTSize)
}

// Analyze estimates the formants of an impulse response recorded at
// sampleRate.
func Analyze(ir []float64, sampleRate float64, opts ...Option) (Result, error) {
	if len(ir) == 0 {
		return Result{}, ErrEmptyResponse
	}
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return Result{}, ErrInvalidSampleRate
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return Result{}, err
		}
	}

	size := cfg.sizeFor(sampleRate)
	n := min(len(ir), size)
	frame := make([]float64, n)
	copy(frame, ir)
	window.Apply(cfg.window, frame, window.WithSlope(window.SlopeRight))

	padded := make([]complex128, size)
	for i, x := range frame {
		padded[i] = complex(x, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Result{}, fmt.Errorf("formant: failed to create FFT plan: %w", err)
	}
	bins := make([]complex128, size)
	if err := plan.Forward(bins, padded); err != nil {
		return Result{}, fmt.Errorf("formant: forward FFT: %w", err)
	}

	mag := spectrum.Magnitude(nil, bins[:size/2+1])
	if cfg.smoothing > 0 {
		smoothed := make([]float64, len(mag))
		spectrum.Smooth(smoothed, mag, cfg.smoothing)
		mag = smoothed
	}

	peak := floats.Max(mag)
	if !(peak > 0) || !core.IsFinite(peak) {
		return Result{}, ErrSilent
	}
	floats.Scale(1/peak, mag)

	res := Result{
		SampleRate: sampleRate,
		FFTSize:    size,
		Levels:     make([]float64, len(mag)),
	}
	spectrum.ToDB(res.Levels, mag, levelFloor)

	binWidth := res.BinWidth()
	lo := int(math.Ceil(cfg.minFreq / binWidth))
	hi := int(math.Floor(cfg.maxFreq / binWidth))
	peaks := spectrum.Strongest(spectrum.FindPeaks(mag, lo, hi), cfg.maxFormants)

	res.Formants = make([]Formant, len(peaks))
	for i, p := range peaks {
		res.Formants[i] = Formant{Frequency: p.Bin * binWidth, Level: p.Level}
	}
	return res, nil
}

// ImpulseResponse feeds a unit impulse into t and returns the next n output
// samples. The tract should be silent beforehand; it is left ringing. An
// attached articulator is detached meanwhile, so the shape holds still and
// the articulation does not advance.
func ImpulseResponse(t *tract.Tract, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("formant: response length must be > 0: %d", n)
	}
	if a := t.Articulator(); a != nil {
		t.SetArticulator(nil)
		defer t.SetArticulator(a)
	}
	in := make([]float64, n)
	in[0] = 1
	out := make([]float64, n)
	if err := t.Process(in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Measure records an impulse response of t as long as the configured FFT
// and analyzes it. Diaphragm pressure and frication are excluded for the
// duration of the measurement; the tract is reset before and after.
func Measure(t *tract.Tract, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return Result{}, err
		}
	}

	pressure, frication := t.Pressure(), t.Frication()
	t.SetPressure(0)
	t.SetFrication(0)
	t.Reset()
	defer func() {
		t.Reset()
		t.SetPressure(pressure)
		t.SetFrication(frication)
	}()

	ir, err := ImpulseResponse(t, cfg.sizeFor(t.Chain().SampleRate()))
	if err != nil {
		return Result{}, err
	}
	return Analyze(ir, t.Chain().SampleRate(), opts...)
}
