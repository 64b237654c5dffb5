package ir

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Errors returned by IR analysis functions.
var (
	ErrEmptyIR           = errors.New("ir: impulse response is empty")
	ErrInvalidSampleRate = errors.New("ir: sample rate must be positive")
	ErrSilent            = errors.New("ir: impulse response is silent")
)

// DefaultOnsetThreshold is the level relative to the peak, in dB, at which a
// response is considered to have arrived.
const DefaultOnsetThreshold = -60.0

// schroederFloor is the level reported once no energy remains.
const schroederFloor = -200.0

// Metrics holds impulse response analysis results.
type Metrics struct {
	Onset     int     // first sample reaching the onset threshold
	PeakIndex int     // sample index of the absolute maximum
	Peak      float64 // absolute maximum
	Energy    float64 // sum of squares
	T20       float64 // seconds, 0 if the response never decays 25 dB
	T30       float64 // seconds, 0 if the response never decays 35 dB
	RT60      float64 // seconds
}

// Analyzer computes IR metrics from impulse response data.
type Analyzer struct {
	SampleRate     float64
	OnsetThreshold float64 // dB relative to the peak
}

// NewAnalyzer creates an IR analyzer with the given sample rate.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate, OnsetThreshold: DefaultOnsetThreshold}
}

// Analyze computes all metrics of an impulse response.
func (a *Analyzer) Analyze(ir []float64) (Metrics, error) {
	if len(ir) == 0 {
		return Metrics{}, ErrEmptyIR
	}
	if a.SampleRate <= 0 {
		return Metrics{}, ErrInvalidSampleRate
	}

	m := Metrics{Energy: floats.Dot(ir, ir)}
	if m.Energy == 0 {
		return Metrics{}, ErrSilent
	}

	for i, v := range ir {
		if math.Abs(v) > m.Peak {
			m.Peak = math.Abs(v)
			m.PeakIndex = i
		}
	}

	threshold := m.Peak * math.Pow(10, a.OnsetThreshold/20)
	for i, v := range ir {
		if math.Abs(v) >= threshold {
			m.Onset = i
			break
		}
	}

	schroeder := schroederIntegral(ir[m.Onset:])
	m.T20 = a.decayTime(schroeder, -5, -25)
	m.T30 = a.decayTime(schroeder, -5, -35)
	m.RT60 = m.T30
	if m.RT60 == 0 {
		m.RT60 = m.T20
	}
	return m, nil
}

// SchroederIntegral computes the Schroeder backward integration of the
// squared impulse response, returned in dB relative to the total energy.
func (a *Analyzer) SchroederIntegral(ir []float64) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyIR
	}
	return schroederIntegral(ir), nil
}

func schroederIntegral(ir []float64) []float64 {
	result := make([]float64, len(ir))

	var sum float64
	for i := len(ir) - 1; i >= 0; i-- {
		sum += ir[i] * ir[i]
		result[i] = sum
	}

	total := result[0]
	if total <= 0 {
		return result
	}
	for i, v := range result {
		if v <= 0 {
			result[i] = schroederFloor
			continue
		}
		result[i] = 10 * math.Log10(v/total)
	}
	return result
}

// decayTime fits a line to the Schroeder curve between startDB and endDB
// and extrapolates it to -60 dB. It returns 0 if the curve does not span
// the range or does not decay.
func (a *Analyzer) decayTime(schroeder []float64, startDB, endDB float64) float64 {
	start, end := -1, -1
	for i, v := range schroeder {
		if start < 0 && v <= startDB {
			start = i
		}
		if start >= 0 && v <= endDB {
			end = i
			break
		}
	}
	if start < 0 || end <= start {
		return 0
	}

	xs := make([]float64, end-start+1)
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, schroeder[start:end+1], nil, false)
	if !(slope < 0) {
		return 0
	}
	return -60 / (slope * a.SampleRate)
}
