// Package time computes level statistics of rendered audio.
package time

import (
	"math"

	"github.com/cwbudde/algo-tract/dsp/core"
)

// Stats holds time-domain signal statistics.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	RMS            float64
	RMS_dB         float64
	Peak           float64 // max(|x|)
	Peak_dB        float64
	PeakPos        int
	CrestFactor_dB float64
	Energy         float64 // sum of squares
	ZeroCrossings  int
	Clipped        int // samples with |x| >= 1
}

// Calculate computes statistics of a complete signal.
func Calculate(signal []float64) Stats {
	var s StreamingStats
	s.Update(signal)
	return s.Result()
}

// StreamingStats accumulates statistics block by block without
// allocating, so it can run inside an audio callback.
type StreamingStats struct {
	n             int
	sum           float64
	sumSq         float64
	peak          float64
	peakPos       int
	zeroCrossings int
	clipped       int
	last          float64
}

// NewStreamingStats creates a new StreamingStats accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds a block of samples to the running statistics.
func (s *StreamingStats) Update(samples []float64) {
	for _, x := range samples {
		s.add(x)
	}
}

// Update32 is Update for float32 host buffers.
func (s *StreamingStats) Update32(samples []float32) {
	for _, x := range samples {
		s.add(float64(x))
	}
}

func (s *StreamingStats) add(x float64) {
	a := math.Abs(x)
	if a > s.peak {
		s.peak = a
		s.peakPos = s.n
	}
	if a >= 1 {
		s.clipped++
	}
	if s.n > 0 && s.last*x < 0 {
		s.zeroCrossings++
	}
	s.sum += x
	s.sumSq += x * x
	s.last = x
	s.n++
}

// Result computes the statistics of everything accumulated so far.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return Stats{
			RMS_dB:         math.Inf(-1),
			Peak_dB:        math.Inf(-1),
			CrestFactor_dB: math.Inf(-1),
		}
	}

	nf := float64(s.n)
	rms := math.Sqrt(s.sumSq / nf)
	crest := math.Inf(-1)
	if rms > 0 {
		crest = core.LinearToDB(s.peak / rms)
	}

	return Stats{
		Length:         s.n,
		DC:             s.sum / nf,
		RMS:            rms,
		RMS_dB:         core.LinearToDB(rms),
		Peak:           s.peak,
		Peak_dB:        core.LinearToDB(s.peak),
		PeakPos:        s.peakPos,
		CrestFactor_dB: crest,
		Energy:         s.sumSq,
		ZeroCrossings:  s.zeroCrossings,
		Clipped:        s.clipped,
	}
}

// Reset clears all accumulated data, allowing the StreamingStats to be reused.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}
