// Package ir provides time-domain metrics for tract impulse responses.
//
// The onset of a response is the propagation delay from glottis to lips, one
// sample per segment. The decay time follows from the Schroeder backward
// integration of the squared response:
//
//   - T20: decay from -5 to -25 dB, extrapolated to 60 dB
//   - T30: decay from -5 to -35 dB, extrapolated to 60 dB
//   - RT60: T30 when the response decays far enough, T20 otherwise
//
// # Usage
//
//	analyzer := ir.NewAnalyzer(44100)
//	metrics, err := analyzer.Analyze(response)
//	fmt.Printf("onset = %d samples, RT60 = %.1f ms\n", metrics.Onset, metrics.RT60*1000)
package ir
