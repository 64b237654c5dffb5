// Package spectrum provides FFT-adjacent spectrum-domain utilities used to
// read resonances off the tract's response.
//
// The package does not implement an FFT itself. It operates on complex bins
// produced by an FFT backend and provides magnitude extraction, dB
// conversion, smoothing and interpolated peak picking.
package spectrum
