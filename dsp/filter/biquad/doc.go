// Package biquad provides second-order IIR sections for shaping glottal
// sources and cleaning up rendered voice signals.
//
// Sections run in Direct Form II Transposed. Lowpass and Highpass follow
// the RBJ audio EQ cookbook.
package biquad
