// Package tract implements a one-dimensional digital waveguide model of the
// human vocal tract.
//
// The tract is a chain of equal-length segments, each carrying a right-going
// (toward the lips) and a left-going (toward the glottis) traveling wave
// sample. Every audio sample the waves scatter at impedance discontinuities
// between neighbouring segments, reflect at the glottis and leave through the
// lips into a fixed drain impedance. The segment impedances glide toward a
// profile derived from the current articulation (tongue height and
// position, lip rounding).
//
// Segment state is double buffered: a step reads only the front buffer and
// writes only the back buffer, then the two swap. No segment ever observes a
// neighbour's already-updated state within one step.
//
// Tract and Chain are not safe for concurrent use. A chain may be built on
// another goroutine with NewChain and handed to the processing path through
// Tract.Adopt, which does not allocate.
package tract
