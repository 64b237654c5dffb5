// Package control defines the discrete parameter events that steer a vocal
// tract voice, the valid range of each parameter, and a decoder that turns
// raw MIDI messages into events.
//
// Events carry values already mapped into parameter units (cm, normalized
// articulation, linear gains). Receivers clamp out-of-range values rather
// than rejecting them, so malformed input never stops the audio path.
package control
