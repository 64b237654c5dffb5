// Package articulation holds the articulatory state that shapes the vocal
// tract: phoneme targets, a catalogue of vowel presets and the one-pole
// smoother that glides the live articulation toward its target one sample
// at a time.
package articulation
