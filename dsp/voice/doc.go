// Package voice drives a vocal tract from a real-time audio host.
//
// An Engine owns one tract and one articulation controller. The host calls
// Process once per block with the block's glottal source samples and the
// control events stamped within it; events are applied in delivery order
// before the first sample of the block is rendered.
//
// Changing the tract length reallocates the segment chain. When Run is
// active, length changes are built on Run's goroutine and handed to the
// processing path through an atomic pointer, so Process itself never
// allocates for a resize. Without Run the engine resizes inline, inside the
// block that carried the event.
package voice
