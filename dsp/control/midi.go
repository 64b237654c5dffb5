package control

import (
	"gitlab.com/gomidi/midi/v2"
)

// DefaultPhonemeChannel is the zero-based MIDI channel whose notes select
// phoneme presets.
const DefaultPhonemeChannel = 9

// DefaultControllers maps MIDI controller numbers to parameters.
var DefaultControllers = map[uint8]Kind{
	0x15: KindTonguePosition,
	0x16: KindTongueHeight,
	0x17: KindLipRoundedness,
	0x18: KindLength,
	0x19: KindDrag,
	0x1a: KindPressure,
	0x1b: KindDamping,
}

// DefaultNotes maps MIDI note numbers on the phoneme channel to presets.
var DefaultNotes = map[uint8]string{
	0x24: "a",
	0x25: "i",
	0x26: "u",
	0x27: "e",
	0x28: "o",
	0x29: "schwa",
	0x2a: "uh",
	0x2b: "ah",
	0x2c: "ue",
	0x2d: "ii",
	0x2e: "oe",
}

// Decoder turns MIDI messages into events. The zero value decodes nothing;
// use NewDecoder for the default mapping.
type Decoder struct {
	PhonemeChannel uint8
	Controllers    map[uint8]Kind
	Notes          map[uint8]string
}

// NewDecoder returns a decoder with the default controller and note maps.
func NewDecoder() *Decoder {
	return &Decoder{
		PhonemeChannel: DefaultPhonemeChannel,
		Controllers:    DefaultControllers,
		Notes:          DefaultNotes,
	}
}

// Decode converts one MIDI message stamped at frame offset into an event.
// Control changes are accepted on every channel. Note-ons (velocity > 0) on
// the phoneme channel select a preset; unmapped notes, note-offs and every
// other message produce no event.
func (d *Decoder) Decode(msg []byte, offset int) (Event, bool) {
	m := midi.Message(msg)

	var channel, a, b uint8
	switch {
	case m.GetControlChange(&channel, &a, &b):
		kind, ok := d.Controllers[a]
		if !ok {
			return Event{}, false
		}
		ev, ok := Level(kind, b)
		ev.Offset = offset
		return ev, ok
	case m.GetNoteStart(&channel, &a, &b):
		if channel != d.PhonemeChannel {
			return Event{}, false
		}
		name, ok := d.Notes[a]
		if !ok {
			return Event{}, false
		}
		ev := SelectPhoneme(name)
		ev.Offset = offset
		return ev, true
	}
	return Event{}, false
}

// DecodeAll decodes msgs in order, appending the resulting events to dst.
// offsets[i] is the frame offset of msgs[i]; a short offsets slice stamps
// the remaining events at frame 0.
func (d *Decoder) DecodeAll(dst []Event, msgs [][]byte, offsets []int) []Event {
	for i, msg := range msgs {
		offset := 0
		if i < len(offsets) {
			offset = offsets[i]
		}
		if ev, ok := d.Decode(msg, offset); ok {
			dst = append(dst, ev)
		}
	}
	return dst
}
