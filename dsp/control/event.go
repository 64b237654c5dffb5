package control

import "fmt"

// Kind identifies the parameter an Event changes.
type Kind int

// Event kinds. Every kind except KindPhoneme carries its value in
// Event.Value; KindPhoneme names a preset in Event.Preset.
const (
	KindLength         Kind = iota // tract length in cm
	KindTongueHeight               // 0 (low) to 1 (high)
	KindTonguePosition             // 0 (back) to 1 (front)
	KindLipRoundedness             // 0 (open) to 1 (closed)
	KindDrag                       // articulation glide coefficient
	KindPressure                   // diaphragm pressure bias
	KindDamping                    // reflection loss
	KindPhoneme                    // preset selection
)

var kindNames = [...]string{
	KindLength:         "length",
	KindTongueHeight:   "tongue-height",
	KindTonguePosition: "tongue-position",
	KindLipRoundedness: "lip-roundedness",
	KindDrag:           "drag",
	KindPressure:       "pressure",
	KindDamping:        "damping",
	KindPhoneme:        "phoneme",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a kind from its String form.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Event is one parameter change. Offset is the frame within the host block
// the event was stamped with; receivers apply all events of a block, in
// order, before its first sample.
type Event struct {
	Offset int
	Kind   Kind
	Value  float64
	Preset string // KindPhoneme only
}

// Set returns an event changing a numeric parameter.
func Set(kind Kind, value float64) Event {
	return Event{Kind: kind, Value: value}
}

// SelectPhoneme returns an event replacing the ambient phoneme with a preset.
func SelectPhoneme(name string) Event {
	return Event{Kind: KindPhoneme, Preset: name}
}

func (e Event) String() string {
	if e.Kind == KindPhoneme {
		return fmt.Sprintf("@%d %s=%s", e.Offset, e.Kind, e.Preset)
	}
	return fmt.Sprintf("@%d %s=%g", e.Offset, e.Kind, e.Value)
}
