package live

import (
	"github.com/cwbudde/algo-tract/dsp/control"
	"github.com/cwbudde/algo-tract/dsp/voice"
	timestats "github.com/cwbudde/algo-tract/stats/time"
)

// MaxBlockEvents bounds the events applied per block; the rest wait for
// the next one.
const MaxBlockEvents = 64

// Host adapts the engine to audio callbacks. Its buffers are sized once;
// the callbacks do not allocate for blocks up to the configured size.
type Host struct {
	engine *voice.Engine
	events <-chan control.Event
	gain   float32

	pending []control.Event
	source  []float32

	period   float64
	phase    float64
	failures int
	level    *timestats.StreamingStats
}

// NewHost returns a host reading events from events. f0 > 0 sets the
// rate of the impulse train Generate renders from.
func NewHost(e *voice.Engine, events <-chan control.Event, f0 float64, gain float32) *Host {
	h := &Host{
		engine:  e,
		events:  events,
		gain:    gain,
		pending: make([]control.Event, 0, MaxBlockEvents),
		source:  make([]float32, e.Config().BlockSize),
		level:   timestats.NewStreamingStats(),
	}
	if f0 > 0 {
		h.period = max(1, e.Config().SampleRate/f0)
	}
	return h
}

// Failures returns how many blocks failed to render and were silenced.
func (h *Host) Failures() int { return h.failures }

// Level summarizes everything written to out so far. Call it only while
// the stream is stopped.
func (h *Host) Level() timestats.Stats { return h.level.Result() }

func (h *Host) drain() []control.Event {
	h.pending = h.pending[:0]
	for len(h.pending) < cap(h.pending) {
		select {
		case ev := <-h.events:
			h.pending = append(h.pending, ev)
		default:
			return h.pending
		}
	}
	return h.pending
}

// Process renders in through the tract into out, applying the events that
// arrived since the previous block.
func (h *Host) Process(in, out []float32) {
	if err := h.engine.ProcessFloat32(in, out, h.drain()); err != nil {
		h.failures++
		clear(out)
		return
	}
	for i := range out {
		out[i] *= h.gain
	}
	h.level.Update32(out)
}

// Generate renders the internal impulse train into out.
func (h *Host) Generate(out []float32) {
	if cap(h.source) < len(out) {
		h.source = make([]float32, len(out))
	}
	src := h.source[:len(out)]
	for i := range src {
		src[i] = 0
		if h.period > 0 && h.phase < 1 {
			src[i] = 1
		}
		h.phase++
		if h.phase >= h.period {
			h.phase -= h.period
		}
	}
	h.Process(src, out)
}
