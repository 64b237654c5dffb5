package voice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-tract/dsp/articulation"
	"github.com/cwbudde/algo-tract/dsp/control"
	"github.com/cwbudde/algo-tract/dsp/core"
	"github.com/cwbudde/algo-tract/dsp/tract"
)

// ErrRunning is returned by Run when another Run is already serving the
// engine.
var ErrRunning = errors.New("voice: resize loop already running")

// Engine renders a vocal tract voice block by block.
//
// Process, ProcessFloat32, Apply, Reset and the accessors belong to the
// processing path and must not be called concurrently with each other.
// SetLength and Run may be used from other goroutines.
type Engine struct {
	cfg    core.ProcessorConfig
	tract  *tract.Tract
	artic  *articulation.Controller
	status func(Status)

	pending  atomic.Pointer[tract.Chain]
	requests chan float64
	notices  chan Status
	running  atomic.Bool

	in, out []float64
}

// New builds an engine for the host settings in cfg.
func New(cfg core.ProcessorConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	vc := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&vc); err != nil {
			return nil, err
		}
	}

	t, err := tract.New(vc.length, cfg.SampleRate, vc.tractOpts...)
	if err != nil {
		return nil, err
	}

	artic := articulation.NewController()
	artic.SetAmbient(vc.ambient)
	artic.SetDrag(vc.drag)
	artic.Snap()
	t.SetArticulator(artic)
	t.Shape(artic.Current(), true)

	e := &Engine{
		cfg:      cfg,
		tract:    t,
		artic:    artic,
		status:   vc.status,
		requests: make(chan float64, 1),
		notices:  make(chan Status, 1),
		in:       make([]float64, cfg.BlockSize),
		out:      make([]float64, cfg.BlockSize),
	}
	e.report(statusOf(t.Chain()))
	return e, nil
}

// Config returns the host settings the engine was built for.
func (e *Engine) Config() core.ProcessorConfig { return e.cfg }

// Tract returns the live tract.
func (e *Engine) Tract() *tract.Tract { return e.tract }

// Articulation returns the articulation controller.
func (e *Engine) Articulation() *articulation.Controller { return e.artic }

// Status describes the live tract.
func (e *Engine) Status() Status { return statusOf(e.tract.Chain()) }

func (e *Engine) report(s Status) {
	if e.status != nil {
		e.status(s)
	}
}

// notify reports s from the processing path. While Run is active the
// callback runs on Run's goroutine; a notice arriving while one is still
// queued is dropped.
func (e *Engine) notify(s Status) {
	if !e.running.Load() {
		e.report(s)
		return
	}
	select {
	case e.notices <- s:
	default:
	}
}

// Process applies events in order, then renders one output sample per input
// sample. A chain prepared by Run or SetLength is installed first.
func (e *Engine) Process(in, out []float64, events []control.Event) error {
	if len(out) < len(in) {
		return fmt.Errorf("voice output too short: %d < %d", len(out), len(in))
	}
	e.adoptPending()
	for _, ev := range events {
		e.Apply(ev)
	}
	return e.tract.Process(in, out[:len(in)])
}

// ProcessFloat32 is Process for hosts with float32 buffers.
func (e *Engine) ProcessFloat32(in, out []float32, events []control.Event) error {
	if len(out) < len(in) {
		return fmt.Errorf("voice output too short: %d < %d", len(out), len(in))
	}
	e.in = core.EnsureLen(e.in, len(in))
	e.out = core.EnsureLen(e.out, len(in))
	core.Widen(e.in, in)
	if err := e.Process(e.in, e.out, events); err != nil {
		return err
	}
	core.Narrow(out, e.out)
	return nil
}

// Apply applies one control event immediately. Values outside a
// parameter's range are clamped; NaN values and unknown presets are
// ignored.
func (e *Engine) Apply(ev control.Event) {
	if ev.Kind != control.KindPhoneme && math.IsNaN(ev.Value) {
		return
	}
	switch ev.Kind {
	case control.KindLength:
		e.requestLength(ev.Value)
	case control.KindTongueHeight:
		e.artic.SetTongueHeight(ev.Value)
	case control.KindTonguePosition:
		e.artic.SetTonguePosition(ev.Value)
	case control.KindLipRoundedness:
		e.artic.SetLipRoundedness(ev.Value)
	case control.KindDrag:
		e.artic.SetDrag(ev.Value)
	case control.KindPressure:
		e.tract.SetPressure(ev.Value)
	case control.KindDamping:
		e.tract.SetDamping(ev.Value)
	case control.KindPhoneme:
		e.artic.SelectPreset(ev.Preset)
	}
}

// Reset silences the tract and snaps the articulation onto its target.
func (e *Engine) Reset() {
	e.tract.Reset()
	e.artic.Snap()
	e.tract.Shape(e.artic.Current(), true)
}

func (e *Engine) requestLength(cm float64) {
	cm = tract.ClampLength(cm)
	if e.running.Load() {
		e.forward(cm)
		return
	}
	if e.pending.Load() == nil && core.NearlyEqual(cm, e.tract.Chain().RequestedLength(), 1e-9) {
		return
	}
	if err := e.tract.Resize(cm, e.artic.Current()); err != nil {
		e.notify(Status{Err: err})
		return
	}
	e.notify(statusOf(e.tract.Chain()))
}

// forward hands a length request to Run, replacing any request Run has not
// picked up yet.
func (e *Engine) forward(cm float64) {
	for {
		select {
		case e.requests <- cm:
			return
		default:
		}
		select {
		case <-e.requests:
		default:
		}
	}
}

func (e *Engine) adoptPending() {
	next := e.pending.Swap(nil)
	if next == nil {
		return
	}
	if err := e.tract.Adopt(next, e.artic.Current()); err != nil {
		e.notify(Status{Err: err})
	}
}

// SetLength builds a chain for a new tract length on the calling goroutine
// and publishes it; the processing path installs it at the start of the
// next block. A later call before that replaces the earlier chain. On error
// the live tract is unchanged.
func (e *Engine) SetLength(cm float64) error {
	next, err := tract.NewChain(tract.ClampLength(cm), e.cfg.SampleRate)
	if err != nil {
		e.report(Status{Err: err})
		return err
	}
	e.pending.Store(next)
	e.report(statusOf(next))
	return nil
}

// Run serves length events from Process off the processing path until ctx
// is done. While Run is active, a length event no longer resizes inside the
// block; the new chain is installed at the start of a following block.
func (e *Engine) Run(ctx context.Context) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer e.running.Store(false)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cm := <-e.requests:
			// failures are reported through the status callback
			_ = e.SetLength(cm)
		case s := <-e.notices:
			e.report(s)
		}
	}
}
