package articulation

// Controller owns the ambient (target) and current articulation of one voice.
// It is not safe for concurrent use; the engine mutates it from the
// processing path only.
type Controller struct {
	ambient Phoneme
	current Phoneme
	drag    float64
}

// NewController returns a controller resting on the neutral phoneme.
func NewController() *Controller {
	return &Controller{
		ambient: Neutral,
		current: Neutral,
		drag:    DefaultDrag,
	}
}

// Ambient returns the target the current articulation glides toward.
func (c *Controller) Ambient() Phoneme { return c.ambient }

// Current returns the live, interpolated articulation.
func (c *Controller) Current() Phoneme { return c.current }

// Drag returns the interpolation coefficient.
func (c *Controller) Drag() float64 { return c.drag }

// SetAmbient replaces the target articulation wholesale.
func (c *Controller) SetAmbient(p Phoneme) { c.ambient = p.Clamped() }

// SetTongueHeight sets the target tongue height in [0, 1].
func (c *Controller) SetTongueHeight(v float64) { c.ambient.TongueHeight = unit(v) }

// SetTonguePosition sets the target tongue position in [0, 1].
func (c *Controller) SetTonguePosition(v float64) { c.ambient.TonguePosition = unit(v) }

// SetLipRoundedness sets the target lip roundedness in [0, 1].
func (c *Controller) SetLipRoundedness(v float64) { c.ambient.LipRoundedness = unit(v) }

// SetDrag sets the interpolation coefficient, clamped to [MinDrag, MaxDrag].
func (c *Controller) SetDrag(drag float64) { c.drag = ClampDrag(drag) }

// SelectPreset overwrites the ambient phoneme with a catalogue entry. Unknown
// names leave the ambient phoneme as it is and report false.
func (c *Controller) SelectPreset(name string) bool {
	p, ok := Preset(name)
	if ok {
		c.ambient = p
	}
	return ok
}

// Snap jumps the current articulation onto the target.
func (c *Controller) Snap() { c.current = c.ambient }

// Tick advances the current articulation by one sample and returns it.
func (c *Controller) Tick() Phoneme {
	Advance(&c.current, c.ambient, c.drag)
	return c.current
}
