package tract

import (
	"fmt"

	"github.com/cwbudde/algo-tract/dsp/articulation"
)

// Transplant copies the traveling waves of the overlapping index range
// [0, min(old.Len(), c.Len())) from old into c, front to front and back to
// back. Wave content is moved index for index with no resampling; segments
// beyond the overlap keep their own state. Impedances are left alone.
func (c *Chain) Transplant(old *Chain) {
	n := min(old.Len(), c.Len())
	copyWaves(c.Front()[:n], old.Front()[:n])
	copyWaves(c.Back()[:n], old.Back()[:n])
}

func copyWaves(dst, src []Segment) {
	for i := range dst {
		dst[i].Right = src[i].Right
		dst[i].Left = src[i].Left
	}
}

// Resize rebuilds the chain for a new length, clamped to [MinLength,
// MaxLength], shaped after p and carrying over the existing wave content.
// It allocates; see Adopt for a variant that does not. On error the current
// chain stays in place.
func (t *Tract) Resize(desiredLength float64, p articulation.Phoneme) error {
	next, err := NewChain(ClampLength(desiredLength), t.chain.SampleRate())
	if err != nil {
		return err
	}
	return t.Adopt(next, p)
}

// Adopt installs a chain built elsewhere, typically off the processing path.
// The chain takes the tract's wall rigidity, is shaped after p with
// impedances snapped, and receives the live wave content. Adopt does not
// allocate. The previous chain is dropped.
func (t *Tract) Adopt(next *Chain, p articulation.Phoneme) error {
	if next == nil {
		return fmt.Errorf("tract adopt: nil chain")
	}
	if next.SampleRate() != t.chain.SampleRate() {
		return fmt.Errorf("tract adopt: chain sample rate %.0fHz does not match %.0fHz",
			next.SampleRate(), t.chain.SampleRate())
	}
	next.SetWallRigidity(t.chain.WallRigidity())
	next.Shape(p, true)
	next.Transplant(t.chain)
	t.chain = next
	t.shaped = p
	t.hasShape = true
	return nil
}
