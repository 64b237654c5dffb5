package voice

import (
	"fmt"

	"github.com/cwbudde/algo-tract/dsp/tract"
)

// Status describes the discretization of the live tract.
type Status struct {
	SampleRate      float64
	RequestedLength float64 // cm
	Length          float64 // realized length in cm
	UnitLength      float64 // cm per segment
	Segments        int
	Err             error // set when a resize failed
}

func statusOf(c *tract.Chain) Status {
	return Status{
		SampleRate:      c.SampleRate(),
		RequestedLength: c.RequestedLength(),
		Length:          c.Length(),
		UnitLength:      c.UnitLength(),
		Segments:        c.Len(),
	}
}

func (s Status) String() string {
	if s.Err != nil {
		return fmt.Sprintf("resize failed: %v", s.Err)
	}
	return fmt.Sprintf("rate=%.0fHz desired=%.2fcm actual=%.2fcm unit=%.4fcm segments=%d",
		s.SampleRate, s.RequestedLength, s.Length, s.UnitLength, s.Segments)
}
