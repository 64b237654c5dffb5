package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-tract/dsp/articulation"
	"github.com/cwbudde/algo-tract/dsp/control"
)

// step holds one phoneme for a duration in seconds.
type step struct {
	preset   string
	duration float64
}

// parseScript reads "a:0.5,i:0.25,u" into steps. A step without a duration
// lasts defaultDur seconds.
func parseScript(s string, defaultDur float64) ([]step, error) {
	var steps []step
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, dur, hasDur := strings.Cut(item, ":")
		name = strings.TrimSpace(name)
		if _, ok := articulation.Preset(name); !ok {
			return nil, fmt.Errorf("script: unknown phoneme %q", name)
		}
		st := step{preset: name, duration: defaultDur}
		if hasDur {
			v, err := strconv.ParseFloat(strings.TrimSpace(dur), 64)
			if err != nil || v <= 0 {
				return nil, fmt.Errorf("script: invalid duration %q for %s", dur, name)
			}
			st.duration = v
		}
		steps = append(steps, st)
	}
	return steps, nil
}

// totalDuration returns the length of the script in seconds.
func totalDuration(steps []step) float64 {
	total := 0.0
	for _, st := range steps {
		total += st.duration
	}
	return total
}

// schedule stamps each step's phoneme event with its start frame.
type schedule struct {
	starts []int
	events []control.Event
	next   int
}

func newSchedule(steps []step, sampleRate float64) *schedule {
	s := &schedule{}
	at := 0.0
	for _, st := range steps {
		s.starts = append(s.starts, int(at*sampleRate))
		s.events = append(s.events, control.SelectPhoneme(st.preset))
		at += st.duration
	}
	return s
}

// block appends to dst the events starting in [start, start+n), with
// offsets relative to start.
func (s *schedule) block(dst []control.Event, start, n int) []control.Event {
	dst = dst[:0]
	for s.next < len(s.starts) && s.starts[s.next] < start+n {
		ev := s.events[s.next]
		ev.Offset = max(0, s.starts[s.next]-start)
		dst = append(dst, ev)
		s.next++
	}
	return dst
}
