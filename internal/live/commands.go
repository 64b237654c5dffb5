// Package live adapts the voice engine to a real-time audio host driven by
// text commands.
package live

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/cwbudde/algo-tract/dsp/control"
)

// ErrQuit is returned by Parse for the quit command.
var ErrQuit = errors.New("quit")

var aliases = map[string]control.Kind{
	"height":   control.KindTongueHeight,
	"position": control.KindTonguePosition,
	"lips":     control.KindLipRoundedness,
}

// Parser turns command lines into control events.
//
//	length 15          set a parameter (any control kind name or alias)
//	phoneme a          select a preset
//	midi b0 18 40      decode a raw MIDI message given as hex bytes
//	quit
type Parser struct {
	midi *control.Decoder
}

// NewParser returns a parser decoding MIDI with the default mapping.
func NewParser() *Parser {
	return &Parser{midi: control.NewDecoder()}
}

// Parse returns the event for line. Blank lines, comments and MIDI messages
// that map to nothing yield no event and no error.
func (p *Parser) Parse(line string) (control.Event, bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return control.Event{}, false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return control.Event{}, false, ErrQuit
	case "midi":
		msg, err := hex.DecodeString(strings.Join(args, ""))
		if err != nil {
			return control.Event{}, false, fmt.Errorf("midi: %w", err)
		}
		ev, ok := p.midi.Decode(msg, 0)
		return ev, ok, nil
	case control.KindPhoneme.String():
		if len(args) != 1 {
			return control.Event{}, false, fmt.Errorf("usage: phoneme <name>")
		}
		return control.SelectPhoneme(args[0]), true, nil
	}

	kind, ok := aliases[cmd]
	if !ok {
		kind, ok = control.ParseKind(cmd)
	}
	if !ok {
		return control.Event{}, false, fmt.Errorf("unknown command %q", cmd)
	}
	if len(args) != 1 {
		return control.Event{}, false, fmt.Errorf("usage: %s <value>", cmd)
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return control.Event{}, false, fmt.Errorf("%s: %w", cmd, err)
	}
	return control.Set(kind, v), true, nil
}

// ReadCommands parses lines from r and sends their events until EOF or a
// quit command. Bad lines are logged and skipped.
func ReadCommands(r io.Reader, events chan<- control.Event, log *logging.Logger) error {
	p := NewParser()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ev, ok, err := p.Parse(sc.Text())
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			log.Warningf("%v", err)
			continue
		}
		if !ok {
			continue
		}
		log.Debugf("event %s", ev)
		events <- ev
	}
	return sc.Err()
}
