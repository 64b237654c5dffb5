package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-tract/dsp/voice"
)

func TestStatusLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("clitest", &buf, false)

	report := StatusLogger(log)
	report(voice.Status{SampleRate: 44100, RequestedLength: 17.5, Length: 17.11, UnitLength: 0.7778, Segments: 22})
	report(voice.Status{Err: errors.New("no memory")})
	log.Debugf("hidden")

	out := buf.String()
	for _, want := range []string{"INFO", "segments=22", "ERRO", "resize failed: no memory"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message logged without verbose:\n%s", out)
	}
}

func TestNewLoggerVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("clitest", &buf, true)
	log.Debugf("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("debug message missing:\n%s", buf.String())
	}
}
