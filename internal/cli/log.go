// Package cli holds the logging setup shared by the commands.
package cli

import (
	"io"

	"github.com/op/go-logging"

	"github.com/cwbudde/algo-tract/dsp/voice"
)

var format = logging.MustStringFormatter(`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`)

// NewLogger routes all logging to w and returns the logger for module.
// Debug messages are dropped unless verbose is set.
func NewLogger(module string, w io.Writer, verbose bool) *logging.Logger {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), format)
	leveled := logging.AddModuleLevel(backend)
	level := logging.INFO
	if verbose {
		level = logging.DEBUG
	}
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
	return logging.MustGetLogger(module)
}

// StatusLogger returns a voice status callback writing to log.
func StatusLogger(log *logging.Logger) func(voice.Status) {
	return func(s voice.Status) {
		if s.Err != nil {
			log.Errorf("%s", s)
			return
		}
		log.Infof("%s", s)
	}
}
