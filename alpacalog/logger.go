// Package alpacalog builds the process-wide zerolog.Logger used by the
// decoder daemon and its supporting packages, following the same
// flag-driven, console-writer composition the reference server used.
package alpacalog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console-writing logger at levelName ("debug", "info",
// "warn", "error", "fatal", "panic"). A levelName that zerolog.ParseLevel
// rejects with an error falls back to InfoLevel.
func New(levelName string) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Caller().
		Logger()
}

// DecoderTracer returns a decoder.Decoder.SetTracer callback that emits one
// zerolog debug event per decode state transition. Passing it is a no-op
// cost-wise when the logger's level is above debug, since the event is built
// but never written; callers that want to avoid building the fields map
// entirely at info level and above can skip calling SetTracer at all.
func DecoderTracer(logger zerolog.Logger) func(event string, fields map[string]interface{}) {
	return func(event string, fields map[string]interface{}) {
		e := logger.Debug()
		for k, v := range fields {
			e = e.Interface(k, v)
		}
		e.Msg(event)
	}
}
