// Package telemetry implements a decoder.Listener that logs every extra or
// unknown token it sees, the same role the reference WAF's ResultsLogger
// played for SecRule matches: a passive observer that never itself blocks a
// request unless told to.
package telemetry

import (
	"github.com/rs/zerolog"

	"github.com/jamessynge/alpaca-decoder/decoder"
)

// Listener logs every extra/unknown callback at debug level and always
// returns StatusContinueDecoding. Decoding then proceeds, except for an extra
// parameter, which the decoder's own "extras fail absent an upgrade" rule
// still turns into a 400, and a rejected Content-Length, which the decoder
// still turns into a 413 or 400. A caller who wants different behavior gets
// it by wrapping or replacing Listener rather than editing it.
type Listener struct {
	logger zerolog.Logger
}

// New returns a Listener that logs through logger.
func New(logger zerolog.Logger) *Listener {
	return &Listener{logger: logger}
}

func (l *Listener) OnExtraParameter(param decoder.Parameter, value decoder.Window) decoder.StatusCode {
	l.logger.Debug().Str("parameter", param.String()).Bytes("value", value.Bytes()).Msg("extra parameter")
	return decoder.StatusContinueDecoding
}

func (l *Listener) OnExtraHeader(header decoder.HTTPHeader, value decoder.Window) decoder.StatusCode {
	l.logger.Debug().Str("header", header.String()).Bytes("value", value.Bytes()).Msg("extra header")
	return decoder.StatusContinueDecoding
}

func (l *Listener) OnUnknownParameterName(name decoder.Window) decoder.StatusCode {
	l.logger.Debug().Bytes("name", name.Bytes()).Msg("unknown parameter name")
	return decoder.StatusContinueDecoding
}

func (l *Listener) OnUnknownParameterValue(value decoder.Window) decoder.StatusCode {
	l.logger.Debug().Bytes("value", value.Bytes()).Msg("unknown parameter value")
	return decoder.StatusContinueDecoding
}

func (l *Listener) OnUnknownHeaderName(name decoder.Window) decoder.StatusCode {
	l.logger.Debug().Bytes("name", name.Bytes()).Msg("unknown header name")
	return decoder.StatusContinueDecoding
}

func (l *Listener) OnUnknownHeaderValue(value decoder.Window) decoder.StatusCode {
	l.logger.Debug().Bytes("value", value.Bytes()).Msg("unknown header value")
	return decoder.StatusContinueDecoding
}

var _ decoder.Listener = (*Listener)(nil)
