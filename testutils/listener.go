package testutils

import "github.com/jamessynge/alpaca-decoder/decoder"

// Call records one invocation of a RecordingListener method.
type Call struct {
	Method string
	Tag    string // Parameter/HTTPHeader String(), empty for the *Value/*Name callbacks
	Value  []byte
}

// RecordingListener is a decoder.Listener that records every call it
// receives and returns a configurable status for each, defaulting to
// StatusContinueDecoding. Tests set Next to control what the next call
// returns; it resets to StatusContinueDecoding after being read.
type RecordingListener struct {
	Calls []Call
	Next  decoder.StatusCode
}

func (l *RecordingListener) consumeNext() decoder.StatusCode {
	status := l.Next
	l.Next = decoder.StatusContinueDecoding
	return status
}

func (l *RecordingListener) OnExtraParameter(param decoder.Parameter, value decoder.Window) decoder.StatusCode {
	l.Calls = append(l.Calls, Call{Method: "OnExtraParameter", Tag: param.String(), Value: append([]byte(nil), value.Bytes()...)})
	return l.consumeNext()
}

func (l *RecordingListener) OnExtraHeader(header decoder.HTTPHeader, value decoder.Window) decoder.StatusCode {
	l.Calls = append(l.Calls, Call{Method: "OnExtraHeader", Tag: header.String(), Value: append([]byte(nil), value.Bytes()...)})
	return l.consumeNext()
}

func (l *RecordingListener) OnUnknownParameterName(name decoder.Window) decoder.StatusCode {
	l.Calls = append(l.Calls, Call{Method: "OnUnknownParameterName", Value: append([]byte(nil), name.Bytes()...)})
	return l.consumeNext()
}

func (l *RecordingListener) OnUnknownParameterValue(value decoder.Window) decoder.StatusCode {
	l.Calls = append(l.Calls, Call{Method: "OnUnknownParameterValue", Value: append([]byte(nil), value.Bytes()...)})
	return l.consumeNext()
}

func (l *RecordingListener) OnUnknownHeaderName(name decoder.Window) decoder.StatusCode {
	l.Calls = append(l.Calls, Call{Method: "OnUnknownHeaderName", Value: append([]byte(nil), name.Bytes()...)})
	return l.consumeNext()
}

func (l *RecordingListener) OnUnknownHeaderValue(value decoder.Window) decoder.StatusCode {
	l.Calls = append(l.Calls, Call{Method: "OnUnknownHeaderValue", Value: append([]byte(nil), value.Bytes()...)})
	return l.consumeNext()
}

var _ decoder.Listener = (*RecordingListener)(nil)
