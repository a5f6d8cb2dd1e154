package decoder

import (
	"reflect"
	"runtime"
	"strings"
)

// decodeFunc is the signature of every decode-phase function: given the
// current decoder state and the leading edge of the input, consume as much
// of buf as it can and report what happened. StatusContinueDecoding means
// "setDecodeFunction was called; keep looping without returning to the
// caller"; StatusNeedMoreInput means "stop, nothing more to do until the
// caller supplies more bytes"; anything >= StatusHTTPOk is terminal.
type decodeFunc func(d *Decoder, buf *Window) StatusCode

// Decoder incrementally parses one HTTP/1.1 Alpaca request into a
// RequestDescriptor. It holds no buffer of its own: every Decode call is
// handed the leading edge of the caller's transport buffer, and decoding
// resumes exactly where the previous call left off.
//
// A Decoder must be Reset before its first use, and after every terminal
// status, before Decode may be called again.
type Decoder struct {
	request  *RequestDescriptor
	listener Listener

	decodeFn decodeFunc
	status   Status

	currentParameter Parameter
	currentHeader    HTTPHeader

	remainingContentLength uint32
	foundContentLength     bool

	isDecodingHeader    bool
	isDecodingStartLine bool
	isFinalInput        bool

	tracer func(event string, fields map[string]interface{})
}

// SetTracer installs a callback invoked on every state transition, naming
// the decode function being entered. It costs nothing when nil, which is
// the default; alpacalog.DecoderTracer builds one that emits zerolog debug
// events.
func (d *Decoder) SetTracer(tracer func(event string, fields map[string]interface{})) {
	d.tracer = tracer
}

// decodeFuncName returns the unqualified name of a decode function, for
// tracing only.
func decodeFuncName(fn decodeFunc) string {
	pc := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "unknown"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// New returns a Decoder that will write into request as it decodes, calling
// listener (which may be nil) for tokens outside its built-in grammar.
// Reset must be called before the first Decode.
func New(request *RequestDescriptor, listener Listener) *Decoder {
	return &Decoder{request: request, listener: listener}
}

// Reset prepares the Decoder (and its RequestDescriptor) to decode a new
// request, discarding any state left over from a previous one.
func (d *Decoder) Reset() {
	d.decodeFn = decodeHTTPMethod
	if d.tracer != nil {
		d.tracer("transition", map[string]interface{}{"to": decodeFuncName(d.decodeFn)})
	}
	d.request.Reset()
	d.currentParameter = ParameterUnknown
	d.currentHeader = HeaderUnknown
	d.remainingContentLength = 0
	d.foundContentLength = false
	d.isDecodingHeader = true
	d.isDecodingStartLine = true
	d.isFinalInput = false
	d.status = StatusUnset
}

// Status reports the decoder's lifecycle state.
func (d *Decoder) Status() Status { return d.status }

// Decode applies as much of the decoding grammar to buf as possible,
// advancing buf past every byte it consumes. bufferIsFull tells the decoder
// that the caller cannot append any more bytes to buf right now (its
// backing array is at capacity); atEndOfInput tells it that no further
// bytes will ever arrive (e.g. the connection half-closed).
//
// The returned status is StatusNeedMoreInput (call again once more input,
// or end-of-input, is available) or a terminal HTTP status. Once a terminal
// status is returned, Decode must not be called again until Reset.
func (d *Decoder) Decode(buf *Window, bufferIsFull, atEndOfInput bool) StatusCode {
	if d.decodeFn == nil {
		return StatusHTTPInternalServerError
	}
	if d.status == StatusUnset {
		d.status = StatusDecoding
	}

	startSize := buf.Size()
	var status StatusCode
	if d.isDecodingHeader {
		status = d.decodeMessageHeader(buf, atEndOfInput)
	} else {
		status = d.decodeMessageBody(buf, atEndOfInput)
	}

	if bufferIsFull && status == StatusNeedMoreInput && startSize == buf.Size() {
		// Nothing was consumed, and the caller has no room to add more: a
		// single token has exceeded the bounded window.
		status = StatusHTTPRequestHeaderFieldsTooLarge
	}
	if status.IsTerminal() {
		d.decodeFn = nil
		d.status = StatusDecoded
	}
	return status
}

// decodeMessageHeader drives the decode-function loop while decoding the
// start line and header lines. We don't know how many bytes are in the
// header ahead of time, so decodeHeaderLines is what notices the end.
func (d *Decoder) decodeMessageHeader(buf *Window, atEndOfInput bool) StatusCode {
	var status StatusCode
	for {
		status = d.decodeFn(d, buf)
		if status != StatusContinueDecoding {
			break
		}
	}
	if status == StatusNeedMoreInput && !d.isDecodingHeader {
		// The header just ended and control has passed to the body decode
		// functions (decodeHeaderLines flips isDecodingHeader); keep going in
		// this same Decode call rather than returning prematurely.
		return d.decodeMessageBody(buf, atEndOfInput)
	}
	return status
}

// decodeMessageBody drives the decode-function loop while decoding the body
// of a PUT request, whose length was given by a previously-seen
// Content-Length header.
func (d *Decoder) decodeMessageBody(buf *Window, atEndOfInput bool) StatusCode {
	switch {
	case uint32(buf.Size()) > d.remainingContentLength:
		// Assumes the client hasn't pipelined a second request.
		return StatusHTTPPayloadTooLarge
	case uint32(buf.Size()) == d.remainingContentLength:
		atEndOfInput = true
		d.isFinalInput = true
	default:
		if atEndOfInput || d.isFinalInput {
			// The available input falls short of Content-Length and no more
			// is coming.
			return StatusHTTPBadRequest
		}
	}

	var status StatusCode
	for {
		before := buf.Size()
		status = d.decodeFn(d, buf)
		consumed := before - buf.Size()
		d.remainingContentLength -= uint32(consumed)
		if status != StatusContinueDecoding {
			break
		}
	}

	if status.IsTerminal() {
		return status
	}
	if atEndOfInput {
		return StatusHTTPBadRequest
	}
	return status
}

// setDecodeFunction installs fn as the function to apply on the next
// iteration of the decode loop and signals the loop to keep going.
func (d *Decoder) setDecodeFunction(fn decodeFunc) StatusCode {
	if d.tracer != nil {
		d.tracer("transition", map[string]interface{}{"to": decodeFuncName(fn)})
	}
	d.decodeFn = fn
	return StatusContinueDecoding
}

// setDecodeFunctionAfterListenerCall folds a status that may have come back
// from a Listener call: StatusContinueDecoding proceeds to fn, anything
// below 100 is a listener bug reported as 500, and everything else
// (StatusNeedMoreInput never legitimately appears here) is returned as-is.
func (d *Decoder) setDecodeFunctionAfterListenerCall(fn decodeFunc, status StatusCode) StatusCode {
	if status == StatusContinueDecoding {
		return d.setDecodeFunction(fn)
	}
	if status < 100 {
		return StatusHTTPInternalServerError
	}
	return status
}
