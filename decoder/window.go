// Package decoder implements an incremental, bounded-buffer HTTP/1.1 request
// decoder for the ASCOM Alpaca REST API.
package decoder

import (
	"bytes"
	"math"
)

// MaxWindowSize is the largest number of bytes the decoder will ever be asked
// to look at in a single contiguous span: a path segment, a header value, a
// parameter value. It bounds both Window and the per-field buffers a caller
// must provide.
const MaxWindowSize = 255

// MaxPayloadSize is the largest PUT request body the decoder will accept; it
// is the same bound as MaxWindowSize because the body is decoded through the
// same windowed parameter parser as the query string.
const MaxPayloadSize = MaxWindowSize

// Window is a non-owning view over a caller-managed byte buffer. Every
// decode function consumes a prefix of a Window, never writes into it, and
// never holds onto it past the call that received it.
type Window struct {
	buf []byte
}

// NewWindow wraps buf. The caller retains ownership; Window never copies or
// mutates the underlying array.
func NewWindow(buf []byte) Window {
	return Window{buf: buf}
}

// Bytes returns the window's current byte range. Callers (notably Listener
// implementations) must not retain it past the call they received it in.
func (w Window) Bytes() []byte { return w.buf }

// Empty reports whether the window has no remaining bytes.
func (w Window) Empty() bool { return len(w.buf) == 0 }

// Size returns the number of remaining bytes.
func (w Window) Size() int { return len(w.buf) }

// Front returns the first byte, if any.
func (w Window) Front() (byte, bool) {
	if len(w.buf) == 0 {
		return 0, false
	}
	return w.buf[0], true
}

// Back returns the last byte, if any.
func (w Window) Back() (byte, bool) {
	if len(w.buf) == 0 {
		return 0, false
	}
	return w.buf[len(w.buf)-1], true
}

// RemovePrefix advances the window past its first n bytes.
func (w *Window) RemovePrefix(n int) { w.buf = w.buf[n:] }

// RemoveSuffix shortens the window by its last n bytes.
func (w *Window) RemoveSuffix(n int) { w.buf = w.buf[:len(w.buf)-n] }

// Prefix returns, without consuming, the first n bytes as their own Window.
func (w Window) Prefix(n int) Window { return Window{buf: w.buf[:n]} }

// StartsWith reports whether the window begins with literal.
func (w Window) StartsWith(literal []byte) bool {
	return bytes.HasPrefix(w.buf, literal)
}

// MatchAndConsume reports whether the window begins with literal, byte for
// byte, and if so advances past it.
func (w *Window) MatchAndConsume(literal []byte) bool {
	if !w.StartsWith(literal) {
		return false
	}
	w.buf = w.buf[len(literal):]
	return true
}

// MatchAndConsumeByte is the single-byte specialization of MatchAndConsume.
func (w *Window) MatchAndConsumeByte(c byte) bool {
	if len(w.buf) == 0 || w.buf[0] != c {
		return false
	}
	w.buf = w.buf[1:]
	return true
}

// Contains reports whether substr occurs anywhere in the window.
func (w Window) Contains(substr []byte) bool { return bytes.Contains(w.buf, substr) }

// Equal reports whether the window's bytes are exactly other, case included.
func (w Window) Equal(other []byte) bool { return bytes.Equal(w.buf, other) }

// EqualFold reports whether the window equals other, comparing ASCII letters
// case-insensitively (non-letter bytes must match exactly).
func (w Window) EqualFold(other []byte) bool { return bytes.EqualFold(w.buf, other) }

// ToUint32 parses the entire window as a decimal unsigned integer. It fails
// (returning false, leaving the window unchanged) if the window is empty,
// contains a non-digit byte, or the value overflows uint32.
func (w Window) ToUint32() (uint32, bool) {
	if len(w.buf) == 0 {
		return 0, false
	}
	var v uint64
	for _, c := range w.buf {
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + uint64(c-'0')
		if v > math.MaxUint32 {
			return 0, false
		}
	}
	return uint32(v), true
}
