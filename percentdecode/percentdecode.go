// Package percentdecode percent-decodes ASCOM Alpaca parameter values after
// the decoder has handed them off. The decoder itself never percent-decodes:
// its wire grammar treats '%' as an ordinary value character, so a
// percent-encoded literal that needs exact matching, e.g. against a
// SensorName, will simply fail to match. The demo server applies this
// package afterward only when logging a decoded Value parameter; dispatch
// hands devices the raw Value/State bytes.
package percentdecode

import "bytes"

// Decode percent- and plus-decodes s, matching application/x-www-form-
// urlencoded semantics. Any escape that isn't well-formed hex is left in
// the output unchanged rather than rejected, since by the time a value
// reaches here the decoder has already accepted it.
func Decode(s []byte) []byte {
	if !bytes.ContainsAny(s, "%+") {
		return s
	}

	var buf bytes.Buffer
	buf.Grow(len(s))

	const (
		notInEscape = iota
		char1InEscape
		char2InEscape
	)
	state := notInEscape

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch state {
		case notInEscape:
			switch c {
			case '%':
				state = char1InEscape
			case '+':
				buf.WriteByte(' ')
			default:
				buf.WriteByte(c)
			}
		case char1InEscape:
			if isHexChar(c) {
				state = char2InEscape
			} else {
				buf.WriteByte(s[i-1])
				buf.WriteByte(s[i])
				state = notInEscape
			}
		case char2InEscape:
			if isHexChar(c) {
				buf.WriteByte(unhex(s[i-1])<<4 | unhex(s[i]))
				state = notInEscape
			} else {
				buf.WriteByte(s[i-2])
				buf.WriteByte(s[i-1])
				buf.WriteByte(s[i])
				state = notInEscape
			}
		}
	}

	switch state {
	case char1InEscape:
		buf.WriteByte(s[len(s)-1])
	case char2InEscape:
		buf.WriteByte(s[len(s)-2])
		buf.WriteByte(s[len(s)-1])
	}

	return buf.Bytes()
}

func isHexChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
