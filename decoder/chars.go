package decoder

import "bytes"

// Character classifiers and the prefix-extraction helper shared by the
// decode functions. Matches decide where one token ends and the next
// begins; they never consume input or return a status themselves.

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isUpperAlpha(c byte) bool { return c >= 'A' && c <= 'Z' }

func isLowerAlpha(c byte) bool { return c >= 'a' && c <= 'z' }

func isAlpha(c byte) bool { return isUpperAlpha(c) || isLowerAlpha(c) }

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }

// isPrintable matches printable, non-control ASCII: 0x20 (space) through
// 0x7E inclusive.
func isPrintable(c byte) bool { return c >= 0x20 && c <= 0x7e }

func isOptionalWhitespace(c byte) bool { return c == ' ' || c == '\t' }

func isParamSeparator(c byte) bool { return c == '&' }

// isFieldContent matches RFC 7230 §3.2 field-content: printable characters
// plus horizontal tab.
func isFieldContent(c byte) bool { return isPrintable(c) || c == '\t' }

// isNameChar matches the characters allowed in a parameter or header name:
// alphanumerics plus '-' and '_'. The set is intentionally a superset of
// what any single name actually uses, since names are subsequently matched
// against a fixed literal table anyway.
func isNameChar(c byte) bool { return isAlphaNumeric(c) || c == '-' || c == '_' }

// isParamValueChar matches the characters allowed in a URL-encoded
// parameter value, whether in the path's query string or the body of a PUT
// request.
func isParamValueChar(c byte) bool {
	return isAlphaNumeric(c) || c == '-' || c == '_' || c == '=' || c == '%'
}

type charMatchFunc func(byte) bool

// extractMatchingPrefix removes the longest prefix of buf matching match,
// returning it as its own Window. It reports false, leaving buf untouched,
// if every byte currently in buf matches — in that case the caller cannot
// yet tell where the token ends and must wait for more input.
func extractMatchingPrefix(buf *Window, match charMatchFunc) (prefix Window, ok bool) {
	b := buf.Bytes()
	i := 0
	for i < len(b) && match(b[i]) {
		i++
	}
	if i == len(b) {
		return Window{}, false
	}
	prefix = buf.Prefix(i)
	buf.RemovePrefix(i)
	return prefix, true
}

// trimTrailingOptionalWhitespace removes trailing spaces/tabs from w.
func trimTrailingOptionalWhitespace(w *Window) {
	for {
		c, ok := w.Back()
		if !ok || !isOptionalWhitespace(c) {
			return
		}
		w.RemoveSuffix(1)
	}
}

// isPrefixOfLiteral reports whether buf (the whole window, usually shorter
// than literal) is a prefix of literal — the test used to decide "maybe
// this is the start of literal, need more input" versus "definitely not".
func isPrefixOfLiteral(buf []byte, literal []byte) bool {
	if len(buf) > len(literal) {
		return false
	}
	return bytes.Equal(literal[:len(buf)], buf)
}

// skipLeadingOptionalWhitespace removes leading spaces/tabs from buf,
// reporting true if it left at least one non-whitespace byte at the front.
// A false result (buf left empty) means more input is needed before the
// caller can tell whether the stream continues with whitespace or not.
func skipLeadingOptionalWhitespace(buf *Window) bool {
	b := buf.Bytes()
	i := 0
	for i < len(b) && isOptionalWhitespace(b[i]) {
		i++
	}
	if i == len(b) {
		buf.RemovePrefix(i)
		return false
	}
	buf.RemovePrefix(i)
	return true
}
