package decoder

// decodeHTTPMethod is the initial decode function, set by Reset. It expects
// one of the few supported HTTP method names, terminated by a single space.
// Leading whitespace is not tolerated: HTTP/1.1 requires clear delimiters,
// and only one request per connection is supported (no Keep-Alive), so
// there's no stray trailing data from a previous request to skip past.
func decodeHTTPMethod(d *Decoder, buf *Window) StatusCode {
	text, ok := extractMatchingPrefix(buf, isNameChar)
	if !ok {
		return StatusNeedMoreInput
	}
	c, ok := buf.Front()
	if !ok || c != ' ' {
		return StatusHTTPBadRequest
	}
	buf.RemovePrefix(1)
	return processHTTPMethod(d, text)
}

func processHTTPMethod(d *Decoder, text Window) StatusCode {
	method, ok := httpMethodTable.Match(text.Bytes())
	if !ok {
		return StatusHTTPMethodNotImplemented
	}
	d.request.HTTPMethod = method
	return d.setDecodeFunction(matchStartOfPath)
}

// matchStartOfPath expects the path to begin with "/".
func matchStartOfPath(d *Decoder, buf *Window) StatusCode {
	if buf.Empty() {
		return StatusNeedMoreInput
	}
	if buf.MatchAndConsumeByte('/') {
		return d.setDecodeFunction(decodeAPIGroup)
	}
	return StatusHTTPBadRequest
}
