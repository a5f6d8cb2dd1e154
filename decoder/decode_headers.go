package decoder

import "golang.org/x/net/http/httpguts"

var (
	httpVersionEOL = []byte("HTTP/1.1\r\n")
	crlf           = []byte("\r\n")
)

// matchHTTPVersion expects the fixed literal "HTTP/1.1\r\n"; only HTTP/1.1 is
// supported (no HTTP/1.0, no HTTP/2 upgrade).
func matchHTTPVersion(d *Decoder, buf *Window) StatusCode {
	if buf.MatchAndConsume(httpVersionEOL) {
		d.isDecodingStartLine = false
		return d.setDecodeFunction(decodeHeaderLines)
	}
	if buf.Size() < len(httpVersionEOL) {
		return StatusNeedMoreInput
	}
	return StatusHTTPVersionNotSupported
}

// decodeHeaderLines is re-entered at the start of every header line; it
// recognizes the blank line that ends the header block and decides, based
// on the method and the Content-Length header seen so far, whether a body
// follows.
func decodeHeaderLines(d *Decoder, buf *Window) StatusCode {
	if buf.MatchAndConsume(crlf) {
		switch {
		case d.request.HTTPMethod == MethodGET || d.request.HTTPMethod == MethodHEAD:
			// The standard requires that we not examine the body of a GET or
			// HEAD request, if present.
			return StatusHTTPOk
		case d.request.HTTPMethod != MethodPUT:
			return StatusHTTPInternalServerError
		case !d.foundContentLength:
			return StatusHTTPLengthRequired
		case d.remainingContentLength == 0:
			// All parameters were in the query string; an empty body is fine.
			return StatusHTTPOk
		default:
			d.isDecodingHeader = false
			d.setDecodeFunction(decodeParamName)
			return StatusNeedMoreInput
		}
	}
	if isPrefixOfLiteral(buf.Bytes(), crlf) {
		return StatusNeedMoreInput
	}
	return d.setDecodeFunction(decodeHeaderName)
}

func decodeHeaderName(d *Decoder, buf *Window) StatusCode {
	return extractAndProcessNameTerminated(d, buf, []byte(":"), processHeaderName, true, StatusHTTPBadRequest)
}

func processHeaderName(d *Decoder, matched Window, buf *Window) StatusCode {
	header, ok := headerTable.Match(matched.Bytes())
	if !ok {
		d.currentHeader = HeaderUnknown
		status := StatusContinueDecoding
		if d.listener != nil {
			status = d.listener.OnUnknownHeaderName(matched)
		}
		return d.setDecodeFunctionAfterListenerCall(decodeHeaderValue, status)
	}
	d.currentHeader = header
	return d.setDecodeFunction(decodeHeaderValue)
}

// decodeHeaderValue extracts the value of the current header (skipping
// leading OWS, trimming trailing OWS), then applies whatever built-in
// semantics the header carries.
func decodeHeaderValue(d *Decoder, buf *Window) StatusCode {
	if !skipLeadingOptionalWhitespace(buf) {
		return StatusNeedMoreInput
	}
	value, ok := extractMatchingPrefix(buf, isFieldContent)
	if !ok {
		return StatusNeedMoreInput
	}
	trimTrailingOptionalWhitespace(&value)

	// Defense in depth beyond the byte-level isFieldContent scan above: catch
	// any obs-text or otherwise malformed field value RFC 7230 disallows.
	if !httpguts.ValidHeaderFieldValue(value.String()) {
		return StatusHTTPBadRequest
	}

	status := StatusContinueDecoding
	switch d.currentHeader {
	case HeaderAccept:
		// Not tracking whether there are multiple Accept headers. This is not
		// a complete comparison (would also match "xxapplication/json+xyz"),
		// but sufficient for our purpose.
		if !value.Contains([]byte("application/json")) {
			// Producing a JSON result the client didn't ask for isn't a
			// problem for this server, so the listener's status is used
			// as-is, even if it's StatusContinueDecoding.
			if d.listener != nil {
				status = d.listener.OnExtraHeader(HeaderAccept, value)
			}
		}
	case HeaderContentLength:
		status = d.decodeContentLengthValue(value)
	case HeaderContentType:
		if d.request.HTTPMethod == MethodPUT && !value.Equal(formURLEncodedContentType) {
			if d.listener != nil {
				status = d.listener.OnExtraHeader(HeaderContentType, value)
			} else {
				status = StatusHTTPUnsupportedMediaType
			}
		}
	case HeaderUnknown:
		if d.listener != nil {
			status = d.listener.OnUnknownHeaderValue(value)
		}
	default:
		// Recognized but no built-in support: Connection, Host, User-Agent.
		if d.listener != nil {
			status = d.listener.OnExtraHeader(d.currentHeader, value)
		}
	}
	return d.setDecodeFunctionAfterListenerCall(decodeHeaderLineEnd, status)
}

var formURLEncodedContentType = []byte("application/x-www-form-urlencoded")

// decodeContentLengthValue implements the header's built-in semantics: a
// duplicate, unparseable, or (for PUT) over-budget Content-Length is an
// "extra" header; otherwise, for PUT, the value seeds remainingContentLength
// for the body decode that follows. Only PUT records the value, so for
// GET/HEAD a duplicate goes undetected, while an unparseable value still fails.
func (d *Decoder) decodeContentLengthValue(value Window) StatusCode {
	contentLength, convertedOK := value.ToUint32()
	needed := d.request.HTTPMethod == MethodPUT
	if d.foundContentLength || !convertedOK || (needed && contentLength > MaxPayloadSize) {
		status := StatusContinueDecoding
		if d.listener != nil {
			status = d.listener.OnExtraHeader(HeaderContentLength, value)
		}
		if status <= StatusHTTPOk {
			if contentLength > 0 {
				status = StatusHTTPPayloadTooLarge
			} else {
				status = StatusHTTPBadRequest
			}
		}
		return status
	}
	if needed {
		d.remainingContentLength = contentLength
		d.foundContentLength = true
	}
	return StatusContinueDecoding
}

func decodeHeaderLineEnd(d *Decoder, buf *Window) StatusCode {
	if buf.MatchAndConsume(crlf) {
		return d.setDecodeFunction(decodeHeaderLines)
	}
	if isPrefixOfLiteral(buf.Bytes(), crlf) {
		return StatusNeedMoreInput
	}
	// The header line doesn't end where expected; perhaps the EOL terminator
	// isn't correct (e.g. a bare "\n" instead of "\r\n").
	return StatusHTTPBadRequest
}
