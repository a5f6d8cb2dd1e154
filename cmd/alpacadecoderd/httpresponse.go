package main

import (
	"fmt"
	"net"

	"github.com/jamessynge/alpaca-decoder/decoder"
)

// reasonPhrases gives the standard HTTP reason phrase for every status the
// decoder can produce, since decoder.StatusCode.String() is built for logs
// ("400 Bad Request") rather than a status line's trailing phrase alone.
var reasonPhrases = map[decoder.StatusCode]string{
	decoder.StatusHTTPOk:                          "OK",
	decoder.StatusHTTPBadRequest:                  "Bad Request",
	decoder.StatusHTTPNotFound:                    "Not Found",
	decoder.StatusHTTPMethodNotAllowed:             "Method Not Allowed",
	decoder.StatusHTTPLengthRequired:               "Length Required",
	decoder.StatusHTTPPayloadTooLarge:              "Payload Too Large",
	decoder.StatusHTTPUnsupportedMediaType:         "Unsupported Media Type",
	decoder.StatusHTTPRequestHeaderFieldsTooLarge:  "Request Header Fields Too Large",
	decoder.StatusHTTPInternalServerError:          "Internal Server Error",
	decoder.StatusHTTPMethodNotImplemented:         "Not Implemented",
	decoder.StatusHTTPVersionNotSupported:          "HTTP Version Not Supported",
}

func reasonPhrase(status decoder.StatusCode) string {
	if phrase, ok := reasonPhrases[status]; ok {
		return phrase
	}
	return "Unknown"
}

// writeHTTPResponse writes a minimal HTTP/1.1 response: status line, two
// headers, and the JSON body. The demo server never uses chunked encoding
// or a second request on the same connection (see connectionHandler).
func writeHTTPResponse(conn net.Conn, status decoder.StatusCode, body []byte) {
	fmt.Fprintf(conn, "HTTP/1.1 %d %s\r\n", uint16(status), reasonPhrase(status))
	fmt.Fprintf(conn, "Content-Type: application/json\r\n")
	fmt.Fprintf(conn, "Content-Length: %d\r\n\r\n", len(body))
	conn.Write(body)
}
