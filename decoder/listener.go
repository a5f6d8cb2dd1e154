package decoder

// Listener is the decoder's extension surface for tokens it recognizes but
// does not natively handle ("extra"), and tokens it does not recognize at
// all ("unknown"). Every method returns a StatusCode: StatusContinueDecoding
// to proceed normally, or an HTTP status (>= StatusHTTPOk) to terminate
// decoding with that status. Returning any other value below 100 is a
// programming error and is reported to the caller as
// StatusHTTPInternalServerError.
//
// A nil Listener is a valid, and the default, configuration: every call site
// checks for it before invoking a method. Without a listener, unknown names
// and values and most extra headers are ignored; an extra parameter fails
// decoding with StatusHTTPBadRequest, a rejected Content-Length with
// StatusHTTPPayloadTooLarge (value above zero) or StatusHTTPBadRequest, and a
// PUT Content-Type other than application/x-www-form-urlencoded with
// StatusHTTPUnsupportedMediaType.
//
// value windows passed to Listener methods alias the caller's transport
// buffer and are valid only for the duration of the call.
type Listener interface {
	// OnExtraParameter is called for a recognized parameter that is
	// unexpected in context: a duplicate ClientID/ClientTransactionID/Id, an
	// unparseable ClientID/ClientTransactionID/Id value, a duplicate
	// Value/State, or a duplicate/unknown SensorName.
	OnExtraParameter(param Parameter, value Window) StatusCode

	// OnExtraHeader is called for a recognized header that the decoder does
	// not natively parse (e.g. Connection), or for Accept/Content-Length/
	// Content-Type values that fail their built-in validation.
	OnExtraHeader(header HTTPHeader, value Window) StatusCode

	// OnUnknownParameterName is called with the raw parameter name when it
	// does not match any entry in the parameter name table.
	OnUnknownParameterName(name Window) StatusCode

	// OnUnknownParameterValue is called with the value of a parameter whose
	// name was unknown.
	OnUnknownParameterValue(value Window) StatusCode

	// OnUnknownHeaderName is called with the raw header name when it does
	// not match any entry in the header name table.
	OnUnknownHeaderName(name Window) StatusCode

	// OnUnknownHeaderValue is called with the value of a header whose name
	// was unknown.
	OnUnknownHeaderValue(value Window) StatusCode
}

// reportExtraParameter routes to listener.OnExtraParameter if listener is
// non-nil, folding the result per the "extra" coalescing rule: extras always
// fail decoding in the absence of a listener, or if the listener declines to
// upgrade the status.
func reportExtraParameter(listener Listener, param Parameter, value Window) StatusCode {
	if listener == nil {
		return StatusHTTPBadRequest
	}
	return coalesceExtraStatus(listener.OnExtraParameter(param, value))
}
