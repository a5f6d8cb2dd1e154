package decoder

func decodeParamName(d *Decoder, buf *Window) StatusCode {
	return extractAndProcessNameTerminated(d, buf, []byte("="), processParamName, true, StatusHTTPBadRequest)
}

func processParamName(d *Decoder, matched Window, buf *Window) StatusCode {
	param, ok := parameterTable.Match(matched.Bytes())
	if ok {
		d.currentParameter = param
		return d.setDecodeFunction(decodeParamValue)
	}
	d.currentParameter = ParameterUnknown
	status := StatusContinueDecoding
	if d.listener != nil {
		status = d.listener.OnUnknownParameterName(matched)
	}
	return d.setDecodeFunctionAfterListenerCall(decodeParamValue, status)
}

// decodeParamValue extracts a parameter value; an empty value is legal, and
// when decoding a request body with a known Content-Length, the end of the
// final buffer stands in for a terminating separator.
func decodeParamValue(d *Decoder, buf *Window) StatusCode {
	value, ok := extractMatchingPrefix(buf, isParamValueChar)
	if !ok {
		if d.isDecodingHeader || !d.isFinalInput {
			return StatusNeedMoreInput
		}
		value = *buf
		buf.RemovePrefix(buf.Size())
	}

	status := StatusContinueDecoding
	switch d.currentParameter {
	case ParameterClientID:
		id, convertedOK := value.ToUint32()
		if d.request.HaveClientID || !convertedOK {
			status = reportExtraParameter(d.listener, ParameterClientID, value)
		} else {
			d.request.ClientID = id
			d.request.HaveClientID = true
		}
	case ParameterClientTransactionID:
		id, convertedOK := value.ToUint32()
		if d.request.HaveClientTransactionID || !convertedOK {
			status = reportExtraParameter(d.listener, ParameterClientTransactionID, value)
		} else {
			d.request.ClientTransactionID = id
			d.request.HaveClientTransactionID = true
		}
	case ParameterID:
		id, convertedOK := value.ToUint32()
		if d.request.HaveID || !convertedOK {
			status = reportExtraParameter(d.listener, ParameterID, value)
		} else {
			d.request.ID = id
			d.request.HaveID = true
		}
	case ParameterValue:
		if d.request.HaveValue {
			status = reportExtraParameter(d.listener, ParameterValue, value)
		} else {
			d.request.Value.set(value.Bytes())
			d.request.HaveValue = true
		}
	case ParameterState:
		if d.request.HaveState {
			status = reportExtraParameter(d.listener, ParameterState, value)
		} else {
			d.request.State.set(value.Bytes())
			d.request.HaveState = true
		}
	case ParameterSensorName:
		matchedName, matchOK := sensorNameTable.Match(value.Bytes())
		if d.request.HaveSensorName() || !matchOK {
			status = reportExtraParameter(d.listener, ParameterSensorName, value)
		} else {
			d.request.SensorName = matchedName
		}
	case ParameterUnknown:
		if d.listener != nil {
			status = d.listener.OnUnknownParameterValue(value)
		}
	}
	return d.setDecodeFunctionAfterListenerCall(decodeParamSeparator, status)
}

// decodeParamSeparator consumes any run of '&' characters, then decides
// whether a param name, the HTTP version (end of query string in the start
// line), or the end of the request body follows.
func decodeParamSeparator(d *Decoder, buf *Window) StatusCode {
	_, ok := extractMatchingPrefix(buf, isParamSeparator)
	if !ok {
		// Every remaining byte is a separator, or buf is empty.
		if !d.isDecodingHeader && d.isFinalInput {
			buf.RemovePrefix(buf.Size())
			return StatusHTTPOk
		}
		// Leave exactly one separator unconsumed so that, on the next call
		// with more input, we can tell whether it's the start of another
		// separator run or of a param name.
		if buf.Size() > 1 {
			buf.RemovePrefix(buf.Size() - 1)
		}
		return StatusNeedMoreInput
	}

	c, _ := buf.Front()
	if c == ' ' {
		if d.isDecodingHeader {
			buf.RemovePrefix(1)
			return d.setDecodeFunction(matchHTTPVersion)
		}
		return StatusHTTPBadRequest
	}
	return d.setDecodeFunction(decodeParamName)
}
