package decoder

// pathTerminators are the characters that may follow a device method name:
// '?' starts a query string, ' ' precedes the HTTP version.
var pathTerminators = []byte("? ")

type nameProcessor func(d *Decoder, matched Window, buf *Window) StatusCode

// extractAndProcessName extracts a name-char prefix and hands it, along with
// whatever remains of buf, to proc without checking what follows — used
// where the processor itself decides what a valid follower looks like
// (api-group, management-type, management-method).
func extractAndProcessName(d *Decoder, buf *Window, proc nameProcessor) StatusCode {
	matched, ok := extractMatchingPrefix(buf, isNameChar)
	if !ok {
		return StatusNeedMoreInput
	}
	return proc(d, matched, buf)
}

// extractAndProcessNameTerminated is like extractAndProcessName, but first
// requires the byte following the name to be one of validTerminators,
// failing with badTerminatorError otherwise, and optionally consumes that
// terminator before calling proc.
func extractAndProcessNameTerminated(d *Decoder, buf *Window, validTerminators []byte, proc nameProcessor, consumeTerminator bool, badTerminatorError StatusCode) StatusCode {
	matched, ok := extractMatchingPrefix(buf, isNameChar)
	if !ok {
		return StatusNeedMoreInput
	}
	c, _ := buf.Front()
	if !containsByte(validTerminators, c) {
		return badTerminatorError
	}
	if consumeTerminator {
		buf.RemovePrefix(1)
	}
	return proc(d, matched, buf)
}

func containsByte(set []byte, c byte) bool {
	for _, s := range set {
		if s == c {
			return true
		}
	}
	return false
}

// decodeAPIGroup expects the first path segment after the leading '/':
// "api", "management" or "setup".
func decodeAPIGroup(d *Decoder, buf *Window) StatusCode {
	return extractAndProcessName(d, buf, processAPIGroup)
}

func processAPIGroup(d *Decoder, matched Window, buf *Window) StatusCode {
	group, ok := apiGroupTable.Match(matched.Bytes())
	if !ok {
		return StatusHTTPNotFound
	}
	d.request.APIGroup = group
	if buf.MatchAndConsumeByte('/') {
		// The path continues beyond the group name.
		if !d.request.HTTPMethod.IsRead() && group != APIGroupDevice {
			return StatusHTTPMethodNotAllowed
		}
		if group == APIGroupManagement {
			return d.setDecodeFunction(decodeManagementType)
		}
		if group == APIGroupSetup {
			d.request.API = APIDeviceSetup
		} else {
			d.request.API = APIDeviceAPI
		}
		return d.setDecodeFunction(decodeAPIVersion)
	}
	if group != APIGroupSetup {
		return StatusHTTPNotFound
	}
	// "/setup" with nothing after it: the bare server setup page.
	d.request.API = APIServerSetup
	if !d.request.HTTPMethod.IsRead() {
		return StatusHTTPMethodNotAllowed
	}
	return d.setDecodeFunction(decodeEndOfPath)
}

func decodeAPIVersion(d *Decoder, buf *Window) StatusCode {
	return extractAndProcessNameTerminated(d, buf, []byte("/"), processAPIVersion, true, StatusHTTPNotFound)
}

func processAPIVersion(d *Decoder, matched Window, buf *Window) StatusCode {
	if _, ok := apiVersionTable.Match(matched.Bytes()); !ok {
		return StatusHTTPNotFound
	}
	return d.setDecodeFunction(decodeDeviceType)
}

func decodeDeviceType(d *Decoder, buf *Window) StatusCode {
	return extractAndProcessNameTerminated(d, buf, []byte("/"), processDeviceType, true, StatusHTTPNotFound)
}

func processDeviceType(d *Decoder, matched Window, buf *Window) StatusCode {
	dt, ok := deviceTypeTable.Match(matched.Bytes())
	if !ok {
		return StatusHTTPNotFound
	}
	d.request.DeviceType = dt
	return d.setDecodeFunction(decodeDeviceNumber)
}

func decodeDeviceNumber(d *Decoder, buf *Window) StatusCode {
	return extractAndProcessNameTerminated(d, buf, []byte("/"), processDeviceNumber, true, StatusHTTPNotFound)
}

func processDeviceNumber(d *Decoder, matched Window, buf *Window) StatusCode {
	n, ok := matched.ToUint32()
	if !ok {
		return StatusHTTPNotFound
	}
	d.request.DeviceNumber = n
	return d.setDecodeFunction(decodeDeviceMethod)
}

func decodeDeviceMethod(d *Decoder, buf *Window) StatusCode {
	return extractAndProcessNameTerminated(d, buf, pathTerminators, processDeviceMethod, false, StatusHTTPNotFound)
}

func processDeviceMethod(d *Decoder, matched Window, buf *Window) StatusCode {
	method, ok := matchDeviceMethod(d.request.APIGroup, d.request.DeviceType, matched.Bytes())
	if !ok {
		return StatusHTTPNotFound
	}
	d.request.DeviceMethod = method
	return d.setDecodeFunction(decodeEndOfPath)
}

// decodeManagementType follows "/management/": either "v1/" leading to a
// management method, or "apiversions" as a complete, version-less route.
func decodeManagementType(d *Decoder, buf *Window) StatusCode {
	return extractAndProcessName(d, buf, processManagementType)
}

func processManagementType(d *Decoder, matched Window, buf *Window) StatusCode {
	if _, ok := apiVersionTable.Match(matched.Bytes()); ok {
		if buf.MatchAndConsumeByte('/') {
			return d.setDecodeFunction(decodeManagementMethod)
		}
		return StatusHTTPNotFound
	}
	if string(matched.Bytes()) == "apiversions" {
		d.request.API = APIManagementAPIVersions
		return d.setDecodeFunction(decodeEndOfPath)
	}
	return StatusHTTPNotFound
}

func decodeManagementMethod(d *Decoder, buf *Window) StatusCode {
	return extractAndProcessName(d, buf, processManagementMethod)
}

func processManagementMethod(d *Decoder, matched Window, buf *Window) StatusCode {
	method, ok := managementMethodTable.Match(matched.Bytes())
	if !ok {
		return StatusHTTPNotFound
	}
	d.request.ManagementMethod = method
	switch method {
	case ManagementMethodDescription:
		d.request.API = APIManagementDescription
	case ManagementMethodConfiguredDevices:
		d.request.API = APIManagementConfiguredDevices
	}
	return d.setDecodeFunction(decodeEndOfPath)
}

// decodeEndOfPath is reached once a route has been fully matched; it
// expects either '?' (a query string follows) or ' ' (the HTTP version
// follows directly).
func decodeEndOfPath(d *Decoder, buf *Window) StatusCode {
	if buf.Empty() {
		return StatusNeedMoreInput
	}
	if buf.MatchAndConsumeByte('?') {
		return d.setDecodeFunction(decodeParamName)
	}
	if buf.MatchAndConsumeByte(' ') {
		return d.setDecodeFunction(matchHTTPVersion)
	}
	return StatusHTTPNotFound
}
