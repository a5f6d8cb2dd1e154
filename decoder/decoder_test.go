package decoder_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamessynge/alpaca-decoder/decoder"
	"github.com/jamessynge/alpaca-decoder/testutils"
)

// fieldValuer is implemented by the decoder's unexported fieldValue type
// (via its Bytes method), letting cmp compare RequestDescriptor.Value and
// .State by content without cmp.AllowUnexported reaching into a type this
// package cannot name.
type fieldValuer interface {
	Bytes() []byte
}

var cmpRequestDescriptor = cmp.Comparer(func(a, b fieldValuer) bool {
	return bytes.Equal(a.Bytes(), b.Bytes())
})

// decodeAll drives a Decoder to completion, feeding req in chunks of
// chunkSize bytes (or all at once if chunkSize <= 0), mimicking a caller
// that appends newly-read bytes to whatever the decoder left unconsumed.
func decodeAll(t *testing.T, req []byte, listener decoder.Listener, chunkSize int) (decoder.StatusCode, *decoder.RequestDescriptor) {
	t.Helper()

	if chunkSize <= 0 {
		chunkSize = len(req)
	}

	rd := &decoder.RequestDescriptor{}
	dec := decoder.New(rd, listener)
	dec.Reset()

	var pending []byte
	pos := 0
	for {
		end := pos + chunkSize
		atEnd := false
		if end >= len(req) {
			end = len(req)
			atEnd = true
		}
		pending = append(pending, req[pos:end]...)
		pos = end

		win := decoder.NewWindow(pending)
		before := win.Size()
		status := dec.Decode(&win, false, atEnd)
		require.LessOrEqual(t, win.Size(), before, "window must only shrink")
		pending = append([]byte(nil), win.Bytes()...)

		if status != decoder.StatusNeedMoreInput {
			return status, rd
		}
		if atEnd {
			return status, rd
		}
	}
}

func TestScenario1_SafetyMonitorIsSafe(t *testing.T) {
	req := []byte("GET /api/v1/safetymonitor/0/issafe HTTP/1.1\r\n\r\n")
	status, rd := decodeAll(t, req, nil, 0)

	assert.Equal(t, decoder.StatusHTTPOk, status)
	assert.Equal(t, decoder.MethodGET, rd.HTTPMethod)
	assert.Equal(t, decoder.APIDeviceAPI, rd.API)
	assert.Equal(t, decoder.DeviceTypeSafetyMonitor, rd.DeviceType)
	assert.Equal(t, uint32(0), rd.DeviceNumber)
	assert.Equal(t, decoder.DeviceMethodIsSafe, rd.DeviceMethod)
	assert.False(t, rd.HaveClientID)
}

func TestScenario2_ObservingConditionsRefreshWithClientParams(t *testing.T) {
	req := []byte("PUT /api/v1/observingconditions/0/refresh?ClientID=123&clienttransactionid=432 HTTP/1.1\r\nContent-Length: 0\r\n\r\n")
	status, rd := decodeAll(t, req, nil, 0)

	assert.Equal(t, decoder.StatusHTTPOk, status)
	assert.True(t, rd.HaveClientID)
	assert.Equal(t, uint32(123), rd.ClientID)
	assert.True(t, rd.HaveClientTransactionID)
	assert.Equal(t, uint32(432), rd.ClientTransactionID)
}

func TestScenario3_DeviceNumberOverflow(t *testing.T) {
	req := []byte("GET /api/v1/safetymonitor/4294967300/issafe HTTP/1.1\r\n\r\n")
	status, _ := decodeAll(t, req, nil, 0)
	assert.Equal(t, decoder.StatusHTTPNotFound, status)
}

func TestScenario4_PutWithoutContentLength(t *testing.T) {
	req := []byte("PUT /api/v1/safetymonitor/1/issafe HTTP/1.1\r\n\r\n")
	status, _ := decodeAll(t, req, nil, 0)
	assert.Equal(t, decoder.StatusHTTPLengthRequired, status)
}

func TestScenario5_PayloadExceedsContentLength(t *testing.T) {
	req := []byte("PUT /api/v1/safetymonitor/1/issafe HTTP/1.1\r\nContent-Length: 1\r\n\r\n12")
	status, _ := decodeAll(t, req, nil, 0)
	assert.Equal(t, decoder.StatusHTTPPayloadTooLarge, status)
}

func TestScenario6_UnsupportedHTTPVersion(t *testing.T) {
	req := []byte("GET /api/v1/safetymonitor/0/name HTTP/1.0\r\n\r\n")
	status, _ := decodeAll(t, req, nil, 0)
	assert.Equal(t, decoder.StatusHTTPVersionNotSupported, status)
}

func TestScenario7_SwitchGetSwitchValueWithId(t *testing.T) {
	req := []byte("GET /api/v1/switch/9999/getswitchvalue?ClientID=123&clienttransactionid=432&Id=789 HTTP/1.1\r\nContent-Length: 0\r\n\r\n")
	status, rd := decodeAll(t, req, nil, 0)

	assert.Equal(t, decoder.StatusHTTPOk, status)
	assert.True(t, rd.HaveID)
	assert.Equal(t, uint32(789), rd.ID)
}

func TestScenario8_UnimplementedMethod(t *testing.T) {
	req := []byte("DELETE /api/v1/safetymonitor/1/issafe HTTP/1.1\r\nContent-Length: 0\r\n\r\n")
	status, _ := decodeAll(t, req, nil, 0)
	assert.Equal(t, decoder.StatusHTTPMethodNotImplemented, status)
}

// TestPartitionInvariance decodes the same request both in one shot and
// one byte at a time, and checks both ways agree on the terminal status and
// descriptor.
func TestPartitionInvariance(t *testing.T) {
	requests := [][]byte{
		[]byte("GET /api/v1/safetymonitor/0/issafe HTTP/1.1\r\n\r\n"),
		[]byte("PUT /api/v1/observingconditions/0/refresh?ClientID=123&clienttransactionid=432 HTTP/1.1\r\nContent-Length: 0\r\n\r\n"),
		[]byte("GET /api/v1/switch/9999/getswitchvalue?ClientID=123&clienttransactionid=432&Id=789 HTTP/1.1\r\nContent-Length: 0\r\n\r\n"),
		[]byte("PUT /api/v1/safetymonitor/1/issafe HTTP/1.1\r\nContent-Length: 1\r\n\r\n12"),
	}

	for _, req := range requests {
		whole, wholeRD := decodeAll(t, req, nil, 0)
		byByte, byByteRD := decodeAll(t, req, nil, 1)
		assert.Equal(t, whole, byByte, "status must agree across partitions of %q", req)
		if diff := cmp.Diff(wholeRD, byByteRD, cmpRequestDescriptor); diff != "" {
			t.Errorf("descriptor differs across partitions of %q (-whole +byByte):\n%s", req, diff)
		}
	}
}

func TestResetRequiredBeforeFirstDecode(t *testing.T) {
	rd := &decoder.RequestDescriptor{}
	dec := decoder.New(rd, nil)

	req := []byte("GET /api/v1/safetymonitor/0/issafe HTTP/1.1\r\n\r\n")
	win := decoder.NewWindow(req)
	status := dec.Decode(&win, false, true)
	assert.Equal(t, decoder.StatusHTTPInternalServerError, status)
}

func TestResetRequiredAfterTerminalStatus(t *testing.T) {
	rd := &decoder.RequestDescriptor{}
	dec := decoder.New(rd, nil)
	dec.Reset()

	req := []byte("GET /api/v1/safetymonitor/0/issafe HTTP/1.1\r\n\r\n")
	win := decoder.NewWindow(req)
	status := dec.Decode(&win, false, true)
	require.Equal(t, decoder.StatusHTTPOk, status)

	win2 := decoder.NewWindow([]byte("x"))
	status = dec.Decode(&win2, false, true)
	assert.Equal(t, decoder.StatusHTTPInternalServerError, status)
}

func TestIdempotentReset(t *testing.T) {
	rd := &decoder.RequestDescriptor{}
	dec := decoder.New(rd, nil)

	dec.Reset()
	assert.Equal(t, decoder.StatusUnset, dec.Status())
	assert.Equal(t, decoder.ResetDeviceNumber, rd.DeviceNumber)
	assert.False(t, rd.HaveClientID)
	assert.False(t, rd.HaveClientTransactionID)
	assert.False(t, rd.HaveID)
	assert.False(t, rd.HaveValue)
	assert.False(t, rd.HaveState)
	assert.False(t, rd.HaveSensorName())
	assert.Equal(t, decoder.MethodUnknown, rd.HTTPMethod)
	assert.Equal(t, decoder.APIUnknown, rd.API)

	req := []byte("GET /api/v1/safetymonitor/0/issafe HTTP/1.1\r\n\r\n")
	win := decoder.NewWindow(req)
	dec.Decode(&win, false, true)

	dec.Reset()
	assert.Equal(t, decoder.StatusUnset, dec.Status())
	assert.Equal(t, decoder.ResetDeviceNumber, rd.DeviceNumber)
	assert.Equal(t, decoder.MethodUnknown, rd.HTTPMethod)
}

// TestUnknownParameterReachesListener confirms an unrecognized parameter
// name/value pair is forwarded to the listener, and that a listener
// granting StatusContinueDecoding lets decoding finish normally.
func TestUnknownParameterReachesListener(t *testing.T) {
	listener := &testutils.RecordingListener{}
	req := []byte("GET /api/v1/safetymonitor/0/issafe?Foo=bar HTTP/1.1\r\n\r\n")
	status, _ := decodeAll(t, req, listener, 0)

	assert.Equal(t, decoder.StatusHTTPOk, status)
	require.Len(t, listener.Calls, 2)
	assert.Equal(t, "OnUnknownParameterName", listener.Calls[0].Method)
	assert.Equal(t, "Foo", string(listener.Calls[0].Value))
	assert.Equal(t, "OnUnknownParameterValue", listener.Calls[1].Method)
	assert.Equal(t, "bar", string(listener.Calls[1].Value))
}

// TestDuplicateClientIDIsExtra confirms a repeated ClientID is reported as
// an extra parameter, and without a listener upgrade it fails with 400.
func TestDuplicateClientIDIsExtra(t *testing.T) {
	req := []byte("GET /api/v1/safetymonitor/0/issafe?ClientID=1&ClientID=2 HTTP/1.1\r\n\r\n")
	status, _ := decodeAll(t, req, nil, 0)
	assert.Equal(t, decoder.StatusHTTPBadRequest, status)
}

// TestExtraParameterListenerCanUpgrade confirms a listener can turn an
// extra-parameter failure into success by returning HttpOk.
func TestExtraParameterListenerCanUpgrade(t *testing.T) {
	listener := &testutils.RecordingListener{Next: decoder.StatusHTTPOk}
	req := []byte("GET /api/v1/safetymonitor/0/issafe?ClientID=1&ClientID=2 HTTP/1.1\r\n\r\n")
	status, _ := decodeAll(t, req, listener, 0)
	assert.Equal(t, decoder.StatusHTTPOk, status)
	require.Len(t, listener.Calls, 1)
	assert.Equal(t, "OnExtraParameter", listener.Calls[0].Method)
	assert.Equal(t, "ClientID", listener.Calls[0].Tag)
}

// TestWrongContentTypeForPut confirms a PUT body Content-Type other than
// application/x-www-form-urlencoded fails with 415 absent a listener.
func TestWrongContentTypeForPut(t *testing.T) {
	req := []byte("PUT /api/v1/safetymonitor/1/issafe HTTP/1.1\r\nContent-Length: 0\r\nContent-Type: application/json\r\n\r\n")
	status, _ := decodeAll(t, req, nil, 0)
	assert.Equal(t, decoder.StatusHTTPUnsupportedMediaType, status)
}

// TestUnknownDeviceType confirms an unrecognized device type 404s.
func TestUnknownDeviceType(t *testing.T) {
	req := []byte("GET /api/v1/spaceship/0/issafe HTTP/1.1\r\n\r\n")
	status, _ := decodeAll(t, req, nil, 0)
	assert.Equal(t, decoder.StatusHTTPNotFound, status)
}

// TestDeviceMethodNotValidForDeviceType confirms IsSafe (SafetyMonitor-only)
// 404s when requested against a Switch device.
func TestDeviceMethodNotValidForDeviceType(t *testing.T) {
	req := []byte("GET /api/v1/switch/0/issafe HTTP/1.1\r\n\r\n")
	status, _ := decodeAll(t, req, nil, 0)
	assert.Equal(t, decoder.StatusHTTPNotFound, status)
}

// TestManagementAPIVersions and friends confirm the management/setup routes.
func TestManagementAPIVersions(t *testing.T) {
	req := []byte("GET /management/apiversions HTTP/1.1\r\n\r\n")
	status, rd := decodeAll(t, req, nil, 0)
	assert.Equal(t, decoder.StatusHTTPOk, status)
	assert.Equal(t, decoder.APIManagementAPIVersions, rd.API)
}

func TestManagementDescription(t *testing.T) {
	req := []byte("GET /management/v1/description HTTP/1.1\r\n\r\n")
	status, rd := decodeAll(t, req, nil, 0)
	assert.Equal(t, decoder.StatusHTTPOk, status)
	assert.Equal(t, decoder.APIManagementDescription, rd.API)
}

func TestManagementConfiguredDevices(t *testing.T) {
	req := []byte("GET /management/v1/configureddevices HTTP/1.1\r\n\r\n")
	status, rd := decodeAll(t, req, nil, 0)
	assert.Equal(t, decoder.StatusHTTPOk, status)
	assert.Equal(t, decoder.APIManagementConfiguredDevices, rd.API)
}

func TestServerSetup(t *testing.T) {
	req := []byte("GET /setup HTTP/1.1\r\n\r\n")
	status, rd := decodeAll(t, req, nil, 0)
	assert.Equal(t, decoder.StatusHTTPOk, status)
	assert.Equal(t, decoder.APIServerSetup, rd.API)
}

func TestDeviceSetup(t *testing.T) {
	req := []byte("GET /setup/v1/safetymonitor/0/setup HTTP/1.1\r\n\r\n")
	status, rd := decodeAll(t, req, nil, 0)
	assert.Equal(t, decoder.StatusHTTPOk, status)
	assert.Equal(t, decoder.APIDeviceSetup, rd.API)
	assert.Equal(t, decoder.DeviceMethodSetup, rd.DeviceMethod)
}

// TestNonReadMethodOnManagementRoute confirms a mutating method on a
// read-only route group is rejected with 405, not routed through at all.
func TestNonReadMethodOnManagementRoute(t *testing.T) {
	req := []byte("PUT /management/apiversions HTTP/1.1\r\nContent-Length: 0\r\n\r\n")
	status, _ := decodeAll(t, req, nil, 0)
	assert.Equal(t, decoder.StatusHTTPMethodNotAllowed, status)
}

// TestBufferFullElevatesToFieldsTooLarge confirms the 431 escalation: a
// decode call that can't progress because the caller's buffer is both full
// and unable to grow yields 431.
func TestBufferFullElevatesToFieldsTooLarge(t *testing.T) {
	rd := &decoder.RequestDescriptor{}
	dec := decoder.New(rd, nil)
	dec.Reset()

	// A bare method name, no trailing space: DecodeHttpMethod needs more
	// input, and the caller reports the buffer as full.
	buf := []byte("GET")
	win := decoder.NewWindow(buf)
	status := dec.Decode(&win, true, false)
	assert.Equal(t, decoder.StatusHTTPRequestHeaderFieldsTooLarge, status)
}

// TestCaseInsensitiveParameterAndHeaderNames confirms parameter and header
// names match regardless of case, per spec.
func TestCaseInsensitiveParameterAndHeaderNames(t *testing.T) {
	// A PUT only succeeds if the lower-case content-length header is recognized.
	req := []byte("PUT /api/v1/safetymonitor/0/issafe?clientid=42 HTTP/1.1\r\ncontent-length: 0\r\n\r\n")
	status, rd := decodeAll(t, req, nil, 0)
	assert.Equal(t, decoder.StatusHTTPOk, status)
	assert.True(t, rd.HaveClientID)
	assert.Equal(t, uint32(42), rd.ClientID)
}

// TestAPIVersionIsCaseSensitive confirms "V1" (wrong case) does not match
// the case-sensitive api-version literal "v1".
func TestAPIVersionIsCaseSensitive(t *testing.T) {
	req := []byte("GET /api/V1/safetymonitor/0/issafe HTTP/1.1\r\n\r\n")
	status, _ := decodeAll(t, req, nil, 0)
	assert.Equal(t, decoder.StatusHTTPNotFound, status)
}
