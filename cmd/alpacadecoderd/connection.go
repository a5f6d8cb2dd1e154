package main

import (
	"encoding/json"
	"net"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/jamessynge/alpaca-decoder/decoder"
	"github.com/jamessynge/alpaca-decoder/dispatch"
	"github.com/jamessynge/alpaca-decoder/percentdecode"
	"github.com/jamessynge/alpaca-decoder/telemetry"
)

// connectionHandler decodes and dispatches exactly one request per
// connection, matching the reference project's own TODO-documented
// assumption of one request per TCP session: no keep-alive, no pipelining.
type connectionHandler struct {
	logger   zerolog.Logger
	registry *dispatch.DeviceRegistry
	nextTxnID *uint32
}

func newConnectionHandler(logger zerolog.Logger, registry *dispatch.DeviceRegistry) *connectionHandler {
	var txnID uint32
	return &connectionHandler{logger: logger, registry: registry, nextTxnID: &txnID}
}

func (h *connectionHandler) handle(conn net.Conn) {
	defer conn.Close()

	logger := h.logger.With().Str("remote", conn.RemoteAddr().String()).Logger()

	req := &decoder.RequestDescriptor{}
	listener := telemetry.New(logger)
	dec := decoder.New(req, listener)
	dec.SetTracer(func(event string, fields map[string]interface{}) {
		e := logger.Trace()
		for k, v := range fields {
			e = e.Interface(k, v)
		}
		e.Msg(event)
	})
	dec.Reset()

	buf := make([]byte, 0, decoder.MaxWindowSize)
	var status decoder.StatusCode

	for {
		chunk := make([]byte, decoder.MaxWindowSize)
		n, err := conn.Read(chunk)
		atEnd := err != nil
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}

		win := decoder.NewWindow(buf)
		bufferIsFull := len(buf) >= decoder.MaxWindowSize
		status = dec.Decode(&win, bufferIsFull, atEnd)
		buf = append(buf[:0], win.Bytes()...)

		if status != decoder.StatusNeedMoreInput {
			break
		}
		if atEnd {
			status = decoder.StatusHTTPBadRequest
			break
		}
	}

	h.respond(conn, logger, req, status)
}

func (h *connectionHandler) respond(conn net.Conn, logger zerolog.Logger, req *decoder.RequestDescriptor, status decoder.StatusCode) {
	txnID := atomic.AddUint32(h.nextTxnID, 1)

	var result dispatch.Result
	if status == decoder.StatusHTTPOk {
		switch req.API {
		case decoder.APIDeviceAPI, decoder.APIDeviceSetup:
			result = h.registry.Dispatch(req)
		case decoder.APIManagementConfiguredDevices:
			result = dispatch.Ok(h.registry.ConfiguredDevices())
		case decoder.APIManagementAPIVersions:
			result = dispatch.Ok([]int{1})
		default:
			result = dispatch.Ok(nil)
		}
	} else {
		result = dispatch.Errorf(0, status.String())
	}

	if req.HaveValue {
		logger.Debug().Bytes("value", percentdecode.Decode(req.Value.Bytes())).Msg("request carried a Value parameter")
	}

	envelope := dispatch.BuildEnvelope(req, result, txnID)
	body, err := json.Marshal(envelope)
	if err != nil {
		logger.Error().Err(err).Msg("failed to marshal response envelope")
		return
	}

	if status != decoder.StatusHTTPOk {
		logger.Warn().Stringer("status", status).Msg("request failed to decode")
	}

	writeHTTPResponse(conn, status, body)
}
