package main

import (
	"bufio"
	"net"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamessynge/alpaca-decoder/dispatch"
)

func TestConnectionHandlerIsSafeRoundTrip(t *testing.T) {
	registry := dispatch.NewDeviceRegistry(dispatch.NewSafetyMonitorDevice(0, "SafetyMonitor0", "uuid-0"))
	handler := newConnectionHandler(zerolog.Nop(), registry)

	client, server := net.Pipe()
	done := make(chan struct{})
	go func() {
		handler.handle(server)
		close(done)
	}()

	_, err := client.Write([]byte("GET /api/v1/safetymonitor/0/issafe HTTP/1.1\r\n\r\n"))
	require.NoError(t, err)

	reader := bufio.NewReader(client)
	statusLine, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Contains(t, statusLine, "200")

	// net.Pipe is unbuffered: the handler's remaining writes block until the
	// client end is read or closed.
	client.Close()
	<-done
}

func TestConnectionHandlerUnknownDeviceNumber(t *testing.T) {
	registry := dispatch.NewDeviceRegistry(dispatch.NewSafetyMonitorDevice(0, "SafetyMonitor0", "uuid-0"))
	handler := newConnectionHandler(zerolog.Nop(), registry)

	client, server := net.Pipe()
	done := make(chan struct{})
	go func() {
		handler.handle(server)
		close(done)
	}()

	_, err := client.Write([]byte("GET /api/v1/safetymonitor/7/issafe HTTP/1.1\r\n\r\n"))
	require.NoError(t, err)

	reader := bufio.NewReader(client)
	statusLine, err := reader.ReadString('\n')
	require.NoError(t, err)
	// Decoding succeeds (it's a known route); the device just isn't
	// registered, which is an ASCOM-level error inside a 200 envelope.
	assert.Contains(t, statusLine, "200")

	client.Close()
	<-done
}
