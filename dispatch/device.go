// Package dispatch routes a successfully decoded request to the device it
// names, an external collaborator the decoder deliberately knows nothing
// about. It is grounded in the reference implementation's
// AlpacaDevices/DeviceApiHandlerBase split: the decoder recognizes the
// shape of a request, dispatch decides what it means for a specific device.
package dispatch

import (
	"github.com/jamessynge/alpaca-decoder/decoder"
)

// Device is one ASCOM Alpaca device instance: a (DeviceType, DeviceNumber)
// pair plus the behavior needed to answer GetSwitchValue/IsSafe-style
// common and device-specific methods. It mirrors DeviceApiHandlerBase's
// HandleGetRequest/HandlePutRequest split.
type Device interface {
	DeviceType() decoder.DeviceType
	DeviceNumber() uint32
	Name() string
	UniqueID() string

	// HandleGet answers a read-only device method. ok is false if method is
	// not one this device implements, which the caller turns into an Alpaca
	// "not implemented" error rather than an HTTP error (the decoder has
	// already confirmed the method is valid for this device type).
	HandleGet(req *decoder.RequestDescriptor) (value interface{}, ok bool)

	// HandlePut applies a mutating device method, returning an optional
	// result value (most PUT methods return none).
	HandlePut(req *decoder.RequestDescriptor) (value interface{}, ok bool)
}

// Result is what a dispatch produces for a fully-decoded, fully-routed
// request: either a value to encode as the Alpaca "Value" response field, or
// an ASCOM-level error distinct from the decoder's HTTP-level errors (e.g.
// "device not found" is a 200 OK at the HTTP layer with an ASCOM error
// envelope, per the Alpaca convention of never failing the HTTP transaction
// for a device-level problem once routing succeeded).
type Result struct {
	Value        interface{}
	ErrorNumber  int
	ErrorMessage string
}

// Ok wraps value as a successful Result.
func Ok(value interface{}) Result { return Result{Value: value} }

// Standard ASCOM Alpaca device error numbers (the common subset most
// drivers raise; the full ASCOM ASCOM.Exception hierarchy defines more).
const (
	ErrorNotImplemented = 0x400
	ErrorInvalidValue   = 0x401
	ErrorNotConnected   = 0x407
)

// Errorf builds an error Result.
func Errorf(number int, message string) Result {
	return Result{ErrorNumber: number, ErrorMessage: message}
}
