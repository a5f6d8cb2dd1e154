package dispatch

import (
	"github.com/jamessynge/alpaca-decoder/decoder"
)

// DeviceRegistry holds the devices a server instance exposes, keyed by
// (DeviceType, DeviceNumber), mirroring AlpacaDevices's linear scan over its
// ArrayView of device adapters.
type DeviceRegistry struct {
	devices []Device
}

// NewDeviceRegistry builds a registry over devices. Order is preserved for
// ConfiguredDevices listings.
func NewDeviceRegistry(devices ...Device) *DeviceRegistry {
	return &DeviceRegistry{devices: devices}
}

// Find looks up the device matching deviceType and deviceNumber.
func (r *DeviceRegistry) Find(deviceType decoder.DeviceType, deviceNumber uint32) (Device, bool) {
	for _, d := range r.devices {
		if d.DeviceType() == deviceType && d.DeviceNumber() == deviceNumber {
			return d, true
		}
	}
	return nil, false
}

// All returns every registered device, in registration order.
func (r *DeviceRegistry) All() []Device {
	return append([]Device(nil), r.devices...)
}

// ConfiguredDevice is one entry of the /management/v1/configureddevices
// response.
type ConfiguredDevice struct {
	DeviceName   string `json:"DeviceName"`
	DeviceType   string `json:"DeviceType"`
	DeviceNumber uint32 `json:"DeviceNumber"`
	UniqueID     string `json:"UniqueID"`
}

// ConfiguredDevices lists every registered device in the shape the
// management API response expects.
func (r *DeviceRegistry) ConfiguredDevices() []ConfiguredDevice {
	out := make([]ConfiguredDevice, 0, len(r.devices))
	for _, d := range r.devices {
		out = append(out, ConfiguredDevice{
			DeviceName:   d.Name(),
			DeviceType:   d.DeviceType().String(),
			DeviceNumber: d.DeviceNumber(),
			UniqueID:     d.UniqueID(),
		})
	}
	return out
}

// Dispatch routes a fully-decoded request to the device it names. It is
// only ever called once decoder.Decode has returned StatusHTTPOk with
// req.API one of APIDeviceAPI or APIDeviceSetup, mirroring
// AlpacaDevices::DispatchDeviceRequest's precondition check.
func (r *DeviceRegistry) Dispatch(req *decoder.RequestDescriptor) Result {
	device, ok := r.Find(req.DeviceType, req.DeviceNumber)
	if !ok {
		return Errorf(ErrorInvalidValue, "unknown device")
	}

	var value interface{}
	switch req.HTTPMethod {
	case decoder.MethodGET, decoder.MethodHEAD:
		value, ok = device.HandleGet(req)
	case decoder.MethodPUT:
		value, ok = device.HandlePut(req)
	default:
		return Errorf(ErrorNotImplemented, "method not implemented")
	}
	if !ok {
		return Errorf(ErrorNotImplemented, "action not implemented")
	}
	return Ok(value)
}
