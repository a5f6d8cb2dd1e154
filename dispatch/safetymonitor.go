package dispatch

import (
	"github.com/jamessynge/alpaca-decoder/decoder"
)

// BaseDevice implements the device methods common to every device type
// (Connected, Description, DriverInfo, DriverVersion, InterfaceVersion,
// Name, SupportedActions), the same default set DeviceApiHandlerBase
// provides in HandleGetRequest before falling through to a device-specific
// switch. Embed it in a concrete device and only implement what's specific.
type BaseDevice struct {
	Type             decoder.DeviceType
	Number           uint32
	DeviceName       string
	UniqueIDValue    string
	Description      string
	DriverInfo       string
	DriverVersion    string
	InterfaceVersion int
	Connected        bool
}

func (d *BaseDevice) DeviceType() decoder.DeviceType { return d.Type }
func (d *BaseDevice) DeviceNumber() uint32            { return d.Number }
func (d *BaseDevice) Name() string                    { return d.DeviceName }
func (d *BaseDevice) UniqueID() string                { return d.UniqueIDValue }

// HandleCommonGet answers the methods every device type shares. ok is false
// for anything device-specific, leaving the embedding type to try its own
// switch first.
func (d *BaseDevice) HandleCommonGet(method decoder.DeviceMethod) (value interface{}, ok bool) {
	switch method {
	case decoder.DeviceMethodConnected:
		return d.Connected, true
	case decoder.DeviceMethodDescription:
		return d.Description, true
	case decoder.DeviceMethodDriverInfo:
		return d.DriverInfo, true
	case decoder.DeviceMethodDriverVersion:
		return d.DriverVersion, true
	case decoder.DeviceMethodInterfaceVersion:
		return d.InterfaceVersion, true
	case decoder.DeviceMethodName:
		return d.DeviceName, true
	case decoder.DeviceMethodSupportedActions:
		return []string{}, true
	default:
		return nil, false
	}
}

// HandleCommonPut answers the one mutating method every device type shares:
// Connected.
func (d *BaseDevice) HandleCommonPut(req *decoder.RequestDescriptor) (value interface{}, ok bool) {
	if req.DeviceMethod != decoder.DeviceMethodConnected {
		return nil, false
	}
	if req.HaveState {
		d.Connected = string(req.State.Bytes()) == "true"
	}
	return nil, true
}

// SafetyMonitorDevice is a demonstration SafetyMonitor: a device that is
// always safe, the simplest possible concrete device to exercise
// dispatch end to end, matching the reference project's own emphasis on
// SafetyMonitor as its first worked example.
type SafetyMonitorDevice struct {
	BaseDevice
}

// NewSafetyMonitorDevice builds a SafetyMonitorDevice at the given device
// number with the given advertised name and unique ID.
func NewSafetyMonitorDevice(number uint32, name, uniqueID string) *SafetyMonitorDevice {
	return &SafetyMonitorDevice{
		BaseDevice: BaseDevice{
			Type:             decoder.DeviceTypeSafetyMonitor,
			Number:           number,
			DeviceName:       name,
			UniqueIDValue:    uniqueID,
			Description:      "Demonstration SafetyMonitor device",
			DriverInfo:       "alpaca-decoder demo driver",
			DriverVersion:    "1.0",
			InterfaceVersion: 1,
			Connected:        true,
		},
	}
}

func (d *SafetyMonitorDevice) HandleGet(req *decoder.RequestDescriptor) (value interface{}, ok bool) {
	if req.DeviceMethod == decoder.DeviceMethodIsSafe {
		return true, true
	}
	return d.HandleCommonGet(req.DeviceMethod)
}

func (d *SafetyMonitorDevice) HandlePut(req *decoder.RequestDescriptor) (value interface{}, ok bool) {
	return d.HandleCommonPut(req)
}

var _ Device = (*SafetyMonitorDevice)(nil)
