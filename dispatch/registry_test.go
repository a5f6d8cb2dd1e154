package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamessynge/alpaca-decoder/decoder"
	"github.com/jamessynge/alpaca-decoder/dispatch"
)

func TestFindAndConfiguredDevices(t *testing.T) {
	sm := dispatch.NewSafetyMonitorDevice(0, "SafetyMonitor0", "uuid-0")
	registry := dispatch.NewDeviceRegistry(sm)

	found, ok := registry.Find(decoder.DeviceTypeSafetyMonitor, 0)
	require.True(t, ok)
	assert.Same(t, sm, found)

	_, ok = registry.Find(decoder.DeviceTypeSafetyMonitor, 1)
	assert.False(t, ok)

	configured := registry.ConfiguredDevices()
	require.Len(t, configured, 1)
	assert.Equal(t, "SafetyMonitor0", configured[0].DeviceName)
	assert.Equal(t, "SafetyMonitor", configured[0].DeviceType)
	assert.Equal(t, uint32(0), configured[0].DeviceNumber)
	assert.Equal(t, "uuid-0", configured[0].UniqueID)
}

func TestDispatchIsSafe(t *testing.T) {
	registry := dispatch.NewDeviceRegistry(dispatch.NewSafetyMonitorDevice(0, "SafetyMonitor0", "uuid-0"))

	req := &decoder.RequestDescriptor{
		HTTPMethod:   decoder.MethodGET,
		API:          decoder.APIDeviceAPI,
		DeviceType:   decoder.DeviceTypeSafetyMonitor,
		DeviceNumber: 0,
		DeviceMethod: decoder.DeviceMethodIsSafe,
	}

	result := registry.Dispatch(req)
	assert.Equal(t, true, result.Value)
	assert.Zero(t, result.ErrorNumber)
}

func TestDispatchUnknownDevice(t *testing.T) {
	registry := dispatch.NewDeviceRegistry(dispatch.NewSafetyMonitorDevice(0, "SafetyMonitor0", "uuid-0"))

	req := &decoder.RequestDescriptor{
		HTTPMethod:   decoder.MethodGET,
		API:          decoder.APIDeviceAPI,
		DeviceType:   decoder.DeviceTypeSafetyMonitor,
		DeviceNumber: 7,
		DeviceMethod: decoder.DeviceMethodIsSafe,
	}

	result := registry.Dispatch(req)
	assert.Equal(t, dispatch.ErrorInvalidValue, result.ErrorNumber)
}

func TestCommonGetMethods(t *testing.T) {
	registry := dispatch.NewDeviceRegistry(dispatch.NewSafetyMonitorDevice(3, "SafetyMonitor3", "uuid-3"))

	req := &decoder.RequestDescriptor{
		HTTPMethod:   decoder.MethodGET,
		API:          decoder.APIDeviceAPI,
		DeviceType:   decoder.DeviceTypeSafetyMonitor,
		DeviceNumber: 3,
		DeviceMethod: decoder.DeviceMethodName,
	}
	result := registry.Dispatch(req)
	assert.Equal(t, "SafetyMonitor3", result.Value)
}
