package decoder

import "github.com/jamessynge/alpaca-decoder/literalmatch"

// Literal tables used by the decode functions to map recognized tokens to
// enum values. Built lazily (see literalmatch.Table), so constructing a
// Decoder never touches Hyperscan.

var httpMethodTable = literalmatch.New([]literalmatch.Entry[HTTPMethod]{
	{Literal: "GET", Value: MethodGET},
	{Literal: "PUT", Value: MethodPUT},
	{Literal: "HEAD", Value: MethodHEAD},
})

var apiGroupTable = literalmatch.New([]literalmatch.Entry[APIGroup]{
	{Literal: "api", Value: APIGroupDevice},
	{Literal: "management", Value: APIGroupManagement},
	{Literal: "setup", Value: APIGroupSetup},
})

// apiVersionTable matches the single supported version literal, "v1".
// Case-sensitive, unlike every other path segment.
var apiVersionTable = literalmatch.NewCaseSensitive([]literalmatch.Entry[bool]{
	{Literal: "v1", Value: true},
})

var deviceTypeTable = literalmatch.New([]literalmatch.Entry[DeviceType]{
	{Literal: "camera", Value: DeviceTypeCamera},
	{Literal: "covercalibrator", Value: DeviceTypeCoverCalibrator},
	{Literal: "dome", Value: DeviceTypeDome},
	{Literal: "filterwheel", Value: DeviceTypeFilterWheel},
	{Literal: "focuser", Value: DeviceTypeFocuser},
	{Literal: "observingconditions", Value: DeviceTypeObservingConditions},
	{Literal: "rotator", Value: DeviceTypeRotator},
	{Literal: "safetymonitor", Value: DeviceTypeSafetyMonitor},
	{Literal: "switch", Value: DeviceTypeSwitch},
	{Literal: "telescope", Value: DeviceTypeTelescope},
})

var deviceMethodTable = literalmatch.New([]literalmatch.Entry[DeviceMethod]{
	{Literal: "connected", Value: DeviceMethodConnected},
	{Literal: "description", Value: DeviceMethodDescription},
	{Literal: "driverinfo", Value: DeviceMethodDriverInfo},
	{Literal: "driverversion", Value: DeviceMethodDriverVersion},
	{Literal: "interfaceversion", Value: DeviceMethodInterfaceVersion},
	{Literal: "name", Value: DeviceMethodName},
	{Literal: "supportedactions", Value: DeviceMethodSupportedActions},
	{Literal: "setup", Value: DeviceMethodSetup},
	{Literal: "issafe", Value: DeviceMethodIsSafe},
	{Literal: "refresh", Value: DeviceMethodRefresh},
	{Literal: "timesincelastupdate", Value: DeviceMethodTimeSinceLastUpdate},
	{Literal: "sensordescription", Value: DeviceMethodSensorDescription},
	{Literal: "maxswitch", Value: DeviceMethodMaxSwitch},
	{Literal: "getswitch", Value: DeviceMethodGetSwitch},
	{Literal: "getswitchdescription", Value: DeviceMethodGetSwitchDescription},
	{Literal: "getswitchname", Value: DeviceMethodGetSwitchName},
	{Literal: "getswitchvalue", Value: DeviceMethodGetSwitchValue},
	{Literal: "minswitchvalue", Value: DeviceMethodMinSwitchValue},
	{Literal: "maxswitchvalue", Value: DeviceMethodMaxSwitchValue},
	{Literal: "setswitch", Value: DeviceMethodSetSwitch},
	{Literal: "setswitchname", Value: DeviceMethodSetSwitchName},
	{Literal: "setswitchvalue", Value: DeviceMethodSetSwitchValue},
	{Literal: "switchstep", Value: DeviceMethodSwitchStep},
	{Literal: "brightness", Value: DeviceMethodBrightness},
	{Literal: "calibratorstate", Value: DeviceMethodCalibratorState},
	{Literal: "coverstate", Value: DeviceMethodCoverState},
	{Literal: "maxbrightness", Value: DeviceMethodMaxBrightness},
	{Literal: "calibratoron", Value: DeviceMethodCalibratorOn},
	{Literal: "calibratoroff", Value: DeviceMethodCalibratorOff},
	{Literal: "opencover", Value: DeviceMethodOpenCover},
	{Literal: "closecover", Value: DeviceMethodCloseCover},
	{Literal: "haltcover", Value: DeviceMethodHaltCover},
})

var managementMethodTable = literalmatch.New([]literalmatch.Entry[ManagementMethod]{
	{Literal: "description", Value: ManagementMethodDescription},
	{Literal: "configureddevices", Value: ManagementMethodConfiguredDevices},
})

var parameterTable = literalmatch.New([]literalmatch.Entry[Parameter]{
	{Literal: "ClientID", Value: ParameterClientID},
	{Literal: "ClientTransactionID", Value: ParameterClientTransactionID},
	{Literal: "Id", Value: ParameterID},
	{Literal: "Value", Value: ParameterValue},
	{Literal: "State", Value: ParameterState},
	{Literal: "SensorName", Value: ParameterSensorName},
})

var headerTable = literalmatch.New([]literalmatch.Entry[HTTPHeader]{
	{Literal: "Accept", Value: HeaderAccept},
	{Literal: "Content-Length", Value: HeaderContentLength},
	{Literal: "Content-Type", Value: HeaderContentType},
	{Literal: "Connection", Value: HeaderConnection},
	{Literal: "Host", Value: HeaderHost},
	{Literal: "User-Agent", Value: HeaderUserAgent},
})

var sensorNameTable = literalmatch.New([]literalmatch.Entry[SensorName]{
	{Literal: "CloudCover", Value: SensorNameCloudCover},
	{Literal: "DewPoint", Value: SensorNameDewPoint},
	{Literal: "Humidity", Value: SensorNameHumidity},
	{Literal: "Pressure", Value: SensorNamePressure},
	{Literal: "RainRate", Value: SensorNameRainRate},
	{Literal: "SkyBrightness", Value: SensorNameSkyBrightness},
	{Literal: "SkyQuality", Value: SensorNameSkyQuality},
	{Literal: "SkyTemperature", Value: SensorNameSkyTemperature},
	{Literal: "StarFWHM", Value: SensorNameStarFWHM},
	{Literal: "Temperature", Value: SensorNameTemperature},
	{Literal: "WindDirection", Value: SensorNameWindDirection},
	{Literal: "WindGust", Value: SensorNameWindGust},
	{Literal: "WindSpeed", Value: SensorNameWindSpeed},
})

// matchDeviceMethod validates that matched_text is a known device method
// name AND that it is valid in combination with group and deviceType,
// mirroring the original's MatchDeviceMethod (which takes api_group and
// device_type so that e.g. "issafe" is only accepted for SafetyMonitor, and
// "setup" is only accepted for the /setup/v1/... route).
func matchDeviceMethod(group APIGroup, deviceType DeviceType, text []byte) (DeviceMethod, bool) {
	method, ok := deviceMethodTable.Match(text)
	if !ok {
		return DeviceMethodUnknown, false
	}
	if method == DeviceMethodSetup {
		return method, group == APIGroupSetup
	}
	if group != APIGroupDevice {
		return DeviceMethodUnknown, false
	}
	if commonDeviceMethods[method] {
		return method, true
	}
	if deviceSpecificMethods[deviceType][method] {
		return method, true
	}
	return DeviceMethodUnknown, false
}
