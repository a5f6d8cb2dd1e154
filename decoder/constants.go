package decoder

// HTTPMethod is one of the HTTP methods the decoder recognizes on the start
// line. Any other method name is a StatusHTTPMethodNotImplemented error, so
// there is no "unrecognized but present" value to carry.
type HTTPMethod int

const (
	MethodUnknown HTTPMethod = iota
	MethodGET
	MethodPUT
	MethodHEAD
)

func (m HTTPMethod) String() string {
	switch m {
	case MethodGET:
		return "GET"
	case MethodPUT:
		return "PUT"
	case MethodHEAD:
		return "HEAD"
	default:
		return "Unknown"
	}
}

// IsRead reports whether m is a method that must not have side effects.
// Only read methods are allowed on management/setup routes.
func (m HTTPMethod) IsRead() bool { return m == MethodGET || m == MethodHEAD }

// APIGroup is the first path segment after "/", identifying which family of
// endpoints the request belongs to.
type APIGroup int

const (
	APIGroupUnknown APIGroup = iota
	APIGroupDevice
	APIGroupManagement
	APIGroupSetup
)

func (g APIGroup) String() string {
	switch g {
	case APIGroupDevice:
		return "Device"
	case APIGroupManagement:
		return "Management"
	case APIGroupSetup:
		return "Setup"
	default:
		return "Unknown"
	}
}

// API is a finer-grained tag identifying exactly which endpoint shape the
// request matched.
type API int

const (
	APIUnknown API = iota
	APIDeviceAPI
	APIDeviceSetup
	APIServerSetup
	APIManagementAPIVersions
	APIManagementDescription
	APIManagementConfiguredDevices
)

func (a API) String() string {
	switch a {
	case APIDeviceAPI:
		return "DeviceApi"
	case APIDeviceSetup:
		return "DeviceSetup"
	case APIServerSetup:
		return "ServerSetup"
	case APIManagementAPIVersions:
		return "ManagementApiVersions"
	case APIManagementDescription:
		return "ManagementDescription"
	case APIManagementConfiguredDevices:
		return "ManagementConfiguredDevices"
	default:
		return "Unknown"
	}
}

// DeviceType enumerates the ASCOM Alpaca device kinds the decoder can route
// requests to. Device dispatch itself is out of scope; the decoder only
// needs to recognize the name.
type DeviceType int

const (
	DeviceTypeUnknown DeviceType = iota
	DeviceTypeCamera
	DeviceTypeCoverCalibrator
	DeviceTypeDome
	DeviceTypeFilterWheel
	DeviceTypeFocuser
	DeviceTypeObservingConditions
	DeviceTypeRotator
	DeviceTypeSafetyMonitor
	DeviceTypeSwitch
	DeviceTypeTelescope
)

func (d DeviceType) String() string {
	switch d {
	case DeviceTypeCamera:
		return "Camera"
	case DeviceTypeCoverCalibrator:
		return "CoverCalibrator"
	case DeviceTypeDome:
		return "Dome"
	case DeviceTypeFilterWheel:
		return "FilterWheel"
	case DeviceTypeFocuser:
		return "Focuser"
	case DeviceTypeObservingConditions:
		return "ObservingConditions"
	case DeviceTypeRotator:
		return "Rotator"
	case DeviceTypeSafetyMonitor:
		return "SafetyMonitor"
	case DeviceTypeSwitch:
		return "Switch"
	case DeviceTypeTelescope:
		return "Telescope"
	default:
		return "Unknown"
	}
}

// DeviceMethod enumerates the recognized ASCOM Alpaca device operations.
// Some are common to every device type (Connected, Description, ...); others
// are specific to one device type (IsSafe to SafetyMonitor, GetSwitchValue
// to Switch, ...). MatchDeviceMethod enforces that combination.
type DeviceMethod int

const (
	DeviceMethodUnknown DeviceMethod = iota

	// Common to all device types.
	DeviceMethodConnected
	DeviceMethodDescription
	DeviceMethodDriverInfo
	DeviceMethodDriverVersion
	DeviceMethodInterfaceVersion
	DeviceMethodName
	DeviceMethodSupportedActions
	DeviceMethodSetup

	// SafetyMonitor.
	DeviceMethodIsSafe

	// ObservingConditions.
	DeviceMethodRefresh
	DeviceMethodTimeSinceLastUpdate
	DeviceMethodSensorDescription

	// Switch.
	DeviceMethodMaxSwitch
	DeviceMethodGetSwitch
	DeviceMethodGetSwitchDescription
	DeviceMethodGetSwitchName
	DeviceMethodGetSwitchValue
	DeviceMethodMinSwitchValue
	DeviceMethodMaxSwitchValue
	DeviceMethodSetSwitch
	DeviceMethodSetSwitchName
	DeviceMethodSetSwitchValue
	DeviceMethodSwitchStep

	// CoverCalibrator.
	DeviceMethodBrightness
	DeviceMethodCalibratorState
	DeviceMethodCoverState
	DeviceMethodMaxBrightness
	DeviceMethodCalibratorOn
	DeviceMethodCalibratorOff
	DeviceMethodOpenCover
	DeviceMethodCloseCover
	DeviceMethodHaltCover
)

func (m DeviceMethod) String() string {
	if s, ok := deviceMethodNames[m]; ok {
		return s
	}
	return "Unknown"
}

var deviceMethodNames = map[DeviceMethod]string{
	DeviceMethodConnected:            "Connected",
	DeviceMethodDescription:          "Description",
	DeviceMethodDriverInfo:           "DriverInfo",
	DeviceMethodDriverVersion:        "DriverVersion",
	DeviceMethodInterfaceVersion:     "InterfaceVersion",
	DeviceMethodName:                 "Name",
	DeviceMethodSupportedActions:     "SupportedActions",
	DeviceMethodSetup:                "Setup",
	DeviceMethodIsSafe:               "IsSafe",
	DeviceMethodRefresh:              "Refresh",
	DeviceMethodTimeSinceLastUpdate:  "TimeSinceLastUpdate",
	DeviceMethodSensorDescription:    "SensorDescription",
	DeviceMethodMaxSwitch:            "MaxSwitch",
	DeviceMethodGetSwitch:            "GetSwitch",
	DeviceMethodGetSwitchDescription: "GetSwitchDescription",
	DeviceMethodGetSwitchName:        "GetSwitchName",
	DeviceMethodGetSwitchValue:       "GetSwitchValue",
	DeviceMethodMinSwitchValue:       "MinSwitchValue",
	DeviceMethodMaxSwitchValue:       "MaxSwitchValue",
	DeviceMethodSetSwitch:            "SetSwitch",
	DeviceMethodSetSwitchName:        "SetSwitchName",
	DeviceMethodSetSwitchValue:       "SetSwitchValue",
	DeviceMethodSwitchStep:           "SwitchStep",
	DeviceMethodBrightness:           "Brightness",
	DeviceMethodCalibratorState:      "CalibratorState",
	DeviceMethodCoverState:           "CoverState",
	DeviceMethodMaxBrightness:        "MaxBrightness",
	DeviceMethodCalibratorOn:         "CalibratorOn",
	DeviceMethodCalibratorOff:        "CalibratorOff",
	DeviceMethodOpenCover:            "OpenCover",
	DeviceMethodCloseCover:           "CloseCover",
	DeviceMethodHaltCover:            "HaltCover",
}

// commonDeviceMethods applies to every device type.
var commonDeviceMethods = map[DeviceMethod]bool{
	DeviceMethodConnected:        true,
	DeviceMethodDescription:      true,
	DeviceMethodDriverInfo:       true,
	DeviceMethodDriverVersion:    true,
	DeviceMethodInterfaceVersion: true,
	DeviceMethodName:             true,
	DeviceMethodSupportedActions: true,
}

// deviceSpecificMethods lists, per device type, the methods that are only
// valid for that device type, in addition to commonDeviceMethods.
var deviceSpecificMethods = map[DeviceType]map[DeviceMethod]bool{
	DeviceTypeSafetyMonitor: {
		DeviceMethodIsSafe: true,
	},
	DeviceTypeObservingConditions: {
		DeviceMethodRefresh:             true,
		DeviceMethodTimeSinceLastUpdate: true,
		DeviceMethodSensorDescription:   true,
	},
	DeviceTypeSwitch: {
		DeviceMethodMaxSwitch:            true,
		DeviceMethodGetSwitch:            true,
		DeviceMethodGetSwitchDescription: true,
		DeviceMethodGetSwitchName:        true,
		DeviceMethodGetSwitchValue:       true,
		DeviceMethodMinSwitchValue:       true,
		DeviceMethodMaxSwitchValue:       true,
		DeviceMethodSetSwitch:            true,
		DeviceMethodSetSwitchName:        true,
		DeviceMethodSetSwitchValue:       true,
		DeviceMethodSwitchStep:           true,
	},
	DeviceTypeCoverCalibrator: {
		DeviceMethodBrightness:      true,
		DeviceMethodCalibratorState: true,
		DeviceMethodCoverState:      true,
		DeviceMethodMaxBrightness:   true,
		DeviceMethodCalibratorOn:    true,
		DeviceMethodCalibratorOff:   true,
		DeviceMethodOpenCover:       true,
		DeviceMethodCloseCover:      true,
		DeviceMethodHaltCover:       true,
	},
}

// Parameter enumerates the query/body parameter names the decoder parses
// into RequestDescriptor fields directly. Everything else is "unknown" and
// routed to the Listener.
type Parameter int

const (
	ParameterUnknown Parameter = iota
	ParameterClientID
	ParameterClientTransactionID
	ParameterID
	ParameterValue
	ParameterState
	ParameterSensorName
)

func (p Parameter) String() string {
	switch p {
	case ParameterClientID:
		return "ClientID"
	case ParameterClientTransactionID:
		return "ClientTransactionID"
	case ParameterID:
		return "Id"
	case ParameterValue:
		return "Value"
	case ParameterState:
		return "State"
	case ParameterSensorName:
		return "SensorName"
	default:
		return "Unknown"
	}
}

// HTTPHeader enumerates the header names the decoder recognizes by tag.
// Accept, ContentLength and ContentType are given built-in semantics; the
// rest are recognized but forwarded to the Listener verbatim.
type HTTPHeader int

const (
	HeaderUnknown HTTPHeader = iota
	HeaderAccept
	HeaderContentLength
	HeaderContentType
	HeaderConnection
	HeaderHost
	HeaderUserAgent
)

func (h HTTPHeader) String() string {
	switch h {
	case HeaderAccept:
		return "Accept"
	case HeaderContentLength:
		return "Content-Length"
	case HeaderContentType:
		return "Content-Type"
	case HeaderConnection:
		return "Connection"
	case HeaderHost:
		return "Host"
	case HeaderUserAgent:
		return "User-Agent"
	default:
		return "Unknown"
	}
}

// SensorName enumerates the ObservingConditions sensor names recognized in
// the SensorName parameter.
type SensorName int

const (
	SensorNameUnknown SensorName = iota
	SensorNameCloudCover
	SensorNameDewPoint
	SensorNameHumidity
	SensorNamePressure
	SensorNameRainRate
	SensorNameSkyBrightness
	SensorNameSkyQuality
	SensorNameSkyTemperature
	SensorNameStarFWHM
	SensorNameTemperature
	SensorNameWindDirection
	SensorNameWindGust
	SensorNameWindSpeed
)

func (s SensorName) String() string {
	if n, ok := sensorNames[s]; ok {
		return n
	}
	return "Unknown"
}

var sensorNames = map[SensorName]string{
	SensorNameCloudCover:     "CloudCover",
	SensorNameDewPoint:       "DewPoint",
	SensorNameHumidity:       "Humidity",
	SensorNamePressure:       "Pressure",
	SensorNameRainRate:       "RainRate",
	SensorNameSkyBrightness:  "SkyBrightness",
	SensorNameSkyQuality:     "SkyQuality",
	SensorNameSkyTemperature: "SkyTemperature",
	SensorNameStarFWHM:       "StarFWHM",
	SensorNameTemperature:    "Temperature",
	SensorNameWindDirection:  "WindDirection",
	SensorNameWindGust:       "WindGust",
	SensorNameWindSpeed:      "WindSpeed",
}

// ManagementMethod enumerates the operations under "/management/v1/".
type ManagementMethod int

const (
	ManagementMethodUnknown ManagementMethod = iota
	ManagementMethodDescription
	ManagementMethodConfiguredDevices
)

func (m ManagementMethod) String() string {
	switch m {
	case ManagementMethodDescription:
		return "Description"
	case ManagementMethodConfiguredDevices:
		return "ConfiguredDevices"
	default:
		return "Unknown"
	}
}
