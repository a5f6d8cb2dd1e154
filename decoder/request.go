package decoder

// ResetDeviceNumber is the sentinel value of DeviceNumber before a device
// number has been decoded from the path.
const ResetDeviceNumber uint32 = 0xFFFFFFFF

// fieldValue holds a copy of a parameter's raw bytes in a fixed-capacity
// array embedded in RequestDescriptor, rather than a heap-allocated string:
// the decoder itself performs no heap allocation, and a []byte slicing into
// the caller's transport buffer would dangle once that buffer is reused: the
// caller may freely reuse bytes the decoder has already consumed between
// calls.
type fieldValue struct {
	data [MaxWindowSize]byte
	n    int
}

func (f *fieldValue) set(b []byte) { f.n = copy(f.data[:], b) }

// Bytes returns the stored value. The returned slice aliases the descriptor
// and is only valid until the next call that mutates this field.
func (f fieldValue) Bytes() []byte { return f.data[:f.n] }

func (f fieldValue) String() string { return string(f.data[:f.n]) }

// RequestDescriptor is the populated output of a successful (or
// partially-successful, on error) decode. The caller owns the instance and
// passes it to New; the decoder only ever writes to it, never reads it for
// decisions except where a field already decoded must be checked (e.g.
// rejecting a duplicate ClientID, or the HTTPMethod at the end of the header).
//
// Invariants: on StatusHTTPOk, HTTPMethod is one of
// {GET, PUT, HEAD} and API != APIUnknown; if API == APIDeviceAPI then
// DeviceType != DeviceTypeUnknown and DeviceMethod is neither
// DeviceMethodUnknown nor DeviceMethodSetup; if API == APIDeviceSetup then
// DeviceMethod == DeviceMethodSetup; each HaveX flag/predicate is true iff
// that field was actually parsed from this request.
type RequestDescriptor struct {
	HTTPMethod       HTTPMethod
	APIGroup         APIGroup
	API              API
	DeviceType       DeviceType
	DeviceNumber     uint32
	DeviceMethod     DeviceMethod
	ManagementMethod ManagementMethod

	ClientID                uint32
	HaveClientID            bool
	ClientTransactionID     uint32
	HaveClientTransactionID bool

	ID     uint32
	HaveID bool

	Value     fieldValue
	HaveValue bool

	State     fieldValue
	HaveState bool

	// SensorName follows the reference implementation: SensorNameUnknown
	// doubles as "not present", so there is no separate HaveSensorName
	// field to fall out of sync with it.
	SensorName SensorName
}

// HaveSensorName reports whether a SensorName parameter was recognized.
func (r *RequestDescriptor) HaveSensorName() bool { return r.SensorName != SensorNameUnknown }

// Reset restores the descriptor to its all-unset zero state: every
// enumeration to Unknown, DeviceNumber to ResetDeviceNumber, every Have*
// flag to false.
func (r *RequestDescriptor) Reset() {
	*r = RequestDescriptor{
		DeviceNumber: ResetDeviceNumber,
	}
}
