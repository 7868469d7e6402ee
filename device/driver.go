package device

import (
	"io"

	"github.com/mrjbom/OS/kernel"
)

// DetectOrder specifies the order in which the HAL probes for a particular
// piece of hardware relative to the other registered drivers.
type DetectOrder int

const (
	// DetectOrderEarly drivers are probed before anything else. The
	// diagnostic serial channel uses this order so the boot transcript
	// reaches the wire as early as possible.
	DetectOrderEarly DetectOrder = -128

	// DetectOrderNormal is the default detection order.
	DetectOrderNormal DetectOrder = 0

	// DetectOrderLast drivers are probed after everything else.
	DetectOrderLast DetectOrder = 127
)

// Driver is an interface implemented by all drivers.
type Driver interface {
	// DriverName returns the name of the driver.
	DriverName() string

	// DriverVersion returns the driver version.
	DriverVersion() (major uint16, minor uint16, patch uint16)

	// DriverInit initializes the device driver. If the driver init code
	// needs to log some output, it can use the supplied io.Writer in
	// conjunction with a call to kfmt.Fprintf.
	DriverInit(io.Writer) *kernel.Error
}

// ProbeFn is a function that scans for the presence of a particular
// piece of hardware and returns a driver for it.
type ProbeFn func() Driver

// DriverInfo describes a driver to the HAL's hardware detection code.
type DriverInfo struct {
	// Order specifies when the driver's probe function runs relative to
	// the other registered drivers.
	Order DetectOrder

	// Probe checks for the presence of the hardware handled by this
	// driver and returns a Driver instance for it, or nil if the
	// hardware is not present.
	Probe ProbeFn
}

// DriverInfoList is a list of registered drivers that can be sorted by
// detection order.
type DriverInfoList []*DriverInfo

// Len returns the length of the driver info list.
func (l DriverInfoList) Len() int { return len(l) }

// Swap exchanges 2 elements in the driver info list.
func (l DriverInfoList) Swap(i, j int) { l[i], l[j] = l[j], l[i] }

// Less compares 2 elements of the driver info list by detection order.
func (l DriverInfoList) Less(i, j int) bool { return l[i].Order < l[j].Order }

// registeredDrivers tracks the drivers registered via RegisterDriver.
var registeredDrivers DriverInfoList

// RegisterDriver adds the supplied driver info to the list of registered
// drivers. Each driver package is expected to call RegisterDriver from an
// init block.
func RegisterDriver(info *DriverInfo) {
	registeredDrivers = append(registeredDrivers, info)
}

// DriverList returns the list of registered drivers.
func DriverList() DriverInfoList {
	return registeredDrivers
}
