package hal

import (
	"bytes"
	"io"
	"sort"

	"github.com/mrjbom/OS/device"
	"github.com/mrjbom/OS/kernel/kfmt"
)

// managedDevices contains the devices discovered by the HAL.
type managedDevices struct {
	// activeDiag is the device backing the kernel diagnostic channel.
	activeDiag io.Writer

	// activeDrivers tracks all initialized device drivers.
	activeDrivers []device.Driver
}

var (
	devices managedDevices
	strBuf  bytes.Buffer
)

// ActiveDiagnostics returns the device currently backing the kernel
// diagnostic channel or nil if no suitable device has been initialized yet.
func ActiveDiagnostics() io.Writer {
	return devices.activeDiag
}

// DetectHardware probes for hardware devices and initializes the appropriate
// drivers.
func DetectHardware() {
	// Get driver list and sort by detection priority
	drivers := device.DriverList()
	sort.Sort(drivers)

	probe(drivers)
}

// probe executes the probe function for each driver and invokes
// onDriverInit for each successfully initialized driver.
func probe(driverInfoList device.DriverInfoList) {
	var w = kfmt.PrefixWriter{Sink: kfmt.Output}

	for _, info := range driverInfoList {
		drv := info.Probe()
		if drv == nil {
			continue
		}

		strBuf.Reset()
		major, minor, patch := drv.DriverVersion()
		kfmt.Fprintf(&strBuf, "[hal] %s(%u.%u.%u): ", drv.DriverName(), major, minor, patch)
		w.Prefix = strBuf.Bytes()

		if err := drv.DriverInit(&w); err != nil {
			kfmt.Fprintf(&w, "init failed: %s\n", err.Message)
			continue
		}

		kfmt.Fprintf(&w, "initialized\n")
		onDriverInit(drv)
		devices.activeDrivers = append(devices.activeDrivers, drv)
	}
}

// onDriverInit is invoked by probe() whenever a piece of hardware is detected
// and successfully initialized. The first initialized driver that can act as
// a byte sink becomes the kernel diagnostic channel; any log output buffered
// before this point is drained into it by the output sink switch.
func onDriverInit(drv device.Driver) {
	if devices.activeDiag != nil {
		return
	}

	if sink, ok := drv.(io.Writer); ok {
		devices.activeDiag = sink
		kfmt.SetOutputSink(sink)
	}
}
