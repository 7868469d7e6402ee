package uart

import (
	"github.com/mrjbom/OS/device"
	"github.com/mrjbom/OS/kernel/cpu"
)

var (
	portReadByteFn  = cpu.PortReadByte
	portWriteByteFn = cpu.PortWriteByte

	com1Driver = Uart16550{basePort: com1Base}
)

// probeForUart16550 returns the driver for the UART behind COM1. Whether the
// device is actually present is established by the loopback self-test during
// driver initialization, so the probe itself always succeeds.
func probeForUart16550() device.Driver {
	return &com1Driver
}

func init() {
	device.RegisterDriver(&device.DriverInfo{
		Order: device.DetectOrderEarly,
		Probe: probeForUart16550,
	})
}
