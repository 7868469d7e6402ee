// Package uart implements the driver for the 16550-compatible UART behind
// the platform's first COM port. The kernel uses it as its diagnostic output
// channel: once initialized, the HAL links it to the kfmt output sink and
// all Printf output is streamed to the wire byte by byte.
package uart

import (
	"io"

	"github.com/mrjbom/OS/kernel"
	"github.com/mrjbom/OS/kernel/kfmt"
	"github.com/mrjbom/OS/kernel/kstr"
)

// com1Base is the base port of the first COM port on the platform.
const com1Base = 0x3f8

// Register offsets from the base port. With the DLAB bit of the line
// control register set, the data and interrupt-enable registers switch to
// the low and high halves of the baud divisor latch.
const (
	regData       = 0
	regIntEnable  = 1
	regFifoCtrl   = 2
	regLineCtrl   = 3
	regModemCtrl  = 4
	regLineStatus = 5
)

const (
	// lcrDLAB exposes the divisor latch through the first two registers.
	lcrDLAB = 0x80

	// lcr8N1 selects 8 data bits, no parity, one stop bit.
	lcr8N1 = 0x03

	// fcrEnableAndClear enables the FIFOs with a 14-byte trigger level
	// and clears both queues.
	fcrEnableAndClear = 0xc7

	// mcrLoopback routes the transmitter back to the receiver for the
	// init self-test.
	mcrLoopback = 0x1e

	// mcrReady asserts DTR/RTS and the auxiliary output lines for normal
	// operation.
	mcrReady = 0x0f

	// lsrTransmitEmpty is the line-status bit indicating the transmit
	// holding register can accept another byte.
	lsrTransmitEmpty = 0x20

	// baudDivisor divides the 115200Hz base rate down to 38400 baud.
	baudDivisor = 3

	// loopbackProbe is the byte bounced off the device during the init
	// self-test.
	loopbackProbe = 0xae
)

var errLoopbackFailed = &kernel.Error{Module: "uart", Message: "loopback check failed; device missing or faulty"}

// Uart16550 drives a 16550-compatible UART. The zero value is unusable;
// instances are obtained through the probe function which binds them to the
// fixed COM1 base port. The device is uninitialized until DriverInit runs
// and there is no way back; all other operations are undefined on an
// uninitialized device.
type Uart16550 struct {
	basePort    uint16
	initialized bool

	// maxPollCycles bounds the transmit-ready busy-wait of WriteByte.
	// Zero selects an unbounded wait, which is the only sensible setting
	// on real hardware; tests substitute a small budget so a never-ready
	// device cannot hang them.
	maxPollCycles int
}

// DriverName returns the name of the driver.
func (u *Uart16550) DriverName() string {
	return "uart16550"
}

// DriverVersion returns the driver version.
func (u *Uart16550) DriverVersion() (uint16, uint16, uint16) {
	return 0, 2, 0
}

// DriverInit programs the UART: interrupts off, baud divisor, 8N1 framing,
// FIFOs enabled and cleared, then a loopback self-test before switching the
// modem control lines to normal operation. A failed self-test leaves the
// device uninitialized and reports an error.
func (u *Uart16550) DriverInit(w io.Writer) *kernel.Error {
	if u.initialized {
		return nil
	}

	u.writeReg(regIntEnable, 0x00)
	u.writeReg(regLineCtrl, lcrDLAB)
	u.writeReg(regData, baudDivisor&0xff)
	u.writeReg(regIntEnable, baudDivisor>>8)
	u.writeReg(regLineCtrl, lcr8N1)
	u.writeReg(regFifoCtrl, fcrEnableAndClear)

	u.writeReg(regModemCtrl, mcrLoopback)
	u.writeReg(regData, loopbackProbe)
	if u.readReg(regData) != loopbackProbe {
		return errLoopbackFailed
	}
	u.writeReg(regModemCtrl, mcrReady)

	u.initialized = true
	kfmt.Fprintf(w, "base port %x, baud %u\n", u.basePort, uint32(115200/baudDivisor))
	return nil
}

// TransmitReady returns true when the transmit holding register can accept
// another byte.
func (u *Uart16550) TransmitReady() bool {
	return u.readReg(regLineStatus)&lsrTransmitEmpty != 0
}

// WriteByte busy-waits until the device is ready to transmit and writes one
// byte to the data register. With an unbounded poll budget a permanently
// non-ready device hangs the caller forever; that is an accepted limitation
// of a diagnostic-only channel.
func (u *Uart16550) WriteByte(ch byte) {
	for polls := 0; !u.TransmitReady(); polls++ {
		if u.maxPollCycles != 0 && polls >= u.maxPollCycles {
			return
		}
	}
	u.writeReg(regData, ch)
}

// WriteString writes each byte of the terminated string s to the device, in
// order.
func (u *Uart16550) WriteString(s []byte) {
	n := kstr.Len(s)
	for i := 0; i < n; i++ {
		u.WriteByte(s[i])
	}
}

// Write implements io.Writer so the device can serve as the kfmt output
// sink. All bytes of p are written verbatim.
func (u *Uart16550) Write(p []byte) (int, error) {
	for _, ch := range p {
		u.WriteByte(ch)
	}
	return len(p), nil
}

func (u *Uart16550) writeReg(reg uint16, val uint8) {
	portWriteByteFn(u.basePort+reg, val)
}

func (u *Uart16550) readReg(reg uint16) uint8 {
	return portReadByteFn(u.basePort + reg)
}
