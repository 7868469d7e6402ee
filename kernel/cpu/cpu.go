// Package cpu provides the instruction-level primitives the rest of the
// kernel builds on: I/O port access, interrupt-flag control, descriptor
// table loading, CPU identification and far memory access through explicit
// segment selectors. The primitives trust their callers completely; no port
// number, selector or descriptor table is validated against the hardware.
package cpu

// Flags is an opaque snapshot of the processor flag state returned by
// SaveAndDisableInterrupts. It must be passed unchanged to the matching
// RestoreInterrupts call. Snapshots are a flat save/restore pair; nesting
// discipline is the caller's responsibility and restoring a stale snapshot
// can re-enable interrupts prematurely.
type Flags uintptr

var (
	cpuidFn         = IDFull
	portWriteByteFn = PortWriteByte
	saveDisableFn   = SaveAndDisableInterrupts
	restoreFn       = RestoreInterrupts
)

// unusedPort receives the dummy write performed by IOWait. Port 0x80 is used
// by the BIOS for POST codes and is safe to write to on any chipset.
const unusedPort = 0x80

// IOWait inserts a fixed short delay by writing to an unused port. It is
// used to pace back-to-back port operations on hardware that needs settling
// time between accesses.
func IOWait() {
	portWriteByteFn(unusedPort, 0)
}

// ID issues a CPU identification query for the given function code and
// returns the values of the EAX and EDX result registers.
func ID(code uint32) (uint32, uint32) {
	eax, _, _, edx := cpuidFn(code)
	return eax, edx
}

// IDString issues a CPU identification query whose result is a 16-byte ASCII
// string packed into four words (EAX, EBX, ECX, EDX). Before running the
// query, the highest function code supported in the same (basic or extended)
// range is probed; if code lies beyond it, ok is false and the returned
// array is zero rather than whatever garbage the query would produce.
func IDString(code uint32) (regs [4]uint32, ok bool) {
	highest, _, _, _ := cpuidFn(code & 0x80000000)
	if highest < code {
		return regs, false
	}

	regs[0], regs[1], regs[2], regs[3] = cpuidFn(code)
	return regs, true
}

// IsIntel returns true if the code is running on an Intel processor.
func IsIntel() bool {
	_, ebx, ecx, edx := cpuidFn(0)
	return ebx == 0x756e6547 && // "Genu"
		edx == 0x49656e69 && // "ineI"
		ecx == 0x6c65746e // "ntel"
}

// IRQGuard is a scoped critical section against interrupt-driven
// reentrancy. It captures the interrupt-enable state at acquisition and
// restores it on Resume, which must run on every exit path of the guarded
// section. Guards do not stack: one guard may be live per save.
type IRQGuard struct {
	flags Flags
}

// SuspendInterrupts disables interrupts and returns a guard holding the
// prior flag state.
func SuspendInterrupts() IRQGuard {
	return IRQGuard{flags: saveDisableFn()}
}

// Resume restores the interrupt-enable state captured when the guard was
// acquired.
func (g IRQGuard) Resume() {
	restoreFn(g.flags)
}
