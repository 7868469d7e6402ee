//go:build !386

package cpu

// Host stubs for the instruction-level primitives. They allow the tree to
// compile and its tests to run on hosted development machines, where the
// hardware seams are substituted through the package function variables.
// Calling one of them outside a 386 kernel build is always a bug.

const errNotKernelTarget = "cpu: hardware primitives require a 386 kernel build"

// EnableInterrupts enables interrupt handling.
func EnableInterrupts() { panic(errNotKernelTarget) }

// DisableInterrupts disables interrupt handling.
func DisableInterrupts() { panic(errNotKernelTarget) }

// InterruptsEnabled returns true if the interrupt-enable flag is set.
func InterruptsEnabled() bool { panic(errNotKernelTarget) }

// SaveAndDisableInterrupts atomically disables interrupts and returns the
// prior flag state as an opaque snapshot.
func SaveAndDisableInterrupts() Flags { panic(errNotKernelTarget) }

// RestoreInterrupts atomically restores the interrupt state from a snapshot
// previously obtained from SaveAndDisableInterrupts.
func RestoreInterrupts(_ Flags) { panic(errNotKernelTarget) }

// Halt disables interrupts and stops instruction execution.
func Halt() { panic(errNotKernelTarget) }

// PortWriteByte writes a uint8 value to the requested port.
func PortWriteByte(_ uint16, _ uint8) { panic(errNotKernelTarget) }

// PortWriteWord writes a uint16 value to the requested port.
func PortWriteWord(_ uint16, _ uint16) { panic(errNotKernelTarget) }

// PortReadByte reads a uint8 value from the requested port.
func PortReadByte(_ uint16) uint8 { panic(errNotKernelTarget) }

// PortReadWord reads a uint16 value from the requested port.
func PortReadWord(_ uint16) uint16 { panic(errNotKernelTarget) }

// PortReadDword reads a uint32 value from the requested port.
func PortReadDword(_ uint16) uint32 { panic(errNotKernelTarget) }

// LoadGDT loads the global descriptor table register.
func LoadGDT(_ uintptr, _ uint16) { panic(errNotKernelTarget) }

// LoadIDT loads the interrupt descriptor table register.
func LoadIDT(_ uintptr, _ uint16) { panic(errNotKernelTarget) }

// IDFull issues a CPU identification query with EAX=code.
func IDFull(_ uint32) (eax, ebx, ecx, edx uint32) { panic(errNotKernelTarget) }

// FarReadDword reads a uint32 through an explicit segment selector.
func FarReadDword(_ uint16, _ uintptr) uint32 { panic(errNotKernelTarget) }

// FarWriteByte writes a single byte through an explicit segment selector.
func FarWriteByte(_ uint16, _ uintptr, _ uint8) { panic(errNotKernelTarget) }
