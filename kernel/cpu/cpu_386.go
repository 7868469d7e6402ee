package cpu

// EnableInterrupts enables interrupt handling.
func EnableInterrupts()

// DisableInterrupts disables interrupt handling.
func DisableInterrupts()

// InterruptsEnabled returns true if the interrupt-enable flag is set. It has
// no side effects.
func InterruptsEnabled() bool

// SaveAndDisableInterrupts atomically disables interrupts and returns the
// prior flag state as an opaque snapshot.
func SaveAndDisableInterrupts() Flags

// RestoreInterrupts atomically restores the interrupt state from a snapshot
// previously obtained from SaveAndDisableInterrupts.
func RestoreInterrupts(flags Flags)

// Halt disables interrupts and stops instruction execution.
func Halt()

// PortWriteByte writes a uint8 value to the requested port.
func PortWriteByte(port uint16, val uint8)

// PortWriteWord writes a uint16 value to the requested port.
func PortWriteWord(port uint16, val uint16)

// PortReadByte reads a uint8 value from the requested port.
func PortReadByte(port uint16) uint8

// PortReadWord reads a uint16 value from the requested port.
func PortReadWord(port uint16) uint16

// PortReadDword reads a uint32 value from the requested port. No 32-bit port
// write is exposed; nothing in the kernel needs one.
func PortReadDword(port uint16) uint32

// LoadGDT loads the global descriptor table register with the table at base
// spanning limit bytes. The table contents are not validated.
func LoadGDT(base uintptr, limit uint16)

// LoadIDT loads the interrupt descriptor table register with the table at
// base spanning limit bytes. The table contents are not validated.
func LoadIDT(base uintptr, limit uint16)

// IDFull issues a CPU identification query with EAX=code and returns the
// values of the EAX, EBX, ECX and EDX result registers.
func IDFull(code uint32) (eax, ebx, ecx, edx uint32)

// FarReadDword reads a uint32 from the memory addressed by the given segment
// selector and offset, bypassing the default data segment.
func FarReadDword(sel uint16, off uintptr) uint32

// FarWriteByte writes a single byte through the given segment selector and
// offset pair.
func FarWriteByte(sel uint16, off uintptr, v uint8)
