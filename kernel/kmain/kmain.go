package kmain

import (
	"github.com/mrjbom/OS/kernel"
	"github.com/mrjbom/OS/kernel/cpu"
	"github.com/mrjbom/OS/kernel/gdt"
	"github.com/mrjbom/OS/kernel/hal"
	"github.com/mrjbom/OS/kernel/kfmt"
)

var errKmainReturned = &kernel.Error{Module: "kmain", Message: "Kmain returned"}

// Kmain is the only Go symbol that is visible (exported) from the rt0
// initialization code. This function is invoked by the rt0 assembly code
// after setting up a minimal g0 struct that allows Go code to use the 4K
// stack allocated by the assembly code.
//
// Kmain is not expected to return. If it does, the rt0 code will halt the
// CPU.
//
//go:noinline
func Kmain() {
	gdt.Init()
	hal.DetectHardware()

	kfmt.Printf("starting kernel\n")
	logCPUVendor()

	// Use kfmt.Panic instead of panic to prevent the compiler from
	// treating kfmt.Panic as dead-code and eliminating it.
	kfmt.Panic(errKmainReturned)
}

// logCPUVendor queries the processor vendor identification string and
// writes it to the diagnostic channel. The 12 ASCII bytes of the vendor
// string are returned in EBX, EDX and ECX, in that order.
func logCPUVendor() {
	regs, ok := cpu.IDString(0)
	if !ok {
		return
	}

	var vendor [13]byte
	packReg(vendor[0:], regs[1])
	packReg(vendor[4:], regs[3])
	packReg(vendor[8:], regs[2])

	kfmt.Printf("cpu vendor: %s\n", vendor[:])
}

// packReg stores the 4 ASCII bytes of a CPU identification register into
// dst in little-endian order.
func packReg(dst []byte, reg uint32) {
	dst[0] = byte(reg)
	dst[1] = byte(reg >> 8)
	dst[2] = byte(reg >> 16)
	dst[3] = byte(reg >> 24)
}
