// Package gdt builds and installs the flat segmentation layout used by the
// kernel: overlapping 4GiB code and data segments for ring 0 and ring 3,
// with paging left to do the real memory protection work.
package gdt

import (
	"unsafe"

	"github.com/mrjbom/OS/kernel/cpu"
)

// Segment selectors for the descriptors installed by Init. Each selector is
// the byte offset of its descriptor in the table; user-mode selectors carry
// requested privilege level 3 in their two low bits when loaded.
const (
	SelectorKernelCode = 0x08
	SelectorKernelData = 0x10
	SelectorUserCode   = 0x18
	SelectorUserData   = 0x20
)

const descriptorCount = 5

// Descriptor access byte flags.
const (
	accessPresent    = 1 << 7
	accessRing3      = 3 << 5
	accessCodeOrData = 1 << 4
	accessExecutable = 1 << 3
	accessReadWrite  = 1 << 1
)

// Descriptor granularity byte flags (high nibble of byte 6).
const (
	gran4K    = 1 << 7
	gran32Bit = 1 << 6
)

// Descriptor is a single 8-byte segment descriptor in the packed format
// expected by the CPU: limit and base scattered across the quadword with
// access and granularity bits in bytes 5 and 6.
type Descriptor uint64

// loadGDTFn is swapped by tests to capture the descriptor table handed to
// the CPU without actually reloading segmentation.
var loadGDTFn = cpu.LoadGDT

// gdt is the descriptor table installed by Init. It must live in a package
// level variable so the CPU can keep referencing it after Init returns.
var gdt [descriptorCount]Descriptor

// newDescriptor packs base, limit, access and granularity flags into the
// hardware descriptor layout.
func newDescriptor(base, limit uint32, access, gran uint8) Descriptor {
	var d Descriptor

	d = Descriptor(limit&0xffff) |
		Descriptor(base&0xffffff)<<16 |
		Descriptor(access)<<40 |
		Descriptor(limit>>16&0xf)<<48 |
		Descriptor(gran&0xf0)<<48 |
		Descriptor(base>>24)<<56

	return d
}

// Init populates the descriptor table with a null descriptor plus flat 4GiB
// code and data segments for ring 0 and ring 3 and loads it into the CPU.
func Init() {
	const (
		flatLimit = 0xfffff
		flags     = gran4K | gran32Bit
	)

	gdt[0] = 0
	gdt[1] = newDescriptor(0, flatLimit, accessPresent|accessCodeOrData|accessExecutable|accessReadWrite, flags)
	gdt[2] = newDescriptor(0, flatLimit, accessPresent|accessCodeOrData|accessReadWrite, flags)
	gdt[3] = newDescriptor(0, flatLimit, accessPresent|accessRing3|accessCodeOrData|accessExecutable|accessReadWrite, flags)
	gdt[4] = newDescriptor(0, flatLimit, accessPresent|accessRing3|accessCodeOrData|accessReadWrite, flags)

	loadGDTFn(uintptr(unsafe.Pointer(&gdt[0])), uint16(descriptorCount*8-1))
}
