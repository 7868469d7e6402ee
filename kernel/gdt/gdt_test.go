package gdt

import (
	"testing"
	"unsafe"
)

func TestInit(t *testing.T) {
	defer func(origLoadGDT func(uintptr, uint16)) {
		loadGDTFn = origLoadGDT
	}(loadGDTFn)

	var (
		loadedBase  uintptr
		loadedLimit uint16
	)
	loadGDTFn = func(base uintptr, limit uint16) {
		loadedBase = base
		loadedLimit = limit
	}

	Init()

	specs := []struct {
		selector int
		exp      Descriptor
	}{
		{0, 0},
		{SelectorKernelCode, 0x00cf9a000000ffff},
		{SelectorKernelData, 0x00cf92000000ffff},
		{SelectorUserCode, 0x00cffa000000ffff},
		{SelectorUserData, 0x00cff2000000ffff},
	}

	for specIndex, spec := range specs {
		if got := gdt[spec.selector>>3]; got != spec.exp {
			t.Errorf("[spec %d] expected descriptor for selector 0x%x to be 0x%x; got 0x%x", specIndex, spec.selector, uint64(spec.exp), uint64(got))
		}
	}

	if exp := uintptr(unsafe.Pointer(&gdt[0])); loadedBase != exp {
		t.Errorf("expected the loaded table base to be %x; got %x", exp, loadedBase)
	}

	if exp := uint16(descriptorCount*8 - 1); loadedLimit != exp {
		t.Errorf("expected the loaded table limit to be 0x%x; got 0x%x", exp, loadedLimit)
	}
}

func TestNewDescriptorSplitsBaseAndLimit(t *testing.T) {
	// A non-zero base and a limit above 16 bits exercise every bit field
	// of the packed layout.
	d := newDescriptor(0x12345678, 0xabcde, accessPresent|accessCodeOrData|accessReadWrite, gran4K|gran32Bit)

	if exp := Descriptor(0x12ca92345678bcde); d != exp {
		t.Errorf("expected descriptor 0x%x; got 0x%x", uint64(exp), uint64(d))
	}
}
