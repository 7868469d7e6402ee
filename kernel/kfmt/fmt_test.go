package kfmt

import (
	"bytes"
	"testing"
)

func TestPrintf(t *testing.T) {
	defer func() {
		outputSink = nil
	}()

	// mute vet warnings about malformed printf formatting strings
	printfn := Printf

	specs := []struct {
		fn        func()
		expOutput string
	}{
		{
			func() { printfn("no args") },
			"no args",
		},
		// characters
		{
			func() { printfn("%c%c%c", byte('a'), 'b', 'c') },
			"abc",
		},
		// 32-bit signed values
		{
			func() { printfn("int arg: %d", int32(-10)) },
			"int arg: -10",
		},
		{
			func() { printfn("int arg: %i", int32(42)) },
			"int arg: 42",
		},
		{
			func() { printfn("int arg: %d", -123) },
			"int arg: -123",
		},
		{
			func() { printfn("int arg: %d", int8(-1)) },
			"int arg: -1",
		},
		{
			func() { printfn("int arg: %i", int16(255)) },
			"int arg: 255",
		},
		{
			func() { printfn("%d", int32(0)) },
			"0",
		},
		// 32-bit unsigned values
		{
			func() { printfn("uint arg: %u", uint32(4294967295)) },
			"uint arg: 4294967295",
		},
		{
			func() { printfn("uint arg: %u", uint8(10)) },
			"uint arg: 10",
		},
		{
			func() { printfn("uint arg: %u", 123) },
			"uint arg: 123",
		},
		// 64-bit values
		{
			func() { printfn("int64 arg: %ll", int64(-9223372036854775807)) },
			"int64 arg: -9223372036854775807",
		},
		{
			func() { printfn("uint64 arg: %llu", uint64(18446744073709551615)) },
			"uint64 arg: 18446744073709551615",
		},
		{
			func() { printfn("addr: %llx", uint64(0xdeadc0dedeadc0de)) },
			"addr: deadc0dedeadc0de",
		},
		// %ll followed by literal text
		{
			func() { printfn("%ll ticks", int64(5)) },
			"5 ticks",
		},
		// hex addresses
		{
			func() { printfn("fb at %x", uint32(0xb8000)) },
			"fb at b8000",
		},
		{
			func() { printfn("fb at %x", uintptr(0x3f8)) },
			"fb at 3f8",
		},
		// strings and byte slices
		{
			func() { printfn("%s arg", "STRING") },
			"STRING arg",
		},
		{
			func() { printfn("%s arg", []byte{'C', 'S', 'T', 'R', 0, 'x', 'x'}) },
			"CSTR arg",
		},
		// literal percent
		{
			func() { printfn("100%% done") },
			"100% done",
		},
		// unsupported specifiers are emitted unchanged
		{
			func() { printfn("%q %y") },
			"%q %y",
		},
		{
			func() { printfn("%4d") },
			"%4d",
		},
		{
			func() { printfn("50%") },
			"50%",
		},
		// missing and extra args
		{
			func() { printfn("%d and %d", int32(1)) },
			"1 and (MISSING)",
		},
		{
			func() { printfn("nothing", int32(1)) },
			"nothing%!(EXTRA)",
		},
		// type mismatches
		{
			func() { printfn("%d", "not a number") },
			"%!(WRONGTYPE)",
		},
		{
			func() { printfn("%u", int32(-1)) },
			"%!(WRONGTYPE)",
		},
		{
			func() { printfn("%llu", uint32(1)) },
			"%!(WRONGTYPE)",
		},
		{
			func() { printfn("%s", uint32(1)) },
			"%!(WRONGTYPE)",
		},
		{
			func() { printfn("%c", "str") },
			"%!(WRONGTYPE)",
		},
		// combined output as emitted by the diagnostic channel
		{
			func() { printfn("%u-%x", uint32(255), uint32(255)) },
			"255-ff",
		},
	}

	var buf bytes.Buffer
	outputSink = &buf

	for specIndex, spec := range specs {
		buf.Reset()
		spec.fn()

		if got := buf.String(); got != spec.expOutput {
			t.Errorf("[spec %d] expected to get %q; got %q", specIndex, spec.expOutput, got)
		}
	}
}

func TestPrintfToRingBuffer(t *testing.T) {
	defer func() {
		outputSink = nil
		earlyPrintBuffer.rIndex = 0
		earlyPrintBuffer.wIndex = 0
	}()

	outputSink = nil
	Printf("hello %s", "world")

	// Registering a sink must drain the buffered early output into it.
	var buf bytes.Buffer
	SetOutputSink(&buf)

	if got, exp := buf.String(), "hello world"; got != exp {
		t.Fatalf("expected to get %q; got %q", exp, got)
	}
}

func TestGetOutputSink(t *testing.T) {
	defer func() {
		outputSink = nil
	}()

	var buf bytes.Buffer
	SetOutputSink(&buf)

	if got := GetOutputSink(); got != &buf {
		t.Fatal("expected GetOutputSink to return the registered sink")
	}
}
