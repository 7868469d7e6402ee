package kfmt

import (
	"io"
	"unsafe"

	"github.com/mrjbom/OS/kernel/kstr"
)

// maxBufSize defines the buffer size for formatting numbers. It is large
// enough for a 64-bit value in base 10 plus a sign.
const maxBufSize = 32

var (
	errMissingArg   = []byte("(MISSING)")
	errWrongArgType = []byte("%!(WRONGTYPE)")
	errExtraArg     = []byte("%!(EXTRA)")

	numFmtBuf = []byte("012345678901234567890123456789012")

	// singleByte is used as a shared buffer for passing single characters
	// to doWrite.
	singleByte = []byte(" ")

	// earlyPrintBuffer buffers Printf output generated before the serial
	// diagnostic channel is initialized.
	earlyPrintBuffer ringBuffer

	// outputSink is an io.Writer where Printf will send its output. If set
	// to nil, then the output will be redirected to the earlyPrintBuffer.
	outputSink io.Writer
)

// SetOutputSink sets the default target for calls to Printf to w and drains
// any data accumulated in the earlyPrintBuffer into it.
func SetOutputSink(w io.Writer) {
	outputSink = w
	if w != nil {
		io.Copy(w, &earlyPrintBuffer)
	}
}

// GetOutputSink returns the default target for calls to Printf.
func GetOutputSink() io.Writer {
	return outputSink
}

// Output is an io.Writer that always targets the active output sink,
// falling back to the early print buffer while no sink is registered. It
// allows other packages to emit diagnostic output before the serial channel
// is up.
var Output io.Writer = sinkWriter{}

type sinkWriter struct{}

// Write implements io.Writer.
func (sinkWriter) Write(p []byte) (int, error) {
	doWrite(outputSink, p)
	return len(p), nil
}

// Printf provides a minimal printf implementation that can be safely used
// before the Go runtime has been properly initialized. This implementation
// does not allocate any memory.
//
// The following conversions are supported:
//
//	%c    character
//	%d %i 32-bit signed decimal
//	%u    32-bit unsigned decimal
//	%ll   64-bit signed decimal
//	%llu  64-bit unsigned decimal
//	%x    32-bit value as hex
//	%llx  64-bit value as hex
//	%s    string, or byte slice treated as a terminated string
//
// No width, precision or flag modifiers are supported. Specifiers outside
// this set are emitted as their literal text unchanged.
//
// The output of Printf is streamed byte-by-byte to the active output sink.
// If no sink has been set, the output is accumulated in a ring buffer and
// drained to the sink once one is registered. There is no atomicity
// guarantee across concurrent callers; bracket multi-call sequences with an
// interrupt-disable critical section if uninterleaved log lines are
// required.
func Printf(format string, args ...interface{}) {
	Fprintf(outputSink, format, args...)
}

// Fprintf behaves exactly like Printf but it writes the formatted output to
// the specified io.Writer.
func Fprintf(w io.Writer, format string, args ...interface{}) {
	var (
		nextArgIndex int
		index        int
		fmtLen       = len(format)
	)

	for index < fmtLen {
		if format[index] != '%' {
			singleByte[0] = format[index]
			doWrite(w, singleByte)
			index++
			continue
		}

		// Scan the specifier; verbStart points at '%'.
		verbStart := index
		index++
		if index >= fmtLen {
			// Trailing '%' with no verb; emit it unchanged.
			singleByte[0] = '%'
			doWrite(w, singleByte)
			break
		}

		var (
			verb = format[index]
			long = index+1 < fmtLen && format[index] == 'l' && format[index+1] == 'l'
		)

		if long {
			index += 2
			// %ll with no trailing u/x is the signed 64-bit verb and
			// whatever follows is literal text.
			verb = 'd'
			if index < fmtLen && (format[index] == 'u' || format[index] == 'x') {
				verb = format[index]
				index++
			}
		} else {
			index++
		}

		if verb == '%' && !long {
			singleByte[0] = '%'
			doWrite(w, singleByte)
			continue
		}

		if !isVerb(verb, long) {
			// Unknown specifier; emit the literal text unchanged.
			for i := verbStart; i < index; i++ {
				singleByte[0] = format[i]
				doWrite(w, singleByte)
			}
			continue
		}

		if nextArgIndex >= len(args) {
			doWrite(w, errMissingArg)
			continue
		}

		arg := args[nextArgIndex]
		nextArgIndex++

		switch {
		case verb == 'c':
			fmtChar(w, arg)
		case verb == 's':
			fmtString(w, arg)
		case long:
			fmtInt64(w, arg, verbBase(verb), verb == 'u' || verb == 'x')
		default:
			fmtInt32(w, arg, verbBase(verb), verb == 'u' || verb == 'x')
		}
	}

	// Check for unused args
	for ; nextArgIndex < len(args); nextArgIndex++ {
		doWrite(w, errExtraArg)
	}
}

// isVerb reports whether ch completes a supported conversion specifier.
func isVerb(ch byte, long bool) bool {
	if long {
		return ch == 'd' || ch == 'u' || ch == 'x'
	}
	return ch == 'c' || ch == 'd' || ch == 'i' || ch == 'u' || ch == 'x' || ch == 's'
}

// verbBase returns the numeric base used by the given integer verb.
func verbBase(ch byte) int {
	if ch == 'x' {
		return 16
	}
	return 10
}

// fmtChar prints a single character value.
func fmtChar(w io.Writer, v interface{}) {
	switch ch := v.(type) {
	case byte:
		singleByte[0] = ch
	case rune:
		singleByte[0] = byte(ch)
	case int:
		singleByte[0] = byte(ch)
	default:
		doWrite(w, errWrongArgType)
		return
	}
	doWrite(w, singleByte)
}

// fmtString prints a string or a byte slice treated as a terminated string.
func fmtString(w io.Writer, v interface{}) {
	switch castedVal := v.(type) {
	case string:
		// converting the string to a byte slice triggers a memory
		// allocation so we need to do this one byte at a time.
		for i := 0; i < len(castedVal); i++ {
			singleByte[0] = castedVal[i]
			doWrite(w, singleByte)
		}
	case []byte:
		doWrite(w, castedVal[:kstr.Len(castedVal)])
	default:
		doWrite(w, errWrongArgType)
	}
}

// fmtInt32 prints a 32-bit integer value in the requested base. Signed types
// are accepted by the decimal verbs and unsigned types by the unsigned and
// hex verbs. Untyped constant arguments arrive as int and are accepted by
// both after truncation to 32 bits.
func fmtInt32(w io.Writer, v interface{}, base int, unsigned bool) {
	if unsigned {
		var uval uint64
		switch val := v.(type) {
		case uint8:
			uval = uint64(val)
		case uint16:
			uval = uint64(val)
		case uint32:
			uval = uint64(val)
		case uint:
			uval = uint64(uint32(val))
		case uintptr:
			uval = uint64(uint32(val))
		case int:
			uval = uint64(uint32(val))
		default:
			doWrite(w, errWrongArgType)
			return
		}
		fmtUint(w, uval, base, false)
		return
	}

	var sval int64
	switch val := v.(type) {
	case int8:
		sval = int64(val)
	case int16:
		sval = int64(val)
	case int32:
		sval = int64(val)
	case int:
		sval = int64(int32(val))
	default:
		doWrite(w, errWrongArgType)
		return
	}

	neg := sval < 0
	if neg {
		sval = -sval
	}
	fmtUint(w, uint64(sval), base, neg)
}

// fmtInt64 prints a 64-bit integer value in the requested base.
func fmtInt64(w io.Writer, v interface{}, base int, unsigned bool) {
	if unsigned {
		uval, isUint := v.(uint64)
		if !isUint {
			doWrite(w, errWrongArgType)
			return
		}
		fmtUint(w, uval, base, false)
		return
	}

	var sval int64
	switch val := v.(type) {
	case int64:
		sval = val
	case int:
		sval = int64(val)
	default:
		doWrite(w, errWrongArgType)
		return
	}

	neg := sval < 0
	if neg {
		sval = -sval
	}
	fmtUint(w, uint64(sval), base, neg)
}

// fmtUint formats uval in the requested base into numFmtBuf, prepending a
// minus sign when neg is set, and writes the result out.
func fmtUint(w io.Writer, uval uint64, base int, neg bool) {
	var (
		divider   = uint64(base)
		remainder uint64
		right     int
	)

	for right < maxBufSize {
		remainder = uval % divider
		if remainder < 10 {
			numFmtBuf[right] = byte(remainder) + '0'
		} else {
			// map values from 10 to 15 -> a-f
			numFmtBuf[right] = byte(remainder-10) + 'a'
		}

		right++

		uval /= divider
		if uval == 0 {
			break
		}
	}

	if neg {
		numFmtBuf[right] = '-'
		right++
	}

	// Reverse in place
	end := right
	for left := 0; left < right-1; left, right = left+1, right-1 {
		numFmtBuf[left], numFmtBuf[right-1] = numFmtBuf[right-1], numFmtBuf[left]
	}

	doWrite(w, numFmtBuf[0:end])
}

// doWrite is a proxy that uses the runtime.noescape hack to hide p from the
// compiler's escape analysis. Without this hack, the compiler cannot properly
// detect that p does not escape (due to the call to the yet unknown outputSink
// io.Writer) and plays it safe by flagging it as escaping. This causes all
// calls to Printf to call runtime.convT2E which triggers a memory allocation
// causing the kernel to crash if a call to Printf is made before the Go
// allocator is initialized.
func doWrite(w io.Writer, p []byte) {
	doRealWrite(w, noEscape(unsafe.Pointer(&p)))
}

func doRealWrite(w io.Writer, bufPtr unsafe.Pointer) {
	p := *(*[]byte)(bufPtr)
	if w != nil {
		w.Write(p)
	} else {
		earlyPrintBuffer.Write(p)
	}
}

// noEscape hides a pointer from escape analysis. This function is copied over
// from runtime/stubs.go
//
//go:nosplit
func noEscape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}
