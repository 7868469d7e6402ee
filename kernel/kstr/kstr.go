// Package kstr provides the freestanding string and memory primitives used
// by the kernel. All operations work on caller-supplied byte slices, never
// allocate and keep no hidden state. Strings follow the C convention: the
// logical length is defined by the first zero byte and writers are expected
// to reserve room for the terminator. The slice bounds are the accessible
// buffer; the primitives perform no capacity checking beyond them.
package kstr

// Len returns the number of bytes in s before the first zero byte. If s
// contains no zero byte the slice length is returned.
func Len(s []byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return i
		}
	}
	return len(s)
}

// Copy copies src including its terminator into dst and returns dst. The
// caller must ensure that dst can hold Len(src)+1 bytes.
func Copy(dst, src []byte) []byte {
	var i int
	for ; src[i] != 0; i++ {
		dst[i] = src[i]
	}
	dst[i] = 0
	return dst
}

// CopyN copies at most n bytes from src into dst stopping early if a
// terminator is seen. dst is always terminated after the copied region, even
// when n source bytes were consumed before a terminator was found. The
// diagnostic formatter relies on this guarantee.
func CopyN(dst, src []byte, n int) []byte {
	var i int
	for ; i < n && i < len(src) && src[i] != 0; i++ {
		dst[i] = src[i]
	}
	dst[i] = 0
	return dst
}

// MemCopy copies exactly n bytes from src to dst without any terminator
// semantics and returns the slice one past the written region. Overlapping
// regions are not supported.
func MemCopy(dst, src []byte, n int) []byte {
	copy(dst[:n], src[:n])
	return dst[n:]
}

// MemSet writes value into each of the first n bytes of dst and returns the
// slice one past the written region, not the base. The implementation is
// based on bytes.Repeat; instead of a plain loop it performs log2(n) copy
// calls.
func MemSet(dst []byte, value byte, n int) []byte {
	if n == 0 {
		return dst
	}

	dst[0] = value
	for index := 1; index < n; index *= 2 {
		copy(dst[index:n], dst[:index])
	}
	return dst[n:]
}

// MemCompare compares the first n bytes of a and b as unsigned byte values
// and returns the difference of the first mismatching pair, or zero if the
// regions are equal.
func MemCompare(a, b []byte, n int) int {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return 0
}

// Compare compares two terminated strings byte by byte including the
// terminator and returns the difference at the first mismatch, or zero if
// the strings are equal.
func Compare(a, b []byte) int {
	for i := 0; ; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
		if a[i] == 0 {
			return 0
		}
	}
}

// CompareN behaves like Compare but stops after n bytes or at a terminator
// in either string, whichever comes first.
func CompareN(a, b []byte, n int) int {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
		if a[i] == 0 {
			return 0
		}
	}
	return 0
}

// Concat appends src including its terminator after the existing contents of
// dst and returns dst. The caller must ensure that dst can hold
// Len(dst)+Len(src)+1 bytes.
func Concat(dst, src []byte) []byte {
	d := Len(dst)
	var i int
	for ; src[i] != 0; i++ {
		dst[d+i] = src[i]
	}
	dst[d+i] = 0
	return dst
}

// Interleave copies the terminated string src into dst inserting sep after
// every copied byte, including the last one, and returns the slice one past
// the written region. No terminator is written.
func Interleave(dst, src []byte, sep byte) []byte {
	var n int
	for i := 0; src[i] != 0; i++ {
		dst[n] = src[i]
		dst[n+1] = sep
		n += 2
	}
	return dst[n:]
}

// MemInterleave copies n bytes from src into dst inserting sep after every
// copied byte and returns dst.
func MemInterleave(dst, src []byte, n int, sep byte) []byte {
	for i := 0; i < n; i++ {
		dst[2*i] = src[i]
		dst[2*i+1] = sep
	}
	return dst
}

// Span returns the length of the maximal leading run of s whose bytes all
// belong to the accept set.
func Span(s, accept []byte) int {
	n := Len(accept)
	var i int
	for ; i < len(s) && s[i] != 0; i++ {
		found := false
		for j := 0; j < n; j++ {
			if accept[j] == s[i] {
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return i
}

// SpanComplement returns the length of the maximal leading run of s whose
// bytes are all absent from the reject set.
func SpanComplement(s, reject []byte) int {
	n := Len(reject)
	var i int
	for ; i < len(s) && s[i] != 0; i++ {
		rejected := false
		for j := 0; j < n; j++ {
			if reject[j] == s[i] {
				rejected = true
				break
			}
		}
		if rejected {
			break
		}
	}
	return i
}

// IndexByte returns the index of the first occurrence of ch within the
// logical length of s, or -1 if ch is not present. The terminator itself
// cannot be found.
func IndexByte(s []byte, ch byte) int {
	n := Len(s)
	for i := 0; i < n; i++ {
		if s[i] == ch {
			return i
		}
	}
	return -1
}

// Atou parses leading ASCII decimal digits into a uint32 using repeated
// multiply-by-ten-and-add. No sign, whitespace or overflow handling is
// performed and non-digit bytes still contribute their raw arithmetic value;
// callers are expected to pass well-formed input.
func Atou(s []byte) uint32 {
	var k uint32
	for i := 0; i < len(s) && s[i] != 0; i++ {
		k = (k << 3) + (k << 1) + uint32(s[i]) - '0'
	}
	return k
}

// Reverse reverses the bytes of the terminated string s in place and returns
// s. The terminator stays in place.
func Reverse(s []byte) []byte {
	for left, right := 0, Len(s)-1; left < right; left, right = left+1, right-1 {
		s[left], s[right] = s[right], s[left]
	}
	return s
}
