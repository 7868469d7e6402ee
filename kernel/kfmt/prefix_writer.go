package kfmt

import "io"

// PrefixWriter wraps the writer for an output sink and injects a prefix at
// the start of every line. The HAL uses one per probed driver so each line
// of a driver's init log carries the driver name and version ahead of the
// text that went over the diagnostic channel.
type PrefixWriter struct {
	// Sink receives the prefixed output.
	Sink io.Writer

	// Prefix is injected at the beginning of each line. It may be swapped
	// between writes; a swap takes effect at the next line start.
	Prefix []byte

	bytesAfterPrefix int
}

// Write sends p to the sink, re-injecting the configured prefix after every
// line feed, and returns the number of bytes of p consumed. Prefix bytes do
// not count towards the returned length, so callers see plain io.Writer
// semantics regardless of the prefix. Line state is tracked across calls;
// a write that ends mid-line leaves the next write unprefixed.
func (w *PrefixWriter) Write(p []byte) (int, error) {
	var (
		written              int
		startIndex, curIndex int
	)

	if w.bytesAfterPrefix == 0 && len(p) != 0 {
		w.Sink.Write(w.Prefix)
	}

	for ; curIndex < len(p); curIndex++ {
		if p[curIndex] == '\n' {
			n, err := w.Sink.Write(p[startIndex : curIndex+1])
			if curIndex+1 != len(p) {
				w.Sink.Write(w.Prefix)
			}
			written += n
			if err != nil {
				return written, err
			}
			w.bytesAfterPrefix = 0
			startIndex = curIndex + 1
		}
	}

	if startIndex < curIndex {
		n, err := w.Sink.Write(p[startIndex:curIndex])
		written += n
		w.bytesAfterPrefix = n
		if err != nil {
			return written, err
		}
	}

	return written, nil
}
