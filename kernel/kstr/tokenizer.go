package kstr

// Tokenizer splits a terminated string into tokens separated by runs of
// delimiter bytes. It owns a cursor into the caller-supplied buffer and
// mutates the buffer in place: the delimiter following each returned token
// is overwritten with a terminator, so the source must be treated as
// consumed. The zero Tokenizer yields no tokens until Reset is called.
type Tokenizer struct {
	buf []byte
	pos int
}

// Reset points the tokenizer at buf and rewinds the cursor. Tokenization is
// restartable from scratch but not resumable mid-stream once restarted.
func (t *Tokenizer) Reset(buf []byte) {
	t.buf = buf
	t.pos = 0
}

// Next skips any leading delimiter bytes and returns the next maximal run of
// non-delimiter bytes, or nil once only delimiters or end of string remain.
// Empty fields between consecutive delimiters are skipped, not returned.
func (t *Tokenizer) Next(delims []byte) []byte {
	if t.pos >= len(t.buf) {
		return nil
	}

	rest := t.buf[t.pos:]
	if rest[0] == 0 {
		return nil
	}

	// Scan leading delimiters
	start := t.pos + Span(rest, delims)
	if start >= len(t.buf) || t.buf[start] == 0 {
		t.pos = start
		return nil
	}

	// Find the end of the token
	end := start + SpanComplement(t.buf[start:], delims)
	if end >= len(t.buf) || t.buf[end] == 0 {
		t.pos = end
		return t.buf[start:end]
	}

	// Terminate the token in place
	t.buf[end] = 0
	t.pos = end + 1
	return t.buf[start:end]
}
