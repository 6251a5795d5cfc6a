package nanofmt

import "bytes"

// Writer is a bounded cursor over a caller-owned buffer.
//
// Writes never go past the end of the buffer. Output that does not fit is
// dropped, but still counted, so [Writer.Length] always reports the length the
// complete output would have had. A Writer over a nil or empty buffer writes
// nothing and only measures.
type Writer struct {
	buf []byte
	pos int
	n   int
}

// NewWriter returns a Writer over dst. The writable region is dst[:len(dst)].
func NewWriter(dst []byte) Writer {
	return Writer{buf: dst}
}

// Append writes p.
func (w *Writer) Append(p []byte) {
	w.pos += copy(w.buf[w.pos:], p)
	w.n += len(p)
}

// AppendString writes s.
func (w *Writer) AppendString(s string) {
	w.pos += copy(w.buf[w.pos:], s)
	w.n += len(s)
}

// AppendCString writes p up to, but not including, its first NUL byte. When
// p holds no NUL the whole slice is written.
func (w *Writer) AppendCString(p []byte) {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	w.Append(p)
}

// Put writes a single byte.
func (w *Writer) Put(c byte) {
	if w.pos < len(w.buf) {
		w.buf[w.pos] = c
		w.pos++
	}
	w.n++
}

// Fill writes n copies of c.
func (w *Writer) Fill(c byte, n int) {
	if n <= 0 {
		return
	}
	free := w.buf[w.pos:]
	k := min(n, len(free))
	for i := range free[:k] {
		free[i] = c
	}
	w.pos += k
	w.n += n
}

// Free returns the unwritten remainder of the buffer. Callers that format
// directly into it must report what they wrote with [Writer.AdvanceTo].
func (w *Writer) Free() []byte {
	return w.buf[w.pos:]
}

// AdvanceTo moves the cursor to offset end of the slice last returned by
// [Writer.Free]. The cursor stops at the end of the buffer; the logical
// length grows by end regardless.
func (w *Writer) AdvanceTo(end int) {
	if end <= 0 {
		return
	}
	w.pos += min(end, len(w.buf)-w.pos)
	w.n += end
}

// Bytes returns the bytes written so far.
func (w *Writer) Bytes() []byte {
	return w.buf[:w.pos]
}

// Len returns the number of bytes physically written.
func (w *Writer) Len() int {
	return w.pos
}

// Length returns the logical length: every byte that would have been
// written given unlimited space.
func (w *Writer) Length() int {
	return w.n
}

// Truncated reports whether any output was dropped.
func (w *Writer) Truncated() bool {
	return w.n > w.pos
}

// Format formats args according to format and writes the result. It lets a
// [Formatter] compose its output from other placeholders.
func (w *Writer) Format(format string, args ...Arg) {
	VFormat(w, format, args)
}
