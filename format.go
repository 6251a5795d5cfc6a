package nanofmt

import (
	"io"
	"slices"
)

// FormatTo formats into dst. It returns the number of bytes written and the
// logical length of the output; the output was truncated when length > n.
func FormatTo(dst []byte, format string, args ...Arg) (n, length int) {
	w := NewWriter(dst)
	VFormat(&w, format, args)
	return w.Len(), w.Length()
}

// FormatToZ formats into dst, leaving room for a terminating NUL, and returns
// the number of bytes written before the NUL. Nothing is written into an
// empty dst.
func FormatToZ(dst []byte, format string, args ...Arg) int {
	if len(dst) == 0 {
		return 0
	}
	w := NewWriter(dst[:len(dst)-1])
	VFormat(&w, format, args)
	dst[w.Len()] = 0
	return w.Len()
}

// Length returns the length the formatted output would have.
func Length(format string, args ...Arg) int {
	w := NewWriter(nil)
	VFormat(&w, format, args)
	return w.Length()
}

// Append formats and appends the result to dst, growing it at most once.
func Append(dst []byte, format string, args ...Arg) []byte {
	n := Length(format, args...)
	dst = slices.Grow(dst, n)
	w := NewWriter(dst[len(dst) : len(dst)+n])
	VFormat(&w, format, args)
	return dst[:len(dst)+n]
}

// Marshal formats and returns the result.
func Marshal(format string, args ...Arg) []byte {
	return Append(nil, format, args...)
}

// writeBufferSize is the output size [Write] formats in a single pass.
const writeBufferSize = 256

// Write formats and writes the result to w. Output longer than a small fixed
// buffer is formatted again into a buffer of the exact length.
func Write(w io.Writer, format string, args ...Arg) (int, error) {
	var buf [writeBufferSize]byte
	n, length := FormatTo(buf[:], format, args...)
	if length > n {
		return w.Write(Marshal(format, args...))
	}
	return w.Write(buf[:n])
}

// FormatValue formats a single value with spec, the text that would follow
// ':' in a placeholder.
func FormatValue(dst []byte, v Arg, spec string) (n, length int) {
	w := NewWriter(dst)
	Args{v}.Format(0, &spec, &w)
	return w.Len(), w.Length()
}

// ValueLength returns the length FormatValue would produce.
func ValueLength(v Arg, spec string) int {
	_, n := FormatValue(nil, v, spec)
	return n
}
