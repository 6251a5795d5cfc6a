// Package nanofmt formats text into fixed-size buffers without allocating.
//
// A template such as "x = {:08x}" and a list of typed arguments are written
// into a caller-owned buffer. Writes never go past the end of the buffer:
// output that does not fit is dropped but still counted, so the caller always
// learns the length the complete output would have had. Formatting into a nil
// buffer only measures.
//
//	var buf [64]byte
//	n, length := nanofmt.FormatTo(buf[:], "Hello, {}! {:09d}", nanofmt.String("World"), nanofmt.Int(9001))
//
// # Templates
//
// Placeholders are written {}, {index}, {:spec} or {index:spec}. Automatic
// placeholders take arguments in order; explicit ones name an argument by
// position. A template must not mix the two. Write {{ and }} for literal
// braces.
//
// A spec has the form
//
//	[[fill]align][sign][#][0][width][.precision][L][type]
//
// where align is '<', '^' or '>', sign is '+', '-' or ' ', '#' selects the
// alternate form (0x, 0b, 0 prefixes) and '0' pads numbers with zeros after
// the sign. The accepted types depend on the argument: see [IntTypes],
// [FloatTypes], [BoolTypes], [StringTypes] and [PointerTypes].
//
// # Arguments
//
// Arguments are wrapped with typed constructors: [Int], [Signed], [Unsigned],
// [Float], [Char], [Bool], [String], [Bytes], [CString], [Pointer] and
// [Address]. An [Arg] is a small tagged value that refers to, but does not
// own, the data it formats.
//
// Types with their own formatting implement [Formatter] on a separate
// formatter type and are wrapped with [Custom]:
//
//	type pointFormatter struct{ nanofmt.IntFormatter[int] }
//
//	func (f *pointFormatter) Format(p point, w *nanofmt.Writer) {
//		w.Put('(')
//		f.IntFormatter.Format(p.X, w)
//		w.Put(',')
//		f.IntFormatter.Format(p.Y, w)
//		w.Put(')')
//	}
//
//	nanofmt.FormatTo(buf[:], "{:03}", nanofmt.Custom[pointFormatter](&p))
//
// # Numbers
//
// [FormatInt] and [FormatFloat] convert numbers directly into a byte slice.
// Floats are written from their shortest round-trip digits and rounded half
// to even in fixed, scientific, general and hexadecimal notation.
//
// # Errors
//
// Formatting never fails and never panics. Malformed templates stop output at
// the point of the problem. [Validate] reports such problems as errors
// wrapping one of the sentinel errors:
//
//   - [ErrUnterminated]: a '{' ends the template
//   - [ErrMixedIndexing]: automatic and explicit indices are mixed
//   - [ErrArgIndex]: a placeholder refers past the last argument
//   - [ErrUnclosed]: a spec is not followed by '}'
package nanofmt
