package nanofmt

import (
	"bytes"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// IntFormatter formats integers.
//
// Types: d (default), x, X, b, B, o, and c for the character with that byte
// value. A precision keeps only that many leading characters.
type IntFormatter[T constraints.Integer] struct {
	Spec Spec
}

func (f *IntFormatter[T]) Parse(spec string) string {
	f.Spec = DefaultSpec()
	return ParseSpec(spec, &f.Spec, IntTypes)
}

func (f *IntFormatter[T]) Format(v T, w *Writer) {
	u, neg := abs(v)
	writeInteger(w, &f.Spec, u, neg)
}

// FloatFormatter formats floating-point values.
//
// Types: g (default), G, e, E, f, F, a, A. Without a precision e, E, f and F
// use six digits after the point and a and A use the shortest exact form.
type FloatFormatter[T constraints.Float] struct {
	Spec Spec
}

func (f *FloatFormatter[T]) Parse(spec string) string {
	f.Spec = DefaultSpec()
	return ParseSpec(spec, &f.Spec, FloatTypes)
}

func (f *FloatFormatter[T]) Format(v T, w *Writer) {
	writeFloatSpec(w, &f.Spec, float64(v), floatBits(v))
}

// CharFormatter formats a single byte as a character, or as an integer when
// given an integer type.
type CharFormatter struct {
	Spec Spec
}

func (f *CharFormatter) Parse(spec string) string {
	f.Spec = DefaultSpec()
	return ParseSpec(spec, &f.Spec, IntTypes)
}

func (f *CharFormatter) Format(v byte, w *Writer) {
	if f.Spec.Type == 0 || f.Spec.Type == 'c' {
		writeChar(w, &f.Spec, v)
		return
	}
	writeInteger(w, &f.Spec, uint64(v), false)
}

// BoolFormatter formats true and false, or 1 and 0 when given an integer
// type.
type BoolFormatter struct {
	Spec Spec
}

func (f *BoolFormatter) Parse(spec string) string {
	f.Spec = DefaultSpec()
	return ParseSpec(spec, &f.Spec, BoolTypes)
}

func (f *BoolFormatter) Format(v bool, w *Writer) {
	if f.Spec.Type == 0 || f.Spec.Type == 's' {
		s := "false"
		if v {
			s = "true"
		}
		writeAligned(w, &f.Spec, s, AlignLeft)
		return
	}
	var u uint64
	if v {
		u = 1
	}
	writeInteger(w, &f.Spec, u, false)
}

// StringFormatter formats strings. A precision truncates the string.
type StringFormatter struct {
	Spec Spec
}

func (f *StringFormatter) Parse(spec string) string {
	f.Spec = DefaultSpec()
	return ParseSpec(spec, &f.Spec, StringTypes)
}

func (f *StringFormatter) Format(v string, w *Writer) {
	if f.Spec.Precision >= 0 && len(v) > f.Spec.Precision {
		v = v[:f.Spec.Precision]
	}
	writeAligned(w, &f.Spec, v, AlignLeft)
}

// formatCString formats the NUL-terminated string in b, scanning no further
// than the precision.
func (f *StringFormatter) formatCString(b []byte, w *Writer) {
	if f.Spec.Precision >= 0 && len(b) > f.Spec.Precision {
		b = b[:f.Spec.Precision]
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	writeAligned(w, &f.Spec, view(b), AlignLeft)
}

// PointerFormatter formats addresses as 0x followed by lower-case hex.
type PointerFormatter struct {
	Spec Spec
}

func (f *PointerFormatter) Parse(spec string) string {
	f.Spec = DefaultSpec()
	return ParseSpec(spec, &f.Spec, PointerTypes)
}

func (f *PointerFormatter) Format(v uintptr, w *Writer) {
	var buf [2 + 16]byte
	buf[0], buf[1] = '0', 'x'
	n := 2 + formatUint(buf[2:], uint64(v), false, IntHex)
	writeAligned(w, &f.Spec, view(buf[:n]), AlignRight)
}

// view returns b as a string without copying. The string is only valid while
// b is unchanged.
func view(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// writeAligned writes body padded with the fill character to the spec's
// width. def is the alignment used when the spec has none.
func writeAligned(w *Writer, s *Spec, body string, def Alignment) {
	pad := s.Width - len(body)
	if pad <= 0 {
		w.AppendString(body)
		return
	}
	align := s.Align
	if align == AlignNone {
		align = def
	}
	switch align {
	case AlignRight:
		w.Fill(s.Fill, pad)
		w.AppendString(body)
	case AlignCenter:
		left := pad / 2
		w.Fill(s.Fill, left)
		w.AppendString(body)
		w.Fill(s.Fill, pad-left)
	default:
		w.AppendString(body)
		w.Fill(s.Fill, pad)
	}
}

func writeChar(w *Writer, s *Spec, c byte) {
	if s.Width <= 1 {
		w.Put(c)
		return
	}
	buf := [1]byte{c}
	writeAligned(w, s, view(buf[:]), AlignLeft)
}

// signChar returns the sign to write for a value, or 0 for none.
func signChar(s *Spec, neg bool) byte {
	switch {
	case neg:
		return '-'
	case s.Sign == '+' || s.Sign == ' ':
		return s.Sign
	default:
		return 0
	}
}

// writeZeroPadded writes prefix, then zeros, then digits so that the total
// reaches width.
func writeZeroPadded(w *Writer, width int, prefix, digits string) {
	w.AppendString(prefix)
	w.Fill('0', width-len(prefix)-len(digits))
	w.AppendString(digits)
}

func writeInteger(w *Writer, s *Spec, u uint64, neg bool) {
	if s.Type == 'c' {
		writeChar(w, s, byte(u))
		return
	}

	base := IntDecimal
	var alt string
	switch s.Type {
	case 'x':
		base, alt = IntHex, "0x"
	case 'X':
		base, alt = IntHexUpper, "0X"
	case 'b':
		base, alt = IntBinary, "0b"
	case 'B':
		base, alt = IntBinary, "0B"
	case 'o':
		base = IntOctal
		if u != 0 {
			alt = "0"
		}
	}

	// Fast path: nothing to pad or cut, and the free space holds any integer.
	if s.Width < 0 && s.Precision < 0 && !s.AltForm && s.Sign == '-' && len(w.Free()) >= maxIntChars {
		w.AdvanceTo(formatUint(w.Free(), u, neg, base))
		return
	}

	var buf [3 + maxIntChars]byte
	lead := 0
	if c := signChar(s, neg); c != 0 {
		buf[lead] = c
		lead++
	}
	if s.AltForm {
		lead += copy(buf[lead:], alt)
	}
	n := lead + formatUint(buf[lead:], u, false, base)
	if s.Precision >= 0 && n > s.Precision {
		n = s.Precision
		lead = min(lead, n)
	}
	body := view(buf[:n])

	if s.ZeroPad && s.Align == AlignNone {
		writeZeroPadded(w, s.Width, body[:lead], body[lead:])
		return
	}
	writeAligned(w, s, body, AlignRight)
}

func writeFloatSpec(w *Writer, s *Spec, v float64, bitSize int) {
	f := FloatGeneral
	prec := s.Precision
	switch s.Type {
	case 'e':
		f = FloatScientific
	case 'E':
		f = FloatScientificUpper
	case 'f':
		f = FloatFixed
	case 'F':
		f = FloatFixedUpper
	case 'G':
		f = FloatGeneralUpper
	case 'a':
		f = FloatHex
	case 'A':
		f = FloatHexUpper
	}
	if prec < 0 && (f == FloatScientific || f == FloatScientificUpper || f == FloatFixed || f == FloatFixedUpper) {
		prec = 6
	}

	var sign [1]byte
	lead := 0
	if c := signChar(s, math.Signbit(v)); c != 0 {
		sign[0] = c
		lead = 1
	}
	v = math.Abs(v)

	if s.Width <= 0 {
		w.Append(sign[:lead])
		writeFloatAbs(w, v, bitSize, f, prec)
		return
	}

	measure := NewWriter(nil)
	writeFloatAbs(&measure, v, bitSize, f, prec)
	pad := s.Width - lead - measure.Length()
	finite := !math.IsInf(v, 0) && !math.IsNaN(v)

	align := s.Align
	switch {
	case pad <= 0:
		align = AlignLeft
	case s.ZeroPad && align == AlignNone && finite:
		w.Append(sign[:lead])
		w.Fill('0', pad)
		writeFloatAbs(w, v, bitSize, f, prec)
		return
	case align == AlignNone:
		align = AlignRight
	}

	pad = max(pad, 0)
	left := 0
	switch align {
	case AlignRight:
		left = pad
	case AlignCenter:
		left = pad / 2
	}
	w.Fill(s.Fill, left)
	w.Append(sign[:lead])
	writeFloatAbs(w, v, bitSize, f, prec)
	w.Fill(s.Fill, pad-left)
}
