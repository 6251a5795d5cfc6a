package nanofmt

import (
	"math"
	"strconv"
)

// decimal holds the digits of a non-negative finite float: the value is
// 0.d[0]d[1]...d[nd-1] * 10^dp. Zero has no digits.
type decimal struct {
	d  [24]byte
	nd int
	dp int
}

// decompose extracts the shortest digit string that round-trips v at the
// given bit size.
func decompose(v float64, bitSize int) decimal {
	var d decimal
	if v == 0 {
		return d
	}
	var scratch [32]byte
	b := strconv.AppendFloat(scratch[:0], v, 'e', -1, bitSize)
	i := 0
	for ; i < len(b) && b[i] != 'e'; i++ {
		if b[i] != '.' {
			d.d[d.nd] = b[i]
			d.nd++
		}
	}
	i++ // 'e'
	neg := b[i] == '-'
	exp := 0
	for i++; i < len(b); i++ {
		exp = exp*10 + int(b[i]-'0')
	}
	if neg {
		exp = -exp
	}
	d.dp = exp + 1
	d.trim()
	return d
}

// digit returns the i-th digit, or '0' outside the stored digits.
func (d *decimal) digit(i int) byte {
	if i < 0 || i >= d.nd {
		return '0'
	}
	return d.d[i]
}

func (d *decimal) trim() {
	for d.nd > 0 && d.d[d.nd-1] == '0' {
		d.nd--
	}
	if d.nd == 0 {
		d.dp = 0
	}
}

// round keeps the first nd digits, rounding half to even. A negative nd
// rounds to zero.
func (d *decimal) round(nd int) {
	if nd < 0 {
		d.nd, d.dp = 0, 0
		return
	}
	if nd >= d.nd {
		return
	}
	if d.shouldRoundUp(nd) {
		d.roundUp(nd)
		return
	}
	d.nd = nd
	d.trim()
}

func (d *decimal) shouldRoundUp(nd int) bool {
	if d.d[nd] == '5' && nd+1 == d.nd {
		// Exactly halfway.
		return nd > 0 && (d.d[nd-1]-'0')%2 == 1
	}
	return d.d[nd] >= '5'
}

func (d *decimal) roundUp(nd int) {
	i := nd - 1
	for i >= 0 && d.d[i] == '9' {
		i--
	}
	if i < 0 {
		d.d[0] = '1'
		d.nd = 1
		d.dp++
		return
	}
	d.d[i]++
	d.nd = i + 1
}

// writeFloat writes v, with a minus sign when its sign bit is set.
func writeFloat(w *Writer, v float64, bitSize int, f FloatFormat, prec int) {
	if math.Signbit(v) {
		w.Put('-')
	}
	writeFloatAbs(w, math.Abs(v), bitSize, f, prec)
}

// writeFloatAbs writes the magnitude of v without any sign.
func writeFloatAbs(w *Writer, v float64, bitSize int, f FloatFormat, prec int) {
	upper := f == FloatGeneralUpper || f == FloatScientificUpper || f == FloatFixedUpper || f == FloatHexUpper
	switch {
	case math.IsInf(v, 0):
		if upper {
			w.AppendString("INF")
		} else {
			w.AppendString("inf")
		}
		return
	case math.IsNaN(v):
		if upper {
			w.AppendString("NAN")
		} else {
			w.AppendString("nan")
		}
		return
	}

	switch f {
	case FloatHex, FloatHexUpper:
		writeHexFloat(w, v, bitSize, upper, prec)
		return
	}

	d := decompose(v, bitSize)
	switch f {
	case FloatFixed, FloatFixedUpper:
		writeFixed(w, &d, prec)
	case FloatScientific, FloatScientificUpper:
		writeScientific(w, &d, prec, upper)
	default:
		writeGeneral(w, &d, prec, upper)
	}
}

func writeFixed(w *Writer, d *decimal, prec int) {
	if prec < 0 {
		prec = max(d.nd-d.dp, 0)
	} else {
		d.round(d.dp + prec)
	}
	writeFixedDigits(w, d, prec)
}

func writeFixedDigits(w *Writer, d *decimal, prec int) {
	if d.dp > 0 {
		stored := min(d.nd, d.dp)
		w.Append(d.d[:stored])
		w.Fill('0', d.dp-stored)
	} else {
		w.Put('0')
	}
	if prec <= 0 {
		return
	}
	w.Put('.')
	written := min(max(-d.dp, 0), prec)
	w.Fill('0', written)
	from := max(d.dp, 0)
	to := min(d.nd, d.dp+prec)
	if to > from {
		w.Append(d.d[from:to])
		written += to - from
	}
	w.Fill('0', prec-written)
}

func writeScientific(w *Writer, d *decimal, prec int, upper bool) {
	if prec < 0 {
		prec = max(d.nd-1, 0)
	} else {
		d.round(prec + 1)
	}
	writeScientificDigits(w, d, prec, upper)
}

func writeScientificDigits(w *Writer, d *decimal, prec int, upper bool) {
	w.Put(d.digit(0))
	if prec > 0 {
		w.Put('.')
		stored := min(d.nd, prec+1)
		if stored > 1 {
			w.Append(d.d[1:stored])
		}
		w.Fill('0', prec-max(stored-1, 0))
	}
	exp := 0
	if d.nd > 0 {
		exp = d.dp - 1
	}
	if upper {
		w.Put('E')
	} else {
		w.Put('e')
	}
	writeExponent(w, exp, 2)
}

// writeExponent writes a signed exponent with at least minDigits digits.
func writeExponent(w *Writer, exp, minDigits int) {
	if exp < 0 {
		w.Put('-')
		exp = -exp
	} else {
		w.Put('+')
	}
	var buf [8]byte
	n := formatDecimal(buf[:], uint64(exp))
	w.Fill('0', minDigits-n)
	w.Append(buf[:n])
}

// writeGeneral picks fixed or scientific notation the way %g does: with P
// significant digits and decimal exponent X, fixed is used when -4 <= X < P.
// Trailing zeros are never written.
func writeGeneral(w *Writer, d *decimal, prec int, upper bool) {
	p := prec
	if p < 0 {
		p = 6
	} else if p == 0 {
		p = 1
	}
	d.round(p)
	exp := 0
	if d.nd > 0 {
		exp = d.dp - 1
	}
	if exp >= -4 && exp < p {
		writeFixedDigits(w, d, max(d.nd-d.dp, 0))
		return
	}
	writeScientificDigits(w, d, max(d.nd-1, 0), upper)
}

// maxHexDigits is the longest exact hex mantissa fraction of a float64.
const maxHexDigits = 13

// writeHexFloat writes v as a hexadecimal mantissa and binary exponent,
// without the 0x prefix and with the shortest exponent.
func writeHexFloat(w *Writer, v float64, bitSize int, upper bool, prec int) {
	verb := byte('x')
	if upper {
		verb = 'X'
	}
	extra := 0
	if prec > maxHexDigits {
		extra = prec - maxHexDigits
		prec = maxHexDigits
	}
	var scratch [48]byte
	b := strconv.AppendFloat(scratch[:0], v, verb, prec, bitSize)
	b = b[2:] // 0x
	p := 0
	for p < len(b) && b[p] != 'p' && b[p] != 'P' {
		p++
	}
	w.Append(b[:p])
	w.Fill('0', extra)
	w.Append(b[p : p+2]) // 'p' and exponent sign
	exp := b[p+2:]
	for len(exp) > 1 && exp[0] == '0' {
		exp = exp[1:]
	}
	w.Append(exp)
}
