package nanofmt

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// IntFormat selects the base and digit case used by [FormatInt].
type IntFormat int

const (
	IntDecimal IntFormat = iota
	IntHex
	IntHexUpper
	IntBinary
	IntOctal
)

// FloatFormat selects the notation used by [FormatFloat].
type FloatFormat int

const (
	FloatGeneral FloatFormat = iota
	FloatGeneralUpper
	FloatScientific
	FloatScientificUpper
	FloatFixed
	FloatFixedUpper
	FloatHex
	FloatHexUpper
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// maxIntChars is the longest output of [FormatInt]: a sign and 64 binary
// digits.
const maxIntChars = 65

// FormatInt writes v into dst in the given base and returns the offset one
// past the last byte written.
//
// When dst is too short the most significant characters are kept: a minus
// sign first, then the leading digits. Zero is written as "0". Nothing is
// written into an empty dst.
func FormatInt[T constraints.Integer](dst []byte, v T, f IntFormat) int {
	u, neg := abs(v)
	return formatUint(dst, u, neg, f)
}

func formatUint(dst []byte, u uint64, neg bool, f IntFormat) int {
	if len(dst) == 0 {
		return 0
	}
	i := 0
	if neg {
		dst[0] = '-'
		i = 1
	}
	if u == 0 {
		if i < len(dst) {
			dst[i] = '0'
			i++
		}
		return i
	}
	switch f {
	case IntHex:
		return i + formatBits(dst[i:], u, 4, lowerDigits)
	case IntHexUpper:
		return i + formatBits(dst[i:], u, 4, upperDigits)
	case IntBinary:
		return i + formatBits(dst[i:], u, 1, lowerDigits)
	case IntOctal:
		return i + formatBits(dst[i:], u, 3, lowerDigits)
	default:
		return i + formatDecimal(dst[i:], u)
	}
}

func formatDecimal(dst []byte, u uint64) int {
	n := countDigits(u)
	if n > len(dst) {
		u = rshift10(u, n-len(dst))
		n = len(dst)
	}
	for i := n - 1; i >= 0; i-- {
		dst[i] = '0' + byte(u%10)
		u /= 10
	}
	return n
}

// formatBits writes u in a power-of-two base of 1<<shift, starting from the
// most significant digit and stopping when dst is full.
func formatBits(dst []byte, u uint64, shift int, digits string) int {
	total := (bits.Len64(u) + shift - 1) / shift
	n := min(total, len(dst))
	mask := uint64(1)<<shift - 1
	for i := range n {
		s := (total - 1 - i) * shift
		dst[i] = digits[(u>>s)&mask]
	}
	return n
}

// FormatFloat writes v into dst and returns the offset one past the last byte
// written.
//
// A negative precision selects the shortest representation that round-trips
// for scientific, fixed and hex notation, and six significant digits for
// general notation. Infinities and NaNs are written as inf and nan (INF and
// NAN for the upper-case notations), preceded by a minus sign when the sign
// bit is set. Output that does not fit in dst is truncated.
func FormatFloat[T constraints.Float](dst []byte, v T, f FloatFormat, precision int) int {
	w := NewWriter(dst)
	writeFloat(&w, float64(v), floatBits(v), f, precision)
	return w.Len()
}

func floatBits[T constraints.Float](v T) int {
	return int(unsafe.Sizeof(v)) * 8
}
