package nanofmt

import "golang.org/x/exp/constraints"

var pow10 = [...]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
	10000000000000000000,
}

// countDigits returns the number of decimal digits in u, counting zero as one
// digit.
func countDigits(u uint64) int {
	n := 1
	for n < len(pow10) && u >= pow10[n] {
		n++
	}
	return n
}

// rshift10 drops the n least significant decimal digits of u.
func rshift10(u uint64, n int) uint64 {
	if n <= 0 {
		return u
	}
	if n >= len(pow10) {
		return 0
	}
	return u / pow10[n]
}

// abs splits v into its magnitude and sign. The magnitude of the most
// negative value of each width is representable in a uint64.
func abs[T constraints.Integer](v T) (uint64, bool) {
	if v < 0 {
		return 0 - uint64(v), true
	}
	return uint64(v), false
}
