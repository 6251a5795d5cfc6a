package nanofmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountDigits(t *testing.T) {
	t.Parallel()
	tests := map[uint64]int{
		0:                    1,
		9:                    1,
		10:                   2,
		99:                   2,
		100:                  3,
		9999999999999999999:  19,
		10000000000000000000: 20,
		math.MaxUint64:       20,
	}
	for v, want := range tests {
		assert.Equal(t, want, countDigits(v), "%d", v)
	}
}

func TestRshift10(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(1234), rshift10(123456, 2))
	assert.Equal(t, uint64(123456), rshift10(123456, 0))
	assert.Equal(t, uint64(1), rshift10(math.MaxUint64, 19))
	assert.Equal(t, uint64(0), rshift10(math.MaxUint64, 25))
}

func TestAbs(t *testing.T) {
	t.Parallel()
	u, neg := abs(int8(math.MinInt8))
	assert.Equal(t, uint64(128), u)
	assert.True(t, neg)

	u, neg = abs(int64(math.MinInt64))
	assert.Equal(t, uint64(1)<<63, u)
	assert.True(t, neg)

	u, neg = abs(uint64(math.MaxUint64))
	assert.Equal(t, uint64(math.MaxUint64), u)
	assert.False(t, neg)
}

func digits(d decimal) string {
	return string(d.d[:d.nd])
}

func TestDecompose(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value  float64
		bits   int
		digits string
		dp     int
	}{
		"zero":     {value: 0, bits: 64, digits: "", dp: 0},
		"integer":  {value: 1234.5, bits: 64, digits: "12345", dp: 4},
		"small":    {value: 0.00012, bits: 64, digits: "12", dp: -3},
		"tens":     {value: 1000, bits: 64, digits: "1", dp: 4},
		"float32":  {value: float64(float32(0.1)), bits: 32, digits: "1", dp: 0},
		"denormal": {value: 5e-324, bits: 64, digits: "5", dp: -323},
		"large":    {value: 1.7976931348623157e308, bits: 64, digits: "17976931348623157", dp: 309},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			d := decompose(tt.value, tt.bits)
			assert.Equal(t, tt.digits, digits(d))
			assert.Equal(t, tt.dp, d.dp)
		})
	}
}

func TestDecimalRound(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value  float64
		nd     int
		digits string
		dp     int
	}{
		"keeps all":       {value: 1.25, nd: 5, digits: "125", dp: 1},
		"tie to even":     {value: 1.25, nd: 2, digits: "12", dp: 1},
		"tie to odd":      {value: 1.35, nd: 2, digits: "14", dp: 1},
		"above tie":       {value: 1.251, nd: 2, digits: "13", dp: 1},
		"below":           {value: 1.24, nd: 2, digits: "12", dp: 1},
		"carry":           {value: 0.999, nd: 2, digits: "1", dp: 1},
		"carry exponent":  {value: 9.96, nd: 2, digits: "1", dp: 2},
		"partial carry":   {value: 1.996, nd: 3, digits: "2", dp: 1},
		"trims zeros":     {value: 1.204, nd: 3, digits: "12", dp: 1},
		"none kept up":    {value: 0.6, nd: 0, digits: "1", dp: 1},
		"none kept tie":   {value: 0.5, nd: 0, digits: "", dp: 0},
		"negative count":  {value: 0.0004, nd: -1, digits: "", dp: 0},
		"zero stays zero": {value: 0, nd: 3, digits: "", dp: 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			d := decompose(tt.value, 64)
			d.round(tt.nd)
			assert.Equal(t, tt.digits, digits(d))
			assert.Equal(t, tt.dp, d.dp)
		})
	}
}

func TestParseNonNegative(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		start int
		value int
		end   int
	}{
		"empty":      {input: "", value: 0, end: 0},
		"no digits":  {input: "x1", value: 0, end: 0},
		"lone zero":  {input: "0123", value: 0, end: 1},
		"number":     {input: "123x", value: 123, end: 3},
		"offset":     {input: "{42}", start: 1, value: 42, end: 3},
		"past end":   {input: "1", start: 1, value: 0, end: 1},
		"saturates":  {input: "99999999999", value: maxParsed, end: 11},
		"near max":   {input: "2147483640", value: maxParsed, end: 10},
		"just under": {input: "214748363", value: 214748363, end: 9},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			value, end := parseNonNegative(tt.input, tt.start)
			assert.Equal(t, tt.value, value)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestFormatBitsStopsWhenFull(t *testing.T) {
	t.Parallel()
	buf := make([]byte, 3)
	n := formatBits(buf, 0xABCDE, 4, upperDigits)
	require.Equal(t, 3, n)
	assert.Equal(t, "ABC", string(buf))
}

func TestVFormatChecker(t *testing.T) {
	t.Parallel()
	w := NewWriter(nil)
	var c checker
	vformat(&w, "{} {}", Args{Int(1)}, &c)
	require.Error(t, c.err)
	assert.ErrorIs(t, c.err, ErrArgIndex)
	assert.Equal(t, 2, w.Length())

	// Only the first problem is kept, and a nil checker is safe.
	vformat(&w, "{", nil, &c)
	assert.ErrorIs(t, c.err, ErrArgIndex)
	var none *checker
	assert.NotPanics(t, func() { none.fail(ErrUnclosed, 0) })
}
