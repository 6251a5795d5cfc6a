package nanofmt

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrUnterminated  = errors.New("unterminated placeholder")
	ErrMixedIndexing = errors.New("mixed automatic and explicit argument indices")
	ErrArgIndex      = errors.New("argument index out of range")
	ErrUnclosed      = errors.New("placeholder not closed")
)

// Validate reports the first problem in format when used with args. The
// formatting functions never fail; they degrade as described on [VFormat].
// Validate tells the caller where that would happen.
//
// The returned error wraps one of the sentinel errors and names the byte
// offset of the problem.
func Validate(format string, args ...Arg) error {
	w := NewWriter(nil)
	var c checker
	vformat(&w, format, args, &c)
	return c.err
}
