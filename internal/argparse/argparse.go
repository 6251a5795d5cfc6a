// Package argparse turns textual argument literals into format arguments.
//
// A literal is either kind:value or a bare value. Kinds:
//
//	i    int64          i32  int32
//	u    uint64         u32  uint32
//	f    float64        f32  float32
//	c    single byte    b    bool
//	s    string         z    NUL-terminated string
//	p    pointer address (0x prefix allowed)
//
// A bare value is read as an integer, then a float, then a bool, and
// otherwise kept as a string.
package argparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/nanofmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidLiteral = errors.New("invalid argument literal")
	ErrInvalidFile    = errors.New("invalid arguments file")
)

// Parse converts one literal into an argument.
func Parse(s string) (nanofmt.Arg, error) {
	kind, value, ok := strings.Cut(s, ":")
	if !ok || !isKind(kind) {
		return detect(s), nil
	}
	return parseKind(kind, value)
}

// ParseAll converts every literal, stopping at the first failure.
func ParseAll(literals []string) (nanofmt.Args, error) {
	args := make(nanofmt.Args, 0, len(literals))
	for i, s := range literals {
		a, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		args = append(args, a)
	}
	return args, nil
}

// FromYAML decodes a YAML (or JSON) sequence of scalars. Integers, floats and
// bools keep their type; strings are parsed as literals when they carry a
// known kind prefix and kept as strings otherwise.
func FromYAML(data []byte) (nanofmt.Args, error) {
	var values []any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	args := make(nanofmt.Args, 0, len(values))
	for i, v := range values {
		a, err := fromValue(v)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		args = append(args, a)
	}
	return args, nil
}

func fromValue(v any) (nanofmt.Arg, error) {
	switch v := v.(type) {
	case int:
		return nanofmt.Int(v), nil
	case int64:
		return nanofmt.Signed(v), nil
	case uint64:
		return nanofmt.Unsigned(v), nil
	case float64:
		return nanofmt.Float(v), nil
	case bool:
		return nanofmt.Bool(v), nil
	case string:
		kind, value, ok := strings.Cut(v, ":")
		if ok && isKind(kind) {
			return parseKind(kind, value)
		}
		return nanofmt.String(v), nil
	default:
		return nanofmt.Arg{}, fmt.Errorf("%w: %T", ErrInvalidLiteral, v)
	}
}

func isKind(kind string) bool {
	switch kind {
	case "i", "i32", "u", "u32", "f", "f32", "c", "b", "s", "z", "p":
		return true
	}
	return false
}

func parseKind(kind, value string) (nanofmt.Arg, error) {
	invalid := func(err error) (nanofmt.Arg, error) {
		return nanofmt.Arg{}, fmt.Errorf("%w: %s:%q: %v", ErrInvalidLiteral, kind, value, err)
	}
	switch kind {
	case "i":
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return invalid(err)
		}
		return nanofmt.Signed(v), nil
	case "i32":
		v, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return invalid(err)
		}
		return nanofmt.Signed(int32(v)), nil
	case "u":
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return invalid(err)
		}
		return nanofmt.Unsigned(v), nil
	case "u32":
		v, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return invalid(err)
		}
		return nanofmt.Unsigned(uint32(v)), nil
	case "f":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return invalid(err)
		}
		return nanofmt.Float(v), nil
	case "f32":
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return invalid(err)
		}
		return nanofmt.Float(float32(v)), nil
	case "c":
		if len(value) != 1 {
			return invalid(errors.New("want exactly one byte"))
		}
		return nanofmt.Char(value[0]), nil
	case "b":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return invalid(err)
		}
		return nanofmt.Bool(v), nil
	case "s":
		return nanofmt.String(value), nil
	case "z":
		return nanofmt.CString(append([]byte(value), 0)), nil
	case "p":
		v, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return invalid(err)
		}
		return nanofmt.Address(uintptr(v)), nil
	default:
		return nanofmt.Arg{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidLiteral, kind)
	}
}

func detect(s string) nanofmt.Arg {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return nanofmt.Signed(v)
	}
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return nanofmt.Unsigned(v)
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return nanofmt.Float(v)
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return nanofmt.Bool(v)
	}
	return nanofmt.String(s)
}
