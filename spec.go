package nanofmt

import (
	"math"
	"strings"
)

// Alignment controls where padding goes when a value is narrower than its
// width.
type Alignment int

const (
	AlignNone Alignment = iota // per-type default
	AlignLeft
	AlignCenter
	AlignRight
)

// Presentation types accepted by the built-in formatters.
const (
	IntTypes     = "bBcdoxX"
	FloatTypes   = "aAeEfFgG"
	BoolTypes    = "sbBcdoxX"
	StringTypes  = "s"
	PointerTypes = "p"
)

// Spec is a parsed placeholder specification:
//
//	[[fill]align][sign][#][0][width][.precision][L][type]
//
// Width and Precision are -1 when unset.
type Spec struct {
	Width     int
	Precision int
	Align     Alignment
	Sign      byte // '-', '+' or ' '
	Fill      byte
	Type      byte // 0 selects the default presentation
	ZeroPad   bool
	AltForm   bool
	Locale    bool // accepted, never applied
}

// DefaultSpec returns a Spec with every field unset.
func DefaultSpec() Spec {
	return Spec{
		Width:     -1,
		Precision: -1,
		Sign:      '-',
		Fill:      ' ',
	}
}

func alignOf(c byte) Alignment {
	switch c {
	case '<':
		return AlignLeft
	case '^':
		return AlignCenter
	case '>':
		return AlignRight
	default:
		return AlignNone
	}
}

// ParseSpec parses spec into s and returns the unconsumed remainder of spec.
//
// Fields are read in order and each is optional. Parsing stops at the first
// character that does not fit the next field. A width of zero is not a width:
// parsing stops in front of it. A '.' without digits stops parsing after the
// '.'. Only type characters listed in types are accepted.
func ParseSpec(spec string, s *Spec, types string) string {
	i := 0
	if len(spec) >= 2 && alignOf(spec[1]) != AlignNone {
		s.Fill = spec[0]
		s.Align = alignOf(spec[1])
		i = 2
	} else if len(spec) >= 1 && alignOf(spec[0]) != AlignNone {
		s.Align = alignOf(spec[0])
		i = 1
	}

	if i < len(spec) {
		switch spec[i] {
		case '+', '-', ' ':
			s.Sign = spec[i]
			i++
		}
	}
	if i < len(spec) && spec[i] == '#' {
		s.AltForm = true
		i++
	}
	if i < len(spec) && spec[i] == '0' {
		s.ZeroPad = true
		i++
	}

	if width, j := parseNonNegative(spec, i); j > i {
		if width == 0 {
			return spec[i:]
		}
		s.Width = width
		i = j
	}

	if i < len(spec) && spec[i] == '.' {
		i++
		prec, j := parseNonNegative(spec, i)
		if j == i {
			return spec[i:]
		}
		s.Precision = prec
		i = j
	}

	if i < len(spec) && spec[i] == 'L' {
		s.Locale = true
		i++
	}

	if i < len(spec) && strings.IndexByte(types, spec[i]) >= 0 {
		s.Type = spec[i]
		i++
	}
	return spec[i:]
}

// maxParsed caps parsed widths, precisions and indices.
const maxParsed = math.MaxInt32

// parseNonNegative reads a decimal number starting at s[i] and returns it
// with the offset just past it. A leading '0' is a complete number on its
// own. When no digit is present the offset is i. Values saturate at
// maxParsed.
func parseNonNegative(s string, i int) (int, int) {
	if i >= len(s) || s[i] < '0' || s[i] > '9' {
		return 0, i
	}
	if s[i] == '0' {
		return 0, i + 1
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n > (maxParsed-9)/10 {
			n = maxParsed
			continue
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, i
}
