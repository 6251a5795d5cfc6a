package nanofmt

import (
	"math"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Kind tags the value held by an [Arg].
type Kind uint8

const (
	KindNone Kind = iota
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindChar
	KindFloat32
	KindFloat64
	KindBool
	KindCString
	KindString
	KindPointer
	KindCustom
)

var kindNames = [...]string{
	KindNone:    "none",
	KindInt32:   "int32",
	KindUint32:  "uint32",
	KindInt64:   "int64",
	KindUint64:  "uint64",
	KindChar:    "char",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindBool:    "bool",
	KindCString: "cstring",
	KindString:  "string",
	KindPointer: "pointer",
	KindCustom:  "custom",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Formatter formats values of type T. Parse is called exactly once before
// each Format, with the text following the placeholder's ':' (or "" when
// there is none), and returns the unconsumed suffix of spec.
type Formatter[T any] interface {
	Parse(spec string) string
	Format(v T, w *Writer)
}

// FormatterPtr constrains F so that *F is a [Formatter] for T.
type FormatterPtr[F, T any] interface {
	*F
	Formatter[T]
}

// Thunk parses spec and formats the value at p. spec is nil when the
// placeholder has none; otherwise it is advanced past what was consumed.
// A Thunk must not retain spec or w.
type Thunk func(p unsafe.Pointer, spec *string, w *Writer)

// Arg is a type-erased reference to one format argument. It does not own the
// memory it refers to; strings and custom values must outlive every use.
type Arg struct {
	kind  Kind
	bits  uint64
	ptr   unsafe.Pointer
	thunk Thunk
}

// Kind returns the tag of a.
func (a Arg) Kind() Kind {
	return a.kind
}

// Signed returns an Arg for a signed integer. Types up to 32 bits wide use
// the 32-bit tag.
func Signed[T constraints.Signed](v T) Arg {
	if unsafe.Sizeof(v) > 4 {
		return Arg{kind: KindInt64, bits: uint64(int64(v))}
	}
	return Arg{kind: KindInt32, bits: uint64(int64(v))}
}

// Unsigned returns an Arg for an unsigned integer. Types up to 32 bits wide
// use the 32-bit tag.
func Unsigned[T constraints.Unsigned](v T) Arg {
	if unsafe.Sizeof(v) > 4 {
		return Arg{kind: KindUint64, bits: uint64(v)}
	}
	return Arg{kind: KindUint32, bits: uint64(v)}
}

// Int returns an Arg for an int.
func Int(v int) Arg { return Signed(v) }

// Uint returns an Arg for a uint.
func Uint(v uint) Arg { return Unsigned(v) }

// Float returns an Arg for a float32 or float64.
func Float[T constraints.Float](v T) Arg {
	if unsafe.Sizeof(v) == 4 {
		return Arg{kind: KindFloat32, bits: uint64(math.Float32bits(float32(v)))}
	}
	return Arg{kind: KindFloat64, bits: math.Float64bits(float64(v))}
}

// Char returns an Arg for a single character.
func Char(c byte) Arg {
	return Arg{kind: KindChar, bits: uint64(c)}
}

// Bool returns an Arg for a bool.
func Bool(v bool) Arg {
	a := Arg{kind: KindBool}
	if v {
		a.bits = 1
	}
	return a
}

// String returns an Arg viewing s.
func String(s string) Arg {
	return Arg{kind: KindString, bits: uint64(len(s)), ptr: unsafe.Pointer(unsafe.StringData(s))}
}

// Bytes returns an Arg viewing b as a string.
func Bytes(b []byte) Arg {
	return Arg{kind: KindString, bits: uint64(len(b)), ptr: unsafe.Pointer(unsafe.SliceData(b))}
}

// CString returns an Arg for a NUL-terminated string stored in b. Formatting
// stops at the first NUL, or at len(b) when there is none.
func CString(b []byte) Arg {
	return Arg{kind: KindCString, bits: uint64(len(b)), ptr: unsafe.Pointer(unsafe.SliceData(b))}
}

// Pointer returns an Arg that formats the address p points to.
func Pointer[T any](p *T) Arg {
	return Address(uintptr(unsafe.Pointer(p)))
}

// Address returns an Arg that formats addr as a pointer.
func Address(addr uintptr) Arg {
	return Arg{kind: KindPointer, bits: uint64(addr)}
}

// Custom returns an Arg that formats *v with a fresh F. It only compiles when
// *F implements [Formatter] for T.
func Custom[F any, T any, PF FormatterPtr[F, T]](v *T) Arg {
	return Thunked(unsafe.Pointer(v), invoke[T, F, PF])
}

// Thunked returns an Arg that formats p by calling fn.
func Thunked(p unsafe.Pointer, fn Thunk) Arg {
	return Arg{kind: KindCustom, ptr: p, thunk: fn}
}

func invoke[T, F any, PF FormatterPtr[F, T]](p unsafe.Pointer, spec *string, w *Writer) {
	var f F
	pf := PF(&f)
	consume(spec, pf.Parse(remainder(spec)))
	pf.Format(*(*T)(p), w)
}

func remainder(spec *string) string {
	if spec == nil {
		return ""
	}
	return *spec
}

// skipSpec returns spec from its closing brace on, or "" when there is none.
func skipSpec(spec string) string {
	if i := strings.IndexByte(spec, '}'); i >= 0 {
		return spec[i:]
	}
	return ""
}

func consume(spec *string, rest string) {
	if spec != nil {
		*spec = rest
	}
}

// Args is an ordered list of format arguments.
type Args []Arg

// MakeArgs returns values as an argument list.
func MakeArgs(values ...Arg) Args {
	return values
}

// Len returns the number of arguments.
func (a Args) Len() int {
	return len(a)
}

// Format formats the argument at index into w. An index out of range, or a
// zero Arg, writes nothing and skips the spec up to its closing brace. spec is
// nil when the placeholder has no specification; otherwise it is advanced
// past the part the argument's formatter consumed.
func (a Args) Format(index int, spec *string, w *Writer) {
	if index < 0 || index >= len(a) {
		consume(spec, skipSpec(remainder(spec)))
		return
	}
	arg := &a[index]
	switch arg.kind {
	case KindNone:
		consume(spec, skipSpec(remainder(spec)))
	case KindInt32:
		var f IntFormatter[int32]
		consume(spec, f.Parse(remainder(spec)))
		f.Format(int32(int64(arg.bits)), w)
	case KindUint32:
		var f IntFormatter[uint32]
		consume(spec, f.Parse(remainder(spec)))
		f.Format(uint32(arg.bits), w)
	case KindInt64:
		var f IntFormatter[int64]
		consume(spec, f.Parse(remainder(spec)))
		f.Format(int64(arg.bits), w)
	case KindUint64:
		var f IntFormatter[uint64]
		consume(spec, f.Parse(remainder(spec)))
		f.Format(arg.bits, w)
	case KindChar:
		var f CharFormatter
		consume(spec, f.Parse(remainder(spec)))
		f.Format(byte(arg.bits), w)
	case KindFloat32:
		var f FloatFormatter[float32]
		consume(spec, f.Parse(remainder(spec)))
		f.Format(math.Float32frombits(uint32(arg.bits)), w)
	case KindFloat64:
		var f FloatFormatter[float64]
		consume(spec, f.Parse(remainder(spec)))
		f.Format(math.Float64frombits(arg.bits), w)
	case KindBool:
		var f BoolFormatter
		consume(spec, f.Parse(remainder(spec)))
		f.Format(arg.bits != 0, w)
	case KindString:
		var f StringFormatter
		consume(spec, f.Parse(remainder(spec)))
		f.Format(unsafe.String((*byte)(arg.ptr), int(arg.bits)), w)
	case KindCString:
		var f StringFormatter
		consume(spec, f.Parse(remainder(spec)))
		f.formatCString(unsafe.Slice((*byte)(arg.ptr), int(arg.bits)), w)
	case KindPointer:
		var f PointerFormatter
		consume(spec, f.Parse(remainder(spec)))
		f.Format(uintptr(arg.bits), w)
	case KindCustom:
		if arg.thunk == nil {
			return
		}
		arg.thunk(arg.ptr, (*string)(noescape(unsafe.Pointer(spec))), (*Writer)(noescape(unsafe.Pointer(w))))
	}
}

// noescape hides p from escape analysis. Thunks never retain their
// arguments, so the caller's Writer and spec can stay on its stack. go vet
// reports the uintptr round trip as a possible misuse of unsafe.Pointer; the
// pointer is converted back in the same expression, so the warning is
// expected.
//
//go:nosplit
//go:nocheckptr
func noescape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}
