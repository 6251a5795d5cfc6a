package nanofmt

import "fmt"

// Indexing modes. A template uses either automatic or explicit indices,
// never both.
const (
	indexUnset = iota
	indexAuto
	indexExplicit
)

// VFormat formats args according to format and writes the result to w.
//
// Placeholders are written {}, {index}, {:spec} or {index:spec}; {{ and }}
// produce literal braces. A placeholder that refers past the end of args
// produces nothing. Scanning stops, keeping what was written so far, at a
// '{' that ends the template and at the first placeholder that switches
// between automatic and explicit indices.
func VFormat(w *Writer, format string, args Args) {
	vformat(w, format, args, nil)
}

// checker records the first problem vformat runs into. A nil checker
// records nothing.
type checker struct {
	err error
}

func (c *checker) fail(err error, offset int) {
	if c != nil && c.err == nil {
		c.err = fmt.Errorf("%w at offset %d", err, offset)
	}
}

func vformat(w *Writer, format string, args Args, c *checker) {
	mode := indexUnset
	next := 0
	start := 0
	i := 0
	for i < len(format) {
		switch format[i] {
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				w.AppendString(format[start : i+1])
				i += 2
				start = i
				continue
			}
			i++
			continue
		case '{':
		default:
			i++
			continue
		}

		w.AppendString(format[start:i])
		open := i
		i++
		if i == len(format) {
			c.fail(ErrUnterminated, open)
			return
		}
		if format[i] == '{' {
			w.Put('{')
			i++
			start = i
			continue
		}

		index, j := parseNonNegative(format, i)
		if j > i {
			if mode == indexAuto {
				c.fail(ErrMixedIndexing, open)
				return
			}
			mode = indexExplicit
			i = j
		} else {
			if mode == indexExplicit {
				c.fail(ErrMixedIndexing, open)
				return
			}
			mode = indexAuto
			index = next
			next++
		}
		if index >= args.Len() {
			c.fail(ErrArgIndex, open)
		}

		// A placeholder without an argument writes nothing at all, spec
		// included; Args.Format skips the spec text.
		if i < len(format) && format[i] == ':' {
			spec := format[i+1:]
			args.Format(index, &spec, w)
			i = len(format) - len(spec)
		} else {
			args.Format(index, nil, w)
		}

		if i < len(format) && format[i] == '}' {
			i++
		} else {
			c.fail(ErrUnclosed, i)
		}
		start = i
	}
	w.AppendString(format[start:])
}
