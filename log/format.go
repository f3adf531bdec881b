package log

import "fmt"

// render substitutes args into format and caps the result at
// MessageSizeLimit-1 bytes. Arguments beyond what the template consumes are
// discarded; missing arguments render as fmt's %!verb(MISSING) marker rather
// than failing.
func render(format string, args []any) string {
	if n, exact := argConsumption(format); exact && n < len(args) {
		args = args[:n]
	}

	var b boundedBuffer
	fmt.Fprintf(&b, format, args...)
	return b.String()
}

// boundedBuffer collects rendered output up to MessageSizeLimit-1 bytes and
// silently discards the rest. Write always reports the full length so fmt
// runs the template to completion regardless of how much was kept.
type boundedBuffer struct {
	buf []byte
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if room := MessageSizeLimit - 1 - len(b.buf); room > 0 {
		if len(p) > room {
			p = p[:room]
		}
		b.buf = append(b.buf, p...)
	}
	return n, nil
}

func (b *boundedBuffer) String() string { return string(b.buf) }

// argConsumption scans the template's formatting directives and reports how
// many arguments they consume. The count covers conversion verbs plus any
// '*' width or precision markers; %% consumes nothing. exact is false when
// the template uses explicit argument indexes (%[n]), in which case the
// consumption count cannot be derived from a linear scan and callers must
// not trim the argument list.
func argConsumption(format string) (n int, exact bool) {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++

		// flags
		for i < len(format) {
			switch format[i] {
			case '+', '-', ' ', '#', '0':
				i++
				continue
			}
			break
		}

		// width
		if i < len(format) && format[i] == '*' {
			n++
			i++
		} else {
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
		}

		// precision
		if i < len(format) && format[i] == '.' {
			i++
			if i < len(format) && format[i] == '*' {
				n++
				i++
			} else {
				for i < len(format) && format[i] >= '0' && format[i] <= '9' {
					i++
				}
			}
		}

		if i >= len(format) {
			// trailing bare % renders as a no-verb marker and consumes nothing
			break
		}

		switch format[i] {
		case '%':
			// literal percent, consumes nothing
		case '[':
			return 0, false
		default:
			n++
		}
	}
	return n, true
}
