package expand

import (
	"strings"
	"unicode/utf8"
)

// MaxDepth bounds how deeply variable names may nest. Pushing a frame
// beyond this limit fails the expansion with ErrDepthLimit.
const MaxDepth = 1024

// frame is one in-progress variable-name accumulation. braced records
// whether the frame was opened with "${" (closed by the matching '}') or
// with a bare '$' followed by identifier characters (closed lazily, on
// the next non-identifier character or at end of input).
type frame struct {
	braced bool
	name   []byte
}

// scanner holds the state of a single Expand call. The zero flag/empty
// stack state is the "plain text" mode writing straight to out.
type scanner struct {
	vars    map[string]string
	out     strings.Builder
	stack   []frame
	pending bool
}

// Expand performs shell-style variable substitution on template using
// vars and returns the expanded text. "$NAME" and "${NAME}" references
// are replaced by the mapped value, "$$" by a literal '$'. Names are
// matched case-sensitively and may themselves be assembled from nested
// references; a substituted value is never re-scanned.
//
// On any malformed construct or unknown name the whole expansion fails
// and no output is returned. vars is only read and may be shared by
// concurrent calls.
func Expand(template string, vars map[string]string) (string, error) {
	sc := scanner{vars: vars}
	sc.out.Grow(len(template))

	for i := 0; i < len(template); i++ {
		if err := sc.step(template, i); err != nil {
			return "", err
		}
	}

	if err := sc.drain(); err != nil {
		return "", err
	}

	return sc.out.String(), nil
}

// step consumes the byte at template[i]. The position is kept so that an
// invalid start character can be reported as a full rune.
func (sc *scanner) step(template string, i int) error {
	switch ch := template[i]; ch {
	case '$':
		if sc.pending {
			sc.pending = false
			sc.writeByte('$')

			return nil
		}

		if sc.topUnbraced() {
			if err := sc.resolve(); err != nil {
				return err
			}
		}

		sc.pending = true

		return nil

	case '{':
		if sc.pending {
			sc.pending = false

			return sc.push(true)
		}

		if sc.topUnbraced() {
			if err := sc.resolve(); err != nil {
				return err
			}
		}

		sc.writeByte('{')

		return nil

	case '}':
		if !sc.pending && sc.topBraced() {
			return sc.resolve()
		}

		sc.pending = false
		sc.writeByte('}')

		return nil

	default:
		if isNameByte(ch) {
			if sc.pending {
				sc.pending = false

				if err := sc.push(false); err != nil {
					return err
				}
			}

			sc.writeByte(ch)

			return nil
		}

		if sc.topUnbraced() {
			if err := sc.resolve(); err != nil {
				return err
			}

			sc.writeByte(ch)

			return nil
		}

		if sc.pending {
			r, _ := utf8.DecodeRuneInString(template[i:])

			return &InvalidStartError{Char: r}
		}

		sc.writeByte(ch)

		return nil
	}
}

// drain closes the frames still open at end of input, innermost first.
// Unbraced frames end legally here; a braced frame means the input ran
// out before its '}'.
func (sc *scanner) drain() error {
	for len(sc.stack) > 0 {
		if sc.topBraced() {
			return ErrUnterminated
		}

		if err := sc.resolve(); err != nil {
			return err
		}
	}

	return nil
}

// resolve pops the top frame, looks its accumulated name up in vars and
// routes the value to the new current sink.
func (sc *scanner) resolve() error {
	top := len(sc.stack) - 1
	name := string(sc.stack[top].name)
	sc.stack = sc.stack[:top]

	value, found := sc.vars[name]
	if !found {
		return &UnknownVariableError{Name: name}
	}

	sc.writeString(value)

	return nil
}

func (sc *scanner) push(braced bool) error {
	if len(sc.stack) >= MaxDepth {
		return ErrDepthLimit
	}

	sc.stack = append(sc.stack, frame{braced: braced})

	return nil
}

// writeByte appends b to the current sink: the name on top of the stack
// when a frame is open, the final output otherwise.
func (sc *scanner) writeByte(b byte) {
	if top := len(sc.stack) - 1; top >= 0 {
		sc.stack[top].name = append(sc.stack[top].name, b)

		return
	}

	sc.out.WriteByte(b)
}

func (sc *scanner) writeString(s string) {
	if top := len(sc.stack) - 1; top >= 0 {
		sc.stack[top].name = append(sc.stack[top].name, s...)

		return
	}

	sc.out.WriteString(s)
}

func (sc *scanner) topBraced() bool {
	return len(sc.stack) > 0 && sc.stack[len(sc.stack)-1].braced
}

func (sc *scanner) topUnbraced() bool {
	return len(sc.stack) > 0 && !sc.stack[len(sc.stack)-1].braced
}

// isNameByte reports whether b may appear in a variable name.
func isNameByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
