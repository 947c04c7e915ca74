package proppath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// StepKind tells how a path step is applied to an object.
type StepKind int

const (
	StepName StepKind = iota // global name, first step only
	StepAttr                 // attribute access: .name
	StepKey                  // subscript: [0] or ['name']
)

func (k StepKind) String() string {
	switch k {
	case StepName:
		return "name"
	case StepAttr:
		return "attr"
	case StepKey:
		return "key"
	}
	return "invalid"
}

// Step is a single step of a path. For StepKey, Key holds an int or a string.
type Step struct {
	Kind StepKind
	Name string
	Key  any
}

// Path is a parsed property path. The first step is always a StepName.
type Path []Step

// String renders a path in the syntax accepted by Parse.
func (p Path) String() string {
	var sb strings.Builder
	for _, s := range p {
		switch s.Kind {
		case StepName:
			sb.WriteString(s.Name)
		case StepAttr:
			sb.WriteByte('.')
			sb.WriteString(s.Name)
		case StepKey:
			if i, ok := s.Key.(int); ok {
				fmt.Fprintf(&sb, "[%d]", i)
			} else {
				fmt.Fprintf(&sb, "[%s]", strconv.Quote(fmt.Sprint(s.Key)))
			}
		}
	}
	return sb.String()
}

// ErrSyntax is the sentinel for *SyntaxError.
var ErrSyntax = errors.New("path syntax error")

// SyntaxError reports a malformed path. Pos is the byte offset of the problem.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("property path: %s at position %d", e.Msg, e.Pos)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// Parse reads a path of the form
//
//	name ( "." ident | "[" int "]" | "[" quoted-string "]" )*
//
// Strings may use single or double quotes. Blanks around brackets and dots
// are not allowed.
func Parse(s string) (Path, error) {
	sc := &scanner{src: s}
	name, err := sc.ident()
	if err != nil {
		return nil, err
	}
	path := Path{{Kind: StepName, Name: name}}
	for !sc.eof() {
		switch sc.ch() {
		case '.':
			sc.pos++
			attr, err := sc.ident()
			if err != nil {
				return nil, err
			}
			path = append(path, Step{Kind: StepAttr, Name: attr})
		case '[':
			sc.pos++
			key, err := sc.key()
			if err != nil {
				return nil, err
			}
			if sc.eof() || sc.ch() != ']' {
				return nil, sc.errorf("expected ']'")
			}
			sc.pos++
			path = append(path, Step{Kind: StepKey, Key: key})
		default:
			return nil, sc.errorf("unexpected character %q", sc.ch())
		}
	}
	tracer().Debugf("parsed property path %s into %d steps", s, len(path))
	return path, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// scanner works on bytes; identifiers are restricted to ASCII.
type scanner struct {
	src string
	pos int
}

func (sc *scanner) eof() bool {
	return sc.pos >= len(sc.src)
}

func (sc *scanner) ch() byte {
	return sc.src[sc.pos]
}

func (sc *scanner) errorf(format string, args ...any) error {
	return &SyntaxError{Pos: sc.pos, Msg: fmt.Sprintf(format, args...)}
}

func (sc *scanner) ident() (string, error) {
	start := sc.pos
	if sc.eof() || !isIdentStart(sc.ch()) {
		return "", sc.errorf("expected identifier")
	}
	for !sc.eof() && isIdentPart(sc.ch()) {
		sc.pos++
	}
	return sc.src[start:sc.pos], nil
}

// key reads an integer or a quoted string.
func (sc *scanner) key() (any, error) {
	if sc.eof() {
		return nil, sc.errorf("unterminated subscript")
	}
	switch c := sc.ch(); {
	case c == '\'' || c == '"':
		return sc.quoted(c)
	case c == '-' || isDigit(c):
		start := sc.pos
		sc.pos++
		for !sc.eof() && isDigit(sc.ch()) {
			sc.pos++
		}
		n, err := strconv.Atoi(sc.src[start:sc.pos])
		if err != nil {
			return nil, &SyntaxError{Pos: start, Msg: "invalid index " + strconv.Quote(sc.src[start:sc.pos])}
		}
		return n, nil
	}
	return nil, sc.errorf("expected index or quoted key")
}

func (sc *scanner) quoted(q byte) (string, error) {
	start := sc.pos
	sc.pos++ // opening quote
	var b strings.Builder
	for {
		if sc.eof() {
			return "", &SyntaxError{Pos: start, Msg: "unterminated string"}
		}
		c := sc.ch()
		if c == q {
			sc.pos++
			return b.String(), nil
		}
		if c == '\\' && sc.pos+1 < len(sc.src) {
			if next := sc.src[sc.pos+1]; next == q || next == '\\' {
				b.WriteByte(next)
				sc.pos += 2
				continue
			}
		}
		b.WriteByte(c)
		sc.pos++
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || c < 0x80 && unicode.IsLetter(rune(c))
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
