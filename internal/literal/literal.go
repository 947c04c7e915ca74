/*
Package literal splits command line input into nested data literals.

Literals are written in YAML flow syntax, e.g. "[1, [2.5, 3]]". On a command
line several literals are separated by blanks or commas at bracket depth zero:

	5 [1, 2, 3] [[1], [2, 3]]
	5,[1,2,3],[[1],[2,3]]

both yield three literals.
*/
package literal

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ragged/nest"
)

// Split separates s at blanks and commas outside of brackets.
// Unbalanced brackets are an error.
func Split(s string) ([]string, error) {
	var parts []string
	depth, start := 0, -1
	for i, r := range s {
		switch {
		case r == '[':
			depth++
		case r == ']':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced ']' at position %d", i)
			}
		case depth == 0 && isSeparator(r):
			if start >= 0 {
				parts = append(parts, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if depth > 0 {
		return nil, fmt.Errorf("unbalanced '[' in %q", s)
	}
	if start >= 0 {
		parts = append(parts, s[start:])
	}
	return parts, nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\n'
}

// Resolver looks up named values, referenced as $NAME.
type Resolver func(name string) (nest.Value, bool)

// ParseAll splits s and parses every literal. A literal of the form $NAME is
// looked up with vars, which may be nil.
func ParseAll(s string, vars Resolver) ([]nest.Value, error) {
	parts, err := Split(s)
	if err != nil {
		return nil, err
	}
	values := make([]nest.Value, len(parts))
	for i, p := range parts {
		if name, ok := strings.CutPrefix(p, "$"); ok {
			if vars == nil {
				return nil, fmt.Errorf("no variables to resolve %s", p)
			}
			v, found := vars(name)
			if !found {
				return nil, fmt.Errorf("undefined variable %s", p)
			}
			values[i] = v
			continue
		}
		v, err := nest.Parse(p)
		if err != nil {
			return nil, fmt.Errorf("literal #%d %q: %w", i, p, err)
		}
		values[i] = v
	}
	return values, nil
}
