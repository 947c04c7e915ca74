package proppath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotRooted is returned by Expand for paths which do not start with the
// required root after alias expansion.
var ErrNotRooted = errors.New("path is not rooted")

// Aliases maps short names to path prefixes, e.g. "objs" ⇒ "bpy.data.objects".
type Aliases map[string]string

// Expand replaces a leading alias in s. An alias matches only the complete
// first segment of s (up to the first '.' or '['); if several aliases match,
// the longest one wins. Paths already starting with root are left alone.
// If root is non-empty, the result must start with root.
func (a Aliases) Expand(s, root string) (string, error) {
	if root != "" && hasRoot(s, root) {
		return s, nil
	}
	best := ""
	for alias := range a {
		if len(alias) > len(best) && hasRoot(s, alias) {
			best = alias
		}
	}
	if best != "" {
		s = a[best] + s[len(best):]
		tracer().Debugf("alias %q expanded to %s", best, s)
	}
	if root != "" && !hasRoot(s, root) {
		return "", fmt.Errorf("%w: %q must start with %q", ErrNotRooted, s, root)
	}
	return s, nil
}

// hasRoot is true if s starts with prefix and the prefix ends at a segment
// boundary.
func hasRoot(s, prefix string) bool {
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	if len(s) == len(prefix) {
		return true
	}
	c := s[len(prefix)]
	return c == '.' || c == '['
}
