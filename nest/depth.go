package nest

import "math"

// Depth returns the nesting depth of v: 0 for a scalar, and one more than the
// deepest element for a sequence. An empty sequence has depth 1.
func Depth(v Value) int {
	q, ok := v.(Seq)
	if !ok {
		return 0
	}
	d := 0
	for _, e := range q {
		d = max(d, Depth(e))
	}
	return d + 1
}

// FirstDepth returns the depth of v measured along the first element of every
// level, assuming a uniformly nested value. It returns -1 if the depth cannot be
// determined because an empty sequence (or nil) is encountered on the way.
func FirstDepth(v Value) int {
	switch x := v.(type) {
	case Scalar:
		return 0
	case Seq:
		if len(x) == 0 {
			return -1
		}
		d := FirstDepth(x[0])
		if d < 0 {
			return -1
		}
		return d + 1
	}
	return -1
}

// CountLeaves returns the number of scalars contained in v.
func CountLeaves(v Value) int {
	switch x := v.(type) {
	case Scalar:
		return 1
	case Seq:
		n := 0
		for _, e := range x {
			n += CountLeaves(e)
		}
		return n
	}
	return 0
}

// Equal reports whether a and b have the same structure and the same leaves.
// Scalars are equal if they have the same kind (int or float) and value;
// NaN is equal to NaN. A nil Seq equals an empty Seq.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Scalar:
		y, ok := b.(Scalar)
		if !ok || x.float != y.float {
			return false
		}
		if !x.float {
			return x.i == y.i
		}
		return x.f == y.f || (math.IsNaN(x.f) && math.IsNaN(y.f))
	case Seq:
		y, ok := b.(Seq)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}
