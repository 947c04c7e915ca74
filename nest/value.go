package nest

import "math"

// Value is either a Scalar or a Seq. The interface is sealed: no other
// type may implement it.
type Value interface {
	isValue()
}

// Scalar is a numeric leaf value, either an integer or a floating point number.
// The zero value is the integer 0.
type Scalar struct {
	f     float64
	i     int64
	float bool
}

func (Scalar) isValue() {}

// Int creates an integer scalar.
func Int(v int64) Scalar {
	return Scalar{i: v}
}

// Float creates a floating point scalar.
func Float(v float64) Scalar {
	return Scalar{f: v, float: true}
}

// IsInt reports whether s holds an integer.
func (s Scalar) IsInt() bool {
	return !s.float
}

// Float64 returns the value of s as a float64.
func (s Scalar) Float64() float64 {
	if s.float {
		return s.f
	}
	return float64(s.i)
}

// Int64 returns the value of s as an int64. Floats are truncated towards zero;
// NaN and values out of range yield 0.
func (s Scalar) Int64() int64 {
	if !s.float {
		return s.i
	}
	if math.IsNaN(s.f) || s.f >= math.MaxInt64 || s.f < math.MinInt64 {
		return 0
	}
	return int64(s.f)
}

// Seq is an ordered sequence of values. Sequences may be ragged: sibling
// elements are free to differ in length and depth. A nil Seq is the empty
// sequence.
type Seq []Value

func (Seq) isValue() {}

// Len returns the number of top-level elements of q.
func (q Seq) Len() int {
	return len(q)
}

// Ints creates a flat sequence of integer scalars.
func Ints(vs ...int64) Seq {
	q := make(Seq, len(vs))
	for i, v := range vs {
		q[i] = Int(v)
	}
	return q
}

// Floats creates a flat sequence of floating point scalars.
func Floats(vs ...float64) Seq {
	q := make(Seq, len(vs))
	for i, v := range vs {
		q[i] = Float(v)
	}
	return q
}

// List creates a sequence from the given values.
func List(vs ...Value) Seq {
	q := make(Seq, len(vs))
	copy(q, vs)
	return q
}
