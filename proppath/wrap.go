package proppath

import (
	"fmt"

	"github.com/npillmayer/ragged/nest"
)

// Vector is implemented by host objects with a fixed number of components,
// e.g. positions or colors.
type Vector interface {
	Components() []float64
}

// Matrix is implemented by host objects consisting of rows of numbers.
// Rotations should be presented as matrices.
type Matrix interface {
	Rows() [][]float64
}

// Wrap converts a property value to nested data:
//
//	number     ⇒ [[x]]
//	Vector     ⇒ [[[x, y, z]]]
//	Matrix     ⇒ [[row0, row1, …]]
//	other list ⇒ [list]
func Wrap(x any) (nest.Value, error) {
	switch t := x.(type) {
	case Vector:
		return nest.List(nest.List(nest.Floats(t.Components()...))), nil
	case Matrix:
		rows := t.Rows()
		m := make(nest.Seq, len(rows))
		for i, r := range rows {
			m[i] = nest.Floats(r...)
		}
		return nest.List(m), nil
	}
	v, err := nest.FromAny(x)
	if err != nil {
		return nil, err
	}
	if s, ok := v.(nest.Scalar); ok {
		return nest.List(nest.List(s)), nil
	}
	return nest.List(v), nil
}

// FirstItem returns v[0][0], the value a set operation writes.
func FirstItem(v nest.Value) (nest.Value, error) {
	for range 2 {
		s, ok := v.(nest.Seq)
		if !ok || len(s) == 0 {
			return nil, fmt.Errorf("expected nested data of depth 2 at least, got %s", nest.Format(v))
		}
		v = s[0]
	}
	return v, nil
}

// GetData reads the property at p and wraps it as nested data.
func GetData(r Resolver, p Path) (nest.Value, error) {
	x, err := Get(r, p)
	if err != nil {
		return nil, err
	}
	return Wrap(x)
}

// SetData writes the first item of data to the property at p, converted by
// nest.ToAny.
func SetData(s Setter, p Path, data nest.Value) error {
	item, err := FirstItem(data)
	if err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	return Set(s, p, nest.ToAny(item))
}
