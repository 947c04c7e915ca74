/*
Package ragged applies scalar functions elementwise across nested, possibly
ragged numeric data.

There is a certain vocabulary to get used to:

▪︎ A "scalar" is a single number, either an integer or a float.

▪︎ A "sequence" is an ordered list of scalars and/or sequences, to any depth.
Sequences at the same level need not have equal lengths ("ragged").

▪︎ "Broadcasting" applies a function of n scalars to n arguments of any
shape. Scalars are treated as one-element sequences, and shorter sequences
repeat their last element until the longest one at the same level is
exhausted.

This package is a convenience layer for clients working with plain Go values
([]any, []float64, int, …). The data model and the broadcasting engine live
in package nest, built-in functions in package nestfn, node scripts in
package script and property access in package proppath.

	r, err := ragged.Map(func(a ...nest.Scalar) (nest.Scalar, error) {
	    return nest.Float(a[0].Float64() * a[1].Float64()), nil
	}, []any{1, []any{2, 3}}, 10)
	// r = []any{10.0, []any{20.0, 30.0}}

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ragged

import (
	"fmt"

	"github.com/npillmayer/ragged/nest"
	"github.com/npillmayer/ragged/nestfn"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ragged'
func tracer() tracing.Trace {
	return tracing.Select("ragged")
}

// Map broadcasts fn across args with default options. Arguments are
// converted by nest.FromAny, the result by nest.ToAny.
func Map(fn nest.Func, args ...any) (any, error) {
	return MapWith(nil, fn, args...)
}

// MapWith is like Map, with explicit options. opt may be nil.
func MapWith(opt *nest.Options, fn nest.Func, args ...any) (any, error) {
	values, err := fromAnyArgs(args)
	if err != nil {
		return nil, err
	}
	v, err := nest.Broadcast(fn, values, opt)
	if err != nil {
		return nil, err
	}
	return nest.ToAny(v), nil
}

// Apply broadcasts the built-in function of a given name across args. It
// returns one result per function output.
func Apply(opt *nest.Options, name string, args ...any) ([]any, error) {
	values, err := fromAnyArgs(args)
	if err != nil {
		return nil, err
	}
	res, err := nestfn.Call(name, values, opt)
	if err != nil {
		tracer().Debugf("apply %s: %v", name, err)
		return nil, err
	}
	out := make([]any, len(res))
	for i, v := range res {
		out[i] = nest.ToAny(v)
	}
	return out, nil
}

func fromAnyArgs(args []any) ([]nest.Value, error) {
	values := make([]nest.Value, len(args))
	for i, a := range args {
		v, err := nest.FromAny(a)
		if err != nil {
			tracer().Debugf("argument #%d not numeric: %v", i, err)
			return nil, fmt.Errorf("argument #%d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}
