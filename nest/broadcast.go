package nest

import (
	"fmt"
	"iter"
	"slices"
)

// Func is a leaf function: it maps a fixed number of scalars to one scalar.
type Func func(args ...Scalar) (Scalar, error)

// MultiFunc is a leaf function producing several scalars at once.
type MultiFunc func(args ...Scalar) ([]Scalar, error)

// Broadcast applies fn elementwise across args, each of which is a scalar or
// an arbitrarily nested, possibly ragged sequence.
//
// If all arguments are scalars, the result is fn(args...). Otherwise scalar
// arguments are promoted to singleton sequences, all sequences are aligned
// position by position (see Options.Padding) and Broadcast recurses into every
// position. The result mirrors the shape of the deepest argument.
//
// Errors returned by fn are passed through unchanged. Broadcast never modifies
// its arguments.
func Broadcast(fn Func, args []Value, opt *Options) (Value, error) {
	b := broadcaster{
		opt: opt.normalize(),
		leaf: func(scalars []Scalar) (Value, error) {
			s, err := fn(scalars...)
			if err != nil {
				return nil, err
			}
			return s, nil
		},
	}
	return b.eval(args, 0)
}

// Map is Broadcast with default options.
func Map(fn Func, args ...Value) (Value, error) {
	return Broadcast(fn, args, nil)
}

// BroadcastMulti is like Broadcast for a function with nout results. It returns
// nout values of identical shape, the k-th one holding the k-th result of every
// leaf application. A leaf returning a different number of results is an
// *OutputArityError.
func BroadcastMulti(fn MultiFunc, nout int, args []Value, opt *Options) ([]Value, error) {
	if nout < 1 {
		return nil, fmt.Errorf("broadcast: function must have at least one result, have %d", nout)
	}
	b := broadcaster{
		opt: opt.normalize(),
		leaf: func(scalars []Scalar) (Value, error) {
			r, err := fn(scalars...)
			if err != nil {
				return nil, err
			}
			if len(r) != nout {
				return nil, &OutputArityError{Want: nout, Got: len(r)}
			}
			return tuple(r), nil
		},
	}
	tree, err := b.eval(args, 0)
	if err != nil {
		return nil, err
	}
	out := make([]Value, nout)
	for k := range nout {
		out[k] = unzipTuple(tree, k)
	}
	return out, nil
}

// tuple carries the results of a MultiFunc through the recursion. It never
// leaves this package.
type tuple []Scalar

func (tuple) isValue() {}

func unzipTuple(v Value, k int) Value {
	switch x := v.(type) {
	case tuple:
		return x[k]
	case Seq:
		q := make(Seq, len(x))
		for i, e := range x {
			q[i] = unzipTuple(e, k)
		}
		return q
	}
	return v
}

type broadcaster struct {
	opt  Options
	leaf func([]Scalar) (Value, error)
	path []int // output position of the current recursion
}

func (b *broadcaster) eval(args []Value, depth int) (Value, error) {
	if b.opt.MaxDepth > 0 && depth > b.opt.MaxDepth {
		return nil, &DepthExhaustionError{Limit: b.opt.MaxDepth, Path: slices.Clone(b.path)}
	}
	kinds := make([]Kind, len(args))
	all, _, bad := classifyArgs(args, kinds)
	if bad >= 0 {
		return nil, &ClassificationError{
			Path: append(slices.Clone(b.path), bad),
			Got:  typeName(args[bad]),
		}
	}
	if all {
		scalars := make([]Scalar, len(args))
		for i, a := range args {
			scalars[i] = a.(Scalar)
		}
		return b.leaf(scalars)
	}
	// at least one sequence: promote scalars to singletons
	seqs := make([][]Value, len(args))
	for i, a := range args {
		if kinds[i] == KindScalar {
			seqs[i] = []Value{a}
		} else {
			seqs[i] = a.(Seq)
		}
	}
	tuples, n, err := b.align(seqs)
	if err != nil {
		return nil, err
	}
	out := make(Seq, 0, n)
	for t := range tuples {
		b.path = append(b.path, len(out))
		r, err := b.eval(t, depth+1)
		b.path = b.path[:len(b.path)-1]
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// align chooses the zip for one level according to the padding policy and
// returns it together with the number of tuples it will produce.
func (b *broadcaster) align(seqs [][]Value) (iter.Seq[[]Value], int, error) {
	shortest, longest := -1, 0
	for _, s := range seqs {
		if shortest < 0 || len(s) < shortest {
			shortest = len(s)
		}
		longest = max(longest, len(s))
	}
	if shortest == 0 {
		return Zip[Value](), 0, nil
	}
	switch b.opt.Padding {
	case PadTruncate:
		return Zip(seqs...), shortest, nil
	case PadStrict:
		for _, s := range seqs {
			if len(s) != longest && len(s) != 1 {
				lengths := make([]int, len(seqs))
				for i, s := range seqs {
					lengths[i] = len(s)
				}
				return nil, 0, &LengthMismatchError{Path: slices.Clone(b.path), Lengths: lengths}
			}
		}
	}
	return ZipRepeat(seqs...), longest, nil
}
