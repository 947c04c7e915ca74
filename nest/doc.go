/*
Package nest applies scalar functions across ragged, arbitrarily deep nested
sequences of numbers.

Array languages broadcast a scalar against a tensor of fixed rank. Package nest
does the same for irregular trees: sibling branches may differ in length and in
depth, and arguments of a call may be nested to different depths. The central
operation is [Broadcast]:

	add := func(args ...nest.Scalar) (nest.Scalar, error) {
		return nest.Float(args[0].Float64() + args[1].Float64()), nil
	}
	v, err := nest.Broadcast(add, []nest.Value{nest.Int(5), nest.Ints(1, 2, 3)}, nil)
	// v is [6.0, 7.0, 8.0]

At every level of recursion each argument is classified as either a [Scalar]
or a [Seq] (see [Classify]):

▪︎ if all arguments are scalars, the function is applied to them;

▪︎ if some are scalars, these are promoted to singleton sequences;

▪︎ if all are sequences, they are zipped position by position and the
evaluation recurses into every tuple.

Sequences of unequal length are aligned according to [Options.Padding].
The default, [PadRepeatLast], repeats the last element of a shorter sequence,
which is what makes a promoted scalar broadcast: a singleton repeats its only
element. An empty sequence at any level yields an empty sequence at that level
of the output.

Package nest is a pure structural traversal. It does not log, it does not retry
and it does not recover from errors of the leaf function: these are returned to
the caller unchanged. Recursion depth is bounded by [Options.MaxDepth].

# Zipping

The zip helpers ([Zip], [ZipLongest], [ZipLongestFill], [ZipRepeat]) are
range-over-func iterators on plain slices and are useful on their own.
Iterators are restartable: ranging over the same iterator twice starts at
position 0 both times.

# Literals

Values may be written as YAML literals, e.g. `[1, 2.5, [3, 4]]`, and read
with [Parse]. [Format] produces the same notation.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package nest
