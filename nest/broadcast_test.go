package nest

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func add(args ...Scalar) (Scalar, error) {
	if args[0].IsInt() && args[1].IsInt() {
		return Int(args[0].Int64() + args[1].Int64()), nil
	}
	return Float(args[0].Float64() + args[1].Float64()), nil
}

func sub(args ...Scalar) (Scalar, error) {
	if args[0].IsInt() && args[1].IsInt() {
		return Int(args[0].Int64() - args[1].Int64()), nil
	}
	return Float(args[0].Float64() - args[1].Float64()), nil
}

func identity(args ...Scalar) (Scalar, error) {
	return args[0], nil
}

func sum(args ...Scalar) (Scalar, error) {
	var s int64
	for _, a := range args {
		s += a.Int64()
	}
	return Int(s), nil
}

func assertValue(t *testing.T, want, got Value) {
	t.Helper()
	assert.True(t, Equal(want, got), "expected %s, got %s", Format(want), Format(got))
}

func TestBroadcastAllScalars(t *testing.T) {
	v, err := Map(add, Int(2), Int(3))
	require.NoError(t, err)
	assertValue(t, Int(5), v)

	v, err = Map(sum, Int(1), Int(2), Int(3), Int(4))
	require.NoError(t, err)
	assertValue(t, Int(10), v)

	calls := 0
	constant := func(args ...Scalar) (Scalar, error) {
		calls++
		assert.Empty(t, args)
		return Float(0.5), nil
	}
	v, err = Broadcast(constant, nil, nil)
	require.NoError(t, err)
	assertValue(t, Float(0.5), v)
	assert.Equal(t, 1, calls)
}

func TestBroadcastScalarAgainstSequence(t *testing.T) {
	v, err := Map(add, Int(5), Ints(1, 2, 3))
	require.NoError(t, err)
	assertValue(t, Ints(6, 7, 8), v)

	v, err = Map(sub, Ints(1, 2, 3), Int(1))
	require.NoError(t, err)
	assertValue(t, Ints(0, 1, 2), v)

	v, err = Map(add, Float(0.5), Ints(1, 2))
	require.NoError(t, err)
	assertValue(t, Floats(1.5, 2.5), v)
}

func TestBroadcastEqualShapes(t *testing.T) {
	a := List(Ints(1, 2), Ints(3, 4))
	b := List(Ints(10, 20), Ints(30, 40))
	v, err := Map(add, a, b)
	require.NoError(t, err)
	assertValue(t, List(Ints(11, 22), Ints(33, 44)), v)
}

func TestBroadcastDepthMismatch(t *testing.T) {
	a := Ints(1, 2, 3)
	b := List(Ints(1, 2), Ints(3, 4), Ints(5, 6))
	v, err := Map(add, a, b)
	require.NoError(t, err)
	assertValue(t, List(Ints(2, 3), Ints(5, 6), Ints(8, 9)), v)
	assert.Equal(t, Depth(b), Depth(v))

	// argument order does not matter for the shape
	v, err = Map(add, b, a)
	require.NoError(t, err)
	assertValue(t, List(Ints(2, 3), Ints(5, 6), Ints(8, 9)), v)
}

func TestBroadcastRagged(t *testing.T) {
	v, err := Map(add, List(Int(1), Ints(2, 3)), Int(10))
	require.NoError(t, err)
	assertValue(t, List(Int(11), Ints(12, 13)), v)

	v, err = Map(add, List(Ints(1), Ints(2, 3)), Ints(10, 20))
	require.NoError(t, err)
	assertValue(t, List(Ints(11), Ints(22, 23)), v)

	// uneven depth across siblings of both arguments
	a := List(Int(1), List(Int(2), Ints(3, 4)))
	b := List(Ints(10, 20), Int(100))
	v, err = Map(add, a, b)
	require.NoError(t, err)
	assertValue(t, List(Ints(11, 21), List(Int(102), Ints(103, 104))), v)
}

func TestBroadcastPadding(t *testing.T) {
	a, b := Ints(1, 2, 3), Ints(10, 20)

	v, err := Map(add, a, b)
	require.NoError(t, err)
	assertValue(t, Ints(11, 22, 23), v)

	v, err = Broadcast(add, []Value{a, b}, &Options{Padding: PadTruncate})
	require.NoError(t, err)
	assertValue(t, Ints(11, 22), v)

	_, err = Broadcast(add, []Value{a, b}, &Options{Padding: PadStrict})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLengthMismatch))
	var lm *LengthMismatchError
	require.True(t, errors.As(err, &lm))
	assert.Equal(t, []int{3, 2}, lm.Lengths)
	assert.Empty(t, lm.Path)

	// singletons are fine under PadStrict
	v, err = Broadcast(add, []Value{a, Ints(100)}, &Options{Padding: PadStrict})
	require.NoError(t, err)
	assertValue(t, Ints(101, 102, 103), v)
	v, err = Broadcast(add, []Value{a, Int(100)}, &Options{Padding: PadStrict})
	require.NoError(t, err)
	assertValue(t, Ints(101, 102, 103), v)
}

func TestBroadcastEmpty(t *testing.T) {
	v, err := Map(add, Seq{}, Int(5))
	require.NoError(t, err)
	assertValue(t, Seq{}, v)

	v, err = Map(add, List(Ints(1, 2), Seq{}), Int(1))
	require.NoError(t, err)
	assertValue(t, List(Ints(2, 3), Seq{}), v)

	for _, p := range []Padding{PadRepeatLast, PadStrict, PadTruncate} {
		v, err = Broadcast(add, []Value{Ints(1, 2, 3), Seq(nil)}, &Options{Padding: p})
		require.NoError(t, err, "padding %s", p)
		assertValue(t, Seq{}, v)
		assert.NotNil(t, v)
	}
}

func TestBroadcastClassificationError(t *testing.T) {
	_, err := Map(add, nil, Int(1))
	require.Error(t, err)
	var ce *ClassificationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []int{0}, ce.Path)
	assert.Equal(t, "nil", ce.Got)
	assert.True(t, errors.Is(err, ErrClassification))

	_, err = Map(add, Seq{Int(1), nil}, Int(1))
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []int{1, 0}, ce.Path)
}

func TestBroadcastLeafErrorUnchanged(t *testing.T) {
	errLeaf := errors.New("leaf failed")
	calls := 0
	failing := func(args ...Scalar) (Scalar, error) {
		calls++
		if args[0].Int64() == 2 {
			return Scalar{}, errLeaf
		}
		return args[0], nil
	}
	v, err := Map(failing, Ints(1, 2, 3))
	assert.Nil(t, v)
	assert.True(t, err == errLeaf, "leaf error must not be wrapped, got %v", err)
	assert.Equal(t, 2, calls, "evaluation stops at the first failing leaf")
}

func TestBroadcastDepthBudget(t *testing.T) {
	deep := Value(Int(1))
	for range 3 {
		deep = List(deep)
	}
	_, err := Broadcast(identity, []Value{deep}, &Options{MaxDepth: 2})
	require.Error(t, err)
	var de *DepthExhaustionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 2, de.Limit)
	assert.Equal(t, []int{0, 0, 0}, de.Path)
	assert.True(t, errors.Is(err, ErrDepthExhausted))

	v, err := Broadcast(identity, []Value{deep}, &Options{MaxDepth: 3})
	require.NoError(t, err)
	assertValue(t, deep, v)

	veryDeep := Value(Int(7))
	for range DefaultMaxDepth + 10 {
		veryDeep = List(veryDeep)
	}
	_, err = Map(identity, veryDeep)
	assert.True(t, errors.Is(err, ErrDepthExhausted))
	v, err = Broadcast(identity, []Value{veryDeep}, &Options{MaxDepth: -1})
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxDepth+10, Depth(v))
}

func TestBroadcastDoesNotMutateOrAlias(t *testing.T) {
	in := List(Ints(1, 2), Int(3))
	before := Format(in)
	v, err := Map(identity, in)
	require.NoError(t, err)
	out := v.(Seq)
	out[0].(Seq)[0] = Int(99)
	out[1] = Int(42)
	assert.Equal(t, before, Format(in))
}

func TestBroadcastMulti(t *testing.T) {
	divmod := func(args ...Scalar) ([]Scalar, error) {
		a, b := args[0].Int64(), args[1].Int64()
		return []Scalar{Int(a / b), Int(a % b)}, nil
	}
	out, err := BroadcastMulti(divmod, 2, []Value{List(Int(7), Ints(9, 10)), Int(3)}, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assertValue(t, List(Int(2), Ints(3, 3)), out[0])
	assertValue(t, List(Int(1), Ints(0, 1)), out[1])

	_, err = BroadcastMulti(divmod, 3, []Value{Int(7), Int(3)}, nil)
	require.Error(t, err)
	var oe *OutputArityError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, 3, oe.Want)
	assert.Equal(t, 2, oe.Got)
}

func TestBroadcastMultiInvalidResultCount(t *testing.T) {
	none := func(args ...Scalar) ([]Scalar, error) {
		return nil, nil
	}
	for _, nout := range []int{0, -1} {
		_, err := BroadcastMulti(none, nout, []Value{Seq{}}, nil)
		assert.Error(t, err, "nout = %d", nout)
	}
}

// --- Properties ------------------------------------------------------------

func randomValue(r *rand.Rand, depth int) Value {
	if depth == 0 || r.Intn(4) == 0 {
		if r.Intn(2) == 0 {
			return Int(int64(r.Intn(200) - 100))
		}
		return Float(r.Float64() * 100)
	}
	q := make(Seq, r.Intn(4))
	for i := range q {
		q[i] = randomValue(r, depth-1)
	}
	return q
}

func TestBroadcastProperties(t *testing.T) {
	r := rand.New(rand.NewSource(4711))
	for i := range 500 {
		x := randomValue(r, 6)

		id, err := Map(identity, x)
		require.NoError(t, err)
		assert.True(t, Equal(x, id), "#%d: identity changed %s into %s", i, Format(x), Format(id))

		plus0, err := Map(add, x, Int(0))
		require.NoError(t, err)
		assert.True(t, Equal(x, plus0), "#%d: x+0 changed %s into %s", i, Format(x), Format(plus0))

		diff, err := Map(sub, x, x)
		require.NoError(t, err)
		assert.Equal(t, Depth(x), Depth(diff))
		assert.Equal(t, CountLeaves(x), CountLeaves(diff))
		assertAllZero(t, diff)
	}
}

func assertAllZero(t *testing.T, v Value) {
	t.Helper()
	switch x := v.(type) {
	case Scalar:
		assert.Zero(t, x.Float64())
	case Seq:
		for _, e := range x {
			assertAllZero(t, e)
		}
	}
}
