package nest

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, KindScalar, Classify(Int(1)))
	assert.Equal(t, KindScalar, Classify(Float(1)))
	assert.Equal(t, KindSeq, Classify(Seq{}))
	assert.Equal(t, KindSeq, Classify(Seq(nil)))
	assert.Equal(t, KindInvalid, Classify(nil))
	assert.Equal(t, "sequence", KindSeq.String())
}

func TestScalarKinds(t *testing.T) {
	i := Int(-7)
	assert.True(t, i.IsInt())
	assert.Equal(t, -7.0, i.Float64())
	f := Float(2.75)
	assert.False(t, f.IsInt())
	assert.Equal(t, int64(2), f.Int64())
	assert.Equal(t, int64(0), Float(math.NaN()).Int64())
	var zero Scalar
	assert.True(t, Equal(Int(0), zero))
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   Value
		want string
	}{
		{Int(-3), "-3"},
		{Float(6), "6.0"},
		{Float(0.25), "0.25"},
		{Float(1e21), "1e+21"},
		{Float(math.Inf(-1)), "-.inf"},
		{Float(math.NaN()), ".nan"},
		{Seq{}, "[]"},
		{List(Int(1), Float(2.5), List(Ints(3), Seq{})), "[1, 2.5, [[3], []]]"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Format(c.in))
	}
	assert.Equal(t, "[1, 2]", Ints(1, 2).String())
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Value
	}{
		{"5", Int(5)},
		{"-2.5", Float(-2.5)},
		{".inf", Float(math.Inf(1))},
		{"[]", Seq{}},
		{"[1, 2.5, [3, 4]]", List(Int(1), Float(2.5), Ints(3, 4))},
		{"- 1\n- [2, 3]\n- - 4.0\n", List(Int(1), Ints(2, 3), Floats(4))},
		{"[&a [1, 2], *a]", List(Ints(1, 2), Ints(1, 2))},
	}
	for _, c := range cases {
		v, err := Parse(c.in)
		require.NoError(t, err, c.in)
		assertValue(t, c.want, v)
	}
}

func TestParseRejects(t *testing.T) {
	cases := []struct {
		in   string
		path []int
	}{
		{"[1, abc]", []int{1}},
		{"true", nil},
		{"[1, [2, null]]", []int{1, 1}},
		{"{a: 1}", nil},
		{"", nil},
	}
	for _, c := range cases {
		_, err := Parse(c.in)
		require.Error(t, err, c.in)
		var ce *ClassificationError
		require.True(t, errors.As(err, &ce), "%q: %v", c.in, err)
		assert.Equal(t, c.path, ce.Path, c.in)
	}
	_, err := Parse("[1, ")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrClassification))
}

func TestParseFormatRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for range 200 {
		v := randomValue(r, 5)
		back, err := Parse(Format(v))
		require.NoError(t, err, Format(v))
		assertValue(t, v, back)
	}
}

func TestFromAny(t *testing.T) {
	v, err := FromAny([]any{1, 2.5, []int{3, 4}, [2]float32{0.5, 1}})
	require.NoError(t, err)
	assertValue(t, List(Int(1), Float(2.5), Ints(3, 4), Floats(0.5, 1)), v)

	v, err = FromAny([][]float64{{1}, {}})
	require.NoError(t, err)
	assertValue(t, List(Floats(1), Seq{}), v)

	n := uint8(9)
	v, err = FromAny(&n)
	require.NoError(t, err)
	assertValue(t, Int(9), v)

	v, err = FromAny(uint64(math.MaxInt64))
	require.NoError(t, err)
	assertValue(t, Int(math.MaxInt64), v)

	v, err = FromAny(Ints(1, 2))
	require.NoError(t, err)
	assertValue(t, Ints(1, 2), v)
}

func TestFromAnyRejects(t *testing.T) {
	cases := []struct {
		in   any
		path []int
		got  string
	}{
		{nil, nil, "nil"},
		{"x", nil, "string"},
		{true, nil, "bool"},
		{[]any{1, []any{2, "x"}}, []int{1, 1}, "string"},
		{map[string]int{"a": 1}, nil, "map[string]int"},
		{[]any{struct{}{}}, []int{0}, "struct {}"},
		{[]any{uint64(math.MaxUint64)}, []int{0}, "uint64 18446744073709551615 exceeding the integer range"},
	}
	for _, c := range cases {
		_, err := FromAny(c.in)
		var ce *ClassificationError
		require.True(t, errors.As(err, &ce), "%v: %v", c.in, err)
		assert.Equal(t, c.path, ce.Path)
		assert.Equal(t, c.got, ce.Got)
	}
}

func TestToAny(t *testing.T) {
	x := ToAny(List(Int(1), List(Float(2.5))))
	assert.Equal(t, []any{int64(1), []any{2.5}}, x)
	assert.Nil(t, ToAny(nil))
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 0, Depth(Int(1)))
	assert.Equal(t, 1, Depth(Seq{}))
	assert.Equal(t, 3, Depth(List(Int(1), List(Ints(2)))))

	assert.Equal(t, 0, FirstDepth(Int(1)))
	assert.Equal(t, 1, FirstDepth(List(Int(1), List(Ints(2)))))
	assert.Equal(t, 3, FirstDepth(List(List(Ints(1)), Int(2))))
	assert.Equal(t, -1, FirstDepth(Seq{}))
	assert.Equal(t, -1, FirstDepth(List(Seq{})))
	assert.Equal(t, -1, FirstDepth(nil))

	assert.Equal(t, 4, CountLeaves(List(Int(1), List(Ints(2, 3)), Seq{}, Float(4))))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Seq(nil), Seq{}))
	assert.False(t, Equal(Int(1), Float(1)))
	assert.False(t, Equal(Ints(1), Int(1)))
	assert.False(t, Equal(Ints(1, 2), Ints(1)))
	assert.True(t, Equal(Float(math.NaN()), Float(math.NaN())))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(nil, Int(0)))
}
