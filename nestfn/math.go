package nestfn

import (
	"errors"
	"math"

	"github.com/npillmayer/ragged/nest"
)

var (
	// ErrDivideByZero is returned by div, mod and divmod for a zero divisor.
	ErrDivideByZero = errors.New("division by zero")

	// ErrDomain is returned for arguments outside a function's domain, e.g. sqrt(-1).
	ErrDomain = errors.New("argument out of domain")
)

func init() {
	mustRegister("id", 1, identity, "identity")
	mustRegister("neg", 1, unary(func(a int64) int64 { return -a }, func(a float64) float64 { return -a }), "negation")
	mustRegister("abs", 1, unary(absInt, math.Abs), "absolute value")
	mustRegister("add", 2, binary(func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }), "a + b")
	mustRegister("sub", 2, binary(func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }), "a - b")
	mustRegister("mul", 2, binary(func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }), "a * b")
	mustRegister("div", 2, div, "a / b, always float")
	mustRegister("mod", 2, mod, "floored modulo, sign of b")
	mustRegister("pow", 2, pow, "a ** b")
	mustRegister("min", 2, binary(func(a, b int64) int64 { return min(a, b) }, func(a, b float64) float64 { return min(a, b) }), "smaller of a and b")
	mustRegister("max", 2, binary(func(a, b int64) int64 { return max(a, b) }, func(a, b float64) float64 { return max(a, b) }), "larger of a and b")
	mustRegister("sqrt", 1, sqrt, "square root")
	mustRegister("sin", 1, float1(math.Sin), "sine (radians)")
	mustRegister("cos", 1, float1(math.Cos), "cosine (radians)")
	mustRegister("tan", 1, float1(math.Tan), "tangent (radians)")
	mustRegister("exp", 1, float1(math.Exp), "e ** x")
	mustRegister("log", 1, logarithm, "natural logarithm")
	mustRegister("floor", 1, unary(func(a int64) int64 { return a }, math.Floor), "round down")
	mustRegister("ceil", 1, unary(func(a int64) int64 { return a }, math.Ceil), "round up")
	mustRegister("round", 1, unary(func(a int64) int64 { return a }, math.Round), "round half away from zero")
	mustRegister("hypot", 2, float2(math.Hypot), "sqrt(a*a + b*b)")
	mustRegister("clamp", 3, clamp, "x limited to [lo, hi]")
	mustRegister("lerp", 3, lerp, "a + (b - a) * t")
	mustRegister("sum", Variadic, sum, "sum of all arguments")

	mustRegisterMulti("divmod", 2, 2, divmod, "floored quotient and remainder")
	mustRegisterMulti("polar", 2, 2, polar, "(x, y) to (r, theta)")
	mustRegisterMulti("cartesian", 2, 2, cartesian, "(r, theta) to (x, y)")
}

func mustRegister(name string, arity int, fun nest.Func, doc string) {
	if err := Register(name, arity, fun, doc); err != nil {
		panic(err)
	}
}

func mustRegisterMulti(name string, arity, nout int, fun nest.MultiFunc, doc string) {
	if err := RegisterMulti(name, arity, nout, fun, doc); err != nil {
		panic(err)
	}
}

func allInt(args []nest.Scalar) bool {
	for _, a := range args {
		if !a.IsInt() {
			return false
		}
	}
	return true
}

// unary lifts a pair of integer and float implementations to a leaf function
// which stays in the integers as long as its argument is an integer.
func unary(iop func(int64) int64, fop func(float64) float64) nest.Func {
	return func(args ...nest.Scalar) (nest.Scalar, error) {
		if args[0].IsInt() {
			return nest.Int(iop(args[0].Int64())), nil
		}
		return nest.Float(fop(args[0].Float64())), nil
	}
}

// binary is like unary for two arguments.
func binary(iop func(a, b int64) int64, fop func(a, b float64) float64) nest.Func {
	return func(args ...nest.Scalar) (nest.Scalar, error) {
		if allInt(args) {
			return nest.Int(iop(args[0].Int64(), args[1].Int64())), nil
		}
		return nest.Float(fop(args[0].Float64(), args[1].Float64())), nil
	}
}

func float1(f func(float64) float64) nest.Func {
	return func(args ...nest.Scalar) (nest.Scalar, error) {
		return nest.Float(f(args[0].Float64())), nil
	}
}

func float2(f func(a, b float64) float64) nest.Func {
	return func(args ...nest.Scalar) (nest.Scalar, error) {
		return nest.Float(f(args[0].Float64(), args[1].Float64())), nil
	}
}

func identity(args ...nest.Scalar) (nest.Scalar, error) {
	return args[0], nil
}

func absInt(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

func div(args ...nest.Scalar) (nest.Scalar, error) {
	b := args[1].Float64()
	if b == 0 {
		return nest.Scalar{}, ErrDivideByZero
	}
	return nest.Float(args[0].Float64() / b), nil
}

func mod(args ...nest.Scalar) (nest.Scalar, error) {
	r, err := divmod(args...)
	if err != nil {
		return nest.Scalar{}, err
	}
	return r[1], nil
}

func divmod(args ...nest.Scalar) ([]nest.Scalar, error) {
	if allInt(args) {
		a, b := args[0].Int64(), args[1].Int64()
		if b == 0 {
			return nil, ErrDivideByZero
		}
		q := a / b
		if a%b != 0 && (a < 0) != (b < 0) {
			q--
		}
		return []nest.Scalar{nest.Int(q), nest.Int(a - q*b)}, nil
	}
	a, b := args[0].Float64(), args[1].Float64()
	if b == 0 {
		return nil, ErrDivideByZero
	}
	q := math.Floor(a / b)
	return []nest.Scalar{nest.Float(q), nest.Float(a - q*b)}, nil
}

func pow(args ...nest.Scalar) (nest.Scalar, error) {
	if allInt(args) && args[1].Int64() >= 0 {
		base, e := args[0].Int64(), args[1].Int64()
		r := int64(1)
		for e > 0 {
			if e&1 == 1 {
				r *= base
			}
			base *= base
			e >>= 1
		}
		return nest.Int(r), nil
	}
	return nest.Float(math.Pow(args[0].Float64(), args[1].Float64())), nil
}

func sqrt(args ...nest.Scalar) (nest.Scalar, error) {
	x := args[0].Float64()
	if x < 0 {
		return nest.Scalar{}, ErrDomain
	}
	return nest.Float(math.Sqrt(x)), nil
}

func logarithm(args ...nest.Scalar) (nest.Scalar, error) {
	x := args[0].Float64()
	if x <= 0 {
		return nest.Scalar{}, ErrDomain
	}
	return nest.Float(math.Log(x)), nil
}

func clamp(args ...nest.Scalar) (nest.Scalar, error) {
	if allInt(args) {
		x, lo, hi := args[0].Int64(), args[1].Int64(), args[2].Int64()
		return nest.Int(max(lo, min(x, hi))), nil
	}
	x, lo, hi := args[0].Float64(), args[1].Float64(), args[2].Float64()
	return nest.Float(max(lo, min(x, hi))), nil
}

func lerp(args ...nest.Scalar) (nest.Scalar, error) {
	a, b, t := args[0].Float64(), args[1].Float64(), args[2].Float64()
	return nest.Float(a + (b-a)*t), nil
}

func sum(args ...nest.Scalar) (nest.Scalar, error) {
	if allInt(args) {
		var s int64
		for _, a := range args {
			s += a.Int64()
		}
		return nest.Int(s), nil
	}
	var s float64
	for _, a := range args {
		s += a.Float64()
	}
	return nest.Float(s), nil
}

func polar(args ...nest.Scalar) ([]nest.Scalar, error) {
	x, y := args[0].Float64(), args[1].Float64()
	return []nest.Scalar{nest.Float(math.Hypot(x, y)), nest.Float(math.Atan2(y, x))}, nil
}

func cartesian(args ...nest.Scalar) ([]nest.Scalar, error) {
	r, theta := args[0].Float64(), args[1].Float64()
	return []nest.Scalar{nest.Float(r * math.Cos(theta)), nest.Float(r * math.Sin(theta))}, nil
}
