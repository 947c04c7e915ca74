package nest

import (
	"fmt"
	"math"
	"reflect"
	"slices"
)

// FromAny converts plain Go data into a Value. Integer kinds become integer
// scalars, floating point kinds become float scalars, and slices and arrays of
// any element type become sequences, recursively. A Value is returned as is.
//
// Unsigned integers beyond the int64 range and everything else (nil, strings,
// booleans, maps, structs, ...) are rejected with a *ClassificationError
// naming the offending type and its index path.
func FromAny(x any) (Value, error) {
	return fromAny(x, nil)
}

// MustFromAny is like FromAny but panics on error. It is intended for
// tests and literals known to be valid.
func MustFromAny(x any) Value {
	v, err := FromAny(x)
	if err != nil {
		panic(err)
	}
	return v
}

func fromAny(x any, path []int) (Value, error) {
	switch v := x.(type) {
	case Value:
		if Classify(v) == KindInvalid {
			break
		}
		return v, nil
	case int:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case float64:
		return Float(v), nil
	case []any:
		q := make(Seq, len(v))
		for i, e := range v {
			ev, err := fromAny(e, append(path, i))
			if err != nil {
				return nil, err
			}
			q[i] = ev
		}
		return q, nil
	case []float64:
		return Floats(v...), nil
	}
	return fromReflect(reflect.ValueOf(x), path)
}

func fromReflect(rv reflect.Value, path []int) (Value, error) {
	if !rv.IsValid() {
		return nil, &ClassificationError{Path: slices.Clone(path), Got: "nil"}
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, &ClassificationError{
				Path: slices.Clone(path),
				Got:  fmt.Sprintf("%s %d exceeding the integer range", rv.Type(), u),
			}
		}
		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return nil, &ClassificationError{Path: slices.Clone(path), Got: "nil " + rv.Type().String()}
		}
		return fromAny(rv.Elem().Interface(), path)
	case reflect.Slice, reflect.Array:
		q := make(Seq, rv.Len())
		for i := range rv.Len() {
			ev, err := fromAny(rv.Index(i).Interface(), append(path, i))
			if err != nil {
				return nil, err
			}
			q[i] = ev
		}
		return q, nil
	}
	return nil, &ClassificationError{Path: slices.Clone(path), Got: rv.Type().String()}
}

// ToAny converts a Value to plain Go data: int64 for integer scalars, float64
// for float scalars and []any for sequences.
func ToAny(v Value) any {
	switch x := v.(type) {
	case Scalar:
		if x.float {
			return x.f
		}
		return x.i
	case Seq:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = ToAny(e)
		}
		return out
	}
	return nil
}
