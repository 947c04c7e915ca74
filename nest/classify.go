package nest

import "fmt"

// Kind is the classification of a value at one level of recursion.
type Kind int

const (
	// KindInvalid marks a value that is neither a scalar nor a sequence (i.e., nil).
	KindInvalid Kind = iota
	// KindScalar marks a numeric leaf.
	KindScalar
	// KindSeq marks a (possibly empty) sequence.
	KindSeq
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSeq:
		return "sequence"
	default:
		return "invalid"
	}
}

// Classify tells scalars from sequences. It is a pure predicate and the only
// place where the broadcasting machinery inspects the dynamic type of a value.
func Classify(v Value) Kind {
	switch v.(type) {
	case Scalar:
		return KindScalar
	case Seq:
		return KindSeq
	default:
		return KindInvalid
	}
}

// classifyArgs classifies a list of arguments and reports whether all of them,
// or any of them, are scalars. An invalid argument is reported with its index.
func classifyArgs(args []Value, kinds []Kind) (all, some bool, bad int) {
	all = true
	for i, a := range args {
		k := Classify(a)
		switch k {
		case KindInvalid:
			return false, false, i
		case KindScalar:
			some = true
		default:
			all = false
		}
		kinds[i] = k
	}
	return all, some, -1
}

func typeName(x any) string {
	if x == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", x)
}
