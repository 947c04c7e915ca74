package nest

import (
	"math"
	"strconv"
	"strings"
)

// Format renders v in YAML flow notation, e.g. "[1, 2.5, [3, 4]]".
// Floats always carry a decimal point or an exponent, so the output of Format
// can be read back by Parse without changing the kind of any scalar.
func Format(v Value) string {
	var sb strings.Builder
	writeValue(&sb, v)
	return sb.String()
}

func (s Scalar) String() string {
	if !s.float {
		return strconv.FormatInt(s.i, 10)
	}
	switch {
	case math.IsNaN(s.f):
		return ".nan"
	case math.IsInf(s.f, 1):
		return ".inf"
	case math.IsInf(s.f, -1):
		return "-.inf"
	}
	f := strconv.FormatFloat(s.f, 'g', -1, 64)
	if !strings.ContainsAny(f, ".e") {
		f += ".0"
	}
	return f
}

func (q Seq) String() string {
	return Format(q)
}

func writeValue(sb *strings.Builder, v Value) {
	switch x := v.(type) {
	case Scalar:
		sb.WriteString(x.String())
	case Seq:
		sb.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeValue(sb, e)
		}
		sb.WriteByte(']')
	default:
		sb.WriteString("<invalid>")
	}
}
