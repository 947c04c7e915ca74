package nest

import "fmt"

// DefaultMaxDepth is the depth budget used when Options.MaxDepth is 0.
const DefaultMaxDepth = 1000

// Padding selects how sequences of unequal length are aligned at one level.
type Padding int

const (
	// PadRepeatLast aligns to the longest sequence; shorter ones repeat their
	// last element. A singleton (e.g., a promoted scalar) is thus broadcast.
	PadRepeatLast Padding = iota
	// PadStrict requires every length to be either the longest one or 1.
	PadStrict
	// PadTruncate aligns to the shortest sequence.
	PadTruncate
)

func (p Padding) String() string {
	switch p {
	case PadRepeatLast:
		return "repeat"
	case PadStrict:
		return "strict"
	case PadTruncate:
		return "truncate"
	default:
		return fmt.Sprintf("Padding(%d)", int(p))
	}
}

// ParsePadding converts a name as returned by Padding.String back to a Padding.
func ParsePadding(s string) (Padding, error) {
	switch s {
	case "", "repeat", "repeat-last":
		return PadRepeatLast, nil
	case "strict":
		return PadStrict, nil
	case "truncate", "shortest":
		return PadTruncate, nil
	}
	return PadRepeatLast, fmt.Errorf("unknown padding policy %q (expected repeat|strict|truncate)", s)
}

// Options controls broadcasting. A nil *Options selects the defaults.
type Options struct {
	// MaxDepth limits the nesting depth of arguments. 0 selects DefaultMaxDepth,
	// a negative value disables the limit.
	MaxDepth int
	// Padding selects the alignment policy for sequences of unequal length.
	Padding Padding
}

// normalize normalizes the Options.
func (o *Options) normalize() Options {
	if o == nil {
		return Options{MaxDepth: DefaultMaxDepth}
	}
	out := *o
	if out.MaxDepth == 0 {
		out.MaxDepth = DefaultMaxDepth
	}
	return out
}
