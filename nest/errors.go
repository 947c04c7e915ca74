package nest

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrClassification indicates an argument which is neither a scalar nor a sequence.
	ErrClassification = errors.New("classification error")

	// ErrDepthExhausted indicates that recursion exceeded the configured depth budget.
	ErrDepthExhausted = errors.New("depth exhausted")

	// ErrLengthMismatch indicates sequences which cannot be aligned under PadStrict.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrOutputArity indicates a multi-output function returning the wrong number of results.
	ErrOutputArity = errors.New("output arity mismatch")
)

// ClassificationError is returned for a value which cannot take part in
// broadcasting, e.g. nil, a string or a map.
type ClassificationError struct {
	Path []int  // Index path to the offending value; for Broadcast the output position followed by the argument index
	Got  string // Description of what was found instead
}

// Error implements the error interface.
func (e *ClassificationError) Error() string {
	return fmt.Sprintf("%s at %s: expected scalar or sequence, got %s", ErrClassification, formatPath(e.Path), e.Got)
}

// Is makes errors.Is(err, ErrClassification) succeed.
func (e *ClassificationError) Is(target error) bool {
	return target == ErrClassification
}

// DepthExhaustionError is returned when nesting exceeds Options.MaxDepth.
type DepthExhaustionError struct {
	Limit int   // Configured maximum depth
	Path  []int // Index path at which the limit was hit
}

// Error implements the error interface.
func (e *DepthExhaustionError) Error() string {
	return fmt.Sprintf("%s at %s: nesting exceeds limit of %d", ErrDepthExhausted, formatPath(e.Path), e.Limit)
}

// Is makes errors.Is(err, ErrDepthExhausted) succeed.
func (e *DepthExhaustionError) Is(target error) bool {
	return target == ErrDepthExhausted
}

// LengthMismatchError is returned under PadStrict for sequences whose lengths
// are neither equal nor 1.
type LengthMismatchError struct {
	Path    []int // Index path of the level which did not align
	Lengths []int // Lengths of the sequence arguments at that level
}

// Error implements the error interface.
func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s at %s: lengths %v do not align", ErrLengthMismatch, formatPath(e.Path), e.Lengths)
}

// Is makes errors.Is(err, ErrLengthMismatch) succeed.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// OutputArityError is returned when a function produced a different number of
// results than announced.
type OutputArityError struct {
	Want int
	Got  int
}

// Error implements the error interface.
func (e *OutputArityError) Error() string {
	return fmt.Sprintf("%s: want %d results, got %d", ErrOutputArity, e.Want, e.Got)
}

// Is makes errors.Is(err, ErrOutputArity) succeed.
func (e *OutputArityError) Is(target error) bool {
	return target == ErrOutputArity
}

// formatPath renders an index path as "[1][0][2]".
func formatPath(path []int) string {
	if len(path) == 0 {
		return "top level"
	}
	var sb strings.Builder
	for _, i := range path {
		fmt.Fprintf(&sb, "[%d]", i)
	}
	return sb.String()
}
