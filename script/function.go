package script

import (
	"fmt"

	"github.com/npillmayer/ragged/nest"
)

// Function is a script f(x0, x1, … xN) → y0, y1, … yM.
//
// Inputs are zipped position by position at the top level, stopping at the
// shortest input. Fn is called once per position and must return Outputs
// values; the i-th value of every call is appended to output i. depth holds
// the nesting depth of every input as reported by nest.FirstDepth.
type Function struct {
	Fn      func(depth []int, args ...nest.Value) ([]nest.Value, error)
	Outputs int
}

var _ Script = (*Function)(nil)

func (f *Function) Process(in []nest.Value, linked []bool) ([]nest.Value, error) {
	if f.Fn == nil {
		return nil, fmt.Errorf("function script: no function")
	}
	if f.Outputs < 0 {
		return nil, fmt.Errorf("function script: invalid number of outputs %d", f.Outputs)
	}
	depth := make([]int, len(in))
	seqs := make([][]nest.Value, len(in))
	for i, v := range in {
		depth[i] = nest.FirstDepth(v)
		switch nest.Classify(v) {
		case nest.KindScalar:
			seqs[i] = []nest.Value{v}
		case nest.KindSeq:
			seqs[i] = v.(nest.Seq)
		default:
			return nil, &nest.ClassificationError{Path: []int{i}, Got: fmt.Sprintf("%T", v)}
		}
	}
	results := make([]nest.Seq, f.Outputs)
	for i := range results {
		results[i] = nest.Seq{}
	}
	for args := range nest.Zip(seqs...) {
		r, err := f.Fn(depth, args...)
		if err != nil {
			return nil, err
		}
		if len(r) != f.Outputs {
			return nil, &nest.OutputArityError{Want: f.Outputs, Got: len(r)}
		}
		for i, v := range r {
			results[i] = append(results[i], v)
		}
	}
	out := make([]nest.Value, f.Outputs)
	for i := range out {
		if i < len(linked) && linked[i] {
			out[i] = results[i]
		}
	}
	return out, nil
}
